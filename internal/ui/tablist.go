package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/vidyasagar/dive/internal/command"
	"github.com/vidyasagar/dive/internal/theme"
)

// TabListOverlay lists open tabs with type-to-filter. Enter switches to
// the selected tab through the command queue.
type TabListOverlay struct {
	id     string
	src    TabSource
	filter string
	cursor int
	offset int
}

// NewTabList creates the tab list with the current tab selected.
func NewTabList(id string, src TabSource) *TabListOverlay {
	return &TabListOverlay{id: id, src: src, cursor: max(src.CurrentIndex(), 0)}
}

// Filter returns the current filter text.
func (o *TabListOverlay) Filter() string {
	return o.filter
}

// matches returns the tab indexes to show, best match first when filtering.
func (o *TabListOverlay) matches() []int {
	all := o.src.Tabs()
	if o.filter == "" {
		out := make([]int, len(all))
		for i := range all {
			out[i] = i
		}
		return out
	}

	targets := make([]string, len(all))
	for i, t := range all {
		targets[i] = t.Name + " " + t.URL
	}
	ranks := fuzzy.RankFindFold(o.filter, targets)
	sort.Stable(ranks)
	out := make([]int, len(ranks))
	for i, r := range ranks {
		out[i] = r.OriginalIndex
	}
	return out
}

// Render draws the list.
func (o *TabListOverlay) Render(s *Surface) {
	t := theme.Current
	r := CenteredRect(60, 60, s.Area())
	w, h := frameInner(r, true)

	selectedStyle := lipgloss.NewStyle().
		Foreground(t.TextBright).
		Background(t.Selection).
		Bold(true)
	currentStyle := lipgloss.NewStyle().
		Foreground(t.Accent)
	urlStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	all := o.src.Tabs()
	matches := o.matches()
	o.clamp(len(matches), h-1)

	lines := []string{"Filter: " + o.filter}
	if len(matches) == 0 {
		lines = append(lines, urlStyle.Render("no matching tabs"))
	}
	end := min(o.offset+max(h-1, 0), len(matches))
	for i := o.offset; i < end; i++ {
		idx := matches[i]
		label := fmt.Sprintf("%s  %s", strings.TrimSpace(TabLabel(idx, all[idx])), urlStyle.Render(all[idx].URL))
		switch {
		case i == o.cursor:
			lines = append(lines, selectedStyle.Render(fitLine("▸ "+label, w)))
		case idx == o.src.CurrentIndex():
			lines = append(lines, currentStyle.Render("• ")+label)
		default:
			lines = append(lines, "  "+label)
		}
	}

	footer := "type to filter  ↑/↓:move  Enter:switch  Esc:close"
	drawFrame(s, r, fmt.Sprintf("Tabs (%d)", len(all)), strings.Join(lines, "\n"), footer)
}

func (o *TabListOverlay) clamp(n, visible int) {
	o.cursor = min(max(o.cursor, 0), max(n-1, 0))
	visible = max(visible, 1)
	if o.cursor < o.offset {
		o.offset = o.cursor
	}
	if o.cursor >= o.offset+visible {
		o.offset = o.cursor - visible + 1
	}
}

// HandleKey navigates and filters. Every key is consumed.
func (o *TabListOverlay) HandleKey(q *command.Queue, msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, overlayKeys.Close):
		q.Push(command.DestroyWidget{ID: o.id})
	case key.Matches(msg, overlayKeys.Up):
		o.cursor = max(o.cursor-1, 0)
	case key.Matches(msg, overlayKeys.Down):
		o.cursor = min(o.cursor+1, max(len(o.matches())-1, 0))
	case key.Matches(msg, overlayKeys.Select):
		matches := o.matches()
		if o.cursor >= 0 && o.cursor < len(matches) {
			q.Push(command.SwitchTab{Index: matches[o.cursor]})
		}
		q.Push(command.DestroyWidget{ID: o.id})
	case msg.Type == tea.KeyBackspace:
		if r := []rune(o.filter); len(r) > 0 {
			o.filter = string(r[:len(r)-1])
			o.cursor = 0
		}
	case msg.Type == tea.KeySpace:
		o.filter += " "
		o.cursor = 0
	case msg.Type == tea.KeyRunes && !msg.Alt:
		o.filter += string(msg.Runes)
		o.cursor = 0
	}
	return true
}
