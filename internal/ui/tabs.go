package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/vidyasagar/dive/internal/command"
	"github.com/vidyasagar/dive/internal/tabs"
	"github.com/vidyasagar/dive/internal/theme"
)

const (
	maxTabTitle = 20
	lockIcon    = "🔒"
	noTabs      = "No tabs open"
)

// TabSource is the read-only view of the tab collection used by widgets.
type TabSource interface {
	Tabs() []tabs.Tab
	CurrentIndex() int
}

func currentTab(src TabSource) (tabs.Tab, bool) {
	all := src.Tabs()
	cur := src.CurrentIndex()
	if cur < 0 || cur >= len(all) {
		return tabs.Tab{}, false
	}
	return all[cur], true
}

// TabsView draws the tab strip and the current tab's content.
type TabsView struct {
	src TabSource
}

// NewTabsView creates the tabs widget.
func NewTabsView(src TabSource) *TabsView {
	return &TabsView{src: src}
}

// Render draws the strip and the content area.
func (v *TabsView) Render(s *Surface) {
	l := MainLayout(s.Area())
	all := v.src.Tabs()
	cur := v.src.CurrentIndex()

	s.Draw(l.Strip, v.strip(all, cur, l.Strip.Width))
	s.Draw(l.Content, v.content(all, cur, l.Content))
}

// HandleKey never consumes keys; tab keys are global bindings.
func (v *TabsView) HandleKey(*command.Queue, tea.KeyMsg) bool {
	return false
}

// TabLabel is the strip label of a tab: its index, a lock for secure tabs
// and the name truncated to a fixed number of cells.
func TabLabel(idx int, t tabs.Tab) string {
	name := t.Name
	if name == "" {
		name = "New Tab"
	}
	name = runewidth.Truncate(name, maxTabTitle, "…")
	if t.Secure {
		return fmt.Sprintf(" %s %d:%s ", lockIcon, idx, name)
	}
	return fmt.Sprintf(" %d:%s ", idx, name)
}

func (v *TabsView) strip(all []tabs.Tab, active, width int) string {
	t := theme.Current

	activeStyle := lipgloss.NewStyle().
		Foreground(t.TextBright).
		Background(t.TabActive).
		Bold(true)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.TabInactive)

	overflowStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	barStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(width)

	if len(all) == 0 {
		return barStyle.Render(overflowStyle.Render(" " + noTabs))
	}

	labels := make([]string, len(all))
	for i, tab := range all {
		labels[i] = TabLabel(i, tab)
	}

	// Scroll the strip so the active tab stays in view.
	start := 0
	for start < active && stripWidth(labels[start:active+1], start > 0) > width {
		start++
	}

	var result string
	if start > 0 {
		result += overflowStyle.Render(fmt.Sprintf(" +%d ", start))
	}
	for i := start; i < len(labels); i++ {
		if i == active {
			result += activeStyle.Render(labels[i])
		} else {
			result += inactiveStyle.Render(labels[i])
		}
	}

	return barStyle.Render(ansi.Truncate(result, width, "…"))
}

func stripWidth(labels []string, overflow bool) int {
	w := 0
	if overflow {
		w += 5
	}
	for _, l := range labels {
		w += runewidth.StringWidth(l)
	}
	return w
}

func (v *TabsView) content(all []tabs.Tab, active int, area Rect) string {
	t := theme.Current
	if active < 0 || active >= len(all) {
		dim := lipgloss.NewStyle().Foreground(t.TextDim)
		return lipgloss.Place(area.Width, area.Height, lipgloss.Center, lipgloss.Center, dim.Render(noTabs))
	}

	tab := all[active]
	body := tab.Content
	if tab.Failed {
		body = lipgloss.NewStyle().Foreground(t.Error).Render(body)
	}
	lines := strings.Split(ansi.Wrap(body, max(area.Width, 1), ""), "\n")
	if tab.Scroll < len(lines) {
		lines = lines[tab.Scroll:]
	} else {
		lines = nil
	}
	if len(lines) > area.Height {
		lines = lines[:area.Height]
	}
	return strings.Join(lines, "\n")
}
