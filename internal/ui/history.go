package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/vidyasagar/dive/internal/command"
	"github.com/vidyasagar/dive/internal/storage"
	"github.com/vidyasagar/dive/internal/theme"
)

// HistoryOverlay displays a scrollable list of visited pages. Enter opens
// the selected entry in a new tab.
type HistoryOverlay struct {
	id       string
	entries  []storage.HistoryEntry
	cursor   int
	offset   int // scroll offset for visible window
	height   int
	lastGKey bool // for gg detection
	now      func() time.Time
}

// NewHistory creates the overlay over entries, newest first.
func NewHistory(id string, entries []storage.HistoryEntry) *HistoryOverlay {
	return &HistoryOverlay{id: id, entries: entries, now: time.Now}
}

// Selected returns the entry at the cursor.
func (o *HistoryOverlay) Selected() (storage.HistoryEntry, bool) {
	if o.cursor < 0 || o.cursor >= len(o.entries) {
		return storage.HistoryEntry{}, false
	}
	return o.entries[o.cursor], true
}

// HandleKey moves the cursor and opens entries. Every key is consumed.
func (o *HistoryOverlay) HandleKey(q *command.Queue, msg tea.KeyMsg) bool {
	gKey := msg.String() == "g"
	defer func() { o.lastGKey = gKey && !o.lastGKey }()

	switch {
	case key.Matches(msg, overlayKeys.Close):
		q.Push(command.DestroyWidget{ID: o.id})
	case key.Matches(msg, overlayKeys.Up), msg.String() == "k":
		o.cursor = max(o.cursor-1, 0)
	case key.Matches(msg, overlayKeys.Down), msg.String() == "j":
		o.cursor = min(o.cursor+1, max(len(o.entries)-1, 0))
	case key.Matches(msg, overlayKeys.PageUp):
		o.cursor = max(o.cursor-o.visibleCount(), 0)
	case key.Matches(msg, overlayKeys.PageDown):
		o.cursor = min(o.cursor+o.visibleCount(), max(len(o.entries)-1, 0))
	case key.Matches(msg, overlayKeys.Top), gKey && o.lastGKey:
		o.cursor = 0
	case key.Matches(msg, overlayKeys.Bottom), msg.String() == "G":
		o.cursor = max(len(o.entries)-1, 0)
	case key.Matches(msg, overlayKeys.Select):
		if e, ok := o.Selected(); ok {
			title := e.Title
			if title == "" {
				title = e.URL
			}
			q.Push(command.NewTabURL{Title: title, URL: e.URL})
		}
		q.Push(command.DestroyWidget{ID: o.id})
	}
	o.ensureVisible()
	return true
}

// visibleCount returns how many entries fit. Each entry takes 2 lines.
func (o *HistoryOverlay) visibleCount() int {
	return max(o.height/2, 1)
}

// ensureVisible adjusts offset so the cursor is within the visible window.
func (o *HistoryOverlay) ensureVisible() {
	visible := o.visibleCount()
	if o.cursor < o.offset {
		o.offset = o.cursor
	}
	if o.cursor >= o.offset+visible {
		o.offset = o.cursor - visible + 1
	}
	o.offset = max(o.offset, 0)
}

// Render draws the overlay.
func (o *HistoryOverlay) Render(s *Surface) {
	t := theme.Current
	r := CenteredRect(80, 80, s.Area())
	w, h := frameInner(r, true)
	o.height = h
	o.ensureVisible()

	selectedStyle := lipgloss.NewStyle().
		Foreground(t.TextBright).
		Background(t.Selection).
		Bold(true)

	urlStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var sb strings.Builder
	if len(o.entries) == 0 {
		sb.WriteString(urlStyle.Render("No history yet."))
	}

	end := min(o.offset+o.visibleCount(), len(o.entries))
	for i := o.offset; i < end; i++ {
		entry := o.entries[i]
		title := entry.Title
		if title == "" {
			title = entry.URL
		}
		meta := fmt.Sprintf("  %s  %s", entry.URL, humanize.RelTime(entry.VisitedAt, o.now(), "ago", "from now"))

		if i == o.cursor {
			sb.WriteString(selectedStyle.Render(fitLine("▸ "+title, w)))
		} else {
			sb.WriteString("  " + title)
		}
		sb.WriteString("\n")
		sb.WriteString(urlStyle.Render(meta))
		sb.WriteString("\n")
	}

	footer := "j/k:move  gg/G:top/bottom  Enter:open  Esc:close"
	drawFrame(s, r, fmt.Sprintf("History (%d)", len(o.entries)), strings.TrimSuffix(sb.String(), "\n"), footer)
}
