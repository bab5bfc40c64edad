package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidyasagar/dive/internal/command"
)

// LineSource supplies log lines, oldest first.
type LineSource interface {
	Entries() []string
}

// LogOverlay shows the in-memory application log. It follows new entries
// while scrolled to the bottom.
type LogOverlay struct {
	id     string
	src    LineSource
	panel  scrollPanel
	follow bool
}

// NewLogView creates the log overlay.
func NewLogView(id string, src LineSource) *LogOverlay {
	return &LogOverlay{id: id, src: src, follow: true}
}

// Render draws the overlay.
func (o *LogOverlay) Render(s *Surface) {
	r := CenteredRect(90, 80, s.Area())
	w, h := frameInner(r, true)
	o.panel.SetSize(w, h)

	entries := o.src.Entries()
	content := strings.Join(entries, "\n")
	if len(entries) == 0 {
		content = "(no log entries)"
	}
	o.panel.SetContent(content)
	if o.follow {
		o.panel.GotoBottom()
	}

	drawFrame(s, r, "Log", o.panel.View(), "↑/↓/pgup/pgdn:scroll  Esc:close  "+o.panel.ScrollInfo())
}

// HandleKey scrolls the log. Every key is consumed.
func (o *LogOverlay) HandleKey(q *command.Queue, msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, overlayKeys.Close):
		q.Push(command.DestroyWidget{ID: o.id})
	case key.Matches(msg, overlayKeys.Top):
		o.panel.GotoTop()
		o.follow = false
	case key.Matches(msg, overlayKeys.Bottom):
		o.panel.GotoBottom()
		o.follow = true
	default:
		o.panel.Update(msg)
		o.follow = o.panel.AtBottom()
	}
	return true
}
