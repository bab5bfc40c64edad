// Package widget holds the widget registry: a set of named, prioritised
// drawables with a single keyboard focus.
package widget

import (
	"cmp"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidyasagar/dive/internal/command"
	"github.com/vidyasagar/dive/internal/ui"
)

// Well-known widget ids.
const (
	MenuBar      = "menubar"
	Tabs         = "tabs"
	StatusBar    = "statusbar"
	Help         = "help"
	TabList      = "tab_list"
	BookmarkList = "bookmark_list"
	Input        = "input"
	Log          = "log"
	History      = "history"
	Splash       = "splash"
)

// Priorities used by the application. Lower values draw first.
const (
	PriorityBase    uint8 = 0
	PriorityOverlay uint8 = 64
	PrioritySplash  uint8 = 128
	PriorityTop     uint8 = 255
)

// Drawable is the capability every widget wraps.
type Drawable interface {
	// Render draws onto the surface.
	Render(s *ui.Surface)
	// HandleKey processes a key while the widget is focused, optionally
	// enqueueing commands. It reports whether the key was consumed.
	HandleKey(q *command.Queue, key tea.KeyMsg) bool
}

// Widget is a registered drawable. Visibility is read-only outside this
// package; the Manager changes it so a hidden widget never holds focus.
type Widget struct {
	ID       string
	Priority uint8
	Inner    Drawable
	visible  bool
}

// New creates a widget.
func New(id string, priority uint8, visible bool, inner Drawable) *Widget {
	return &Widget{ID: id, Priority: priority, Inner: inner, visible: visible}
}

// Visible reports whether the widget is drawn.
func (w *Widget) Visible() bool { return w.visible }

// Render draws the widget when visible.
func (w *Widget) Render(s *ui.Surface) {
	if w.visible && w.Inner != nil {
		w.Inner.Render(s)
	}
}

// Compare orders widgets by priority.
func Compare(a, b *Widget) int {
	return cmp.Compare(a.Priority, b.Priority)
}
