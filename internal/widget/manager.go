package widget

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-logr/logr"
	"github.com/vidyasagar/dive/internal/ui"
)

var (
	// ErrEmptyID is returned when creating a widget without an id.
	ErrEmptyID = errors.New("widget id is empty")
	// ErrDuplicateID is returned when creating a widget whose id is taken.
	ErrDuplicateID = errors.New("widget id already registered")
)

// Manager owns every widget and the focus pointer. Operations on unknown
// ids are no-ops.
type Manager struct {
	widgets []*Widget
	focused string
	log     logr.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for no-op diagnostics.
func WithLogger(l logr.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// NewManager creates an empty registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{log: logr.Discard()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create registers w. A visible widget does not take focus on creation.
func (m *Manager) Create(w *Widget) error {
	if w.ID == "" {
		return ErrEmptyID
	}
	if m.index(w.ID) >= 0 {
		return fmt.Errorf("creating %q: %w", w.ID, ErrDuplicateID)
	}
	m.widgets = append(m.widgets, w)
	return nil
}

// Destroy removes the widget, dropping focus if it held it.
func (m *Manager) Destroy(id string) {
	i := m.index(id)
	if i < 0 {
		m.unknown("destroy", id)
		return
	}
	m.widgets = slices.Delete(m.widgets, i, i+1)
	if m.focused == id {
		m.focused = ""
	}
}

// Show makes the widget visible. With focus it becomes the focused widget.
func (m *Manager) Show(id string, focus bool) {
	w, ok := m.Find(id)
	if !ok {
		m.unknown("show", id)
		return
	}
	w.visible = true
	if focus {
		m.focused = id
	}
}

// Hide makes the widget invisible and drops its focus.
func (m *Manager) Hide(id string) {
	w, ok := m.Find(id)
	if !ok {
		m.unknown("hide", id)
		return
	}
	w.visible = false
	if m.focused == id {
		m.focused = ""
	}
}

// Toggle flips visibility. Hiding drops focus; showing with focus takes it.
func (m *Manager) Toggle(id string, focus bool) {
	w, ok := m.Find(id)
	if !ok {
		m.unknown("toggle", id)
		return
	}
	if w.visible {
		m.Hide(id)
		return
	}
	m.Show(id, focus)
}

// Focus gives focus to a visible widget.
func (m *Manager) Focus(id string) {
	w, ok := m.Find(id)
	if !ok {
		m.unknown("focus", id)
		return
	}
	if !w.visible {
		m.log.V(1).Info("refusing focus for hidden widget", "id", id)
		return
	}
	m.focused = id
}

// Unfocus clears focus if id holds it.
func (m *Manager) Unfocus(id string) {
	if m.focused == id {
		m.focused = ""
	}
}

// Focused returns the focused widget.
func (m *Manager) Focused() (*Widget, bool) {
	if m.focused == "" {
		return nil, false
	}
	return m.Find(m.focused)
}

// FocusedID returns the focused widget id, or "" when none is focused.
func (m *Manager) FocusedID() string {
	return m.focused
}

// Find looks a widget up by id.
func (m *Manager) Find(id string) (*Widget, bool) {
	if i := m.index(id); i >= 0 {
		return m.widgets[i], true
	}
	return nil, false
}

// Has reports whether id is registered.
func (m *Manager) Has(id string) bool {
	return m.index(id) >= 0
}

// IsVisible reports whether id is registered and visible.
func (m *Manager) IsVisible(id string) bool {
	w, ok := m.Find(id)
	return ok && w.visible
}

// Len returns the number of registered widgets.
func (m *Manager) Len() int {
	return len(m.widgets)
}

// Ordered returns the widgets in ascending priority; ties keep creation
// order.
func (m *Manager) Ordered() []*Widget {
	out := slices.Clone(m.widgets)
	slices.SortStableFunc(out, Compare)
	return out
}

// Render draws every visible widget in priority order.
func (m *Manager) Render(s *ui.Surface) {
	for _, w := range m.Ordered() {
		if !w.visible {
			continue
		}
		w.Render(s)
	}
}

func (m *Manager) index(id string) int {
	return slices.IndexFunc(m.widgets, func(w *Widget) bool { return w.ID == id })
}

func (m *Manager) unknown(op, id string) {
	m.log.V(1).Info("unknown widget", "op", op, "id", id)
}
