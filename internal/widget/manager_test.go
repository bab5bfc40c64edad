package widget

import (
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidyasagar/dive/internal/command"
	"github.com/vidyasagar/dive/internal/ui"
)

type widgetDef struct {
	id       string
	priority uint8
	visible  bool
}

type recorder struct {
	name  string
	calls *[]string
}

func (r recorder) Render(*ui.Surface) {
	*r.calls = append(*r.calls, r.name)
}

func (r recorder) HandleKey(*command.Queue, tea.KeyMsg) bool {
	return false
}

func newTestManager(t *testing.T, calls *[]string, defs ...widgetDef) *Manager {
	t.Helper()
	m := NewManager()
	for _, s := range defs {
		require.NoError(t, m.Create(New(s.id, s.priority, s.visible, recorder{name: s.id, calls: calls})))
	}
	return m
}

func TestCreateRejectsDuplicateAndEmpty(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Create(New("help", 255, false, nil)))
	assert.ErrorIs(t, m.Create(New("help", 1, true, nil)), ErrDuplicateID)
	assert.ErrorIs(t, m.Create(New("", 1, true, nil)), ErrEmptyID)
	assert.Equal(t, 1, m.Len())

	w, ok := m.Find("help")
	require.True(t, ok)
	assert.Equal(t, uint8(255), w.Priority, "original widget must survive a rejected create")
}

func TestShowWithFocusDisplacesPreviousFocus(t *testing.T) {
	var calls []string
	m := newTestManager(t, &calls, widgetDef{"a", 64, false}, widgetDef{"b", 64, false})

	m.Show("a", true)
	assert.Equal(t, "a", m.FocusedID())

	m.Show("b", true)
	w, ok := m.Focused()
	require.True(t, ok)
	assert.Equal(t, "b", w.ID)
	assert.True(t, m.IsVisible("a"))
}

func TestShowWithoutFocusKeepsFocus(t *testing.T) {
	var calls []string
	m := newTestManager(t, &calls, widgetDef{"a", 64, false}, widgetDef{"b", 64, false})
	m.Show("a", true)
	m.Show("b", false)
	assert.Equal(t, "a", m.FocusedID())
}

func TestHideClearsFocus(t *testing.T) {
	var calls []string
	m := newTestManager(t, &calls, widgetDef{"a", 64, false}, widgetDef{"b", 64, false})
	m.Show("a", true)
	m.Hide("b")
	assert.Equal(t, "a", m.FocusedID())

	m.Hide("a")
	_, ok := m.Focused()
	assert.False(t, ok)
	assert.False(t, m.IsVisible("a"))
}

func TestToggle(t *testing.T) {
	var calls []string
	m := newTestManager(t, &calls, widgetDef{"a", 64, false})

	m.Toggle("a", true)
	assert.True(t, m.IsVisible("a"))
	assert.Equal(t, "a", m.FocusedID())

	m.Toggle("a", true)
	assert.False(t, m.IsVisible("a"))
	assert.Empty(t, m.FocusedID())

	m.Toggle("a", false)
	assert.True(t, m.IsVisible("a"))
	assert.Empty(t, m.FocusedID())
}

func TestDestroyClearsFocus(t *testing.T) {
	var calls []string
	m := newTestManager(t, &calls, widgetDef{"a", 64, true})
	m.Show("a", true)
	m.Destroy("a")
	assert.False(t, m.Has("a"))
	_, ok := m.Focused()
	assert.False(t, ok)
}

func TestFocusRefusesHiddenWidget(t *testing.T) {
	var calls []string
	m := newTestManager(t, &calls, widgetDef{"a", 64, false}, widgetDef{"b", 64, true})
	m.Focus("a")
	assert.Empty(t, m.FocusedID())
	m.Focus("b")
	assert.Equal(t, "b", m.FocusedID())
	m.Unfocus("a")
	assert.Equal(t, "b", m.FocusedID())
	m.Unfocus("b")
	assert.Empty(t, m.FocusedID())
}

func TestFoundWidgetTracksManagerVisibility(t *testing.T) {
	var calls []string
	m := newTestManager(t, &calls, widgetDef{"a", 64, true})
	m.Focus("a")

	w, ok := m.Focused()
	require.True(t, ok)
	assert.True(t, w.Visible())

	m.Hide("a")
	assert.False(t, w.Visible(), "handle returned by Focused must see the hide")
	_, ok = m.Focused()
	assert.False(t, ok)

	w.Render(nil)
	assert.Empty(t, calls, "hidden widget must not draw")
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	var calls []string
	m := newTestManager(t, &calls, widgetDef{"a", 64, true})
	m.Show("a", true)

	m.Show("missing", true)
	m.Hide("missing")
	m.Toggle("missing", true)
	m.Focus("missing")
	m.Destroy("missing")

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, "a", m.FocusedID())
}

func TestRenderOrderSkipsHidden(t *testing.T) {
	var calls []string
	m := newTestManager(t, &calls,
		widgetDef{"help", 255, true},
		widgetDef{"statusbar", 0, true},
		widgetDef{"tab_list", 64, false},
		widgetDef{"menubar", 0, true},
		widgetDef{"input", 64, true},
	)

	m.Render(ui.NewSurface(10, 5))
	assert.Equal(t, []string{"statusbar", "menubar", "input", "help"}, calls)
}

func TestOrderedIsNonDecreasing(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := NewManager()
	for i := 0; i < 50; i++ {
		id := string(rune('A'+i%26)) + string(rune('a'+i/26))
		require.NoError(t, m.Create(New(id, uint8(rng.Intn(256)), true, nil)))
	}
	ordered := m.Ordered()
	for i := 1; i < len(ordered); i++ {
		assert.LessOrEqual(t, ordered[i-1].Priority, ordered[i].Priority)
	}
}

func TestFocusInvariantUnderRandomOperations(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}
	rng := rand.New(rand.NewSource(42))
	m := NewManager()
	for _, id := range ids {
		require.NoError(t, m.Create(New(id, uint8(rng.Intn(3)), false, nil)))
	}

	for step := 0; step < 2000; step++ {
		id := ids[rng.Intn(len(ids))]
		focus := rng.Intn(2) == 0
		switch rng.Intn(4) {
		case 0:
			m.Show(id, focus)
			if focus {
				require.Equal(t, id, m.FocusedID())
			}
		case 1:
			m.Hide(id)
			require.NotEqual(t, id, m.FocusedID())
		case 2:
			m.Toggle(id, focus)
		case 3:
			m.Focus(id)
		}

		if f, ok := m.Focused(); ok {
			require.True(t, f.Visible(), "focused widget %q must be visible", f.ID)
		} else {
			require.Empty(t, m.FocusedID())
		}
	}
}
