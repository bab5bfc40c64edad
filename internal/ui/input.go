package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/dive/internal/command"
	"github.com/vidyasagar/dive/internal/theme"
)

const inputWidth = 70

// InputOverlay is a single-line prompt. Enter submits the value with the
// configured action; Esc cancels.
type InputOverlay struct {
	id     string
	title  string
	action command.SubmitAction
	input  textinput.Model
}

// NewInput creates a focused prompt pre-filled with value.
func NewInput(id, title, placeholder, value string, action command.SubmitAction) *InputOverlay {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 2048
	ti.Prompt = "› "
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	ti.SetValue(value)
	ti.CursorEnd()

	return &InputOverlay{id: id, title: title, action: action, input: ti}
}

// Value returns the current text.
func (o *InputOverlay) Value() string {
	return o.input.Value()
}

// HandleKey edits the value. Every key is consumed.
func (o *InputOverlay) HandleKey(q *command.Queue, msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, overlayKeys.Close):
		q.Push(command.DestroyWidget{ID: o.id})
	case key.Matches(msg, overlayKeys.Select):
		if val := strings.TrimSpace(o.input.Value()); val != "" {
			q.Push(command.InputSubmit{Action: o.action, Value: val})
		}
		q.Push(command.DestroyWidget{ID: o.id})
	default:
		o.input, _ = o.input.Update(msg)
	}
	return true
}

// Render draws the prompt box centred on the screen.
func (o *InputOverlay) Render(s *Surface) {
	t := theme.Current
	r := CenteredFixed(inputWidth, 7, s.Area())
	w, _ := frameInner(r, true)

	o.input.Width = max(w-lipgloss.Width(o.input.Prompt)-1, 1)
	o.input.PromptStyle = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	o.input.TextStyle = lipgloss.NewStyle().Foreground(t.TextBright)

	drawFrame(s, r, o.title, o.input.View(), "Enter:submit  Esc:cancel")
}
