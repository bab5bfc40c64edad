package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/dive/internal/command"
	"github.com/vidyasagar/dive/internal/theme"
)

// KeyGroup is a named column of bindings in the help overlay.
type KeyGroup struct {
	Name     string
	Bindings []key.Binding
}

// HelpOverlay lists the global key bindings.
type HelpOverlay struct {
	id     string
	groups []KeyGroup
	help   help.Model
	panel  scrollPanel
}

// NewHelp creates the help overlay.
func NewHelp(id string, groups []KeyGroup) *HelpOverlay {
	return &HelpOverlay{id: id, groups: groups, help: help.New()}
}

// Render draws the overlay centred on the screen.
func (h *HelpOverlay) Render(s *Surface) {
	r := CenteredRect(80, 70, s.Area())
	w, ht := frameInner(r, true)
	h.panel.SetSize(w, ht)
	h.panel.SetContent(h.body())

	h.help.Width = w
	footer := h.help.ShortHelpView([]key.Binding{overlayKeys.Close, overlayKeys.Up, overlayKeys.Down}) +
		"  " + h.panel.ScrollInfo()
	drawFrame(s, r, "Key bindings", h.panel.View(), footer)
}

// HandleKey scrolls the list; Esc closes it. Every key is consumed.
func (h *HelpOverlay) HandleKey(q *command.Queue, msg tea.KeyMsg) bool {
	if key.Matches(msg, overlayKeys.Close) {
		q.Push(command.DestroyWidget{ID: h.id})
		return true
	}
	h.panel.Update(msg)
	return true
}

func (h *HelpOverlay) body() string {
	t := theme.Current

	groupNameStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Underline(true)

	keyBadgeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Background).
		Background(t.Primary).
		Padding(0, 1)

	descStyle := lipgloss.NewStyle().
		Foreground(t.Text)

	const colWidth = 28

	colStyle := lipgloss.NewStyle().Width(colWidth)

	var columns []string
	for _, group := range h.groups {
		lines := []string{groupNameStyle.Render(group.Name), ""}
		for _, b := range group.Bindings {
			if !b.Enabled() {
				continue
			}
			hk := b.Help()
			lines = append(lines, keyBadgeStyle.Render(hk.Key)+descStyle.Render(" "+hk.Desc))
		}
		columns = append(columns, colStyle.Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}
