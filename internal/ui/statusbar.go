package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/dive/internal/command"
	"github.com/vidyasagar/dive/internal/theme"
)

// InitialStatus is shown until the first command reports something.
const InitialStatus = "Press F1 for help"

// StatusBar shows the last status message and the current tab's URL at the
// bottom of the screen.
type StatusBar struct {
	src     TabSource
	message string
}

// NewStatusBar creates a new status bar.
func NewStatusBar(src TabSource) *StatusBar {
	return &StatusBar{src: src, message: InitialStatus}
}

// SetMessage replaces the status message.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
}

// Message returns the status message.
func (s *StatusBar) Message() string {
	return s.message
}

// Render draws the status line.
func (s *StatusBar) Render(surface *Surface) {
	t := theme.Current
	area := MainLayout(surface.Area()).Status

	msgStyle := lipgloss.NewStyle().
		Foreground(t.StatusText).
		Background(t.StatusBar).
		Bold(true).
		Padding(0, 1)

	urlStyle := lipgloss.NewStyle().
		Foreground(t.StatusText).
		Background(t.StatusBar).
		Padding(0, 1)

	lockStyle := lipgloss.NewStyle().
		Foreground(t.Secure).
		Background(t.StatusBar)

	left := msgStyle.Render(s.message)

	var right string
	if tab, ok := currentTab(s.src); ok {
		if tab.Secure {
			right = lockStyle.Render(lockIcon)
		}
		right += urlStyle.Render(tab.URL)
	} else {
		right = urlStyle.Render(noTabs)
	}

	spacerWidth := max(area.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	spacer := lipgloss.NewStyle().
		Background(t.StatusBar).
		Render(fmt.Sprintf("%*s", spacerWidth, ""))

	surface.Draw(area, left+spacer+right)
}

// HandleKey never consumes keys.
func (s *StatusBar) HandleKey(*command.Queue, tea.KeyMsg) bool {
	return false
}
