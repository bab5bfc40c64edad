package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/dive/internal/command"
	"github.com/vidyasagar/dive/internal/theme"
)

const splashLogo = `
     _ _
  __| (_)_   _____
 / _' | \ \ / / _ \
| (_| | |\ V /  __/
 \__,_|_| \_/ \___|
`

// SplashOverlay is the startup banner. Esc, Space or Enter dismisses it.
type SplashOverlay struct {
	id      string
	version string
}

// NewSplash creates the splash overlay.
func NewSplash(id, version string) *SplashOverlay {
	return &SplashOverlay{id: id, version: version}
}

// Render draws the banner centred on the screen.
func (o *SplashOverlay) Render(s *Surface) {
	t := theme.Current
	r := CenteredRect(60, 50, s.Area())

	logoStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	hintStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	content := lipgloss.JoinVertical(lipgloss.Center,
		logoStyle.Render(splashLogo),
		subtitleStyle.Render("A text-mode browser shell "+o.version),
		"",
		hintStyle.Render("Press Enter to continue"),
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Width(max(r.Width-2, 0)).
		Height(max(r.Height-2, 0)).
		MaxHeight(r.Height).
		Align(lipgloss.Center, lipgloss.Center)

	s.Draw(r, box.Render(content))
}

// HandleKey dismisses the splash on Esc, Space or Enter and swallows
// everything else.
func (o *SplashOverlay) HandleKey(q *command.Queue, msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEsc, tea.KeySpace, tea.KeyEnter:
		q.Push(command.DestroyWidget{ID: o.id})
	}
	return true
}
