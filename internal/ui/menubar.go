package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/dive/internal/command"
	"github.com/vidyasagar/dive/internal/theme"
)

var menuItems = []string{"File", "Edit", "View", "History", "Bookmarks", "Tools", "Help"}

// MenuBar is the static menu line at the top of the screen.
type MenuBar struct{}

// NewMenuBar creates the menu bar.
func NewMenuBar() *MenuBar {
	return &MenuBar{}
}

// Render draws the menu line.
func (m *MenuBar) Render(s *Surface) {
	t := theme.Current
	area := MainLayout(s.Area()).Menu

	brandStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Background(t.MenuBar).
		Padding(0, 1)

	itemStyle := lipgloss.NewStyle().
		Foreground(t.MenuBarText).
		Background(t.MenuBar).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString(brandStyle.Render("Dive"))
	for _, item := range menuItems {
		sb.WriteString(itemStyle.Render(item))
	}

	barStyle := lipgloss.NewStyle().
		Background(t.MenuBar).
		Width(area.Width)

	s.Draw(area, barStyle.Render(sb.String()))
}

// HandleKey never consumes keys.
func (m *MenuBar) HandleKey(*command.Queue, tea.KeyMsg) bool {
	return false
}
