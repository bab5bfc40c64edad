package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/vidyasagar/dive/internal/theme"
)

// overlayKeyMap holds the keys shared by every overlay.
type overlayKeyMap struct {
	Close      key.Binding
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Select     key.Binding
	SwitchPane key.Binding
	Expand     key.Binding
	Collapse   key.Binding
	Toggle     key.Binding
}

var overlayKeys = overlayKeyMap{
	Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
	Top:        key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "top")),
	Bottom:     key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "bottom")),
	Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	SwitchPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
	Expand:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "expand")),
	Collapse:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "collapse")),
	Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
}

// frameInner returns the text area inside a framed overlay at r: the body
// excludes the border, horizontal padding, title line and rule, and one
// footer line when footer is set.
func frameInner(r Rect, footer bool) (width, height int) {
	width = max(r.Width-4, 0)
	height = max(r.Height-4, 0)
	if footer {
		height = max(height-1, 0)
	}
	return width, height
}

// drawFrame draws a bordered overlay with a title, a body and an optional
// footer hint line.
func drawFrame(s *Surface, r Rect, title, body, footer string) {
	r = r.Intersect(s.Area())
	if r.Empty() {
		return
	}
	t := theme.Current
	w, h := frameInner(r, footer != "")

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary)

	ruleStyle := lipgloss.NewStyle().
		Foreground(t.Border)

	footerStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Italic(true)

	lines := []string{
		titleStyle.Render(ansi.Truncate(title, w, "…")),
		ruleStyle.Render(strings.Repeat("─", w)),
	}
	bodyLines := strings.Split(body, "\n")
	for i := 0; i < h; i++ {
		var line string
		if i < len(bodyLines) {
			line = bodyLines[i]
		}
		lines = append(lines, fitLine(line, w))
	}
	if footer != "" {
		lines = append(lines, footerStyle.Render(ansi.Truncate(footer, w, "…")))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Foreground(t.Text).
		Padding(0, 1).
		Width(max(r.Width-2, 0))

	s.Draw(r, box.Render(strings.Join(lines, "\n")))
}

// fitLine truncates an ANSI line to width cells and pads it.
func fitLine(line string, width int) string {
	line = ansi.Truncate(line, width, "…")
	if pad := width - ansi.StringWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}
