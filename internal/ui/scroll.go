package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// scrollPanel wraps bubbles/viewport for overlays whose size is only known
// at render time.
type scrollPanel struct {
	viewport viewport.Model
	ready    bool
	content  string
}

// SetSize updates the panel dimensions.
func (p *scrollPanel) SetSize(width, height int) {
	if !p.ready {
		p.viewport = viewport.New(width, height)
		p.viewport.SetContent(p.content)
		p.ready = true
		return
	}
	if p.viewport.Width != width || p.viewport.Height != height {
		p.viewport.Width = width
		p.viewport.Height = height
		p.viewport.SetContent(p.content)
	}
}

// SetContent replaces the content, keeping the scroll offset where possible.
func (p *scrollPanel) SetContent(content string) {
	if content == p.content {
		return
	}
	p.content = content
	if p.ready {
		p.viewport.SetContent(content)
	}
}

// Update forwards a key to the viewport.
func (p *scrollPanel) Update(msg tea.KeyMsg) {
	if p.ready {
		p.viewport, _ = p.viewport.Update(msg)
	}
}

// View renders the visible lines.
func (p *scrollPanel) View() string {
	if !p.ready {
		return ""
	}
	return p.viewport.View()
}

// GotoTop scrolls to the top.
func (p *scrollPanel) GotoTop() {
	if p.ready {
		p.viewport.GotoTop()
	}
}

// GotoBottom scrolls to the bottom.
func (p *scrollPanel) GotoBottom() {
	if p.ready {
		p.viewport.GotoBottom()
	}
}

// AtBottom reports whether the last line is visible.
func (p *scrollPanel) AtBottom() bool {
	return !p.ready || p.viewport.AtBottom()
}

// ScrollInfo returns a string like "42%" or "TOP" or "BOT".
func (p *scrollPanel) ScrollInfo() string {
	if !p.ready {
		return "TOP"
	}
	pct := p.viewport.ScrollPercent()
	switch {
	case pct <= 0:
		return "TOP"
	case pct >= 1:
		return "BOT"
	default:
		return fmt.Sprintf("%d%%", int(pct*100))
	}
}
