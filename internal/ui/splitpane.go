package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/dive/internal/theme"
)

// SplitPane lays out two side-by-side panes, one of which is active.
type SplitPane struct {
	Ratio  float64 // 0.0-1.0, proportion of first pane
	Active int     // 0 = first pane, 1 = second pane
	width  int
	height int
}

// NewSplitPane creates a split with the given first-pane ratio.
func NewSplitPane(ratio float64) SplitPane {
	return SplitPane{Ratio: ratio}
}

// SetSize updates the split pane dimensions.
func (sp *SplitPane) SetSize(w, h int) {
	sp.width = w
	sp.height = h
}

// Toggle switches between panes.
func (sp *SplitPane) Toggle() {
	sp.Active = 1 - sp.Active
}

// FirstWidth returns the width of the first pane.
func (sp *SplitPane) FirstWidth() int {
	return max(int(float64(sp.width)*sp.Ratio)-1, 0) // -1 for divider
}

// SecondWidth returns the width of the second pane.
func (sp *SplitPane) SecondWidth() int {
	return max(sp.width-sp.FirstWidth()-1, 0)
}

// Height returns the pane height.
func (sp *SplitPane) Height() int {
	return sp.height
}

// RenderSplit renders two content strings side by side.
func (sp *SplitPane) RenderSplit(first, second string) string {
	t := theme.Current

	borderStyle := lipgloss.NewStyle().
		Foreground(t.Border)

	leftStyle := lipgloss.NewStyle().
		Width(sp.FirstWidth()).
		Height(sp.height).
		MaxHeight(sp.height)

	rightStyle := lipgloss.NewStyle().
		Width(sp.SecondWidth()).
		Height(sp.height).
		MaxHeight(sp.height)

	divider := borderStyle.Render(strings.TrimSuffix(strings.Repeat("│\n", sp.height), "\n"))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftStyle.Render(first),
		divider,
		rightStyle.Render(second),
	)
}
