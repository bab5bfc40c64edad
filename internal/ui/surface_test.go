package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainRows(s *Surface) []string {
	return strings.Split(ansi.Strip(s.String()), "\n")
}

func TestSurfaceBlank(t *testing.T) {
	s := NewSurface(4, 2)
	assert.Equal(t, []string{"    ", "    "}, plainRows(s))
}

func TestSurfaceDrawSplicesIntoRow(t *testing.T) {
	s := NewSurface(10, 3)
	s.Draw(Rect{X: 0, Y: 1, Width: 10, Height: 1}, "0123456789")
	s.Draw(Rect{X: 3, Y: 1, Width: 3, Height: 1}, "abcdef")

	rows := plainRows(s)
	require.Len(t, rows, 3)
	assert.Equal(t, "012abc6789", rows[1])
	assert.Equal(t, strings.Repeat(" ", 10), rows[0])
}

func TestSurfaceDrawClearsUnusedRows(t *testing.T) {
	s := NewSurface(5, 3)
	s.Draw(s.Area(), "xxxxx\nxxxxx\nxxxxx")
	s.Draw(Rect{X: 1, Y: 0, Width: 3, Height: 3}, "ab")

	assert.Equal(t, []string{"xab x", "x   x", "x   x"}, plainRows(s))
}

func TestSurfaceDrawClipsToArea(t *testing.T) {
	s := NewSurface(4, 2)
	s.Draw(Rect{X: 2, Y: 1, Width: 10, Height: 10}, "hello\nworld")
	assert.Equal(t, []string{"    ", "  he"}, plainRows(s))
}

func TestCenteredFixed(t *testing.T) {
	r := CenteredFixed(10, 4, Rect{Width: 80, Height: 24})
	assert.Equal(t, Rect{X: 35, Y: 10, Width: 10, Height: 4}, r)

	small := CenteredFixed(100, 100, Rect{Width: 20, Height: 5})
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 20, Height: 5}, small)
}

func TestMainLayout(t *testing.T) {
	l := MainLayout(Rect{Width: 80, Height: 24})
	assert.Equal(t, Rect{Y: 0, Width: 80, Height: 1}, l.Menu)
	assert.Equal(t, Rect{Y: 1, Width: 80, Height: 1}, l.Strip)
	assert.Equal(t, Rect{Y: 2, Width: 80, Height: 21}, l.Content)
	assert.Equal(t, Rect{Y: 23, Width: 80, Height: 1}, l.Status)
}
