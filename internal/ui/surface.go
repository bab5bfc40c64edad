package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const resetSGR = "\x1b[m"

// Rect is a cell rectangle on a Surface.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Intersect clips r to o.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.Width, o.X+o.Width), min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Surface is a fixed-size canvas of styled text rows. Widgets draw into
// rectangles; later draws overwrite earlier ones.
type Surface struct {
	width  int
	height int
	rows   []string
}

// NewSurface creates a blank surface.
func NewSurface(width, height int) *Surface {
	width, height = max(width, 0), max(height, 0)
	rows := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range rows {
		rows[i] = blank
	}
	return &Surface{width: width, height: height, rows: rows}
}

// Area returns the full surface rectangle.
func (s *Surface) Area() Rect {
	return Rect{Width: s.width, Height: s.height}
}

// Draw writes block into r, one line per row. Lines are truncated or padded
// to r.Width; rows of r beyond the block are cleared.
func (s *Surface) Draw(r Rect, block string) {
	r = r.Intersect(s.Area())
	if r.Empty() {
		return
	}
	lines := strings.Split(block, "\n")
	for i := 0; i < r.Height; i++ {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		row := r.Y + i
		s.rows[row] = splice(s.rows[row], r.X, r.Width, fit(line, r.Width))
	}
}

// String joins the rows for output.
func (s *Surface) String() string {
	return strings.Join(s.rows, "\n")
}

func fit(line string, width int) string {
	line = ansi.Truncate(line, width, "")
	if pad := width - ansi.StringWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}

func splice(row string, x, width int, segment string) string {
	left := ansi.Truncate(row, x, "")
	right := ansi.TruncateLeft(row, x+width, "")
	return left + resetSGR + segment + resetSGR + right
}

// CenteredRect returns a rectangle covering the given percentages of area,
// centred within it.
func CenteredRect(percentX, percentY int, area Rect) Rect {
	w := area.Width * percentX / 100
	h := area.Height * percentY / 100
	return CenteredFixed(w, h, area)
}

// CenteredFixed returns a width x height rectangle centred in area, shrunk
// to fit when area is smaller.
func CenteredFixed(width, height int, area Rect) Rect {
	width, height = min(width, area.Width), min(height, area.Height)
	return Rect{
		X:      area.X + (area.Width-width)/2,
		Y:      area.Y + (area.Height-height)/2,
		Width:  width,
		Height: height,
	}
}

// Layout is the fixed screen split: menu line, tab strip, page content and
// status line.
type Layout struct {
	Menu    Rect
	Strip   Rect
	Content Rect
	Status  Rect
}

// MainLayout splits area into the base UI regions.
func MainLayout(area Rect) Layout {
	l := Layout{
		Menu:   Rect{X: area.X, Y: area.Y, Width: area.Width, Height: min(1, area.Height)},
		Strip:  Rect{X: area.X, Y: area.Y + 1, Width: area.Width, Height: min(1, max(area.Height-1, 0))},
		Status: Rect{X: area.X, Y: area.Y + area.Height - 1, Width: area.Width, Height: min(1, area.Height)},
	}
	l.Content = Rect{X: area.X, Y: area.Y + 2, Width: area.Width, Height: max(area.Height-3, 0)}
	return l
}
