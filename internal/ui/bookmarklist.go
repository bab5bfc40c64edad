package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
	"github.com/vidyasagar/dive/internal/bookmarks"
	"github.com/vidyasagar/dive/internal/command"
	"github.com/vidyasagar/dive/internal/theme"
)

// BookmarkSource is the read-only bookmark tree.
type BookmarkSource interface {
	Root() bookmarks.Folder
	FindFolder(id uuid.UUID) (bookmarks.Folder, bool)
}

const (
	paneTree  = 0
	paneTable = 1
)

type treeRow struct {
	id       uuid.UUID
	name     string
	depth    int
	children bool
}

// BookmarkListOverlay shows the folder tree next to the bookmarks of the
// selected folder. Enter on a bookmark opens it in a new tab.
type BookmarkListOverlay struct {
	id       string
	src      BookmarkSource
	root     bookmarks.Folder
	expanded map[uuid.UUID]bool
	split    SplitPane

	treeCursor  int
	tableCursor int
	now         func() time.Time
}

// NewBookmarkList creates the overlay with the root and its direct
// subfolders expanded.
func NewBookmarkList(id string, src BookmarkSource) *BookmarkListOverlay {
	root := src.Root()
	o := &BookmarkListOverlay{
		id:       id,
		src:      src,
		root:     root,
		expanded: map[uuid.UUID]bool{root.ID: true},
		split:    NewSplitPane(0.3),
		now:      time.Now,
	}
	for _, sub := range root.Subfolders {
		o.expanded[sub.ID] = true
	}
	return o
}

// rows flattens the visible part of the folder tree.
func (o *BookmarkListOverlay) rows() []treeRow {
	var out []treeRow
	var walk func(f bookmarks.Folder, depth int)
	walk = func(f bookmarks.Folder, depth int) {
		out = append(out, treeRow{id: f.ID, name: f.Name, depth: depth, children: len(f.Subfolders) > 0})
		if !o.expanded[f.ID] {
			return
		}
		for _, sub := range f.Subfolders {
			walk(sub, depth+1)
		}
	}
	walk(o.root, 0)
	return out
}

// SelectedFolder returns the folder under the tree cursor.
func (o *BookmarkListOverlay) SelectedFolder() (bookmarks.Folder, bool) {
	rows := o.rows()
	if o.treeCursor < 0 || o.treeCursor >= len(rows) {
		return bookmarks.Folder{}, false
	}
	return o.src.FindFolder(rows[o.treeCursor].id)
}

// ActivePane returns 0 for the tree and 1 for the bookmark table.
func (o *BookmarkListOverlay) ActivePane() int {
	return o.split.Active
}

// HandleKey navigates the panes. Every key is consumed.
func (o *BookmarkListOverlay) HandleKey(q *command.Queue, msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, overlayKeys.Close):
		q.Push(command.DestroyWidget{ID: o.id})
	case key.Matches(msg, overlayKeys.SwitchPane):
		o.split.Toggle()
		o.tableCursor = 0
	case key.Matches(msg, overlayKeys.Up):
		if o.split.Active == paneTree {
			o.treeCursor = max(o.treeCursor-1, 0)
		} else {
			o.tableCursor = max(o.tableCursor-1, 0)
		}
	case key.Matches(msg, overlayKeys.Down):
		if o.split.Active == paneTree {
			o.treeCursor = min(o.treeCursor+1, len(o.rows())-1)
		} else if f, ok := o.SelectedFolder(); ok {
			o.tableCursor = min(o.tableCursor+1, max(len(f.Bookmarks)-1, 0))
		}
	case key.Matches(msg, overlayKeys.Expand):
		o.setExpanded(true)
	case key.Matches(msg, overlayKeys.Collapse):
		o.setExpanded(false)
	case key.Matches(msg, overlayKeys.Toggle):
		if row, ok := o.treeRow(); ok && o.split.Active == paneTree {
			o.setExpanded(!o.expanded[row.id])
		}
	case key.Matches(msg, overlayKeys.Select):
		if o.split.Active == paneTree {
			if row, ok := o.treeRow(); ok {
				o.setExpanded(!o.expanded[row.id])
			}
			break
		}
		f, ok := o.SelectedFolder()
		if !ok || o.tableCursor >= len(f.Bookmarks) {
			break
		}
		b := f.Bookmarks[o.tableCursor]
		q.Push(command.NewTabURL{Title: b.Title, URL: b.URL})
		q.Push(command.DestroyWidget{ID: o.id})
	}
	return true
}

func (o *BookmarkListOverlay) treeRow() (treeRow, bool) {
	rows := o.rows()
	if o.treeCursor < 0 || o.treeCursor >= len(rows) {
		return treeRow{}, false
	}
	return rows[o.treeCursor], true
}

func (o *BookmarkListOverlay) setExpanded(open bool) {
	if o.split.Active != paneTree {
		return
	}
	row, ok := o.treeRow()
	if !ok {
		return
	}
	if open {
		o.expanded[row.id] = true
	} else {
		delete(o.expanded, row.id)
	}
	o.treeCursor = min(o.treeCursor, len(o.rows())-1)
}

// Render draws both panes.
func (o *BookmarkListOverlay) Render(s *Surface) {
	r := CenteredRect(100, 75, s.Area())
	w, h := frameInner(r, true)
	o.split.SetSize(w, h)

	body := o.split.RenderSplit(o.renderTree(), o.renderTable())
	footer := "tab:switch pane  ↑/↓:move  ←/→/space:fold  Enter:open  Esc:close"
	drawFrame(s, r, "Bookmarks", body, footer)
}

func (o *BookmarkListOverlay) highlight(pane int) lipgloss.Style {
	t := theme.Current
	if o.split.Active == pane {
		return lipgloss.NewStyle().
			Foreground(t.Accent).
			Background(t.Selection).
			Bold(true)
	}
	return lipgloss.NewStyle().
		Foreground(t.TextBright).
		Background(t.Surface)
}

func (o *BookmarkListOverlay) renderTree() string {
	width := o.split.FirstWidth()
	rows := o.rows()
	sel := o.highlight(paneTree)

	var lines []string
	for i, row := range rows {
		marker := "  "
		if row.children {
			marker = "▸ "
			if o.expanded[row.id] {
				marker = "▾ "
			}
		}
		line := runewidth.Truncate(strings.Repeat("  ", row.depth)+marker+row.name, width, "…")
		if i == o.treeCursor {
			line = sel.Render(runewidth.FillRight(line, width))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (o *BookmarkListOverlay) renderTable() string {
	t := theme.Current
	width := o.split.SecondWidth()
	nameWidth := max(width/2-1, 1)
	visitWidth := max(width-nameWidth-2, 1)

	headerStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)
	sel := o.highlight(paneTable)

	cell := func(name, visited string) string {
		return " " + runewidth.FillRight(runewidth.Truncate(name, nameWidth, "…"), nameWidth) +
			" " + runewidth.Truncate(visited, visitWidth, "…")
	}

	lines := []string{headerStyle.Render(cell("Name", "Last visited")), ""}
	f, ok := o.SelectedFolder()
	if !ok || len(f.Bookmarks) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.TextDim).Render(" (empty)"))
		return strings.Join(lines, "\n")
	}
	for i, b := range f.Bookmarks {
		line := cell(b.Title, o.lastVisited(b.LastVisited))
		if o.split.Active == paneTable && i == o.tableCursor {
			line = sel.Render(runewidth.FillRight(line, width))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (o *BookmarkListOverlay) lastVisited(ts int64) string {
	if ts <= 0 {
		return "never"
	}
	return humanize.RelTime(time.Unix(ts, 0), o.now(), "ago", "from now")
}
