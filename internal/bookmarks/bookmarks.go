// Package bookmarks loads the bookmark tree and answers id lookups on it.
package bookmarks

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/tidwall/jsonc"
)

// RootName is the name of the folder used when no bookmark file is loaded.
const RootName = "root"

// Bookmark is a saved page.
type Bookmark struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Tags        []string  `json:"tags"`
	Keywords    []string  `json:"keywords"`
	LastVisited int64     `json:"last_visited"`
}

// Folder groups bookmarks and subfolders.
type Folder struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Subfolders []Folder   `json:"subfolders"`
	Bookmarks  []Bookmark `json:"bookmarks"`
}

// Clone returns a deep copy of f.
func (f Folder) Clone() Folder {
	out := f
	out.Bookmarks = make([]Bookmark, len(f.Bookmarks))
	for i, b := range f.Bookmarks {
		out.Bookmarks[i] = b.Clone()
	}
	out.Subfolders = make([]Folder, len(f.Subfolders))
	for i, sub := range f.Subfolders {
		out.Subfolders[i] = sub.Clone()
	}
	return out
}

// Clone returns a deep copy of b.
func (b Bookmark) Clone() Bookmark {
	out := b
	out.Tags = slices.Clone(b.Tags)
	out.Keywords = slices.Clone(b.Keywords)
	return out
}

// Manager holds a loaded bookmark tree. The tree is not modified after load;
// every accessor returns copies.
type Manager struct {
	root Folder
}

// Empty returns a manager with an empty root folder.
func Empty() *Manager {
	return &Manager{root: Folder{ID: uuid.New(), Name: RootName}}
}

// New returns a manager over root. Missing ids are generated.
func New(root Folder) *Manager {
	root = root.Clone()
	assignIDs(&root)
	return &Manager{root: root}
}

// NewFromFile loads the tree from path. Any read or parse failure yields an
// empty tree; the error is only logged.
func NewFromFile(path string, log logr.Logger) *Manager {
	root, err := Load(path)
	if err != nil {
		log.Info("using empty bookmark tree", "path", path, "reason", err.Error())
		return Empty()
	}
	log.V(1).Info("bookmarks loaded", "path", path)
	return New(root)
}

// Load reads and parses a bookmark file. Comments and trailing commas are
// accepted.
func Load(path string) (Folder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Folder{}, fmt.Errorf("reading bookmarks: %w", err)
	}
	var root Folder
	if err := json.Unmarshal(jsonc.ToJSON(data), &root); err != nil {
		return Folder{}, fmt.Errorf("parsing bookmarks %s: %w", path, err)
	}
	return root, nil
}

// Root returns a copy of the root folder.
func (m *Manager) Root() Folder {
	return m.root.Clone()
}

// FindFolder returns the first folder with the given id, searching depth
// first in pre-order.
func (m *Manager) FindFolder(id uuid.UUID) (Folder, bool) {
	f := findFolder(&m.root, id)
	if f == nil {
		return Folder{}, false
	}
	return f.Clone(), true
}

// FindBookmark returns the first bookmark with the given id. A folder's own
// bookmarks are searched before its subfolders.
func (m *Manager) FindBookmark(id uuid.UUID) (Bookmark, bool) {
	b := findBookmark(&m.root, id)
	if b == nil {
		return Bookmark{}, false
	}
	return b.Clone(), true
}

func findFolder(f *Folder, id uuid.UUID) *Folder {
	if f.ID == id {
		return f
	}
	for i := range f.Subfolders {
		if found := findFolder(&f.Subfolders[i], id); found != nil {
			return found
		}
	}
	return nil
}

func findBookmark(f *Folder, id uuid.UUID) *Bookmark {
	for i := range f.Bookmarks {
		if f.Bookmarks[i].ID == id {
			return &f.Bookmarks[i]
		}
	}
	for i := range f.Subfolders {
		if found := findBookmark(&f.Subfolders[i], id); found != nil {
			return found
		}
	}
	return nil
}

func assignIDs(f *Folder) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	for i := range f.Bookmarks {
		if f.Bookmarks[i].ID == uuid.Nil {
			f.Bookmarks[i].ID = uuid.New()
		}
	}
	for i := range f.Subfolders {
		assignIDs(&f.Subfolders[i])
	}
}
