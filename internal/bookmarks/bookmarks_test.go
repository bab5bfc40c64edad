package bookmarks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
  // top level
  "id": "11111111-1111-1111-1111-111111111111",
  "name": "Bookmarks",
  "bookmarks": [
    {"title": "Go", "url": "https://go.dev", "tags": ["lang"], "keywords": ["go"], "last_visited": 1700000000},
  ],
  "subfolders": [
    {
      "id": "22222222-2222-2222-2222-222222222222",
      "name": "News",
      "bookmarks": [
        {"id": "33333333-3333-3333-3333-333333333333", "title": "HN", "url": "https://news.ycombinator.com", "tags": [], "keywords": []}
      ],
      "subfolders": [
        {"name": "Nested", "bookmarks": [], "subfolders": []}
      ]
    }
  ]
}`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookmarks.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewFromFileMissing(t *testing.T) {
	m := NewFromFile(filepath.Join(t.TempDir(), "absent.json"), logr.Discard())
	root := m.Root()
	assert.Equal(t, RootName, root.Name)
	assert.Empty(t, root.Subfolders)
	assert.Empty(t, root.Bookmarks)
	assert.NotEqual(t, uuid.Nil, root.ID)
}

func TestNewFromFileMalformed(t *testing.T) {
	m := NewFromFile(writeFile(t, `{"name": `), logr.Discard())
	assert.Equal(t, RootName, m.Root().Name)
}

func TestNewFromFileParsesTree(t *testing.T) {
	m := NewFromFile(writeFile(t, sample), logr.Discard())
	root := m.Root()

	assert.Equal(t, "Bookmarks", root.Name)
	require.Len(t, root.Bookmarks, 1)
	assert.Equal(t, int64(1700000000), root.Bookmarks[0].LastVisited)
	assert.NotEqual(t, uuid.Nil, root.Bookmarks[0].ID, "missing id is generated")

	require.Len(t, root.Subfolders, 1)
	news := root.Subfolders[0]
	assert.Equal(t, "News", news.Name)
	assert.Equal(t, int64(0), news.Bookmarks[0].LastVisited)
	require.Len(t, news.Subfolders, 1)
	assert.NotEqual(t, uuid.Nil, news.Subfolders[0].ID)
}

func TestFindFolder(t *testing.T) {
	m := NewFromFile(writeFile(t, sample), logr.Discard())

	f, ok := m.FindFolder(uuid.MustParse("22222222-2222-2222-2222-222222222222"))
	require.True(t, ok)
	assert.Equal(t, "News", f.Name)

	root, ok := m.FindFolder(m.Root().ID)
	require.True(t, ok)
	assert.Equal(t, "Bookmarks", root.Name)

	nested := m.Root().Subfolders[0].Subfolders[0]
	f, ok = m.FindFolder(nested.ID)
	require.True(t, ok)
	assert.Equal(t, "Nested", f.Name)

	_, ok = m.FindFolder(uuid.New())
	assert.False(t, ok)
}

func TestFindBookmark(t *testing.T) {
	m := NewFromFile(writeFile(t, sample), logr.Discard())

	b, ok := m.FindBookmark(uuid.MustParse("33333333-3333-3333-3333-333333333333"))
	require.True(t, ok)
	assert.Equal(t, "HN", b.Title)

	_, ok = m.FindBookmark(uuid.New())
	assert.False(t, ok)
}

func TestFindFirstMatchWins(t *testing.T) {
	dup := uuid.New()
	m := New(Folder{
		Name: "root",
		Subfolders: []Folder{
			{ID: dup, Name: "first"},
			{ID: dup, Name: "second"},
		},
	})
	f, ok := m.FindFolder(dup)
	require.True(t, ok)
	assert.Equal(t, "first", f.Name)
}

func TestLookupsReturnCopies(t *testing.T) {
	m := NewFromFile(writeFile(t, sample), logr.Discard())
	id := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	f, ok := m.FindFolder(id)
	require.True(t, ok)
	f.Name = "changed"
	f.Bookmarks[0].Tags = append(f.Bookmarks[0].Tags, "x")

	root := m.Root()
	root.Subfolders = nil

	again, ok := m.FindFolder(id)
	require.True(t, ok)
	assert.Equal(t, "News", again.Name)
	assert.Empty(t, again.Bookmarks[0].Tags)
	assert.Len(t, m.Root().Subfolders, 1)
}
