package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHistory(t *testing.T) *HistoryStore {
	t.Helper()
	db, err := OpenDB(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	hs := NewHistoryStore(db)
	clock := time.Unix(1_700_000_000, 0)
	hs.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return hs
}

func urls(entries []HistoryEntry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.URL)
	}
	return out
}

func TestHistoryAddAndList(t *testing.T) {
	hs := newTestHistory(t)
	require.NoError(t, hs.Add("https://a.example", "A"))
	require.NoError(t, hs.Add("https://b.example", "B"))
	require.NoError(t, hs.Add("", "ignored"))

	entries, err := hs.List(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://b.example", "https://a.example"}, urls(entries))
	assert.Equal(t, "B", entries[0].Title)
	assert.Equal(t, 2, hs.Count())

	entries, err = hs.List(1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestHistoryRepeatVisitUpdatesLatest(t *testing.T) {
	hs := newTestHistory(t)
	require.NoError(t, hs.Add("https://a.example", "A"))
	first, err := hs.List(1)
	require.NoError(t, err)

	require.NoError(t, hs.Add("https://a.example", ""))
	entries, err := hs.List(0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "A", entries[0].Title, "empty title keeps the old one")
	assert.True(t, entries[0].VisitedAt.After(first[0].VisitedAt))
}

func TestHistoryTrim(t *testing.T) {
	hs := newTestHistory(t)
	hs.maxSize = 3
	for _, u := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, hs.Add("https://"+u, u))
	}
	entries, err := hs.List(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://e", "https://d", "https://c"}, urls(entries))
}

func TestHistorySearchAndClear(t *testing.T) {
	hs := newTestHistory(t)
	require.NoError(t, hs.Add("https://go.dev", "The Go Programming Language"))
	require.NoError(t, hs.Add("https://example.com", "Example"))

	found, err := hs.Search("Go Prog")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://go.dev"}, urls(found))

	require.NoError(t, hs.Clear())
	assert.Equal(t, 0, hs.Count())
}
