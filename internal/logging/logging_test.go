package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolDropsOldest(t *testing.T) {
	p := NewPool(3)
	for i := 0; i < 5; i++ {
		_, err := fmt.Fprintf(p, "line %d\n", i)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"line 2", "line 3", "line 4"}, p.Entries())
	assert.Equal(t, 3, p.Len())
}

func TestPoolDefaultSize(t *testing.T) {
	p := NewPool(0)
	for i := 0; i < defaultMaxEntries+10; i++ {
		_, _ = p.Write([]byte("x"))
	}
	assert.Equal(t, defaultMaxEntries, p.Len())
}

func TestPoolEntriesIsCopy(t *testing.T) {
	p := NewPool(2)
	_, _ = p.Write([]byte("a"))
	got := p.Entries()
	got[0] = "changed"
	assert.Equal(t, []string{"a"}, p.Entries())
}

func TestNewWritesToPool(t *testing.T) {
	log, pool, closeFn, err := New(Options{})
	require.NoError(t, err)
	defer closeFn()

	log.Info("opened tab", "index", 1)
	log.V(1).Info("hidden at info level")

	entries := pool.Entries()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0], "opened tab")
	assert.Contains(t, entries[0], "INFO")
}

func TestNewDebugEnablesVerbose(t *testing.T) {
	log, pool, closeFn, err := New(Options{Debug: true})
	require.NoError(t, err)
	defer closeFn()

	log.V(1).Info("dispatch")
	require.Equal(t, 1, pool.Len())
	assert.Contains(t, pool.Entries()[0], "dispatch")
}

func TestNewWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dive.log")
	log, _, closeFn, err := New(Options{FilePath: path})
	require.NoError(t, err)

	log.Info("hello", "url", "dive://blank")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "hello", entry[MessageKey])
	assert.Equal(t, "dive://blank", entry["url"])
	assert.Contains(t, entry, TimeStampKey)
}
