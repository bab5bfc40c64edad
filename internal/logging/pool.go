package logging

import (
	"slices"
	"strings"
	"sync"
)

const defaultMaxEntries = 500

// Pool keeps the most recent formatted log lines in memory so they can be
// shown inside the UI. It is a zapcore.WriteSyncer.
type Pool struct {
	mu      sync.Mutex
	entries []string
	max     int
}

// NewPool creates a pool that retains at most max entries.
func NewPool(max int) *Pool {
	if max <= 0 {
		max = defaultMaxEntries
	}
	return &Pool{max: max}
}

// Write stores one encoded entry. The oldest entry is dropped when full.
func (p *Pool) Write(b []byte) (int, error) {
	line := strings.TrimRight(string(b), "\n")

	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = append(p.entries, line)
	if over := len(p.entries) - p.max; over > 0 {
		p.entries = slices.Delete(p.entries, 0, over)
	}
	return len(b), nil
}

// Sync is a no-op.
func (p *Pool) Sync() error { return nil }

// Entries returns a copy of the stored lines, oldest first.
func (p *Pool) Entries() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.entries)
}

// Len returns the number of stored lines.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}
