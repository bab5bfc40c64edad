// Package tabs keeps the ordered tab collection and the current tab.
package tabs

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/go-logr/logr"
)

const defaultFetchTimeout = 15 * time.Second

// Fetcher resolves a URL into displayable text.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, rawURL string) (string, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, rawURL string) (string, error) {
	return f(ctx, rawURL)
}

// Tab is a named, URL-addressed content slot.
type Tab struct {
	Name    string
	URL     string
	Content string
	Secure  bool
	Failed  bool
	Scroll  int
}

// Manager owns the tabs. Once a tab is open the collection never becomes
// empty: closing the last tab is refused.
type Manager struct {
	tabs    []Tab
	current int
	fetcher Fetcher
	timeout time.Duration
	log     logr.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// WithFetchTimeout bounds each content fetch.
func WithFetchTimeout(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// NewManager creates an empty tab manager.
func NewManager(f Fetcher, opts ...Option) *Manager {
	m := &Manager{
		fetcher: f,
		timeout: defaultFetchTimeout,
		log:     logr.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open creates a tab, fetches its content synchronously and appends it.
// A failed fetch still opens the tab, with an error page as content.
// Returns the new tab index.
func (m *Manager) Open(ctx context.Context, name, rawURL string) int {
	tab := Tab{
		Name:   name,
		URL:    rawURL,
		Secure: IsSecure(rawURL),
	}

	if m.fetcher != nil {
		fctx, cancel := context.WithTimeout(ctx, m.timeout)
		content, err := m.fetcher.Fetch(fctx, rawURL)
		cancel()
		if err != nil {
			m.log.Error(err, "fetch failed", "url", rawURL)
			tab.Content = ErrorPage(rawURL, err)
			tab.Failed = true
		} else {
			tab.Content = content
		}
	}

	m.tabs = append(m.tabs, tab)
	return len(m.tabs) - 1
}

// Switch makes idx current when it is in range. Returns the current index.
func (m *Manager) Switch(idx int) int {
	if idx >= 0 && idx < len(m.tabs) {
		m.current = idx
	}
	return m.current
}

// Next advances to the following tab, wrapping around.
func (m *Manager) Next() int {
	if len(m.tabs) == 0 {
		return 0
	}
	m.current = (m.current + 1) % len(m.tabs)
	return m.current
}

// Prev moves to the preceding tab, wrapping around.
func (m *Manager) Prev() int {
	if len(m.tabs) == 0 {
		return 0
	}
	m.current = (m.current - 1 + len(m.tabs)) % len(m.tabs)
	return m.current
}

// Close removes the tab at idx. It refuses to remove the last tab and
// ignores out-of-range indexes. current keeps its position and is clamped
// to the new last index when it points past the end.
func (m *Manager) Close(idx int) bool {
	if len(m.tabs) <= 1 {
		return false
	}
	if idx < 0 || idx >= len(m.tabs) {
		return false
	}
	m.tabs = slices.Delete(m.tabs, idx, idx+1)
	if m.current >= len(m.tabs) {
		m.current = len(m.tabs) - 1
	}
	return true
}

// Rename sets the name of the tab at idx.
func (m *Manager) Rename(idx int, name string) bool {
	if idx < 0 || idx >= len(m.tabs) {
		return false
	}
	m.tabs[idx].Name = name
	return true
}

// Scroll moves the current tab's content offset by delta lines, never
// above the first line.
func (m *Manager) Scroll(delta int) int {
	if len(m.tabs) == 0 {
		return 0
	}
	t := &m.tabs[m.current]
	t.Scroll = max(t.Scroll+delta, 0)
	if maxScroll := strings.Count(t.Content, "\n"); t.Scroll > maxScroll {
		t.Scroll = maxScroll
	}
	return t.Scroll
}

// Current returns the current tab.
func (m *Manager) Current() (Tab, bool) {
	if len(m.tabs) == 0 {
		return Tab{}, false
	}
	return m.tabs[m.current], true
}

// CurrentIndex returns the index of the current tab.
func (m *Manager) CurrentIndex() int {
	return m.current
}

// Tabs returns a copy of the tabs in order.
func (m *Manager) Tabs() []Tab {
	return slices.Clone(m.tabs)
}

// Len returns the number of tabs.
func (m *Manager) Len() int {
	return len(m.tabs)
}

// IsSecure reports whether rawURL uses the encrypted scheme.
func IsSecure(rawURL string) bool {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Scheme, "https")
}

// ErrorPage is the content shown in a tab whose fetch failed.
func ErrorPage(rawURL string, err error) string {
	return fmt.Sprintf("Failed to load page\n\nURL: %s\nError: %s\n", rawURL, err)
}
