package browser

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!doctype html>
<html><head><title>Gophers at Work</title></head>
<body>
<article>
<h1>Gophers at Work</h1>
<p>Gophers dig tunnels through the garden every single morning, and they are remarkably
efficient at it. Their burrows can extend for hundreds of feet beneath the surface.</p>
<p>Read more in the <a href="https://example.com/burrows">burrow guide</a> before planting
anything new. The guide covers soil, roots and the best time of year to plant.</p>
<p>Gophers rarely come above ground, which makes them hard to observe in the wild.
Researchers rely on tunnel maps and soil mounds to count populations.</p>
</article>
</body></html>`

func newTestResolver(t *testing.T, opts ...ResolverOption) *Resolver {
	t.Helper()
	return NewResolver(NewFetcher(0), NewMarkdown(StyleNoTTY, 80), opts...)
}

func newServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/plain", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("hello plain text"))
	})
	mux.HandleFunc("/article", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Contains(t, r.Header.Get("User-Agent"), "dive")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(articleHTML))
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"example.com", "https://example.com"},
		{"  go.dev/doc  ", "https://go.dev/doc"},
		{"http://example.com", "http://example.com"},
		{"dive://help", "dive://help"},
		{"gopher://old.example", "gopher://old.example"},
		{"localhost", "localhost"},
		{"two words.com", "two words.com"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeURL(tt.in), tt.in)
	}
}

func TestResolverPlainText(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits)

	content, err := newTestResolver(t).Fetch(context.Background(), srv.URL+"/plain")
	require.NoError(t, err)
	assert.Contains(t, content, "hello plain text")
}

func TestResolverArticle(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits)

	page, err := newTestResolver(t).Resolve(context.Background(), srv.URL+"/article")
	require.NoError(t, err)
	assert.Equal(t, "Gophers at Work", page.Title)
	assert.Contains(t, page.Content, "tunnels")
	assert.Contains(t, page.Content, "https://example.com/burrows")
}

func TestResolverHTTPError(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits)

	_, err := newTestResolver(t).Fetch(context.Background(), srv.URL+"/missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHTTPStatus))
	assert.Contains(t, err.Error(), "404")
}

func TestResolverCachesAndRecordsVisits(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits)

	var visits []string
	r := newTestResolver(t, WithVisitHook(func(url, _ string) {
		visits = append(visits, url)
	}))

	for i := 0; i < 3; i++ {
		_, err := r.Fetch(context.Background(), srv.URL+"/plain")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), hits.Load())
	assert.Len(t, visits, 3)
}

func TestResolverCacheDisabled(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits)

	r := newTestResolver(t, WithCacheSize(0))
	for i := 0; i < 2; i++ {
		_, err := r.Fetch(context.Background(), srv.URL+"/plain")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(2), hits.Load())
}

func TestResolverInternalPages(t *testing.T) {
	r := newTestResolver(t, WithPage("settings", "# Current settings\n\ntheme: nord\n"))
	ctx := context.Background()

	blank, err := r.Fetch(ctx, "dive://blank")
	require.NoError(t, err)
	assert.Empty(t, blank)

	help, err := r.Fetch(ctx, "dive://help")
	require.NoError(t, err)
	assert.Contains(t, help, "Dive help")

	settings, err := r.Fetch(ctx, "dive://settings")
	require.NoError(t, err)
	assert.Contains(t, settings, "theme: nord")

	missing, err := r.Fetch(ctx, "dive://nowhere")
	require.NoError(t, err)
	assert.Equal(t, PageNotFound, missing)
}

func TestResolverUnknownProtocol(t *testing.T) {
	content, err := newTestResolver(t).Fetch(context.Background(), "gopher://old.example")
	require.NoError(t, err)
	assert.Equal(t, UnknownProtocol, content)
}

func TestArticleMarkdown(t *testing.T) {
	md := ArticleMarkdown(&Article{
		Title: "Lists",
		Content: `<div>
<h2>Shopping</h2>
<ul><li>Milk</li><li>Eggs<ul><li>Brown</li></ul></li></ul>
<p>See <a href="https://shop.example">the shop</a> or <a href="#top">top</a>.</p>
<pre>line one
line two</pre>
</div>`,
	})

	assert.True(t, strings.HasPrefix(md, "# Lists\n\n"))
	assert.Contains(t, md, "## Shopping")
	assert.Contains(t, md, "- Milk\n- Eggs\n  - Brown\n")
	assert.Contains(t, md, "See the shop [1] or top.")
	assert.Contains(t, md, "```\nline one\nline two\n```")
	assert.Contains(t, md, "1. https://shop.example")
}

func TestArticleMarkdownPlainText(t *testing.T) {
	md := ArticleMarkdown(&Article{TextContent: "just text\n"})
	assert.Equal(t, "```\njust text\n```\n", md)
}
