package browser

import (
	"context"
	"maps"
	"net/url"
	"strings"

	"github.com/go-logr/logr"
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 50

// Page is resolved content for one URL.
type Page struct {
	Title   string
	Content string
}

// Resolver turns URLs into displayable text. Internal pages are rendered
// from markdown, http(s) URLs are fetched and extracted, and any other
// scheme resolves to UnknownProtocol.
type Resolver struct {
	fetcher  *Fetcher
	markdown *Markdown
	pages    map[string]string
	cache    *lru.Cache[string, Page]
	onVisit  func(url, title string)
	log      logr.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLogger sets the logger.
func WithLogger(l logr.Logger) ResolverOption {
	return func(r *Resolver) { r.log = l }
}

// WithCacheSize sets how many fetched pages are kept. Zero disables the cache.
func WithCacheSize(n int) ResolverOption {
	return func(r *Resolver) {
		if n <= 0 {
			r.cache = nil
			return
		}
		r.cache, _ = lru.New[string, Page](n)
	}
}

// WithPage registers or replaces an internal page.
func WithPage(name, markdown string) ResolverOption {
	return func(r *Resolver) { r.pages[name] = markdown }
}

// WithVisitHook is called after every successful http(s) fetch.
func WithVisitHook(fn func(url, title string)) ResolverOption {
	return func(r *Resolver) { r.onVisit = fn }
}

// NewResolver creates a resolver.
func NewResolver(f *Fetcher, md *Markdown, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		fetcher:  f,
		markdown: md,
		pages:    maps.Clone(builtinPages),
		log:      logr.Discard(),
	}
	r.cache, _ = lru.New[string, Page](defaultCacheSize)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fetch returns the text for rawURL.
func (r *Resolver) Fetch(ctx context.Context, rawURL string) (string, error) {
	page, err := r.Resolve(ctx, rawURL)
	if err != nil {
		return "", err
	}
	return page.Content, nil
}

// Resolve returns the page for rawURL.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (Page, error) {
	rawURL = NormalizeURL(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil {
		return Page{}, err
	}

	switch strings.ToLower(u.Scheme) {
	case InternalScheme:
		return r.internal(u), nil
	case "http", "https":
		return r.remote(ctx, rawURL)
	default:
		r.log.V(1).Info("unknown protocol", "url", rawURL)
		return Page{Title: rawURL, Content: UnknownProtocol}, nil
	}
}

func (r *Resolver) internal(u *url.URL) Page {
	name := u.Host
	if name == "" {
		name = u.Opaque
	}
	name = strings.Trim(strings.ToLower(name), "/")

	md, ok := r.pages[name]
	if !ok {
		return Page{Title: name, Content: PageNotFound}
	}
	if md == "" {
		return Page{Title: name}
	}
	out, err := r.markdown.Render(md)
	if err != nil {
		r.log.Error(err, "rendering internal page", "page", name)
	}
	return Page{Title: name, Content: out}
}

func (r *Resolver) remote(ctx context.Context, rawURL string) (Page, error) {
	if r.cache != nil {
		if page, ok := r.cache.Get(rawURL); ok {
			r.log.V(1).Info("cache hit", "url", rawURL)
			r.visited(rawURL, page.Title)
			return page, nil
		}
	}

	result, err := r.fetcher.Get(ctx, rawURL)
	if err != nil {
		return Page{}, err
	}
	article, err := Extract(result)
	if err != nil {
		return Page{}, err
	}

	content, err := r.markdown.Render(ArticleMarkdown(article))
	if err != nil {
		r.log.Error(err, "rendering article", "url", rawURL)
	}
	page := Page{Title: article.Title, Content: content}

	r.log.Info("fetched", "url", rawURL, "status", result.StatusCode, "duration", result.Duration.String())
	if r.cache != nil {
		r.cache.Add(rawURL, page)
	}
	r.visited(rawURL, page.Title)
	return page, nil
}

func (r *Resolver) visited(rawURL, title string) {
	if r.onVisit != nil {
		r.onVisit(rawURL, title)
	}
}
