package browser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodySize    = 10 << 20
	maxRedirects   = 10
	userAgent      = "dive/0.1 (text-mode browser shell)"
	acceptHeader   = "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.5"
)

// ErrHTTPStatus is returned for responses with a 4xx or 5xx status.
var ErrHTTPStatus = errors.New("unexpected HTTP status")

// ErrTooManyRedirects stops redirect chains longer than maxRedirects.
var ErrTooManyRedirects = errors.New("too many redirects")

// Response is a fetched document.
type Response struct {
	FinalURL    string // after redirects
	StatusCode  int
	ContentType string
	Body        []byte
	Duration    time.Duration
}

// Fetcher performs the single blocking GET behind each remote page.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher. A zero timeout selects the default.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Fetcher{
		client: &http.Client{
			Transport:     newTransport(timeout),
			Timeout:       timeout,
			CheckRedirect: limitRedirects,
		},
	}
}

func newTransport(timeout time.Duration) *http.Transport {
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: timeout}).DialContext,
		TLSHandshakeTimeout:   timeout,
		ResponseHeaderTimeout: timeout,
		MaxIdleConnsPerHost:   4,
		IdleConnTimeout:       time.Minute,
		ForceAttemptHTTP2:     true,
	}
}

func limitRedirects(_ *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("%w (>%d)", ErrTooManyRedirects, maxRedirects)
	}
	return nil
}

// Get downloads rawURL. Bodies are capped at maxBodySize and statuses >= 400
// are reported as ErrHTTPStatus.
func (f *Fetcher) Get(ctx context.Context, rawURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("fetching %s: %w: %s", rawURL, ErrHTTPStatus, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", rawURL, err)
	}

	return &Response{
		FinalURL:    resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
		Duration:    time.Since(start),
	}, nil
}

// NormalizeURL adds https:// to bare domains such as "go.dev". Input with a
// scheme, or that does not look like a host, is only trimmed.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.Contains(raw, "://") || strings.ContainsAny(raw, " \t") {
		return raw
	}
	if strings.Contains(raw, ".") {
		return "https://" + raw
	}
	return raw
}

// IsHTML reports whether a Content-Type header names an HTML document.
func IsHTML(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "text/html" || mt == "application/xhtml+xml"
}
