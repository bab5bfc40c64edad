package browser

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// Article holds the extracted readable content from a page.
type Article struct {
	Title       string
	Byline      string
	Content     string // cleaned HTML; empty for non-HTML bodies
	TextContent string // plain text
	SiteName    string
	URL         string
	FinalURL    string
	FetchTime   time.Duration
}

// Extract takes a Response and extracts the readable article content.
// When readability finds nothing, the whole document body is used.
func Extract(result *Response) (*Article, error) {
	if !IsHTML(result.ContentType) {
		return &Article{
			Title:       result.FinalURL,
			TextContent: string(result.Body),
			FinalURL:    result.FinalURL,
			FetchTime:   result.Duration,
		}, nil
	}

	parsedURL, err := url.Parse(result.FinalURL)
	if err != nil {
		return nil, fmt.Errorf("parsing URL: %w", err)
	}

	article, err := readability.FromReader(bytes.NewReader(result.Body), parsedURL)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return &Article{
			Title:       article.Title,
			Byline:      article.Byline,
			Content:     article.Content,
			TextContent: article.TextContent,
			SiteName:    article.SiteName,
			FinalURL:    result.FinalURL,
			FetchTime:   result.Duration,
		}, nil
	}

	doc, derr := goquery.NewDocumentFromReader(bytes.NewReader(result.Body))
	if derr != nil {
		if err == nil {
			err = derr
		}
		return nil, fmt.Errorf("extracting article: %w", err)
	}
	doc.Find("script, style, noscript").Remove()

	body, _ := doc.Find("body").Html()
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = result.FinalURL
	}
	return &Article{
		Title:       title,
		Content:     body,
		TextContent: strings.TrimSpace(doc.Find("body").Text()),
		FinalURL:    result.FinalURL,
		FetchTime:   result.Duration,
	}, nil
}
