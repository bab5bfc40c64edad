package browser

import (
	"fmt"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/glamour"
)

const (
	DefaultWordWrap = 80

	// StyleNoTTY renders plain text without escape sequences.
	StyleNoTTY = "notty"
)

// Markdown renders markdown to terminal text with a cached glamour renderer
// per style and width.
type Markdown struct {
	style string
	width int

	mu       sync.Mutex
	renderer *glamour.TermRenderer
}

// NewMarkdown creates a renderer. style is a glamour standard style name
// ("dark", "light", "notty", ...).
func NewMarkdown(style string, width int) *Markdown {
	if style == "" {
		style = StyleNoTTY
	}
	if width <= 0 {
		width = DefaultWordWrap
	}
	return &Markdown{style: style, width: width}
}

// Render renders md. On renderer failure the markdown source is returned
// along with the error.
func (m *Markdown) Render(md string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.renderer == nil {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(m.style),
			glamour.WithWordWrap(m.width),
		)
		if err != nil {
			return md, fmt.Errorf("creating markdown renderer: %w", err)
		}
		m.renderer = r
	}

	out, err := m.renderer.Render(md)
	if err != nil {
		return md, fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

// ArticleMarkdown converts an extracted article into markdown. Links keep
// their text and are listed under a References heading.
func ArticleMarkdown(a *Article) string {
	var sb strings.Builder
	if a.Title != "" {
		sb.WriteString("# " + a.Title + "\n\n")
	}
	if a.Byline != "" {
		sb.WriteString("*" + a.Byline + "*\n\n")
	}

	if a.Content == "" {
		sb.WriteString("```\n" + strings.TrimRight(a.TextContent, "\n") + "\n```\n")
		return sb.String()
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(a.Content))
	if err != nil {
		sb.WriteString(a.TextContent)
		return sb.String()
	}

	w := &mdWriter{}
	doc.Find("body").Children().Each(func(_ int, s *goquery.Selection) {
		w.block(s, 0)
	})
	sb.WriteString(w.out.String())

	if len(w.refs) > 0 {
		sb.WriteString("\n## References\n\n")
		for i, href := range w.refs {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, href)
		}
	}
	return sb.String()
}

type mdWriter struct {
	out  strings.Builder
	refs []string
}

func (w *mdWriter) block(s *goquery.Selection, depth int) {
	switch tag := goquery.NodeName(s); tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		if text := strings.TrimSpace(s.Text()); text != "" {
			level := int(tag[1] - '0')
			w.out.WriteString(strings.Repeat("#", level) + " " + text + "\n\n")
		}
	case "p", "figcaption":
		if text := strings.TrimSpace(w.inline(s)); text != "" {
			w.out.WriteString(text + "\n\n")
		}
	case "ul", "ol":
		w.list(s, tag == "ol", depth)
		w.out.WriteString("\n")
	case "pre":
		w.out.WriteString("```\n" + strings.TrimRight(s.Text(), "\n") + "\n```\n\n")
	case "blockquote":
		text := strings.TrimSpace(w.inline(s))
		for _, line := range strings.Split(text, "\n") {
			w.out.WriteString("> " + strings.TrimSpace(line) + "\n")
		}
		w.out.WriteString("\n")
	case "hr":
		w.out.WriteString("---\n\n")
	case "script", "style", "noscript", "img":
	case "div", "article", "section", "main", "header", "footer", "figure", "body":
		s.Children().Each(func(_ int, child *goquery.Selection) {
			w.block(child, depth)
		})
	default:
		if text := strings.TrimSpace(w.inline(s)); text != "" {
			w.out.WriteString(text + "\n\n")
		}
	}
}

func (w *mdWriter) list(s *goquery.Selection, ordered bool, depth int) {
	indent := strings.Repeat("  ", depth)
	s.ChildrenFiltered("li").Each(func(i int, li *goquery.Selection) {
		marker := "- "
		if ordered {
			marker = fmt.Sprintf("%d. ", i+1)
		}
		item := li.Clone()
		item.Find("ul, ol").Remove()
		w.out.WriteString(indent + marker + strings.TrimSpace(w.inline(item)) + "\n")

		li.ChildrenFiltered("ul, ol").Each(func(_ int, sub *goquery.Selection) {
			w.list(sub, goquery.NodeName(sub) == "ol", depth+1)
		})
	})
}

func (w *mdWriter) inline(s *goquery.Selection) string {
	var sb strings.Builder
	s.Contents().Each(func(_ int, n *goquery.Selection) {
		switch goquery.NodeName(n) {
		case "#text":
			sb.WriteString(collapseSpace(n.Text()))
		case "a":
			text := strings.TrimSpace(n.Text())
			href, _ := n.Attr("href")
			if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
				sb.WriteString(text)
				return
			}
			if text == "" {
				text = href
			}
			w.refs = append(w.refs, href)
			fmt.Fprintf(&sb, "%s [%d]", text, len(w.refs))
		case "strong", "b":
			sb.WriteString("**" + strings.TrimSpace(w.inline(n)) + "**")
		case "em", "i":
			sb.WriteString("*" + strings.TrimSpace(w.inline(n)) + "*")
		case "code":
			sb.WriteString("`" + n.Text() + "`")
		case "br":
			sb.WriteString("\n")
		case "script", "style", "img":
		default:
			sb.WriteString(w.inline(n))
		}
	})
	return sb.String()
}

func collapseSpace(s string) string {
	if s == "" {
		return s
	}
	fields := strings.Fields(s)
	out := strings.Join(fields, " ")
	if len(fields) == 0 {
		return " "
	}
	if strings.TrimLeft(s[:1], " \t\n\r") == "" {
		out = " " + out
	}
	if strings.TrimRight(s[len(s)-1:], " \t\n\r") == "" {
		out += " "
	}
	return out
}
