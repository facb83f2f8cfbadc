package site

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown copy and source snippets into HTML fragments.
type Renderer struct {
	md goldmark.Markdown
}

var (
	defaultOnce     sync.Once
	defaultRenderer *Renderer
)

// NewRenderer creates a Renderer using the given chroma style for code blocks.
func NewRenderer(style string) *Renderer {
	if style == "" {
		style = "github"
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &Renderer{md: md}
}

// Default returns a shared Renderer with the github style.
func Default() *Renderer {
	defaultOnce.Do(func() {
		defaultRenderer = NewRenderer("github")
	})
	return defaultRenderer
}

// Markdown converts markdown source to HTML.
func (r *Renderer) Markdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}

// Highlight renders code as a syntax-highlighted block for the given language.
func (r *Renderer) Highlight(code, lang string) (string, error) {
	fence := "```"
	for strings.Contains(code, fence) {
		fence += "`"
	}
	src := fence + lang + "\n" + strings.TrimRight(code, "\n") + "\n" + fence + "\n"
	return r.Markdown(src)
}
