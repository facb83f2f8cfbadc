package gallery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go/format"
	"strconv"
	"strings"

	"github.com/cakeart/cakeart/internal/content"
)

// Format selects the syntax of an exported gallery snippet.
type Format string

const (
	FormatGo   Format = "go"
	FormatJSON Format = "json"
)

// ParseFormat maps a user-supplied format name to a Format. Empty means go.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatGo):
		return FormatGo, nil
	case string(FormatJSON), "ts", "typescript":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want go or json)", s)
	}
}

// Lang returns the highlighting language for snippets in this format.
func (f Format) Lang() string {
	if f == FormatJSON {
		return "typescript"
	}
	return "go"
}

// Export renders items as a source snippet that can replace the gallery
// table in the site's source.
func Export(items []content.GalleryItem, f Format) (string, error) {
	switch f {
	case FormatGo, "":
		return exportGo(items)
	case FormatJSON:
		return exportJSON(items)
	default:
		return "", fmt.Errorf("unknown export format %q", f)
	}
}

func exportGo(items []content.GalleryItem) (string, error) {
	var b strings.Builder
	b.WriteString("var galleryItems = []content.GalleryItem{\n")
	for _, it := range items {
		fmt.Fprintf(&b, "{Src: %s, Title: %s, Tag: %s},\n",
			strconv.Quote(it.Src), strconv.Quote(it.Title), strconv.Quote(it.Tag))
	}
	b.WriteString("}\n")

	out, err := format.Source([]byte(b.String()))
	if err != nil {
		return "", fmt.Errorf("formatting go snippet: %w", err)
	}
	return string(out), nil
}

func exportJSON(items []content.GalleryItem) (string, error) {
	if items == nil {
		items = []content.GalleryItem{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return "", fmt.Errorf("encoding gallery items: %w", err)
	}
	body := strings.TrimRight(buf.String(), "\n")
	return "export const galleryItems: GalleryItem[] = " + body + ";", nil
}
