package web

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/cakeart/cakeart/internal/content"
)

// Word reveal timing of the hero title.
const (
	wordRevealDelay   = 0.3
	wordRevealStagger = 0.15
)

// WordDelays returns the animation delay in seconds of each word of text.
func WordDelays(text string) []float64 {
	words := strings.Fields(text)
	delays := make([]float64, len(words))
	for i := range words {
		delays[i] = wordRevealDelay + float64(i)*wordRevealStagger
	}
	return delays
}

// animatedWords renders text as one span per word, each revealed after its
// own delay.
func animatedWords(text string) g.Node {
	words := strings.Fields(text)
	delays := WordDelays(text)
	nodes := make([]g.Node, len(words))
	for i, w := range words {
		nodes[i] = Span(
			Class("word"),
			Style(fmt.Sprintf("animation-delay: %.2fs", delays[i])),
			g.Text(w),
		)
	}
	return Span(Class("words"), g.Group(nodes))
}

func sectionWrap(id, extraClass string, children ...g.Node) g.Node {
	return Section(
		ID(id),
		Class(strings.TrimSpace("section "+extraClass)),
		g.Group(children),
	)
}

func card(extraClass string, children ...g.Node) g.Node {
	return Div(Class(strings.TrimSpace("card "+extraClass)), g.Group(children))
}

func sectionTitle(icon, title, subtitle string) g.Node {
	return Div(
		Class("section-title"),
		Div(Class("section-icon"), g.Text(icon)),
		H2(g.Text(title)),
		P(g.Text(subtitle)),
	)
}

func pillLink(href, label string, selected bool) g.Node {
	class := "pill"
	if selected {
		class += " selected"
	}
	return A(
		Href(href),
		Class(class),
		g.If(selected, Aria("current", "true")),
		g.Text(label),
	)
}

func primaryLink(href, label string) g.Node {
	return A(Href(href), Class("btn-primary"), g.Text(label))
}

func floatingInput(typ, name, label, value string, required bool) g.Node {
	return Div(
		Class("floating-label-group"),
		Input(
			Type(typ),
			Name(name),
			ID(name),
			Placeholder(" "),
			g.If(value != "", Value(value)),
			g.If(required, Required()),
			Class("floating-label-input"),
		),
		Label(For(name), Class("floating-label"), g.Text(label)),
	)
}

func floatingTextarea(name, label string, rows int) g.Node {
	return Div(
		Class("floating-label-group"),
		Textarea(
			Name(name),
			ID(name),
			Rows(fmt.Sprint(rows)),
			Placeholder(" "),
			Required(),
			Class("floating-label-input"),
		),
		Label(For(name), Class("floating-label"), g.Text(label)),
	)
}

func logo() g.Node {
	return A(
		Href("#home"),
		Class("logo"),
		Span(Class("logo-mark"), g.Text("🎂")),
		Span(Class("logo-text"), g.Text(content.BrandName)),
	)
}

// assetURL makes a gallery src absolute so it resolves from any page.
func assetURL(src string) string {
	if strings.HasPrefix(src, "/") || strings.Contains(src, "://") {
		return src
	}
	return "/" + src
}
