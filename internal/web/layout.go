package web

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/cakeart/cakeart/internal/content"
)

// PageConfig holds per-page settings for Layout.
type PageConfig struct {
	Title       string
	Description string
	// View is exposed to the page script as data-view.
	View View
	// BodyAttrs are extra attributes on the body element.
	BodyAttrs []g.Node
}

// Layout wraps content in the shared RTL document shell.
func Layout(cfg PageConfig, children ...g.Node) g.Node {
	if cfg.Title == "" {
		cfg.Title = content.HeroTitle
	}
	if cfg.Description == "" {
		cfg.Description = content.HeroSubtitle
	}

	return Doctype(
		HTML(
			Lang("fa"),
			Dir("rtl"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(cfg.Title)),
				Meta(Name("description"), Content(cfg.Description)),
				Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Vazirmatn:wght@400;700;900&display=swap")),
				Link(Rel("stylesheet"), Href("/static/site.css")),
				StyleEl(g.Raw(paletteCSS(content.Colors))),
			),
			Body(
				Data("view", cfg.View.String()),
				Data("admin-fragment", AdminFragment),
				Data("admin-path", ViewAdmin.Path()),
				g.Group(cfg.BodyAttrs),
				Div(Class("animated-gradient-bg")),
				g.Group(children),
				Script(Src("/static/site.js"), Defer()),
			),
		),
	)
}

// paletteCSS exposes the palette as CSS custom properties.
func paletteCSS(p content.Palette) string {
	vars := []struct{ name, value string }{
		{"background", p.Background},
		{"surface", p.Surface},
		{"primary", p.Primary},
		{"text-primary", p.TextPrimary},
		{"text-secondary", p.TextSecondary},
		{"border", p.Border},
		{"white", p.White},
	}
	var b strings.Builder
	b.WriteString(":root {")
	for _, v := range vars {
		fmt.Fprintf(&b, " --%s: %s;", v.name, v.value)
	}
	b.WriteString(" }")
	return b.String()
}
