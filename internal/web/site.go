package web

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/cakeart/cakeart/internal/content"
	"github.com/cakeart/cakeart/internal/flow"
	"github.com/cakeart/cakeart/internal/gallery"
)

// Contact status lines for the no-script form fallback.
const (
	contactInvalid = "لطفا نام، ایمیل معتبر و پیام خود را وارد کنید."
)

// SiteData is everything the marketing page renders from.
type SiteData struct {
	NavLinks     []content.NavLink
	Items        []content.GalleryItem
	Services     []content.ServiceItem
	Testimonials []content.Testimonial
	AboutHTML    string

	// Tag is the selected gallery filter; Preview the lightbox source.
	Tag     string
	Preview gallery.Lightbox
	// Active is the highlighted section id.
	Active string
	// ContactStatus is the status line under the contact form.
	ContactStatus string

	ShowPreloader     bool
	PreloaderDuration time.Duration
	RootMargin        string
	Year              int
}

// SitePage renders the full marketing site.
func SitePage(d SiteData) g.Node {
	ids := make([]string, 0, len(d.NavLinks))
	for _, l := range d.NavLinks {
		ids = append(ids, strings.TrimPrefix(l.Href, "#"))
	}

	return Layout(PageConfig{
		View: ViewSite,
		BodyAttrs: []g.Node{
			Data("preloader-ms", strconv.FormatInt(d.PreloaderDuration.Milliseconds(), 10)),
			Data("root-margin", d.RootMargin),
			Data("sections", strings.Join(ids, ",")),
			Data("active", d.Active),
		},
	},
		g.If(d.ShowPreloader, preloader(d.PreloaderDuration)),
		siteHeader(d.NavLinks, d.Active),
		Main(
			hero(),
			about(d.AboutHTML),
			portfolio(d.Items, d.Tag, d.Preview),
			services(d.Services),
			testimonials(d.Testimonials),
			contactSection(d.ContactStatus),
		),
		siteFooter(d.Year),
	)
}

func preloader(d time.Duration) g.Node {
	return Div(
		ID("preloader"),
		Class("preloader"),
		Style(fmt.Sprintf("--preloader-delay: %dms", d.Milliseconds())),
		Div(Class("preloader-text"), g.Text(content.BrandName)),
	)
}

func siteHeader(links []content.NavLink, active string) g.Node {
	navItem := func(class string) func(content.NavLink) g.Node {
		return func(l content.NavLink) g.Node {
			id := strings.TrimPrefix(l.Href, "#")
			c := class
			if id == active {
				c += " active"
			}
			return A(Href(l.Href), Class(c), Data("section", id), g.Text(l.Label))
		}
	}

	return Header(
		ID("site-header"),
		Class("site-header"),
		Nav(
			Class("nav"),
			logo(),
			Div(Class("nav-links"), g.Map(links, navItem("nav-link"))),
			Button(
				Type("button"),
				Class("menu-toggle"),
				Aria("label", "Open menu"),
				Aria("controls", "mobile-menu"),
				Aria("expanded", "false"),
				g.Text("☰"),
			),
		),
		Div(ID("mobile-menu"), Class("mobile-menu"), g.Map(links, navItem("mobile-link"))),
	)
}

func hero() g.Node {
	return sectionWrap("home", "hero",
		Div(Class("hero-grid"),
			Div(Class("hero-copy"),
				H1(Class("hero-title"), animatedWords(content.HeroTitle)),
				H2(Class("hero-subtitle gradient-text"), g.Text(content.HeroSubtitle)),
				P(Class("hero-intro"), g.Text(content.HeroIntro)),
				primaryLink("#portfolio", content.HeroCTA),
			),
			Div(Class("hero-image"),
				Img(Src(assetURL(content.Images.Hero)), Alt(content.HeroImageAlt)),
			),
		),
	)
}

func about(html string) g.Node {
	return sectionWrap("about", "",
		Div(Class("about-grid"),
			Div(Class("about-image"),
				Img(Src(assetURL(content.Images.About)), Alt(content.AboutImageAlt)),
			),
			Div(Class("about-copy"),
				H2(g.Text(content.AboutTitle)),
				H3(Class("gradient-text"), g.Text(content.AboutHeadline)),
				Div(Class("prose"), g.Raw(html)),
			),
		),
	)
}

// galleryURL builds the portfolio link for a filter tag and preview.
func galleryURL(tag, preview string) string {
	q := url.Values{}
	if tag != "" && tag != gallery.AllTag {
		q.Set("tag", tag)
	}
	if preview != "" {
		q.Set("preview", preview)
	}
	if len(q) == 0 {
		return "/?section=portfolio#portfolio"
	}
	q.Set("section", "portfolio")
	return "/?" + q.Encode() + "#portfolio"
}

func portfolio(items []content.GalleryItem, tag string, lb gallery.Lightbox) g.Node {
	if tag == "" {
		tag = gallery.AllTag
	}
	tags := gallery.Tags(items)
	shown := gallery.Filter(items, tag)

	return g.Group{
		sectionWrap("portfolio", "",
			sectionTitle("🏆", "نمونه کارهای من", "گالری از کیک‌های هنری و خاص"),
			Div(Class("pills"), g.Map(tags, func(t string) g.Node {
				return pillLink(galleryURL(t, ""), t, t == tag)
			})),
			Div(Class("masonry-grid"), g.Map(shown, func(it content.GalleryItem) g.Node {
				return A(
					Class("masonry-item"),
					Href(galleryURL(tag, it.Src)),
					Data("preview", assetURL(it.Src)),
					Data("tag", it.Tag),
					card("gallery-card",
						Div(Class("gallery-image"),
							Img(Src(assetURL(it.Src)), Alt(it.Title)),
						),
						Div(Class("gallery-body"),
							H3(g.Text(it.Title)),
							Span(Class("tag"), g.Text(it.Tag)),
						),
					),
				)
			})),
		),
		lightboxOverlay(tag, lb),
	}
}

func lightboxOverlay(tag string, lb gallery.Lightbox) g.Node {
	src, open := lb.Current()
	return Div(
		ID("lightbox"),
		Class("lightbox"),
		g.If(!open, g.Attr("hidden")),
		A(Class("lightbox-backdrop"), Href(galleryURL(tag, "")), Aria("label", "close")),
		Img(Class("lightbox-image"), g.If(open, Src(assetURL(src)))),
		A(Class("lightbox-close"), Href(galleryURL(tag, "")), Aria("label", "close"), g.Text("✕")),
	)
}

var serviceIcons = []string{"🏆", "🎖", "♥"}

func services(items []content.ServiceItem) g.Node {
	cards := make([]g.Node, len(items))
	for i, s := range items {
		cards[i] = card("service-card",
			Div(Class("service-icon"), g.Text(serviceIcons[i%len(serviceIcons)])),
			H3(g.Text(s.Name)),
			P(Class("price"), g.Text(s.Price)),
			Ul(Class("features"), g.Map(s.Features, func(f string) g.Node {
				return Li(Span(Class("star"), g.Text("★")), Span(g.Text(f)))
			})),
			A(Href("#contact"), Class("btn-outline"), g.Text("مشاوره و سفارش")),
		)
	}
	return sectionWrap("services", "",
		sectionTitle("🏆", "خدمات کیک سفارشی", "سرویس‌هایی برای تبدیل رویاهای شما به واقعیت‌های شیرین"),
		Div(Class("grid-3"), g.Group(cards)),
	)
}

func testimonials(items []content.Testimonial) g.Node {
	return sectionWrap("testimonials", "",
		sectionTitle("♥", "نظرات مشتریان", "آنچه مشتریان عزیز درباره ما می‌گویند"),
		Div(Class("grid-3"), g.Map(items, func(t content.Testimonial) g.Node {
			return card("testimonial-card",
				Span(Class("quote-mark"), g.Text("❝")),
				P(Class("quote"), g.Textf("\"%s\"", t.Text)),
				Div(Class("testimonial-author"),
					P(Class("name"), g.Text(t.Name)),
					P(Class("role"), g.Text(t.Role)),
				),
			)
		})),
	)
}

func contactSection(status string) g.Node {
	sent := status == flow.StatusSent
	statusClass := "contact-status"
	if sent {
		statusClass += " success"
	}
	clearMs := flow.DefaultClearDelay.Milliseconds()
	return sectionWrap("contact", "",
		sectionTitle("✉", "تماس با ما", "برای مشاوره و ثبت سفارش، با من در ارتباط باشید"),
		card("",
			Form(
				ID("contact-form"),
				Action("/contact"),
				Method("post"),
				Class("contact-form"),
				Div(Class("grid-2"),
					floatingInput("text", "name", "نام شما", "", true),
					floatingInput("email", "email", "ایمیل شما", "", true),
				),
				floatingTextarea("message", "پیام شما (نوع مراسم، تعداد مهمانان و...)", 4),
				Div(Class("center"),
					Button(Type("submit"), Class("btn-primary"), g.Text("ارسال پیام")),
				),
				P(ID("contact-status"), Class(statusClass), Aria("live", "polite"),
					g.If(sent, Data("clear-ms", strconv.FormatInt(clearMs, 10))),
					g.If(sent, Style(fmt.Sprintf("--status-clear-delay: %dms", clearMs))),
					g.Text(status),
				),
			),
		),
	)
}

// Copyright returns the footer copyright line for year.
func Copyright(year int) string {
	return fmt.Sprintf("© %d %s. تمام حقوق محفوظ است.", year, content.BrandName)
}

func siteFooter(year int) g.Node {
	quick := []content.NavLink{
		{Href: "#about", Label: "درباره من"},
		{Href: "#portfolio", Label: "نمونه کارها"},
		{Href: "#services", Label: "خدمات"},
	}
	return Footer(
		Class("site-footer"),
		Div(Class("footer-grid"),
			Div(
				Div(Class("footer-brand"), Span(g.Text("🎂")), H3(g.Text(content.BrandName))),
				P(Class("muted"), g.Text(content.FooterTagline)),
			),
			Div(
				H4(g.Text("لینک‌های سریع")),
				g.Map(quick, func(l content.NavLink) g.Node {
					return A(Href(l.Href), Class("footer-link"), g.Text(l.Label))
				}),
			),
			Div(
				H4(g.Text("ارتباط با من")),
				Div(Class("social"),
					A(Href("#"), Aria("label", "Instagram"), g.Text("◎")),
					A(Href("tel:+"), Aria("label", "Phone"), g.Text("☎")),
					A(Href("mailto:"), Aria("label", "Mail"), g.Text("✉")),
				),
			),
		),
		Div(Class("footer-bottom"), P(g.Text(Copyright(year)))),
	)
}
