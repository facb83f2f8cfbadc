package web

import (
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/cakeart/cakeart/internal/contact"
	"github.com/cakeart/cakeart/internal/content"
	"github.com/cakeart/cakeart/internal/flow"
	"github.com/cakeart/cakeart/internal/gallery"
)

// LoginPage renders the admin password form with an optional inline error.
func LoginPage(errMsg string) g.Node {
	return Layout(PageConfig{Title: "ورود به پنل مدیریت", View: ViewAdmin},
		Div(Class("admin-login"),
			card("login-card",
				Form(
					Action("/admin/login"),
					Method("post"),
					Div(Class("center"),
						Div(Class("lock"), g.Text("🔒")),
						H2(g.Text("ورود به پنل مدیریت")),
						P(Class("muted"), g.Text("لطفا رمز عبور را وارد کنید.")),
					),
					floatingInput("password", "password", "رمز عبور", "", true),
					g.If(errMsg != "", P(Class("error"), Role("alert"), g.Text(errMsg))),
					Button(Type("submit"), Class("btn-primary wide"), g.Text("ورود")),
				),
			),
		),
	)
}

// EditorData is the state of the admin gallery editor.
type EditorData struct {
	Items []content.GalleryItem
	// Draft refills the add form after a rejected submission.
	Draft content.GalleryItem
	// Alert is a blocking validation message shown above the form.
	Alert string

	Format      gallery.Format
	Snippet     string
	SnippetHTML string
	// CopyLabel is the copy button text, "copied" while a recent copy is acknowledged.
	CopyLabel string

	Messages []contact.Message
}

// EditorPage renders the authenticated gallery editor.
func EditorPage(d EditorData) g.Node {
	draftSrc := d.Draft.Src
	if draftSrc == "" {
		draftSrc = gallery.PlaceholderSrc
	}

	return Layout(PageConfig{Title: "پنل مدیریت گالری", View: ViewAdmin},
		Div(Class("admin"),
			Div(Class("admin-bar"),
				H1(Class("admin-title"), g.Text("پنل مدیریت گالری")),
				Form(Action("/admin/logout"), Method("post"),
					Button(Type("submit"), Class("btn-outline"), g.Text("خروج")),
				),
			),
			g.If(d.Alert != "", Div(Class("alert"), Role("alert"), Data("alert", d.Alert), g.Text(d.Alert))),
			card("admin-add",
				H2(g.Text("افزودن عکس جدید")),
				Form(
					Action("/admin/gallery/add"),
					Method("post"),
					Class("grid-4"),
					floatingInput("text", "src", "مسیر عکس (مثال: assets/cake.jpg)", draftSrc, false),
					floatingInput("text", "title", "عنوان عکس", d.Draft.Title, false),
					floatingInput("text", "tag", "تگ (مثال: عروسی)", d.Draft.Tag, false),
					Button(Type("submit"), Class("btn-primary"), g.Text("＋ افزودن")),
				),
			),
			H2(Class("admin-subtitle"), g.Text("عکس‌های فعلی")),
			Div(Class("grid-4"), g.Map(d.Items, editorItem)),
			Form(Action("/admin/gallery/reset"), Method("post"), Class("reset-form"),
				Button(Type("submit"), Class("btn-outline"), g.Text("بازگردانی گالری اصلی")),
			),
			exportCard(d),
			g.If(len(d.Messages) > 0, messagesCard(d.Messages)),
		),
	)
}

func editorItem(it content.GalleryItem) g.Node {
	return card("editor-item",
		Img(Src(assetURL(it.Src)), Alt(it.Title)),
		Div(Class("editor-body"),
			H3(g.Text(it.Title)),
			P(Class("muted"), g.Text(it.Tag)),
		),
		Form(Action("/admin/gallery/delete"), Method("post"), Class("delete-form"),
			Input(Type("hidden"), Name("src"), Value(it.Src)),
			Button(Type("submit"), Class("btn-delete"), Aria("label", "حذف "+it.Title), g.Text("🗑")),
		),
	)
}

func exportCard(d EditorData) g.Node {
	label := d.CopyLabel
	if label == "" {
		label = flow.LabelCopy
	}
	btnClass := "btn-copy"
	if label == flow.LabelCopied {
		btnClass += " copied"
	}

	formats := []gallery.Format{gallery.FormatGo, gallery.FormatJSON}
	return card("export",
		H2(g.Text("کد جدید برای آپدیت سایت")),
		P(Class("muted"),
			g.Text("مرحله ۱: عکس‌های جدید را در پوشه assets پروژه خود آپلود کنید."),
			Br(),
			g.Text("مرحله ۲: تغییرات گالری ذخیره شده‌اند. در صورت نیاز، کد زیر را برای جایگزینی داده‌های اصلی گالری کپی کنید."),
		),
		Div(Class("pills"), g.Map(formats, func(x gallery.Format) g.Node {
			return pillLink("/admin?"+url.Values{"format": {string(x)}}.Encode(), string(x), x == d.Format)
		})),
		Div(Class("snippet"),
			Div(Class("snippet-code"), Dir("ltr"), g.Raw(d.SnippetHTML)),
			Textarea(ID("snippet"), ReadOnly(), Dir("ltr"), Class("snippet-raw"), g.Text(d.Snippet)),
			Button(
				Type("button"),
				Class(btnClass),
				Data("copy-target", "snippet"),
				Data("ack-url", "/admin/gallery/copied"),
				Data("format", string(d.Format)),
				Data("label-copy", flow.LabelCopy),
				Data("label-copied", flow.LabelCopied),
				Data("ack-ms", strconv.FormatInt(flow.DefaultCopyAckDuration.Milliseconds(), 10)),
				g.Text(label),
			),
		),
	)
}

func messagesCard(msgs []contact.Message) g.Node {
	return card("messages",
		H2(g.Text("پیام‌های دریافتی")),
		Ul(Class("message-list"), g.Map(msgs, func(m contact.Message) g.Node {
			return Li(
				P(Strong(g.Text(m.Name)), g.Text(" · "), Span(Dir("ltr"), g.Text(m.Email))),
				P(Class("muted"), g.Text(m.Body)),
			)
		})),
	)
}
