package web

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/cakeart/cakeart/internal/ideas"
)

// IdeasData is the state of the idea tool page.
type IdeasData struct {
	Prompt string
	Ideas  []ideas.Idea
	Error  string
	// Enabled is false when no provider is configured.
	Enabled bool
}

// IdeasPage renders the cake idea brainstorming form and its results.
func IdeasPage(d IdeasData) g.Node {
	return Layout(PageConfig{Title: "ایده‌پرداز کیک‌آرت", View: ViewSite},
		Div(Class("ideas"),
			sectionTitle("✨", "ایده‌پرداز کیک", "مناسبت، سبک و رنگ‌های دلخواه خود را بنویسید تا چند ایده کیک پیشنهاد شود."),
			card("ideas-form",
				Form(
					Action("/ideas"),
					Method("post"),
					Div(
						Class("floating-label-group"),
						Textarea(
							Name("prompt"),
							ID("prompt"),
							Rows("3"),
							Placeholder(" "),
							Required(),
							g.If(!d.Enabled, Disabled()),
							Class("floating-label-input"),
							g.Text(d.Prompt),
						),
						Label(For("prompt"), Class("floating-label"), g.Text("مثلا: تولد دخترم، سبک مینیمال، رنگ صورتی و طلایی")),
					),
					Div(Class("center"),
						Button(Type("submit"), Class("btn-primary"), g.If(!d.Enabled, Disabled()), g.Text("ایده بده")),
					),
				),
			),
			g.If(!d.Enabled, P(Class("muted center"), g.Text("این بخش در حال حاضر فعال نیست."))),
			g.If(d.Error != "", P(Class("error center"), Role("alert"), g.Text(d.Error))),
			Div(Class("grid-3"), g.Map(d.Ideas, ideaCard)),
			P(Class("center"), A(Href("/"), Class("btn-outline"), g.Text("بازگشت به سایت"))),
		),
	)
}

func ideaCard(it ideas.Idea) g.Node {
	return card("idea-card",
		H3(g.Text(it.Name)),
		P(Class("muted"), g.Text(it.Description)),
		P(Class("flavors"), g.Text(strings.Join(it.Flavors, "، "))),
	)
}
