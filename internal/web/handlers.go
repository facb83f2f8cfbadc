package web

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	g "maragu.dev/gomponents"
	"go.uber.org/zap"

	"github.com/cakeart/cakeart/internal/audit"
	"github.com/cakeart/cakeart/internal/auth"
	"github.com/cakeart/cakeart/internal/contact"
	"github.com/cakeart/cakeart/internal/content"
	"github.com/cakeart/cakeart/internal/flow"
	"github.com/cakeart/cakeart/internal/gallery"
	"github.com/cakeart/cakeart/internal/ideas"
	"github.com/cakeart/cakeart/internal/site"
	"github.com/cakeart/cakeart/internal/tracker"
)

// recentMessages is how many contact messages the editor lists.
const recentMessages = 20

// Options wires the page handlers to their stores and services.
type Options struct {
	Gallery  *gallery.Store
	Messages *contact.Store
	Gate     *auth.Gate
	// Ideas is nil when no provider is configured.
	Ideas    *ideas.Service
	Recorder gallery.Recorder
	Renderer *site.Renderer

	// Preloader is nil for the default overlay; a zero Duration disables it.
	Preloader *flow.Preloader
	Band      tracker.Band
	// Scheduler times the copy acknowledgment. Nil uses real timers.
	Scheduler flow.Scheduler
	// AssetsDir is served under /assets/ when set.
	AssetsDir string

	Logger *zap.Logger
	Now    func() time.Time
}

// Handler serves the HTML pages.
type Handler struct {
	opts      Options
	aboutHTML string
	copyAck   *flow.CopyAck
}

// NewHandler renders the static copy once and returns the page handler.
func NewHandler(opts Options) (*Handler, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Renderer == nil {
		opts.Renderer = site.Default()
	}
	if opts.Preloader == nil {
		p := flow.NewPreloader()
		opts.Preloader = &p
	}
	if opts.Band == (tracker.Band{}) {
		opts.Band = tracker.DefaultBand
	}

	about, err := opts.Renderer.Markdown(content.AboutMarkdown)
	if err != nil {
		return nil, err
	}
	return &Handler{opts: opts, aboutHTML: about, copyAck: flow.NewCopyAck(opts.Scheduler)}, nil
}

// RegisterRoutes mounts the pages, the admin forms and the static files.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Handle("/static/*", StaticHandler())
	if h.opts.AssetsDir != "" {
		r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(h.opts.AssetsDir))))
	}

	r.Get("/", h.sitePage)
	r.Get("/ideas", h.ideasPage)
	r.Post("/ideas", h.ideasSubmit)

	r.Post("/admin/login", h.login)
	r.Post("/admin/logout", h.logout)
	r.Group(func(r chi.Router) {
		r.Use(h.opts.Gate.RequireAdmin(http.HandlerFunc(h.loginPage)))
		r.Get("/admin", h.editor)
		r.Post("/admin/gallery/add", h.addItem)
		r.Post("/admin/gallery/delete", h.deleteItem)
		r.Post("/admin/gallery/reset", h.resetItems)
		r.Post("/admin/gallery/copied", h.snippetCopied)
	})
}

func (h *Handler) render(w http.ResponseWriter, status int, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(w); err != nil {
		h.opts.Logger.Warn("rendering page", zap.Error(err))
	}
}

func (h *Handler) sitePage(w http.ResponseWriter, r *http.Request) {
	items, err := h.opts.Gallery.List(r.Context())
	if err != nil {
		h.opts.Logger.Error("listing gallery", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	if v := ResolveFragment(viewFragment(q.Get("view"))); v != ViewSite {
		http.Redirect(w, r, v.Path(), http.StatusSeeOther)
		return
	}

	lb := gallery.LightboxFromQuery(q.Get("preview"))
	if src, open := lb.Current(); open && !slices.ContainsFunc(items, func(it content.GalleryItem) bool { return it.Src == src }) {
		lb.Close()
	}

	tr := tracker.New(content.SectionIDs())
	seen := make([]tracker.Entry, 0, len(q["section"]))
	for _, id := range q["section"] {
		seen = append(seen, tracker.Entry{ID: id, Visible: true})
	}
	tr.Observe(seen)

	var status string
	switch {
	case q.Get("sent") == "1":
		status = flow.StatusSent
	case q.Get("contact") == "invalid":
		status = contactInvalid
	}

	h.render(w, http.StatusOK, SitePage(SiteData{
		NavLinks:          content.NavLinks(),
		Items:             items,
		Services:          content.Services(),
		Testimonials:      content.Testimonials(),
		AboutHTML:         h.aboutHTML,
		Tag:               q.Get("tag"),
		Preview:           lb,
		Active:            tr.Active(),
		ContactStatus:     status,
		ShowPreloader:     r.URL.RawQuery == "" && h.opts.Preloader.Visible(0),
		PreloaderDuration: h.opts.Preloader.Duration,
		RootMargin:        h.opts.Band.RootMargin(),
		Year:              h.opts.Now().Year(),
	}))
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	if r.Method != http.MethodGet {
		status = http.StatusUnauthorized
	}
	h.render(w, status, LoginPage(""))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, http.StatusBadRequest, LoginPage(auth.ErrWrongPassword.Error()))
		return
	}
	err := h.opts.Gate.Login(w, r, r.PostForm.Get("password"))
	if errors.Is(err, auth.ErrWrongPassword) {
		h.render(w, http.StatusUnauthorized, LoginPage(err.Error()))
		return
	}
	if err != nil {
		h.opts.Logger.Error("admin login", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, ViewAdmin.Path(), http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.opts.Gate.Logout(w)
	http.Redirect(w, r, ViewSite.Path(), http.StatusSeeOther)
}

// editorData loads the working list, its export snippet and recent messages.
func (h *Handler) editorData(ctx context.Context, formatName string) (EditorData, error) {
	f, err := gallery.ParseFormat(formatName)
	if err != nil {
		f = gallery.FormatGo
	}
	items, err := h.opts.Gallery.List(ctx)
	if err != nil {
		return EditorData{}, err
	}
	snippet, err := gallery.Export(items, f)
	if err != nil {
		return EditorData{}, err
	}
	highlighted, err := h.opts.Renderer.Highlight(snippet, f.Lang())
	if err != nil {
		return EditorData{}, err
	}

	d := EditorData{
		Items:       items,
		Format:      f,
		Snippet:     snippet,
		SnippetHTML: highlighted,
		CopyLabel:   h.copyAck.Label(),
	}
	if h.opts.Messages != nil {
		msgs, err := h.opts.Messages.List(ctx, recentMessages)
		if err != nil {
			return EditorData{}, err
		}
		d.Messages = msgs
	}
	return d, nil
}

func (h *Handler) editor(w http.ResponseWriter, r *http.Request) {
	d, err := h.editorData(r.Context(), r.URL.Query().Get("format"))
	if err != nil {
		h.opts.Logger.Error("loading editor", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.render(w, http.StatusOK, EditorPage(d))
}

func (h *Handler) record(ctx context.Context, action audit.Action, subject, detail string) {
	if h.opts.Recorder == nil {
		return
	}
	err := h.opts.Recorder.Log(ctx, audit.Entry{
		Actor:   audit.ActorAdmin,
		Action:  action,
		Subject: subject,
		Detail:  detail,
	})
	if err != nil {
		h.opts.Logger.Warn("audit log failed", zap.String("action", string(action)), zap.Error(err))
	}
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	item := content.GalleryItem{
		Src:   r.PostForm.Get("src"),
		Title: r.PostForm.Get("title"),
		Tag:   r.PostForm.Get("tag"),
	}

	added, err := h.opts.Gallery.Add(r.Context(), item)
	if errors.Is(err, gallery.ErrIncomplete) {
		d, lerr := h.editorData(r.Context(), "")
		if lerr != nil {
			h.opts.Logger.Error("loading editor", zap.Error(lerr))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		d.Alert = gallery.ErrIncomplete.Error()
		d.Draft = item
		h.render(w, http.StatusUnprocessableEntity, EditorPage(d))
		return
	}
	if err != nil {
		h.opts.Logger.Error("adding gallery item", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.record(r.Context(), audit.ActionGalleryItemAdded, added.Src, added.Title)
	http.Redirect(w, r, ViewAdmin.Path(), http.StatusSeeOther)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	src := r.PostForm.Get("src")
	if src == "" {
		http.Error(w, "src is required", http.StatusBadRequest)
		return
	}

	n, err := h.opts.Gallery.Delete(r.Context(), src)
	if err != nil {
		h.opts.Logger.Error("deleting gallery item", zap.String("src", src), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.record(r.Context(), audit.ActionGalleryItemRemoved, src, strconv.FormatInt(n, 10))
	http.Redirect(w, r, ViewAdmin.Path(), http.StatusSeeOther)
}

func (h *Handler) resetItems(w http.ResponseWriter, r *http.Request) {
	canonical := content.Gallery()
	if err := h.opts.Gallery.Reset(r.Context(), canonical); err != nil {
		h.opts.Logger.Error("resetting gallery", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.record(r.Context(), audit.ActionGalleryReset, "", strconv.Itoa(len(canonical)))
	http.Redirect(w, r, ViewAdmin.Path(), http.StatusSeeOther)
}

// snippetCopied acknowledges a clipboard copy of the export snippet.
func (h *Handler) snippetCopied(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	f, err := gallery.ParseFormat(r.PostForm.Get("format"))
	if err != nil {
		f = gallery.FormatGo
	}

	h.copyAck.Ack()
	h.record(r.Context(), audit.ActionGalleryExported, "clipboard", string(f))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ideasPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, IdeasPage(IdeasData{Enabled: h.opts.Ideas != nil}))
}

func (h *Handler) ideasSubmit(w http.ResponseWriter, r *http.Request) {
	if h.opts.Ideas == nil {
		h.render(w, http.StatusServiceUnavailable, IdeasPage(IdeasData{}))
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	prompt := r.PostForm.Get("prompt")
	d := IdeasData{Prompt: prompt, Enabled: true}
	result, err := h.opts.Ideas.Generate(r.Context(), prompt)
	if err != nil {
		d.Error = err.Error()
		h.render(w, http.StatusBadGateway, IdeasPage(d))
		return
	}
	d.Ideas = result
	h.render(w, http.StatusOK, IdeasPage(d))
}
