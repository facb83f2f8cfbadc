package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cakeart/cakeart/internal/audit"
	"github.com/cakeart/cakeart/internal/auth"
	"github.com/cakeart/cakeart/internal/contact"
	"github.com/cakeart/cakeart/internal/content"
	"github.com/cakeart/cakeart/internal/db"
	"github.com/cakeart/cakeart/internal/flow"
	"github.com/cakeart/cakeart/internal/gallery"
	"github.com/cakeart/cakeart/internal/ideas"
	"github.com/cakeart/cakeart/internal/llm"
)

const testPassword = "secret-pass"

type fakeProvider struct {
	content string
	err     error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(_ context.Context, _ llm.Request) (*llm.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Response{Content: f.content, Model: "fake"}, nil
}

type fixture struct {
	router *chi.Mux
	store  *gallery.Store
	audit  *audit.Store
}

func setup(t *testing.T, svc *ideas.Service, mods ...func(*Options)) *fixture {
	t.Helper()
	database, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	store := gallery.NewStore(database)
	_, err = store.Seed(context.Background(), content.Gallery())
	require.NoError(t, err)

	auditStore := audit.NewStore(database)
	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)
	sessions, err := auth.NewSessions("test-secret", time.Hour)
	require.NoError(t, err)
	gate := auth.NewGate(hash, sessions, auditStore, zap.NewNop())

	opts := Options{
		Gallery:  store,
		Messages: contact.NewStore(database),
		Gate:     gate,
		Ideas:    svc,
		Recorder: auditStore,
		Logger:   zap.NewNop(),
		Now:      func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) },
	}
	for _, mod := range mods {
		mod(&opts)
	}
	h, err := NewHandler(opts)
	require.NoError(t, err)

	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return &fixture{router: r, store: store, audit: auditStore}
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) get(target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return f.do(req)
}

func (f *fixture) post(target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return f.do(req)
}

func (f *fixture) login(t *testing.T) *http.Cookie {
	t.Helper()
	w := f.post("/admin/login", url.Values{"password": {testPassword}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	t.Fatal("login did not set the session cookie")
	return nil
}

func TestResolveFragment(t *testing.T) {
	tests := []struct {
		hash string
		want View
	}{
		{"#/admin", ViewAdmin},
		{"", ViewSite},
		{"#about", ViewSite},
		{"#/admin/x", ViewSite},
		{"#admin", ViewSite},
	}
	for _, tt := range tests {
		if got := ResolveFragment(tt.hash); got != tt.want {
			t.Errorf("ResolveFragment(%q) = %v, want %v", tt.hash, got, tt.want)
		}
	}
	assert.Equal(t, "/admin", ViewAdmin.Path())
	assert.Equal(t, "/", ViewSite.Path())
}

func TestWordDelays(t *testing.T) {
	got := WordDelays("کیک‌آرت فرزین عزیز")
	want := []float64{0.3, 0.45, 0.6}
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9)
	}
}

func TestCopyright(t *testing.T) {
	assert.Equal(t, "© 2026 کیک‌آرت. تمام حقوق محفوظ است.", Copyright(2026))
}

func TestSitePageFreshLoad(t *testing.T) {
	f := setup(t, nil)

	w := f.get("/")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, `id="preloader"`)
	assert.Contains(t, body, `data-preloader-ms="2500"`)
	assert.Contains(t, body, `data-root-margin="-30% 0px -30% 0px"`)
	assert.Contains(t, body, `data-admin-fragment="#/admin" data-admin-path="/admin"`)
	for _, id := range content.SectionIDs() {
		assert.Contains(t, body, `id="`+id+`"`)
	}
	for _, it := range content.Gallery() {
		assert.Contains(t, body, it.Title)
	}
	assert.Contains(t, body, `class="lightbox" hidden`)
	assert.Contains(t, body, `class="nav-link active" data-section="home"`)
	assert.Contains(t, body, Copyright(2026))
	assert.Contains(t, body, "کیک‌های هنری و سفارشی</strong>")
}

func TestSitePageFilter(t *testing.T) {
	f := setup(t, nil)

	w := f.get("/?" + url.Values{"tag": {"تولد"}}.Encode())
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.NotContains(t, body, `id="preloader"`)
	assert.Contains(t, body, "غرق در شکلات")
	for _, it := range content.Gallery()[1:] {
		assert.NotContains(t, body, it.Title)
	}
	assert.Contains(t, body, `class="pill selected" aria-current="true">تولد</a>`)
}

func TestSitePageLightbox(t *testing.T) {
	f := setup(t, nil)

	w := f.get("/?" + url.Values{"preview": {"assets/gallery-2.jpg"}}.Encode())
	body := w.Body.String()
	assert.NotContains(t, body, `class="lightbox" hidden`)
	assert.Contains(t, body, `class="lightbox-image" src="/assets/gallery-2.jpg"`)

	w = f.get("/?" + url.Values{"preview": {"assets/unknown.jpg"}}.Encode())
	assert.Contains(t, w.Body.String(), `class="lightbox" hidden`)
}

func TestSitePageSectionAndContactStatus(t *testing.T) {
	f := setup(t, nil)

	w := f.get("/?section=services&sent=1")
	body := w.Body.String()
	assert.Contains(t, body, `class="nav-link active" data-section="services"`)
	assert.Contains(t, body, flow.StatusSent)
	assert.Contains(t, body, `data-clear-ms="5000" style="--status-clear-delay: 5000ms"`)

	w = f.get("/?contact=invalid")
	body = w.Body.String()
	assert.Contains(t, body, contactInvalid)
	assert.NotContains(t, body, "data-clear-ms")

	w = f.get("/?section=nowhere")
	assert.Contains(t, w.Body.String(), `class="nav-link active" data-section="home"`)
}

func TestSitePageTopmostSectionWins(t *testing.T) {
	f := setup(t, nil)

	w := f.get("/?section=contact&section=nowhere&section=portfolio")
	body := w.Body.String()
	assert.Contains(t, body, `class="nav-link active" data-section="portfolio"`)
	assert.Contains(t, body, `data-active="portfolio"`)
}

func TestSitePageViewRedirect(t *testing.T) {
	f := setup(t, nil)

	w := f.get("/?view=admin")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	w = f.get("/?view=about")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-view="site"`)
}

func TestSitePagePreloaderDisabled(t *testing.T) {
	f := setup(t, nil, func(o *Options) {
		o.Preloader = &flow.Preloader{}
	})

	w := f.get("/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `id="preloader"`)
}

func TestAdminRequiresLogin(t *testing.T) {
	f := setup(t, nil)

	w := f.get("/admin")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "ورود به پنل مدیریت")
	assert.NotContains(t, body, `id="portfolio"`)
	assert.NotContains(t, body, `id="preloader"`)

	w = f.post("/admin/gallery/reset", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLogin(t *testing.T) {
	f := setup(t, nil)

	w := f.post("/admin/login", url.Values{"password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), auth.ErrWrongPassword.Error())

	cookie := f.login(t)
	w = f.get("/admin", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "پنل مدیریت گالری")
	assert.Contains(t, body, "var galleryItems = []content.GalleryItem{")
	assert.Contains(t, body, flow.LabelCopy)

	w = f.get("/admin?format=json", cookie)
	assert.Contains(t, w.Body.String(), "export const galleryItems: GalleryItem[] =")

	entries, err := f.audit.Query(context.Background(), audit.Filter{})
	require.NoError(t, err)
	actions := map[audit.Action]int{}
	for _, e := range entries {
		actions[e.Action]++
	}
	assert.Equal(t, 1, actions[audit.ActionLoginFailed])
	assert.Equal(t, 1, actions[audit.ActionLoginSucceeded])
}

func TestAdminCopyAck(t *testing.T) {
	sched := &flow.ManualScheduler{}
	f := setup(t, nil, func(o *Options) { o.Scheduler = sched })

	w := f.post("/admin/gallery/copied", url.Values{"format": {"json"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	cookie := f.login(t)
	w = f.get("/admin", cookie)
	assert.Contains(t, w.Body.String(), `class="btn-copy" data-copy-target="snippet"`)

	w = f.post("/admin/gallery/copied", url.Values{"format": {"json"}}, cookie)
	require.Equal(t, http.StatusNoContent, w.Code)

	body := f.get("/admin", cookie).Body.String()
	assert.Contains(t, body, `class="btn-copy copied"`)
	assert.Contains(t, body, flow.LabelCopied+"</button>")

	sched.Advance(flow.DefaultCopyAckDuration)
	body = f.get("/admin", cookie).Body.String()
	assert.Contains(t, body, flow.LabelCopy+"</button>")

	entries, err := f.audit.Query(context.Background(), audit.Filter{Actions: []audit.Action{audit.ActionGalleryExported}})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "clipboard", entries[0].Subject)
	assert.Equal(t, "json", entries[0].Detail)
}

func TestAdminAddDeleteReset(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()
	cookie := f.login(t)

	w := f.post("/admin/gallery/add", url.Values{"src": {"assets/"}, "title": {"X"}, "tag": {"T"}}, cookie)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), gallery.ErrIncomplete.Error())
	items, err := f.store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, len(content.Gallery()))

	w = f.post("/admin/gallery/add", url.Values{"src": {"assets/x.jpg"}, "title": {"X"}, "tag": {"T"}}, cookie)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	items, err = f.store.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, len(content.Gallery())+1)
	assert.Equal(t, content.GalleryItem{Src: "assets/x.jpg", Title: "X", Tag: "T"}, items[len(items)-1])

	w = f.post("/admin/gallery/delete", url.Values{"src": {"assets/gallery-1.jpg"}}, cookie)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	items, err = f.store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, len(content.Gallery()))
	for _, it := range items {
		assert.NotEqual(t, "assets/gallery-1.jpg", it.Src)
	}

	w = f.post("/admin/gallery/reset", nil, cookie)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	items, err = f.store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, content.Gallery(), items)
}

func TestAdminLogout(t *testing.T) {
	f := setup(t, nil)
	f.login(t)

	w := f.post("/admin/logout", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "expected the session cookie to be cleared")
}

func TestIdeasPageDisabled(t *testing.T) {
	f := setup(t, nil)

	w := f.get("/ideas")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "این بخش در حال حاضر فعال نیست.")

	w = f.post("/ideas", url.Values{"prompt": {"تولد"}})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestIdeasSubmit(t *testing.T) {
	provider := &fakeProvider{content: `{"ideas":[{"name":"باغ طلایی","description":"کیک سه طبقه","flavors":["وانیل","پسته","زعفران"]}]}`}
	f := setup(t, ideas.NewService(provider, "", zap.NewNop()))

	w := f.post("/ideas", url.Values{"prompt": {"تولد، سبک مینیمال"}})
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "باغ طلایی")
	assert.Contains(t, body, "وانیل، پسته، زعفران")
}

func TestIdeasSubmitFailure(t *testing.T) {
	provider := &fakeProvider{content: `not json`}
	f := setup(t, ideas.NewService(provider, "", zap.NewNop()))

	w := f.post("/ideas", url.Values{"prompt": {"تولد"}})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), ideas.ErrGeneration.Error())
}

func TestStaticAssets(t *testing.T) {
	f := setup(t, nil)

	w := f.get("/static/site.js")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "#/admin")

	w = f.get("/static/site.css")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".masonry-grid")
}
