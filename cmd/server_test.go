package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cakeart/cakeart/internal/auth"
	"github.com/cakeart/cakeart/internal/config"
	"github.com/cakeart/cakeart/internal/content"
	"github.com/cakeart/cakeart/internal/db"
	"github.com/cakeart/cakeart/internal/gallery"
	"github.com/cakeart/cakeart/internal/server"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	database, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	store := gallery.NewStore(database)
	_, err = store.Seed(context.Background(), content.Gallery())
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	cfg.AssetsDir = t.TempDir()

	hash, err := auth.HashPassword("secret-pass")
	require.NoError(t, err)
	sessions, err := auth.NewSessions("", cfg.Admin.SessionTTL)
	require.NoError(t, err)

	srv := server.New(server.Config{CORSOrigins: cfg.Server.CORSOrigins}, zap.NewNop())
	require.NoError(t, registerAllRoutes(srv, cfg, database, store, sessions, hash, nil))
	return srv
}

func TestRegisterAllRoutes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{"GET", "/healthz", http.StatusOK},
		{"GET", "/", http.StatusOK},
		{"GET", "/api/gallery", http.StatusOK},
		{"GET", "/api/admin/gallery", http.StatusUnauthorized},
		{"GET", "/api/admin/audit", http.StatusUnauthorized},
		{"GET", "/api/admin/messages", http.StatusUnauthorized},
		{"POST", "/api/ideas", http.StatusNotFound},
		{"GET", "/static/site.css", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestContactFormRedirects(t *testing.T) {
	srv := newTestServer(t)

	post := func(form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/contact", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		return w
	}

	w := post(url.Values{"name": {"سارا"}, "email": {"sara@example.com"}, "message": {"سلام"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?sent=1#contact", w.Header().Get("Location"))

	w = post(url.Values{"name": {"سارا"}, "email": {"not-an-email"}, "message": {"سلام"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?contact=invalid#contact", w.Header().Get("Location"))
}
