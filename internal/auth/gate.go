package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/cakeart/cakeart/internal/audit"
)

// AdminSubject is the JWT subject of the single admin account.
const AdminSubject = "admin"

// Recorder stores audit entries for login attempts.
type Recorder interface {
	Log(ctx context.Context, entry audit.Entry) error
}

// Gate checks the admin password and guards admin routes with a session cookie.
type Gate struct {
	hash     string
	sessions *Sessions
	rec      Recorder
	logger   *zap.Logger
}

// NewGate creates a Gate for the given bcrypt hash.
func NewGate(hash string, sessions *Sessions, rec Recorder, logger *zap.Logger) *Gate {
	return &Gate{hash: hash, sessions: sessions, rec: rec, logger: logger}
}

// Login verifies password and, on success, sets the session cookie.
// A wrong password returns ErrWrongPassword.
func (g *Gate) Login(w http.ResponseWriter, r *http.Request, password string) error {
	ctx := r.Context()
	if err := VerifyPassword(g.hash, password); err != nil {
		g.record(ctx, audit.ActionLoginFailed, r.RemoteAddr)
		return err
	}

	token, exp, err := g.sessions.Issue(AdminSubject)
	if err != nil {
		return err
	}
	SetCookie(w, r, token, exp)
	g.record(ctx, audit.ActionLoginSucceeded, r.RemoteAddr)
	return nil
}

// Logout clears the session cookie.
func (g *Gate) Logout(w http.ResponseWriter) {
	ClearCookie(w)
}

// Authenticated reports whether r carries a valid admin session.
func (g *Gate) Authenticated(r *http.Request) bool {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return false
	}
	claims, err := g.sessions.Parse(c.Value)
	if err != nil {
		g.logger.Debug("rejected admin session", zap.Error(err))
		return false
	}
	return claims.Subject == AdminSubject
}

// RequireAdmin lets authenticated requests through. Others get 401 JSON when
// they ask for JSON, otherwise loginView is served in place of the page.
func (g *Gate) RequireAdmin(loginView http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if g.Authenticated(r) {
				next.ServeHTTP(w, r)
				return
			}
			if wantsJSON(r) || loginView == nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}
			loginView.ServeHTTP(w, r)
		})
	}
}

func wantsJSON(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}

func (g *Gate) record(ctx context.Context, action audit.Action, remote string) {
	if g.rec == nil {
		return
	}
	if err := g.rec.Log(ctx, audit.Entry{Actor: audit.ActorAdmin, Action: action, Detail: remote}); err != nil {
		g.logger.Warn("audit log failed", zap.String("action", string(action)), zap.Error(err))
	}
}
