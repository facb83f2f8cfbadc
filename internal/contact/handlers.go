package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/cakeart/cakeart/internal/audit"
	"github.com/cakeart/cakeart/internal/flow"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Recorder stores audit entries for received messages.
type Recorder interface {
	Log(ctx context.Context, entry audit.Entry) error
}

// Handler serves the contact form endpoints.
type Handler struct {
	store  *Store
	rec    Recorder
	logger *zap.Logger

	// Scheduler and delays for the live status flow.
	Scheduler  flow.Scheduler
	SendDelay  time.Duration
	ClearDelay time.Duration
}

// NewHandler creates a Handler with the default flow timing.
func NewHandler(store *Store, rec Recorder, logger *zap.Logger) *Handler {
	return &Handler{
		store:      store,
		rec:        rec,
		logger:     logger,
		Scheduler:  flow.RealScheduler{},
		SendDelay:  flow.DefaultSendDelay,
		ClearDelay: flow.DefaultClearDelay,
	}
}

// RegisterRoutes mounts the public contact endpoints.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/contact", h.handleForm)
	r.Get("/ws/contact", h.handleWebSocket)
}

// RegisterAdminRoutes mounts the message listing under /messages.
func RegisterAdminRoutes(r chi.Router, store *Store) {
	r.Get("/messages", func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		msgs, err := store.List(r.Context(), limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.Encode(msgs)
	})
}

// save persists m and records it in the audit log.
func (h *Handler) save(ctx context.Context, m Message) (Message, error) {
	saved, err := h.store.Save(ctx, m)
	if err != nil {
		return Message{}, err
	}
	if err := h.rec.Log(ctx, audit.Entry{
		Actor:   audit.ActorVisitor,
		Action:  audit.ActionContactReceived,
		Subject: saved.ID,
		Detail:  saved.Email,
	}); err != nil {
		h.logger.Warn("audit log failed", zap.Error(err))
	}
	h.logger.Info("contact message received", zap.String("id", saved.ID))
	return saved, nil
}

// handleForm is the no-script fallback: it saves the message and redirects
// back to the contact section with the outcome in the query string.
func (h *Handler) handleForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/?contact=invalid#contact", http.StatusSeeOther)
		return
	}

	m := Message{
		Name:       r.PostForm.Get("name"),
		Email:      r.PostForm.Get("email"),
		Body:       r.PostForm.Get("message"),
		RemoteAddr: r.RemoteAddr,
	}
	if _, err := h.save(r.Context(), m); err != nil {
		if errors.Is(err, ErrIncomplete) || errors.Is(err, ErrInvalidEmail) {
			http.Redirect(w, r, "/?contact=invalid#contact", http.StatusSeeOther)
			return
		}
		h.logger.Error("saving contact message", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/?sent=1#contact", http.StatusSeeOther)
}

// wsRequest is the incoming websocket message format.
type wsRequest struct {
	Type    string `json:"type"` // "submit"
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// wsResponse is the outgoing websocket message format.
type wsResponse struct {
	Type   string `json:"type"` // "status" or "error"
	Status string `json:"status"`
	Clear  bool   `json:"clear"`
}

// wsConn serialises writes from the read loop and flow timers.
type wsConn struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	logger *zap.Logger
}

func (c *wsConn) send(resp wsResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteJSON(resp); err != nil {
		c.logger.Debug("websocket write", zap.Error(err))
	}
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	raw, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer raw.Close()
	conn := &wsConn{conn: raw, logger: h.logger}

	cf := flow.NewContactFlow(h.Scheduler)
	cf.SendDelay = h.SendDelay
	cf.ClearDelay = h.ClearDelay
	cf.OnTransition(func(tr flow.Transition) {
		conn.send(wsResponse{Type: "status", Status: tr.Status, Clear: tr.ClearFields})
	})
	defer cf.Stop()

	for {
		_, msg, err := raw.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("websocket read", zap.Error(err))
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			conn.send(wsResponse{Type: "error", Status: "invalid message format"})
			continue
		}
		if req.Type != "submit" {
			conn.send(wsResponse{Type: "error", Status: "unknown message type: " + req.Type})
			continue
		}

		m := Message{Name: req.Name, Email: req.Email, Body: req.Message, RemoteAddr: r.RemoteAddr}
		if err := m.Validate(); err != nil {
			conn.send(wsResponse{Type: "error", Status: err.Error()})
			continue
		}

		cf.Submit()
		if _, err := h.save(r.Context(), m); err != nil {
			h.logger.Error("saving contact message", zap.Error(err))
			cf.Stop()
			conn.send(wsResponse{Type: "error", Status: "internal error"})
		}
	}
}
