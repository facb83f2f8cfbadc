package gallery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/cakeart/cakeart/internal/audit"
	"github.com/cakeart/cakeart/internal/content"
)

// Recorder stores audit entries for admin mutations.
type Recorder interface {
	Log(ctx context.Context, entry audit.Entry) error
}

// RegisterRoutes mounts the public gallery endpoint.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Get("/api/gallery", handlePublicList(store))
}

// RegisterAdminRoutes mounts the gallery editor endpoints under /gallery.
// Callers mount it inside the authenticated admin API group.
func RegisterAdminRoutes(r chi.Router, store *Store, rec Recorder, logger *zap.Logger) {
	h := &adminHandlers{store: store, rec: rec, logger: logger}
	r.Route("/gallery", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.add)
		r.Delete("/", h.remove)
		r.Post("/reset", h.reset)
		r.Get("/export", h.export)
	})
}

type publicListResponse struct {
	Tags  []string              `json:"tags"`
	Items []content.GalleryItem `json:"items"`
}

func handlePublicList(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := store.List(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, publicListResponse{
			Tags:  Tags(items),
			Items: Filter(items, r.URL.Query().Get("tag")),
		})
	}
}

type adminHandlers struct {
	store  *Store
	rec    Recorder
	logger *zap.Logger
}

func (h *adminHandlers) record(ctx context.Context, action audit.Action, subject, detail string) {
	err := h.rec.Log(ctx, audit.Entry{
		Actor:   audit.ActorAdmin,
		Action:  action,
		Subject: subject,
		Detail:  detail,
	})
	if err != nil {
		h.logger.Warn("audit log failed", zap.String("action", string(action)), zap.Error(err))
	}
}

func (h *adminHandlers) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *adminHandlers) add(w http.ResponseWriter, r *http.Request) {
	var item content.GalleryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	added, err := h.store.Add(r.Context(), item)
	if errors.Is(err, ErrIncomplete) {
		writeError(w, http.StatusUnprocessableEntity, ErrIncomplete.Error())
		return
	}
	if err != nil {
		h.logger.Error("adding gallery item", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.record(r.Context(), audit.ActionGalleryItemAdded, added.Src, added.Title)
	writeJSON(w, http.StatusCreated, added)
}

func (h *adminHandlers) remove(w http.ResponseWriter, r *http.Request) {
	src := r.URL.Query().Get("src")
	if src == "" {
		writeError(w, http.StatusBadRequest, "src is required")
		return
	}

	n, err := h.store.Delete(r.Context(), src)
	if err != nil {
		h.logger.Error("deleting gallery item", zap.String("src", src), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.record(r.Context(), audit.ActionGalleryItemRemoved, src, strconv.FormatInt(n, 10))
	writeJSON(w, http.StatusOK, map[string]int64{"removed": n})
}

func (h *adminHandlers) reset(w http.ResponseWriter, r *http.Request) {
	canonical := content.Gallery()
	if err := h.store.Reset(r.Context(), canonical); err != nil {
		h.logger.Error("resetting gallery", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.record(r.Context(), audit.ActionGalleryReset, "", strconv.Itoa(len(canonical)))
	writeJSON(w, http.StatusOK, canonical)
}

func (h *adminHandlers) export(w http.ResponseWriter, r *http.Request) {
	f, err := ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.store.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	snippet, err := Export(items, f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.record(r.Context(), audit.ActionGalleryExported, "", string(f))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(snippet))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v)
}
