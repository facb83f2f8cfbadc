package ideas

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Ideas []Idea `json:"ideas,omitempty"`
	Error string `json:"error,omitempty"`
}

// RegisterRoutes mounts the JSON idea endpoint.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/api/ideas", handleGenerate(svc))
}

func handleGenerate(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, generateResponse{Error: "invalid JSON body"})
			return
		}

		ideas, err := svc.Generate(r.Context(), req.Prompt)
		if err != nil {
			writeJSON(w, http.StatusBadGateway, generateResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, generateResponse{Ideas: ideas})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v)
}
