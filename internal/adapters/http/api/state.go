package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okian/statusboard/internal/domain/model"
)

// stateResponse is the JSON rendition of a view state.
type stateResponse struct {
	ConnectionStatus model.ConnectionStatus `json:"connectionStatus"`
	Loading          bool                   `json:"loading"`
	Error            *string                `json:"error"`
	BackendData      json.RawMessage        `json:"backendData"`
}

func newStateResponse(v model.View) stateResponse {
	resp := stateResponse{
		ConnectionStatus: v.Status,
		Loading:          v.Loading(),
		BackendData:      json.RawMessage("null"),
	}
	if msg := v.Err(); msg != "" {
		resp.Error = &msg
	}
	if data := v.Data(); len(data) > 0 {
		resp.BackendData = data
	}
	return resp
}

// handleState handles GET /api/view/{id}.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookup(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newStateResponse(d.View()))
}

// handleFetchAPI handles POST /api/view/{id}/fetch?endpoint=.
func (s *Server) handleFetchAPI(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookup(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	if !s.trigger(w, r, d, r.URL.Query().Get("endpoint")) {
		return
	}
	writeJSON(w, http.StatusAccepted, newStateResponse(d.View()))
}

// handleUnmount handles DELETE /api/view/{id}.
func (s *Server) handleUnmount(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Unmount(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.lookupError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
