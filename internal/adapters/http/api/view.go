package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	service "github.com/okian/statusboard/internal/app"
	"github.com/okian/statusboard/internal/domain/dashboard"
	"github.com/okian/statusboard/internal/domain/model"
	"github.com/okian/statusboard/pkg/logger"
)

// checklist is the static list of manual verification items on the page.
var checklist = []string{
	"Frontend container builds correctly",
	"Backend API communication works",
	"Environment variables are properly configured",
	"Network connectivity between containers",
	"Static file serving (CSS)",
}

// pageData is everything the dashboard template renders.
type pageData struct {
	ID          string
	Status      model.ConnectionStatus
	Loading     bool
	Error       string
	HasData     bool
	Data        string
	Endpoints   []model.Endpoint
	Version     string
	BaseURL     string
	Environment string
	RenderedAt  string
	Refresh     int
	Checklist   []string
}

// handleMount handles GET / by mounting a new dashboard and redirecting to it.
func (s *Server) handleMount(w http.ResponseWriter, r *http.Request) {
	id, _, err := s.deps.Mount(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "mount failed", logger.Error(err))
		writeError(w, http.StatusServiceUnavailable, "mount_failed", err)
		return
	}
	http.Redirect(w, r, "/view/"+id, http.StatusSeeOther)
}

// handleView handles GET /view/{id} by rendering the current view state.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	d, ok := s.lookup(w, r, id)
	if !ok {
		return
	}

	data := s.buildPage(id, d.Snapshot())
	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		s.logger.Error(r.Context(), "render failed", logger.String("mount", id), logger.Error(err))
		writeError(w, http.StatusInternalServerError, "render_failed", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

// handleFetchForm handles POST /view/{id}/fetch from the endpoint buttons.
func (s *Server) handleFetchForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	d, ok := s.lookup(w, r, id)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}
	if !s.trigger(w, r, d, r.PostForm.Get("endpoint")) {
		return
	}
	http.Redirect(w, r, "/view/"+id, http.StatusSeeOther)
}

// lookup resolves the mount for id, answering 404 when it is gone.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request, id string) (*dashboard.Dashboard, bool) {
	d, err := s.deps.Dashboard(r.Context(), id)
	if err != nil {
		s.lookupError(w, err)
		return nil, false
	}
	return d, true
}

func (s *Server) lookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrMountNotFound) {
		writeError(w, http.StatusNotFound, "not_found", err)
		return
	}
	writeError(w, http.StatusServiceUnavailable, "unavailable", err)
}

// trigger validates path against the dashboard's endpoints and starts the
// fetch. It answers the error itself and reports whether it succeeded.
func (s *Server) trigger(w http.ResponseWriter, r *http.Request, d *dashboard.Dashboard, path string) bool {
	if _, ok := model.FindEndpoint(d.Endpoints(), path); !ok {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %q", ErrUnknownEndpoint, path))
		return false
	}
	if err := d.Trigger(path); err != nil {
		// Evicted between lookup and trigger.
		writeError(w, http.StatusNotFound, "not_found", err)
		return false
	}
	s.logger.Debug(r.Context(), "fetch triggered", logger.String("endpoint", path))
	return true
}

func (s *Server) buildPage(id string, snap dashboard.Snapshot) pageData {
	return pageData{
		ID:          id,
		Status:      snap.Status,
		Loading:     snap.Loading(),
		Error:       snap.Err(),
		HasData:     snap.HasData(),
		Data:        prettyJSON(snap.Data()),
		Endpoints:   snap.Endpoints,
		Version:     s.version,
		BaseURL:     snap.BaseURL,
		Environment: snap.Environment,
		RenderedAt:  time.Now().Format(time.RFC1123),
		Refresh:     s.refresh,
		Checklist:   checklist,
	}
}

// prettyJSON indents raw with two spaces. Invalid input is returned as is.
func prettyJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
