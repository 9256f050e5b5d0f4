// Package web exposes the record-management operations over a JSON
// HTTP API. It translates requests into service calls and relays the
// uniform service outcomes; it holds no business rules of its own.
package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/poise-dev/poise/internal/notify"
	"github.com/poise-dev/poise/internal/service"
)

// NewRouter wires every route to its handler. The hub may be nil, in
// which case finalisation notifications are dropped.
func NewRouter(projects *service.ProjectService, people *service.PersonService, hub *notify.Hub) *http.ServeMux {
	mux := http.NewServeMux()

	ph := &ProjectHandler{projects: projects, people: people, hub: hub}
	mux.HandleFunc("GET /projects", ph.List)
	mux.HandleFunc("GET /projects/incomplete", ph.ListIncomplete)
	mux.HandleFunc("GET /projects/overdue", ph.ListOverdue)
	mux.HandleFunc("GET /projects/search", ph.Search)
	mux.HandleFunc("GET /projects/{id}", ph.Get)
	mux.HandleFunc("POST /projects", ph.Create)
	mux.HandleFunc("PUT /projects/{id}", ph.Update)
	mux.HandleFunc("DELETE /projects/{id}", ph.Delete)
	mux.HandleFunc("POST /projects/{id}/finalise", ph.Finalise)
	mux.HandleFunc("GET /projects/{id}/watch", ph.Watch)

	pe := &PersonHandler{people: people}
	mux.HandleFunc("GET /people", pe.List)
	mux.HandleFunc("GET /people/search", pe.Search)
	mux.HandleFunc("GET /people/role/{role}", pe.ListByRole)
	mux.HandleFunc("GET /people/{id}", pe.Get)
	mux.HandleFunc("POST /people", pe.Create)
	mux.HandleFunc("PUT /people/{id}", pe.Update)
	mux.HandleFunc("DELETE /people/{id}", pe.Delete)

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// pathID parses the {id} path segment. Returns false after writing a
// 400 response if the segment is not a number.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
