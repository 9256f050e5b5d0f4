package web

import (
	"net/http"
	"strings"

	"github.com/poise-dev/poise/internal/models"
	"github.com/poise-dev/poise/internal/notify"
	"github.com/poise-dev/poise/internal/service"
)

// ProjectHandler serves the /projects routes.
type ProjectHandler struct {
	projects *service.ProjectService
	people   *service.PersonService
	hub      *notify.Hub
}

// List returns the summary view of every project.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries := h.projects.ListSummaries(r.Context())
	if summaries == nil {
		summaries = []models.ProjectSummary{}
	}
	writeJSON(w, http.StatusOK, summaries)
}

// ListIncomplete returns the summary view of unfinalised projects.
func (h *ProjectHandler) ListIncomplete(w http.ResponseWriter, r *http.Request) {
	summaries := h.projects.ListIncomplete(r.Context())
	if summaries == nil {
		summaries = []models.ProjectSummary{}
	}
	writeJSON(w, http.StatusOK, summaries)
}

// ListOverdue returns the summary view of unfinalised projects past
// their deadline.
func (h *ProjectHandler) ListOverdue(w http.ResponseWriter, r *http.Request) {
	summaries := h.projects.ListOverdue(r.Context())
	if summaries == nil {
		summaries = []models.ProjectSummary{}
	}
	writeJSON(w, http.StatusOK, summaries)
}

// Get returns a project with every field.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	project := h.projects.FindByID(r.Context(), id)
	if project == nil {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Search looks a project up by exact name (case-insensitive).
func (h *ProjectHandler) Search(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}
	project := h.projects.FindByName(r.Context(), name)
	if project == nil {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Create adds a new project. When no name is given, one is derived from
// the building type and the customer's name, the same convention the
// data-capture screens use.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.ProjectCreateRequest
	if !decode(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Name) == "" && req.CustomerID > 0 {
		if customer := h.people.FindByID(r.Context(), req.CustomerID); customer != nil {
			req.Name = req.BuildingType + " " + customer.Name
		}
	}

	writeJSON(w, http.StatusOK, h.projects.CreateProject(r.Context(), req))
}

// Update applies a partial update; absent fields keep their stored
// values.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req service.ProjectUpdateRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.projects.UpdateProject(r.Context(), id, req))
}

// Delete removes a project.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.projects.DeleteProject(r.Context(), id))
}

type finaliseRequest struct {
	CompletionDate models.Date `json:"completionDate"`
}

type finaliseResponse struct {
	service.Result
	OutstandingFee string `json:"outstandingFee,omitempty"`
}

// Finalise marks a project complete. The completion date defaults to
// today when absent. On success, watchers of the project are notified
// and, when the fee is not settled, the response carries the amount
// still owed so the caller can raise an invoice.
func (h *ProjectHandler) Finalise(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req finaliseRequest
	if r.ContentLength != 0 && !decode(w, r, &req) {
		return
	}
	if req.CompletionDate.IsZero() {
		req.CompletionDate = models.Today()
	}

	response := finaliseResponse{Result: h.projects.FinaliseProject(r.Context(), id, req.CompletionDate)}
	if response.Success {
		if project := h.projects.FindByID(r.Context(), id); project != nil {
			h.hub.BroadcastFinalised(project.ID, project.Name)
			if outstanding := project.TotalFee - project.AmountPaidToDate; outstanding > 0 {
				response.OutstandingFee = models.FormatFee(outstanding)
			}
		}
	}
	writeJSON(w, http.StatusOK, response)
}

// Watch subscribes the caller to finalisation notifications for a
// project over WebSocket.
func (h *ProjectHandler) Watch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if h.hub == nil {
		writeError(w, http.StatusNotFound, "notifications disabled")
		return
	}
	h.hub.Subscribe(w, r, id)
}
