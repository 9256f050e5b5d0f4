package web

import (
	"net/http"

	"github.com/poise-dev/poise/internal/models"
	"github.com/poise-dev/poise/internal/service"
)

// PersonHandler serves the /people routes.
type PersonHandler struct {
	people *service.PersonService
}

// List returns every person.
func (h *PersonHandler) List(w http.ResponseWriter, r *http.Request) {
	people := h.people.FindAll(r.Context())
	if people == nil {
		people = []models.Person{}
	}
	writeJSON(w, http.StatusOK, people)
}

// Get returns a single person.
func (h *PersonHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	person := h.people.FindByID(r.Context(), id)
	if person == nil {
		writeError(w, http.StatusNotFound, "Person not found")
		return
	}
	writeJSON(w, http.StatusOK, person)
}

// Search looks a person up by exact name.
func (h *PersonHandler) Search(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}
	person := h.people.FindByName(r.Context(), name)
	if person == nil {
		writeError(w, http.StatusNotFound, "Person not found")
		return
	}
	writeJSON(w, http.StatusOK, person)
}

// ListByRole returns everyone with the given role.
func (h *PersonHandler) ListByRole(w http.ResponseWriter, r *http.Request) {
	people := h.people.FindByRole(r.Context(), r.PathValue("role"))
	if people == nil {
		people = []models.Person{}
	}
	writeJSON(w, http.StatusOK, people)
}

// Create adds a new person.
func (h *PersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.PersonCreateRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.people.CreatePerson(r.Context(), req))
}

// Update applies a partial update; absent fields keep their stored
// values.
func (h *PersonHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req service.PersonUpdateRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.people.UpdatePerson(r.Context(), id, req))
}

// deletePersonResponse carries the delete outcome together with the
// advisory list of projects the person was linked to through the
// optional role columns.
type deletePersonResponse struct {
	service.Result
	LinkedProjects []string `json:"linkedProjects,omitempty"`
}

// Delete removes a person. The customer safety check is enforced by the
// service; the linked-project names are returned alongside the outcome
// so clients can show them as a warning.
func (h *PersonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	linked := h.people.ProjectsLinkedTo(r.Context(), id)
	result := h.people.DeletePerson(r.Context(), id)
	writeJSON(w, http.StatusOK, deletePersonResponse{Result: result, LinkedProjects: linked})
}
