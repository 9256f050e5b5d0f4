package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poise-dev/poise/internal/models"
	"github.com/poise-dev/poise/internal/storage"
)

// PersonService owns the person lifecycle rules, including the
// delete-safety checks against project references.
type PersonService struct {
	store storage.PersonStore
}

// NewPersonService creates a new PersonService with the given storage backend.
func NewPersonService(store storage.PersonStore) *PersonService {
	if store == nil {
		panic("service: nil PersonStore")
	}
	return &PersonService{store: store}
}

// CreatePerson persists a new person; on success the message embeds the
// generated ID.
func (s *PersonService) CreatePerson(ctx context.Context, req PersonCreateRequest) Result {
	slog.Info("CreatePerson request received", "name", req.Name, "role", req.Role)

	person := &models.Person{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Role:    req.Role,
	}

	id, err := s.store.CreatePerson(ctx, person)
	if err != nil || id <= 0 {
		slog.Error("CreatePerson failed", "error", err)
		return failed("Failed to create person")
	}

	slog.Info("Person created", "person_id", id)
	return succeeded(fmt.Sprintf("Person created successfully with ID: %d", id))
}

// UpdatePerson applies a partial update to an existing person. Only
// fields supplied in the request overwrite the stored values.
func (s *PersonService) UpdatePerson(ctx context.Context, personID int64, req PersonUpdateRequest) Result {
	slog.Info("UpdatePerson request received", "person_id", personID)

	person, err := s.store.GetPersonByID(ctx, personID)
	if err != nil {
		slog.Error("UpdatePerson lookup failed", "person_id", personID, "error", err)
	}
	if person == nil {
		return failed("Person not found")
	}

	if v, ok := req.Name.Get(); ok {
		person.Name = v
	}
	if v, ok := req.Phone.Get(); ok {
		person.Phone = v
	}
	if v, ok := req.Email.Get(); ok {
		person.Email = v
	}
	if v, ok := req.Address.Get(); ok {
		person.Address = v
	}
	if v, ok := req.Role.Get(); ok {
		person.Role = v
	}

	if err := s.store.UpdatePerson(ctx, person); err != nil {
		slog.Error("UpdatePerson failed", "person_id", personID, "error", err)
		return failed("Failed to update person")
	}

	slog.Info("Person updated", "person_id", personID)
	return succeeded("Person updated successfully")
}

// DeletePerson removes a person after the referential safety check: a
// customer who is referenced by any project's customer column cannot be
// deleted, because every project requires a customer. The check lives
// here, not in the presentation layer, so no caller can bypass it.
// References through the optional role columns do not block deletion;
// callers can list them via ProjectsLinkedTo to warn first.
func (s *PersonService) DeletePerson(ctx context.Context, personID int64) Result {
	slog.Info("DeletePerson request received", "person_id", personID)

	person, err := s.store.GetPersonByID(ctx, personID)
	if err != nil {
		slog.Error("DeletePerson lookup failed", "person_id", personID, "error", err)
	}
	if person == nil {
		return failed("Person not found")
	}

	if strings.EqualFold(person.Role, "customer") {
		referenced, err := s.store.IsCustomerOnProjects(ctx, personID)
		if err != nil {
			slog.Error("DeletePerson customer check failed", "person_id", personID, "error", err)
			return failed("Failed to delete person")
		}
		if referenced {
			slog.Warn("DeletePerson blocked: customer assigned to projects", "person_id", personID)
			return failed("Cannot delete this customer: They are assigned to active projects.")
		}
	}

	if err := s.store.DeletePerson(ctx, personID); err != nil {
		slog.Error("DeletePerson failed", "person_id", personID, "error", err)
		return failed("Failed to delete person")
	}

	slog.Info("Person deleted", "person_id", personID)
	return succeeded("Person deleted successfully")
}

// ProjectsLinkedTo lists the names of projects referencing the person
// as architect, contractor, engineer, or manager. Deleting such a
// person is allowed, but callers should surface these as a warning
// before confirming.
func (s *PersonService) ProjectsLinkedTo(ctx context.Context, personID int64) []string {
	names, err := s.store.ProjectNamesLinkedTo(ctx, personID)
	if err != nil {
		slog.Error("ProjectsLinkedTo failed", "person_id", personID, "error", err)
		return nil
	}
	return names
}

// FindAll returns every person. Read operations degrade to empty
// results on storage failure.
func (s *PersonService) FindAll(ctx context.Context) []models.Person {
	people, err := s.store.ListPeople(ctx)
	if err != nil {
		slog.Error("FindAll failed", "error", err)
		return nil
	}
	return people
}

// FindByID returns the person with the given ID, or nil if absent.
func (s *PersonService) FindByID(ctx context.Context, personID int64) *models.Person {
	person, err := s.store.GetPersonByID(ctx, personID)
	if err != nil {
		slog.Error("FindByID failed", "person_id", personID, "error", err)
		return nil
	}
	return person
}

// FindByName returns the person with the exact name, or nil if absent.
func (s *PersonService) FindByName(ctx context.Context, name string) *models.Person {
	person, err := s.store.GetPersonByName(ctx, name)
	if err != nil {
		slog.Error("FindByName failed", "name", name, "error", err)
		return nil
	}
	return person
}

// FindByRole returns everyone with the given role, case-insensitively.
func (s *PersonService) FindByRole(ctx context.Context, role string) []models.Person {
	people, err := s.store.ListPeopleByRole(ctx, role)
	if err != nil {
		slog.Error("FindByRole failed", "role", role, "error", err)
		return nil
	}
	return people
}
