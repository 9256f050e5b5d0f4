// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/poise-dev/poise/internal/models"
)

// ProjectStore defines the storage contract for project records.
//
// Lookups return (nil, nil) when no row matches; they never report
// absence through an error. The error return exists so implementations
// can surface storage failures for logging, but callers must treat a
// failed read the same as an absent row.
type ProjectStore interface {
	// ListProjectSummaries retrieves the id/name/status view of every
	// project, for list screens where full details aren't needed.
	ListProjectSummaries(ctx context.Context) ([]models.ProjectSummary, error)

	// GetProjectByID retrieves a project with all its fields, including
	// the person references. Returns (nil, nil) if no project has the ID.
	GetProjectByID(ctx context.Context, projectID int64) (*models.Project, error)

	// GetProjectByName retrieves a project by exact name,
	// case-insensitively. Returns (nil, nil) if no project matches.
	GetProjectByName(ctx context.Context, name string) (*models.Project, error)

	// CreateProject persists a new project and returns the assigned ID.
	// An ID of 0 with a non-nil error signals failure.
	CreateProject(ctx context.Context, project *models.Project) (int64, error)

	// UpdateProject overwrites every field of the project row identified
	// by project.ID. The row is written atomically.
	UpdateProject(ctx context.Context, project *models.Project) error

	// DeleteProject removes a project row. Deletion is immediate and
	// irreversible.
	DeleteProject(ctx context.Context, projectID int64) error

	// FinaliseProject marks a project finalised and records its
	// completion date. It only touches rows that are not yet finalised,
	// so a concurrent finalise cannot overwrite the first completion
	// date.
	FinaliseProject(ctx context.Context, projectID int64, completionDate models.Date) error

	// ListIncompleteProjects retrieves the summary view of projects that
	// are not yet finalised.
	ListIncompleteProjects(ctx context.Context) ([]models.ProjectSummary, error)

	// ListOverdueProjects retrieves the summary view of projects that are
	// not finalised and whose deadline has passed.
	ListOverdueProjects(ctx context.Context) ([]models.ProjectSummary, error)
}

// PersonStore defines the storage contract for person records.
// Same lookup contract as ProjectStore: absent rows are (nil, nil).
type PersonStore interface {
	// ListPeople retrieves every person.
	ListPeople(ctx context.Context) ([]models.Person, error)

	// GetPersonByID retrieves a person by ID. Returns (nil, nil) if no
	// person has the ID.
	GetPersonByID(ctx context.Context, personID int64) (*models.Person, error)

	// GetPersonByName retrieves a person by exact name. Returns
	// (nil, nil) if no person matches.
	GetPersonByName(ctx context.Context, name string) (*models.Person, error)

	// ListPeopleByRole retrieves everyone with the given role,
	// case-insensitively.
	ListPeopleByRole(ctx context.Context, role string) ([]models.Person, error)

	// CreatePerson persists a new person and returns the assigned ID.
	CreatePerson(ctx context.Context, person *models.Person) (int64, error)

	// UpdatePerson overwrites every field of the person row identified by
	// person.ID.
	UpdatePerson(ctx context.Context, person *models.Person) error

	// DeletePerson removes a person row.
	DeletePerson(ctx context.Context, personID int64) error

	// ProjectNamesLinkedTo returns the names of projects where the person
	// is assigned as architect, contractor, engineer, or manager.
	ProjectNamesLinkedTo(ctx context.Context, personID int64) ([]string, error)

	// IsCustomerOnProjects reports whether any project references the
	// person as its customer.
	IsCustomerOnProjects(ctx context.Context, personID int64) (bool, error)
}

// Store is the combined storage surface. This abstraction allows
// swapping storage backends (SQLite, PostgreSQL, etc.) without changing
// the service layer.
type Store interface {
	ProjectStore
	PersonStore

	// Close releases any resources held by the store.
	Close() error
}
