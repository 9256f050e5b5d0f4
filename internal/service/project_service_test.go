package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/poise-dev/poise/internal/models"
	"github.com/poise-dev/poise/internal/storage"
	"github.com/poise-dev/poise/internal/storage/sqlite"
)

func newTestStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// createdID extracts the generated ID from a creation success message.
func createdID(t *testing.T, result Result) int64 {
	t.Helper()

	if !result.Success {
		t.Fatalf("expected success, got %q", result.Message)
	}
	var entity string
	var id int64
	if _, err := fmt.Sscanf(result.Message, "%s created successfully with ID: %d", &entity, &id); err != nil {
		t.Fatalf("could not parse ID from %q: %v", result.Message, err)
	}
	return id
}

func TestCreateProject(t *testing.T) {
	store := newTestStore(t)
	projects := NewProjectService(store)
	people := NewPersonService(store)
	ctx := context.Background()

	janeID := createdID(t, people.CreatePerson(ctx, PersonCreateRequest{Name: "Jane Doe", Role: "customer"}))

	result := projects.CreateProject(ctx, ProjectCreateRequest{
		Name:         "",
		BuildingType: "House",
		CustomerID:   janeID,
		TotalFee:     90000,
		Deadline:     models.NewDate(2031, 8, 1),
	})
	projectID := createdID(t, result)

	project := projects.FindByID(ctx, projectID)
	if project == nil {
		t.Fatal("expected created project to be retrievable")
	}
	if project.CustomerID != janeID {
		t.Errorf("customerID: got %d, want %d", project.CustomerID, janeID)
	}
	if project.Name != "" || project.BuildingType != "House" || project.TotalFee != 90000 {
		t.Errorf("submitted fields not persisted: %+v", project)
	}
	if !project.Deadline.Equal(models.NewDate(2031, 8, 1)) {
		t.Errorf("deadline: got %s", project.Deadline)
	}
}

func TestUpdateProject_MergeByPresence(t *testing.T) {
	store := newTestStore(t)
	projects := NewProjectService(store)
	ctx := context.Background()

	id := createdID(t, projects.CreateProject(ctx, ProjectCreateRequest{
		Name:             "Clinic West",
		BuildingType:     "Clinic",
		Address:          "9 Hill St",
		ERFNumber:        777,
		TotalFee:         500000,
		AmountPaidToDate: 100000,
		Deadline:         models.NewDate(2030, 5, 5),
		CustomerID:       1,
		ArchitectID:      2,
	}))

	result := projects.UpdateProject(ctx, id, ProjectUpdateRequest{
		Address:  models.Some("10 Hill St"),
		TotalFee: models.Some(525000.0),
		// ERFNumber supplied as a legitimate zero, must overwrite.
		ERFNumber: models.Some(int64(0)),
	})
	if !result.Success || result.Message != "Project updated successfully" {
		t.Fatalf("unexpected result: %+v", result)
	}

	project := projects.FindByID(ctx, id)
	if project.Address != "10 Hill St" || project.TotalFee != 525000 || project.ERFNumber != 0 {
		t.Errorf("supplied fields not applied: %+v", project)
	}
	// Everything not in the request keeps its stored value.
	if project.Name != "Clinic West" ||
		project.BuildingType != "Clinic" ||
		project.AmountPaidToDate != 100000 ||
		!project.Deadline.Equal(models.NewDate(2030, 5, 5)) ||
		project.CustomerID != 1 ||
		project.ArchitectID != 2 {
		t.Errorf("absent fields were modified: %+v", project)
	}
}

func TestUpdateProject_NotFound(t *testing.T) {
	projects := NewProjectService(newTestStore(t))

	result := projects.UpdateProject(context.Background(), 12345, ProjectUpdateRequest{
		Name: models.Some("Ghost"),
	})
	if result.Success || result.Message != "Project not found" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestDeleteProject(t *testing.T) {
	store := newTestStore(t)
	projects := NewProjectService(store)
	ctx := context.Background()

	id := createdID(t, projects.CreateProject(ctx, ProjectCreateRequest{
		Name: "To Be Deleted", BuildingType: "Barn", CustomerID: 1,
	}))

	result := projects.DeleteProject(ctx, id)
	if !result.Success || result.Message != "Project deleted successfully" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if projects.FindByID(ctx, id) != nil {
		t.Error("expected project to be gone after delete")
	}

	result = projects.DeleteProject(ctx, id)
	if result.Success || result.Message != "Project not found" {
		t.Errorf("unexpected result for missing project: %+v", result)
	}
}

func TestFinaliseProject(t *testing.T) {
	store := newTestStore(t)
	projects := NewProjectService(store)
	ctx := context.Background()

	id := createdID(t, projects.CreateProject(ctx, ProjectCreateRequest{
		Name: "Depot North", BuildingType: "Depot", CustomerID: 1,
	}))

	first := models.NewDate(2026, 3, 1)
	result := projects.FinaliseProject(ctx, id, first)
	if !result.Success || result.Message != "Project finalised successfully" {
		t.Fatalf("unexpected result: %+v", result)
	}

	// Finalised is terminal: a second call is rejected regardless of the
	// date, and the stored completion date is untouched.
	result = projects.FinaliseProject(ctx, id, models.NewDate(2027, 4, 2))
	if result.Success || result.Message != "This project is already finalised" {
		t.Errorf("unexpected result: %+v", result)
	}

	project := projects.FindByID(ctx, id)
	if !project.Finalised {
		t.Error("expected project to stay finalised")
	}
	if !project.CompletionDate.Equal(first) {
		t.Errorf("completion date changed: got %s, want %s", project.CompletionDate, first)
	}
}

func TestFinaliseProject_NotFound(t *testing.T) {
	projects := NewProjectService(newTestStore(t))

	result := projects.FinaliseProject(context.Background(), 4242, models.Today())
	if result.Success || result.Message != "Project not found" {
		t.Errorf("unexpected result: %+v", result)
	}
}

// guardedStore counts finalise calls so the test can prove the guard
// short-circuits before storage is touched.
type guardedStore struct {
	storage.ProjectStore
	project       *models.Project
	finaliseCalls int
}

func (s *guardedStore) GetProjectByID(ctx context.Context, projectID int64) (*models.Project, error) {
	if s.project != nil && s.project.ID == projectID {
		return s.project, nil
	}
	return nil, nil
}

func (s *guardedStore) FinaliseProject(ctx context.Context, projectID int64, completionDate models.Date) error {
	s.finaliseCalls++
	return nil
}

func TestFinaliseProject_GuardShortCircuits(t *testing.T) {
	store := &guardedStore{project: &models.Project{ID: 3, Name: "Done Deal", Finalised: true}}
	projects := NewProjectService(store)

	result := projects.FinaliseProject(context.Background(), 3, models.Today())
	if result.Success || result.Message != "This project is already finalised" {
		t.Errorf("unexpected result: %+v", result)
	}
	if store.finaliseCalls != 0 {
		t.Errorf("storage finalise invoked %d times, want 0", store.finaliseCalls)
	}
}

func TestProjectReads(t *testing.T) {
	store := newTestStore(t)
	projects := NewProjectService(store)
	ctx := context.Background()

	activeID := createdID(t, projects.CreateProject(ctx, ProjectCreateRequest{
		Name: "Late Library", BuildingType: "Library", CustomerID: 1,
		Deadline: models.Today().AddDays(-3),
	}))
	doneID := createdID(t, projects.CreateProject(ctx, ProjectCreateRequest{
		Name: "Finished Farm", BuildingType: "Farm", CustomerID: 1,
		Deadline: models.Today().AddDays(-3), Finalised: true,
	}))

	if got := len(projects.ListSummaries(ctx)); got != 2 {
		t.Errorf("ListSummaries: got %d, want 2", got)
	}

	incomplete := projects.ListIncomplete(ctx)
	if len(incomplete) != 1 || incomplete[0].ID != activeID {
		t.Errorf("ListIncomplete: got %+v", incomplete)
	}

	overdue := projects.ListOverdue(ctx)
	if len(overdue) != 1 || overdue[0].ID != activeID {
		t.Errorf("ListOverdue: got %+v", overdue)
	}

	if projects.FindByName(ctx, "finished farm") == nil {
		t.Error("FindByName should match case-insensitively")
	}
	if projects.FindByName(ctx, "No Such Project") != nil {
		t.Error("FindByName should return nil for missing name")
	}
	if projects.FindByID(ctx, doneID) == nil {
		t.Error("FindByID should return the finalised project")
	}
}
