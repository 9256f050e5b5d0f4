package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poise-dev/poise/internal/models"
	"github.com/poise-dev/poise/internal/storage"
)

// ProjectService owns the project lifecycle rules.
type ProjectService struct {
	store storage.ProjectStore
}

// NewProjectService creates a new ProjectService with the given storage backend.
func NewProjectService(store storage.ProjectStore) *ProjectService {
	if store == nil {
		panic("service: nil ProjectStore")
	}
	return &ProjectService{store: store}
}

// CreateProject persists a new project. The request is forwarded
// whole; on success the message embeds the generated ID.
func (s *ProjectService) CreateProject(ctx context.Context, req ProjectCreateRequest) Result {
	slog.Info("CreateProject request received", "name", req.Name, "customer_id", req.CustomerID)

	project := &models.Project{
		Name:             req.Name,
		BuildingType:     req.BuildingType,
		Address:          req.Address,
		ERFNumber:        req.ERFNumber,
		TotalFee:         req.TotalFee,
		AmountPaidToDate: req.AmountPaidToDate,
		Deadline:         req.Deadline,
		ArchitectID:      req.ArchitectID,
		ContractorID:     req.ContractorID,
		CustomerID:       req.CustomerID,
		EngineerID:       req.EngineerID,
		ManagerID:        req.ManagerID,
		Finalised:        req.Finalised,
		CompletionDate:   req.CompletionDate,
	}

	id, err := s.store.CreateProject(ctx, project)
	if err != nil || id <= 0 {
		slog.Error("CreateProject failed", "error", err)
		return failed("Failed to create project")
	}

	slog.Info("Project created", "project_id", id)
	return succeeded(fmt.Sprintf("Project created successfully with ID: %d", id))
}

// UpdateProject applies a partial update to an existing project.
// Only fields supplied in the request overwrite the stored values; the
// merged record is written back in one statement.
func (s *ProjectService) UpdateProject(ctx context.Context, projectID int64, req ProjectUpdateRequest) Result {
	slog.Info("UpdateProject request received", "project_id", projectID)

	project, err := s.store.GetProjectByID(ctx, projectID)
	if err != nil {
		slog.Error("UpdateProject lookup failed", "project_id", projectID, "error", err)
	}
	if project == nil {
		return failed("Project not found")
	}

	if v, ok := req.Name.Get(); ok {
		project.Name = v
	}
	if v, ok := req.BuildingType.Get(); ok {
		project.BuildingType = v
	}
	if v, ok := req.Address.Get(); ok {
		project.Address = v
	}
	if v, ok := req.ERFNumber.Get(); ok {
		project.ERFNumber = v
	}
	if v, ok := req.TotalFee.Get(); ok {
		project.TotalFee = v
	}
	if v, ok := req.AmountPaidToDate.Get(); ok {
		project.AmountPaidToDate = v
	}
	if v, ok := req.Deadline.Get(); ok {
		project.Deadline = v
	}
	if v, ok := req.ArchitectID.Get(); ok {
		project.ArchitectID = v
	}
	if v, ok := req.ContractorID.Get(); ok {
		project.ContractorID = v
	}
	if v, ok := req.CustomerID.Get(); ok {
		project.CustomerID = v
	}
	if v, ok := req.EngineerID.Get(); ok {
		project.EngineerID = v
	}
	if v, ok := req.ManagerID.Get(); ok {
		project.ManagerID = v
	}
	if v, ok := req.Finalised.Get(); ok {
		project.Finalised = v
	}
	if v, ok := req.CompletionDate.Get(); ok {
		project.CompletionDate = v
	}

	if err := s.store.UpdateProject(ctx, project); err != nil {
		slog.Error("UpdateProject failed", "project_id", projectID, "error", err)
		return failed("Failed to update project")
	}

	slog.Info("Project updated", "project_id", projectID)
	return succeeded("Project updated successfully")
}

// DeleteProject removes a project. No cross-entity checks apply here:
// the safety direction is person-to-project, not the other way around.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID int64) Result {
	slog.Info("DeleteProject request received", "project_id", projectID)

	project, err := s.store.GetProjectByID(ctx, projectID)
	if err != nil {
		slog.Error("DeleteProject lookup failed", "project_id", projectID, "error", err)
	}
	if project == nil {
		return failed("Project not found")
	}

	if err := s.store.DeleteProject(ctx, projectID); err != nil {
		slog.Error("DeleteProject failed", "project_id", projectID, "error", err)
		return failed("Failed to delete project")
	}

	slog.Info("Project deleted", "project_id", projectID)
	return succeeded("Project deleted successfully")
}

// FinaliseProject marks a project complete with the given completion
// date. Finalised is terminal: a project that is already finalised is
// rejected, never silently accepted, and its stored completion date is
// left untouched.
func (s *ProjectService) FinaliseProject(ctx context.Context, projectID int64, completionDate models.Date) Result {
	slog.Info("FinaliseProject request received", "project_id", projectID, "completion_date", completionDate.String())

	project, err := s.store.GetProjectByID(ctx, projectID)
	if err != nil {
		slog.Error("FinaliseProject lookup failed", "project_id", projectID, "error", err)
	}
	if project == nil {
		return failed("Project not found")
	}
	if project.Finalised {
		return failed("This project is already finalised")
	}

	if err := s.store.FinaliseProject(ctx, projectID, completionDate); err != nil {
		slog.Error("FinaliseProject failed", "project_id", projectID, "error", err)
		return failed("Failed to finalise project")
	}

	slog.Info("Project finalised", "project_id", projectID, "name", project.Name)
	return succeeded("Project finalised successfully")
}

// ListSummaries returns the summary view of every project. Read
// operations degrade to empty results on storage failure.
func (s *ProjectService) ListSummaries(ctx context.Context) []models.ProjectSummary {
	summaries, err := s.store.ListProjectSummaries(ctx)
	if err != nil {
		slog.Error("ListSummaries failed", "error", err)
		return nil
	}
	return summaries
}

// ListIncomplete returns the summary view of projects not yet finalised.
func (s *ProjectService) ListIncomplete(ctx context.Context) []models.ProjectSummary {
	summaries, err := s.store.ListIncompleteProjects(ctx)
	if err != nil {
		slog.Error("ListIncomplete failed", "error", err)
		return nil
	}
	return summaries
}

// ListOverdue returns the summary view of unfinalised projects whose
// deadline has passed.
func (s *ProjectService) ListOverdue(ctx context.Context) []models.ProjectSummary {
	summaries, err := s.store.ListOverdueProjects(ctx)
	if err != nil {
		slog.Error("ListOverdue failed", "error", err)
		return nil
	}
	return summaries
}

// FindByID returns the project with the given ID, or nil if absent.
func (s *ProjectService) FindByID(ctx context.Context, projectID int64) *models.Project {
	project, err := s.store.GetProjectByID(ctx, projectID)
	if err != nil {
		slog.Error("FindByID failed", "project_id", projectID, "error", err)
		return nil
	}
	return project
}

// FindByName returns the project matching the name (case-insensitive
// exact match), or nil if absent.
func (s *ProjectService) FindByName(ctx context.Context, name string) *models.Project {
	project, err := s.store.GetProjectByName(ctx, name)
	if err != nil {
		slog.Error("FindByName failed", "name", name, "error", err)
		return nil
	}
	return project
}
