package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/poise-dev/poise/internal/models"
)

// projectColumns is the full column list scanned by scanProject.
const projectColumns = `project_id, project_name, building_type, project_address, erf_number,
	total_fee, amount_paid_to_date, project_deadline, architect_id, contractor_id,
	customer_id, engineer_id, manager_id, project_finalised, completion_date`

// scanProject reads one full project row.
func scanProject(row interface{ Scan(...any) error }) (*models.Project, error) {
	project := &models.Project{}
	var deadline, completion sql.NullString

	err := row.Scan(
		&project.ID,
		&project.Name,
		&project.BuildingType,
		&project.Address,
		&project.ERFNumber,
		&project.TotalFee,
		&project.AmountPaidToDate,
		&deadline,
		&project.ArchitectID,
		&project.ContractorID,
		&project.CustomerID,
		&project.EngineerID,
		&project.ManagerID,
		&project.Finalised,
		&completion,
	)
	if err != nil {
		return nil, err
	}

	if project.Deadline, err = scanDate(deadline); err != nil {
		return nil, fmt.Errorf("failed to parse project deadline: %w", err)
	}
	if project.CompletionDate, err = scanDate(completion); err != nil {
		return nil, fmt.Errorf("failed to parse completion date: %w", err)
	}
	return project, nil
}

// listSummaries runs a query projecting only id, name, and status.
func (s *SQLiteStore) listSummaries(ctx context.Context, query string, args ...any) ([]models.ProjectSummary, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var summaries []models.ProjectSummary
	for rows.Next() {
		var summary models.ProjectSummary
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.Finalised); err != nil {
			return nil, fmt.Errorf("failed to scan project summary: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate project summaries: %w", err)
	}
	return summaries, nil
}

// ListProjectSummaries retrieves the summary view of every project.
func (s *SQLiteStore) ListProjectSummaries(ctx context.Context) ([]models.ProjectSummary, error) {
	return s.listSummaries(ctx,
		"SELECT project_id, project_name, project_finalised FROM projects ORDER BY project_id")
}

// ListIncompleteProjects retrieves the summary view of projects not yet finalised.
func (s *SQLiteStore) ListIncompleteProjects(ctx context.Context) ([]models.ProjectSummary, error) {
	return s.listSummaries(ctx,
		"SELECT project_id, project_name, project_finalised FROM projects WHERE project_finalised = 0 ORDER BY project_id")
}

// ListOverdueProjects retrieves the summary view of unfinalised projects
// whose deadline is strictly before today. Overdue is derived here, not
// stored: a finalised project past its deadline never appears.
func (s *SQLiteStore) ListOverdueProjects(ctx context.Context) ([]models.ProjectSummary, error) {
	return s.listSummaries(ctx,
		"SELECT project_id, project_name, project_finalised FROM projects WHERE project_finalised = 0 AND project_deadline < date('now') ORDER BY project_id")
}

// GetProjectByID retrieves a project with every field.
func (s *SQLiteStore) GetProjectByID(ctx context.Context, projectID int64) (*models.Project, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE project_id = ?", projectID)

	project, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil // Project not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project by ID: %w", err)
	}
	return project, nil
}

// GetProjectByName retrieves a project by exact name, ignoring case.
func (s *SQLiteStore) GetProjectByName(ctx context.Context, name string) (*models.Project, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE LOWER(project_name) = LOWER(?)", name)

	project, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil // Project not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project by name: %w", err)
	}
	return project, nil
}

// CreateProject inserts a new project and returns the generated ID.
func (s *SQLiteStore) CreateProject(ctx context.Context, project *models.Project) (int64, error) {
	query := `
		INSERT INTO projects (project_name, building_type, project_address, erf_number,
			total_fee, amount_paid_to_date, project_deadline, architect_id, contractor_id,
			customer_id, engineer_id, manager_id, project_finalised, completion_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		project.Name,
		project.BuildingType,
		project.Address,
		project.ERFNumber,
		project.TotalFee,
		project.AmountPaidToDate,
		dateArg(project.Deadline),
		project.ArchitectID,
		project.ContractorID,
		project.CustomerID,
		project.EngineerID,
		project.ManagerID,
		project.Finalised,
		dateArg(project.CompletionDate),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read generated project ID: %w", err)
	}
	project.ID = id
	return id, nil
}

// UpdateProject overwrites every field of an existing project row.
func (s *SQLiteStore) UpdateProject(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects
		SET project_name = ?, building_type = ?, project_address = ?, erf_number = ?,
			total_fee = ?, amount_paid_to_date = ?, project_deadline = ?, architect_id = ?,
			contractor_id = ?, customer_id = ?, engineer_id = ?, manager_id = ?,
			project_finalised = ?, completion_date = ?
		WHERE project_id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		project.Name,
		project.BuildingType,
		project.Address,
		project.ERFNumber,
		project.TotalFee,
		project.AmountPaidToDate,
		dateArg(project.Deadline),
		project.ArchitectID,
		project.ContractorID,
		project.CustomerID,
		project.EngineerID,
		project.ManagerID,
		project.Finalised,
		dateArg(project.CompletionDate),
		project.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("project %d not found", project.ID)
	}
	return nil
}

// DeleteProject removes a project row.
func (s *SQLiteStore) DeleteProject(ctx context.Context, projectID int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE project_id = ?", projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("project %d not found", projectID)
	}
	return nil
}

// FinaliseProject marks a project finalised and records the completion
// date. The WHERE clause only matches unfinalised rows, so the first
// completion date can never be overwritten by a late second call.
func (s *SQLiteStore) FinaliseProject(ctx context.Context, projectID int64, completionDate models.Date) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE projects SET project_finalised = 1, completion_date = ? WHERE project_id = ? AND project_finalised = 0",
		dateArg(completionDate), projectID)
	if err != nil {
		return fmt.Errorf("failed to finalise project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read finalise result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("project %d not found or already finalised", projectID)
	}
	return nil
}
