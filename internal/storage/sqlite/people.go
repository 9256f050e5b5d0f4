package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/poise-dev/poise/internal/models"
)

const personColumns = "person_id, person_name, phone, email, address, role"

func scanPerson(row interface{ Scan(...any) error }) (*models.Person, error) {
	person := &models.Person{}
	err := row.Scan(
		&person.ID,
		&person.Name,
		&person.Phone,
		&person.Email,
		&person.Address,
		&person.Role,
	)
	if err != nil {
		return nil, err
	}
	return person, nil
}

// listPeople runs a query over the full person column set.
func (s *SQLiteStore) listPeople(ctx context.Context, query string, args ...any) ([]models.Person, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var people []models.Person
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, *person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate people: %w", err)
	}
	return people, nil
}

// ListPeople retrieves every person.
func (s *SQLiteStore) ListPeople(ctx context.Context) ([]models.Person, error) {
	return s.listPeople(ctx,
		"SELECT "+personColumns+" FROM people ORDER BY person_id")
}

// ListPeopleByRole retrieves everyone with the given role, ignoring case.
func (s *SQLiteStore) ListPeopleByRole(ctx context.Context, role string) ([]models.Person, error) {
	return s.listPeople(ctx,
		"SELECT "+personColumns+" FROM people WHERE LOWER(role) = LOWER(?) ORDER BY person_id", role)
}

// GetPersonByID retrieves a person by ID.
func (s *SQLiteStore) GetPersonByID(ctx context.Context, personID int64) (*models.Person, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+personColumns+" FROM people WHERE person_id = ?", personID)

	person, err := scanPerson(row)
	if err == sql.ErrNoRows {
		return nil, nil // Person not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person by ID: %w", err)
	}
	return person, nil
}

// GetPersonByName retrieves a person by exact name.
func (s *SQLiteStore) GetPersonByName(ctx context.Context, name string) (*models.Person, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+personColumns+" FROM people WHERE person_name = ?", name)

	person, err := scanPerson(row)
	if err == sql.ErrNoRows {
		return nil, nil // Person not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person by name: %w", err)
	}
	return person, nil
}

// CreatePerson inserts a new person and returns the generated ID.
func (s *SQLiteStore) CreatePerson(ctx context.Context, person *models.Person) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO people (person_name, phone, email, address, role) VALUES (?, ?, ?, ?, ?)",
		person.Name, person.Phone, person.Email, person.Address, person.Role)
	if err != nil {
		return 0, fmt.Errorf("failed to create person: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read generated person ID: %w", err)
	}
	person.ID = id
	return id, nil
}

// UpdatePerson overwrites every field of an existing person row.
func (s *SQLiteStore) UpdatePerson(ctx context.Context, person *models.Person) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE people SET person_name = ?, phone = ?, email = ?, address = ?, role = ? WHERE person_id = ?",
		person.Name, person.Phone, person.Email, person.Address, person.Role, person.ID)
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("person %d not found", person.ID)
	}
	return nil
}

// DeletePerson removes a person row.
func (s *SQLiteStore) DeletePerson(ctx context.Context, personID int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM people WHERE person_id = ?", personID)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("person %d not found", personID)
	}
	return nil
}

// ProjectNamesLinkedTo returns the names of projects that reference the
// person through any of the four optional role columns. CustomerID is
// checked separately by IsCustomerOnProjects.
func (s *SQLiteStore) ProjectNamesLinkedTo(ctx context.Context, personID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT project_name FROM projects WHERE architect_id = ? OR contractor_id = ? OR engineer_id = ? OR manager_id = ?",
		personID, personID, personID, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to list linked projects: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan project name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate linked projects: %w", err)
	}
	return names, nil
}

// IsCustomerOnProjects reports whether any project references the person
// as its customer.
func (s *SQLiteStore) IsCustomerOnProjects(ctx context.Context, personID int64) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM projects WHERE customer_id = ?", personID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to count customer references: %w", err)
	}
	return count > 0, nil
}
