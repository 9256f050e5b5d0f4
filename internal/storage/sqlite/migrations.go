package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database.
// These run on startup to ensure tables exist.
//
// The person columns on projects are weak references: deliberately no
// foreign keys, so a project can keep pointing at a person that was
// deleted. Integrity is enforced in the service layer instead.
const schema = `
CREATE TABLE IF NOT EXISTS people (
    person_id INTEGER PRIMARY KEY AUTOINCREMENT,
    person_name TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    role TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS projects (
    project_id INTEGER PRIMARY KEY AUTOINCREMENT,
    project_name TEXT NOT NULL,
    building_type TEXT NOT NULL,
    project_address TEXT NOT NULL DEFAULT '',
    erf_number INTEGER NOT NULL DEFAULT 0,
    total_fee REAL NOT NULL DEFAULT 0,
    amount_paid_to_date REAL NOT NULL DEFAULT 0,
    project_deadline TEXT,
    architect_id INTEGER NOT NULL DEFAULT 0,
    contractor_id INTEGER NOT NULL DEFAULT 0,
    customer_id INTEGER NOT NULL,
    engineer_id INTEGER NOT NULL DEFAULT 0,
    manager_id INTEGER NOT NULL DEFAULT 0,
    project_finalised INTEGER NOT NULL DEFAULT 0,
    completion_date TEXT
);

CREATE INDEX IF NOT EXISTS idx_projects_customer_id ON projects(customer_id);
CREATE INDEX IF NOT EXISTS idx_projects_finalised ON projects(project_finalised);
CREATE INDEX IF NOT EXISTS idx_people_role ON people(role);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
