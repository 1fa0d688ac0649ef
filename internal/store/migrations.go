package store

import (
	"database/sql"
	"fmt"
)

// migrations run in order; schema_migrations records the applied versions.
var migrations = []struct {
	version int
	stmts   []string
}{
	{
		version: 1,
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS projects (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				folder TEXT NOT NULL,
				created_at TEXT NOT NULL,
				updated_at TEXT NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_projects_name ON projects(name)`,
		},
	},
	{
		version: 2,
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS services (
				id TEXT PRIMARY KEY,
				project_id TEXT NOT NULL,
				name TEXT NOT NULL,
				service_type TEXT NOT NULL,
				stack TEXT NOT NULL,
				path TEXT NOT NULL,
				url TEXT NOT NULL,
				port INTEGER NOT NULL,
				command TEXT NOT NULL,
				status TEXT NOT NULL DEFAULT 'stopped',
				created_at TEXT NOT NULL,
				updated_at TEXT NOT NULL,
				FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
			)`,
			`CREATE INDEX IF NOT EXISTS idx_services_project_id ON services(project_id)`,
			`CREATE INDEX IF NOT EXISTS idx_services_status ON services(status)`,
		},
	},
	{
		// Folder uniqueness backs the atomic create-if-absent used by
		// workspace reconciliation.
		version: 3,
		stmts: []string{
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_folder ON projects(folder)`,
		},
	},
	{
		// Git identity captured at registration time (clone and scan).
		version: 4,
		stmts: []string{
			`ALTER TABLE projects ADD COLUMN git_remote TEXT NOT NULL DEFAULT ''`,
			`ALTER TABLE projects ADD COLUMN git_branch TEXT NOT NULL DEFAULT ''`,
		},
	},
}

func runMigrations(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`); err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	var current int
	if err := db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.version, err)
		}

		for _, stmt := range m.stmts {
			if _, err := tx.Exec(stmt); err != nil {
				tx.Rollback()
				return fmt.Errorf("migration %d failed: %w", m.version, err)
			}
		}

		if _, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, m.version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.version, err)
		}
	}

	return nil
}
