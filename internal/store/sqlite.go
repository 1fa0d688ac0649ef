package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store on an embedded SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (creating if needed) the database at path and applies
// pending migrations. Pass ":memory:" for an ephemeral database.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One writer at a time keeps SQLITE_BUSY out of the picture for a
	// single-user desktop tool.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

const timeLayout = time.RFC3339Nano

func now() string {
	return time.Now().UTC().Format(timeLayout)
}

func parseTime(raw string) time.Time {
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (s *SQLiteStore) CreateProject(ctx context.Context, project CreateProject, services []CreateService) (*ProjectRow, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	ts := now()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO projects (id, name, folder, git_remote, git_branch, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		project.ID, project.Name, project.Folder, project.GitRemote, project.GitBranch, ts, ts,
	); err != nil {
		return nil, fmt.Errorf("failed to insert project: %w", err)
	}

	if err := insertServices(ctx, tx, services, ts); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	return s.findProjectByID(ctx, project.ID)
}

func (s *SQLiteStore) CreateProjectIfAbsent(ctx context.Context, project CreateProject, services []CreateService) (*ProjectRow, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	ts := now()
	res, err := tx.ExecContext(ctx,
		`INSERT INTO projects (id, name, folder, git_remote, git_branch, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(folder) DO NOTHING`,
		project.ID, project.Name, project.Folder, project.GitRemote, project.GitBranch, ts, ts,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to insert project: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("failed to read insert result: %w", err)
	}

	if inserted == 0 {
		// Another registration owns this folder; hand back its row.
		row, err := scanProjectRow(tx.QueryRowContext(ctx,
			`SELECT id, name, folder, git_remote, git_branch, created_at, updated_at
			 FROM projects WHERE folder = ?`, project.Folder))
		if err != nil {
			return nil, false, err
		}
		return row, false, nil
	}

	if err := insertServices(ctx, tx, services, ts); err != nil {
		return nil, false, err
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit: %w", err)
	}

	row, err := s.findProjectByID(ctx, project.ID)
	if err != nil {
		return nil, false, err
	}
	return row, true, nil
}

func insertServices(ctx context.Context, tx *sql.Tx, services []CreateService, ts string) error {
	for _, svc := range services {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO services
			 (id, project_id, name, service_type, stack, path, url, port, command, status, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 'stopped', ?, ?)`,
			svc.ID, svc.ProjectID, svc.Name, svc.ServiceType, svc.Stack,
			svc.Path, svc.URL, svc.Port, svc.Command, ts, ts,
		); err != nil {
			return fmt.Errorf("failed to insert service %s: %w", svc.Name, err)
		}
	}
	return nil
}

func (s *SQLiteStore) ProjectExistsByFolder(ctx context.Context, folder string) (bool, error) {
	var count int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM projects WHERE folder = ?`, folder,
	).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check folder: %w", err)
	}
	return count > 0, nil
}

func (s *SQLiteStore) UpdateProject(ctx context.Context, id string, update UpdateProject) (*ProjectRow, error) {
	existing, err := s.findProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := existing.Name
	if update.Name != nil {
		name = *update.Name
	}
	folder := existing.Folder
	if update.Folder != nil {
		folder = *update.Folder
	}

	if _, err := s.db.ExecContext(ctx,
		`UPDATE projects SET name = ?, folder = ?, updated_at = ? WHERE id = ?`,
		name, folder, now(), id,
	); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return s.findProjectByID(ctx, id)
}

func (s *SQLiteStore) UpdateService(ctx context.Context, id string, update UpdateService) (*ServiceRow, error) {
	existing, err := s.findServiceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := existing.Name
	if update.Name != nil {
		name = *update.Name
	}
	serviceType := existing.ServiceType
	if update.ServiceType != nil {
		serviceType = *update.ServiceType
	}
	stack := existing.Stack
	if update.Stack != nil {
		stack = *update.Stack
	}
	path := existing.Path
	if update.Path != nil {
		path = *update.Path
	}
	url := existing.URL
	if update.URL != nil {
		url = *update.URL
	}
	port := existing.Port
	if update.Port != nil {
		port = *update.Port
	}
	command := existing.Command
	if update.Command != nil {
		command = *update.Command
	}

	if _, err := s.db.ExecContext(ctx,
		`UPDATE services
		 SET name = ?, service_type = ?, stack = ?, path = ?, url = ?, port = ?, command = ?, updated_at = ?
		 WHERE id = ?`,
		name, serviceType, stack, path, url, port, command, now(), id,
	); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	return s.findServiceByID(ctx, id)
}

func (s *SQLiteStore) DeleteProject(ctx context.Context, id string) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Cascade manually as well; older databases may predate foreign_keys=ON.
	if _, err := tx.ExecContext(ctx, `DELETE FROM services WHERE project_id = ?`, id); err != nil {
		return false, fmt.Errorf("failed to delete services: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit: %w", err)
	}

	return affected > 0, nil
}

func (s *SQLiteStore) GetProjectsWithServices(ctx context.Context) ([]ProjectWithServices, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, folder, git_remote, git_branch, created_at, updated_at
		 FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []ProjectWithServices
	for rows.Next() {
		var p ProjectRow
		var created, updated string
		if err := rows.Scan(&p.ID, &p.Name, &p.Folder, &p.GitRemote, &p.GitBranch, &created, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		p.CreatedAt = parseTime(created)
		p.UpdatedAt = parseTime(updated)
		projects = append(projects, ProjectWithServices{ProjectRow: p})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	for i := range projects {
		services, err := s.findServicesByProjectID(ctx, projects[i].ID)
		if err != nil {
			return nil, err
		}
		projects[i].Services = services
	}

	return projects, nil
}

func (s *SQLiteStore) findProjectByID(ctx context.Context, id string) (*ProjectRow, error) {
	return scanProjectRow(s.db.QueryRowContext(ctx,
		`SELECT id, name, folder, git_remote, git_branch, created_at, updated_at
		 FROM projects WHERE id = ?`, id))
}

func scanProjectRow(row *sql.Row) (*ProjectRow, error) {
	var p ProjectRow
	var created, updated string
	if err := row.Scan(&p.ID, &p.Name, &p.Folder, &p.GitRemote, &p.GitBranch, &created, &updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}
	p.CreatedAt = parseTime(created)
	p.UpdatedAt = parseTime(updated)
	return &p, nil
}

func (s *SQLiteStore) findServiceByID(ctx context.Context, id string) (*ServiceRow, error) {
	var svc ServiceRow
	var created, updated string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, project_id, name, service_type, stack, path, url, port, command, status, created_at, updated_at
		 FROM services WHERE id = ?`, id,
	).Scan(&svc.ID, &svc.ProjectID, &svc.Name, &svc.ServiceType, &svc.Stack,
		&svc.Path, &svc.URL, &svc.Port, &svc.Command, &svc.Status, &created, &updated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan service: %w", err)
	}
	svc.CreatedAt = parseTime(created)
	svc.UpdatedAt = parseTime(updated)
	return &svc, nil
}

func (s *SQLiteStore) findServicesByProjectID(ctx context.Context, projectID string) ([]ServiceRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project_id, name, service_type, stack, path, url, port, command, status, created_at, updated_at
		 FROM services WHERE project_id = ? ORDER BY created_at ASC, rowid ASC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close()

	var services []ServiceRow
	for rows.Next() {
		var svc ServiceRow
		var created, updated string
		if err := rows.Scan(&svc.ID, &svc.ProjectID, &svc.Name, &svc.ServiceType, &svc.Stack,
			&svc.Path, &svc.URL, &svc.Port, &svc.Command, &svc.Status, &created, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		svc.CreatedAt = parseTime(created)
		svc.UpdatedAt = parseTime(updated)
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate services: %w", err)
	}

	return services, nil
}
