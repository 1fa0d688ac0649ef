package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a project or service id does not exist.
var ErrNotFound = errors.New("store: not found")

// ProjectRow mirrors one row of the projects table. Text fields are
// deliberately loose; callers coerce them into the domain taxonomy.
type ProjectRow struct {
	ID     string
	Name   string
	Folder string

	// GitRemote and GitBranch are empty for folders that are not git
	// repositories.
	GitRemote string
	GitBranch string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceRow mirrors one row of the services table.
type ServiceRow struct {
	ID          string
	ProjectID   string
	Name        string
	ServiceType string
	Stack       string
	Path        string
	URL         string
	Port        int
	Command     string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectWithServices is a project row joined with its services in
// creation order.
type ProjectWithServices struct {
	ProjectRow
	Services []ServiceRow
}

// CreateProject carries the caller-assigned identity of a new project.
type CreateProject struct {
	ID        string
	Name      string
	Folder    string
	GitRemote string
	GitBranch string
}

// CreateService carries the caller-assigned fields of a new service.
// Status always starts as stopped; it is not settable at creation.
type CreateService struct {
	ID          string
	ProjectID   string
	Name        string
	ServiceType string
	Stack       string
	Path        string
	URL         string
	Port        int
	Command     string
}

// UpdateProject is a partial update; nil fields are left untouched.
type UpdateProject struct {
	Name   *string
	Folder *string
}

// UpdateService is a partial update; nil fields are left untouched.
// ID and Status cannot be changed through this path.
type UpdateService struct {
	Name        *string
	ServiceType *string
	Stack       *string
	Path        *string
	URL         *string
	Port        *int
	Command     *string
}

// Store is the persistent project/service store boundary. All state that
// must survive a restart lives behind it; in-memory copies are a
// disposable cache reloaded via GetProjectsWithServices.
type Store interface {
	// CreateProject inserts a project and its services in one transaction.
	CreateProject(ctx context.Context, project CreateProject, services []CreateService) (*ProjectRow, error)

	// CreateProjectIfAbsent is CreateProject guarded by folder uniqueness
	// in a single atomic step. It reports created=false, with the existing
	// row, when a project with the same folder is already registered.
	CreateProjectIfAbsent(ctx context.Context, project CreateProject, services []CreateService) (row *ProjectRow, created bool, err error)

	// ProjectExistsByFolder reports whether any project is registered for
	// the given folder path.
	ProjectExistsByFolder(ctx context.Context, folder string) (bool, error)

	UpdateProject(ctx context.Context, id string, update UpdateProject) (*ProjectRow, error)
	UpdateService(ctx context.Context, id string, update UpdateService) (*ServiceRow, error)

	// DeleteProject removes a project and cascades to its services.
	// Reports whether a row was actually deleted.
	DeleteProject(ctx context.Context, id string) (bool, error)

	// GetProjectsWithServices returns every registered project joined with
	// its services, newest project first.
	GetProjectsWithServices(ctx context.Context) ([]ProjectWithServices, error)

	Close() error
}
