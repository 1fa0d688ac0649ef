package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/yuuhLKT/warden/internal/models"
	"github.com/yuuhLKT/warden/internal/store"
)

// Registry owns the in-memory project list and keeps it consistent with
// the persistent store.
//
// Mutations come in two categories:
//
//   - durable (Add, AddDetected, Remove, Rename, UpdateService): the
//     store is written first; on store failure the error propagates and
//     memory is left untouched.
//   - local-only (Toggle, SetServiceStatus, StartAll, StopAll, Select):
//     advisory state that never reaches the store and does not survive a
//     reload.
//
// Methods are synchronous state transitions; the Registry itself is not
// safe for concurrent use and expects the single-threaded command loop
// the CLI provides.
type Registry struct {
	store store.Store

	projects   []models.Project
	selectedID string
}

// New creates a Registry backed by the given store.
func New(st store.Store) *Registry {
	return &Registry{store: st}
}

// Load replaces the in-memory list with the store's contents. The cache
// is disposable; calling Load at any time is safe and discards local-only
// status flags.
func (r *Registry) Load(ctx context.Context) error {
	rows, err := r.store.GetProjectsWithServices(ctx)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	projects := make([]models.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, projectFromStore(row))
	}

	r.projects = projects
	if r.selectedID != "" && findProject(r.projects, r.selectedID) == nil {
		r.selectedID = ""
	}
	return nil
}

// Projects returns the current project list. Callers must treat it as
// read-only.
func (r *Registry) Projects() []models.Project {
	return r.projects
}

// Get returns a project by id or name.
func (r *Registry) Get(idOrName string) (*models.Project, error) {
	for i := range r.projects {
		if r.projects[i].ID == idOrName || r.projects[i].Name == idOrName {
			return &r.projects[i], nil
		}
	}
	return nil, fmt.Errorf("project %s not found", idOrName)
}

// Add validates form input, persists the new project and appends it to
// the in-memory list.
func (r *Registry) Add(ctx context.Context, form ProjectForm) (*models.Project, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	services := make([]models.Service, 0, len(form.Services))
	for _, sf := range form.Services {
		services = append(services, models.Service{
			ID:      models.MustNewID(),
			Name:    sf.Name,
			Type:    sf.Type,
			Stack:   sf.Stack,
			Path:    sf.Path,
			URL:     sf.URL,
			Port:    sf.Port,
			Command: sf.Command,
			Status:  models.StatusStopped,
		})
	}

	project := models.Project{
		ID:       models.MustNewID(),
		Name:     form.Name,
		Folder:   form.Folder,
		Category: models.CalculateProjectCategory(services),
		Services: services,
	}

	req, svcReqs := storeRequests(project)
	row, err := r.store.CreateProject(ctx, req, svcReqs)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	project.CreatedAt = row.CreatedAt
	project.DetectedAt = row.CreatedAt
	project.UpdatedAt = row.UpdatedAt

	r.projects = append(r.projects, project)
	return &r.projects[len(r.projects)-1], nil
}

// AddDetected maps a single detected project and registers it if its
// folder is not already taken. Used by the clone flow after the
// destination has been scanned.
func (r *Registry) AddDetected(ctx context.Context, detected models.DetectedProject, urlSuffix string) (*models.Project, error) {
	project := MapDetectedProject(detected, urlSuffix)

	req, svcReqs := storeRequests(project)
	_, created, err := r.store.CreateProjectIfAbsent(ctx, req, svcReqs)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	if !created {
		return nil, fmt.Errorf("a project is already registered for %s", detected.Path)
	}

	r.projects = append(r.projects, project)
	return &r.projects[len(r.projects)-1], nil
}

// Remove deletes a project from the store and the in-memory list.
// Removing the selected project clears the selection.
func (r *Registry) Remove(ctx context.Context, projectID string) error {
	if _, err := r.store.DeleteProject(ctx, projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	r.projects = RemoveProjectByID(r.projects, projectID)
	if r.selectedID == projectID {
		r.selectedID = ""
	}
	return nil
}

// Rename updates a project's display name, store first.
func (r *Registry) Rename(ctx context.Context, projectID, name string) error {
	if _, err := r.store.UpdateProject(ctx, projectID, store.UpdateProject{Name: &name}); err != nil {
		return fmt.Errorf("failed to rename project: %w", err)
	}

	for i := range r.projects {
		if r.projects[i].ID == projectID {
			r.projects[i].Name = name
			r.projects[i].UpdatedAt = time.Now()
		}
	}
	return nil
}

// UpdateService applies a partial service edit, store first. Id and
// status are not editable through this path.
func (r *Registry) UpdateService(ctx context.Context, projectID, serviceID string, update ServiceUpdate) error {
	// The pair has to match before the store is touched; a serviceID
	// under a different project must not mutate anything.
	if findService(r.projects, projectID, serviceID) == nil {
		return fmt.Errorf("service %s not found in project %s", serviceID, projectID)
	}

	storeUpdate := store.UpdateService{
		Name:    update.Name,
		Path:    update.Path,
		URL:     update.URL,
		Port:    update.Port,
		Command: update.Command,
	}
	if update.Type != nil {
		t := string(*update.Type)
		storeUpdate.ServiceType = &t
	}
	if update.Stack != nil {
		st := string(*update.Stack)
		storeUpdate.Stack = &st
	}

	if _, err := r.store.UpdateService(ctx, serviceID, storeUpdate); err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}

	r.projects = UpdateServiceInProject(r.projects, projectID, serviceID, update)
	return nil
}

// Toggle flips one service between running and stopped. Local-only.
func (r *Registry) Toggle(projectID, serviceID string) {
	r.projects = ToggleServiceStatus(r.projects, projectID, serviceID)
}

// SetServiceStatus sets one service to an explicit status. Local-only.
func (r *Registry) SetServiceStatus(projectID, serviceID string, status models.ServiceStatus) {
	r.projects = UpdateServiceStatus(r.projects, projectID, serviceID, status)
}

// StartAll flags every service of a project running. Local-only.
func (r *Registry) StartAll(projectID string) {
	r.projects = UpdateAllServicesStatus(r.projects, projectID, models.StatusRunning)
}

// StopAll flags every service of a project stopped. Local-only.
func (r *Registry) StopAll(projectID string) {
	r.projects = UpdateAllServicesStatus(r.projects, projectID, models.StatusStopped)
}

// Select marks a project as the current one; empty id clears.
func (r *Registry) Select(projectID string) {
	r.selectedID = projectID
}

// Selected returns the currently selected project, or nil.
func (r *Registry) Selected() *models.Project {
	if r.selectedID == "" {
		return nil
	}
	return findProject(r.projects, r.selectedID)
}

// RunningServices counts running services across all projects.
func (r *Registry) RunningServices() int {
	total := 0
	for i := range r.projects {
		total += models.CountRunningServices(&r.projects[i])
	}
	return total
}

// SyncWorkspace reconciles the registered set with a scan result.
//
// Each detected project is checked for membership by folder path with an
// independent store query, skipped entirely when already registered, and
// otherwise mapped and persisted. Failures are isolated per project: a
// store error is logged and the loop continues. The routine reports only
// through its side effect on the in-memory list.
//
// Not re-entrant: two concurrent invocations race their existence checks,
// but the store's create-if-absent keeps folder uniqueness intact either
// way; the loser simply skips the project.
func (r *Registry) SyncWorkspace(ctx context.Context, detected []models.DetectedProject, urlSuffix string) {
	for _, d := range detected {
		exists, err := r.store.ProjectExistsByFolder(ctx, d.Path)
		if err != nil {
			fmt.Printf("⚠️  Warning: failed to check %s: %v\n", d.Name, err)
			continue
		}
		if exists {
			fmt.Printf("Project already registered: %s\n", d.Name)
			continue
		}

		project := MapDetectedProject(d, urlSuffix)
		req, svcReqs := storeRequests(project)

		_, created, err := r.store.CreateProjectIfAbsent(ctx, req, svcReqs)
		if err != nil {
			fmt.Printf("⚠️  Warning: failed to save detected project %s: %v\n", d.Name, err)
			continue
		}
		if !created {
			// Lost a race with a concurrent registration for this folder.
			continue
		}

		r.projects = append(r.projects, project)
		fmt.Printf("✓ Registered %s with %d service(s)\n", project.Name, len(project.Services))
	}
}
