package store

import (
	"context"
	"sync"
	"time"
)

// MockStore implements Store in memory for testing.
// Error hooks let tests simulate store failures per operation.
type MockStore struct {
	mu       sync.Mutex
	projects map[string]*ProjectRow        // key: project id
	services map[string][]ServiceRow       // key: project id
	byFolder map[string]string             // folder -> project id

	// CreateCalls records every folder passed to CreateProject /
	// CreateProjectIfAbsent, in order.
	CreateCalls []string

	// Error hooks for failure scenarios.
	CreateProjectError error
	ExistsError        error
	UpdateError        error
	DeleteError        error
	GetError           error

	// ExistsOverride, when set, answers every existence check instead of
	// the real membership test. Used to simulate the stale check that
	// races a concurrent create.
	ExistsOverride func(folder string) bool
}

var _ Store = (*MockStore)(nil)

// NewMockStore creates an empty MockStore.
func NewMockStore() *MockStore {
	return &MockStore{
		projects: make(map[string]*ProjectRow),
		services: make(map[string][]ServiceRow),
		byFolder: make(map[string]string),
	}
}

func (m *MockStore) CreateProject(ctx context.Context, project CreateProject, services []CreateService) (*ProjectRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateCalls = append(m.CreateCalls, project.Folder)
	if m.CreateProjectError != nil {
		return nil, m.CreateProjectError
	}

	return m.insertLocked(project, services), nil
}

func (m *MockStore) CreateProjectIfAbsent(ctx context.Context, project CreateProject, services []CreateService) (*ProjectRow, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateCalls = append(m.CreateCalls, project.Folder)
	if m.CreateProjectError != nil {
		return nil, false, m.CreateProjectError
	}

	if existingID, ok := m.byFolder[project.Folder]; ok {
		row := *m.projects[existingID]
		return &row, false, nil
	}

	return m.insertLocked(project, services), true, nil
}

func (m *MockStore) insertLocked(project CreateProject, services []CreateService) *ProjectRow {
	ts := time.Now().UTC()
	row := &ProjectRow{
		ID:        project.ID,
		Name:      project.Name,
		Folder:    project.Folder,
		GitRemote: project.GitRemote,
		GitBranch: project.GitBranch,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	m.projects[project.ID] = row
	m.byFolder[project.Folder] = project.ID

	for _, svc := range services {
		m.services[project.ID] = append(m.services[project.ID], ServiceRow{
			ID:          svc.ID,
			ProjectID:   svc.ProjectID,
			Name:        svc.Name,
			ServiceType: svc.ServiceType,
			Stack:       svc.Stack,
			Path:        svc.Path,
			URL:         svc.URL,
			Port:        svc.Port,
			Command:     svc.Command,
			Status:      "stopped",
			CreatedAt:   ts,
			UpdatedAt:   ts,
		})
	}

	copied := *row
	return &copied
}

func (m *MockStore) ProjectExistsByFolder(ctx context.Context, folder string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ExistsError != nil {
		return false, m.ExistsError
	}
	if m.ExistsOverride != nil {
		return m.ExistsOverride(folder), nil
	}

	_, ok := m.byFolder[folder]
	return ok, nil
}

func (m *MockStore) UpdateProject(ctx context.Context, id string, update UpdateProject) (*ProjectRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UpdateError != nil {
		return nil, m.UpdateError
	}

	row, ok := m.projects[id]
	if !ok {
		return nil, ErrNotFound
	}

	if update.Name != nil {
		row.Name = *update.Name
	}
	if update.Folder != nil {
		delete(m.byFolder, row.Folder)
		row.Folder = *update.Folder
		m.byFolder[row.Folder] = id
	}
	row.UpdatedAt = time.Now().UTC()

	copied := *row
	return &copied, nil
}

func (m *MockStore) UpdateService(ctx context.Context, id string, update UpdateService) (*ServiceRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UpdateError != nil {
		return nil, m.UpdateError
	}

	for projectID, services := range m.services {
		for i := range services {
			if services[i].ID != id {
				continue
			}

			svc := &m.services[projectID][i]
			if update.Name != nil {
				svc.Name = *update.Name
			}
			if update.ServiceType != nil {
				svc.ServiceType = *update.ServiceType
			}
			if update.Stack != nil {
				svc.Stack = *update.Stack
			}
			if update.Path != nil {
				svc.Path = *update.Path
			}
			if update.URL != nil {
				svc.URL = *update.URL
			}
			if update.Port != nil {
				svc.Port = *update.Port
			}
			if update.Command != nil {
				svc.Command = *update.Command
			}
			svc.UpdatedAt = time.Now().UTC()

			copied := *svc
			return &copied, nil
		}
	}

	return nil, ErrNotFound
}

func (m *MockStore) DeleteProject(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.DeleteError != nil {
		return false, m.DeleteError
	}

	row, ok := m.projects[id]
	if !ok {
		return false, nil
	}

	delete(m.byFolder, row.Folder)
	delete(m.projects, id)
	delete(m.services, id)
	return true, nil
}

func (m *MockStore) GetProjectsWithServices(ctx context.Context) ([]ProjectWithServices, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetError != nil {
		return nil, m.GetError
	}

	var out []ProjectWithServices
	for id, row := range m.projects {
		p := ProjectWithServices{ProjectRow: *row}
		p.Services = append(p.Services, m.services[id]...)
		out = append(out, p)
	}

	return out, nil
}

// ProjectCount returns the number of registered projects.
func (m *MockStore) ProjectCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.projects)
}

// FolderCount returns how many projects are registered for the folder.
// With a correctly functioning store this is always 0 or 1.
func (m *MockStore) FolderCount(folder string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, row := range m.projects {
		if row.Folder == folder {
			count++
		}
	}
	return count
}

func (m *MockStore) Close() error {
	return nil
}
