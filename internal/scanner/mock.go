package scanner

import (
	"context"

	"github.com/yuuhLKT/warden/internal/models"
)

// MockScanner implements Scanner with canned results for testing.
type MockScanner struct {
	// Projects is returned by ScanWorkspace; ScanProject looks the path
	// up in it.
	Projects []models.DetectedProject

	// Error hooks for failure scenarios.
	ScanWorkspaceError error
	ScanProjectError   error

	// ScannedRoots records every root passed to ScanWorkspace.
	ScannedRoots []string
}

var _ Scanner = (*MockScanner)(nil)

func (m *MockScanner) ScanWorkspace(ctx context.Context, root string, maxDepth int) ([]models.DetectedProject, error) {
	m.ScannedRoots = append(m.ScannedRoots, root)
	if m.ScanWorkspaceError != nil {
		return nil, m.ScanWorkspaceError
	}
	return m.Projects, nil
}

func (m *MockScanner) ScanProject(ctx context.Context, path string, maxDepth int) (models.DetectedProject, error) {
	if m.ScanProjectError != nil {
		return models.DetectedProject{}, m.ScanProjectError
	}
	for _, p := range m.Projects {
		if p.Path == path {
			return p, nil
		}
	}
	return models.DetectedProject{Name: "unknown", Path: path}, nil
}
