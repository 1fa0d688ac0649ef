package models

import "time"

// ProjectCategory classifies a project by its constituent services.
// It is always derived via CalculateProjectCategory, never set directly.
type ProjectCategory string

const (
	CategoryFrontend  ProjectCategory = "frontend"
	CategoryBackend   ProjectCategory = "backend"
	CategoryFullstack ProjectCategory = "fullstack"
)

// Project is a named grouping of one or more services sharing a root folder.
// Folder is the natural deduplication key across workspace scans.
type Project struct {
	ID     string
	Name   string
	Folder string

	Category ProjectCategory

	// Services in insertion order (which is also display order).
	Services []Service

	// HasDocker is surfaced from detection; informational only.
	HasDocker         bool
	DockerComposeFile string

	GitRemote string
	GitBranch string

	DetectedAt time.Time
	CreatedAt  time.Time
	// UpdatedAt is refreshed on every mutation to the project or any of
	// its services.
	UpdatedAt time.Time
}

// CalculateProjectCategory derives the category from a service list:
// fullstack when both a frontend and a backend service exist, frontend when
// only frontend services exist, backend otherwise (including empty).
// Order-independent; recompute after every structural change, never patch
// incrementally.
func CalculateProjectCategory(services []Service) ProjectCategory {
	var hasFrontend, hasBackend bool
	for _, s := range services {
		switch s.Type {
		case ServiceTypeFrontend:
			hasFrontend = true
		case ServiceTypeBackend:
			hasBackend = true
		}
	}

	if hasFrontend && hasBackend {
		return CategoryFullstack
	}
	if hasFrontend {
		return CategoryFrontend
	}
	return CategoryBackend
}

// CountRunningServices returns how many of the project's services are
// currently flagged running.
func CountRunningServices(p *Project) int {
	count := 0
	for _, s := range p.Services {
		if s.Status == StatusRunning {
			count++
		}
	}
	return count
}

// PrimaryStack returns the stack of the project's first service, or
// StackOther for an empty project.
func PrimaryStack(p *Project) Stack {
	if len(p.Services) == 0 {
		return StackOther
	}
	return p.Services[0].Stack
}
