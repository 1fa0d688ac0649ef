package registry

import (
	"time"

	"github.com/yuuhLKT/warden/internal/models"
)

// The functions in this file are pure transforms over a project list.
// They copy every project and service slice they modify so the old and
// new lists never alias nested state; callers can keep the previous list
// for comparison or rollback.

// ServiceUpdate is a partial update for one service. Nil fields are left
// untouched. ID and Status are deliberately absent: identity is immutable
// and status changes go through the status operations.
type ServiceUpdate struct {
	Name    *string
	Type    *models.ServiceType
	Stack   *models.Stack
	Path    *string
	URL     *string
	Port    *int
	Command *string
}

// updateProjectServices rebuilds one project with a transformed service
// list, recomputes its category and bumps UpdatedAt. Other projects are
// carried over untouched.
func updateProjectServices(projects []models.Project, projectID string, transform func([]models.Service) []models.Service) []models.Project {
	out := make([]models.Project, len(projects))
	for i, p := range projects {
		if p.ID != projectID {
			out[i] = p
			continue
		}

		services := transform(copyServices(p.Services))
		p.Services = services
		p.Category = models.CalculateProjectCategory(services)
		p.UpdatedAt = time.Now()
		out[i] = p
	}
	return out
}

func copyServices(services []models.Service) []models.Service {
	copied := make([]models.Service, len(services))
	copy(copied, services)
	return copied
}

// ToggleServiceStatus flips one service between running and stopped.
// Unknown (projectID, serviceID) pairs return the input unchanged.
func ToggleServiceStatus(projects []models.Project, projectID, serviceID string) []models.Project {
	svc := findService(projects, projectID, serviceID)
	if svc == nil {
		return projects
	}

	next := models.StatusRunning
	if svc.Status == models.StatusRunning {
		next = models.StatusStopped
	}

	return UpdateServiceStatus(projects, projectID, serviceID, next)
}

// UpdateServiceStatus sets one service to an explicit status.
func UpdateServiceStatus(projects []models.Project, projectID, serviceID string, status models.ServiceStatus) []models.Project {
	if findService(projects, projectID, serviceID) == nil {
		return projects
	}

	return updateProjectServices(projects, projectID, func(services []models.Service) []models.Service {
		for i := range services {
			if services[i].ID == serviceID {
				services[i].Status = status
			}
		}
		return services
	})
}

// UpdateAllServicesStatus sets every service of one project to the same
// status. Used for start-all / stop-all.
func UpdateAllServicesStatus(projects []models.Project, projectID string, status models.ServiceStatus) []models.Project {
	if findProject(projects, projectID) == nil {
		return projects
	}

	return updateProjectServices(projects, projectID, func(services []models.Service) []models.Service {
		for i := range services {
			services[i].Status = status
		}
		return services
	})
}

// UpdateServiceInProject applies a partial field update to one service.
func UpdateServiceInProject(projects []models.Project, projectID, serviceID string, update ServiceUpdate) []models.Project {
	if findService(projects, projectID, serviceID) == nil {
		return projects
	}

	return updateProjectServices(projects, projectID, func(services []models.Service) []models.Service {
		for i := range services {
			if services[i].ID != serviceID {
				continue
			}

			svc := &services[i]
			if update.Name != nil {
				svc.Name = *update.Name
			}
			if update.Type != nil {
				svc.Type = *update.Type
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
		}
		return services
	})
}

// RemoveProjectByID filters one project out of the list.
func RemoveProjectByID(projects []models.Project, projectID string) []models.Project {
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.ID != projectID {
			out = append(out, p)
		}
	}
	return out
}

func findProject(projects []models.Project, projectID string) *models.Project {
	for i := range projects {
		if projects[i].ID == projectID {
			return &projects[i]
		}
	}
	return nil
}

func findService(projects []models.Project, projectID, serviceID string) *models.Service {
	p := findProject(projects, projectID)
	if p == nil {
		return nil
	}
	for i := range p.Services {
		if p.Services[i].ID == serviceID {
			return &p.Services[i]
		}
	}
	return nil
}
