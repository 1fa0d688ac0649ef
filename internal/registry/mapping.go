package registry

import (
	"regexp"
	"strings"
	"time"

	"github.com/yuuhLKT/warden/internal/models"
	"github.com/yuuhLKT/warden/internal/store"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify lower-cases a project name and collapses whitespace runs into
// single hyphens, producing the host part of a service URL.
func Slugify(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

// ServiceURL builds the local hostname for a project's services.
func ServiceURL(projectName, urlSuffix string) string {
	if urlSuffix == "" {
		urlSuffix = models.DefaultURLSuffix
	}
	return Slugify(projectName) + "." + urlSuffix
}

// MapDetectedProject converts one scanner result into a canonical Project.
//
// Every service gets a fresh id, its stack and category coerced through
// the taxonomy, and status stopped regardless of anything detection
// reported. All services share the host derived from the project name,
// even though that makes two services of the same project
// indistinguishable by URL.
func MapDetectedProject(detected models.DetectedProject, urlSuffix string) models.Project {
	url := ServiceURL(detected.Name, urlSuffix)
	now := time.Now()

	services := make([]models.Service, 0, len(detected.Services))
	for _, ds := range detected.Services {
		port := ds.Port
		if port == 0 {
			port = models.DefaultPort
		}
		command := ds.DevCommand
		if command == "" {
			command = models.DefaultCommand
		}

		services = append(services, models.Service{
			ID:      models.MustNewID(),
			Name:    ds.Name,
			Type:    models.CategoryToServiceType(ds.Category),
			Stack:   models.CoerceStack(ds.Stack),
			Path:    ds.Path,
			URL:     url,
			Port:    port,
			Command: command,
			Status:  models.StatusStopped,
		})
	}

	return models.Project{
		ID:         models.MustNewID(),
		Name:       detected.Name,
		Folder:     detected.Path,
		Category:   models.CalculateProjectCategory(services),
		Services:   services,
		HasDocker:  detected.HasDocker,
		GitRemote:  detected.GitRemote,
		GitBranch:  detected.GitBranch,
		DetectedAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// projectFromStore rebuilds a domain project from its persisted rows,
// coercing every loosely-typed column and re-deriving the category.
func projectFromStore(row store.ProjectWithServices) models.Project {
	services := make([]models.Service, 0, len(row.Services))
	for _, sr := range row.Services {
		services = append(services, models.Service{
			ID:      sr.ID,
			Name:    sr.Name,
			Type:    models.CoerceServiceType(sr.ServiceType),
			Stack:   models.CoerceStack(sr.Stack),
			Path:    sr.Path,
			URL:     sr.URL,
			Port:    sr.Port,
			Command: sr.Command,
			Status:  models.CoerceStatus(sr.Status),
		})
	}

	return models.Project{
		ID:         row.ID,
		Name:       row.Name,
		Folder:     row.Folder,
		Category:   models.CalculateProjectCategory(services),
		Services:   services,
		GitRemote:  row.GitRemote,
		GitBranch:  row.GitBranch,
		DetectedAt: row.CreatedAt,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

// storeRequests flattens a domain project into the store's create shapes.
func storeRequests(p models.Project) (store.CreateProject, []store.CreateService) {
	project := store.CreateProject{
		ID:        p.ID,
		Name:      p.Name,
		Folder:    p.Folder,
		GitRemote: p.GitRemote,
		GitBranch: p.GitBranch,
	}

	services := make([]store.CreateService, 0, len(p.Services))
	for _, svc := range p.Services {
		services = append(services, store.CreateService{
			ID:          svc.ID,
			ProjectID:   p.ID,
			Name:        svc.Name,
			ServiceType: string(svc.Type),
			Stack:       string(svc.Stack),
			Path:        svc.Path,
			URL:         svc.URL,
			Port:        svc.Port,
			Command:     svc.Command,
		})
	}

	return project, services
}
