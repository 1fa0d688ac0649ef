package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yuuhLKT/warden/internal/models"
)

func twoProjects() []models.Project {
	return []models.Project{
		{
			ID:       "p1",
			Name:     "alpha",
			Folder:   "/home/u/apps/alpha",
			Category: models.CategoryFullstack,
			Services: []models.Service{
				{ID: "s1", Name: "web", Type: models.ServiceTypeFrontend, Stack: models.StackReact, Status: models.StatusRunning},
				{ID: "s2", Name: "api", Type: models.ServiceTypeBackend, Stack: models.StackDjango, Status: models.StatusStopped},
			},
		},
		{
			ID:       "p2",
			Name:     "beta",
			Folder:   "/home/u/apps/beta",
			Category: models.CategoryBackend,
			Services: []models.Service{
				{ID: "s3", Name: "worker", Type: models.ServiceTypeBackend, Stack: models.StackGo, Status: models.StatusStopped},
			},
		},
	}
}

// statuses flattens the list to service statuses so lists can be compared
// without tripping over UpdatedAt.
func statuses(projects []models.Project) map[string]models.ServiceStatus {
	out := make(map[string]models.ServiceStatus)
	for _, p := range projects {
		for _, s := range p.Services {
			out[p.ID+"/"+s.ID] = s.Status
		}
	}
	return out
}

func TestToggleServiceStatusIsSelfInverse(t *testing.T) {
	original := twoProjects()

	once := ToggleServiceStatus(original, "p1", "s1")
	require.Equal(t, models.StatusStopped, once[0].Services[0].Status)

	twice := ToggleServiceStatus(once, "p1", "s1")
	require.Equal(t, statuses(original), statuses(twice))
}

func TestToggleServiceStatusUnknownPairIsNoop(t *testing.T) {
	original := twoProjects()

	for _, pair := range [][2]string{
		{"p1", "nope"},
		{"nope", "s1"},
		{"p2", "s1"}, // service exists but under another project
	} {
		out := ToggleServiceStatus(original, pair[0], pair[1])
		require.Equal(t, statuses(original), statuses(out), "pair %v", pair)
	}
}

func TestUpdateAllServicesStatusRoundTrip(t *testing.T) {
	original := twoProjects()

	up := UpdateAllServicesStatus(original, "p1", models.StatusRunning)
	for _, s := range up[0].Services {
		require.Equal(t, models.StatusRunning, s.Status)
	}

	down := UpdateAllServicesStatus(up, "p1", models.StatusStopped)
	for _, s := range down[0].Services {
		require.Equal(t, models.StatusStopped, s.Status)
	}

	// The other project never moves.
	require.Equal(t, statuses(original)["p2/s3"], statuses(down)["p2/s3"])
}

func TestMutationsDoNotAliasOriginal(t *testing.T) {
	original := twoProjects()

	_ = UpdateServiceStatus(original, "p1", "s2", models.StatusRunning)
	require.Equal(t, models.StatusStopped, original[0].Services[1].Status)

	name := "renamed"
	_ = UpdateServiceInProject(original, "p2", "s3", ServiceUpdate{Name: &name})
	require.Equal(t, "worker", original[1].Services[0].Name)
}

func TestUpdateServiceInProjectRecomputesCategory(t *testing.T) {
	projects := twoProjects()

	newType := models.ServiceTypeFrontend
	out := UpdateServiceInProject(projects, "p1", "s2", ServiceUpdate{Type: &newType})

	require.Equal(t, models.ServiceTypeFrontend, out[0].Services[1].Type)
	require.Equal(t, models.CategoryFrontend, out[0].Category)
}

func TestToggleRunningServiceLeavesNoneRunning(t *testing.T) {
	projects := twoProjects()
	projects[0].UpdatedAt = time.Now().Add(-time.Hour)
	before := projects[0].UpdatedAt

	out := ToggleServiceStatus(projects, "p1", "s1")

	if got := models.CountRunningServices(&out[0]); got != 0 {
		t.Fatalf("expected zero running services, got %d", got)
	}
	require.True(t, out[0].UpdatedAt.After(before))
}

func TestRemoveProjectByID(t *testing.T) {
	projects := twoProjects()

	out := RemoveProjectByID(projects, "p1")
	require.Len(t, out, 1)
	require.Equal(t, "p2", out[0].ID)

	// Removing an unknown id keeps the list intact.
	out = RemoveProjectByID(projects, "nope")
	require.Len(t, out, 2)
}
