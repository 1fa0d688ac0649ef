package scanner

import (
	"context"

	"github.com/yuuhLKT/warden/internal/models"
)

// Scanner discovers projects and their services on disk. Results are
// loosely typed detection records; the registry coerces them into the
// domain model.
type Scanner interface {
	// ScanWorkspace inspects every first-level folder of root and
	// returns a detection record per recognized project.
	ScanWorkspace(ctx context.Context, root string, maxDepth int) ([]models.DetectedProject, error)

	// ScanProject inspects one project folder.
	ScanProject(ctx context.Context, path string, maxDepth int) (models.DetectedProject, error)
}
