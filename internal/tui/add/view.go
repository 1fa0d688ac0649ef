package add

import (
	"fmt"
	"strings"

	"github.com/yuuhLKT/warden/internal/models"
	"github.com/yuuhLKT/warden/internal/tui"
)

// RenderSuccess summarizes a freshly registered project.
func RenderSuccess(project *models.Project) string {
	var b strings.Builder

	b.WriteString(tui.SuccessStyle.Render(fmt.Sprintf("✓ Registered %s", project.Name)))
	b.WriteString("\n")
	b.WriteString(tui.SubtleStyle.Render(project.Folder))
	b.WriteString("\n")

	for _, svc := range project.Services {
		b.WriteString(fmt.Sprintf("  %s (%s, %s) → %s:%d\n",
			svc.Name, svc.Type, svc.Stack, svc.URL, svc.Port))
	}

	return b.String()
}
