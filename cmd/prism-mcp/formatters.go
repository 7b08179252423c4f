package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/prismbrain/prism/internal/models"
)

// formatProjectList formats the project listing as markdown
func formatProjectList(projects []*models.Project) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Projects (%d)\n\n", len(projects)))

	if len(projects) == 0 {
		sb.WriteString("No projects yet. Use create_project to start one.\n")
		return sb.String()
	}

	for _, p := range projects {
		sb.WriteString(fmt.Sprintf("### %s\n", p.Name))
		sb.WriteString(fmt.Sprintf("**ID:** %s\n", p.ID))
		sb.WriteString(fmt.Sprintf("**Units:** %d | **Sources:** %d | **Connections:** %d\n",
			len(p.Units), len(p.Sources), len(p.Connections)))
		if contributors := p.ContributorNames(); len(contributors) > 0 {
			sb.WriteString(fmt.Sprintf("**Contributors:** %s\n", strings.Join(contributors, ", ")))
		}
		sb.WriteString(fmt.Sprintf("**Updated:** %s\n\n", p.UpdatedAt.Format(time.RFC3339)))
	}

	return sb.String()
}
