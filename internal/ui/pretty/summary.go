package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/ngpatch/pkg/vtree"
)

// FormatChanges lists staged changes, one per line, followed by a status
// line. In dry-run mode the wording says what would happen.
func (s *Styles) FormatChanges(changes []vtree.Change, dryRun bool) string {
	if len(changes) == 0 {
		return s.Dim.Render("No changes") + "\n"
	}

	var builder strings.Builder
	var created int
	for _, change := range changes {
		verb := "update"
		if change.Created {
			verb = "create"
			created++
		}
		builder.WriteString(fmt.Sprintf("  %s %s\n", s.Dim.Render(verb), s.FilePath.Render(change.Path)))
	}

	updated := len(changes) - created
	var parts []string
	if updated > 0 {
		parts = append(parts, fmt.Sprintf("%d %s updated", updated, plural(updated, "file", "files")))
	}
	if created > 0 {
		parts = append(parts, fmt.Sprintf("%d %s created", created, plural(created, "file", "files")))
	}
	status := strings.Join(parts, ", ")

	if dryRun {
		builder.WriteString(s.Warning.Render("Dry run: " + status + " (nothing written)"))
	} else {
		builder.WriteString(s.Success.Render(status))
	}
	builder.WriteString("\n")

	return builder.String()
}
