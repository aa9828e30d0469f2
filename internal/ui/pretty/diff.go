package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/ngpatch/pkg/fix"
)

// WriteDiff renders one file's diff in git style. Diffs without changes
// write nothing.
func (s *Styles) WriteDiff(w io.Writer, diff *fix.Diff) {
	if !diff.HasChanges() {
		return
	}

	path := strings.TrimPrefix(diff.Path, "/")
	fmt.Fprintln(w, s.DiffHeader.Render(diff.GitHeader()))
	fmt.Fprintln(w, s.DiffRemove.Render("--- a/"+path))
	fmt.Fprintln(w, s.DiffAdd.Render("+++ b/"+path))

	for _, hunk := range diff.Hunks {
		fmt.Fprintln(w, s.DiffHunk.Render(hunk.Header()))
		for _, line := range hunk.Lines {
			fmt.Fprintln(w, s.diffLineStyle(line.Kind).Render(line.Kind.Prefix()+line.Content))
		}
	}

	fmt.Fprintln(w)
}

func (s *Styles) diffLineStyle(kind fix.DiffLineKind) lipgloss.Style {
	switch kind {
	case fix.DiffLineAdd:
		return s.DiffAdd
	case fix.DiffLineRemove:
		return s.DiffRemove
	default:
		return s.DiffContext
	}
}

// FormatDiffStat returns "N files changed, X insertions(+), Y deletions(-)".
func (s *Styles) FormatDiffStat(diffs []*fix.Diff) string {
	var files, additions, deletions int
	for _, d := range diffs {
		if !d.HasChanges() {
			continue
		}
		files++
		additions += d.Additions
		deletions += d.Deletions
	}

	parts := []string{fmt.Sprintf("%d %s changed", files, plural(files, "file", "files"))}
	if additions > 0 {
		parts = append(parts, s.DiffAdd.Render(
			fmt.Sprintf("%d %s(+)", additions, plural(additions, "insertion", "insertions"))))
	}
	if deletions > 0 {
		parts = append(parts, s.DiffRemove.Render(
			fmt.Sprintf("%d %s(-)", deletions, plural(deletions, "deletion", "deletions"))))
	}

	return strings.Join(parts, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
