package fix

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff is a line-based unified diff of one file.
type Diff struct {
	// Path is the file path used in the diff headers.
	Path string

	// Original is the content before edits.
	Original []byte

	// Modified is the content after edits.
	Modified []byte

	// Hunks are the changed regions with surrounding context.
	Hunks []DiffHunk

	// Additions counts added lines.
	Additions int

	// Deletions counts removed lines.
	Deletions int
}

// DiffHunk is one "@@" section of a unified diff. Start lines are 1-based.
type DiffHunk struct {
	OriginalStart int
	OriginalCount int
	ModifiedStart int
	ModifiedCount int
	Lines         []DiffLine
}

// DiffLine is a single line of a hunk without its prefix character.
type DiffLine struct {
	Kind    DiffLineKind
	Content string
}

// DiffLineKind tells context, added and removed lines apart.
type DiffLineKind int

const (
	// DiffLineContext is unchanged.
	DiffLineContext DiffLineKind = iota

	// DiffLineAdd exists only in the modified content.
	DiffLineAdd

	// DiffLineRemove exists only in the original content.
	DiffLineRemove
)

// Prefix returns the unified diff marker for the line kind.
func (k DiffLineKind) Prefix() string {
	switch k {
	case DiffLineAdd:
		return "+"
	case DiffLineRemove:
		return "-"
	default:
		return " "
	}
}

// contextLines is the number of unchanged lines kept around each change.
const contextLines = 3

// GenerateDiff compares original and modified line by line. It returns nil
// when both are equal.
func GenerateDiff(path string, original, modified []byte) *Diff {
	before := splitLines(original)
	after := splitLines(modified)
	if slices.Equal(before, after) {
		return nil
	}

	matcher := difflib.NewMatcherWithJunk(before, after, false, nil)

	diff := &Diff{Path: path, Original: original, Modified: modified}
	for _, group := range matcher.GetGroupedOpCodes(contextLines) {
		hunk := buildHunk(group, before, after)
		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineAdd:
				diff.Additions++
			case DiffLineRemove:
				diff.Deletions++
			}
		}
		diff.Hunks = append(diff.Hunks, hunk)
	}

	if len(diff.Hunks) == 0 {
		return nil
	}
	return diff
}

func buildHunk(group []difflib.OpCode, before, after []string) DiffHunk {
	first, last := group[0], group[len(group)-1]

	hunk := DiffHunk{
		OriginalStart: hunkStart(first.I1, last.I2),
		OriginalCount: last.I2 - first.I1,
		ModifiedStart: hunkStart(first.J1, last.J2),
		ModifiedCount: last.J2 - first.J1,
	}

	for _, code := range group {
		if code.Tag == 'e' {
			for _, line := range before[code.I1:code.I2] {
				hunk.Lines = append(hunk.Lines, DiffLine{Kind: DiffLineContext, Content: line})
			}
			continue
		}
		if code.Tag == 'r' || code.Tag == 'd' {
			for _, line := range before[code.I1:code.I2] {
				hunk.Lines = append(hunk.Lines, DiffLine{Kind: DiffLineRemove, Content: line})
			}
		}
		if code.Tag == 'r' || code.Tag == 'i' {
			for _, line := range after[code.J1:code.J2] {
				hunk.Lines = append(hunk.Lines, DiffLine{Kind: DiffLineAdd, Content: line})
			}
		}
	}
	return hunk
}

// hunkStart converts a 0-based range start to the unified diff convention:
// 1-based, or the line before the range when the range is empty.
func hunkStart(from, to int) int {
	if from == to {
		return from
	}
	return from + 1
}

// GitHeader returns the "diff --git" line for the file.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String renders the diff in unified format without the git header.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n+++ b/%s\n", path, path)
	for _, hunk := range d.Hunks {
		sb.WriteString(hunk.Header())
		sb.WriteByte('\n')
		for _, line := range hunk.Lines {
			sb.WriteString(line.Kind.Prefix())
			sb.WriteString(line.Content)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Header returns the "@@ -a,b +c,d @@" line of the hunk.
func (h DiffHunk) Header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@",
		h.OriginalStart, h.OriginalCount, h.ModifiedStart, h.ModifiedCount)
}

// FullString renders the git header followed by the unified diff.
func (d *Diff) FullString() string {
	if !d.HasChanges() {
		return ""
	}
	return d.GitHeader() + "\n" + d.String()
}

// HasChanges reports whether the diff has at least one hunk.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// splitLines breaks content on "\n". A final newline does not produce an
// extra empty line.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
}
