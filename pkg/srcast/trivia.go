package srcast

import "strings"

// LeadingTrivia returns the text between the end of the previous sibling
// (or the start of the parent) and the start of n. For list elements this is
// the whitespace that follows the separating comma.
func (n *Node) LeadingTrivia() string {
	if n == nil || n.File == nil {
		return ""
	}

	from := 0
	switch {
	case n.Prev != nil:
		from = n.Prev.End
	case n.Parent != nil:
		from = n.Parent.Start
	}
	if from > n.Start {
		return ""
	}
	return n.File.TextAt(from, n.Start)
}

// LineBreakIndent extracts the final line break and the indentation after it
// from a whitespace run, e.g. ",\n    " yields "\n    ". The second result is
// false when the run contains no line break.
func LineBreakIndent(trivia string) (string, bool) {
	idx := strings.LastIndexByte(trivia, '\n')
	if idx < 0 {
		return "", false
	}
	if idx > 0 && trivia[idx-1] == '\r' {
		idx--
	}

	end := len(trivia)
	rest := trivia[idx:]
	for i, r := range rest {
		if r != '\r' && r != '\n' && r != ' ' && r != '\t' {
			end = idx + i
			break
		}
	}
	return trivia[idx:end], true
}
