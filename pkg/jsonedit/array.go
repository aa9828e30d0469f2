package jsonedit

import (
	"github.com/yaklabco/ngpatch/pkg/fix"
	"github.com/yaklabco/ngpatch/pkg/locate"
	"github.com/yaklabco/ngpatch/pkg/parser/jsonast"
	"github.com/yaklabco/ngpatch/pkg/srcast"
)

// AppendArrayElement plans value, raw JSON text, as the new last element of
// array. The spacing in front of the current last element is reused, so
// one-per-line arrays stay one-per-line and compact arrays stay compact.
// An empty array receives value right after its opening bracket.
func AppendArrayElement(array *srcast.Node, value string) ([]fix.TextEdit, error) {
	if err := expect(array, srcast.KindArray, ErrNotArray); err != nil {
		return nil, err
	}

	elems := locate.Elements(array)
	if len(elems) == 0 {
		return []fix.TextEdit{fix.InsertAt(array.Start+1, value)}, nil
	}

	last := elems[len(elems)-1]
	return []fix.TextEdit{fix.InsertAt(last.End, ","+separator(last)+value)}, nil
}

// RemoveArrayElement plans the removal of the first element of array for
// which match returns true. It returns no edits when nothing matches.
//
// The removed span takes one neighbouring comma with it so the array stays
// valid: the comma before the element, or the one after it when the element
// is first. Removing the only element leaves `[]`.
func RemoveArrayElement(array *srcast.Node, match func(*srcast.Node) bool) ([]fix.TextEdit, error) {
	if err := expect(array, srcast.KindArray, ErrNotArray); err != nil {
		return nil, err
	}

	elems := locate.Elements(array)
	for idx, elem := range elems {
		if !match(elem) {
			continue
		}

		switch {
		case len(elems) == 1:
			return []fix.TextEdit{fix.ReplaceRange(array.Start, array.End, "[]")}, nil
		case idx > 0:
			return []fix.TextEdit{fix.RemoveRange(elems[idx-1].End, elem.End)}, nil
		default:
			return []fix.TextEdit{fix.RemoveRange(elem.Start, elems[1].Start)}, nil
		}
	}
	return nil, nil
}

// StringEquals matches string elements whose decoded value is s.
func StringEquals(s string) func(*srcast.Node) bool {
	return func(n *srcast.Node) bool {
		value, ok := jsonast.StringValue(n)
		return ok && value == s
	}
}

// ContainsString reports whether array has a string element equal to s.
func ContainsString(array *srcast.Node, s string) bool {
	match := StringEquals(s)
	for _, elem := range locate.Elements(array) {
		if match(elem) {
			return true
		}
	}
	return false
}
