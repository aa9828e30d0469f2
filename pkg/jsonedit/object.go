package jsonedit

import (
	"strings"

	"github.com/yaklabco/ngpatch/pkg/fix"
	"github.com/yaklabco/ngpatch/pkg/locate"
	"github.com/yaklabco/ngpatch/pkg/parser/jsonast"
	"github.com/yaklabco/ngpatch/pkg/srcast"
)

// AppendProperty plans `"key": value` as the last property of object. value
// is raw JSON text. In an empty object the property goes on its own line,
// indented by indent spaces past the object's line.
func AppendProperty(file *srcast.SourceFile, object *srcast.Node, key, value string, indent int) ([]fix.TextEdit, error) {
	if err := expect(object, srcast.KindObject, ErrNotObject); err != nil {
		return nil, err
	}

	pairs := locate.Elements(object)
	if len(pairs) == 0 {
		eol := file.LineEnding()
		base := file.LineIndent(object.Start)
		text := eol + base + indentString(indent) + jsonast.Quote(key) + ": " + value + eol + base
		return []fix.TextEdit{fix.ReplaceRange(object.Start+1, object.End-1, text)}, nil
	}

	last := pairs[len(pairs)-1]
	sep, col := separator(last), colon(last)
	if sep == "" && strings.HasSuffix(col, " ") {
		sep = " "
	}
	text := "," + sep + jsonast.Quote(key) + col + value
	return []fix.TextEdit{fix.InsertAt(last.End, text)}, nil
}

// InsertPropertyInOrder plans `"key": value` in front of the first property
// whose key sorts after key, matching its spacing. When no such property
// exists it behaves like AppendProperty.
func InsertPropertyInOrder(file *srcast.SourceFile, object *srcast.Node, key, value string, indent int) ([]fix.TextEdit, error) {
	if err := expect(object, srcast.KindObject, ErrNotObject); err != nil {
		return nil, err
	}

	pairs := locate.Elements(object)
	for idx, pair := range pairs {
		existing, ok := locate.PropertyKey(pair)
		if !ok || existing <= key {
			continue
		}
		text := jsonast.Quote(key) + colon(pair) + value + "," + gapBefore(pairs, idx)
		return []fix.TextEdit{fix.InsertAt(pair.Start, text)}, nil
	}

	return AppendProperty(file, object, key, value, indent)
}

// SetPropertyValue plans replacing the value of key in object with value.
// It returns no edits when the property does not exist.
func SetPropertyValue(object *srcast.Node, key, value string) ([]fix.TextEdit, error) {
	if err := expect(object, srcast.KindObject, ErrNotObject); err != nil {
		return nil, err
	}

	current := locate.FindPropertyByName(object, key)
	if current == nil {
		return nil, nil
	}
	return []fix.TextEdit{fix.ReplaceRange(current.Start, current.End, value)}, nil
}

// gapBefore returns the spacing to put between a new comma and pairs[idx].
// The first property of a compact object borrows it from its next sibling,
// or from the colon spacing when it has none.
func gapBefore(pairs []*srcast.Node, idx int) string {
	trivia := pairs[idx].LeadingTrivia()
	if idx > 0 || strings.ContainsRune(trivia, '\n') {
		return trivia
	}
	if len(pairs) > 1 {
		return separator(pairs[1])
	}
	if strings.HasSuffix(colon(pairs[0]), " ") {
		return " "
	}
	return ""
}
