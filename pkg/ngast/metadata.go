package ngast

import (
	"strings"

	"github.com/yaklabco/ngpatch/pkg/fix"
	"github.com/yaklabco/ngpatch/pkg/locate"
	"github.com/yaklabco/ngpatch/pkg/srcast"
)

// NgModuleMetadata returns the object literal of the first @NgModule
// decorator in the file, or nil.
func NgModuleMetadata(file *srcast.SourceFile) *srcast.Node {
	objects := locate.DecoratorMetadata(file, "NgModule", AngularCore)
	if len(objects) == 0 {
		return nil
	}
	return objects[0]
}

// AddSymbolToNgModuleMetadata plans adding symbol as the last element of
// the property array of the file's @NgModule metadata. A missing property
// is created as `property: [symbol]`. When importPath is not empty the
// edits also import symbol from it.
//
// The symbol is appended even if already present; use HasSymbolInMetadata
// to guard against duplicates.
func (p *Planner) AddSymbolToNgModuleMetadata(
	file *srcast.SourceFile, property, symbol, importPath string,
) ([]fix.TextEdit, error) {
	metadata := NgModuleMetadata(file)
	if metadata == nil {
		return nil, ErrDecoratorNotFound
	}

	var edits []fix.TextEdit
	if value := locate.FindPropertyByName(metadata, property); value != nil {
		if value.Kind != srcast.KindArray {
			return nil, ErrPropertyNotArray
		}
		edits = append(edits, appendToList(value, symbol))
	} else {
		edits = append(edits, p.addProperty(file, metadata, property+": ["+symbol+"]"))
	}

	if importPath != "" {
		edits = append(edits, p.InsertImport(file, symbol, importPath)...)
	}
	return edits, nil
}

// HasSymbolInMetadata reports whether the property array of the file's
// @NgModule already lists symbol.
func HasSymbolInMetadata(file *srcast.SourceFile, property, symbol string) bool {
	value := locate.FindPropertyByName(NgModuleMetadata(file), property)
	if value == nil || value.Kind != srcast.KindArray {
		return false
	}
	for _, elem := range locate.Elements(value) {
		if elem.Text() == symbol {
			return true
		}
	}
	return false
}

// appendToList plans text as the new last member of an array or object.
// The separator copies the line break and indentation in front of the
// current last member, so multi-line lists stay multi-line. A trailing comma
// is kept by inserting after it.
func appendToList(list *srcast.Node, text string) fix.TextEdit {
	members := locate.Elements(list)
	if len(members) == 0 {
		return fix.InsertAt(list.Start+1, text)
	}

	last := members[len(members)-1]
	sep, ok := srcast.LineBreakIndent(last.LeadingTrivia())
	if !ok {
		sep = " "
	}

	if comma := last.Next; comma != nil && comma.Kind == "," {
		return fix.InsertAt(comma.End, sep+text+",")
	}
	return fix.InsertAt(last.End, ","+sep+text)
}

// addProperty plans a new property in object. In an empty object literal
// the property is placed right after the opening brace.
func (p *Planner) addProperty(file *srcast.SourceFile, object *srcast.Node, text string) fix.TextEdit {
	if len(locate.Elements(object)) > 0 {
		return appendToList(object, text)
	}

	inner := file.TextAt(object.Start+1, object.End-1)
	switch {
	case inner == "":
		return fix.InsertAt(object.Start+1, " "+text+" ")
	case strings.Contains(inner, "\n"):
		indent := file.LineIndent(object.Start) + p.indent()
		return fix.InsertAt(object.Start+1, file.LineEnding()+indent+text)
	default:
		return fix.InsertAt(object.Start+1, " "+text)
	}
}
