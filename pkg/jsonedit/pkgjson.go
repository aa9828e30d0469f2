package jsonedit

import (
	"github.com/yaklabco/ngpatch/pkg/fix"
	"github.com/yaklabco/ngpatch/pkg/locate"
	"github.com/yaklabco/ngpatch/pkg/parser/jsonast"
	"github.com/yaklabco/ngpatch/pkg/srcast"
)

// DependencyType names a dependency section of package.json.
type DependencyType string

const (
	DependencyDefault DependencyType = "dependencies"
	DependencyDev     DependencyType = "devDependencies"
	DependencyPeer    DependencyType = "peerDependencies"
)

// Valid reports whether t is a known section.
func (t DependencyType) Valid() bool {
	switch t {
	case DependencyDefault, DependencyDev, DependencyPeer:
		return true
	default:
		return false
	}
}

// AddPackageJSONDependency plans adding name@version to the kind section of
// a package.json document. The section is created when missing and the new
// entry is kept in key order. An existing entry is left alone unless
// overwrite is set, in which case only its version string is replaced.
func AddPackageJSONDependency(
	file *srcast.SourceFile, kind DependencyType, name, version string, overwrite bool, indent int,
) ([]fix.TextEdit, error) {
	root := Root(file)
	if err := expect(root, srcast.KindObject, ErrNotObject); err != nil {
		return nil, err
	}

	section := locate.FindPropertyByName(root, string(kind))
	if section == nil {
		return addSection(file, root, kind, name, version, indent)
	}
	if err := expect(section, srcast.KindObject, ErrNotObject); err != nil {
		return nil, err
	}

	if current := locate.FindPropertyByName(section, name); current != nil {
		if !overwrite {
			return nil, nil
		}
		return []fix.TextEdit{fix.ReplaceRange(current.Start, current.End, jsonast.Quote(version))}, nil
	}

	return InsertPropertyInOrder(file, section, name, jsonast.Quote(version), indent)
}

func addSection(
	file *srcast.SourceFile, root *srcast.Node, kind DependencyType, name, version string, indent int,
) ([]fix.TextEdit, error) {
	eol := file.LineEnding()
	step := indentString(indent)

	// The section's own indentation is that of root's properties.
	base := step
	if pairs := locate.Elements(root); len(pairs) > 0 {
		if sep, ok := srcast.LineBreakIndent(pairs[len(pairs)-1].LeadingTrivia()); ok {
			base = trimLineBreak(sep)
		}
	}

	value := "{" + eol + base + step + jsonast.Quote(name) + ": " + jsonast.Quote(version) + eol + base + "}"
	return AppendProperty(file, root, string(kind), value, indent)
}

func trimLineBreak(sep string) string {
	for len(sep) > 0 && (sep[0] == '\r' || sep[0] == '\n') {
		sep = sep[1:]
	}
	return sep
}
