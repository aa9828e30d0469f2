package ngast

import (
	"fmt"
	"strings"

	"github.com/yaklabco/ngpatch/pkg/fix"
	"github.com/yaklabco/ngpatch/pkg/locate"
	"github.com/yaklabco/ngpatch/pkg/srcast"
)

// InsertImport plans `import { symbol } from 'modulePath';`.
//
// No edits are returned when symbol is already bound by an import from
// modulePath, or when modulePath is imported as a namespace. An existing
// named import from modulePath is extended instead of adding a second
// declaration. Otherwise the new declaration goes on the line after the
// last import, or at the top of the file when there are none.
func (p *Planner) InsertImport(file *srcast.SourceFile, symbol, modulePath string) []fix.TextEdit {
	if file == nil || file.Root == nil {
		return nil
	}

	decls := locate.ImportDeclarations(file)

	var fromModule []locate.ImportDecl
	for _, decl := range decls {
		if decl.ModulePath != modulePath {
			continue
		}
		if decl.Namespace != "" {
			return nil
		}
		for _, binding := range decl.Bindings {
			if binding.Local == symbol {
				return nil
			}
		}
		fromModule = append(fromModule, decl)
	}

	for _, decl := range fromModule {
		if edit, ok := extendImport(decl, symbol); ok {
			return []fix.TextEdit{edit}
		}
	}

	eol := file.LineEnding()
	stmt := p.importStatement(symbol, modulePath)

	if len(decls) == 0 {
		pos := importAnchor(file)
		if pos > 0 {
			return []fix.TextEdit{fix.InsertAt(pos, eol+stmt)}
		}
		return []fix.TextEdit{fix.InsertAt(0, stmt+eol)}
	}

	last := decls[len(decls)-1].Node
	if next, ok := nextLineStart(file.Content, last.End); ok {
		return []fix.TextEdit{fix.InsertAt(next, stmt+eol)}
	}
	return []fix.TextEdit{fix.InsertAt(last.End, eol+stmt)}
}

func (p *Planner) importStatement(symbol, modulePath string) string {
	q := p.quote()
	return fmt.Sprintf("import { %s } from %s%s%s;", symbol, q, modulePath, q)
}

// extendImport adds symbol to the binding list of decl. Declarations with
// only a default import gain a `{ symbol }` clause.
func extendImport(decl locate.ImportDecl, symbol string) (fix.TextEdit, bool) {
	if named := decl.NamedImports; named != nil {
		specs := locate.Elements(named)
		if len(specs) == 0 {
			text := " " + symbol
			if named.Text() == "{}" {
				text += " "
			}
			return fix.InsertAt(named.Start+1, text), true
		}
		return appendToList(named, symbol), true
	}

	for _, binding := range decl.Bindings {
		if binding.Imported == "default" {
			return fix.InsertAt(binding.Node.End, ", { "+symbol+" }"), true
		}
	}
	return fix.TextEdit{}, false
}

// importAnchor returns the offset after the file header: leading comments
// such as a license block, and a "use strict" directive. A doc comment
// directly above the first statement belongs to it and is not part of the
// header. Returns 0 when there is no header.
func importAnchor(file *srcast.SourceFile) int {
	anchor := 0
	for child := file.Root.FirstChild; child != nil; child = child.Next {
		if child.Kind == srcast.KindComment {
			if !attachedDocComment(file, child) {
				anchor = child.End
			}
			continue
		}
		if str := child.ChildOfKind(srcast.KindString); child.Kind == srcast.KindExpressionStatement &&
			str != nil && locate.Unquote(str.Text()) == "use strict" {
			return child.End
		}
		break
	}
	return anchor
}

// attachedDocComment reports whether comment is a /** */ block with no
// blank line between it and the next statement.
func attachedDocComment(file *srcast.SourceFile, comment *srcast.Node) bool {
	if !strings.HasPrefix(comment.Text(), "/**") || comment.Next == nil {
		return false
	}
	gap := file.TextAt(comment.End, comment.Next.Start)
	return strings.Count(gap, "\n") < 2
}

// nextLineStart returns the offset just past the first line break at or
// after from.
func nextLineStart(content []byte, from int) (int, bool) {
	for i := from; i < len(content); i++ {
		if content[i] == '\n' {
			return i + 1, true
		}
	}
	return 0, false
}
