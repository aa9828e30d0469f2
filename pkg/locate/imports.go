package locate

import "github.com/yaklabco/ngpatch/pkg/srcast"

// ImportBinding is a single name bound by an import declaration.
type ImportBinding struct {
	// Imported is the exported name in the source module ("default" for
	// default imports).
	Imported string

	// Local is the name bound in this file.
	Local string

	// Node is the specifier (or default identifier) node.
	Node *srcast.Node
}

// ImportDecl is a parsed view of one import declaration.
type ImportDecl struct {
	// Node is the import_statement node.
	Node *srcast.Node

	// ModulePath is the unquoted module specifier.
	ModulePath string

	// Bindings lists default and named bindings in source order.
	Bindings []ImportBinding

	// Namespace is the local name of `* as name`, if present.
	Namespace string

	// NamedImports is the `{ ... }` node, if present.
	NamedImports *srcast.Node
}

// ImportDeclarations returns every top-level and nested import declaration
// in the file in source order.
func ImportDeclarations(file *srcast.SourceFile) []ImportDecl {
	if file == nil {
		return nil
	}

	var decls []ImportDecl
	for _, stmt := range FindNodes(file.Root, srcast.KindImportStatement, 0) {
		source := stmt.ChildByField(srcast.FieldSource)
		if source == nil {
			continue
		}

		decl := ImportDecl{
			Node:       stmt,
			ModulePath: Unquote(source.Text()),
		}

		if clause := stmt.ChildOfKind(srcast.KindImportClause); clause != nil {
			readImportClause(clause, &decl)
		}
		decls = append(decls, decl)
	}
	return decls
}

func readImportClause(clause *srcast.Node, decl *ImportDecl) {
	for _, child := range clause.NamedChildren() {
		switch child.Kind {
		case srcast.KindIdentifier:
			decl.Bindings = append(decl.Bindings, ImportBinding{
				Imported: "default",
				Local:    child.Text(),
				Node:     child,
			})
		case srcast.KindNamespaceImport:
			if id := child.ChildOfKind(srcast.KindIdentifier); id != nil {
				decl.Namespace = id.Text()
			}
		case srcast.KindNamedImports:
			decl.NamedImports = child
			for _, spec := range child.NamedChildren() {
				if spec.Kind != srcast.KindImportSpecifier {
					continue
				}
				name := spec.ChildByField(srcast.FieldName)
				if name == nil {
					continue
				}
				binding := ImportBinding{Imported: name.Text(), Local: name.Text(), Node: spec}
				if alias := spec.ChildByField(srcast.FieldAlias); alias != nil {
					binding.Local = alias.Text()
				}
				decl.Bindings = append(decl.Bindings, binding)
			}
		}
	}
}

// IsIdentifierImported reports whether the file binds symbol with an import
// from exactly modulePath.
func IsIdentifierImported(file *srcast.SourceFile, symbol, modulePath string) bool {
	for _, decl := range ImportDeclarations(file) {
		if decl.ModulePath != modulePath {
			continue
		}
		for _, binding := range decl.Bindings {
			if binding.Local == symbol {
				return true
			}
		}
	}
	return false
}
