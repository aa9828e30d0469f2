package srcast

// Kind is the syntactic kind tag of a node. For TypeScript it is the
// tree-sitter node type; the JSON parser uses the same names where the
// grammars overlap so that locator code works on both.
type Kind string

// Node kinds shared by both grammars.
const (
	KindObject Kind = "object"
	KindPair   Kind = "pair"
	KindArray  Kind = "array"
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindTrue   Kind = "true"
	KindFalse  Kind = "false"
	KindNull   Kind = "null"

	KindComment Kind = "comment"
)

// JSON-only kinds.
const (
	KindDocument Kind = "document"
)

// TypeScript kinds the locator and planners rely on.
const (
	KindProgram             Kind = "program"
	KindImportStatement     Kind = "import_statement"
	KindImportClause        Kind = "import_clause"
	KindNamedImports        Kind = "named_imports"
	KindImportSpecifier     Kind = "import_specifier"
	KindNamespaceImport     Kind = "namespace_import"
	KindDecorator           Kind = "decorator"
	KindCallExpression      Kind = "call_expression"
	KindMemberExpression    Kind = "member_expression"
	KindArguments           Kind = "arguments"
	KindIdentifier          Kind = "identifier"
	KindPropertyIdentifier  Kind = "property_identifier"
	KindShorthandProperty   Kind = "shorthand_property_identifier"
	KindStringFragment      Kind = "string_fragment"
	KindExpressionStatement Kind = "expression_statement"
	KindClassDeclaration    Kind = "class_declaration"
	KindFunctionDeclaration Kind = "function_declaration"
	KindVariableDeclarator  Kind = "variable_declarator"
	KindExportStatement     Kind = "export_statement"
	KindError               Kind = "ERROR"
)

// Field names attached to children by the parsers.
const (
	FieldKey       = "key"
	FieldValue     = "value"
	FieldName      = "name"
	FieldAlias     = "alias"
	FieldSource    = "source"
	FieldFunction  = "function"
	FieldArguments = "arguments"
	FieldObject    = "object"
	FieldProperty  = "property"
)

// Node is a position-tagged element of a parsed source tree.
// Nodes form a tree with parent/child/sibling links and are never
// modified after the parser has built them.
type Node struct {
	// Kind identifies the syntactic kind.
	Kind Kind

	// Start is the byte index where the node begins (inclusive).
	Start int

	// End is the byte index where the node ends (exclusive).
	End int

	// Named is false for punctuation and keyword tokens.
	Named bool

	// Field is the grammar field under which the parent holds this node, if any.
	Field string

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// File is a back-reference to the containing SourceFile.
	File *SourceFile
}

// Children returns a slice of all direct children, tokens included.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// NamedChildren returns the named direct children, skipping tokens and comments.
func (n *Node) NamedChildren() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		if child.Named && child.Kind != KindComment {
			children = append(children, child)
		}
	}
	return children
}

// ChildByField returns the first child held under the given field name.
func (n *Node) ChildByField(field string) *Node {
	if n == nil {
		return nil
	}
	for child := n.FirstChild; child != nil; child = child.Next {
		if child.Field == field {
			return child
		}
	}
	return nil
}

// ChildOfKind returns the first direct child of the given kind.
func (n *Node) ChildOfKind(kind Kind) *Node {
	if n == nil {
		return nil
	}
	for child := n.FirstChild; child != nil; child = child.Next {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

// Text returns the source text for this node.
// Returns "" if the node has no associated file.
func (n *Node) Text() string {
	if n == nil || n.File == nil {
		return ""
	}
	return n.File.TextAt(n.Start, n.End)
}
