// Package typescript provides a parser.Parser implementation backed by the
// tree-sitter TypeScript grammar.
package typescript

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	tsgrammar "github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/yaklabco/ngpatch/pkg/srcast"
)

// Language is the SourceFile.Language value set by this parser.
const Language = "typescript"

// errNilRoot is returned when tree-sitter produces no root node.
var errNilRoot = errors.New("tree-sitter returned nil root node")

// Parser parses TypeScript source with tree-sitter and maps the result into
// an srcast tree. A new tree-sitter parser is created per call, so Parser is
// safe for concurrent use.
type Parser struct {
	jsx bool
}

// New creates a TypeScript parser.
func New() *Parser {
	return &Parser{}
}

// NewTSX creates a parser for .tsx sources, using the grammar variant that
// accepts JSX elements.
func NewTSX() *Parser {
	return &Parser{jsx: true}
}

func (p *Parser) grammar() *sitter.Language {
	if p.jsx {
		return tsx.GetLanguage()
	}
	return tsgrammar.GetLanguage()
}

// Parse converts TypeScript source into a SourceFile.
//
// Syntax errors do not fail the parse: tree-sitter recovers and the affected
// region is represented by ERROR nodes. SourceFile.HasErrors reports whether
// that happened. The tree-sitter tree is released before Parse returns.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*srcast.SourceFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	tsParser := sitter.NewParser()
	defer tsParser.Close()
	tsParser.SetLanguage(p.grammar())

	tree, err := tsParser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, errNilRoot
	}

	file := srcast.NewSourceFile(path, content)
	file.Language = Language
	file.HasErrors = root.HasError()

	m := &mapper{file: file}
	file.Root = m.mapNode(root, "")

	return file, nil
}
