// Package ngast plans source edits on Angular TypeScript files: adding
// imports and adding symbols to @NgModule metadata arrays.
//
// Planners never modify the file they inspect. They return fix.TextEdit
// values addressed against the parsed content; apply them with a
// fix.Recorder and re-parse before planning anything else on the same file.
package ngast

import (
	"errors"

	"github.com/yaklabco/ngpatch/pkg/fix"
	"github.com/yaklabco/ngpatch/pkg/srcast"
)

// AngularCore is the module that exports the NgModule decorator.
const AngularCore = "@angular/core"

// Metadata property names of @NgModule.
const (
	PropDeclarations    = "declarations"
	PropImports         = "imports"
	PropProviders       = "providers"
	PropExports         = "exports"
	PropBootstrap       = "bootstrap"
	PropEntryComponents = "entryComponents"
)

var (
	// ErrDecoratorNotFound is returned when the file has no @NgModule({...})
	// decorator imported from @angular/core.
	ErrDecoratorNotFound = errors.New("no @NgModule decorator with an object literal")

	// ErrPropertyNotArray is returned when the metadata property exists but
	// its value is not an array literal.
	ErrPropertyNotArray = errors.New("metadata property is not an array literal")
)

// Planner holds the formatting choices for generated code.
type Planner struct {
	// Quote encloses module paths of generated imports. Defaults to "'".
	Quote string

	// Indent is one level of indentation, used only when nothing in the
	// file shows how deep a new line should be. Defaults to two spaces.
	Indent string
}

// New returns a Planner with single quotes and two-space indentation.
func New() *Planner {
	return &Planner{Quote: "'", Indent: "  "}
}

func (p *Planner) quote() string {
	if p == nil || p.Quote == "" {
		return "'"
	}
	return p.Quote
}

func (p *Planner) indent() string {
	if p == nil || p.Indent == "" {
		return "  "
	}
	return p.Indent
}

var defaultPlanner = New()

// InsertImport plans an import of symbol from modulePath using default
// formatting. See Planner.InsertImport.
func InsertImport(file *srcast.SourceFile, symbol, modulePath string) []fix.TextEdit {
	return defaultPlanner.InsertImport(file, symbol, modulePath)
}

// AddSymbolToNgModuleMetadata plans the addition of symbol to the property
// array of the file's @NgModule using default formatting.
func AddSymbolToNgModuleMetadata(file *srcast.SourceFile, property, symbol, importPath string) ([]fix.TextEdit, error) {
	return defaultPlanner.AddSymbolToNgModuleMetadata(file, property, symbol, importPath)
}
