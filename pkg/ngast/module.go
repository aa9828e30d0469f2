package ngast

import (
	"github.com/yaklabco/ngpatch/pkg/fix"
	"github.com/yaklabco/ngpatch/pkg/srcast"
)

// AddDeclarationToModule adds a component, directive or pipe to
// `declarations` and imports it from importPath.
func (p *Planner) AddDeclarationToModule(file *srcast.SourceFile, classifiedName, importPath string) ([]fix.TextEdit, error) {
	return p.AddSymbolToNgModuleMetadata(file, PropDeclarations, classifiedName, importPath)
}

// AddImportToModule adds a module to `imports` and imports it from
// importPath.
func (p *Planner) AddImportToModule(file *srcast.SourceFile, classifiedName, importPath string) ([]fix.TextEdit, error) {
	return p.AddSymbolToNgModuleMetadata(file, PropImports, classifiedName, importPath)
}

// AddProviderToModule adds a provider to `providers` and imports it from
// importPath.
func (p *Planner) AddProviderToModule(file *srcast.SourceFile, classifiedName, importPath string) ([]fix.TextEdit, error) {
	return p.AddSymbolToNgModuleMetadata(file, PropProviders, classifiedName, importPath)
}

// AddExportToModule adds a symbol to `exports`. The symbol is imported from
// importPath unless the file already imports it.
func (p *Planner) AddExportToModule(file *srcast.SourceFile, classifiedName, importPath string) ([]fix.TextEdit, error) {
	return p.AddSymbolToNgModuleMetadata(file, PropExports, classifiedName, importPath)
}

// AddBootstrapToModule adds a root component to `bootstrap` and imports it
// from importPath.
func (p *Planner) AddBootstrapToModule(file *srcast.SourceFile, classifiedName, importPath string) ([]fix.TextEdit, error) {
	return p.AddSymbolToNgModuleMetadata(file, PropBootstrap, classifiedName, importPath)
}

// AddEntryComponentToModule adds a component to `entryComponents` and
// imports it from importPath.
func (p *Planner) AddEntryComponentToModule(file *srcast.SourceFile, classifiedName, importPath string) ([]fix.TextEdit, error) {
	return p.AddSymbolToNgModuleMetadata(file, PropEntryComponents, classifiedName, importPath)
}
