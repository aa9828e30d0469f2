package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ngpatch/internal/logging"
	"github.com/yaklabco/ngpatch/pkg/ngast"
)

//nolint:gochecknoglobals // Read-only lookup table.
var metadataProperties = []string{
	ngast.PropDeclarations,
	ngast.PropImports,
	ngast.PropProviders,
	ngast.PropExports,
	ngast.PropBootstrap,
	ngast.PropEntryComponents,
}

func newAddImportCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add-import <file> <symbol> <module>",
		Short: "Import a symbol into a TypeScript file",
		Long: `Add "import { Symbol } from 'module';" after the last import of a file.

When the module is already imported with named bindings, the symbol is added
to that list instead. Nothing changes when the symbol is already imported.

Examples:
  ngpatch add-import src/app/app.module.ts HttpClientModule @angular/common/http
  ngpatch add-import -n src/main.ts environment ./environments/environment`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			path, symbol, module := args[0], args[1], args[2]

			file, err := s.parse(ctx, path)
			if err != nil {
				return err
			}
			s.logger.Debug("add import", logging.FieldSymbol, symbol, logging.FieldModule, module)
			if err := s.apply(ctx, path, s.planner.InsertImport(file, symbol, module)); err != nil {
				return err
			}
			return s.finish(ctx)
		},
	}
}

// moduleEdit runs one @NgModule metadata addition.
type moduleEdit struct {
	property      string
	requireImport bool
	force         bool
}

func (m moduleEdit) run(cmd *cobra.Command, opts *globalOptions, args []string) error {
	if !slices.Contains(metadataProperties, m.property) {
		return fmt.Errorf("%w: unknown metadata property %q", errUsage, m.property)
	}

	path, symbol := args[0], args[1]
	var importPath string
	if len(args) > 2 {
		importPath = args[2]
	}
	if m.requireImport && importPath == "" {
		return fmt.Errorf("%w: an import path is required", errUsage)
	}

	s, err := newSession(cmd, opts)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	file, err := s.parse(ctx, path)
	if err != nil {
		return err
	}

	if !m.force && ngast.HasSymbolInMetadata(file, m.property, symbol) {
		s.logger.Info("already present",
			logging.FieldPath, path, logging.FieldProperty, m.property, logging.FieldSymbol, symbol)
		if importPath != "" {
			if err := s.apply(ctx, path, s.planner.InsertImport(file, symbol, importPath)); err != nil {
				return err
			}
		}
		return s.finish(ctx)
	}

	edits, err := s.planner.AddSymbolToNgModuleMetadata(file, m.property, symbol, importPath)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := s.apply(ctx, path, edits); err != nil {
		return err
	}
	return s.finish(ctx)
}

func newAddToModuleCommand(opts *globalOptions) *cobra.Command {
	edit := moduleEdit{}

	cmd := &cobra.Command{
		Use:   "add-to-module <module-file> <symbol> [import-path]",
		Short: "Add a symbol to an @NgModule metadata array",
		Long: `Append a symbol to one of the @NgModule metadata arrays (declarations by
default). A missing property is created. When an import path is given the
symbol is also imported from it.

Examples:
  ngpatch add-to-module src/app/app.module.ts FooComponent ./foo/foo.component
  ngpatch add-to-module --property imports src/app/app.module.ts HttpClientModule @angular/common/http
  ngpatch add-to-module --property providers src/app/app.module.ts AuthService`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return edit.run(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&edit.property, "property", "p", ngast.PropDeclarations,
		"metadata property: declarations, imports, providers, exports, bootstrap, entryComponents")
	cmd.Flags().BoolVar(&edit.force, "force", false, "append even if the symbol is already listed")

	return cmd
}

func newAddExportCommand(opts *globalOptions) *cobra.Command {
	edit := moduleEdit{property: ngast.PropExports, requireImport: true}

	cmd := &cobra.Command{
		Use:   "add-export <module-file> <symbol> <import-path>",
		Short: "Export a symbol from an @NgModule and import it",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return edit.run(cmd, opts, args)
		},
	}
	cmd.Flags().BoolVar(&edit.force, "force", false, "append even if the symbol is already listed")

	return cmd
}

func newAddEntryComponentCommand(opts *globalOptions) *cobra.Command {
	edit := moduleEdit{property: ngast.PropEntryComponents}

	cmd := &cobra.Command{
		Use:   "add-entry-component <module-file> <symbol> [import-path]",
		Short: "Add a component to @NgModule entryComponents",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return edit.run(cmd, opts, args)
		},
	}
	cmd.Flags().BoolVar(&edit.force, "force", false, "append even if the symbol is already listed")

	return cmd
}
