// Package cli provides the Cobra command structure for ngpatch.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/ngpatch/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	debug      bool
	configPath string
	color      string
	root       string
	dryRun     bool
	noBackups  bool
	backups    bool
	quote      string
	indent     int
}

// NewRootCommand creates the root ngpatch command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "ngpatch",
		Short: "Surgical source edits for Angular workspaces",
		Long: `ngpatch applies small, formatting-preserving edits to Angular workspaces.

It parses TypeScript and JSON, locates insertion points such as @NgModule
metadata arrays, import lists and package.json sections, and splices the
minimal text change into the original file. Every command supports
--dry-run, which prints a unified diff instead of writing.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "info"
			if opts.debug {
				level = "debug"
			}
			logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)
			cmd.SetContext(logging.WithLogger(commandContext(cmd), logger))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.StringVar(&opts.configPath, "config", "", "path to config file")
	flags.StringVar(&opts.color, "color", "auto", "colorize output: auto, always, never")
	flags.StringVar(&opts.root, "root", "", "workspace root directory or storage URL (default: nearest angular.json directory)")
	flags.BoolVarP(&opts.dryRun, "dry-run", "n", false, "print a diff instead of writing files")
	flags.BoolVar(&opts.backups, "backups", false, "back up files before overwriting them")
	flags.BoolVar(&opts.noBackups, "no-backups", false, "never back up files")
	flags.StringVar(&opts.quote, "quote", "", "quote style for generated imports: single, double")
	flags.IntVar(&opts.indent, "indent", 0, "indentation width when none can be inferred")

	rootCmd.AddCommand(
		newAddImportCommand(opts),
		newAddToModuleCommand(opts),
		newAddExportCommand(opts),
		newAddEntryComponentCommand(opts),
		newJSONAppendCommand(opts),
		newJSONRemoveCommand(opts),
		newAddDependencyCommand(opts),
		newMigrateLintCommand(opts),
		newConfigCommand(opts),
		newVersionCommand(info),
	)

	return rootCmd
}
