package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/ngpatch/internal/logging"
	"github.com/yaklabco/ngpatch/pkg/migrate"
)

type migrateLintFlags struct {
	entry string
	files []string
	all   bool
	yes   bool
}

func newMigrateLintCommand(opts *globalOptions) *cobra.Command {
	flags := &migrateLintFlags{}

	cmd := &cobra.Command{
		Use:   "migrate-lint",
		Short: "Remove a module from tslint's import-blacklist rule",
		Long: `Remove an entry (rxjs by default) from rules["import-blacklist"] in the
workspace's tslint configurations. Files without the rule are left alone.
With --all every tslint.json under the root is processed, skipping hidden
directories, node_modules and build output.

When stdin is a terminal the diff is shown and confirmation is requested
before writing; pass --yes to skip the prompt.

Examples:
  ngpatch migrate-lint
  ngpatch migrate-lint --entry lodash --file tslint.json --yes
  ngpatch migrate-lint --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			files := s.cfg.Migrate.Files
			switch {
			case flags.all && len(flags.files) > 0:
				return fmt.Errorf("%w: --all and --file are exclusive", errUsage)
			case flags.all:
				if strings.Contains(s.cfg.Root, "://") {
					return fmt.Errorf("%w: --all needs a local root", errUsage)
				}
				if files, err = migrate.DiscoverLintConfigs(ctx, s.cfg.Root); err != nil {
					return err
				}
				s.logger.Debug("discovered lint configs", logging.FieldPaths, files)
			case len(flags.files) > 0:
				files = flags.files
			}
			entry := s.cfg.Migrate.BlacklistEntry
			if flags.entry != "" {
				entry = flags.entry
			}
			if entry == "" {
				entry = migrate.DefaultBlacklistEntry
			}

			results, err := migrate.StripImportBlacklistAll(ctx, s.tree, files, entry)
			if err != nil {
				return err
			}
			for _, result := range results {
				if result.Changed() {
					s.logger.Debug("removed entry", logging.FieldPath, result.Path, logging.FieldEdits, result.Removed)
					continue
				}
				s.logger.Info("skipped", logging.FieldPath, result.Path, logging.FieldReason, result.Skipped)
			}

			if !s.tree.DryRun() && !flags.yes && isTerminal(cmd.InOrStdin()) && len(s.tree.Changes()) > 0 {
				for _, change := range s.tree.Changes() {
					s.styles.WriteDiff(s.out, change.Diff)
				}
				ok, err := confirm(cmd.InOrStdin(), s.out, "Apply these changes?")
				if err != nil {
					return err
				}
				if !ok {
					return ErrAborted
				}
			}

			return s.finish(ctx)
		},
	}

	cmd.Flags().StringVar(&flags.entry, "entry", "", "blacklisted module to remove (default from config, rxjs)")
	cmd.Flags().StringSliceVar(&flags.files, "file", nil, "lint config files relative to the root (default from config)")
	cmd.Flags().BoolVar(&flags.all, "all", false, "process every tslint.json in the workspace")
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "apply without asking")

	return cmd
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// confirm asks a yes/no question; the default is no.
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s [y/N] ", question); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read response: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
