package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/ngpatch/internal/configloader"
	"github.com/yaklabco/ngpatch/internal/logging"
	"github.com/yaklabco/ngpatch/internal/ui/pretty"
	"github.com/yaklabco/ngpatch/pkg/config"
	"github.com/yaklabco/ngpatch/pkg/fix"
	"github.com/yaklabco/ngpatch/pkg/fsutil"
	"github.com/yaklabco/ngpatch/pkg/ngast"
	"github.com/yaklabco/ngpatch/pkg/parser"
	"github.com/yaklabco/ngpatch/pkg/srcast"
	"github.com/yaklabco/ngpatch/pkg/vtree"
)

var (
	// ErrSourceHasErrors is returned when a TypeScript file does not parse cleanly.
	ErrSourceHasErrors = errors.New("source has syntax errors")

	// ErrPathNotFound is returned when a JSON key path does not resolve.
	ErrPathNotFound = errors.New("json path not found")

	// ErrAborted is returned when the user declines a confirmation.
	ErrAborted = errors.New("aborted")

	errUsage  = errors.New("invalid usage")
	errConfig = errors.New("failed to load configuration")
)

// session is the per-invocation state shared by the edit commands.
type session struct {
	cfg     *config.Config
	logger  *log.Logger
	tree    *vtree.Tree
	planner *ngast.Planner
	styles  *pretty.Styles
	out     io.Writer
}

// cliConfig maps explicitly set persistent flags onto a config overlay.
func cliConfig(cmd *cobra.Command, opts *globalOptions) *config.Config {
	cfg := &config.Config{}
	flags := cmd.Flags()

	if flags.Changed("root") {
		cfg.Root = opts.root
	}
	if flags.Changed("color") {
		cfg.Color = config.ColorMode(opts.color)
	}
	if flags.Changed("quote") {
		cfg.Quote = config.QuoteStyle(opts.quote)
	}
	if flags.Changed("indent") {
		cfg.Indent = opts.indent
	}
	if opts.debug {
		cfg.LogLevel = "debug"
	}
	cfg.DryRun = opts.dryRun
	cfg.NoBackups = opts.noBackups
	cfg.Backups.Enabled = opts.backups

	return cfg
}

// loadConfig resolves the effective configuration for cmd.
func loadConfig(cmd *cobra.Command, opts *globalOptions) (*configloader.LoadResult, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(commandContext(cmd), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: opts.configPath,
		CLIConfig:    cliConfig(cmd, opts),
	})
	if err != nil {
		return nil, errors.Join(errConfig, err)
	}
	return result, nil
}

func newSession(cmd *cobra.Command, opts *globalOptions) (*session, error) {
	loaded, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	cfg := loaded.Config

	logger := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel)
	cmd.SetContext(logging.WithLogger(commandContext(cmd), logger))

	for _, warning := range loaded.Warnings {
		logger.Warn(warning)
	}
	if len(loaded.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldPaths, loaded.LoadedFrom)
	}

	backups := fsutil.BackupConfig{
		Enabled: cfg.BackupsEnabled(),
		Mode:    fsutil.BackupMode(cfg.Backups.Mode),
	}
	host := vtree.NewStorageHost(cfg.Root, backups)
	logger.Debug("workspace",
		logging.FieldRoot, host.Root(),
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldBackup, backups.Enabled,
	)

	return &session{
		cfg:     cfg,
		logger:  logger,
		tree:    vtree.New(host, vtree.WithDryRun(cfg.DryRun)),
		planner: &ngast.Planner{Quote: cfg.Quote.Char(), Indent: cfg.IndentString()},
		styles:  pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), cmd.OutOrStdout())),
		out:     cmd.OutOrStdout(),
	}, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// parse reads path from the tree and parses it. TypeScript files that only
// parse with error recovery are rejected, since insertion points found in
// a damaged tree are unreliable.
func (s *session) parse(ctx context.Context, path string) (*srcast.SourceFile, error) {
	content, err := s.tree.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, fmt.Errorf("%s: %w", path, vtree.ErrNotFound)
	}

	file, err := parser.Parse(ctx, path, content)
	if err != nil {
		return nil, err
	}
	if file.HasErrors {
		return nil, fmt.Errorf("%s: %w", path, ErrSourceHasErrors)
	}
	return file, nil
}

// apply stages edits against path. An empty edit list is a no-op.
func (s *session) apply(ctx context.Context, path string, edits []fix.TextEdit) error {
	s.logger.Debug("planned edits", logging.FieldPath, path, logging.FieldEdits, len(edits))
	if len(edits) == 0 {
		return nil
	}

	rec, err := s.tree.BeginUpdate(ctx, path)
	if err != nil {
		return err
	}
	return s.tree.CommitUpdate(ctx, rec.Apply(edits...))
}

// finish commits the staged changes, printing diffs in dry-run mode and a
// summary either way.
func (s *session) finish(ctx context.Context) error {
	changes, err := s.tree.Commit(ctx)

	if s.tree.DryRun() {
		diffs := make([]*fix.Diff, 0, len(changes))
		for _, change := range changes {
			s.styles.WriteDiff(s.out, change.Diff)
			diffs = append(diffs, change.Diff)
		}
		if len(diffs) > 0 {
			fmt.Fprintln(s.out, s.styles.FormatDiffStat(diffs))
		}
	}
	fmt.Fprint(s.out, s.styles.FormatChanges(changes, s.tree.DryRun()))

	if err != nil {
		return err
	}

	if !s.tree.DryRun() {
		s.logger.Info("wrote changes", logging.FieldFilesModified, len(changes))
	}
	return nil
}
