// Package config defines the configuration types for ngpatch.
// These types are plain data; discovery and merging live in internal/configloader.
package config

import "strings"

// QuoteStyle selects the quote character used for module paths in
// generated import statements.
type QuoteStyle string

const (
	QuoteSingle QuoteStyle = "single"
	QuoteDouble QuoteStyle = "double"
)

// IsValid reports whether q is a known quote style.
func (q QuoteStyle) IsValid() bool {
	switch q {
	case QuoteSingle, QuoteDouble:
		return true
	default:
		return false
	}
}

// Char returns the quote character for q. Unknown styles use a single quote.
func (q QuoteStyle) Char() string {
	if q == QuoteDouble {
		return `"`
	}
	return "'"
}

// ColorMode controls colored output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid reports whether m is a known color mode.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// BackupsConfig controls backups taken before a file is overwritten.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"` // "sidecar" or "none"
}

// MigrateConfig holds defaults for the lint-config migration.
type MigrateConfig struct {
	// Files lists the lint configuration files to migrate, relative to the root.
	Files []string `yaml:"files"`

	// BlacklistEntry is the module removed from rules.import-blacklist.
	BlacklistEntry string `yaml:"blacklist_entry"`
}

// Config is the root configuration structure for ngpatch.
type Config struct {
	// Root is the workspace root: a local directory or an afs URL. Empty
	// means the nearest Angular workspace above the working directory.
	Root string `yaml:"root,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Indent is the number of spaces used when no indentation can be observed.
	Indent int `yaml:"indent"`

	// Quote selects the quote style for generated imports.
	Quote QuoteStyle `yaml:"quote"`

	// Color controls colored diff output.
	Color ColorMode `yaml:"color"`

	// Backups configures backups before writing.
	Backups BackupsConfig `yaml:"backups"`

	// Migrate configures the migrate-lint command.
	Migrate MigrateConfig `yaml:"migrate"`

	// CLI-level options (not persisted to config files).

	// DryRun prints the diff instead of writing files.
	DryRun bool `yaml:"-"`

	// NoBackups disables backups regardless of Backups.Enabled.
	NoBackups bool `yaml:"-"`
}

// Default values.
const (
	DefaultIndent         = 2
	DefaultLogLevel       = "info"
	DefaultBackupMode     = "sidecar"
	DefaultBlacklistEntry = "rxjs"
)

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Indent:   DefaultIndent,
		Quote:    QuoteSingle,
		Color:    ColorAuto,
		Backups: BackupsConfig{
			Enabled: false,
			Mode:    DefaultBackupMode,
		},
		Migrate: MigrateConfig{
			Files:          []string{"tslint.json", "src/tslint.json"},
			BlacklistEntry: DefaultBlacklistEntry,
		},
	}
}

// IndentString returns Indent as a string of spaces.
func (c *Config) IndentString() string {
	if c == nil || c.Indent <= 0 {
		return strings.Repeat(" ", DefaultIndent)
	}
	return strings.Repeat(" ", c.Indent)
}

// BackupsEnabled reports whether backups should be taken for this run.
func (c *Config) BackupsEnabled() bool {
	return c != nil && c.Backups.Enabled && !c.NoBackups && c.Backups.Mode != "none"
}
