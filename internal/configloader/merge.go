package configloader

import "github.com/yaklabco/ngpatch/pkg/config"

// merge combines two configurations, with override taking precedence over base.
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Booleans: only true propagates, so a later source cannot unset an earlier true
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Root != "" {
		result.Root = override.Root
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Indent != 0 {
		result.Indent = override.Indent
	}
	if override.Quote != "" {
		result.Quote = override.Quote
	}
	if override.Color != "" {
		result.Color = override.Color
	}

	if override.DryRun {
		result.DryRun = true
	}
	if override.NoBackups {
		result.NoBackups = true
	}

	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}
	if override.Backups.Enabled {
		result.Backups.Enabled = true
	}

	if override.Migrate.Files != nil {
		result.Migrate.Files = override.Migrate.Files
	}
	if override.Migrate.BlacklistEntry != "" {
		result.Migrate.BlacklistEntry = override.Migrate.BlacklistEntry
	}

	return result
}
