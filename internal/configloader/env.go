package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/yaklabco/ngpatch/pkg/config"
)

// envVarPrefix is the prefix for all ngpatch environment variables.
const envVarPrefix = "NGPATCH_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
	help  string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"ROOT":                    {field: "root", typ: envTypeString, help: "Workspace root directory or afs URL"},
	"LOG_LEVEL":               {field: "log_level", typ: envTypeString, help: "Log level: debug, info, warn, error"},
	"INDENT":                  {field: "indent", typ: envTypeInt, help: "Fallback indentation width in spaces"},
	"QUOTE":                   {field: "quote", typ: envTypeString, help: "Quote style for generated imports: single or double"},
	"COLOR":                   {field: "color", typ: envTypeString, help: "Colored output: auto, always, never"},
	"DRY_RUN":                 {field: "dry_run", typ: envTypeBool, help: "Print diffs without writing: true or false"},
	"BACKUPS_ENABLED":         {field: "backups.enabled", typ: envTypeBool, help: "Back up files before writing: true or false"},
	"BACKUPS_MODE":            {field: "backups.mode", typ: envTypeString, help: "Backup mode: sidecar or none"},
	"NO_BACKUPS":              {field: "no_backups", typ: envTypeBool, help: "Disable backups: true or false"},
	"MIGRATE_FILES":           {field: "migrate.files", typ: envTypeSlice, help: "Comma-separated lint config files to migrate"},
	"MIGRATE_BLACKLIST_ENTRY": {field: "migrate.blacklist_entry", typ: envTypeString, help: "Module removed from import-blacklist"},
}

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

// ReadDotEnv reads a .env file and returns a lookup that prefers the process
// environment and falls back to the file's values. An empty path yields
// the process environment alone.
func ReadDotEnv(path string) (LookupFunc, error) {
	if path == "" {
		return os.LookupEnv, nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}, nil
}

func applyEnv(cfg *config.Config, lookup LookupFunc) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value, ok := lookup(envVar)
		if !ok || value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a trimmed slice.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "root":
		cfg.Root = value
	case "log_level":
		cfg.LogLevel = value
	case "quote":
		cfg.Quote = config.QuoteStyle(value)
	case "color":
		cfg.Color = config.ColorMode(value)
	case "backups.mode":
		cfg.Backups.Mode = value
	case "migrate.blacklist_entry":
		cfg.Migrate.BlacklistEntry = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "dry_run":
		cfg.DryRun = value
	case "backups.enabled":
		cfg.Backups.Enabled = value
	case "no_backups":
		cfg.NoBackups = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "indent":
		cfg.Indent = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "migrate.files":
		cfg.Migrate.Files = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// ListEnvVars returns every supported environment variable with its description.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.help
	}
	return vars
}
