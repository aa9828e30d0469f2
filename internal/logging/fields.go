// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldRoot       = "root"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Edit planning fields.
	FieldSymbol   = "symbol"
	FieldModule   = "module"
	FieldProperty = "property"
	FieldKey      = "key"
	FieldValue    = "value"
	FieldEdits    = "edits"
	FieldReason   = "reason"

	// Run fields.
	FieldDryRun        = "dry_run"
	FieldBackup        = "backup"
	FieldFilesModified = "files_modified"
	FieldFilesCreated  = "files_created"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
