// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldFile       = "file"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldSource     = "source"

	// Validation fields.
	FieldStrict     = "strict"
	FieldFormat     = "format"
	FieldStatus     = "status"
	FieldErrors     = "errors"
	FieldWarnings   = "warnings"
	FieldComponents = "components"
	FieldTitle      = "title"

	// Placeholder command fields.
	FieldCommand = "command"
	FieldInput   = "input"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldName        = "name"
	FieldSeverity    = "severity"
	FieldDescription = "description"
)
