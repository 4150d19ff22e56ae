// Package logging wraps charmbracelet/log with the conventions shared by the
// robotxt commands and libraries.
package logging

// Field names for structured log output.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Document shape.
	FieldLines       = "lines"
	FieldSections    = "sections"
	FieldTokens      = "tokens"
	FieldSection     = "section"
	FieldElement     = "element"
	FieldDeclaration = "declaration"
	FieldLanguage    = "language"
	FieldReason      = "reason"

	// Layout.
	FieldDialect       = "dialect"
	FieldSeparator     = "separator"
	FieldLineSeparator = "line_separator"
	FieldMaxWidth      = "max_line_width"

	// Runs.
	FieldCommand         = "command"
	FieldJobs            = "jobs"
	FieldWrite           = "write"
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesChanged    = "files_changed"
	FieldFilesFailed     = "files_failed"

	// Build information.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
