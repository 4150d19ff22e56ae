package configloader

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yaklabco/robotxt/pkg/config"
)

// maxSeparatorWidth bounds separator_width; wider runs are almost always a
// typo.
const maxSeparatorWidth = 16

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "backups.mode").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error, if known.
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors prevent loading.
	Errors []ValidationError

	// Warnings are reported but do not stop loading.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warn(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// Validate checks a configuration for errors and warnings. Zero values are
// accepted so that partial configuration files validate.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Dialect != "" && !cfg.Dialect.IsValid() {
		result.fail("dialect", cfg.Dialect, "invalid dialect %q; must be one of: auto, space, pipe, tab", cfg.Dialect)
	}
	if cfg.LineSeparator != "" && !cfg.LineSeparator.IsValid() {
		result.fail("line_separator", cfg.LineSeparator,
			"invalid line separator %q; must be one of: auto, lf, crlf, cr", cfg.LineSeparator)
	}
	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.fail("format", cfg.Format, "invalid format %q; must be one of: text, json, diff", cfg.Format)
	}

	switch {
	case cfg.SeparatorWidth < 0:
		result.fail("separator_width", cfg.SeparatorWidth, "separator_width must be >= 0 (0 means derive)")
	case cfg.SeparatorWidth == 1:
		result.fail("separator_width", cfg.SeparatorWidth, "a single space does not separate cells; use 2 or more")
	case cfg.SeparatorWidth > maxSeparatorWidth:
		result.warn("separator_width", cfg.SeparatorWidth, "unusually wide separator of %d spaces", cfg.SeparatorWidth)
	}

	if cfg.MaxLineWidth < 0 {
		result.fail("max_line_width", cfg.MaxLineWidth, "max_line_width must be >= 0 (0 disables wrapping)")
	}
	if cfg.Jobs < 0 {
		result.fail("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	if cfg.Backups.Mode != "" && cfg.Backups.Mode != "sidecar" && cfg.Backups.Mode != "none" {
		result.fail("backups.mode", cfg.Backups.Mode, "invalid backup mode %q; must be one of: sidecar, none", cfg.Backups.Mode)
	}

	for idx, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			result.fail(fmt.Sprintf("extensions[%d]", idx), ext, "extension %q must start with a dot", ext)
		}
	}

	for idx, pattern := range cfg.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			result.fail(fmt.Sprintf("ignore[%d]", idx), pattern, "invalid glob pattern %q", pattern)
		}
	}

	return result
}

// ValidateWithFile validates cfg and attributes every finding to filePath.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}
