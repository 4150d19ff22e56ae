// Package config defines the configuration types for robotxt.
// These are plain data structures; loading and merging live in
// internal/configloader.
package config

import "strings"

// Dialect selects the cell separation style used for synthesized text.
type Dialect string

const (
	// DialectAuto keeps the dialect each section was parsed with.
	DialectAuto  Dialect = "auto"
	DialectSpace Dialect = "space"
	DialectPipe  Dialect = "pipe"
	DialectTab   Dialect = "tab"
)

// IsValid reports whether d is a known dialect.
func (d Dialect) IsValid() bool {
	switch d {
	case DialectAuto, DialectSpace, DialectPipe, DialectTab:
		return true
	default:
		return false
	}
}

// LineSeparator selects the terminator of synthesized lines.
type LineSeparator string

const (
	// LineSeparatorAuto uses the dominant terminator of each document.
	LineSeparatorAuto LineSeparator = "auto"
	LineSeparatorLF   LineSeparator = "lf"
	LineSeparatorCRLF LineSeparator = "crlf"
	LineSeparatorCR   LineSeparator = "cr"
)

// IsValid reports whether s is a known line separator name.
func (s LineSeparator) IsValid() bool {
	switch s {
	case LineSeparatorAuto, LineSeparatorLF, LineSeparatorCRLF, LineSeparatorCR:
		return true
	default:
		return false
	}
}

// Bytes returns the terminator for s, or "" for auto.
func (s LineSeparator) Bytes() string {
	switch s {
	case LineSeparatorLF:
		return "\n"
	case LineSeparatorCRLF:
		return "\r\n"
	case LineSeparatorCR:
		return "\r"
	default:
		return ""
	}
}

// BackupsConfig controls backups of files rewritten by format --write.
type BackupsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled" toml:"enabled"`
	Mode    string `mapstructure:"mode" yaml:"mode" toml:"mode"` // "sidecar" or "none"
}

// OutputFormat specifies how results are reported.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatDiff OutputFormat = "diff"
)

// IsValid reports whether f is a known output format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatDiff:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure.
type Config struct {
	// Dialect is the target dialect of format; auto keeps each section's.
	Dialect Dialect `mapstructure:"dialect" yaml:"dialect" toml:"dialect"`

	// SeparatorWidth is the number of spaces between synthesized cells in
	// space separated sections. Zero keeps the separator derived from the
	// section.
	SeparatorWidth int `mapstructure:"separator_width" yaml:"separator_width" toml:"separator_width"`

	// LineSeparator terminates synthesized lines.
	LineSeparator LineSeparator `mapstructure:"line_separator" yaml:"line_separator" toml:"line_separator"`

	// MaxLineWidth wraps synthesized cells onto continuation lines. Zero
	// disables wrapping.
	MaxLineWidth int `mapstructure:"max_line_width" yaml:"max_line_width" toml:"max_line_width"`

	// Extensions lists the file extensions that are always processed.
	Extensions []string `mapstructure:"extensions" yaml:"extensions" toml:"extensions"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `mapstructure:"ignore" yaml:"ignore" toml:"ignore"`

	// StrictUTF8 rejects files that are not valid UTF-8.
	StrictUTF8 bool `mapstructure:"strict_utf8" yaml:"strict_utf8" toml:"strict_utf8"`

	// EditorConfig applies .editorconfig settings per file.
	EditorConfig bool `mapstructure:"editorconfig" yaml:"editorconfig" toml:"editorconfig"`

	// Backups configures backups when rewriting files.
	Backups BackupsConfig `mapstructure:"backups" yaml:"backups" toml:"backups"`

	// CLI-level options (not persisted to config files).

	// Write rewrites files in place.
	Write bool `mapstructure:"-" yaml:"-" toml:"-"`

	// Diff prints a unified diff of the changes format would make.
	Diff bool `mapstructure:"-" yaml:"-" toml:"-"`

	// Reformat ignores source layout and rewrites every element.
	Reformat bool `mapstructure:"-" yaml:"-" toml:"-"`

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-" toml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `mapstructure:"-" yaml:"-" toml:"-"`

	// NoBackups disables backup creation when writing.
	NoBackups bool `mapstructure:"-" yaml:"-" toml:"-"`
}

// DefaultExtensions are processed without content detection.
func DefaultExtensions() []string {
	return []string{".robot", ".resource"}
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Dialect:       DialectAuto,
		LineSeparator: LineSeparatorAuto,
		Extensions:    DefaultExtensions(),
		EditorConfig:  true,
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
		Format: FormatText,
		Jobs:   0, // 0 means GOMAXPROCS
	}
}

// Separator returns the separator for synthesized space separated cells,
// or "" when it should be derived from the source.
func (c *Config) Separator() string {
	if c == nil || c.SeparatorWidth <= 0 {
		return ""
	}
	return strings.Repeat(" ", c.SeparatorWidth)
}
