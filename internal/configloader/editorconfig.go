package configloader

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/editorconfig/editorconfig-core-go/v2"

	"github.com/yaklabco/robotxt/pkg/config"
)

// FileSettings are the .editorconfig properties that affect how a file is
// written. Zero values mean the property is not set.
type FileSettings struct {
	Dialect        config.Dialect
	SeparatorWidth int
	LineSeparator  config.LineSeparator
}

// EditorConfigFor resolves the .editorconfig properties for path.
func EditorConfigFor(path string) (FileSettings, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return FileSettings{}, fmt.Errorf("resolve absolute path: %w", err)
	}

	def, err := editorconfig.GetDefinitionForFilename(abs)
	if err != nil {
		return FileSettings{}, fmt.Errorf("read editorconfig for %s: %w", path, err)
	}
	return settingsFromDefinition(def), nil
}

func settingsFromDefinition(def *editorconfig.Definition) FileSettings {
	var settings FileSettings
	if def == nil {
		return settings
	}

	switch def.IndentStyle {
	case editorconfig.IndentStyleTab:
		settings.Dialect = config.DialectTab
	case editorconfig.IndentStyleSpaces:
		if size, err := strconv.Atoi(def.IndentSize); err == nil && size >= 2 {
			settings.SeparatorWidth = size
		}
	}

	switch def.EndOfLine {
	case editorconfig.EndOfLineLf:
		settings.LineSeparator = config.LineSeparatorLF
	case editorconfig.EndOfLineCrLf:
		settings.LineSeparator = config.LineSeparatorCRLF
	case editorconfig.EndOfLineCr:
		settings.LineSeparator = config.LineSeparatorCR
	}

	return settings
}

// Apply fills the fields cfg leaves at auto or zero with the file settings
// and returns the result as a new configuration.
func (s FileSettings) Apply(cfg *config.Config) *config.Config {
	out := cfg.Clone()
	if (out.Dialect == "" || out.Dialect == config.DialectAuto) && s.Dialect != "" {
		out.Dialect = s.Dialect
	}
	if out.SeparatorWidth == 0 {
		out.SeparatorWidth = s.SeparatorWidth
	}
	if (out.LineSeparator == "" || out.LineSeparator == config.LineSeparatorAuto) && s.LineSeparator != "" {
		out.LineSeparator = s.LineSeparator
	}
	return out
}
