package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileFormat is the serialization of a configuration file.
type FileFormat string

const (
	FileFormatYAML FileFormat = "yaml"
	FileFormatTOML FileFormat = "toml"
)

// FileFormatForPath derives the file format from a config file name.
func FileFormatForPath(path string) (FileFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FileFormatYAML, nil
	case ".toml":
		return FileFormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported config file extension %q", filepath.Ext(path))
	}
}

// Parse decodes data in the given format. Unknown TOML keys are returned
// for reporting.
func Parse(format FileFormat, data []byte) (*Config, []string, error) {
	switch format {
	case FileFormatYAML:
		cfg, err := FromYAML(data)
		return cfg, nil, err
	case FileFormatTOML:
		return FromTOML(data)
	default:
		return nil, nil, fmt.Errorf("unsupported config format %q", format)
	}
}

// Marshal encodes the configuration in the given format.
func (c *Config) Marshal(format FileFormat) ([]byte, error) {
	switch format {
	case FileFormatYAML:
		return c.ToYAML()
	case FileFormatTOML:
		return c.ToTOML()
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
}
