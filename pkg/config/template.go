package config

import (
	"bytes"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Format is the file format of the template.
	Format FileFormat

	// Full writes every option uncommented with its default value.
	// Otherwise the template only documents them.
	Full bool
}

const templateHeader = "robotxt configuration\nSee: https://github.com/yaklabco/robotxt\n"

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "" {
		opts.Format = FileFormatYAML
	}
	if opts.Full {
		return generateFullTemplate(opts.Format)
	}

	switch opts.Format {
	case FileFormatYAML:
		return []byte(minimalYAML), nil
	case FileFormatTOML:
		return []byte(minimalTOML), nil
	default:
		return nil, fmt.Errorf("unsupported template format %q", opts.Format)
	}
}

// generateFullTemplate encodes the defaults behind a comment header.
func generateFullTemplate(format FileFormat) ([]byte, error) {
	body, err := NewConfig().Marshal(format)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for _, line := range bytes.SplitAfter([]byte(templateHeader), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		buf.WriteString("# ")
		buf.Write(line)
	}
	buf.WriteByte('\n')
	buf.Write(body)
	return buf.Bytes(), nil
}

const minimalYAML = `# robotxt configuration
# See: https://github.com/yaklabco/robotxt

# Dialect written by format: auto, space, pipe or tab
dialect: auto

# Spaces between new cells in space separated sections (0 = derive)
# separator_width: 4

# Terminator of new lines: auto, lf, crlf or cr
# line_separator: auto

# Wrap new cells onto continuation lines past this width (0 = never)
# max_line_width: 0

# Extensions processed without content detection; .txt files are
# included when they look like Robot Framework data
# extensions:
#   - .robot
#   - .resource

# File patterns to ignore (glob patterns)
# ignore:
#   - "results/**"

# Honour .editorconfig indent_style, indent_size and end_of_line
# editorconfig: true

# Backups of rewritten files
# backups:
#   enabled: true
#   mode: sidecar
`

const minimalTOML = `# robotxt configuration
# See: https://github.com/yaklabco/robotxt

# Dialect written by format: auto, space, pipe or tab
dialect = "auto"

# Spaces between new cells in space separated sections (0 = derive)
# separator_width = 4

# Terminator of new lines: auto, lf, crlf or cr
# line_separator = "auto"

# Wrap new cells onto continuation lines past this width (0 = never)
# max_line_width = 0

# extensions = [".robot", ".resource"]
# ignore = ["results/**"]
# editorconfig = true

# [backups]
# enabled = true
# mode = "sidecar"
`
