package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/robotxt/pkg/config"
)

func TestFileFormatForPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    config.FileFormat
		wantErr bool
	}{
		{".robotxt.yml", config.FileFormatYAML, false},
		{"conf/robotxt.YAML", config.FileFormatYAML, false},
		{".robotxt.toml", config.FileFormatTOML, false},
		{"robotxt.json", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, err := config.FileFormatForPath(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTOML(t *testing.T) {
	t.Parallel()

	data := []byte(`
dialect = "pipe"
separator_width = 2
max_line_width = 100
ignore = ["results/**"]
unknown_key = 1

[backups]
enabled = false
mode = "none"
`)

	cfg, undecoded, err := config.Parse(config.FileFormatTOML, data)
	require.NoError(t, err)
	assert.Equal(t, config.DialectPipe, cfg.Dialect)
	assert.Equal(t, "  ", cfg.Separator())
	assert.Equal(t, 100, cfg.MaxLineWidth)
	assert.Equal(t, []string{"results/**"}, cfg.Ignore)
	assert.Equal(t, "none", cfg.Backups.Mode)
	assert.Equal(t, []string{"unknown_key"}, undecoded)
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	for _, format := range []config.FileFormat{config.FileFormatYAML, config.FileFormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			original := config.NewConfig()
			original.Dialect = config.DialectTab
			original.MaxLineWidth = 80

			data, err := original.Marshal(format)
			require.NoError(t, err)

			parsed, _, err := config.Parse(format, data)
			require.NoError(t, err)
			assert.Equal(t, config.DialectTab, parsed.Dialect)
			assert.Equal(t, 80, parsed.MaxLineWidth)
			assert.Equal(t, original.Extensions, parsed.Extensions)
			assert.Equal(t, original.Backups, parsed.Backups)
		})
	}
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	tests := []config.TemplateOptions{
		{Format: config.FileFormatYAML},
		{Format: config.FileFormatTOML},
		{Format: config.FileFormatYAML, Full: true},
		{Format: config.FileFormatTOML, Full: true},
	}

	for _, opts := range tests {
		content, err := config.GenerateTemplate(opts)
		require.NoError(t, err)
		assert.Contains(t, string(content), "# robotxt configuration")

		cfg, _, err := config.Parse(opts.Format, content)
		require.NoError(t, err, "template must parse: %s", content)
		assert.Equal(t, config.DialectAuto, cfg.Dialect)
	}

	_, err := config.GenerateTemplate(config.TemplateOptions{Format: "ini"})
	require.Error(t, err)
}
