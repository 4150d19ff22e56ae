package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/robotxt/pkg/config"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		modify   func(*config.Config)
		errField string
		warnings int
	}{
		{name: "defaults", modify: func(*config.Config) {}},
		{name: "dialect", modify: func(c *config.Config) { c.Dialect = "html" }, errField: "dialect"},
		{name: "line separator", modify: func(c *config.Config) { c.LineSeparator = "nel" }, errField: "line_separator"},
		{name: "format", modify: func(c *config.Config) { c.Format = "sarif" }, errField: "format"},
		{name: "negative width", modify: func(c *config.Config) { c.SeparatorWidth = -1 }, errField: "separator_width"},
		{name: "single space", modify: func(c *config.Config) { c.SeparatorWidth = 1 }, errField: "separator_width"},
		{name: "wide separator", modify: func(c *config.Config) { c.SeparatorWidth = 20 }, warnings: 1},
		{name: "max line width", modify: func(c *config.Config) { c.MaxLineWidth = -5 }, errField: "max_line_width"},
		{name: "jobs", modify: func(c *config.Config) { c.Jobs = -1 }, errField: "jobs"},
		{name: "backup mode", modify: func(c *config.Config) { c.Backups.Mode = "cloud" }, errField: "backups.mode"},
		{name: "extension", modify: func(c *config.Config) { c.Extensions = []string{".robot", "txt"} }, errField: "extensions[1]"},
		{name: "ignore", modify: func(c *config.Config) { c.Ignore = []string{"ok/**", "{bad"} }, errField: "ignore[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			tt.modify(cfg)

			result := Validate(cfg)
			if tt.errField == "" {
				assert.True(t, result.Valid(), result.AllMessages())
			} else {
				require.False(t, result.Valid())
				assert.Equal(t, tt.errField, result.Errors[0].Field)
			}
			assert.Len(t, result.Warnings, tt.warnings)
		})
	}
}

func TestValidateAcceptsPartialConfig(t *testing.T) {
	t.Parallel()

	assert.True(t, Validate(&config.Config{}).Valid())
	assert.True(t, Validate(nil).Valid())
}

func TestValidateWithFile(t *testing.T) {
	t.Parallel()

	result := ValidateWithFile(&config.Config{Dialect: "bogus", SeparatorWidth: 40}, "/p/.robotxt.yml")

	require.Len(t, result.Errors, 1)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "/p/.robotxt.yml", result.Errors[0].FilePath)
	assert.Equal(t, "/p/.robotxt.yml", result.Warnings[0].FilePath)
	assert.Contains(t, result.Errors[0].Error(), "/p/.robotxt.yml: dialect: invalid dialect")

	messages := result.AllMessages()
	require.Len(t, messages, 2)
	assert.Contains(t, messages[0], "error: ")
	assert.Contains(t, messages[1], "warning: ")
}
