package configloader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/robotxt/pkg/config"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ROBOTXT_DIALECT", "Pipe")
	t.Setenv("ROBOTXT_SEPARATOR_WIDTH", "2")
	t.Setenv("ROBOTXT_LINE_SEPARATOR", "crlf")
	t.Setenv("ROBOTXT_EXTENSIONS", ".robot, .txt ,")
	t.Setenv("ROBOTXT_IGNORE", "build/**")
	t.Setenv("ROBOTXT_STRICT_UTF8", "1")
	t.Setenv("ROBOTXT_EDITORCONFIG", "false")
	t.Setenv("ROBOTXT_BACKUPS_ENABLED", "false")

	cfg := config.NewConfig()
	require.NoError(t, LoadFromEnv(cfg))

	assert.Equal(t, config.DialectPipe, cfg.Dialect)
	assert.Equal(t, 2, cfg.SeparatorWidth)
	assert.Equal(t, config.LineSeparatorCRLF, cfg.LineSeparator)
	assert.Equal(t, []string{".robot", ".txt"}, cfg.Extensions)
	assert.Equal(t, []string{"build/**"}, cfg.Ignore)
	assert.True(t, cfg.StrictUTF8)
	assert.False(t, cfg.EditorConfig)
	assert.False(t, cfg.Backups.Enabled)
}

func TestLoadFromEnvInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"integer", "ROBOTXT_JOBS", "many"},
		{"boolean", "ROBOTXT_NO_BACKUPS", "perhaps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			err := LoadFromEnv(config.NewConfig())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadFromEnvNilConfig(t *testing.T) {
	t.Parallel()

	assert.NoError(t, LoadFromEnv(nil))
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	require.NotEmpty(t, vars)

	for i, v := range vars {
		assert.True(t, strings.HasPrefix(v.Name, envVarPrefix), v.Name)
		assert.NotEmpty(t, v.Description, v.Name)
		if i > 0 {
			assert.Less(t, vars[i-1].Name, v.Name)
		}
	}
}
