package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/robotxt/pkg/config"
)

// envVarPrefix is the prefix of all robotxt environment variables.
const envVarPrefix = "ROBOTXT_"

// envSetter applies one environment value to a configuration.
type envSetter func(cfg *config.Config, value string) error

// envVar describes a supported environment variable.
type envVar struct {
	description string
	set         envSetter
}

func envVars() map[string]envVar {
	return map[string]envVar{
		"DIALECT": {"Target dialect: auto, space, pipe or tab", func(cfg *config.Config, v string) error {
			cfg.Dialect = config.Dialect(strings.ToLower(v))
			return nil
		}},
		"SEPARATOR_WIDTH": {"Spaces between new cells (0 = derive)", intSetter(func(cfg *config.Config, n int) {
			cfg.SeparatorWidth = n
		})},
		"LINE_SEPARATOR": {"Terminator of new lines: auto, lf, crlf or cr", func(cfg *config.Config, v string) error {
			cfg.LineSeparator = config.LineSeparator(strings.ToLower(v))
			return nil
		}},
		"MAX_LINE_WIDTH": {"Wrap new cells past this width (0 = never)", intSetter(func(cfg *config.Config, n int) {
			cfg.MaxLineWidth = n
		})},
		"EXTENSIONS": {"Comma-separated list of extensions always processed", func(cfg *config.Config, v string) error {
			cfg.Extensions = parseSliceValue(v)
			return nil
		}},
		"IGNORE": {"Comma-separated list of ignore patterns", func(cfg *config.Config, v string) error {
			cfg.Ignore = parseSliceValue(v)
			return nil
		}},
		"STRICT_UTF8": {"Reject files that are not UTF-8: true or false", boolSetter(func(cfg *config.Config, b bool) {
			cfg.StrictUTF8 = b
		})},
		"EDITORCONFIG": {"Honour .editorconfig: true or false", boolSetter(func(cfg *config.Config, b bool) {
			cfg.EditorConfig = b
		})},
		"FORMAT": {"Output format: text, json or diff", func(cfg *config.Config, v string) error {
			cfg.Format = config.OutputFormat(strings.ToLower(v))
			return nil
		}},
		"JOBS": {"Number of parallel workers (0 = auto)", intSetter(func(cfg *config.Config, n int) {
			cfg.Jobs = n
		})},
		"BACKUPS_ENABLED": {"Back up rewritten files: true or false", boolSetter(func(cfg *config.Config, b bool) {
			cfg.Backups.Enabled = b
		})},
		"BACKUPS_MODE": {"Backup mode: sidecar or none", func(cfg *config.Config, v string) error {
			cfg.Backups.Mode = v
			return nil
		}},
		"NO_BACKUPS": {"Disable backups: true or false", boolSetter(func(cfg *config.Config, b bool) {
			cfg.NoBackups = b
		})},
	}
}

func intSetter(apply func(*config.Config, int)) envSetter {
	return func(cfg *config.Config, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer %q", value)
		}
		apply(cfg, n)
		return nil
	}
}

func boolSetter(apply func(*config.Config, bool)) envSetter {
	return func(cfg *config.Config, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", value)
		}
		apply(cfg, b)
		return nil
	}
}

// LoadFromEnv applies ROBOTXT_* environment variables to cfg.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for suffix, v := range envVars() {
		name := envVarPrefix + suffix
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if err := v.set(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// parseSliceValue splits a comma-separated list, trimming each element.
func parseSliceValue(value string) []string {
	var result []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// EnvVar is a supported environment variable and its meaning.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns the supported environment variables sorted by name.
func ListEnvVars() []EnvVar {
	vars := envVars()
	list := make([]EnvVar, 0, len(vars))
	for suffix, v := range vars {
		list = append(list, EnvVar{Name: envVarPrefix + suffix, Description: v.description})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}
