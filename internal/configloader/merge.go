package configloader

import (
	"slices"

	"github.com/yaklabco/robotxt/pkg/config"
)

// merge combines two configurations, with override taking precedence:
//   - scalars in override win when they are set (non-zero)
//   - slices in override replace base entirely when non-nil
//   - booleans can only be switched on; false is indistinguishable from
//     unset
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Dialect != "" {
		result.Dialect = override.Dialect
	}
	if override.SeparatorWidth != 0 {
		result.SeparatorWidth = override.SeparatorWidth
	}
	if override.LineSeparator != "" {
		result.LineSeparator = override.LineSeparator
	}
	if override.MaxLineWidth != 0 {
		result.MaxLineWidth = override.MaxLineWidth
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}

	result.StrictUTF8 = result.StrictUTF8 || override.StrictUTF8
	result.Write = result.Write || override.Write
	result.Diff = result.Diff || override.Diff
	result.Reformat = result.Reformat || override.Reformat
	result.NoBackups = result.NoBackups || override.NoBackups

	if override.Extensions != nil {
		result.Extensions = slices.Clone(override.Extensions)
	}
	if override.Ignore != nil {
		result.Ignore = slices.Clone(override.Ignore)
	}

	return result
}

// MergeAll merges configurations in order; later ones take precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for _, cfg := range configs[1:] {
		result = merge(result, cfg)
	}
	return result
}
