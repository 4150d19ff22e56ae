package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/robotxt/pkg/config"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Ignore = []string{"a/**"}

	override := &config.Config{
		Dialect:      config.DialectPipe,
		MaxLineWidth: 90,
		Ignore:       []string{"b/**"},
		StrictUTF8:   true,
	}

	merged := merge(base, override)

	assert.Equal(t, config.DialectPipe, merged.Dialect)
	assert.Equal(t, 90, merged.MaxLineWidth)
	assert.Equal(t, []string{"b/**"}, merged.Ignore)
	assert.Equal(t, config.DefaultExtensions(), merged.Extensions)
	assert.True(t, merged.StrictUTF8)
	assert.Equal(t, config.LineSeparatorAuto, merged.LineSeparator)

	// The inputs are left alone.
	assert.Equal(t, config.DialectAuto, base.Dialect)
	assert.Equal(t, []string{"a/**"}, base.Ignore)

	merged.Ignore[0] = "changed"
	assert.Equal(t, "b/**", override.Ignore[0])
}

func TestMergeNil(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Same(t, cfg, merge(nil, cfg))
	assert.Same(t, cfg, merge(cfg, nil))
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	assert.Nil(t, MergeAll())

	merged := MergeAll(
		config.NewConfig(),
		&config.Config{Dialect: config.DialectPipe, SeparatorWidth: 2},
		&config.Config{Dialect: config.DialectTab},
	)

	assert.Equal(t, config.DialectTab, merged.Dialect)
	assert.Equal(t, 2, merged.SeparatorWidth)
}
