package rfmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/robotxt/pkg/rfmodel"
)

func tok(line, column, offset int, raw string) *rfmodel.Token {
	return &rfmodel.Token{
		Text: raw,
		Raw:  raw,
		Pos:  rfmodel.FilePosition{Line: line, Column: column, Offset: offset},
	}
}

func TestSplitRegions(t *testing.T) {
	t.Parallel()

	t.Run("adjacent lines form one region", func(t *testing.T) {
		t.Parallel()

		regions := rfmodel.SplitRegions([]*rfmodel.Token{
			tok(1, 0, 0, "Documentation"),
			tok(1, 17, 17, "first"),
			tok(2, 7, 30, "second"),
		})

		require.Len(t, regions, 1)
		assert.Equal(t, 0, regions[0].Start.Offset)
		assert.Equal(t, 36, regions[0].End.Offset)
	})

	t.Run("gap of a line splits", func(t *testing.T) {
		t.Parallel()

		regions := rfmodel.SplitRegions([]*rfmodel.Token{
			tok(1, 0, 0, "Documentation"),
			tok(3, 7, 40, "later"),
		})

		require.Len(t, regions, 2)
		assert.Equal(t, 13, regions[0].End.Offset)
		assert.Equal(t, 40, regions[1].Start.Offset)
	})

	t.Run("unpositioned tokens are skipped", func(t *testing.T) {
		t.Parallel()

		regions := rfmodel.SplitRegions([]*rfmodel.Token{
			{Text: "new", Pos: rfmodel.NotSet},
			tok(1, 0, 0, "x"),
		})

		require.Len(t, regions, 1)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, rfmodel.SplitRegions(nil))
	})
}

func TestFileRegionContains(t *testing.T) {
	t.Parallel()

	region := rfmodel.FileRegion{
		Start: rfmodel.FilePosition{Line: 1, Column: 2, Offset: 2},
		End:   rfmodel.FilePosition{Line: 1, Column: 8, Offset: 8},
	}

	assert.False(t, region.Contains(1))
	assert.True(t, region.Contains(2))
	assert.True(t, region.Contains(8))
	assert.False(t, region.Contains(9))
	assert.False(t, rfmodel.FileRegion{Start: rfmodel.NotSet, End: rfmodel.NotSet}.Contains(0))
}
