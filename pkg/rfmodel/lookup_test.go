package rfmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/robotxt/pkg/parser"
	"github.com/yaklabco/robotxt/pkg/rfmodel"
)

func TestLineIndexForOffset(t *testing.T) {
	t.Parallel()

	doc := parser.ParseString("a\nbc")

	tests := []struct {
		offset int
		want   int
		ok     bool
	}{
		{offset: -1, ok: false},
		{offset: 0, want: 0, ok: true},
		{offset: 1, want: 0, ok: true},
		{offset: 2, want: 1, ok: true},
		{offset: 4, want: 1, ok: true},
		{offset: 5, ok: false},
	}

	for _, tt := range tests {
		got, ok := doc.LineIndexForOffset(tt.offset)
		assert.Equal(t, tt.ok, ok, "offset %d", tt.offset)
		if tt.ok {
			assert.Equal(t, tt.want, got, "offset %d", tt.offset)
		}
	}
}

func TestLineIndexForOffsetTerminatedFile(t *testing.T) {
	t.Parallel()

	doc := parser.ParseString("a\r\nb\n")

	idx, ok := doc.LineIndexForOffset(2)
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	_, ok = doc.LineIndexForOffset(5)
	assert.False(t, ok)
}

func TestDocumentationForOffsetBoundaries(t *testing.T) {
	t.Parallel()

	doc := parser.ParseString("*** Settings ***\n" +
		"Documentation    first line\n" +
		"# interrupt\n" +
		"...    second\n" +
		"Library    X\n")

	settings := doc.Section(rfmodel.SectionSettings)
	require.NotNil(t, settings)
	docEl := settings.Elements[0]
	require.Equal(t, rfmodel.KindSettingDocumentation, doc.Kind(docEl.Decl))

	regions := doc.DocumentationRegions(docEl)
	require.Len(t, regions, 2, "the comment line splits the documentation")
	assert.Equal(t, 17, regions[0].Start.Offset)
	assert.Equal(t, 44, regions[0].End.Offset)
	assert.Equal(t, 64, regions[1].Start.Offset)
	assert.Equal(t, 70, regions[1].End.Offset)

	for _, region := range regions {
		begin, end := region.Start.Offset, region.End.Offset

		got, ok := doc.DocumentationForOffset(begin)
		assert.True(t, ok)
		assert.Same(t, docEl, got)

		got, ok = doc.DocumentationForOffset(end)
		assert.True(t, ok)
		assert.Same(t, docEl, got)

		_, ok = doc.DocumentationForOffset(begin - 1)
		assert.False(t, ok, "one byte before %d", begin)

		_, ok = doc.DocumentationForOffset(end + 1)
		assert.False(t, ok, "one byte after %d", end)
	}

	_, ok := doc.DocumentationForOffset(50)
	assert.False(t, ok, "the interrupting comment is not documentation")
}

func TestDocumentationForOffsetLocalSetting(t *testing.T) {
	t.Parallel()

	content := "*** Keywords ***\nMy Keyword\n    [Documentation]    Does things\n    No Operation\n"
	doc := parser.ParseString(content)

	offset := len("*** Keywords ***\nMy Keyword\n    [Documentation]    Does")
	el, ok := doc.DocumentationForOffset(offset)
	require.True(t, ok)
	assert.Equal(t, rfmodel.KindLocalDocumentation, doc.Kind(el.Decl))

	_, ok = doc.DocumentationForOffset(len(content) - 3)
	assert.False(t, ok)
}

func TestElementForOffset(t *testing.T) {
	t.Parallel()

	content := "*** Test Cases ***\nMy Test    Log    hello\n"
	doc := parser.ParseString(content)

	el, ok := doc.ElementForOffset(len("*** Test Cases ***\nMy"))
	require.True(t, ok)
	assert.Equal(t, rfmodel.ElementDefinition, el.Kind)

	el, ok = doc.ElementForOffset(len("*** Test Cases ***\nMy Test    Lo"))
	require.True(t, ok)
	assert.Equal(t, rfmodel.ElementExecutableRow, el.Kind)
	assert.Equal(t, "Log", doc.Text(el.Decl))

	_, ok = doc.ElementForOffset(len(content) + 10)
	assert.False(t, ok)
}
