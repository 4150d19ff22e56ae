package parser_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/robotxt/pkg/parser"
	"github.com/yaklabco/robotxt/pkg/rfmodel"
)

func texts(doc *rfmodel.Document, ids []rfmodel.TokenID) []string {
	out := make([]string, len(ids))
	for idx, id := range ids {
		out[idx] = doc.Text(id)
	}
	return out
}

func TestParsePipeSetting(t *testing.T) {
	t.Parallel()

	doc := parser.ParseString("| *** Settings *** |\n| Suite Setup | Open Browser |\n")

	sec := doc.Section(rfmodel.SectionSettings)
	require.NotNil(t, sec)
	assert.Equal(t, rfmodel.DialectPipe, sec.Dialect)
	require.Len(t, sec.Elements, 1)

	el := sec.Elements[0]
	assert.Equal(t, rfmodel.ElementSetting, el.Kind)
	assert.Equal(t, rfmodel.KindSettingSuiteSetup, doc.Kind(el.Decl))
	assert.Equal(t, "Suite Setup", doc.Text(el.Decl))
	require.Len(t, el.Values, 1)
	assert.Equal(t, rfmodel.KindKeywordCall, doc.Kind(el.Values[0]))
	assert.Equal(t, "Open Browser", doc.Text(el.Values[0]))
}

func TestParseSections(t *testing.T) {
	t.Parallel()

	content := "Preamble text\n" +
		"*** Settings ***\n" +
		"Library    Collections    WITH NAME    coll\n" +
		"\n" +
		"*** Variables ***\n" +
		"${NAME}    value\n" +
		"@{LIST}    a    b\n" +
		"*** Other ***\n" +
		"free text    here\n" +
		"*** Comments ***\n" +
		"more text\n"

	doc := parser.ParseString(content)

	kinds := make([]rfmodel.SectionKind, len(doc.Sections))
	for idx, sec := range doc.Sections {
		kinds[idx] = sec.Kind
	}
	assert.Equal(t, []rfmodel.SectionKind{
		rfmodel.SectionNone,
		rfmodel.SectionSettings,
		rfmodel.SectionVariables,
		rfmodel.SectionComments,
		rfmodel.SectionComments,
	}, kinds)

	preamble := doc.Sections[0]
	assert.Nil(t, preamble.Header)
	require.Len(t, preamble.Elements, 1)
	assert.Equal(t, rfmodel.ElementComment, preamble.Elements[0].Kind)

	settings := doc.Sections[1]
	require.Len(t, settings.Elements, 2)
	lib := settings.Elements[0]
	alias, ok := doc.LibraryAlias(lib)
	assert.True(t, ok)
	assert.Equal(t, "coll", alias)
	assert.Equal(t, rfmodel.ElementEmptyLine, settings.Elements[1].Kind)
	assert.Equal(t, 4, settings.Elements[1].SourceLine)
	assert.Equal(t, "    ", settings.Separator)

	variables := doc.Sections[2]
	require.Len(t, variables.Elements, 2)
	assert.Equal(t, rfmodel.KindVariableScalar, doc.Kind(variables.Elements[0].Decl))
	assert.Equal(t, rfmodel.KindVariableList, doc.Kind(variables.Elements[1].Decl))
	assert.Equal(t, []string{"a", "b"}, texts(doc, variables.Elements[1].Values))

	unknown := doc.Sections[3]
	assert.Equal(t, rfmodel.KindHeaderUnknown, doc.Kind(unknown.Header.Decl))
	require.Len(t, unknown.Elements, 1)
	assert.Equal(t, rfmodel.ElementComment, unknown.Elements[0].Kind)
	assert.Equal(t, []string{"here"}, texts(doc, unknown.Elements[0].Values))

	assert.Equal(t, rfmodel.KindHeaderComments, doc.Kind(doc.Sections[4].Header.Decl))
}

func TestParseDefinitions(t *testing.T) {
	t.Parallel()

	content := "*** Test Cases ***    Step\n" +
		"First Test    [Documentation]    Doc\n" +
		"    [Tags]    smoke\n" +
		"    ${value}=    Get Value    arg\n" +
		"    # comment line\n" +
		"    Log    ${value}    # trailing\n" +
		"    ...    more\n" +
		"\n" +
		"Second Test\n" +
		"    :FOR    ${i}    IN RANGE    3\n" +
		"    \\    Log    ${i}\n" +
		"\\    Log    legacy\n" +
		"    FOR    ${x}    IN    a    b\n" +
		"        Log    ${x}\n" +
		"    END\n"

	doc := parser.ParseString(content)
	sec := doc.Section(rfmodel.SectionTestCases)
	require.NotNil(t, sec)
	assert.Equal(t, []string{"Step"}, texts(doc, sec.Header.Values))
	require.Len(t, sec.Elements, 2)

	first := sec.Elements[0]
	assert.Equal(t, rfmodel.ElementDefinition, first.Kind)
	assert.Equal(t, rfmodel.KindTestCaseName, doc.Kind(first.Decl))
	require.Len(t, first.Body, 6)

	assert.Equal(t, rfmodel.ElementLocalSetting, first.Body[0].Kind)
	assert.Equal(t, rfmodel.KindLocalDocumentation, doc.Kind(first.Body[0].Decl))
	assert.Equal(t, rfmodel.KindLocalTags, doc.Kind(first.Body[1].Decl))

	assign := first.Body[2]
	assert.Equal(t, rfmodel.KindAssignment, doc.Kind(assign.Decl))
	assert.Equal(t, rfmodel.KindAction, doc.Kind(assign.Values[0]))
	assert.Equal(t, rfmodel.KindArgument, doc.Kind(assign.Values[1]))

	assert.Equal(t, rfmodel.ElementComment, first.Body[3].Kind)

	logRow := first.Body[4]
	assert.Equal(t, []string{"${value}", "more"}, texts(doc, logRow.Values))
	assert.Equal(t, []string{"# trailing"}, texts(doc, logRow.Comments))

	assert.Equal(t, rfmodel.ElementEmptyLine, first.Body[5].Kind)

	second := sec.Elements[1]
	require.Len(t, second.Body, 6)
	legacyFor := second.Body[0]
	assert.Equal(t, rfmodel.KindFor, doc.Kind(legacyFor.Decl))
	assert.Equal(t, rfmodel.KindForIn, doc.Kind(legacyFor.Values[1]))

	for _, row := range second.Body[1:3] {
		assert.Equal(t, rfmodel.KindForContinue, doc.Kind(row.Decl))
		assert.Equal(t, rfmodel.KindAction, doc.Kind(row.Values[0]))
	}

	assert.Equal(t, rfmodel.KindFor, doc.Kind(second.Body[3].Decl))
	assert.Equal(t, rfmodel.KindEnd, doc.Kind(second.Body[5].Decl))
}

func TestParseKeywordSettings(t *testing.T) {
	t.Parallel()

	doc := parser.ParseString("*** Keywords ***\nMy Keyword\n    [Arguments]    ${a}\n    [Teardown]    Close\n")

	def := doc.Section(rfmodel.SectionKeywords).Elements[0]
	assert.Equal(t, rfmodel.KindKeywordName, doc.Kind(def.Decl))
	require.Len(t, def.Body, 2)
	assert.Equal(t, rfmodel.KindLocalArguments, doc.Kind(def.Body[0].Decl))
	assert.Equal(t, rfmodel.KindLocalValue, doc.Kind(def.Body[0].Values[0]))
	assert.Equal(t, rfmodel.KindLocalTeardown, doc.Kind(def.Body[1].Decl))
	assert.Equal(t, rfmodel.KindKeywordCall, doc.Kind(def.Body[1].Values[0]))
}

func TestParseContinuationAbsorbsCommentLines(t *testing.T) {
	t.Parallel()

	doc := parser.ParseString("*** Settings ***\nDocumentation    one\n# between\n\n...    two\nLibrary    X\n")

	sec := doc.Section(rfmodel.SectionSettings)
	require.Len(t, sec.Elements, 2)
	docEl := sec.Elements[0]
	assert.Equal(t, []string{"one", "two"}, texts(doc, docEl.Values))
	assert.Equal(t, []string{"# between"}, texts(doc, docEl.Comments))
}

func TestParsePendingLinesWithoutContinuation(t *testing.T) {
	t.Parallel()

	doc := parser.ParseString("*** Settings ***\nLibrary    X\n# standalone\n\nLibrary    Y\n")

	sec := doc.Section(rfmodel.SectionSettings)
	require.Len(t, sec.Elements, 4)
	assert.Equal(t, rfmodel.ElementComment, sec.Elements[1].Kind)
	assert.Equal(t, rfmodel.ElementEmptyLine, sec.Elements[2].Kind)
	assert.Empty(t, sec.Elements[0].Comments)
}

func TestParsePositionsAndLines(t *testing.T) {
	t.Parallel()

	content := "*** Settings ***\r\nLibrary\tCollections\r\n"
	doc := parser.ParseString(content)

	require.Len(t, doc.Lines, 2)
	assert.Equal(t, "\r\n", doc.LineSeparator)
	assert.Equal(t, rfmodel.EOLCRLF, doc.Lines[1].EOL.Kind)
	assert.Equal(t, rfmodel.DialectTab, doc.Sections[0].Dialect)

	lib := doc.Sections[0].Elements[0]
	value := doc.Token(lib.Values[0])
	assert.Equal(t, rfmodel.FilePosition{Line: 2, Column: 8, Offset: 26}, value.Pos)
	assert.True(t, value.Clean())

	line, idx := doc.LineOf(lib.Values[0])
	require.NotNil(t, line)
	assert.Equal(t, 2, idx)
}

func TestParseEveryByteIsOwned(t *testing.T) {
	t.Parallel()

	content := "x\n*** Test Cases ***\n| My Test | Log | hi |\n|  | ... | more |\n\t\n"
	doc := parser.ParseString(content)

	var rebuilt string
	for _, line := range doc.Lines {
		for _, id := range line.Elements {
			rebuilt += doc.Token(id).Raw
		}
		rebuilt += line.EOL.Raw
	}
	assert.Equal(t, content, rebuilt)
}

func TestParserParseContext(t *testing.T) {
	t.Parallel()

	p := parser.New(parser.Options{StrictUTF8: true})

	doc, err := p.Parse(context.Background(), "suite.robot", []byte("*** Tasks ***\nTask\n    Log    x\n"))
	require.NoError(t, err)
	assert.Equal(t, "suite.robot", doc.Path)
	assert.Equal(t, rfmodel.KindTaskName, doc.Kind(doc.Sections[0].Elements[0].Decl))

	_, err = p.Parse(context.Background(), "bad.robot", []byte{0xff, 0xfe})
	require.ErrorIs(t, err, parser.ErrInvalidUTF8)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Parse(ctx, "x.robot", nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPackageParseIsTotal(t *testing.T) {
	t.Parallel()

	content := []byte("*** Tasks ***\nTask\n    Log    \xff\xfe\n")

	doc := parser.Parse(content)
	require.NotNil(t, doc)
	assert.Empty(t, doc.Path)
	assert.Equal(t, "\xff\xfe", doc.Text(doc.Sections[0].Elements[0].Body[0].Values[0]))

	_, err := parser.New(parser.Options{StrictUTF8: true}).Parse(context.Background(), "t.robot", content)
	require.ErrorIs(t, err, parser.ErrInvalidUTF8)
}

func TestNewElementsAreClassified(t *testing.T) {
	t.Parallel()

	doc := parser.ParseString("*** Settings ***\n")
	sec := doc.Sections[0]

	lib := parser.NewSetting(doc, sec, "Library", "Collections", "WITH NAME", "coll")
	assert.Equal(t, rfmodel.KindSettingLibrary, doc.Kind(lib.Decl))
	assert.Equal(t, rfmodel.KindLibraryAlias, doc.Kind(lib.Values[1]))

	row := parser.NewRow(doc, sec, "${x}=", "Get Thing")
	assert.Equal(t, rfmodel.KindAssignment, doc.Kind(row.Decl))
	assert.Equal(t, rfmodel.KindAction, doc.Kind(row.Values[0]))
	assert.True(t, doc.Token(row.Decl).Dirty)
}
