package recognize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/robotxt/pkg/recognize"
	"github.com/yaklabco/robotxt/pkg/rfmodel"
)

func TestClassifySettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cell string
		want rfmodel.TokenKind
	}{
		{cell: "Library", want: rfmodel.KindSettingLibrary},
		{cell: "library", want: rfmodel.KindSettingLibrary},
		{cell: "Library:", want: rfmodel.KindSettingLibrary},
		{cell: "Suite Setup", want: rfmodel.KindSettingSuiteSetup},
		{cell: "SUITE   setup", want: rfmodel.KindSettingSuiteSetup},
		{cell: "Suite Precondition", want: rfmodel.KindSettingSuiteSetup},
		{cell: "Test Tags", want: rfmodel.KindSettingForceTags},
		{cell: "Task Timeout", want: rfmodel.KindSettingTaskTimeout},
		{cell: "Documentation", want: rfmodel.KindSettingDocumentation},
		{cell: "Suite Setup Extra", want: rfmodel.KindSettingUnknown},
		{cell: "Libraryx", want: rfmodel.KindSettingUnknown},
		{cell: "", want: rfmodel.KindSettingUnknown},
	}

	reg := recognize.Default()
	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, reg.Classify(recognize.ContextSetting, tt.cell))
		})
	}
}

func TestClassifyLocalSettingsPerContext(t *testing.T) {
	t.Parallel()

	reg := recognize.Default()

	assert.Equal(t, rfmodel.KindLocalArguments, reg.Classify(recognize.ContextKeywordSetting, "[Arguments]"))
	assert.Equal(t, rfmodel.KindLocalUnknown, reg.Classify(recognize.ContextTestCaseSetting, "[Arguments]"))
	assert.Equal(t, rfmodel.KindLocalTemplate, reg.Classify(recognize.ContextTestCaseSetting, "[ template ]"))
	assert.Equal(t, rfmodel.KindLocalDocumentation, reg.Classify(recognize.ContextKeywordSetting, "[DOCUMENTATION]"))
}

func TestClassifyVariablesAndRows(t *testing.T) {
	t.Parallel()

	reg := recognize.Default()

	assert.Equal(t, rfmodel.KindVariableScalar, reg.Classify(recognize.ContextVariable, "${name}"))
	assert.Equal(t, rfmodel.KindVariableScalar, reg.Classify(recognize.ContextVariable, "${name} ="))
	assert.Equal(t, rfmodel.KindVariableList, reg.Classify(recognize.ContextVariable, "@{items}"))
	assert.Equal(t, rfmodel.KindVariableDictionary, reg.Classify(recognize.ContextVariable, "&{map}="))
	assert.Equal(t, rfmodel.KindVariableEnvironment, reg.Classify(recognize.ContextVariable, "%{HOME}"))
	assert.Equal(t, rfmodel.KindVariableUnknown, reg.Classify(recognize.ContextVariable, "name"))

	assert.Equal(t, rfmodel.KindFor, reg.Classify(recognize.ContextExecutable, "FOR"))
	assert.Equal(t, rfmodel.KindFor, reg.Classify(recognize.ContextExecutable, ":FOR"))
	assert.Equal(t, rfmodel.KindForIn, reg.Classify(recognize.ContextExecutable, "IN RANGE"))
	assert.Equal(t, rfmodel.KindEnd, reg.Classify(recognize.ContextExecutable, "END"))
	assert.Equal(t, rfmodel.KindAssignment, reg.Classify(recognize.ContextExecutable, "${x}="))
	assert.Equal(t, rfmodel.KindAction, reg.Classify(recognize.ContextExecutable, "Log"))

	assert.Equal(t, rfmodel.KindLibraryAlias, reg.Classify(recognize.ContextLibraryAlias, "WITH NAME"))
	assert.Equal(t, rfmodel.KindLibraryAlias, reg.Classify(recognize.ContextLibraryAlias, "AS"))
}

func TestMatchHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		window  string
		kind    rfmodel.TokenKind
		text    string
		column  int
		noMatch bool
	}{
		{name: "plain", window: "*** Settings ***", kind: rfmodel.KindHeaderSettings, text: "*** Settings ***"},
		{name: "singular", window: "*Setting", kind: rfmodel.KindHeaderSettings, text: "*Setting"},
		{name: "whitespace runs", window: "***   Test    Cases   ***", kind: rfmodel.KindHeaderTestCases, text: "***   Test    Cases   ***"},
		{name: "with columns", window: "*** Keywords ***    Col", kind: rfmodel.KindHeaderKeywords, text: "*** Keywords ***"},
		{name: "pipe prefix", window: "| *** Variables *** |", kind: rfmodel.KindHeaderVariables, text: "*** Variables ***", column: 2},
		{name: "user keywords", window: "*** User Keywords ***", kind: rfmodel.KindHeaderKeywords, text: "*** User Keywords ***"},
		{name: "tasks", window: "*** Tasks ***", kind: rfmodel.KindHeaderTasks, text: "*** Tasks ***"},
		{name: "comments", window: "*** Comments ***", kind: rfmodel.KindHeaderComments, text: "*** Comments ***"},
		{name: "unknown", window: "*** Other Stuff ***", kind: rfmodel.KindHeaderUnknown, text: "*** Other Stuff ***"},
		{name: "glued text", window: "***Settings***x", kind: rfmodel.KindHeaderUnknown, text: "***Settings***x"},
		{name: "not a header", window: "Library    X", noMatch: true},
	}

	reg := recognize.Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tok, ok := reg.Match(recognize.ContextHeader, tt.window, 4, 0, 100)
			if tt.noMatch {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.kind, tok.Kind)
			assert.Equal(t, tt.text, tok.Raw)
			assert.Equal(t, 4, tok.Pos.Line)
			assert.Equal(t, tt.column, tok.Pos.Column)
			assert.Equal(t, 100+tt.column, tok.Pos.Offset)
		})
	}
}

func TestCustomRegistryPriority(t *testing.T) {
	t.Parallel()

	reg := recognize.NewRegistry()
	reg.Register(recognize.ContextSetting,
		recognize.Words(rfmodel.KindSettingTestSetup, "Setup"),
		recognize.Words(rfmodel.KindSettingSuiteSetup, "Setup"),
	)
	reg.SetFallback(recognize.ContextSetting, rfmodel.KindSettingUnknown)

	kind, ok := reg.Lookup(recognize.ContextSetting, "setup")
	assert.True(t, ok)
	assert.Equal(t, rfmodel.KindSettingTestSetup, kind, "first registration wins")

	kind, ok = reg.Lookup(recognize.ContextSetting, "Teardown")
	assert.False(t, ok)
	assert.Equal(t, rfmodel.KindSettingUnknown, kind)
	assert.Equal(t, rfmodel.KindUnknown, reg.Classify(recognize.ContextVariable, "${x}"))
}

func TestRecognizersSpelling(t *testing.T) {
	t.Parallel()

	reg := recognize.Default()
	require.Len(t, recognize.Contexts(), 7)

	settings := reg.Recognizers(recognize.ContextSetting)
	require.NotEmpty(t, settings)
	assert.Equal(t, "Library", settings[0].Spelling)
	assert.Equal(t, rfmodel.KindSettingLibrary, settings[0].Kind)

	local := reg.Recognizers(recognize.ContextTestCaseSetting)
	require.NotEmpty(t, local)
	assert.Equal(t, "[Documentation]", local[0].Spelling)

	headers := reg.Recognizers(recognize.ContextHeader)
	require.NotEmpty(t, headers)
	assert.Equal(t, "/", headers[0].Spelling[:1])

	settings[0].Spelling = "changed"
	assert.Equal(t, "Library", reg.Recognizers(recognize.ContextSetting)[0].Spelling, "callers get a copy")

	assert.Equal(t, "keyword-setting", recognize.ContextKeywordSetting.String())
}
