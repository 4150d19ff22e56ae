package rfmodel

// TokenKind classifies a token in a Robot Framework document.
type TokenKind uint16

// Token kinds. Layout kinds (separators and continuation markers) never
// belong to an element; every other kind is owned by exactly one element.
const (
	KindUnknown TokenKind = iota
	KindSeparator
	KindContinuation // "..." at the head of a line
	KindComment

	KindHeaderSettings
	KindHeaderVariables
	KindHeaderTestCases
	KindHeaderTasks
	KindHeaderKeywords
	KindHeaderComments
	KindHeaderUnknown
	KindHeaderColumn

	KindSettingLibrary
	KindSettingResource
	KindSettingVariables
	KindSettingDocumentation
	KindSettingMetadata
	KindSettingSuiteSetup
	KindSettingSuiteTeardown
	KindSettingTestSetup
	KindSettingTestTeardown
	KindSettingTestTemplate
	KindSettingTestTimeout
	KindSettingTaskSetup
	KindSettingTaskTeardown
	KindSettingTaskTemplate
	KindSettingTaskTimeout
	KindSettingForceTags
	KindSettingDefaultTags
	KindSettingKeywordTags
	KindSettingUnknown
	KindSettingValue
	KindKeywordCall  // keyword named by a setup, teardown or template
	KindLibraryAlias // WITH NAME / AS

	KindVariableScalar
	KindVariableList
	KindVariableDictionary
	KindVariableEnvironment
	KindVariableUnknown
	KindVariableValue

	KindTestCaseName
	KindTaskName
	KindKeywordName

	KindLocalDocumentation
	KindLocalTags
	KindLocalSetup
	KindLocalTeardown
	KindLocalTemplate
	KindLocalTimeout
	KindLocalArguments
	KindLocalReturn
	KindLocalUnknown
	KindLocalValue

	KindAssignment
	KindAction
	KindArgument
	KindFor
	KindForIn
	KindEnd
	KindForContinue // old-style "\" loop body marker

	kindCount
)

//nolint:gochecknoglobals // lookup table
var kindNames = [kindCount]string{
	KindUnknown:      "Unknown",
	KindSeparator:    "Separator",
	KindContinuation: "Continuation",
	KindComment:      "Comment",

	KindHeaderSettings:  "HeaderSettings",
	KindHeaderVariables: "HeaderVariables",
	KindHeaderTestCases: "HeaderTestCases",
	KindHeaderTasks:     "HeaderTasks",
	KindHeaderKeywords:  "HeaderKeywords",
	KindHeaderComments:  "HeaderComments",
	KindHeaderUnknown:   "HeaderUnknown",
	KindHeaderColumn:    "HeaderColumn",

	KindSettingLibrary:       "SettingLibrary",
	KindSettingResource:      "SettingResource",
	KindSettingVariables:     "SettingVariables",
	KindSettingDocumentation: "SettingDocumentation",
	KindSettingMetadata:      "SettingMetadata",
	KindSettingSuiteSetup:    "SettingSuiteSetup",
	KindSettingSuiteTeardown: "SettingSuiteTeardown",
	KindSettingTestSetup:     "SettingTestSetup",
	KindSettingTestTeardown:  "SettingTestTeardown",
	KindSettingTestTemplate:  "SettingTestTemplate",
	KindSettingTestTimeout:   "SettingTestTimeout",
	KindSettingTaskSetup:     "SettingTaskSetup",
	KindSettingTaskTeardown:  "SettingTaskTeardown",
	KindSettingTaskTemplate:  "SettingTaskTemplate",
	KindSettingTaskTimeout:   "SettingTaskTimeout",
	KindSettingForceTags:     "SettingForceTags",
	KindSettingDefaultTags:   "SettingDefaultTags",
	KindSettingKeywordTags:   "SettingKeywordTags",
	KindSettingUnknown:       "SettingUnknown",
	KindSettingValue:         "SettingValue",
	KindKeywordCall:          "KeywordCall",
	KindLibraryAlias:         "LibraryAlias",

	KindVariableScalar:      "VariableScalar",
	KindVariableList:        "VariableList",
	KindVariableDictionary:  "VariableDictionary",
	KindVariableEnvironment: "VariableEnvironment",
	KindVariableUnknown:     "VariableUnknown",
	KindVariableValue:       "VariableValue",

	KindTestCaseName: "TestCaseName",
	KindTaskName:     "TaskName",
	KindKeywordName:  "KeywordName",

	KindLocalDocumentation: "LocalDocumentation",
	KindLocalTags:          "LocalTags",
	KindLocalSetup:         "LocalSetup",
	KindLocalTeardown:      "LocalTeardown",
	KindLocalTemplate:      "LocalTemplate",
	KindLocalTimeout:       "LocalTimeout",
	KindLocalArguments:     "LocalArguments",
	KindLocalReturn:        "LocalReturn",
	KindLocalUnknown:       "LocalUnknown",
	KindLocalValue:         "LocalValue",

	KindAssignment:  "Assignment",
	KindAction:      "Action",
	KindArgument:    "Argument",
	KindFor:         "For",
	KindForIn:       "ForIn",
	KindEnd:         "End",
	KindForContinue: "ForContinue",
}

func (k TokenKind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "TokenKind(?)"
}

// IsLayout reports whether tokens of this kind only shape the physical
// layout and are never owned by an element.
func (k TokenKind) IsLayout() bool {
	return k == KindSeparator || k == KindContinuation
}

// IsHeader reports whether k is a section header kind.
func (k TokenKind) IsHeader() bool {
	return k >= KindHeaderSettings && k <= KindHeaderUnknown
}

// IsSetting reports whether k declares a suite-level setting.
func (k TokenKind) IsSetting() bool {
	return k >= KindSettingLibrary && k <= KindSettingUnknown
}

// IsVariable reports whether k declares a variable.
func (k TokenKind) IsVariable() bool {
	return k >= KindVariableScalar && k <= KindVariableUnknown
}

// IsDefinition reports whether k names a test case, task or keyword.
func (k TokenKind) IsDefinition() bool {
	return k == KindTestCaseName || k == KindTaskName || k == KindKeywordName
}

// IsLocalSetting reports whether k is a bracketed [Setting] of a definition.
func (k TokenKind) IsLocalSetting() bool {
	return k >= KindLocalDocumentation && k <= KindLocalUnknown
}

// IsDocumentation reports whether k declares documentation text.
func (k TokenKind) IsDocumentation() bool {
	return k == KindSettingDocumentation || k == KindLocalDocumentation
}

// TakesKeyword reports whether the first value of a setting of kind k names
// a keyword.
func (k TokenKind) TakesKeyword() bool {
	switch k {
	case KindSettingSuiteSetup, KindSettingSuiteTeardown,
		KindSettingTestSetup, KindSettingTestTeardown, KindSettingTestTemplate,
		KindSettingTaskSetup, KindSettingTaskTeardown, KindSettingTaskTemplate,
		KindLocalSetup, KindLocalTeardown, KindLocalTemplate:
		return true
	default:
		return false
	}
}
