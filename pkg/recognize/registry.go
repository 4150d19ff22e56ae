package recognize

import (
	"slices"
	"sync"

	"github.com/yaklabco/robotxt/pkg/rfmodel"
)

// Context selects the recognizer list used for a cell.
type Context uint8

const (
	ContextHeader Context = iota
	ContextSetting
	ContextTestCaseSetting
	ContextKeywordSetting
	ContextVariable
	ContextExecutable
	ContextLibraryAlias
)

// Contexts lists every context.
func Contexts() []Context {
	return []Context{
		ContextHeader,
		ContextSetting,
		ContextTestCaseSetting,
		ContextKeywordSetting,
		ContextVariable,
		ContextExecutable,
		ContextLibraryAlias,
	}
}

func (c Context) String() string {
	switch c {
	case ContextHeader:
		return "header"
	case ContextSetting:
		return "setting"
	case ContextTestCaseSetting:
		return "test-setting"
	case ContextKeywordSetting:
		return "keyword-setting"
	case ContextVariable:
		return "variable"
	case ContextExecutable:
		return "executable"
	case ContextLibraryAlias:
		return "library-alias"
	default:
		return "unknown"
	}
}

// Registry holds prioritized recognizers per context.
type Registry struct {
	recognizers map[Context][]Recognizer
	fallback    map[Context]rfmodel.TokenKind
}

// NewRegistry returns an empty registry. Unknown contexts fall back to
// rfmodel.KindUnknown.
func NewRegistry() *Registry {
	return &Registry{
		recognizers: make(map[Context][]Recognizer),
		fallback:    make(map[Context]rfmodel.TokenKind),
	}
}

// Register appends recognizers to ctx. Earlier registrations win.
func (r *Registry) Register(ctx Context, recognizers ...Recognizer) {
	r.recognizers[ctx] = append(r.recognizers[ctx], recognizers...)
}

// SetFallback sets the kind reported when nothing in ctx matches.
func (r *Registry) SetFallback(ctx Context, kind rfmodel.TokenKind) {
	r.fallback[ctx] = kind
}

// Recognizers returns the recognizers of ctx in priority order.
func (r *Registry) Recognizers(ctx Context) []Recognizer {
	return slices.Clone(r.recognizers[ctx])
}

// Fallback returns the generic kind of ctx.
func (r *Registry) Fallback(ctx Context) rfmodel.TokenKind {
	return r.fallback[ctx]
}

// Match runs the recognizers of ctx against the start of window and returns
// the token of the first one that matches.
func (r *Registry) Match(ctx Context, window string, line, column, offset int) (rfmodel.Token, bool) {
	for _, rec := range r.recognizers[ctx] {
		if tok, ok := rec.Match(window, line, column, offset); ok {
			return tok, true
		}
	}
	return rfmodel.Token{}, false
}

// Classify returns the kind of the first recognizer of ctx that matches the
// whole cell, or the fallback kind of ctx.
func (r *Registry) Classify(ctx Context, cell string) rfmodel.TokenKind {
	kind, _ := r.Lookup(ctx, cell)
	return kind
}

// Lookup is like Classify but also reports whether a recognizer matched.
func (r *Registry) Lookup(ctx Context, cell string) (rfmodel.TokenKind, bool) {
	for _, rec := range r.recognizers[ctx] {
		if rec.MatchCell(cell) {
			return rec.Kind, true
		}
	}
	return r.fallback[ctx], false
}

//nolint:gochecknoglobals // lazily built read-only registry
var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the shared registry with the standard vocabulary.
// It must not be modified.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = newDefaultRegistry()
	})
	return defaultRegistry
}

func newDefaultRegistry() *Registry {
	reg := NewRegistry()

	const stars = `\*+[ \t]*`
	const tail = `(?:[ \t]*\*+)?`
	reg.Register(ContextHeader,
		Pattern(rfmodel.KindHeaderSettings, stars+`(?:settings?|metadata)`+tail),
		Pattern(rfmodel.KindHeaderVariables, stars+`variables?`+tail),
		Pattern(rfmodel.KindHeaderTestCases, stars+`test[ \t]+cases?`+tail),
		Pattern(rfmodel.KindHeaderTasks, stars+`tasks?`+tail),
		Pattern(rfmodel.KindHeaderKeywords, stars+`(?:user[ \t]+)?keywords?`+tail),
		Pattern(rfmodel.KindHeaderComments, stars+`comments?`+tail),
		Pattern(rfmodel.KindHeaderUnknown, `\*[^ \t|]*(?:[ \t][^ \t|]+)*`),
	)
	reg.SetFallback(ContextHeader, rfmodel.KindHeaderUnknown)

	reg.Register(ContextSetting,
		Words(rfmodel.KindSettingLibrary, "Library"),
		Words(rfmodel.KindSettingResource, "Resource"),
		Words(rfmodel.KindSettingVariables, "Variables"),
		Words(rfmodel.KindSettingDocumentation, "Documentation"),
		Words(rfmodel.KindSettingMetadata, "Metadata"),
		Words(rfmodel.KindSettingSuiteSetup, "Suite", "Setup"),
		Words(rfmodel.KindSettingSuiteSetup, "Suite", "Precondition"),
		Words(rfmodel.KindSettingSuiteTeardown, "Suite", "Teardown"),
		Words(rfmodel.KindSettingSuiteTeardown, "Suite", "Postcondition"),
		Words(rfmodel.KindSettingTestSetup, "Test", "Setup"),
		Words(rfmodel.KindSettingTestSetup, "Test", "Precondition"),
		Words(rfmodel.KindSettingTestTeardown, "Test", "Teardown"),
		Words(rfmodel.KindSettingTestTeardown, "Test", "Postcondition"),
		Words(rfmodel.KindSettingTestTemplate, "Test", "Template"),
		Words(rfmodel.KindSettingTestTimeout, "Test", "Timeout"),
		Words(rfmodel.KindSettingTaskSetup, "Task", "Setup"),
		Words(rfmodel.KindSettingTaskTeardown, "Task", "Teardown"),
		Words(rfmodel.KindSettingTaskTemplate, "Task", "Template"),
		Words(rfmodel.KindSettingTaskTimeout, "Task", "Timeout"),
		Words(rfmodel.KindSettingForceTags, "Force", "Tags"),
		Words(rfmodel.KindSettingForceTags, "Test", "Tags"),
		Words(rfmodel.KindSettingDefaultTags, "Default", "Tags"),
		Words(rfmodel.KindSettingKeywordTags, "Keyword", "Tags"),
	)
	reg.SetFallback(ContextSetting, rfmodel.KindSettingUnknown)

	reg.Register(ContextTestCaseSetting,
		Bracketed(rfmodel.KindLocalDocumentation, "Documentation"),
		Bracketed(rfmodel.KindLocalTags, "Tags"),
		Bracketed(rfmodel.KindLocalSetup, "Setup"),
		Bracketed(rfmodel.KindLocalSetup, "Precondition"),
		Bracketed(rfmodel.KindLocalTeardown, "Teardown"),
		Bracketed(rfmodel.KindLocalTeardown, "Postcondition"),
		Bracketed(rfmodel.KindLocalTemplate, "Template"),
		Bracketed(rfmodel.KindLocalTimeout, "Timeout"),
	)
	reg.SetFallback(ContextTestCaseSetting, rfmodel.KindLocalUnknown)

	reg.Register(ContextKeywordSetting,
		Bracketed(rfmodel.KindLocalDocumentation, "Documentation"),
		Bracketed(rfmodel.KindLocalTags, "Tags"),
		Bracketed(rfmodel.KindLocalArguments, "Arguments"),
		Bracketed(rfmodel.KindLocalReturn, "Return"),
		Bracketed(rfmodel.KindLocalSetup, "Setup"),
		Bracketed(rfmodel.KindLocalTeardown, "Teardown"),
		Bracketed(rfmodel.KindLocalTimeout, "Timeout"),
	)
	reg.SetFallback(ContextKeywordSetting, rfmodel.KindLocalUnknown)

	const assign = `(?:[ \t]*=)?`
	reg.Register(ContextVariable,
		Pattern(rfmodel.KindVariableScalar, `\$\{.*\}`+assign),
		Pattern(rfmodel.KindVariableList, `@\{.*\}`+assign),
		Pattern(rfmodel.KindVariableDictionary, `&\{.*\}`+assign),
		Pattern(rfmodel.KindVariableEnvironment, `%\{.*\}`+assign),
	)
	reg.SetFallback(ContextVariable, rfmodel.KindVariableUnknown)

	reg.Register(ContextExecutable,
		Pattern(rfmodel.KindFor, `:[ \t]*for`),
		Words(rfmodel.KindFor, "FOR"),
		Words(rfmodel.KindEnd, "END"),
		Pattern(rfmodel.KindForIn, `in(?:[ \t]+(?:range|enumerate|zip))?`),
		Pattern(rfmodel.KindAssignment, `[$@&]\{.*\}`+assign),
	)
	reg.SetFallback(ContextExecutable, rfmodel.KindAction)

	reg.Register(ContextLibraryAlias,
		Words(rfmodel.KindLibraryAlias, "WITH", "NAME"),
		Words(rfmodel.KindLibraryAlias, "AS"),
	)
	reg.SetFallback(ContextLibraryAlias, rfmodel.KindSettingValue)

	return reg
}
