package parser

import (
	"github.com/yaklabco/robotxt/pkg/recognize"
	"github.com/yaklabco/robotxt/pkg/rfmodel"
)

// Classify reassigns token kinds of el the way parsing would inside sec,
// e.g. after values were appended programmatically.
func Classify(doc *rfmodel.Document, sec *rfmodel.Section, el *rfmodel.Element) {
	asm := &assembler{doc: doc, reg: recognize.Default(), section: sec}
	asm.classify(el)
	for _, child := range el.Body {
		asm.classify(child)
	}
}

// NewSetting creates a detached setting for the Settings section.
func NewSetting(doc *rfmodel.Document, sec *rfmodel.Section, name string, values ...string) *rfmodel.Element {
	el := doc.NewElement(rfmodel.ElementSetting, rfmodel.KindSettingUnknown, name, values...)
	Classify(doc, sec, el)
	return el
}

// NewVariable creates a detached variable declaration.
func NewVariable(doc *rfmodel.Document, sec *rfmodel.Section, name string, values ...string) *rfmodel.Element {
	el := doc.NewElement(rfmodel.ElementVariable, rfmodel.KindVariableUnknown, name, values...)
	Classify(doc, sec, el)
	return el
}

// NewDefinition creates a detached test case, task or keyword named name.
func NewDefinition(doc *rfmodel.Document, sec *rfmodel.Section, name string) *rfmodel.Element {
	return doc.NewElement(rfmodel.ElementDefinition, sec.Kind.DefinitionKind(), name)
}

// NewRow creates a detached executable row, e.g. a keyword call with its
// arguments. cells may start with assignments.
func NewRow(doc *rfmodel.Document, sec *rfmodel.Section, cells ...string) *rfmodel.Element {
	if len(cells) == 0 {
		cells = []string{""}
	}
	el := doc.NewElement(rfmodel.ElementExecutableRow, rfmodel.KindAction, cells[0], cells[1:]...)
	Classify(doc, sec, el)
	return el
}

// NewLocalSetting creates a detached [Setting] for a definition body.
func NewLocalSetting(doc *rfmodel.Document, sec *rfmodel.Section, name string, values ...string) *rfmodel.Element {
	el := doc.NewElement(rfmodel.ElementLocalSetting, rfmodel.KindLocalUnknown, name, values...)
	Classify(doc, sec, el)
	return el
}
