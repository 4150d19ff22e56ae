package rfmodel

import (
	"fmt"
	"strings"
)

// SectionKind identifies a table of the file.
type SectionKind uint8

const (
	// SectionNone holds the lines before the first header.
	SectionNone SectionKind = iota
	SectionSettings
	SectionVariables
	SectionTestCases
	SectionTasks
	SectionKeywords
	// SectionComments holds the Comments table and tables with an
	// unrecognized header. Its lines are kept as comments.
	SectionComments
)

func (k SectionKind) String() string {
	switch k {
	case SectionNone:
		return "none"
	case SectionSettings:
		return "Settings"
	case SectionVariables:
		return "Variables"
	case SectionTestCases:
		return "Test Cases"
	case SectionTasks:
		return "Tasks"
	case SectionKeywords:
		return "Keywords"
	case SectionComments:
		return "Comments"
	default:
		return "unknown"
	}
}

// HasDefinitions reports whether the section groups rows under named
// test cases, tasks or keywords.
func (k SectionKind) HasDefinitions() bool {
	return k == SectionTestCases || k == SectionTasks || k == SectionKeywords
}

// HeaderKind returns the header token kind that opens a section of kind k.
func (k SectionKind) HeaderKind() TokenKind {
	switch k {
	case SectionSettings:
		return KindHeaderSettings
	case SectionVariables:
		return KindHeaderVariables
	case SectionTestCases:
		return KindHeaderTestCases
	case SectionTasks:
		return KindHeaderTasks
	case SectionKeywords:
		return KindHeaderKeywords
	case SectionComments:
		return KindHeaderComments
	default:
		return KindUnknown
	}
}

// DefinitionKind returns the declaration kind of definitions in k.
func (k SectionKind) DefinitionKind() TokenKind {
	switch k {
	case SectionTestCases:
		return KindTestCaseName
	case SectionTasks:
		return KindTaskName
	case SectionKeywords:
		return KindKeywordName
	default:
		return KindUnknown
	}
}

// SectionKindForHeader maps a header token kind to the section it opens.
func SectionKindForHeader(kind TokenKind) SectionKind {
	switch kind {
	case KindHeaderSettings:
		return SectionSettings
	case KindHeaderVariables:
		return SectionVariables
	case KindHeaderTestCases:
		return SectionTestCases
	case KindHeaderTasks:
		return SectionTasks
	case KindHeaderKeywords:
		return SectionKeywords
	default:
		return SectionComments
	}
}

// Dialect is the cell separation style of a section.
type Dialect uint8

const (
	DialectSpace Dialect = iota
	DialectPipe
	DialectTab
)

func (d Dialect) String() string {
	switch d {
	case DialectPipe:
		return "pipe"
	case DialectTab:
		return "tab"
	default:
		return "space"
	}
}

// ParseDialect converts a dialect name.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "space", "spaces":
		return DialectSpace, nil
	case "pipe", "pipes":
		return DialectPipe, nil
	case "tab", "tabs":
		return DialectTab, nil
	default:
		return DialectSpace, fmt.Errorf("unknown dialect %q", name)
	}
}

// DefaultSeparator is the separator used between new cells of a section
// when nothing better can be derived from the source.
func (d Dialect) DefaultSeparator() string {
	switch d {
	case DialectPipe:
		return " | "
	case DialectTab:
		return "\t"
	default:
		return "    "
	}
}

// Section is a table: its header and the ordered elements below it.
type Section struct {
	Kind    SectionKind
	Dialect Dialect

	// Separator is the preferred separator for new cells, derived from the
	// most frequent separator of the section.
	Separator string

	// Header is nil for SectionNone.
	Header *Element

	Elements []*Element
}

// AddElement appends el to the section.
func (s *Section) AddElement(el *Element) {
	s.Elements = append(s.Elements, el)
}

// InsertElement inserts el at index, clamped to the section bounds.
func (s *Section) InsertElement(index int, el *Element) {
	s.Elements = insertElement(s.Elements, index, el)
}

// RemoveElement detaches el from the section. It reports whether el was found.
func (s *Section) RemoveElement(el *Element) bool {
	var ok bool
	s.Elements, ok = removeElement(s.Elements, el)
	return ok
}

// CellSeparator returns the separator for new cells in this section.
func (s *Section) CellSeparator() string {
	if s.Dialect == DialectSpace && s.Separator != "" {
		return s.Separator
	}
	return s.Dialect.DefaultSeparator()
}
