package rfmodel

// ElementKind is the closed set of element variants.
type ElementKind uint8

const (
	ElementHeader ElementKind = iota
	ElementSetting
	ElementVariable
	ElementDefinition
	ElementLocalSetting
	ElementExecutableRow
	ElementComment
	ElementEmptyLine
)

func (k ElementKind) String() string {
	switch k {
	case ElementHeader:
		return "header"
	case ElementSetting:
		return "setting"
	case ElementVariable:
		return "variable"
	case ElementDefinition:
		return "definition"
	case ElementLocalSetting:
		return "local-setting"
	case ElementExecutableRow:
		return "row"
	case ElementComment:
		return "comment"
	case ElementEmptyLine:
		return "empty"
	default:
		return "unknown"
	}
}

// Element is a semantic unit of a section. It references its tokens by id:
// one declaration, the ordered values and the comments.
type Element struct {
	Kind ElementKind

	// Decl is the declaration token. Empty lines have none.
	Decl TokenID

	// Values are the arguments of the declaration in logical order.
	Values []TokenID

	// Comments are the comment tokens attached to the element.
	Comments []TokenID

	// Body holds the settings and rows of a test case, task or keyword.
	Body []*Element

	// SourceLine is the 1-based line an empty-line element was parsed from;
	// zero for synthesized empty lines.
	SourceLine int
}

// TokenIDs returns the declaration, values and comments of the element.
// Body elements are not included.
func (e *Element) TokenIDs() []TokenID {
	ids := make([]TokenID, 0, 1+len(e.Values)+len(e.Comments))
	if e.Decl != NoToken {
		ids = append(ids, e.Decl)
	}
	ids = append(ids, e.Values...)
	ids = append(ids, e.Comments...)
	return ids
}

// AddChild appends a body element to a definition.
func (e *Element) AddChild(child *Element) {
	e.Body = append(e.Body, child)
}

// InsertChild inserts a body element at index, clamped to the body bounds.
func (e *Element) InsertChild(index int, child *Element) {
	e.Body = insertElement(e.Body, index, child)
}

// RemoveChild detaches a body element. It reports whether child was found.
func (e *Element) RemoveChild(child *Element) bool {
	var ok bool
	e.Body, ok = removeElement(e.Body, child)
	return ok
}

func insertElement(list []*Element, index int, el *Element) []*Element {
	index = max(0, min(index, len(list)))
	list = append(list, nil)
	copy(list[index+1:], list[index:])
	list[index] = el
	return list
}

func removeElement(list []*Element, el *Element) ([]*Element, bool) {
	for idx, candidate := range list {
		if candidate == el {
			return append(list[:idx], list[idx+1:]...), true
		}
	}
	return list, false
}
