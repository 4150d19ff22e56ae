package rfmodel

import "strings"

// SetText replaces the logical text of a token and marks it dirty.
func (d *Document) SetText(id TokenID, text string) {
	tok := d.Token(id)
	if tok == nil {
		return
	}
	tok.Text = text
	tok.Dirty = true
}

// NewElement creates a detached element with a fresh declaration and values.
func (d *Document) NewElement(kind ElementKind, declKind TokenKind, decl string, values ...string) *Element {
	el := &Element{Kind: kind, Decl: d.NewToken(declKind, decl)}
	for _, value := range values {
		d.AppendValue(el, value)
	}
	return el
}

// NewEmptyLine creates an element that serializes as a blank line.
func (d *Document) NewEmptyLine() *Element {
	return &Element{Kind: ElementEmptyLine, Decl: NoToken}
}

// NewComment creates a comment-only line.
func (d *Document) NewComment(text string) *Element {
	return &Element{Kind: ElementComment, Decl: d.NewToken(KindComment, commentText(text))}
}

// ValueKind returns the token kind for the value at index of el.
func (d *Document) ValueKind(el *Element, index int) TokenKind {
	declKind := d.Kind(el.Decl)

	switch el.Kind {
	case ElementHeader:
		return KindHeaderColumn
	case ElementSetting, ElementLocalSetting:
		if index == 0 && declKind.TakesKeyword() {
			return KindKeywordCall
		}
		if el.Kind == ElementLocalSetting {
			return KindLocalValue
		}
		return KindSettingValue
	case ElementVariable:
		return KindVariableValue
	case ElementComment:
		return KindComment
	case ElementExecutableRow:
		if declKind == KindForContinue && index == 0 {
			return KindAction
		}
		return KindArgument
	default:
		return KindUnknown
	}
}

// AppendValue adds a new value token at the end of el.Values.
func (d *Document) AppendValue(el *Element, text string) TokenID {
	id := d.NewToken(d.ValueKind(el, len(el.Values)), text)
	el.Values = append(el.Values, id)
	return id
}

// AppendToken adds a new value token of an explicit kind.
func (d *Document) AppendToken(el *Element, kind TokenKind, text string) TokenID {
	id := d.NewToken(kind, text)
	el.Values = append(el.Values, id)
	return id
}

// InsertValue inserts a new value token at index, clamped to the bounds.
func (d *Document) InsertValue(el *Element, index int, text string) TokenID {
	index = max(0, min(index, len(el.Values)))
	id := d.NewToken(d.ValueKind(el, index), text)
	el.Values = append(el.Values, NoToken)
	copy(el.Values[index+1:], el.Values[index:])
	el.Values[index] = id
	return id
}

// SetValue changes the text of the value at index.
// It reports false when index is out of range.
func (d *Document) SetValue(el *Element, index int, text string) bool {
	if index < 0 || index >= len(el.Values) {
		return false
	}
	d.SetText(el.Values[index], text)
	return true
}

// RemoveValue detaches the value at index from el.
func (d *Document) RemoveValue(el *Element, index int) bool {
	if index < 0 || index >= len(el.Values) {
		return false
	}
	el.Values = append(el.Values[:index], el.Values[index+1:]...)
	return true
}

// AddComment attaches a new trailing comment to el. A leading "# " is added
// when text does not start with a hash.
func (d *Document) AddComment(el *Element, text string) TokenID {
	id := d.NewToken(KindComment, commentText(text))
	el.Comments = append(el.Comments, id)
	return id
}

// LibraryName returns the imported name of a Library setting.
func (d *Document) LibraryName(el *Element) (string, bool) {
	if d.Kind(el.Decl) != KindSettingLibrary || len(el.Values) == 0 {
		return "", false
	}
	return d.Text(el.Values[0]), true
}

// LibraryAlias returns the alias of a Library setting imported WITH NAME.
func (d *Document) LibraryAlias(el *Element) (string, bool) {
	if d.Kind(el.Decl) != KindSettingLibrary {
		return "", false
	}
	for idx, id := range el.Values {
		if d.Kind(id) == KindLibraryAlias && idx+1 < len(el.Values) {
			return d.Text(el.Values[idx+1]), true
		}
	}
	return "", false
}

func commentText(text string) string {
	if strings.HasPrefix(text, "#") {
		return text
	}
	return "# " + text
}
