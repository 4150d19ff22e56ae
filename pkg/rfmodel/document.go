package rfmodel

import "slices"

// DefaultLineSeparator terminates new lines when the source has none.
const DefaultLineSeparator = "\n"

// Document is the parsed model of one file. It owns the token arena, the
// physical lines and the sections.
type Document struct {
	// Path is informational and may be empty.
	Path string

	// Tokens is the arena. A TokenID indexes into it and stays valid for the
	// lifetime of the document.
	Tokens []Token

	// Lines are the physical lines of the source in order. They are never
	// changed by mutations; edits only touch tokens and elements.
	Lines []Line

	// Sections in file order. The first one is SectionNone when the file has
	// content before its first header.
	Sections []*Section

	// LineSeparator is the dominant terminator of the source.
	LineSeparator string
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{LineSeparator: DefaultLineSeparator}
}

// Token returns the token with the given id, or nil.
func (d *Document) Token(id TokenID) *Token {
	if id < 0 || int(id) >= len(d.Tokens) {
		return nil
	}
	return &d.Tokens[id]
}

// Text returns the logical text of a token, or "" for an unknown id.
func (d *Document) Text(id TokenID) string {
	if tok := d.Token(id); tok != nil {
		return tok.Text
	}
	return ""
}

// Kind returns the kind of a token, or KindUnknown for an unknown id.
func (d *Document) Kind(id TokenID) TokenKind {
	if tok := d.Token(id); tok != nil {
		return tok.Kind
	}
	return KindUnknown
}

// AddToken stores tok in the arena and returns its id.
func (d *Document) AddToken(tok Token) TokenID {
	d.Tokens = append(d.Tokens, tok)
	return TokenID(len(d.Tokens) - 1)
}

// NewToken creates an unpositioned dirty token.
func (d *Document) NewToken(kind TokenKind, text string) TokenID {
	return d.AddToken(Token{Kind: kind, Text: text, Raw: text, Pos: NotSet, Dirty: true})
}

// Line returns the physical line with the 1-based number n, or nil.
func (d *Document) Line(n int) *Line {
	if n < 1 || n > len(d.Lines) {
		return nil
	}
	return &d.Lines[n-1]
}

// LineOf locates a positioned token: its physical line and its index in the
// line elements. It returns (nil, -1) for tokens that are not on any line.
func (d *Document) LineOf(id TokenID) (*Line, int) {
	tok := d.Token(id)
	if tok == nil || tok.Pos.IsNotSet() {
		return nil, -1
	}
	line := d.Line(tok.Pos.Line)
	if line == nil {
		return nil, -1
	}
	idx := line.IndexOf(id)
	if idx < 0 {
		return nil, -1
	}
	return line, idx
}

// Owns reports whether sec belongs to the document.
func (d *Document) Owns(sec *Section) bool {
	return sec != nil && slices.Contains(d.Sections, sec)
}

// Section returns the first section of the given kind, or nil.
func (d *Document) Section(kind SectionKind) *Section {
	for _, sec := range d.Sections {
		if sec.Kind == kind {
			return sec
		}
	}
	return nil
}

// AddSection appends a new section with a synthesized header.
func (d *Document) AddSection(kind SectionKind, dialect Dialect) *Section {
	sec := &Section{Kind: kind, Dialect: dialect}
	if kind != SectionNone {
		sec.Header = &Element{
			Kind: ElementHeader,
			Decl: d.NewToken(kind.HeaderKind(), "*** "+kind.String()+" ***"),
		}
	}
	d.Sections = append(d.Sections, sec)
	return sec
}

// RemoveSection detaches sec. It reports whether sec was found.
func (d *Document) RemoveSection(sec *Section) bool {
	idx := slices.Index(d.Sections, sec)
	if idx < 0 {
		return false
	}
	d.Sections = slices.Delete(d.Sections, idx, idx+1)
	return true
}

// TokensOf resolves ids against the arena.
func (d *Document) TokensOf(ids []TokenID) []*Token {
	out := make([]*Token, 0, len(ids))
	for _, id := range ids {
		if tok := d.Token(id); tok != nil {
			out = append(out, tok)
		}
	}
	return out
}

// WalkFunc is called for every element. parent is the enclosing definition
// for body elements and nil otherwise. Return false to stop the walk.
type WalkFunc func(sec *Section, parent, el *Element) bool

// Walk visits headers, elements and definition bodies in document order.
func (d *Document) Walk(fn WalkFunc) {
	for _, sec := range d.Sections {
		if sec.Header != nil && !fn(sec, nil, sec.Header) {
			return
		}
		for _, el := range sec.Elements {
			if !fn(sec, nil, el) {
				return
			}
			for _, child := range el.Body {
				if !fn(sec, el, child) {
					return
				}
			}
		}
	}
}
