package rfmodel

// TokenID addresses a token in a Document's arena.
type TokenID int

// NoToken is the zero reference for optional token slots.
const NoToken TokenID = -1

// Token is the minimal positioned lexical unit.
type Token struct {
	// Kind classifies the token.
	Kind TokenKind

	// Text is the logical value with structural escapes resolved.
	Text string

	// Raw is the literal source text. For synthesized tokens it mirrors Text
	// and is not used for serialization.
	Raw string

	// Pos is where Raw starts in the source, or NotSet.
	Pos FilePosition

	// Dirty marks tokens created or edited after parsing.
	Dirty bool
}

// End returns the exclusive end position of the token's source text.
func (t *Token) End() FilePosition {
	if t.Pos.IsNotSet() {
		return NotSet
	}
	return FilePosition{
		Line:   t.Pos.Line,
		Column: t.Pos.Column + len(t.Raw),
		Offset: t.Pos.Offset + len(t.Raw),
	}
}

// Clean reports whether the token can be replayed from source.
func (t *Token) Clean() bool {
	return !t.Dirty && t.Pos.IsSet()
}
