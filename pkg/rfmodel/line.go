package rfmodel

// EOLKind identifies how a physical line is terminated.
type EOLKind uint8

const (
	// EOLNone marks a line that is not terminated yet.
	EOLNone EOLKind = iota
	EOLLF
	EOLCRLF
	EOLCR
	// EOLEOF marks the last line of a file without a trailing newline.
	EOLEOF
)

// EndOfLine is the terminator of a physical line.
type EndOfLine struct {
	Kind EOLKind
	Raw  string
}

// Terminates reports whether the marker ends the line with a newline.
func (e EndOfLine) Terminates() bool {
	return e.Kind == EOLLF || e.Kind == EOLCRLF || e.Kind == EOLCR
}

// EOLFromRaw builds the marker for a newline sequence.
func EOLFromRaw(raw string) EndOfLine {
	switch raw {
	case "\n":
		return EndOfLine{Kind: EOLLF, Raw: raw}
	case "\r\n":
		return EndOfLine{Kind: EOLCRLF, Raw: raw}
	case "\r":
		return EndOfLine{Kind: EOLCR, Raw: raw}
	default:
		return EndOfLine{Kind: EOLEOF}
	}
}

// Line is one physical line of the source: every token on it, separators
// and continuation markers included, followed by exactly one end-of-line
// marker.
type Line struct {
	// Number is the 1-based line number.
	Number int

	// Offset is the byte offset of the first character.
	Offset int

	// Length is the byte length of the content without the terminator.
	Length int

	// Elements lists the tokens of the line in source order.
	Elements []TokenID

	EOL EndOfLine
}

// End returns the offset just past the line terminator.
func (l *Line) End() int {
	return l.Offset + l.Length + len(l.EOL.Raw)
}

// IndexOf returns the position of id in the line, or -1.
func (l *Line) IndexOf(id TokenID) int {
	for idx, el := range l.Elements {
		if el == id {
			return idx
		}
	}
	return -1
}
