package dump

import (
	"strings"

	"github.com/yaklabco/robotxt/pkg/rfmodel"
)

// lineBreakContinuation is the text of a legacy cell that stands for a
// line break followed by a continuation marker. It is honoured as is.
const lineBreakContinuation = "\n..."

const continuationMarker = "..."

// synthesizer writes one element from its tokens.
type synthesizer struct {
	doc      *rfmodel.Document
	w        *writer
	style    style
	body     bool
	reformat bool
	maxWidth int

	// indent is the layout written before the first cell of the element,
	// reused in front of continuation markers.
	indent string

	// cells counts the cells on the current output line.
	cells int
}

func (s *synthesizer) element(el *rfmodel.Element) {
	if el.Kind == rfmodel.ElementEmptyLine {
		s.w.closeLine()
		s.w.endLine(s.w.defEOL)
		return
	}

	items := s.logicalOrder(el)
	if len(items) == 0 {
		return
	}

	s.start(items[0])
	atHead := false

	for idx := 1; idx < len(items); idx++ {
		prev, cur := items[idx-1], items[idx]
		tok := s.doc.Token(cur)

		if tok.Text == lineBreakContinuation {
			s.breakLine(prev, cur)
			atHead = true
			continue
		}

		switch {
		case atHead:
		case s.needsBreak(prev, cur):
			s.breakLine(prev, cur)
		default:
			s.w.write(s.separator(prev, cur))
		}
		atHead = false
		s.cell(cur)
	}

	s.finish(el, items[len(items)-1])
}

// logicalOrder lists the declaration and values, with each positioned
// comment placed before the first value that follows it in the source.
// Remaining comments go last.
func (s *synthesizer) logicalOrder(el *rfmodel.Element) []rfmodel.TokenID {
	items := make([]rfmodel.TokenID, 0, 1+len(el.Values)+len(el.Comments))
	if el.Decl != rfmodel.NoToken {
		items = append(items, el.Decl)
	}

	comments := el.Comments
	for _, id := range el.Values {
		pos := s.doc.Token(id).Pos
		for len(comments) > 0 && pos.IsSet() && s.doc.Token(comments[0]).Pos.IsBefore(pos) {
			items = append(items, comments[0])
			comments = comments[1:]
		}
		items = append(items, id)
	}

	return append(items, comments...)
}

// start opens the line for the first cell: either continuing the current
// output line after the token that precedes it in the source, or on a
// fresh line with the source or default indentation.
func (s *synthesizer) start(first rfmodel.TokenID) {
	if !s.reformat && s.w.open {
		if layout, ok := s.layoutAfter(s.w.last, first); ok {
			s.indent = s.defaultIndent()
			s.w.write(layout)
			s.cell(first)
			return
		}
	}

	s.w.closeLine()
	s.indent = s.defaultIndent()
	if layout, ok := s.leadingLayout(first); ok {
		s.w.write(layout)
		if !strings.Contains(layout, continuationMarker) {
			s.indent = layout
		}
	} else {
		s.w.write(s.indent)
	}
	s.cell(first)
}

func (s *synthesizer) cell(id rfmodel.TokenID) {
	s.w.token(id, s.render(id))
	s.cells++
}

// render returns the text written for a token: the source bytes of clean
// tokens, escaped logical text otherwise.
func (s *synthesizer) render(id rfmodel.TokenID) string {
	tok := s.doc.Token(id)
	if tok.Clean() && !s.reformat {
		return tok.Raw
	}
	if tok.Kind == rfmodel.KindComment {
		return tok.Text
	}
	return rfmodel.Escape(tok.Text, s.style.dialect)
}

func (s *synthesizer) defaultIndent() string {
	switch {
	case s.style.dialect == rfmodel.DialectPipe && s.body:
		return "|  | "
	case s.style.dialect == rfmodel.DialectPipe:
		return "| "
	case s.style.dialect == rfmodel.DialectTab && s.body:
		return "\t"
	case s.body:
		return s.style.separator
	default:
		return ""
	}
}

// needsBreak decides whether cur starts a new physical line: after a
// comment, where the source had a line break between the two tokens, or
// when a new cell would overflow the maximum width.
func (s *synthesizer) needsBreak(prev, cur rfmodel.TokenID) bool {
	prevTok, curTok := s.doc.Token(prev), s.doc.Token(cur)

	if prevTok.Kind == rfmodel.KindComment {
		return true
	}
	if prevTok.Pos.IsSet() && curTok.Pos.IsSet() && curTok.Pos.Line > prevTok.Pos.Line {
		return true
	}
	if s.maxWidth > 0 && s.cells > 1 && (s.reformat || curTok.Dirty || curTok.Pos.IsNotSet()) {
		next := s.w.width + textWidth(s.separator(prev, cur)) + textWidth(s.render(cur))
		return next > s.maxWidth
	}
	return false
}

// breakLine ends the current line after prev and writes the continuation
// marker for cur.
func (s *synthesizer) breakLine(prev, cur rfmodel.TokenID) {
	s.w.write(s.trailingLayout(prev))
	s.w.endLine(s.eolAfter(prev, true))

	if layout, ok := s.leadingLayout(cur); ok && strings.Contains(layout, continuationMarker) {
		s.w.write(layout)
	} else {
		s.w.write(s.indent + continuationMarker + s.style.separator)
	}
	s.cells = 0
}

// finish terminates the last line of the element, unless the source line
// goes on with a token of another element that will continue it.
func (s *synthesizer) finish(el *rfmodel.Element, last rfmodel.TokenID) {
	if !s.reformat && s.followedByForeign(el, last) {
		return
	}
	s.w.write(s.trailingLayout(last))
	s.w.endLine(s.eolAfter(last, false))
}

// separator returns the layout between two cells on the same line.
func (s *synthesizer) separator(prev, cur rfmodel.TokenID) string {
	if !s.reformat {
		if layout, ok := s.layoutAfter(prev, cur); ok {
			return layout
		}
		if layout, ok := s.interiorSeparator(prev, 1); ok {
			return layout
		}
		if layout, ok := s.interiorSeparator(prev, -1); ok {
			return layout
		}
		if layout, ok := s.interiorSeparator(cur, -1); ok {
			return layout
		}
	}
	return s.style.separator
}

// layoutAfter returns the source layout between prev and cur when cur
// directly follows prev on the same line.
func (s *synthesizer) layoutAfter(prev, cur rfmodel.TokenID) (string, bool) {
	line, from := s.doc.LineOf(prev)
	if line == nil {
		return "", false
	}

	var sb strings.Builder
	for _, id := range line.Elements[from+1:] {
		if id == cur {
			return sb.String(), true
		}
		tok := s.doc.Token(id)
		if !tok.Kind.IsLayout() {
			return "", false
		}
		sb.WriteString(tok.Raw)
	}
	return "", false
}

// interiorSeparator returns the separator on the given side of a token if
// it sits between two cells of its source line.
func (s *synthesizer) interiorSeparator(id rfmodel.TokenID, side int) (string, bool) {
	line, idx := s.doc.LineOf(id)
	if line == nil {
		return "", false
	}

	sep, other := idx+side, idx+2*side
	if other < 0 || other >= len(line.Elements) {
		return "", false
	}
	if s.doc.Kind(line.Elements[sep]) != rfmodel.KindSeparator || s.doc.Kind(line.Elements[other]).IsLayout() {
		return "", false
	}
	return s.doc.Token(line.Elements[sep]).Raw, true
}

// leadingLayout returns the source layout in front of a token that starts
// its line.
func (s *synthesizer) leadingLayout(id rfmodel.TokenID) (string, bool) {
	if s.reformat {
		return "", false
	}
	line, idx := s.doc.LineOf(id)
	if line == nil {
		return "", false
	}

	var sb strings.Builder
	for _, el := range line.Elements[:idx] {
		tok := s.doc.Token(el)
		if !tok.Kind.IsLayout() {
			return "", false
		}
		sb.WriteString(tok.Raw)
	}
	return sb.String(), true
}

// trailingLayout returns what follows the last cell of a line: the source
// layout when the token ended its line, else the closing pipe of the
// dialect.
func (s *synthesizer) trailingLayout(id rfmodel.TokenID) string {
	if !s.reformat {
		if line, idx := s.doc.LineOf(id); line != nil {
			var sb strings.Builder
			onlyLayout := true
			for _, el := range line.Elements[idx+1:] {
				tok := s.doc.Token(el)
				if !tok.Kind.IsLayout() {
					onlyLayout = false
					break
				}
				sb.WriteString(tok.Raw)
			}
			if onlyLayout {
				return sb.String()
			}
		}
	}

	if s.style.dialect == rfmodel.DialectPipe {
		return " |"
	}
	return ""
}

// eolAfter returns the terminator after a token. Inside an element a real
// newline is required; at its end the source terminator is kept even when
// the source line ended the file without one. New tokens at the end of an
// element take the terminator of the last source line written.
func (s *synthesizer) eolAfter(id rfmodel.TokenID, inside bool) string {
	if !s.reformat {
		line, _ := s.doc.LineOf(id)
		if line == nil && !inside {
			line = s.doc.Line(s.w.lastLine)
		}
		if line != nil && (line.EOL.Terminates() || !inside) {
			return line.EOL.Raw
		}
	}
	return s.w.defEOL
}

// followedByForeign reports whether the source line of last continues with
// a cell that does not belong to el.
func (s *synthesizer) followedByForeign(el *rfmodel.Element, last rfmodel.TokenID) bool {
	line, idx := s.doc.LineOf(last)
	if line == nil {
		return false
	}

	for _, id := range line.Elements[idx+1:] {
		if s.doc.Kind(id).IsLayout() {
			continue
		}
		return !owns(el, id)
	}
	return false
}

func owns(el *rfmodel.Element, id rfmodel.TokenID) bool {
	for _, own := range el.TokenIDs() {
		if own == id {
			return true
		}
	}
	return false
}
