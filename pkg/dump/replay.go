package dump

import "github.com/yaklabco/robotxt/pkg/rfmodel"

// ReplayEligible reports whether el may be copied verbatim from the source:
// the declaration and every value and comment are clean and positioned,
// values follow the declaration in strictly increasing source order, and so
// do comments. It only reads the model.
func ReplayEligible(doc *rfmodel.Document, el *rfmodel.Element) bool {
	if el.Kind == rfmodel.ElementEmptyLine {
		return el.SourceLine > 0 && doc.Line(el.SourceLine) != nil
	}

	decl := doc.Token(el.Decl)
	if decl == nil || !decl.Clean() {
		return false
	}

	return increasing(doc, decl, el.Values) && increasing(doc, decl, el.Comments)
}

func increasing(doc *rfmodel.Document, prev *rfmodel.Token, ids []rfmodel.TokenID) bool {
	for _, id := range ids {
		tok := doc.Token(id)
		if tok == nil || !tok.Clean() || !prev.Pos.IsBefore(tok.Pos) {
			return false
		}
		prev = tok
	}
	return true
}

// op is one write of a replay plan.
type op struct {
	text string
	id   rfmodel.TokenID
	eol  bool
}

// replayPlan is a complete verbatim rendition of one element. It is built
// before anything is written so that a failed replay leaves no output.
type replayPlan struct {
	ops []op

	// midLine is set when the element continues the current output line.
	midLine bool
}

func (p replayPlan) commit(w *writer) {
	if !p.midLine {
		w.closeLine()
	}
	for _, o := range p.ops {
		switch {
		case o.eol:
			w.endLine(o.text)
		case o.id != rfmodel.NoToken:
			w.token(o.id, o.text)
		default:
			w.write(o.text)
		}
	}
}

// planReplay walks the source lines of el from its first token and copies
// them until every token of el is written. The walk fails on a token that
// belongs to something else while tokens of el remain; after the last one
// it stops at such a token and leaves the output line open for its owner.
func planReplay(doc *rfmodel.Document, w *writer, el *rfmodel.Element) (replayPlan, bool) {
	if el.Kind == rfmodel.ElementEmptyLine {
		return planEmptyLine(doc, el)
	}

	own := make(map[rfmodel.TokenID]bool)
	for _, id := range el.TokenIDs() {
		own[id] = true
	}

	line, idx := doc.LineOf(el.Decl)
	if line == nil {
		return replayPlan{}, false
	}

	var plan replayPlan
	start := idx
	for start > 0 && doc.Kind(line.Elements[start-1]).IsLayout() {
		start--
	}
	if start > 0 {
		if !w.open || w.last != line.Elements[start-1] {
			return replayPlan{}, false
		}
		plan.midLine = true
	}

	remaining := len(own)
	for {
		var layout []op
		for _, id := range line.Elements[start:] {
			tok := doc.Token(id)
			if tok.Kind.IsLayout() {
				layout = append(layout, op{text: tok.Raw, id: rfmodel.NoToken})
				continue
			}
			if !own[id] {
				if remaining > 0 {
					return replayPlan{}, false
				}
				return plan, true
			}
			plan.ops = append(plan.ops, layout...)
			plan.ops = append(plan.ops, op{text: tok.Raw, id: id})
			layout = nil
			delete(own, id)
			remaining--
		}

		plan.ops = append(plan.ops, layout...)
		plan.ops = append(plan.ops, op{text: line.EOL.Raw, eol: true})
		if remaining == 0 {
			return plan, true
		}

		line = doc.Line(line.Number + 1)
		if line == nil {
			return replayPlan{}, false
		}
		start = 0
	}
}

// planEmptyLine copies a blank source line, whitespace included.
func planEmptyLine(doc *rfmodel.Document, el *rfmodel.Element) (replayPlan, bool) {
	line := doc.Line(el.SourceLine)
	var plan replayPlan

	for _, id := range line.Elements {
		tok := doc.Token(id)
		if !tok.Kind.IsLayout() {
			return replayPlan{}, false
		}
		plan.ops = append(plan.ops, op{text: tok.Raw, id: rfmodel.NoToken})
	}
	plan.ops = append(plan.ops, op{text: line.EOL.Raw, eol: true})

	return plan, true
}
