package parser

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/yaklabco/robotxt/pkg/recognize"
	"github.com/yaklabco/robotxt/pkg/rfmodel"
)

// pendingLine is a blank or comment-only line whose owner is decided by the
// next line: a continuation absorbs it into the open element.
type pendingLine struct {
	number  int
	comment rfmodel.TokenID
}

// lineTokens is a physical line after its pieces became arena tokens.
type lineTokens struct {
	cells        []rfmodel.TokenID
	comment      rfmodel.TokenID
	header       rfmodel.TokenID
	continuation bool
	indented     bool
}

// sectionSpan remembers which physical lines a section was parsed from.
type sectionSpan struct {
	section   *rfmodel.Section
	firstLine int
	pipe      bool
}

// assembler runs the section state machine over tokenized lines.
type assembler struct {
	doc    *rfmodel.Document
	reg    *recognize.Registry
	logger *log.Logger

	section    *rfmodel.Section
	definition *rfmodel.Element
	open       *rfmodel.Element
	pending    []pendingLine
	spans      []sectionSpan
}

func newAssembler(reg *recognize.Registry, logger *log.Logger) *assembler {
	return &assembler{doc: rfmodel.NewDocument(), reg: reg, logger: logger}
}

func (a *assembler) addLine(raw *rawLine) {
	lt := a.emitTokens(raw)

	switch {
	case lt.header != rfmodel.NoToken:
		a.flushPending()
		a.startSection(raw, lt)
	case len(lt.cells) == 0 && lt.comment == rfmodel.NoToken:
		a.ensureSection(raw)
		a.pending = append(a.pending, pendingLine{number: raw.number, comment: rfmodel.NoToken})
	case lt.continuation && a.open != nil:
		a.extend(lt)
	case len(lt.cells) == 0:
		a.ensureSection(raw)
		a.pending = append(a.pending, pendingLine{number: raw.number, comment: lt.comment})
	default:
		a.ensureSection(raw)
		a.flushPending()
		a.addElement(lt)
	}
}

// emitTokens stores the pieces of raw in the arena and records the line.
func (a *assembler) emitTokens(raw *rawLine) lineTokens {
	lt := lineTokens{comment: rfmodel.NoToken, header: rfmodel.NoToken}
	line := rfmodel.Line{
		Number: raw.number,
		Offset: raw.offset,
		Length: len(raw.content),
		EOL:    raw.eol,
	}

	for idx, pc := range raw.pieces {
		tok := rfmodel.Token{
			Raw: pc.raw,
			Pos: rfmodel.FilePosition{
				Line:   raw.number,
				Column: pc.start,
				Offset: raw.offset + pc.start,
			},
		}

		switch pc.kind {
		case pieceSeparator:
			tok.Kind = rfmodel.KindSeparator
			tok.Text = pc.raw
			if idx == 0 && pc.start == 0 {
				lt.indented = isIndent(pc.raw, raw.pipe)
			}
		case pieceContinuation:
			tok.Kind = rfmodel.KindContinuation
			tok.Text = pc.raw
			lt.continuation = true
		case pieceComment:
			tok.Kind = rfmodel.KindComment
			tok.Text = pc.raw
		case pieceHeader:
			tok.Kind = pc.header
			tok.Text = pc.raw
		case pieceCell:
			tok.Kind = rfmodel.KindUnknown
			tok.Text = rfmodel.Unescape(pc.raw)
		}

		id := a.doc.AddToken(tok)
		line.Elements = append(line.Elements, id)

		switch pc.kind {
		case pieceCell:
			lt.cells = append(lt.cells, id)
		case pieceComment:
			lt.comment = id
		case pieceHeader:
			lt.header = id
		}
	}

	a.doc.Lines = append(a.doc.Lines, line)
	return lt
}

// isIndent reports whether a leading separator pushes the first cell out of
// the name column.
func isIndent(raw string, pipe bool) bool {
	if pipe {
		return strings.Count(raw, "|") > 1
	}
	return raw != ""
}

// ensureSection opens the implicit section for content before any header.
func (a *assembler) ensureSection(raw *rawLine) {
	if a.section != nil {
		return
	}
	a.section = &rfmodel.Section{Kind: rfmodel.SectionNone}
	a.doc.Sections = append(a.doc.Sections, a.section)
	a.spans = append(a.spans, sectionSpan{section: a.section, firstLine: raw.number, pipe: raw.pipe})
}

func (a *assembler) startSection(raw *rawLine, lt lineTokens) {
	headerKind := a.doc.Kind(lt.header)
	sec := &rfmodel.Section{Kind: rfmodel.SectionKindForHeader(headerKind)}
	if raw.pipe {
		sec.Dialect = rfmodel.DialectPipe
	}

	sec.Header = &rfmodel.Element{Kind: rfmodel.ElementHeader, Decl: lt.header}
	a.appendCells(sec.Header, lt.cells, lt.comment)

	if headerKind == rfmodel.KindHeaderUnknown && a.logger != nil {
		a.logger.Debug("unrecognized section header kept as comments",
			"line", raw.number, "header", a.doc.Text(lt.header))
	}

	a.doc.Sections = append(a.doc.Sections, sec)
	a.spans = append(a.spans, sectionSpan{section: sec, firstLine: raw.number, pipe: raw.pipe})
	a.section = sec
	a.definition = nil
	a.open = sec.Header
}

// place adds a standalone line to the current definition body, or to the
// section outside of definitions.
func (a *assembler) place(el *rfmodel.Element) {
	if a.section.Kind.HasDefinitions() && a.definition != nil {
		a.definition.AddChild(el)
		return
	}
	a.section.AddElement(el)
}

func (a *assembler) flushPending() {
	for _, pl := range a.pending {
		if pl.comment == rfmodel.NoToken {
			a.place(&rfmodel.Element{Kind: rfmodel.ElementEmptyLine, Decl: rfmodel.NoToken, SourceLine: pl.number})
			continue
		}
		a.place(&rfmodel.Element{Kind: rfmodel.ElementComment, Decl: pl.comment})
	}
	a.pending = a.pending[:0]
}

// extend appends a continuation line to the open element. Lines skipped
// since the element was opened belong to it as well.
func (a *assembler) extend(lt lineTokens) {
	for _, pl := range a.pending {
		if pl.comment != rfmodel.NoToken {
			a.open.Comments = append(a.open.Comments, pl.comment)
		}
	}
	a.pending = a.pending[:0]

	a.appendCells(a.open, lt.cells, lt.comment)
	a.classify(a.open)
}

func (a *assembler) appendCells(el *rfmodel.Element, cells []rfmodel.TokenID, comment rfmodel.TokenID) {
	el.Values = append(el.Values, cells...)
	if comment != rfmodel.NoToken {
		el.Comments = append(el.Comments, comment)
	}
	a.classify(el)
}

func (a *assembler) addElement(lt lineTokens) {
	switch a.section.Kind {
	case rfmodel.SectionSettings:
		a.open = a.newElement(rfmodel.ElementSetting, lt.cells, lt.comment)
		a.section.AddElement(a.open)
	case rfmodel.SectionVariables:
		a.open = a.newElement(rfmodel.ElementVariable, lt.cells, lt.comment)
		a.section.AddElement(a.open)
	case rfmodel.SectionTestCases, rfmodel.SectionTasks, rfmodel.SectionKeywords:
		a.addDefinitionLine(lt)
	default:
		a.section.AddElement(a.newElement(rfmodel.ElementComment, lt.cells, lt.comment))
		a.open = nil
	}
}

// addDefinitionLine handles lines of test case, task and keyword tables.
// A cell in the name column starts a definition; the rest of its line and
// every indented line form its body. A leading "\" continues an old-style
// for loop and never names a new definition.
func (a *assembler) addDefinitionLine(lt lineTokens) {
	first := a.doc.Token(lt.cells[0])
	startsDefinition := !lt.indented && !lt.continuation && first.Raw != rfmodel.EmptyCell

	if !startsDefinition {
		a.addBodyElement(lt.cells, lt.comment)
		return
	}

	def := &rfmodel.Element{Kind: rfmodel.ElementDefinition, Decl: lt.cells[0]}
	first.Kind = a.section.Kind.DefinitionKind()
	a.section.AddElement(def)
	a.definition = def
	a.open = nil

	if len(lt.cells) == 1 {
		if lt.comment != rfmodel.NoToken {
			def.Comments = append(def.Comments, lt.comment)
		}
		return
	}
	a.addBodyElement(lt.cells[1:], lt.comment)
}

func (a *assembler) addBodyElement(cells []rfmodel.TokenID, comment rfmodel.TokenID) {
	kind := rfmodel.ElementExecutableRow
	if isBracketed(a.doc.Token(cells[0]).Raw) {
		kind = rfmodel.ElementLocalSetting
	}

	el := a.newElement(kind, cells, comment)
	if a.definition != nil {
		a.definition.AddChild(el)
	} else {
		a.section.AddElement(el)
	}
	a.open = el
}

func isBracketed(raw string) bool {
	raw = strings.TrimSuffix(strings.TrimSpace(raw), ":")
	return strings.HasPrefix(raw, "[") && strings.HasSuffix(strings.TrimSpace(raw), "]")
}

func (a *assembler) newElement(kind rfmodel.ElementKind, cells []rfmodel.TokenID, comment rfmodel.TokenID) *rfmodel.Element {
	el := &rfmodel.Element{Kind: kind, Decl: cells[0]}
	a.appendCells(el, cells[1:], comment)
	return el
}

// finish flushes the pending lines and derives per-section layout facts.
func (a *assembler) finish() *rfmodel.Document {
	if a.section != nil {
		a.flushPending()
	}

	for idx, span := range a.spans {
		last := len(a.doc.Lines)
		if idx+1 < len(a.spans) {
			last = a.spans[idx+1].firstLine - 1
		}
		a.deriveLayout(span, a.doc.Lines[span.firstLine-1:last])
	}
	a.doc.LineSeparator = dominantLineSeparator(a.doc.Lines)

	return a.doc
}
