package dump

import (
	"strings"

	"github.com/apparentlymart/go-textseg/v13/textseg"
	"github.com/yaklabco/robotxt/pkg/rfmodel"
)

// writer accumulates output and tracks the state of the current physical
// output line.
type writer struct {
	doc    *rfmodel.Document
	buf    strings.Builder
	defEOL string

	// open is set while the current output line has content and no
	// terminator.
	open bool

	// width is the character count of the current output line.
	width int

	// last is the most recent element token written, lastLine the source
	// line of the most recent positioned one.
	last     rfmodel.TokenID
	lastLine int
}

func newWriter(doc *rfmodel.Document, eol string) *writer {
	return &writer{doc: doc, defEOL: eol, last: rfmodel.NoToken}
}

func (w *writer) bytes() []byte {
	return []byte(w.buf.String())
}

func (w *writer) write(text string) {
	if text == "" {
		return
	}
	w.buf.WriteString(text)
	w.open = true
	w.width += textWidth(text)
}

func (w *writer) token(id rfmodel.TokenID, text string) {
	w.write(text)
	w.last = id
	if tok := w.doc.Token(id); tok != nil && tok.Pos.IsSet() {
		w.lastLine = tok.Pos.Line
	}
}

// endLine writes a terminator. An empty terminator keeps the line open, as
// for the last line of a file without a trailing newline.
func (w *writer) endLine(eol string) {
	if eol == "" {
		return
	}
	w.buf.WriteString(eol)
	w.open = false
	w.width = 0
	w.last = rfmodel.NoToken
}

// closeLine terminates an open line before a new element starts so that
// elements never merge onto one physical line.
func (w *writer) closeLine() {
	if !w.open {
		return
	}
	w.endLine(w.breakEOL())
}

// breakEOL returns the terminator of the source line of the last written
// token, or the default one.
func (w *writer) breakEOL() string {
	if line := w.doc.Line(w.lastLine); line != nil && line.EOL.Terminates() {
		return line.EOL.Raw
	}
	return w.defEOL
}

// textWidth counts user-perceived characters.
func textWidth(text string) int {
	count, err := textseg.TokenCount([]byte(text), textseg.ScanGraphemeClusters)
	if err != nil {
		return len(text)
	}
	return count
}
