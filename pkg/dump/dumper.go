// Package dump serializes rfmodel documents back to text.
//
// Every element is either replayed or synthesized. Replay copies the
// element's physical lines from the source, separators and terminators
// included, and is used whenever ReplayEligible holds and the source lines
// contain nothing foreign. Synthesis writes the element from its tokens,
// reusing source separators next to untouched tokens and the section's
// dialect defaults everywhere else.
package dump

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/robotxt/internal/logging"
	"github.com/yaklabco/robotxt/pkg/rfmodel"
)

// Options configures a Dumper.
type Options struct {
	// MaxLineWidth breaks synthesized cells onto continuation lines once a
	// line would grow past this many characters. Zero disables wrapping.
	MaxLineWidth int

	// Separator overrides the separator for new cells in space separated
	// sections.
	Separator string

	// LineSeparator terminates new lines. Defaults to the document's.
	LineSeparator string

	// Reformat ignores source layout and synthesizes every element.
	Reformat bool

	// Dialect, when ForceDialect is set, replaces the dialect of every
	// section. It only has a visible effect together with Reformat.
	Dialect      rfmodel.Dialect
	ForceDialect bool

	// Logger receives debug output. Defaults to a discarding logger.
	Logger *log.Logger
}

// Dumper writes documents. It never modifies the documents it reads.
type Dumper struct {
	opts   Options
	logger *log.Logger
}

// New creates a Dumper.
func New(opts Options) *Dumper {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Dumper{opts: opts, logger: logger}
}

// Dump serializes the whole document.
func (d *Dumper) Dump(doc *rfmodel.Document) []byte {
	w := newWriter(doc, d.lineSeparator(doc))
	for _, sec := range doc.Sections {
		d.dumpSection(w, doc, sec)
	}
	return w.bytes()
}

// DumpSection serializes a single section. It panics when sec does not
// belong to doc.
func (d *Dumper) DumpSection(doc *rfmodel.Document, sec *rfmodel.Section) []byte {
	if !doc.Owns(sec) {
		panic(fmt.Sprintf("dump: %s section is not owned by document %q", sec.Kind, doc.Path))
	}
	w := newWriter(doc, d.lineSeparator(doc))
	d.dumpSection(w, doc, sec)
	return w.bytes()
}

// Dump serializes doc with default options.
func Dump(doc *rfmodel.Document) []byte {
	return New(Options{}).Dump(doc)
}

func (d *Dumper) lineSeparator(doc *rfmodel.Document) string {
	if d.opts.LineSeparator != "" {
		return d.opts.LineSeparator
	}
	if doc.LineSeparator != "" {
		return doc.LineSeparator
	}
	return rfmodel.DefaultLineSeparator
}

func (d *Dumper) dumpSection(w *writer, doc *rfmodel.Document, sec *rfmodel.Section) {
	style := d.styleFor(sec)

	if sec.Header != nil {
		d.dumpElement(w, doc, style, sec.Header, false)
	}
	for _, el := range sec.Elements {
		d.dumpElement(w, doc, style, el, false)
		for _, child := range el.Body {
			d.dumpElement(w, doc, style, child, true)
		}
	}
}

func (d *Dumper) dumpElement(w *writer, doc *rfmodel.Document, style style, el *rfmodel.Element, body bool) {
	if !d.opts.Reformat && ReplayEligible(doc, el) {
		if p, ok := planReplay(doc, w, el); ok {
			p.commit(w)
			return
		}
		d.logger.Debug("replay aborted, synthesizing element",
			logging.FieldElement, el.Kind, logging.FieldDeclaration, doc.Text(el.Decl))
	}

	s := synthesizer{doc: doc, w: w, style: style, body: body, reformat: d.opts.Reformat, maxWidth: d.opts.MaxLineWidth}
	s.element(el)
}

// style is the per-section layout used for synthesized text.
type style struct {
	dialect   rfmodel.Dialect
	separator string
}

func (d *Dumper) styleFor(sec *rfmodel.Section) style {
	st := style{dialect: sec.Dialect, separator: sec.CellSeparator()}
	if d.opts.ForceDialect {
		st.dialect = d.opts.Dialect
		st.separator = d.opts.Dialect.DefaultSeparator()
		if sec.Dialect == d.opts.Dialect {
			st.separator = sec.CellSeparator()
		}
	}
	if st.dialect == rfmodel.DialectSpace && d.opts.Separator != "" {
		st.separator = d.opts.Separator
	}
	return st
}
