package parser

import (
	"strings"

	"github.com/yaklabco/robotxt/pkg/rfmodel"
)

// deriveLayout sets the dialect and preferred separator of a section from
// the separators between its cells.
func (a *assembler) deriveLayout(span sectionSpan, lines []rfmodel.Line) {
	sec := span.section
	if span.pipe {
		sec.Dialect = rfmodel.DialectPipe
		return
	}

	var tabs, spaces int
	counts := make(map[string]int)
	var order []string

	for _, line := range lines {
		for idx, id := range line.Elements {
			if idx == 0 || idx == len(line.Elements)-1 {
				continue
			}
			tok := a.doc.Token(id)
			if tok.Kind != rfmodel.KindSeparator || strings.Contains(tok.Raw, "|") {
				continue
			}
			if strings.Contains(tok.Raw, "\t") {
				tabs++
				continue
			}
			spaces++
			if counts[tok.Raw] == 0 {
				order = append(order, tok.Raw)
			}
			counts[tok.Raw]++
		}
	}

	if tabs > spaces {
		sec.Dialect = rfmodel.DialectTab
		return
	}

	best := 0
	for _, raw := range order {
		if counts[raw] > best {
			best = counts[raw]
			sec.Separator = raw
		}
	}
}

// dominantLineSeparator returns the most frequent terminator, preferring LF
// on ties.
func dominantLineSeparator(lines []rfmodel.Line) string {
	counts := make(map[rfmodel.EOLKind]int)
	for _, line := range lines {
		counts[line.EOL.Kind]++
	}

	best, sep := counts[rfmodel.EOLLF], "\n"
	if counts[rfmodel.EOLCRLF] > best {
		best, sep = counts[rfmodel.EOLCRLF], "\r\n"
	}
	if counts[rfmodel.EOLCR] > best {
		sep = "\r"
	}
	return sep
}
