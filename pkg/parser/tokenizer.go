package parser

import (
	"strings"

	"github.com/yaklabco/robotxt/pkg/recognize"
	"github.com/yaklabco/robotxt/pkg/rfmodel"
)

// pieceKind classifies a lexical piece of a physical line.
type pieceKind uint8

const (
	pieceSeparator pieceKind = iota
	pieceCell
	pieceComment
	pieceContinuation
	pieceHeader
)

// piece is a span of a line before classification. start is relative to
// the line start.
type piece struct {
	kind  pieceKind
	start int
	raw   string

	// header is set for pieceHeader.
	header rfmodel.TokenKind
}

// rawLine is one physical line split into pieces.
type rawLine struct {
	number  int
	offset  int
	content string
	eol     rfmodel.EndOfLine
	pipe    bool
	pieces  []piece
}

// splitLines cuts content at LF, CRLF and lone CR. A trailing terminator
// does not produce an extra empty line.
func splitLines(content string) []rawLine {
	var lines []rawLine
	start := 0

	for idx := 0; idx < len(content); idx++ {
		var eol string
		switch content[idx] {
		case '\n':
			eol = "\n"
		case '\r':
			eol = "\r"
			if idx+1 < len(content) && content[idx+1] == '\n' {
				eol = "\r\n"
			}
		default:
			continue
		}

		lines = append(lines, rawLine{
			number:  len(lines) + 1,
			offset:  start,
			content: content[start:idx],
			eol:     rfmodel.EOLFromRaw(eol),
		})
		idx += len(eol) - 1
		start = idx + 1
	}

	if start < len(content) {
		lines = append(lines, rawLine{
			number:  len(lines) + 1,
			offset:  start,
			content: content[start:],
			eol:     rfmodel.EndOfLine{Kind: rfmodel.EOLEOF},
		})
	}

	return lines
}

// tokenize fills line.pieces. Headers are recognized on the raw line so
// their words may be separated by any whitespace.
func tokenize(line *rawLine, reg *recognize.Registry) {
	text := line.content
	line.pipe = isPipeLine(text)

	if isHeaderCandidate(text) {
		tok, ok := reg.Match(recognize.ContextHeader, text, line.number, 0, 0)
		if ok {
			if tok.Pos.Column > 0 {
				line.pieces = append(line.pieces, piece{kind: pieceSeparator, raw: text[:tok.Pos.Column]})
			}
			line.pieces = append(line.pieces, piece{
				kind:   pieceHeader,
				start:  tok.Pos.Column,
				raw:    tok.Raw,
				header: tok.Kind,
			})
			end := tok.Pos.Column + len(tok.Raw)
			if line.pipe {
				line.pieces = scanPipe(text, end, true, line.pieces)
			} else {
				line.pieces = scanSpace(text, end, line.pieces)
			}
			return
		}
	}

	if line.pipe {
		line.pieces = scanPipe(text, 0, false, nil)
	} else {
		line.pieces = scanSpace(text, 0, nil)
	}
	markContinuation(line.pieces)
}

func isPipeLine(text string) bool {
	return text == "|" || (len(text) > 1 && text[0] == '|' && isSpace(text[1]))
}

func isHeaderCandidate(text string) bool {
	if strings.HasPrefix(text, "*") {
		return true
	}
	if !isPipeLine(text) {
		return false
	}
	return strings.HasPrefix(strings.TrimLeft(text[1:], " \t"), "*")
}

func isSpace(char byte) bool {
	return char == ' ' || char == '\t'
}

// skipSpace returns the index of the first non-blank byte at or after idx.
func skipSpace(text string, idx int) int {
	for idx < len(text) && isSpace(text[idx]) {
		idx++
	}
	return idx
}

// isSeparatorRun reports whether text[start:end] splits cells in the space
// and tab dialects.
func isSeparatorRun(text string, start, end int) bool {
	return start == 0 || end == len(text) || end-start >= 2 || strings.Contains(text[start:end], "\t")
}

// scanSpace splits a space or tab separated line starting at from. A blank
// run right after a header is always a separator.
func scanSpace(text string, from int, pieces []piece) []piece {
	idx := from
	for idx < len(text) {
		if isSpace(text[idx]) {
			end := skipSpace(text, idx)
			pieces = append(pieces, piece{kind: pieceSeparator, start: idx, raw: text[idx:end]})
			idx = end
			continue
		}

		if text[idx] == '#' {
			end := len(strings.TrimRight(text, " \t"))
			pieces = append(pieces, piece{kind: pieceComment, start: idx, raw: text[idx:end]})
			idx = end
			continue
		}

		end := idx
		for end < len(text) {
			if text[end] == '\\' {
				end += escapeWidth(text, end, idx, false)
				continue
			}
			if isSpace(text[end]) {
				runEnd := skipSpace(text, end)
				if isSeparatorRun(text, end, runEnd) {
					break
				}
				end = runEnd
				continue
			}
			end++
		}
		pieces = append(pieces, piece{kind: pieceCell, start: idx, raw: text[idx:end]})
		idx = end
	}
	return pieces
}

// escapeWidth returns how many bytes the escape at text[idx] covers. A
// backslash opening its cell before a separator is the empty cell marker.
// Elsewhere an escaped space stays in the cell as long as the blanks after
// it still separate cells, so "Hello\ " keeps its trailing space.
func escapeWidth(text string, idx, cellStart int, pipe bool) int {
	next := idx + 1
	if next >= len(text) {
		return 1
	}
	if !isSpace(text[next]) {
		return 2
	}

	runEnd := skipSpace(text, next)
	if !opensSeparator(text, next, runEnd, pipe) {
		return 2
	}
	if idx == cellStart || text[next] != ' ' {
		return 1
	}

	rest := next + 1
	if rest == runEnd {
		if pipe && runEnd < len(text) {
			return 1
		}
		return 2
	}
	if opensSeparator(text, rest, runEnd, pipe) {
		return 2
	}
	return 1
}

// opensSeparator reports whether the blank run text[start:end] ends a cell.
func opensSeparator(text string, start, end int, pipe bool) bool {
	if pipe {
		return end == len(text) || isPipeAt(text, end)
	}
	return isSeparatorRun(text, start, end)
}

// isPipeAt reports whether text[idx] is a pipe that separates cells.
func isPipeAt(text string, idx int) bool {
	return idx < len(text) && text[idx] == '|' && (idx+1 == len(text) || isSpace(text[idx+1]))
}

// scanPipe splits a pipe separated line. Leading empty cells are folded
// into the leading separator so that indentation stays layout; interior
// empty cells become zero-width cells. afterCell is set when from follows a
// cell and a separator is expected next.
func scanPipe(text string, from int, afterCell bool, pieces []piece) []piece {
	idx := from

	if !afterCell {
		end := skipSpace(text, idx+1)
		for isPipeAt(text, end) {
			end = skipSpace(text, end+1)
		}
		pieces = append(pieces, piece{kind: pieceSeparator, start: idx, raw: text[idx:end]})
		idx = end
	}

	for {
		if afterCell {
			end := skipSpace(text, idx)
			if isPipeAt(text, end) {
				end = skipSpace(text, end+1)
			}
			if end > idx {
				pieces = append(pieces, piece{kind: pieceSeparator, start: idx, raw: text[idx:end]})
			}
			idx = end
		}
		if idx >= len(text) {
			return pieces
		}

		switch {
		case isPipeAt(text, idx):
			pieces = append(pieces, piece{kind: pieceCell, start: idx})
			end := skipSpace(text, idx+1)
			pieces = append(pieces, piece{kind: pieceSeparator, start: idx, raw: text[idx:end]})
			idx = end
			afterCell = false
			continue
		case text[idx] == '#':
			end := pipeCommentEnd(text, idx)
			pieces = append(pieces, piece{kind: pieceComment, start: idx, raw: text[idx:end]})
			idx = end
		default:
			end := pipeCellEnd(text, idx)
			pieces = append(pieces, piece{kind: pieceCell, start: idx, raw: text[idx:end]})
			idx = end
		}
		afterCell = true
	}
}

func pipeCellEnd(text string, idx int) int {
	end := idx
	for end < len(text) {
		if text[end] == '\\' {
			end += escapeWidth(text, end, idx, true)
			continue
		}
		if isSpace(text[end]) {
			runEnd := skipSpace(text, end)
			if runEnd == len(text) || isPipeAt(text, runEnd) {
				return end
			}
			end = runEnd
			continue
		}
		end++
	}
	return end
}

// pipeCommentEnd returns the end of a comment starting at idx: the rest of
// the line without a closing pipe and trailing blanks.
func pipeCommentEnd(text string, idx int) int {
	end := len(strings.TrimRight(text, " \t"))
	if end > idx+1 && text[end-1] == '|' && isSpace(text[end-2]) {
		end = len(strings.TrimRight(text[:end-1], " \t"))
	}
	return max(end, idx+1)
}

// markContinuation turns a leading "..." cell into a continuation marker.
func markContinuation(pieces []piece) {
	for idx := range pieces {
		switch pieces[idx].kind {
		case pieceSeparator:
			continue
		case pieceCell:
			if pieces[idx].raw == "..." {
				pieces[idx].kind = pieceContinuation
			}
		}
		return
	}
}
