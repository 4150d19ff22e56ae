package rfmodel

import "strings"

// EmptyCell is the marker written for a cell whose value is empty.
const EmptyCell = `\`

// Unescape resolves the structural escapes of a raw cell: the lone empty
// cell marker, escaped spaces, escaped pipes and a leading escaped hash.
// Every other backslash sequence is kept for later evaluation.
func Unescape(raw string) string {
	if raw == EmptyCell {
		return ""
	}
	if !strings.Contains(raw, `\`) {
		return raw
	}

	var sb strings.Builder
	sb.Grow(len(raw))

	for idx := 0; idx < len(raw); idx++ {
		char := raw[idx]
		if char != '\\' || idx+1 == len(raw) {
			sb.WriteByte(char)
			continue
		}

		next := raw[idx+1]
		switch {
		case next == ' ' || next == '|' || (next == '#' && idx == 0):
			sb.WriteByte(next)
			idx++
		case next == '\\':
			sb.WriteString(`\\`)
			idx++
		default:
			sb.WriteByte(char)
		}
	}

	return sb.String()
}

// SpaceVariable is written for a value made of a single space, which as an
// escaped cell would read back as the empty cell marker.
const SpaceVariable = "${SPACE}"

// Escape renders logical text as a cell that the tokenizer reads back as
// the same text in the given dialect. Tabs and line breaks come out as the
// \t, \n and \r sequences, which Unescape keeps for later evaluation.
func Escape(text string, dialect Dialect) string {
	switch text {
	case "":
		return EmptyCell
	case " ":
		return SpaceVariable
	}

	var sb strings.Builder
	sb.Grow(len(text) + 2)

	last := len(text) - 1
	for idx := 0; idx < len(text); idx++ {
		char := text[idx]
		switch {
		case idx == 0 && char == '#':
			sb.WriteString(`\#`)
		case char == ' ' && (idx == 0 || idx == last || text[idx-1] == ' '):
			sb.WriteString(`\ `)
		case char == '|' && dialect == DialectPipe:
			sb.WriteString(`\|`)
		case char == '\t':
			sb.WriteString(`\t`)
		case char == '\n':
			sb.WriteString(`\n`)
		case char == '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteByte(char)
		}
	}

	return sb.String()
}
