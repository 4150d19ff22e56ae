package textdiff

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEdit is returned by Apply for edits that are out of range,
// unsorted or overlapping.
var ErrInvalidEdit = errors.New("invalid edit")

// TextEdit replaces the bytes [Start, End) of the original with NewText.
type TextEdit struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	NewText string `json:"newText"`
}

// Edits returns the changes of d as byte edits against the original, one
// per run of changed lines, in ascending order.
func (d *Diff) Edits() []TextEdit {
	if d == nil {
		return nil
	}

	var (
		edits   []TextEdit
		offset  int
		current *TextEdit
		sb      strings.Builder
	)
	flush := func() {
		if current != nil {
			current.NewText = sb.String()
			edits = append(edits, *current)
			current = nil
			sb.Reset()
		}
	}

	for _, o := range d.ops {
		if o.kind == LineContext {
			flush()
			offset += len(o.text)
			continue
		}
		if current == nil {
			current = &TextEdit{Start: offset, End: offset}
		}
		if o.kind == LineRemove {
			offset += len(o.text)
			current.End = offset
		} else {
			sb.WriteString(o.text)
		}
	}
	flush()

	return edits
}

// Apply applies sorted, non-overlapping edits to content.
func Apply(content []byte, edits []TextEdit) ([]byte, error) {
	prevEnd := 0
	size := len(content)
	for idx, e := range edits {
		if e.Start < prevEnd || e.End < e.Start || e.End > len(content) {
			return nil, fmt.Errorf("%w: edit %d [%d,%d) on %d bytes", ErrInvalidEdit, idx, e.Start, e.End, len(content))
		}
		prevEnd = e.End
		size += len(e.NewText) - (e.End - e.Start)
	}

	out := make([]byte, 0, size)
	cursor := 0
	for _, e := range edits {
		out = append(out, content[cursor:e.Start]...)
		out = append(out, e.NewText...)
		cursor = e.End
	}
	return append(out, content[cursor:]...), nil
}
