package rfmodel

import "fmt"

// FilePosition is an absolute coordinate in the source file.
// Line is 1-based; Column and Offset are 0-based byte counts.
type FilePosition struct {
	Line   int
	Column int
	Offset int
}

// NotSet is the position of tokens that do not originate from the source.
//
//nolint:gochecknoglobals // immutable sentinel value
var NotSet = FilePosition{Line: -1, Column: -1, Offset: -1}

// IsNotSet reports whether p is unresolved: every field is negative. A
// position with any known field counts as set.
func (p FilePosition) IsNotSet() bool {
	return p.Line < 0 && p.Column < 0 && p.Offset < 0
}

// IsSet reports whether p carries a usable coordinate.
func (p FilePosition) IsSet() bool {
	return !p.IsNotSet()
}

// IsBefore reports whether p lies strictly before other.
// Offsets are compared when both are known, otherwise line and column.
// Unresolved positions are never before anything.
func (p FilePosition) IsBefore(other FilePosition) bool {
	return p.Compare(other) < 0 && p.IsSet() && other.IsSet()
}

// IsSamePlace reports whether p and other address the same location.
// Only the fields that are known on both sides take part in the comparison.
func (p FilePosition) IsSamePlace(other FilePosition) bool {
	if p.IsNotSet() || other.IsNotSet() {
		return p.IsNotSet() && other.IsNotSet()
	}
	if p.Offset >= 0 && other.Offset >= 0 {
		return p.Offset == other.Offset
	}
	return p.Line == other.Line && p.Column == other.Column
}

// Compare orders positions: negative when p is before other, zero at the
// same place, positive after. Unresolved positions sort last.
func (p FilePosition) Compare(other FilePosition) int {
	switch {
	case p.IsNotSet() && other.IsNotSet():
		return 0
	case p.IsNotSet():
		return 1
	case other.IsNotSet():
		return -1
	}

	if p.Offset >= 0 && other.Offset >= 0 {
		return p.Offset - other.Offset
	}
	if p.Line != other.Line {
		return p.Line - other.Line
	}
	return p.Column - other.Column
}

// String formats the position as line:column.
func (p FilePosition) String() string {
	if p.IsNotSet() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column+1)
}
