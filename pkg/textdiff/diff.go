// Package textdiff computes line based differences between two versions of
// a file and renders them as unified diffs or byte edits.
//
// Lines keep their terminators, so a change of line separator alone shows
// up as a difference.
package textdiff

import (
	"fmt"
	"strings"
)

// ContextLines is the number of unchanged lines shown around a change.
const ContextLines = 3

// maxTableCells bounds the LCS table; larger differing regions are reported
// as a single replacement.
const maxTableCells = 1 << 24

// LineKind tells whether a diff line is context, added or removed.
type LineKind int

const (
	LineContext LineKind = iota
	LineAdd
	LineRemove
)

// Line is one line of a hunk. Text includes the line terminator, if any.
type Line struct {
	Kind LineKind
	Text string
}

// Hunk is a group of changes with surrounding context.
type Hunk struct {
	// OldStart and NewStart are 1-based; they point at the line before an
	// empty range, as in unified diff headers.
	OldStart, OldCount int
	NewStart, NewCount int

	Lines []Line
}

// Diff is the difference between two versions of a file.
type Diff struct {
	Path      string
	Hunks     []Hunk
	Additions int
	Deletions int

	ops []op
}

type op struct {
	kind LineKind
	text string
}

// Compute diffs original against modified. It returns nil when they are
// equal.
func Compute(path string, original, modified []byte) *Diff {
	if string(original) == string(modified) {
		return nil
	}

	ops := diffLines(SplitLines(string(original)), SplitLines(string(modified)))

	d := &Diff{Path: path, ops: ops}
	for _, o := range ops {
		switch o.kind {
		case LineAdd:
			d.Additions++
		case LineRemove:
			d.Deletions++
		}
	}
	d.Hunks = hunks(ops, ContextLines)
	return d
}

// HasChanges reports whether d holds any change.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// SplitLines splits text after each terminator: "\n", "\r\n" or a "\r"
// not followed by "\n". The last line may lack a terminator.
func SplitLines(text string) []string {
	var lines []string
	start := 0
	for idx := 0; idx < len(text); idx++ {
		switch text[idx] {
		case '\n':
			lines = append(lines, text[start:idx+1])
			start = idx + 1
		case '\r':
			if idx+1 < len(text) && text[idx+1] == '\n' {
				continue
			}
			lines = append(lines, text[start:idx+1])
			start = idx + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// diffLines returns the edit script turning old into mod. Removals come
// before additions within a changed region.
func diffLines(old, mod []string) []op {
	prefix := 0
	for prefix < len(old) && prefix < len(mod) && old[prefix] == mod[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(old)-prefix && suffix < len(mod)-prefix &&
		old[len(old)-1-suffix] == mod[len(mod)-1-suffix] {
		suffix++
	}

	ops := make([]op, 0, len(old)+len(mod)-prefix-suffix)
	for _, line := range old[:prefix] {
		ops = append(ops, op{LineContext, line})
	}
	ops = appendMiddle(ops, old[prefix:len(old)-suffix], mod[prefix:len(mod)-suffix])
	for _, line := range old[len(old)-suffix:] {
		ops = append(ops, op{LineContext, line})
	}
	return ops
}

func appendMiddle(ops []op, old, mod []string) []op {
	if len(old)*len(mod) > maxTableCells {
		for _, line := range old {
			ops = append(ops, op{LineRemove, line})
		}
		for _, line := range mod {
			ops = append(ops, op{LineAdd, line})
		}
		return ops
	}

	// lcs[i][j] is the length of the longest common subsequence of
	// old[i:] and mod[j:].
	cols := len(mod) + 1
	lcs := make([]int, (len(old)+1)*cols)
	for i := len(old) - 1; i >= 0; i-- {
		for j := len(mod) - 1; j >= 0; j-- {
			if old[i] == mod[j] {
				lcs[i*cols+j] = lcs[(i+1)*cols+j+1] + 1
			} else {
				lcs[i*cols+j] = max(lcs[(i+1)*cols+j], lcs[i*cols+j+1])
			}
		}
	}

	i, j := 0, 0
	for i < len(old) && j < len(mod) {
		switch {
		case old[i] == mod[j]:
			ops = append(ops, op{LineContext, old[i]})
			i++
			j++
		case lcs[(i+1)*cols+j] >= lcs[i*cols+j+1]:
			ops = append(ops, op{LineRemove, old[i]})
			i++
		default:
			ops = append(ops, op{LineAdd, mod[j]})
			j++
		}
	}
	for ; i < len(old); i++ {
		ops = append(ops, op{LineRemove, old[i]})
	}
	for ; j < len(mod); j++ {
		ops = append(ops, op{LineAdd, mod[j]})
	}
	return ops
}

// hunks groups ops into hunks with up to context unchanged lines around
// each change. Changes closer than twice the context share a hunk.
func hunks(ops []op, context int) []Hunk {
	var changes []int
	for idx, o := range ops {
		if o.kind != LineContext {
			changes = append(changes, idx)
		}
	}
	if len(changes) == 0 {
		return nil
	}

	// Line numbers before each op.
	oldAt := make([]int, len(ops)+1)
	newAt := make([]int, len(ops)+1)
	for idx, o := range ops {
		oldAt[idx+1], newAt[idx+1] = oldAt[idx], newAt[idx]
		if o.kind != LineAdd {
			oldAt[idx+1]++
		}
		if o.kind != LineRemove {
			newAt[idx+1]++
		}
	}

	var result []Hunk
	for first := 0; first < len(changes); {
		last := first
		for last+1 < len(changes) && changes[last+1]-changes[last] <= 2*context+1 {
			last++
		}

		from := max(changes[first]-context, 0)
		to := min(changes[last]+context+1, len(ops))

		h := Hunk{
			OldStart: oldAt[from] + 1,
			OldCount: oldAt[to] - oldAt[from],
			NewStart: newAt[from] + 1,
			NewCount: newAt[to] - newAt[from],
		}
		if h.OldCount == 0 {
			h.OldStart--
		}
		if h.NewCount == 0 {
			h.NewStart--
		}
		for _, o := range ops[from:to] {
			h.Lines = append(h.Lines, Line{Kind: o.kind, Text: o.text})
		}
		result = append(result, h)

		first = last + 1
	}
	return result
}

// String renders the diff in unified format with a/ and b/ prefixes.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n+++ b/%s\n", path, path)
	for _, h := range d.Hunks {
		fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
		for _, line := range h.Lines {
			sb.WriteByte(line.Kind.prefix())
			sb.WriteString(line.Text)
			if !strings.HasSuffix(line.Text, "\n") {
				sb.WriteString("\n\\ No newline at end of file\n")
			}
		}
	}
	return sb.String()
}

// GitHeader returns the "diff --git" line for the diff.
func (d *Diff) GitHeader() string {
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// FullString is String preceded by the git header.
func (d *Diff) FullString() string {
	if !d.HasChanges() {
		return ""
	}
	return d.GitHeader() + "\n" + d.String()
}

func (k LineKind) prefix() byte {
	switch k {
	case LineAdd:
		return '+'
	case LineRemove:
		return '-'
	default:
		return ' '
	}
}
