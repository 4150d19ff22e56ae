// Package recognize classifies declaration text into token kinds.
//
// A Recognizer matches one declaration spelling. Matching is
// case-insensitive per word, tolerates runs of whitespace between words,
// accepts an optional leading "| " of pipe tables and an optional trailing
// colon. A Registry tries recognizers in a fixed priority order per context;
// the first match wins and a miss falls back to the context's generic kind.
package recognize

import (
	"regexp"
	"strings"

	"github.com/yaklabco/robotxt/pkg/rfmodel"
)

// Recognizer matches a single declaration type.
type Recognizer struct {
	Kind rfmodel.TokenKind

	// Spelling is the canonical form of the declaration, or the expression
	// between slashes for pattern recognizers.
	Spelling string

	re *regexp.Regexp
}

const (
	pipePrefix = `^(\|[ \t]+)?`
	wordGap    = `[ \t]+`
)

// Words builds a recognizer for a multi-word declaration such as
// "Suite Setup".
func Words(kind rfmodel.TokenKind, words ...string) Recognizer {
	quoted := make([]string, len(words))
	for idx, word := range words {
		quoted[idx] = regexp.QuoteMeta(word)
	}
	body := `(` + strings.Join(quoted, wordGap) + `(?:[ \t]*:)?)`
	return Recognizer{
		Kind:     kind,
		Spelling: strings.Join(words, " "),
		re:       regexp.MustCompile(`(?i)` + pipePrefix + body),
	}
}

// Bracketed builds a recognizer for a local setting such as "[Tags]".
func Bracketed(kind rfmodel.TokenKind, words ...string) Recognizer {
	quoted := make([]string, len(words))
	for idx, word := range words {
		quoted[idx] = regexp.QuoteMeta(word)
	}
	body := `(\[[ \t]*` + strings.Join(quoted, wordGap) + `[ \t]*\](?:[ \t]*:)?)`
	return Recognizer{
		Kind:     kind,
		Spelling: "[" + strings.Join(words, " ") + "]",
		re:       regexp.MustCompile(`(?i)` + pipePrefix + body),
	}
}

// Pattern builds a recognizer from a raw expression for the declaration.
func Pattern(kind rfmodel.TokenKind, expr string) Recognizer {
	return Recognizer{
		Kind:     kind,
		Spelling: "/" + expr + "/",
		re:       regexp.MustCompile(`(?i)` + pipePrefix + `(` + expr + `)`),
	}
}

// Match tests the start of window. On success the token spans exactly the
// declaration text; a pipe prefix is excluded and shifts the position.
// The match must end at a cell boundary: the end of window or whitespace.
func (r Recognizer) Match(window string, line, column, offset int) (rfmodel.Token, bool) {
	loc := r.re.FindStringSubmatchIndex(window)
	if loc == nil {
		return rfmodel.Token{}, false
	}

	start, end := loc[4], loc[5]
	if end < len(window) && window[end] != ' ' && window[end] != '\t' {
		return rfmodel.Token{}, false
	}

	text := window[start:end]
	return rfmodel.Token{
		Kind: r.Kind,
		Text: text,
		Raw:  text,
		Pos: rfmodel.FilePosition{
			Line:   line,
			Column: column + start,
			Offset: offset + start,
		},
	}, true
}

// MatchCell reports whether the whole cell is the declaration.
func (r Recognizer) MatchCell(cell string) bool {
	tok, ok := r.Match(cell, 0, 0, 0)
	return ok && tok.Pos.Offset == 0 && len(tok.Raw) == len(cell)
}
