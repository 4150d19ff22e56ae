// Package parser builds rfmodel documents from Robot Framework plain text in
// the space, tab and pipe separated dialects.
//
// Parsing is total: text that no recognizer understands is kept with a
// generic kind, and every byte of the input is owned by exactly one token or
// line terminator, so an unmodified document dumps back to the same bytes.
package parser

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/yaklabco/robotxt/internal/logging"
	"github.com/yaklabco/robotxt/pkg/recognize"
	"github.com/yaklabco/robotxt/pkg/rfmodel"
)

// ErrInvalidUTF8 is returned in strict mode for input that is not UTF-8.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// Options configures a Parser.
type Options struct {
	// Registry classifies declarations. Defaults to recognize.Default().
	Registry *recognize.Registry

	// StrictUTF8 rejects input that is not valid UTF-8.
	StrictUTF8 bool

	// Logger receives debug output. When nil, the logger of the context
	// passed to Parse is used.
	Logger *log.Logger
}

// Parser turns source text into documents. It is safe for concurrent use.
type Parser struct {
	registry *recognize.Registry
	strict   bool
	logger   *log.Logger
}

// New creates a parser.
func New(opts Options) *Parser {
	reg := opts.Registry
	if reg == nil {
		reg = recognize.Default()
	}
	return &Parser{registry: reg, strict: opts.StrictUTF8, logger: opts.Logger}
}

// Parse builds the document for content. Unrecognized input is reported at
// debug level.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*rfmodel.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}
	if p.strict && !utf8.Valid(content) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
	}

	logger := p.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	logger = logger.With(logging.FieldPath, path)
	doc := p.build(string(content), logger)
	doc.Path = path

	logger.Debug("parsed document",
		logging.FieldLines, len(doc.Lines),
		logging.FieldSections, len(doc.Sections),
		logging.FieldTokens, len(doc.Tokens),
	)

	return doc, nil
}

// Parse parses content with the default registry.
func Parse(content []byte) *rfmodel.Document {
	return New(Options{}).build(string(content), nil)
}

// ParseString parses a string with the default registry.
func ParseString(content string) *rfmodel.Document {
	return New(Options{}).build(content, nil)
}

func (p *Parser) build(content string, logger *log.Logger) *rfmodel.Document {
	lines := splitLines(content)
	for idx := range lines {
		tokenize(&lines[idx], p.registry)
	}

	asm := newAssembler(p.registry, logger)
	for idx := range lines {
		asm.addLine(&lines[idx])
	}
	return asm.finish()
}
