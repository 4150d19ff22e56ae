// Package pipeline runs robotxt over a single file: read, parse, dump, and
// either verify the round trip or produce, diff and write formatted content.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/robotxt/internal/configloader"
	"github.com/yaklabco/robotxt/internal/logging"
	"github.com/yaklabco/robotxt/pkg/config"
	"github.com/yaklabco/robotxt/pkg/dump"
	"github.com/yaklabco/robotxt/pkg/fsutil"
	"github.com/yaklabco/robotxt/pkg/parser"
	"github.com/yaklabco/robotxt/pkg/rfmodel"
	"github.com/yaklabco/robotxt/pkg/textdiff"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrParseFailure indicates the content could not be parsed.
	ErrParseFailure = errors.New("parse failure")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")

	// ErrRoundTrip indicates that dumping the parsed document did not
	// reproduce the input.
	ErrRoundTrip = errors.New("round trip mismatch")
)

// Mode selects what the pipeline does with a parsed document.
type Mode int

const (
	// ModeCheck dumps the document unchanged and compares with the input.
	ModeCheck Mode = iota

	// ModeFormat dumps the document with the configured layout.
	ModeFormat
)

func (m Mode) String() string {
	if m == ModeFormat {
		return "format"
	}
	return "check"
}

// Options controls pipeline behavior.
type Options struct {
	Mode Mode

	// Write rewrites changed files in format mode.
	Write bool

	// Diff computes a unified diff for changed files.
	Diff bool

	Backup fsutil.BackupConfig
}

// OptionsFromConfig derives pipeline options from a resolved configuration.
func OptionsFromConfig(cfg *config.Config, mode Mode) Options {
	opts := Options{Mode: mode, Backup: fsutil.DefaultBackupConfig()}
	if cfg == nil {
		return opts
	}

	opts.Write = cfg.Write && mode == ModeFormat
	opts.Diff = cfg.Diff || cfg.Format == config.FormatDiff || mode == ModeCheck
	opts.Backup = fsutil.BackupConfig{
		Enabled: cfg.Backups.Enabled && !cfg.NoBackups,
		Mode:    fsutil.BackupMode(cfg.Backups.Mode),
	}
	return opts
}

// Result is the outcome of processing one file.
type Result struct {
	Path string
	Mode Mode

	// Original is the file state before processing; nil for in-memory
	// content.
	Original *fsutil.FileInfo

	// Document shape.
	Lines    int
	Sections int
	Tokens   int

	// Changed reports a round trip mismatch in check mode and a layout
	// change in format mode.
	Changed bool

	// Content is the dumped text when it differs from the input.
	Content []byte

	Diff *textdiff.Diff

	Skipped    bool
	SkipReason string

	BackupCreated bool
	Written       bool
}

// Failed reports whether a check found a round trip mismatch.
func (r *Result) Failed() bool {
	return r.Mode == ModeCheck && r.Changed
}

// Err returns ErrRoundTrip for a failed check.
func (r *Result) Err() error {
	if !r.Failed() {
		return nil
	}
	return fmt.Errorf("%s: %w", r.Path, ErrRoundTrip)
}

// Summary returns a short human-readable status.
func (r *Result) Summary() string {
	switch {
	case r.Skipped:
		return "skipped: " + r.SkipReason
	case r.Failed():
		return "round trip mismatch"
	case r.Written && r.BackupCreated:
		return "formatted (backup created)"
	case r.Written:
		return "formatted"
	case r.Changed:
		return "would reformat"
	default:
		return "ok"
	}
}

// Pipeline processes files with a shared configuration. It is safe for
// concurrent use.
type Pipeline struct {
	fs     *fsutil.FS
	cfg    *config.Config
	parser *parser.Parser
}

// New creates a pipeline reading and writing through fsys.
func New(fsys *fsutil.FS, cfg *config.Config) *Pipeline {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Pipeline{
		fs:     fsys,
		cfg:    cfg,
		parser: parser.New(parser.Options{StrictUTF8: cfg.StrictUTF8}),
	}
}

// ProcessFile runs the pipeline for the file at path:
//  1. Read and hash the file.
//  2. Parse and dump it.
//  3. Compute the diff, if requested.
//  4. In format mode with Write, check for concurrent modification, back
//     up and write the new content atomically.
func (p *Pipeline) ProcessFile(ctx context.Context, path string, opts Options) (*Result, error) {
	content, info, err := p.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	result, err := p.ProcessContent(ctx, path, content, opts)
	if err != nil {
		return nil, err
	}
	result.Original = info

	if opts.Mode != ModeFormat || !opts.Write || !result.Changed {
		return result, nil
	}

	modified, err := p.fs.CheckModified(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if modified {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	created, err := p.fs.CreateBackup(ctx, path, opts.Backup)
	if err != nil {
		return nil, fmt.Errorf("create backup: %w", err)
	}
	result.BackupCreated = created

	if err := p.fs.WriteAtomic(ctx, path, result.Content, info.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	logging.FromContext(ctx).Debug("file written",
		logging.FieldPath, path, "backup", created)
	return result, nil
}

// ProcessContent runs the pipeline on in-memory content. It never writes.
func (p *Pipeline) ProcessContent(ctx context.Context, path string, content []byte, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("processing cancelled: %w", err)
	}

	doc, err := p.parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}

	result := &Result{
		Path:     path,
		Mode:     opts.Mode,
		Lines:    len(doc.Lines),
		Sections: len(doc.Sections),
		Tokens:   len(doc.Tokens),
	}

	logger := logging.FromContext(ctx)
	dumpOpts := dump.Options{Logger: logger}
	if opts.Mode == ModeFormat {
		dumpOpts = p.FormatOptions(path, logger)
	}

	out := dump.New(dumpOpts).Dump(doc)
	if bytes.Equal(out, content) {
		return result, nil
	}

	result.Changed = true
	result.Content = out
	if opts.Diff {
		result.Diff = textdiff.Compute(path, content, out)
	}
	return result, nil
}

// FormatOptions returns the dump options used for path in format mode. An
// explicit dialect or line separator forces a reformat since the layout of
// existing lines is otherwise kept. Settings from .editorconfig fill what
// the configuration leaves open.
func (p *Pipeline) FormatOptions(path string, logger *log.Logger) dump.Options {
	if logger == nil {
		logger = logging.Discard()
	}

	cfg := p.cfg
	reformat := cfg.Reformat ||
		(cfg.Dialect != "" && cfg.Dialect != config.DialectAuto) ||
		(cfg.LineSeparator != "" && cfg.LineSeparator != config.LineSeparatorAuto)

	if cfg.EditorConfig {
		settings, err := configloader.EditorConfigFor(path)
		if err != nil {
			logger.Warn("ignoring editorconfig", logging.FieldPath, path, logging.FieldError, err)
		} else {
			cfg = settings.Apply(cfg)
		}
	}

	opts := dump.Options{
		MaxLineWidth:  cfg.MaxLineWidth,
		Separator:     cfg.Separator(),
		LineSeparator: cfg.LineSeparator.Bytes(),
		Reformat:      reformat,
		Logger:        logger,
	}
	if reformat && cfg.Dialect != "" && cfg.Dialect != config.DialectAuto {
		if dialect, err := rfmodel.ParseDialect(string(cfg.Dialect)); err == nil {
			opts.Dialect = dialect
			opts.ForceDialect = true
		}
	}
	return opts
}

// categorizeError wraps an error with the matching pipeline error type.
func categorizeError(err error) error {
	switch {
	case errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	case errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return err
	}
}

// IsPipelineError reports whether err is one of the pipeline error types.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrParseFailure) ||
		errors.Is(err, ErrWriteFailure) ||
		errors.Is(err, ErrRoundTrip)
}
