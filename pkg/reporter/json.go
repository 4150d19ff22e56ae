package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/robotxt/pkg/runner"
	"github.com/yaklabco/robotxt/pkg/textdiff"
)

// File status values in JSON output.
const (
	statusOK       = "ok"
	statusChanged  = "changed"
	statusMismatch = "mismatch"
	statusWritten  = "written"
	statusSkipped  = "skipped"
	statusError    = "error"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Mode    string           `json:"mode"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path          string              `json:"path"`
	Status        string              `json:"status"`
	Changed       bool                `json:"changed"`
	Written       bool                `json:"written,omitempty"`
	BackupCreated bool                `json:"backupCreated,omitempty"`
	SkipReason    string              `json:"skipReason,omitempty"`
	Error         string              `json:"error,omitempty"`
	Lines         int                 `json:"lines,omitempty"`
	Sections      int                 `json:"sections,omitempty"`
	Tokens        int                 `json:"tokens,omitempty"`
	Additions     int                 `json:"additions,omitempty"`
	Deletions     int                 `json:"deletions,omitempty"`
	Edits         []textdiff.TextEdit `json:"edits,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int `json:"filesDiscovered"`
	FilesProcessed  int `json:"filesProcessed"`
	FilesChanged    int `json:"filesChanged"`
	FilesWritten    int `json:"filesWritten"`
	FilesSkipped    int `json:"filesSkipped"`
	FilesErrored    int `json:"filesErrored"`
	BackupsCreated  int `json:"backupsCreated"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return countProblems(result), nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		output.Mode = "check"
		return output
	}

	output.Mode = result.Mode.String()
	output.Summary = JSONSummary(result.Stats)
	output.Files = make([]JSONFileResult, 0, len(result.Files))

	for _, file := range result.Files {
		output.Files = append(output.Files, r.fileResult(file))
	}

	return output
}

func (r *JSONReporter) fileResult(file runner.FileOutcome) JSONFileResult {
	out := JSONFileResult{Path: r.opts.displayPath(file.Path)}

	if file.Error != nil {
		out.Status = statusError
		out.Error = file.Error.Error()
		return out
	}

	res := file.Result
	if res == nil {
		out.Status = statusOK
		return out
	}

	out.Changed = res.Changed
	out.Written = res.Written
	out.BackupCreated = res.BackupCreated
	out.SkipReason = res.SkipReason
	out.Lines = res.Lines
	out.Sections = res.Sections
	out.Tokens = res.Tokens

	if res.Diff.HasChanges() {
		out.Additions = res.Diff.Additions
		out.Deletions = res.Diff.Deletions
		out.Edits = res.Diff.Edits()
	}

	switch {
	case res.Skipped:
		out.Status = statusSkipped
	case res.Failed():
		out.Status = statusMismatch
	case res.Written:
		out.Status = statusWritten
	case res.Changed:
		out.Status = statusChanged
	default:
		out.Status = statusOK
	}

	return out
}
