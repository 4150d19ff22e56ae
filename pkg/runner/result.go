package runner

import (
	"github.com/hashicorp/go-multierror"

	"github.com/yaklabco/robotxt/pkg/pipeline"
)

// FileOutcome is the result of one file.
type FileOutcome struct {
	Path string

	// Result is nil when Error is set.
	Result *pipeline.Result

	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int

	// FilesChanged counts round trip mismatches in check mode and files
	// whose layout changes in format mode.
	FilesChanged int

	FilesWritten   int
	FilesSkipped   int
	FilesErrored   int
	BackupsCreated int
}

// Result is the overall runner result.
type Result struct {
	Mode pipeline.Mode

	// Files are ordered by path.
	Files []FileOutcome

	Stats Stats
}

// HasFailures reports whether any file could not be processed or failed
// its round trip check.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	if r.Stats.FilesErrored > 0 {
		return true
	}
	for _, f := range r.Files {
		if f.Result != nil && f.Result.Failed() {
			return true
		}
	}
	return false
}

// HasChanges reports whether any file changed or would change.
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.FilesChanged > 0
}

// Err aggregates the per-file errors and failed checks, or returns nil.
func (r *Result) Err() error {
	if r == nil {
		return nil
	}

	var merr *multierror.Error
	for _, f := range r.Files {
		switch {
		case f.Error != nil:
			merr = multierror.Append(merr, f.Error)
		case f.Result != nil && f.Result.Failed():
			merr = multierror.Append(merr, f.Result.Err())
		}
	}
	return merr.ErrorOrNil()
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++
	if outcome.Result.Changed {
		r.Stats.FilesChanged++
	}
	if outcome.Result.Written {
		r.Stats.FilesWritten++
	}
	if outcome.Result.Skipped {
		r.Stats.FilesSkipped++
	}
	if outcome.Result.BackupCreated {
		r.Stats.BackupsCreated++
	}
}

// Collect builds a Result from outcomes that were produced outside Run,
// such as content read from stdin.
func Collect(mode pipeline.Mode, outcomes ...FileOutcome) *Result {
	result := &Result{Mode: mode, Files: make([]FileOutcome, 0, len(outcomes))}
	result.Stats.FilesDiscovered = len(outcomes)
	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	return result
}
