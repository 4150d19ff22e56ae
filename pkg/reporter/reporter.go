// Package reporter writes the results of check and format runs.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/robotxt/pkg/runner"
)

// Reporter formats and writes run results.
type Reporter interface {
	// Report writes formatted output for the given result. It returns the
	// number of files that failed, changed or would change, and any write
	// error.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// countProblems returns the number of files with errors or layout changes.
func countProblems(result *runner.Result) int {
	if result == nil {
		return 0
	}
	var n int
	for _, file := range result.Files {
		if file.Error != nil || (file.Result != nil && file.Result.Changed) {
			n++
		}
	}
	return n
}
