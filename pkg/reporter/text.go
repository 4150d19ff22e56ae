package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/robotxt/internal/ui/pretty"
	"github.com/yaklabco/robotxt/pkg/pipeline"
	"github.com/yaklabco/robotxt/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	for _, file := range result.Files {
		r.reportFile(file)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Mode, result.Stats))
	}

	return countProblems(result), nil
}

// reportFile writes the status line of one file followed by its diff.
func (r *TextReporter) reportFile(file runner.FileOutcome) {
	path := r.styles.FilePath.Render(r.opts.displayPath(file.Path))

	if file.Error != nil {
		fmt.Fprintf(r.bw, "%s: %s\n", path, r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)))
		return
	}

	res := file.Result
	if res == nil {
		return
	}
	if !res.Changed && !res.Skipped && !r.opts.Verbose {
		return
	}

	fmt.Fprintf(r.bw, "%s: %s\n", path, r.statusStyle(res).Render(res.Summary()))

	if res.Diff.HasChanges() {
		writeDiff(r.bw, r.styles, r.opts, res.Diff)
		fmt.Fprintln(r.bw)
	}
}

func (r *TextReporter) statusStyle(res *pipeline.Result) lipgloss.Style {
	switch {
	case res.Failed():
		return r.styles.Failure
	case res.Skipped:
		return r.styles.Warning
	case res.Written:
		return r.styles.Success
	case res.Changed:
		return r.styles.Warning
	default:
		return r.styles.Dim
	}
}
