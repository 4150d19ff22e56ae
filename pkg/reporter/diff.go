package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/robotxt/internal/ui/pretty"
	"github.com/yaklabco/robotxt/pkg/runner"
	"github.com/yaklabco/robotxt/pkg/textdiff"
)

// DiffReporter formats results as unified diffs in git style.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var filesWithDiffs int
	var totalAdditions, totalDeletions int

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(r.opts.displayPath(file.Path)),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Result == nil || !file.Result.Diff.HasChanges() {
			continue
		}

		filesWithDiffs++
		totalAdditions += file.Result.Diff.Additions
		totalDeletions += file.Result.Diff.Deletions
		writeDiff(r.bw, r.styles, r.opts, file.Result.Diff)
	}

	if filesWithDiffs > 0 && r.opts.ShowSummary {
		r.writeSummary(filesWithDiffs, totalAdditions, totalDeletions)
	}

	return countProblems(result), nil
}

// writeDiff outputs a single file's diff. Without color the bytes are a
// valid patch, line terminators included.
func writeDiff(w io.Writer, styles *pretty.Styles, opts Options, diff *textdiff.Diff) {
	shown := *diff
	shown.Path = opts.displayPath(diff.Path)
	text := shown.FullString()

	if !styles.ColorEnabled() {
		fmt.Fprint(w, text)
		return
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		content := strings.TrimSuffix(line, "\n")
		fmt.Fprintln(w, styles.Paint(diffLineStyle(styles, content), content))
	}
}

// diffLineStyle picks the style for a line of unified diff output.
func diffLineStyle(styles *pretty.Styles, line string) lipgloss.Style {
	switch {
	case strings.HasPrefix(line, "diff --git"),
		strings.HasPrefix(line, "+++"),
		strings.HasPrefix(line, "---"):
		return styles.DiffHeader
	case strings.HasPrefix(line, "@@"):
		return styles.DiffHunk
	case strings.HasPrefix(line, "+"):
		return styles.DiffAdd
	case strings.HasPrefix(line, "-"):
		return styles.DiffRemove
	default:
		return styles.DiffContext
	}
}

// writeSummary writes a summary line at the end.
func (r *DiffReporter) writeSummary(files, additions, deletions int) {
	var parts []string

	fileWord := "files"
	if files == 1 {
		fileWord = "file"
	}
	parts = append(parts, fmt.Sprintf("%d %s changed", files, fileWord))

	if additions > 0 {
		insertionWord := "insertions"
		if additions == 1 {
			insertionWord = "insertion"
		}
		parts = append(parts, r.styles.DiffAdd.Render(fmt.Sprintf("%d %s(+)", additions, insertionWord)))
	}

	if deletions > 0 {
		deletionWord := "deletions"
		if deletions == 1 {
			deletionWord = "deletion"
		}
		parts = append(parts, r.styles.DiffRemove.Render(fmt.Sprintf("%d %s(-)", deletions, deletionWord)))
	}

	fmt.Fprintln(r.bw, strings.Join(parts, ", "))
}
