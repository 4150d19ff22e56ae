package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/robotxt/pkg/pipeline"
	"github.com/yaklabco/robotxt/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "2 of 12 files do not round trip, 1 error".
func (s *Styles) FormatSummaryOneLine(mode pipeline.Mode, stats runner.Stats) string {
	var parts []string

	switch {
	case stats.FilesProcessed == 0 && stats.FilesErrored == 0:
		return s.Success.Render("No files to check.") + "\n"

	case mode == pipeline.ModeCheck && stats.FilesChanged == 0:
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d %s round trip",
			stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles))))

	case mode == pipeline.ModeCheck:
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d of %d %s do not round trip",
			stats.FilesChanged, stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles))))

	case stats.FilesWritten > 0:
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d %s formatted",
			stats.FilesWritten, plural(stats.FilesWritten, wordFile, wordFiles))))
		if unchanged := stats.FilesProcessed - stats.FilesChanged; unchanged > 0 {
			parts = append(parts, s.Dim.Render(fmt.Sprintf("%d unchanged", unchanged)))
		}

	case stats.FilesChanged > 0:
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d of %d %s would be reformatted",
			stats.FilesChanged, stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles))))

	default:
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d %s already formatted",
			stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles))))
	}

	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d %s",
			stats.FilesErrored, plural(stats.FilesErrored, "error", "errors"))))
	}
	if stats.BackupsCreated > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d %s created",
			stats.BackupsCreated, plural(stats.BackupsCreated, "backup", "backups"))))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(mode pipeline.Mode, stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row := func(label string, value string) {
		fmt.Fprintf(&builder, "  %-19s%s\n", label+":", value)
	}

	row("Files discovered", s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)))
	row("Files processed", s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)))

	if stats.FilesChanged > 0 {
		label := "Files changed"
		if mode == pipeline.ModeCheck {
			label = "Mismatches"
		}
		row(label, s.Failure.Render(strconv.Itoa(stats.FilesChanged)))
	}
	if stats.FilesWritten > 0 {
		row("Files written", s.Success.Render(strconv.Itoa(stats.FilesWritten)))
	}
	if stats.BackupsCreated > 0 {
		row("Backups created", s.SummaryValue.Render(strconv.Itoa(stats.BackupsCreated)))
	}
	if stats.FilesSkipped > 0 {
		row("Files skipped", s.Warning.Render(strconv.Itoa(stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		row("Errors", s.Error.Render(strconv.Itoa(stats.FilesErrored)))
	}

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render(mode.String() + " failed with errors"))
	case mode == pipeline.ModeCheck && stats.FilesChanged > 0:
		builder.WriteString(s.Failure.Render("check failed"))
	case mode == pipeline.ModeFormat && stats.FilesChanged > stats.FilesWritten:
		builder.WriteString(s.Warning.Render("format found files to reformat"))
	default:
		builder.WriteString(s.Success.Render(mode.String() + " passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
