package pretty

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Table formatting constants.
const (
	tablePadding    = 2
	minFlexWidth    = 20
	heavySeparator  = "="
	ellipsis        = "..."
	ellipsisDisplay = 3
)

// TableRow is one row of a table. Style, when set, is applied to the
// whole row.
type TableRow struct {
	Cells []string
	Style *lipgloss.Style
}

// TableFormatter renders rows as aligned columns. The last column takes
// the remaining width and is truncated to fit the terminal.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{styles: styles, termWidth: termWidth}
}

// FormatTable formats headers and rows as a styled table.
func (t *TableFormatter) FormatTable(headers []string, rows []TableRow) string {
	if len(headers) == 0 {
		return ""
	}

	widths := t.columnWidths(headers, rows)

	var builder strings.Builder
	builder.WriteString(t.styles.TableHeader.Render(t.formatCells(headers, widths)))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	for _, row := range rows {
		line := t.formatCells(row.Cells, widths)
		if row.Style != nil {
			line = t.styles.Paint(*row.Style, line)
		}
		builder.WriteString(line)
		builder.WriteString("\n")
	}

	return builder.String()
}

// columnWidths determines column widths from content, shrinking the last
// column to keep the table within the terminal.
func (t *TableFormatter) columnWidths(headers []string, rows []TableRow) []int {
	widths := make([]int, len(headers))
	for col, header := range headers {
		widths[col] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for col := 0; col < len(widths) && col < len(row.Cells); col++ {
			widths[col] = max(widths[col], runewidth.StringWidth(row.Cells[col]))
		}
	}

	last := len(widths) - 1
	if total := totalWidth(widths); total > t.termWidth {
		widths[last] = max(min(minFlexWidth, widths[last]), widths[last]-(total-t.termWidth))
	}

	return widths
}

func totalWidth(widths []int) int {
	total := 1
	for _, w := range widths {
		total += w + tablePadding
	}
	return total
}

func (t *TableFormatter) formatCells(cells []string, widths []int) string {
	var builder strings.Builder
	builder.WriteString(" ")
	for col, width := range widths {
		var cell string
		if col < len(cells) {
			cell = cells[col]
		}
		if col == len(widths)-1 {
			builder.WriteString(truncateString(cell, width))
			break
		}
		builder.WriteString(runewidth.FillRight(truncateString(cell, width), width))
		builder.WriteString(strings.Repeat(" ", tablePadding))
	}
	return strings.TrimRight(builder.String(), " ")
}

func (t *TableFormatter) formatSeparator(widths []int) string {
	sep := strings.Repeat(heavySeparator, totalWidth(widths))
	return t.styles.TableSeparator.Render(sep)
}

// truncateString truncates a string to a display width, adding "..." if
// truncated.
func truncateString(str string, maxWidth int) string {
	if runewidth.StringWidth(str) <= maxWidth {
		return str
	}
	if maxWidth <= ellipsisDisplay {
		return runewidth.Truncate(str, maxWidth, "")
	}
	return runewidth.Truncate(str, maxWidth, ellipsis)
}

// QuoteCell renders token text for a table cell with control characters
// and surrounding spaces made visible.
func QuoteCell(text string) string {
	return strconv.Quote(text)
}
