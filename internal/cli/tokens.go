package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/robotxt/internal/ui/pretty"
	"github.com/yaklabco/robotxt/pkg/rfmodel"
)

// tokenInfo represents a token in JSON output.
type tokenInfo struct {
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Offset int    `json:"offset"`
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Raw    string `json:"raw,omitempty"`

	layout bool
}

type tokensFlags struct {
	inspectFlags
	layout bool
}

func newTokensCommand() *cobra.Command {
	flags := &tokensFlags{}

	cmd := &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of a file",
		Long: `Print every token of a file with its position and kind, line by line.
Separators, continuation markers and line terminators are included with
--layout. Text is the logical value with escapes resolved; raw is shown
when the source spelling differs.

Examples:
  robotxt tokens suite.robot
  robotxt tokens --layout --format json suite.robot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args[0], flags)
		},
	}

	addInspectFlags(cmd, &flags.inspectFlags)
	cmd.Flags().BoolVar(&flags.layout, "layout", false, "include separators and line terminators")

	return cmd
}

func runTokens(cmd *cobra.Command, path string, flags *tokensFlags) error {
	if err := flags.validate(); err != nil {
		return err
	}

	ctx := commandContext(cmd)
	doc, err := readDocument(ctx, cmd, path, flags.strictUTF8)
	if err != nil {
		return err
	}

	infos := collectTokens(doc, flags.layout)
	if flags.format == "json" {
		return writeJSON(cmd.OutOrStdout(), infos)
	}

	styles, table := inspectStyles(cmd)
	rows := make([]pretty.TableRow, 0, len(infos))
	for _, info := range infos {
		row := pretty.TableRow{Cells: []string{
			fmt.Sprintf("%d:%d", info.Line, info.Column+1),
			info.Kind,
			pretty.QuoteCell(info.Text),
		}}
		if info.Raw != "" {
			row.Cells = append(row.Cells, pretty.QuoteCell(info.Raw))
		}
		if info.layout {
			row.Style = &styles.Layout
		}
		rows = append(rows, row)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), table.FormatTable([]string{"POS", "KIND", "TEXT", "RAW"}, rows))
	return err
}

// collectTokens lists the tokens of doc in source order.
func collectTokens(doc *rfmodel.Document, layout bool) []tokenInfo {
	infos := make([]tokenInfo, 0, len(doc.Tokens))
	for idx := range doc.Lines {
		line := &doc.Lines[idx]
		for _, id := range line.Elements {
			tok := doc.Token(id)
			if tok == nil || (!layout && tok.Kind.IsLayout()) {
				continue
			}
			info := tokenInfo{
				Line:   tok.Pos.Line,
				Column: tok.Pos.Column,
				Offset: tok.Pos.Offset,
				Kind:   tok.Kind.String(),
				Text:   tok.Text,
				layout: tok.Kind.IsLayout(),
			}
			if tok.Raw != tok.Text {
				info.Raw = tok.Raw
			}
			infos = append(infos, info)
		}
		if layout && line.EOL.Raw != "" {
			infos = append(infos, tokenInfo{
				Line:   line.Number,
				Column: line.Length,
				Offset: line.Offset + line.Length,
				Kind:   "EOL",
				Text:   line.EOL.Raw,
				layout: true,
			})
		}
	}
	return infos
}
