package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/robotxt/internal/ui/pretty"
	"github.com/yaklabco/robotxt/pkg/recognize"
)

// declarationInfo represents a recognized declaration in JSON output.
type declarationInfo struct {
	Context  string `json:"context"`
	Kind     string `json:"kind"`
	Spelling string `json:"spelling"`
	Fallback bool   `json:"fallback,omitempty"`
}

func newSyntaxCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "syntax",
		Short: "List recognized headers, settings and declarations",
		Long: `List the declarations the parser recognizes in each context, in priority
order, with the token kind they produce. Matching is case-insensitive and
tolerates extra whitespace between words and a trailing colon. Entries
between slashes are patterns. The last row of each context is the kind
given to cells that match nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos := collectDeclarations(recognize.Default())

			switch format {
			case "json":
				return writeJSON(cmd.OutOrStdout(), infos)
			case "text":
				return writeDeclarations(cmd, cmd.OutOrStdout(), infos)
			default:
				return fmt.Errorf("%w: unknown format %q; valid formats: text, json", errUsage, format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

func collectDeclarations(reg *recognize.Registry) []declarationInfo {
	var infos []declarationInfo
	for _, ctx := range recognize.Contexts() {
		for _, rec := range reg.Recognizers(ctx) {
			infos = append(infos, declarationInfo{
				Context:  ctx.String(),
				Kind:     rec.Kind.String(),
				Spelling: rec.Spelling,
			})
		}
		infos = append(infos, declarationInfo{
			Context:  ctx.String(),
			Kind:     reg.Fallback(ctx).String(),
			Fallback: true,
		})
	}
	return infos
}

func writeDeclarations(cmd *cobra.Command, w io.Writer, infos []declarationInfo) error {
	styles, table := inspectStyles(cmd)

	rows := make([]pretty.TableRow, 0, len(infos))
	for _, info := range infos {
		spelling := info.Spelling
		row := pretty.TableRow{}
		if info.Fallback {
			spelling = "(anything else)"
			row.Style = &styles.Dim
		}
		row.Cells = []string{info.Context, info.Kind, spelling}
		rows = append(rows, row)
	}

	_, err := io.WriteString(w, table.FormatTable([]string{"CONTEXT", "KIND", "DECLARATION"}, rows))
	return err
}
