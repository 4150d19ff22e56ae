package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/robotxt/internal/logging"
	"github.com/yaklabco/robotxt/internal/ui/pretty"
	"github.com/yaklabco/robotxt/pkg/fsutil"
	"github.com/yaklabco/robotxt/pkg/parser"
	"github.com/yaklabco/robotxt/pkg/rfmodel"
)

// inspectFlags are shared by tokens and outline.
type inspectFlags struct {
	format     string
	strictUTF8 bool
}

func addInspectFlags(cmd *cobra.Command, flags *inspectFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&flags.strictUTF8, "strict-utf8", false, "reject content that is not valid UTF-8")
}

func (f *inspectFlags) validate() error {
	if f.format != "text" && f.format != "json" {
		return fmt.Errorf("%w: unknown format %q; valid formats: text, json", errUsage, f.format)
	}
	return nil
}

// readDocument parses path, or stdin for "-".
func readDocument(ctx context.Context, cmd *cobra.Command, path string, strictUTF8 bool) (*rfmodel.Document, error) {
	var content []byte
	if path == stdinPath {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		content = data
	} else {
		data, _, err := fsutil.OS().ReadFile(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		content = data
	}

	doc, err := parser.New(parser.Options{StrictUTF8: strictUTF8}).Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	logging.FromContext(ctx).Debug("parsed document",
		logging.FieldPath, path,
		logging.FieldLines, len(doc.Lines),
		logging.FieldSections, len(doc.Sections),
		logging.FieldTokens, len(doc.Tokens),
	)
	return doc, nil
}

func inspectStyles(cmd *cobra.Command) (*pretty.Styles, *pretty.TableFormatter) {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))
	return styles, pretty.NewTableFormatter(styles, pretty.TerminalWidth(out))
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}
