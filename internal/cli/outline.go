package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/robotxt/internal/ui/pretty"
	"github.com/yaklabco/robotxt/pkg/dump"
	"github.com/yaklabco/robotxt/pkg/rfmodel"
)

// sectionInfo represents a section in JSON output.
type sectionInfo struct {
	Kind      string        `json:"kind"`
	Dialect   string        `json:"dialect"`
	Separator string        `json:"separator"`
	Header    *elementInfo  `json:"header,omitempty"`
	Elements  []elementInfo `json:"elements"`
}

// elementInfo represents an element in JSON output.
type elementInfo struct {
	Kind        string        `json:"kind"`
	Declaration string        `json:"declaration,omitempty"`
	Position    string        `json:"position"`
	Values      []string      `json:"values,omitempty"`
	Comments    int           `json:"comments,omitempty"`
	Replay      bool          `json:"replay"`
	Body        []elementInfo `json:"body,omitempty"`
}

func newOutlineCommand() *cobra.Command {
	flags := &inspectFlags{}

	cmd := &cobra.Command{
		Use:   "outline FILE",
		Short: "Print the sections and elements of a file",
		Long: `Print the sections of a file with their dialect and separator, and the
elements of each section with their declaration and position. Elements
marked replay are copied verbatim from the source when the file is dumped;
the others are synthesized from their tokens.

Examples:
  robotxt outline suite.robot
  robotxt outline --format json suite.robot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOutline(cmd, args[0], flags)
		},
	}

	addInspectFlags(cmd, flags)

	return cmd
}

func runOutline(cmd *cobra.Command, path string, flags *inspectFlags) error {
	if err := flags.validate(); err != nil {
		return err
	}

	doc, err := readDocument(commandContext(cmd), cmd, path, flags.strictUTF8)
	if err != nil {
		return err
	}

	sections := outlineDocument(doc)
	if flags.format == "json" {
		return writeJSON(cmd.OutOrStdout(), sections)
	}

	styles, _ := inspectStyles(cmd)
	var sb strings.Builder
	for _, sec := range sections {
		fmt.Fprintf(&sb, "%s %s\n",
			styles.Section.Render(sec.Kind),
			styles.Dim.Render(fmt.Sprintf("(%s, separator %s)", sec.Dialect, pretty.QuoteCell(sec.Separator))))
		if sec.Header != nil {
			writeOutlineElement(&sb, styles, *sec.Header, 1)
		}
		for _, el := range sec.Elements {
			writeOutlineElement(&sb, styles, el, 1)
		}
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), sb.String())
	return err
}

func writeOutlineElement(sb *strings.Builder, styles *pretty.Styles, el elementInfo, depth int) {
	mode := styles.Synth.Render("synth")
	if el.Replay {
		mode = styles.Replay.Render("replay")
	}

	fmt.Fprintf(sb, "%s%s %s %s",
		strings.Repeat("  ", depth),
		styles.Location.Render(fmt.Sprintf("%-7s", el.Position)),
		styles.Element.Render(fmt.Sprintf("%-13s", el.Kind)),
		mode,
	)
	if el.Declaration != "" {
		fmt.Fprintf(sb, "  %s", pretty.QuoteCell(el.Declaration))
	}
	if n := len(el.Values); n > 0 {
		fmt.Fprintf(sb, " %s", styles.Dim.Render(fmt.Sprintf("+%d", n)))
	}
	sb.WriteString("\n")

	for _, child := range el.Body {
		writeOutlineElement(sb, styles, child, depth+1)
	}
}

// outlineDocument describes the sections and elements of doc.
func outlineDocument(doc *rfmodel.Document) []sectionInfo {
	sections := make([]sectionInfo, 0, len(doc.Sections))
	for _, sec := range doc.Sections {
		info := sectionInfo{
			Kind:      sec.Kind.String(),
			Dialect:   sec.Dialect.String(),
			Separator: sec.CellSeparator(),
			Elements:  make([]elementInfo, 0, len(sec.Elements)),
		}
		if sec.Header != nil {
			header := describeElement(doc, sec.Header)
			info.Header = &header
		}
		for _, el := range sec.Elements {
			info.Elements = append(info.Elements, describeElement(doc, el))
		}
		sections = append(sections, info)
	}
	return sections
}

func describeElement(doc *rfmodel.Document, el *rfmodel.Element) elementInfo {
	info := elementInfo{
		Kind:     el.Kind.String(),
		Position: "-",
		Comments: len(el.Comments),
		Replay:   dump.ReplayEligible(doc, el),
	}

	if decl := doc.Token(el.Decl); decl != nil {
		info.Declaration = decl.Text
		info.Position = decl.Pos.String()
	} else if el.SourceLine > 0 {
		info.Position = fmt.Sprintf("%d:1", el.SourceLine)
	}

	for _, id := range el.Values {
		info.Values = append(info.Values, doc.Text(id))
	}
	for _, child := range el.Body {
		info.Body = append(info.Body, describeElement(doc, child))
	}
	return info
}
