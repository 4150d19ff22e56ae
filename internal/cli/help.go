package cli

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/robotxt/internal/ui/pretty"
)

// Command groups shown in help.
const (
	groupRun     = "run"
	groupInspect = "inspect"
	groupSetup   = "setup"
)

func commandGroups() []*cobra.Group {
	return []*cobra.Group{
		{ID: groupRun, Title: "Commands:"},
		{ID: groupInspect, Title: "Inspection Commands:"},
		{ID: groupSetup, Title: "Setup Commands:"},
	}
}

// flagLine splits a pflag usage line into indent, names, value type and
// description.
var flagLine = regexp.MustCompile(`^(\s+)(-\S+(?:, --\S+)?)((?: \S+)?)(\s{2,})(.*)$`)

// HelpFormatter renders cobra help and usage with pretty styles.
type HelpFormatter struct {
	styles *pretty.Styles
}

// NewHelpFormatter creates a help formatter for writer in the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{styles: pretty.NewStyles(pretty.IsColorEnabled(colorMode, writer))}
}

const usageTemplate = `{{heading "Usage:"}}{{if .Runnable}}
  {{command .UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{command .CommandPath}} [command]{{end}}{{if .HasExample}}

{{heading "Examples:"}}
{{dim .Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{range $group := .Groups}}

{{heading $group.Title}}{{range $cmds}}{{if and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help"))}}
  {{subcommand (rpad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

{{heading "Additional Commands:"}}{{range $cmds}}{{if and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help"))}}
  {{subcommand (rpad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{heading "Flags:"}}
{{flags .LocalFlags}}{{end}}{{if .HasAvailableInheritedFlags}}

{{heading "Global Flags:"}}
{{flags .InheritedFlags}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{command (print .CommandPath " [command] --help")}}" for more information about a command.{{end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{trimRight .}}

{{end}}{{if or .Runnable .HasSubCommands}}{{.UsageString}}{{end}}`

func (h *HelpFormatter) funcs() template.FuncMap {
	return template.FuncMap{
		"heading":    func(s string) string { return h.styles.Paint(h.styles.Section, s) },
		"command":    func(s string) string { return h.styles.Paint(h.styles.Bold, s) },
		"subcommand": func(s string) string { return h.styles.Paint(h.styles.Element, s) },
		"dim":        func(s string) string { return h.styles.Paint(h.styles.Dim, s) },
		"flags":      h.flagUsages,
		"rpad":       rpad,
		"trimRight":  trimTrailingWhitespace,
	}
}

// flagUsages renders the usage of a flag set with flag names and value
// types styled. Alignment is computed by pflag on the plain text.
func (h *HelpFormatter) flagUsages(flags *pflag.FlagSet) string {
	usages := strings.TrimSuffix(flags.FlagUsages(), "\n")
	if !h.styles.ColorEnabled() {
		return usages
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		m := flagLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		lines[i] = m[1] +
			h.styles.TokenKind.Render(m[2]) +
			h.styles.Dim.Render(m[3]) +
			m[4] + m[5]
	}
	return strings.Join(lines, "\n")
}

// ApplyToCommand installs the styled templates on cmd. Subcommands inherit
// them.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := h.funcs()

	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return renderTemplate(c.OutOrStderr(), "usage", usageTemplate, funcs, c)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := renderTemplate(c.OutOrStdout(), "help", helpTemplate, funcs, c); err != nil {
			c.PrintErrln(err)
		}
	})
}

func renderTemplate(w io.Writer, name, text string, funcs template.FuncMap, cmd *cobra.Command) error {
	tmpl, err := template.New(name).Funcs(funcs).Parse(text)
	if err != nil {
		return fmt.Errorf("parse %s template: %w", name, err)
	}
	return tmpl.Execute(w, cmd)
}

func rpad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func trimTrailingWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
