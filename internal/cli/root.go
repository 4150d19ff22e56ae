// Package cli provides the Cobra command structure for robotxt.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/robotxt/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root robotxt command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var logLevel string
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "robotxt",
		Short: "A format-preserving parser and formatter for Robot Framework data",
		Long: `robotxt reads Robot Framework plain text data in the space, pipe and tab
dialects into a model that remembers every separator, comment and line
ending of the source. Dumping an unmodified model reproduces the input
byte for byte; edited or new cells are written in the style of their
section.

Use check to verify round trips, format to convert or normalize layout,
and tokens or outline to inspect how a file is parsed.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			switch {
			case debug:
				logging.SetLevel("debug")
			case logLevel != "":
				logging.SetLevel(logLevel)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddGroup(commandGroups()...)
	addToGroup(rootCmd, groupRun, newCheckCommand(), newFormatCommand())
	addToGroup(rootCmd, groupInspect, newTokensCommand(), newOutlineCommand(), newSyntaxCommand())
	addToGroup(rootCmd, groupSetup, newInitCommand(), newConfigCommand(), newVersionCommand(info))
	rootCmd.SetHelpCommandGroupID(groupSetup)
	rootCmd.SetCompletionCommandGroupID(groupSetup)

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

func addToGroup(parent *cobra.Command, groupID string, cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		cmd.GroupID = groupID
		parent.AddCommand(cmd)
	}
}
