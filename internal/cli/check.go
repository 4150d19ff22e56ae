package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/robotxt/pkg/config"
	"github.com/yaklabco/robotxt/pkg/pipeline"
)

func newCheckCommand() *cobra.Command {
	var cfg config.Config
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Verify that files round trip byte for byte",
		Long: `Parse every discovered file and dump it unchanged. A file passes when the
output is identical to the input; mismatches are shown as unified diffs.

By default, checks all .robot and .resource files in the current directory
and subdirectories, plus .txt files that start with a Robot Framework
section header. Use "-" to read a single document from stdin.

Examples:
  robotxt check                     # Check current directory
  robotxt check tests/              # Check a directory
  robotxt check --format json       # Output as JSON for CI
  cat suite.robot | robotxt check - # Check stdin`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(cmd, args, &cfg, flags, pipeline.ModeCheck)
		},
	}

	addRunFlags(cmd, &cfg, flags)

	return cmd
}
