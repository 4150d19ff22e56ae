package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/robotxt/pkg/config"
	"github.com/yaklabco/robotxt/pkg/pipeline"
)

func newFormatCommand() *cobra.Command {
	var cfg config.Config
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "format [paths...]",
		Short: "Rewrite files in a dialect or normalized layout",
		Long: `Parse every discovered file and dump it with the configured layout.

Without --dialect, --line-separator or --reformat the source layout of
existing lines is kept and only the configured width and separators apply
to wrapped cells. An explicit dialect or line separator rewrites every
line. Files are only changed with --write; a sidecar backup is kept unless
--no-backups is given.

With "-" the document is read from stdin and the result printed to stdout.

Examples:
  robotxt format --dialect pipe --diff         # Preview a conversion
  robotxt format --dialect space -w tests/     # Convert in place
  robotxt format --line-separator lf -w .      # Normalize line endings
  robotxt format --check                       # Fail if files would change
  robotxt format --dialect tab - < suite.robot # Format stdin`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(cmd, args, &cfg, flags, pipeline.ModeFormat)
		},
	}

	addRunFlags(cmd, &cfg, flags)

	cmd.Flags().StringVar(&flags.dialect, "dialect", "auto", "target dialect: auto, space, pipe, tab")
	cmd.Flags().StringVar(&flags.lineSeparator, "line-separator", "auto", "line terminator: auto, lf, crlf, cr")
	cmd.Flags().IntVar(&cfg.SeparatorWidth, "separator-width", 0, "spaces between new cells in space separated sections")
	cmd.Flags().IntVar(&cfg.MaxLineWidth, "max-line-width", 0, "wrap new cells onto continuation lines past this width")
	cmd.Flags().BoolVarP(&cfg.Write, "write", "w", false, "write changes back to the files")
	cmd.Flags().BoolVar(&cfg.Diff, "diff", false, "show a unified diff of the changes")
	cmd.Flags().BoolVar(&cfg.Reformat, "reformat", false, "rewrite every line instead of keeping source layout")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation when writing")
	cmd.Flags().BoolVar(&flags.check, "check", false, "exit with status 1 when files would change")

	return cmd
}
