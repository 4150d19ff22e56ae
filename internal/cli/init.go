package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/yaklabco/robotxt/internal/logging"
	"github.com/yaklabco/robotxt/pkg/config"
	"github.com/yaklabco/robotxt/pkg/fsutil"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new robotxt configuration file",
		Long: `Create a new .robotxt.yml configuration file in the current directory
with documented defaults.

Examples:
  robotxt init                     Create minimal .robotxt.yml
  robotxt init --full              Write every option with its default
  robotxt init --format toml       Create .robotxt.toml instead
  robotxt init --output custom.yml Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Write every option with its default value")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "Output format: yaml or toml")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .robotxt.yml or .robotxt.toml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	ctx := commandContext(cmd)
	logger := logging.NewInteractive()
	logger.SetOutput(cmd.ErrOrStderr())

	format := config.FileFormat(flags.format)
	if format != config.FileFormatYAML && format != config.FileFormatTOML {
		return fmt.Errorf("%w: invalid format %q: must be yaml or toml", errUsage, flags.format)
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".robotxt." + map[config.FileFormat]string{
			config.FileFormatYAML: "yml",
			config.FileFormatTOML: "toml",
		}[format]
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	fsys := fsutil.OS()
	exists, err := afero.Exists(fsys.Afero(), absPath)
	if err != nil {
		return fmt.Errorf("stat %s: %w", outputPath, err)
	}
	if exists {
		if !flags.force {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", errUsage, outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{
		Full:   flags.full,
		Format: format,
	})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsys.WriteAtomic(ctx, absPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'robotxt config' to see the effective configuration")

	return nil
}
