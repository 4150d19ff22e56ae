package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/robotxt/pkg/config"
)

func newConfigCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration that results from merging the system, user,
project and explicit configuration files with ROBOTXT_* environment
variables. The files that contributed are listed as comments.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fileFormat := config.FileFormat(format)
			if fileFormat != config.FileFormatYAML && fileFormat != config.FileFormatTOML {
				return fmt.Errorf("%w: invalid format %q: must be yaml or toml", errUsage, format)
			}

			loadResult, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}

			body, err := loadResult.Config.Marshal(fileFormat)
			if err != nil {
				return fmt.Errorf("marshal configuration: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(loadResult.LoadedFrom) == 0 {
				fmt.Fprintln(out, "# no configuration files found; showing defaults")
			}
			for _, path := range loadResult.LoadedFrom {
				fmt.Fprintf(out, "# loaded from %s\n", path)
			}
			_, err = out.Write(body)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or toml")

	return cmd
}
