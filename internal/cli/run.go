package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/robotxt/internal/configloader"
	"github.com/yaklabco/robotxt/internal/logging"
	"github.com/yaklabco/robotxt/pkg/config"
	"github.com/yaklabco/robotxt/pkg/fsutil"
	"github.com/yaklabco/robotxt/pkg/pipeline"
	"github.com/yaklabco/robotxt/pkg/reporter"
	"github.com/yaklabco/robotxt/pkg/runner"
)

// stdinPath is the argument that reads a single document from stdin.
const stdinPath = "-"

var (
	errConfigLoad  = errors.New("failed to load configuration")
	errUsage       = errors.New("invalid usage")
	errFilesFailed = errors.New("some files could not be processed")
)

// runFlags are shared by check and format.
type runFlags struct {
	format         string
	ignore         []string
	verbose        bool
	compact        bool
	noSummary      bool
	noEditorConfig bool
	followSymlinks bool
	detect         []string
	stdinName      string

	// format only
	check         bool
	dialect       string
	lineSeparator string
}

func addRunFlags(cmd *cobra.Command, cfg *config.Config, flags *runFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, diff")
	cmd.Flags().IntVarP(&cfg.Jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.detect, "detect", nil,
		"extensions included when the content looks like Robot Framework data (default .txt)")
	cmd.Flags().BoolVar(&cfg.StrictUTF8, "strict-utf8", false, "reject files that are not valid UTF-8")
	cmd.Flags().BoolVar(&flags.noEditorConfig, "no-editorconfig", false, "ignore .editorconfig files")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "follow symbolic links during discovery")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "list unchanged files too")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "hide the summary line")
	cmd.Flags().StringVar(&flags.stdinName, "stdin-filename", "<stdin>", "path reported for content read from stdin")
}

// loadConfig resolves the configuration for a command. cliCfg holds the
// values of flags that were set.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*configloader.LoadResult, error) {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		var validationErr *configloader.ValidationError
		if errors.As(err, &validationErr) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", errConfigLoad, err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	return loadResult, nil
}

// commandContext returns the command context carrying the default logger.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithLogger(ctx, logging.Default())
}

// runFiles implements check and format.
func runFiles(cmd *cobra.Command, args []string, cliCfg *config.Config, flags *runFlags, mode pipeline.Mode) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	cliCfg.Format = config.OutputFormat(format)
	cliCfg.Ignore = flags.ignore
	if cmd.Flags().Changed("dialect") {
		cliCfg.Dialect = config.Dialect(flags.dialect)
	}
	if cmd.Flags().Changed("line-separator") {
		cliCfg.LineSeparator = config.LineSeparator(flags.lineSeparator)
	}

	loadResult, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}
	cfg := loadResult.Config
	if flags.noEditorConfig {
		cfg.EditorConfig = false
	}

	logger.Debug("configuration loaded",
		logging.FieldCommand, mode.String(),
		logging.FieldDialect, cfg.Dialect,
		logging.FieldLineSeparator, cfg.LineSeparator,
		logging.FieldMaxWidth, cfg.MaxLineWidth,
		logging.FieldWrite, cfg.Write,
		logging.FieldJobs, cfg.Jobs,
	)

	fsys := fsutil.OS()
	pipe := pipeline.New(fsys, cfg)

	var result *runner.Result
	if len(args) == 1 && args[0] == stdinPath {
		if cfg.Write {
			return fmt.Errorf("%w: --write cannot be used with stdin", errUsage)
		}
		result, err = processStdin(ctx, cmd, pipe, cfg, flags, mode)
		if err != nil || result == nil {
			return err
		}
	} else {
		workDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}

		runOpts := runner.OptionsFromConfig(cfg, mode, args)
		runOpts.WorkingDir = workDir
		runOpts.FollowSymlinks = flags.followSymlinks
		if cmd.Flags().Changed("detect") {
			runOpts.DetectExtensions = flags.detect
		}

		logger.Debug("starting run",
			logging.FieldPaths, runOpts.Paths,
			logging.FieldWorkingDir, runOpts.WorkingDir,
			logging.FieldJobs, runOpts.Jobs,
		)

		result, err = runner.New(fsys, pipe).Run(ctx, runOpts)
		if err != nil {
			return fmt.Errorf("%s run failed: %w", mode, err)
		}
	}

	if err := report(ctx, cmd, result, format, flags); err != nil {
		return err
	}

	switch ExitCodeFromResult(result, flags.check) {
	case ExitChanges:
		return ErrChangesFound
	case ExitIOError:
		return fmt.Errorf("%w: %w", errFilesFailed, result.Err())
	default:
		return nil
	}
}

func report(ctx context.Context, cmd *cobra.Command, result *runner.Result, format reporter.Format, flags *runFlags) error {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	workDir, err := os.Getwd()
	if err != nil {
		workDir = ""
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowSummary: !flags.noSummary,
		Verbose:     flags.verbose,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logging.FromContext(ctx).Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}
	return nil
}

// processStdin runs one document read from stdin. Plain format prints the
// formatted document and returns a nil result; every other combination is
// reported like a file.
func processStdin(
	ctx context.Context,
	cmd *cobra.Command,
	pipe *pipeline.Pipeline,
	cfg *config.Config,
	flags *runFlags,
	mode pipeline.Mode,
) (*runner.Result, error) {
	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	opts := pipeline.OptionsFromConfig(cfg, mode)
	res, err := pipe.ProcessContent(ctx, flags.stdinName, content, opts)
	if err != nil {
		return runner.Collect(mode, runner.FileOutcome{Path: flags.stdinName, Error: err}), nil
	}

	if mode == pipeline.ModeFormat && cfg.Format == config.FormatText && !cfg.Diff {
		out := content
		if res.Changed {
			out = res.Content
		}
		if _, err := cmd.OutOrStdout().Write(out); err != nil {
			return nil, fmt.Errorf("write stdout: %w", err)
		}
		if flags.check && res.Changed {
			return nil, ErrChangesFound
		}
		return nil, nil
	}

	return runner.Collect(mode, runner.FileOutcome{Path: flags.stdinName, Result: res}), nil
}
