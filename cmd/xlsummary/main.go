// Package main provides the CLI entry point for xlsummary.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlsummary-go/internal/utils"
	"github.com/ukaji3/xlsummary-go/pkg/xlsummary"
	"github.com/ukaji3/xlsummary-go/pkg/xlsummary/output"
	"go.uber.org/zap"
)

var errBatchFailed = errors.New("one or more workbooks failed")

type flags struct {
	configPath string
	logLevel   string
	logFormat  string
	dryRun     bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand(stdout io.Writer) *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "xlsummary [directory]",
		Short: "Maintain a Summary sheet in every workbook of a folder",
		Long: `xlsummary records each sheet's name and "Unit Cost" value in a Summary
sheet of every .xlsx/.xlsm workbook in a folder, and reports what changed
since the previous run. The folder defaults to the directory of the binary.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f, stdout)
		},
	}

	rootCmd.Flags().StringVar(&f.configPath, "config", "", "Optional path to a configuration file")
	rootCmd.Flags().StringVar(&f.logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&f.logFormat, "log-format", "", "Override the configured log format (structured, console)")
	rootCmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "Report changes without saving workbooks")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, f flags, stdout io.Writer) error {
	cfg, loaded, err := loadConfiguration(f.configPath)
	if err != nil {
		return fmt.Errorf("unable to load configuration: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Common.LogLevel = f.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Common.LogFormat = f.logFormat
	}
	if cmd.Flags().Changed("dry-run") {
		cfg.Batch.DryRun = f.dryRun
	}

	logger, err := utils.NewLoggerFactory().CreateLogger(
		utils.LogLevel(cfg.Common.LogLevel),
		utils.LogFormat(cfg.Common.LogFormat),
	)
	if err != nil {
		return fmt.Errorf("unable to create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	logger.Debug("configuration initialized",
		zap.String("config_file", loaded.ConfigFileUsed),
		zap.String("log_level", cfg.Common.LogLevel),
		zap.String("log_format", cfg.Common.LogFormat),
	)

	dir, err := resolveDirectory(args, cfg.Batch.Directory)
	if err != nil {
		return err
	}

	result, err := xlsummary.ProcessFolder(cmd.Context(), dir, cfg.Options(logger), output.NewConsole(stdout))
	if err != nil {
		return err
	}
	if !result.OK() {
		return fmt.Errorf("%w: %d of %d", errBatchFailed, len(result.Failed), len(result.Files))
	}
	return nil
}

// resolveDirectory picks the positional argument, then the configured
// directory, then the directory of the running binary.
func resolveDirectory(args []string, configured string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if configured != "" {
		return configured, nil
	}
	return xlsummary.ExecutableDirectory()
}
