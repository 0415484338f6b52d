package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/twsort"
	"github.com/yacobolo/twsort/internal/files"
	"github.com/yacobolo/twsort/internal/logging"
	"github.com/yacobolo/twsort/internal/report"
	"github.com/yacobolo/twsort/internal/runner"
)

var rootCmd = &cobra.Command{
	Use:   "twsort [file-or-dir...]",
	Short: "Sort utility classes in class attributes",
	Long: `Sorts the classes of every class and className attribute into a
canonical order. Plain classes come first by precedence, variant classes
such as hover: and md: follow grouped by variant, unknown classes go last.

Without a mode flag the changes are shown as a diff.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runSort,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")

	flags := rootCmd.Flags()
	flags.Bool("write", false, "Rewrite files in place")
	flags.Bool("dry-run", false, "Print a diff of the changes (default)")
	flags.Bool("check-formatted", false, "Fail if any file has unsorted classes")
	flags.Bool("print", false, "Print every file with sorted classes")
	flags.Bool("stdin", false, "Read from standard input and print the result")
	flags.Bool("allow-duplicates", false, "Keep repeated classes")
	flags.String("custom-regex", "", "Pattern whose first group holds the classes")
	flags.String("config-file", defaultConfigFile, "Config file path (YAML, JSON or JSONC)")
	flags.StringSlice("ignored-files", nil, "Files or globs to leave untouched")
	flags.String("output-css-file", "", "Take the class order from a generated stylesheet")
	flags.Int("jobs", 0, "Files processed at once (default: number of CPUs)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}

	settings := buildRunSettings()
	if len(args) == 0 && !settings.Flags.Stdin {
		return errors.New("no files or directories given (use --stdin to read standard input)")
	}

	quiet := k.Bool("quiet")
	useColors := report.ShouldUseColors(k.Bool("color"))
	log := logging.New(cmd.ErrOrStderr(), logging.ResolveLevel(quiet, k.Bool("verbose")), useColors)
	defer func() { _ = log.Sync() }()

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	var reportOut io.Writer = cmd.OutOrStdout()
	if quiet {
		reportOut = io.Discard
	}

	mode := runner.ResolveWriteMode(settings.Flags)
	cfg := runner.Config{
		Engine:   twsort.New(opts),
		Mode:     mode,
		Jobs:     settings.Jobs,
		Reporter: report.NewReporter(reportOut, useColors),
		Logger:   log,
	}
	log.Debug("Starting",
		zap.Stringer("mode", mode),
		zap.Int("jobs", settings.Jobs),
		zap.Int("patternEntries", len(twsort.Entries(opts.Patterns))))

	if settings.Flags.Stdin {
		return runner.RunStdin(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	}

	paths, stats, err := files.Discover(args, files.NewIgnoreSet(settings.IgnoredFiles))
	if err != nil {
		return err
	}
	log.Debug("Discovered files",
		zap.Int("files", stats.FilesDiscovered),
		zap.Int("ignored", stats.FilesSkipped))

	_, err = runner.Run(cmd.Context(), cfg, paths)
	return err
}
