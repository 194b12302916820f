package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"mediasort/internal/config"
	"mediasort/internal/logging"
	"mediasort/internal/preflight"
	"mediasort/internal/runner"
)

var errPreflight = errors.New("startup validation failed")

type rootFlags struct {
	dryRun      bool
	hook        string
	hookTimeout time.Duration
	minSize     string
	logLevel    string
	logFormat   string
	logFile     string
	output      string
	lockFile    string
	noColor     bool
}

func newRootCommand() *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "mediasort <tv-dir> <movie-dir> <file-or-dir> [test|<hook>]",
		Short: "Sort downloaded TV episodes and movies into library folders",
		Long: "mediasort classifies video files by name, moves each into a title folder under\n" +
			"the TV or movie library, carries along a matching .srt subtitle, and optionally\n" +
			"runs a hook with the new path. Pass \"test\" as the fourth argument for a dry-run.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.RangeArgs(3, 4)(cmd, args); err != nil {
				cmd.PrintErrln(cmd.UsageString())
				return fmt.Errorf("%w: %v", config.ErrUsage, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &flags, args)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	f := rootCmd.Flags()
	f.BoolVar(&flags.dryRun, "dry-run", false, "Report decisions without moving anything")
	f.StringVar(&flags.hook, "hook", "", "Executable to run after each move (env MEDIASORT_HOOK)")
	f.DurationVar(&flags.hookTimeout, "hook-timeout", 0, "Maximum hook runtime; 0 waits indefinitely")
	f.StringVar(&flags.minSize, "min-size", "50MB", "Smallest file treated as a video")
	f.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error (env MEDIASORT_LOG_LEVEL)")
	f.StringVar(&flags.logFormat, "log-format", "", "Log format: console or json (env MEDIASORT_LOG_FORMAT)")
	f.StringVar(&flags.logFile, "log-file", "", "Also write logs to this file")
	f.StringVar(&flags.output, "output", "table", "Summary output: table, json, toml, none")
	f.StringVar(&flags.lockFile, "lock-file", "", "Run lock path; empty disables locking (default $XDG_RUNTIME_DIR or $TMPDIR)")
	f.BoolVar(&flags.noColor, "no-color", false, "Disable colored summary output (env NO_COLOR)")

	return rootCmd
}

// resolveConfig layers defaults, environment, flags and positional arguments,
// in increasing order of precedence.
func resolveConfig(cmd *cobra.Command, flags *rootFlags, args []string) (*config.Config, error) {
	base := config.Default()
	base.ApplyEnv(os.LookupEnv)

	changed := cmd.Flags().Changed
	if changed("dry-run") {
		base.DryRun = flags.dryRun
	}
	if changed("hook") {
		base.HookPath = flags.hook
	}
	if changed("hook-timeout") {
		base.HookTimeout = flags.hookTimeout
	}
	if changed("min-size") {
		size, err := config.ParseSize(flags.minSize)
		if err != nil {
			return nil, fmt.Errorf("--min-size: %w", err)
		}
		base.MinVideoSize = size
	}
	if changed("log-level") {
		base.Logging.Level = flags.logLevel
	}
	if changed("log-format") {
		base.Logging.Format = flags.logFormat
	}
	if changed("log-file") {
		base.Logging.File = flags.logFile
	}
	if changed("output") {
		base.Output = flags.output
	}
	if changed("lock-file") {
		base.LockPath = flags.lockFile
	}
	if changed("no-color") {
		base.NoColor = flags.noColor
	}

	return config.Load(base, args)
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	results := preflight.RunAll(cfg)
	stderr := cmd.ErrOrStderr()
	colorize := !cfg.NoColor && shouldColorize(stderr)
	if failed := preflight.Failed(results); len(failed) > 0 {
		for _, result := range failed {
			fmt.Fprintln(stderr, renderStatusLine(result.Name, statusError, result.Detail, colorize))
		}
		return errPreflight
	}
	for _, result := range preflight.Warnings(results) {
		fmt.Fprintln(stderr, renderStatusLine(result.Name, statusWarn, result.Detail, colorize))
	}
	if hookPath := cfg.HookPath; preflight.DisableUnavailableHook(cfg, results) {
		logging.WarnWithContext(logger, "hook unavailable; continuing without it", "hook_unavailable",
			logging.String("hook", hookPath),
			logging.String(logging.FieldImpact, "files are moved but no hook runs"),
			logging.String(logging.FieldErrorHint, "pass an existing executable as the fourth argument"),
		)
	}

	summary, runErr := runner.Run(cmd.Context(), cfg, logger)
	if summary != nil {
		if err := writeSummary(cmd, cfg, summary); err != nil {
			return err
		}
	}
	return runErr
}
