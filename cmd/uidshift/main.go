package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dgalbraith/uidshift/internal/config"
	"github.com/dgalbraith/uidshift/internal/engine"
	"github.com/dgalbraith/uidshift/internal/event"
	"github.com/dgalbraith/uidshift/internal/filter"
	"github.com/dgalbraith/uidshift/internal/stats"
	"github.com/dgalbraith/uidshift/internal/ui"
)

var version = "dev"

func main() {
	os.Exit(run())
}

// excludeFlag is a custom pflag.Value that appends --exclude patterns to
// a shared filter.Chain, preserving CLI ordering.
type excludeFlag struct {
	chain *filter.Chain
}

var _ pflag.Value = (*excludeFlag)(nil)

func (*excludeFlag) String() string { return "" }
func (*excludeFlag) Type() string   { return "string" }

func (f *excludeFlag) Set(val string) error {
	return f.chain.AddExclude(val)
}

func run() int {
	if err := newRootCmd().Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

//nolint:gocyclo,revive // cognitive-complexity: CLI entry point orchestrates all flag parsing
func newRootCmd() *cobra.Command {
	var (
		fromBase    uint32
		toBase      uint32
		rangeSize   uint32
		uidOnly     bool
		gidOnly     bool
		dryRun      bool
		verbose     bool
		quiet       bool
		logFile     string
		showVersion bool
	)

	chain := filter.NewChain()

	rootCmd := &cobra.Command{
		Use:   "uidshift [flags] <base-directory>",
		Short: "Remap UID/GID ranges across a filesystem subtree",
		Long: `uidshift translates numeric ownership IDs that fall inside a source
range into a corresponding target range across every entry of a subtree,
leaving all other IDs untouched. Typical use: migrating container
filesystems between hosts with different user-namespace offsets.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				return nil
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "uidshift %s\n", version)
				return nil
			}

			baseDir := args[0]

			// Required flags are checked here rather than via
			// MarkFlagRequired so --version works without them.
			if !cmd.Flags().Changed("from-base") || !cmd.Flags().Changed("to-base") {
				return errors.New("--from-base and --to-base are required")
			}
			if verbose && quiet {
				return errors.New("--verbose and --quiet are mutually exclusive")
			}

			// Load optional config file.
			fileCfg, err := config.Load()
			if err != nil {
				slog.Warn("failed to load config", "error", err)
			}
			applyConfigDefaults(cmd, fileCfg.Defaults, &rangeSize, &verbose)
			for _, pattern := range fileCfg.Defaults.Exclude {
				if err := chain.AddExclude(pattern); err != nil {
					return fmt.Errorf("config exclude pattern %q: %w", pattern, err)
				}
			}

			// Configure logging. A short run id correlates log streams
			// when batch tooling invokes uidshift repeatedly.
			logLevel := slog.LevelWarn
			if verbose {
				logLevel = slog.LevelDebug
			} else if !quiet {
				logLevel = slog.LevelInfo
			}
			textHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLevel,
			})
			var logHandler slog.Handler = textHandler
			if logFile != "" {
				lf, lfErr := os.Create(logFile)
				if lfErr != nil {
					return fmt.Errorf("open log file: %w", lfErr)
				}
				defer lf.Close()
				jsonHandler := slog.NewJSONHandler(lf, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})
				logHandler = ui.NewMultiHandler(textHandler, jsonHandler)
			}
			logger := slog.New(logHandler).With("run_id", uuid.New().String()[:8])
			slog.SetDefault(logger)

			if dryRun {
				slog.Info("dry run mode, no changes will be made")
			}

			// Set up context with signal handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			collector := stats.NewCollector()
			events := make(chan event.Event, 256)

			isTTY := ui.IsTTY(os.Stderr.Fd())
			presenter := ui.NewPresenter(ui.Config{
				Writer:    os.Stdout,
				ErrWriter: os.Stderr,
				Stats:     collector,
				IsTTY:     isTTY,
				Quiet:     quiet,
				Verbose:   verbose,
				DryRun:    dryRun,
			})

			engineCfg := engine.Config{
				BaseDir:   baseDir,
				FromBase:  fromBase,
				ToBase:    toBase,
				RangeSize: rangeSize,
				UIDOnly:   uidOnly,
				GIDOnly:   gidOnly,
				DryRun:    dryRun,
				Verbose:   verbose,
				Events:    events,
				Stats:     collector,
			}
			if !chain.Empty() {
				engineCfg.Filter = chain
				slog.Debug("exclusions active", "patterns", chain.Patterns())
			}

			// Presenter in background, engine in foreground.
			var presenterWg sync.WaitGroup
			presenterWg.Add(1)
			go func() {
				defer presenterWg.Done()
				_ = presenter.Run(events) //nolint:errcheck // presenter error is non-fatal
			}()

			result := engine.Run(ctx, engineCfg)
			stop()
			close(events)
			presenterWg.Wait()

			if !quiet {
				if summary := presenter.Summary(); summary != "" {
					fmt.Fprintln(os.Stderr, summary)
				}
			}

			switch {
			case errors.Is(result.Err, engine.ErrBaseDirectory):
				slog.Error("remap failed", "error", result.Err)
				return &exitError{code: 2}
			case result.Err != nil:
				slog.Error("remap failed", "error", result.Err)
				return &exitError{code: 1}
			case result.Stats.Failed > 0:
				slog.Error("remap completed with failures", "failed", result.Stats.Failed)
				return &exitError{code: 3}
			}

			return nil
		},
	}

	rootCmd.Flags().BoolVar(&showVersion, "version", false, "print version and exit")
	rootCmd.Flags().Uint32Var(&fromBase, "from-base", 0, "start of the source UID/GID range (e.g. 100000)")
	rootCmd.Flags().Uint32Var(&toBase, "to-base", 0, "start of the target UID/GID range (e.g. 50000000)")
	rootCmd.Flags().Uint32Var(&rangeSize, "range-size", 65536, "number of consecutive IDs covered")
	rootCmd.Flags().BoolVar(&uidOnly, "uid-only", false, "only remap UIDs, leave GIDs unchanged")
	rootCmd.Flags().BoolVar(&gidOnly, "gid-only", false, "only remap GIDs, leave UIDs unchanged")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report intended changes without mutating")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "per-entry output and debug logging")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress all output except errors")
	rootCmd.Flags().StringVar(&logFile, "log", "", "write structured JSON log to FILE")
	rootCmd.Flags().Var(&excludeFlag{chain: chain}, "exclude",
		"exclude relative paths matching PATTERN (repeatable)")

	rootCmd.AddCommand(docsCmd)

	return rootCmd
}

// applyConfigDefaults applies config file defaults for flags not
// explicitly set on the CLI.
func applyConfigDefaults(
	cmd *cobra.Command,
	defaults config.DefaultsConfig,
	rangeSize *uint32,
	verbose *bool,
) {
	if !cmd.Flags().Changed("range-size") && defaults.RangeSize != nil {
		*rangeSize = *defaults.RangeSize
	}
	if !cmd.Flags().Changed("verbose") && defaults.Verbose != nil {
		*verbose = *defaults.Verbose
	}
}

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}
