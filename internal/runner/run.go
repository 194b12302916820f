package runner

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"mediasort/internal/config"
	"mediasort/internal/fileutil"
	"mediasort/internal/hook"
	"mediasort/internal/logging"
	"mediasort/internal/media"
	"mediasort/internal/organizer"
	"mediasort/internal/scan"
	"mediasort/internal/services"
)

// Option customizes Run.
type Option func(*runOptions)

type runOptions struct {
	hook hook.Runner
	now  func() time.Time
}

// WithHook replaces the hook derived from the config.
func WithHook(r hook.Runner) Option {
	return func(o *runOptions) {
		o.hook = r
	}
}

// WithClock overrides the time source used for summary timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *runOptions) {
		o.now = now
	}
}

// Run organizes every candidate file under cfg.Target. Individual file
// failures are recorded in the summary; only startup problems (lock, scan
// root) and cancellation return an error.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...Option) (*Summary, error) {
	if cfg == nil {
		return nil, services.Wrap(services.ErrConfiguration, "run", "start", "config is required", nil)
	}
	o := runOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	base := logger
	logger = logging.WithContext(ctx, logging.NewComponentLogger(base, "runner"))

	if !cfg.DryRun && strings.TrimSpace(cfg.LockPath) != "" {
		lock, err := acquireLock(cfg.LockPath)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := lock.release(); err != nil {
				logger.Warn("failed to release run lock", logging.Error(err))
			}
		}()
	}

	summary := &Summary{RunID: runID, DryRun: cfg.DryRun, Started: o.now()}
	logger.Info("run started",
		logging.String("target", cfg.Target),
		logging.String("tv_root", cfg.TVRoot),
		logging.String("movie_root", cfg.MovieRoot),
		logging.Bool("dry_run", cfg.DryRun),
	)

	files, err := scan.Files(cfg.Target, []string{cfg.TVRoot, cfg.MovieRoot},
		scan.WithSkipHandler(func(path string, err error) {
			logging.WarnWithContext(logger, "skipping unreadable path", "scan_unreadable",
				logging.String("path", path),
				logging.String(logging.FieldErrorHint, "check read permission"),
				logging.Error(err),
			)
			summary.Rejected = append(summary.Rejected, Rejection{Path: path, Reason: "unreadable"})
		}),
	)
	if err != nil {
		marker := services.ErrFilesystem
		if fileutil.IsNotExist(err) {
			marker = services.ErrNotFound
		}
		return nil, services.Wrap(marker, "scan", "walk target", "Unable to enumerate target", err)
	}
	logger.Debug("scan completed", logging.Int("files", len(files)))

	org := organizer.New(organizer.Options{
		TVRoot:    cfg.TVRoot,
		MovieRoot: cfg.MovieRoot,
		DryRun:    cfg.DryRun,
		Hook:      selectHook(cfg, o.hook),
		Logger:    base,
	})

	var runErr error
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			summary.Interrupted = true
			runErr = err
			logging.WarnWithContext(logger, "run interrupted", "run_interrupted",
				logging.String(logging.FieldImpact, "remaining files left in place"),
				logging.String(logging.FieldErrorHint, "rerun to continue; placed files are skipped as duplicates"),
			)
			break
		}
		processFile(ctx, logger, cfg, org, file, summary)
	}

	summary.Finished = o.now()
	tally := summary.Tally()
	logger.Info("run completed",
		logging.Int("moved", tally.Moved),
		logging.Int("planned", tally.Planned),
		logging.Int("duplicates", tally.Duplicate),
		logging.Int("failed", tally.Failed),
		logging.Int("rejected", tally.Rejected),
		logging.Int("ignored", tally.Ignored),
		logging.Duration("duration", summary.Duration()),
	)
	return summary, runErr
}

func processFile(ctx context.Context, logger *slog.Logger, cfg *config.Config, org *organizer.Organizer, file scan.File, summary *Summary) {
	fileLogger := logger.With(logging.String(logging.FieldSource, file.Path))

	if err := media.Gate(file.Name, file.Size, cfg.MinVideoSize); err != nil {
		summary.Ignored++
		fileLogger.Debug("file ignored",
			logging.String("reason", err.Error()),
			logging.String("size", humanize.Bytes(uint64(max(file.Size, 0)))),
		)
		return
	}

	desc, err := media.Classify(file.Path)
	switch {
	case errors.Is(err, media.ErrEmptyTitle):
		summary.Rejected = append(summary.Rejected, Rejection{Path: file.Path, Reason: err.Error()})
		fileLogger.Info("file skipped", logging.String("reason", err.Error()))
		return
	case err != nil:
		summary.Ignored++
		fileLogger.Debug("file ignored", logging.String("reason", err.Error()))
		return
	}

	fileLogger.Debug("file classified",
		logging.Args(logging.DecisionAttrs("classification", desc.Kind().String(), desc.Common().Title)...)...,
	)
	summary.Results = append(summary.Results, org.Place(ctx, desc))
}

func selectHook(cfg *config.Config, override hook.Runner) hook.Runner {
	if override != nil {
		return override
	}
	if !cfg.HookEnabled() {
		return nil
	}
	return hook.Exec{Path: cfg.HookPath, Timeout: cfg.HookTimeout}
}
