package organizer

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"mediasort/internal/fileutil"
	"mediasort/internal/hook"
	"mediasort/internal/logging"
	"mediasort/internal/media"
	"mediasort/internal/services"
)

const stageName = "placement"

// Options configures an Organizer.
type Options struct {
	TVRoot    string
	MovieRoot string
	DryRun    bool
	// Hook runs after each successful move. Nil disables it.
	Hook   hook.Runner
	Logger *slog.Logger
}

// Organizer moves classified files into the TV and movie libraries.
type Organizer struct {
	tvRoot    string
	movieRoot string
	dryRun    bool
	hook      hook.Runner
	logger    *slog.Logger
}

// New constructs an Organizer.
func New(opts Options) *Organizer {
	return &Organizer{
		tvRoot:    opts.TVRoot,
		movieRoot: opts.MovieRoot,
		dryRun:    opts.DryRun,
		hook:      opts.Hook,
		logger:    logging.NewComponentLogger(opts.Logger, "organizer"),
	}
}

// Place moves the file described by desc into the library. Failures are
// reported in the Result and never abort the caller's run.
func (o *Organizer) Place(ctx context.Context, desc media.Descriptor) Result {
	base := desc.Common()
	ctx = services.WithStage(ctx, stageName)
	ctx = services.WithSource(ctx, base.SourcePath)
	logger := logging.WithContext(ctx, o.logger)

	destination := DestinationPath(desc, o.tvRoot, o.movieRoot)
	result := Result{
		Source:      base.SourcePath,
		Kind:        desc.Kind(),
		Title:       base.Title,
		Destination: destination,
		DryRun:      o.dryRun,
	}

	occupied, existing, err := VideoExists(destination)
	if err != nil {
		result.Outcome = OutcomeError
		result.Err = services.Wrap(services.ErrFilesystem, stageName, "check destination", "Unable to inspect library directory", err)
		logging.ErrorWithContext(logger, "destination check failed", "placement_check_failed",
			logging.String("destination", destination),
			logging.String(logging.FieldErrorHint, libraryHint(err)),
			logging.Error(err),
		)
		return result
	}
	if occupied {
		result.Outcome = OutcomeDuplicate
		result.Existing = existing
		result.Err = services.Wrap(services.ErrConflict, stageName, "check destination", existing, nil)
		logging.WarnWithContext(logger, "destination already occupied", "placement_duplicate",
			logging.String("destination", destination),
			logging.String("existing", existing),
			logging.String(logging.FieldErrorHint, "remove or rename the library copy to replace it"),
		)
		return result
	}

	if o.dryRun {
		result.Outcome = OutcomePlanned
		result.Subtitle = placeSubtitle(base.SourcePath, destination, true)
		logger.Info("placement planned",
			logging.String("kind", desc.Kind().String()),
			logging.String("destination", destination),
			logging.Bool("subtitle", result.Subtitle != nil),
		)
		return result
	}

	if err := o.move(base.SourcePath, destination); err != nil {
		result.Outcome = OutcomeError
		result.Err = err
		logging.ErrorWithContext(logger, "move failed", "placement_move_failed",
			logging.String("destination", destination),
			logging.String(logging.FieldErrorHint, libraryHint(err)),
			logging.Error(err),
		)
	} else {
		result.Outcome = OutcomeMoved
		logger.Info("file placed",
			logging.String("kind", desc.Kind().String()),
			logging.String("destination", destination),
		)
	}

	result.Subtitle = placeSubtitle(base.SourcePath, destination, false)
	o.logSubtitle(logger, result.Subtitle)

	if result.Outcome == OutcomeMoved && o.hook != nil {
		o.runHook(ctx, logger, &result)
	}
	return result
}

func (o *Organizer) move(source, destination string) error {
	if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return services.Wrap(services.ErrFilesystem, stageName, "create title directory", "Unable to create library directory", err)
	}
	if err := fileutil.Rename(source, destination); err != nil {
		return services.Wrap(services.ErrFilesystem, stageName, "rename", "Unable to move file into library", err)
	}
	return nil
}

func (o *Organizer) logSubtitle(logger *slog.Logger, sub *SubtitleResult) {
	if sub == nil {
		return
	}
	if sub.Err != nil {
		hint := "check subtitle permissions"
		if errors.Is(sub.Err, fileutil.ErrDestinationExists) {
			hint = "a subtitle already exists in the library"
		}
		logging.WarnWithContext(logger, "subtitle not moved", "subtitle_move_failed",
			logging.String("subtitle", sub.Source),
			logging.String("destination", sub.Destination),
			logging.String(logging.FieldErrorHint, hint),
			logging.String(logging.FieldImpact, "subtitle left next to the source"),
			logging.Error(sub.Err),
		)
		return
	}
	logger.Info("subtitle placed", logging.String("destination", sub.Destination))
}

func (o *Organizer) runHook(ctx context.Context, logger *slog.Logger, result *Result) {
	out, err := o.hook.Run(ctx, result.Destination)
	result.Hook = &out
	for _, line := range out.Stdout {
		logger.Debug("hook output", logging.String("line", line))
	}
	for _, line := range out.Stderr {
		logger.Error("hook stderr", logging.String("line", line))
	}
	if err != nil {
		result.HookErr = err
		logging.ErrorWithContext(logger, "hook failed", "hook_failed",
			logging.String("destination", result.Destination),
			logging.Int("exit_code", out.ExitCode),
			logging.String(logging.FieldErrorHint, "the move was kept; rerun the hook manually if needed"),
			logging.Error(err),
		)
		return
	}
	logger.Debug("hook completed",
		logging.Duration("duration", out.Duration),
		logging.Int("exit_code", out.ExitCode),
	)
}

// libraryUnavailableErrors indicate the library filesystem is gone rather
// than a problem with the individual file.
var libraryUnavailableErrors = []error{
	syscall.ENODEV,
	syscall.ENOTCONN,
	syscall.EHOSTDOWN,
	syscall.EHOSTUNREACH,
	syscall.ETIMEDOUT,
	syscall.EIO,
	syscall.ESTALE,
}

func libraryHint(err error) string {
	if errors.Is(err, fileutil.ErrCrossDevice) {
		return "downloads and library must be on the same filesystem"
	}
	if errors.Is(err, os.ErrPermission) {
		return "check write permission on the library directory"
	}
	for _, target := range libraryUnavailableErrors {
		if errors.Is(err, target) {
			return "library filesystem unavailable; check the mount"
		}
	}
	if msg := strings.TrimSpace(services.Kind(err)); msg != "" && msg != "unknown" {
		return "see error for details (" + msg + ")"
	}
	return "check logs for details"
}
