package cli

import (
	"errors"

	"github.com/yaklabco/robotxt/internal/configloader"
	"github.com/yaklabco/robotxt/pkg/fsutil"
	"github.com/yaklabco/robotxt/pkg/pipeline"
	"github.com/yaklabco/robotxt/pkg/runner"
)

// Exit codes for robotxt.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitChanges indicates a check found round trip mismatches, or format
	// without --write found files it would change.
	ExitChanges = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrChangesFound is returned when a run ends with ExitChanges.
var ErrChangesFound = errors.New("files do not match their formatted content")

// ExitCodeFromResult determines the exit code of a check or format run.
// With check set, format fails when it would change a file it did not
// write.
func ExitCodeFromResult(result *runner.Result, check bool) int {
	if result == nil {
		return ExitSuccess
	}
	if result.Stats.FilesErrored > 0 {
		return ExitIOError
	}

	switch result.Mode {
	case pipeline.ModeCheck:
		if result.HasFailures() {
			return ExitChanges
		}
	case pipeline.ModeFormat:
		if check && result.Stats.FilesChanged > result.Stats.FilesWritten {
			return ExitChanges
		}
	}
	return ExitSuccess
}

// ExitCodeFromError maps an error returned by a command to an exit code.
func ExitCodeFromError(err error) int {
	var validationErr *configloader.ValidationError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrChangesFound):
		return ExitChanges
	case errors.As(err, &validationErr), errors.Is(err, errConfigLoad):
		return ExitConfigError
	case errors.Is(err, errUsage):
		return ExitInvalidUsage
	case errors.Is(err, pipeline.ErrFileNotFound),
		errors.Is(err, pipeline.ErrPermissionDenied),
		errors.Is(err, pipeline.ErrWriteFailure),
		errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
