package cli

import (
	"errors"

	"github.com/yaklabco/ngpatch/internal/configloader"
	"github.com/yaklabco/ngpatch/pkg/fix"
	"github.com/yaklabco/ngpatch/pkg/fsutil"
	"github.com/yaklabco/ngpatch/pkg/jsonedit"
	"github.com/yaklabco/ngpatch/pkg/ngast"
	"github.com/yaklabco/ngpatch/pkg/parser"
	"github.com/yaklabco/ngpatch/pkg/parser/jsonast"
	"github.com/yaklabco/ngpatch/pkg/vtree"
)

// Exit codes for ngpatch, following sysexits(3) where one fits.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure is any error without a more specific code.
	ExitFailure = 1

	// ExitAborted indicates the user declined a confirmation prompt.
	ExitAborted = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitDataError indicates a source file could not be parsed or lacks
	// the structure an edit needs.
	ExitDataError = 65

	// ExitNoInput indicates a named input file does not exist.
	ExitNoInput = 66

	// ExitInternalError indicates an internal error such as conflicting edits.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 78
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		validation *configloader.ValidationError
		syntax     *jsonast.SyntaxError
		conflict   *fix.ConflictError
		invalid    *fix.ValidationError
	)

	switch {
	case errors.Is(err, ErrAborted):
		return ExitAborted
	case errors.Is(err, errUsage):
		return ExitInvalidUsage
	case errors.As(err, &validation), errors.Is(err, errConfig):
		return ExitConfigError
	case errors.Is(err, vtree.ErrNotFound), errors.Is(err, fsutil.ErrNotFound):
		return ExitNoInput
	case errors.As(err, &syntax),
		errors.Is(err, ErrSourceHasErrors),
		errors.Is(err, parser.ErrUnsupportedLanguage),
		errors.Is(err, ngast.ErrDecoratorNotFound),
		errors.Is(err, ngast.ErrPropertyNotArray),
		errors.Is(err, jsonedit.ErrNotArray),
		errors.Is(err, jsonedit.ErrNotObject),
		errors.Is(err, ErrPathNotFound):
		return ExitDataError
	case errors.As(err, &conflict), errors.As(err, &invalid):
		return ExitInternalError
	case errors.Is(err, vtree.ErrModifiedExternally),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitFailure
	}
}
