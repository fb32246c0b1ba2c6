package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
)

// Error types for the application
var (
	ErrMissingQuery     = fmt.Errorf("MISSING_QUERY")
	ErrMissingFilePath  = fmt.Errorf("MISSING_FILE_PATH")
	ErrFileNotFound     = fmt.Errorf("FILE_NOT_FOUND")
	ErrPermissionDenied = fmt.Errorf("PERMISSION_DENIED")
	ErrInvalidText      = fmt.Errorf("INVALID_TEXT")
)

// Process exit codes
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// UsageError wraps problems with the command line itself
type UsageError struct {
	Query string
	Err   error
}

func (e *UsageError) Error() string {
	if e.Query == "" {
		return fmt.Sprintf("usage error: %v", e.Err)
	}
	return fmt.Sprintf("usage error after query %q: %v", e.Query, e.Err)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// FileError wraps failures touching the target file
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s failed for path %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// ClassifyReadError tags a read failure with FILE_NOT_FOUND or
// PERMISSION_DENIED when the cause allows it. The cause stays reachable
// through errors.Is.
func ClassifyReadError(path string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		err = fmt.Errorf("%w: %w", ErrFileNotFound, err)
	case stderrors.Is(err, fs.ErrPermission):
		err = fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}

	return &FileError{Op: "read", Path: path, Err: err}
}

// Diagnostic renders the message shown on stderr for err.
func Diagnostic(err error) string {
	if err == nil {
		return ""
	}

	var usageErr *UsageError
	if stderrors.As(err, &usageErr) {
		switch {
		case stderrors.Is(usageErr, ErrMissingQuery):
			return "User error: { Expected query and file path arguments respectively. " +
				"Found no arguments. }"
		case stderrors.Is(usageErr, ErrMissingFilePath):
			return fmt.Sprintf("User error: { Expected query and file path arguments respectively. "+
				"Found only query: %q }", usageErr.Query)
		default:
			return fmt.Sprintf("User error: { %v }", usageErr.Err)
		}
	}

	var fileErr *FileError
	if stderrors.As(err, &fileErr) {
		switch {
		case stderrors.Is(fileErr, ErrFileNotFound):
			return fmt.Sprintf("User error: { Expected any file at file path. "+
				"Found no file at file path: %q }", fileErr.Path)
		case stderrors.Is(fileErr, ErrPermissionDenied):
			return fmt.Sprintf("User error: { Expected an accessible file. "+
				"Permission denied at file path %q }", fileErr.Path)
		}
	}

	return fmt.Sprintf("Application error: %v", err)
}

// ExitCode maps the outcome of a run onto a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}
