package vimv

import (
	"errors"
	"fmt"
)

// ErrorKind identifies why a run was aborted.
type ErrorKind string

const (
	ErrMissingArgument ErrorKind = "MISSING_ARGUMENT"
	ErrEditorFailure   ErrorKind = "EDITOR_FAILURE"
	ErrCountMismatch   ErrorKind = "COUNT_MISMATCH"
	ErrInputNotFound   ErrorKind = "INPUT_NOT_FOUND"
	ErrOutputExists    ErrorKind = "OUTPUT_EXISTS"
	ErrDirCreate       ErrorKind = "DIR_CREATE"
	ErrRenameFailed    ErrorKind = "RENAME_FAILED"
	ErrInvalidInput    ErrorKind = "INVALID_INPUT"
)

// RenameError is returned for every terminal failure. Error() yields the
// line printed after "Error: ".
type RenameError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *RenameError) Error() string {
	switch e.Kind {
	case ErrMissingArgument:
		return "missing filename argument"
	case ErrCountMismatch:
		return "number of input filenames does not match number of output filenames"
	case ErrInputNotFound:
		return fmt.Sprintf("the input file '%s' does not exist", e.Path)
	case ErrOutputExists:
		return fmt.Sprintf("the output file '%s' already exists", e.Path)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *RenameError) Unwrap() error { return e.Err }

// Is matches any *RenameError of the same kind.
func (e *RenameError) Is(target error) bool {
	var t *RenameError
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

func newError(kind ErrorKind, path string) *RenameError {
	return &RenameError{Kind: kind, Path: path}
}

func wrapError(err error, kind ErrorKind, path string) *RenameError {
	if err == nil {
		return nil
	}
	return &RenameError{Kind: kind, Path: path, Err: err}
}

// IsKind reports whether err carries a RenameError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var re *RenameError
	if errors.As(err, &re) {
		return re.Kind == kind
	}
	return false
}

// DetailedError carries the stack of a recovered panic.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string { return e.Err.Error() }

func (e *DetailedError) Unwrap() error { return e.Err }
