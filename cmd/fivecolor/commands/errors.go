package commands

import (
	"errors"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitError      = 1
	ExitNoColoring = 2
	ExitUsage      = 64
)

var (
	// ErrNoColoring is the user-visible outcome when the algorithm gives up
	// on a non-planar input or its result fails validation.
	ErrNoColoring = errors.New("no coloring found")

	// ErrInvalidColoring is returned by check for a coloring that is not a
	// proper total coloring of the graph.
	ErrInvalidColoring = errors.New("coloring is not valid for the graph")
)

// UsageError wraps a command-line argument error together with the usage
// text of the command that rejected it.
type UsageError struct {
	Err   error
	Usage string
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// AsUsage reports whether err is a UsageError.
func AsUsage(err error) (*UsageError, bool) {
	var u *UsageError
	ok := errors.As(err, &u)
	return u, ok
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrNoColoring), errors.Is(err, ErrInvalidColoring):
		return ExitNoColoring
	}
	if _, ok := AsUsage(err); ok {
		return ExitUsage
	}
	return ExitError
}
