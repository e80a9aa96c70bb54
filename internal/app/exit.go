package app

import (
	"errors"
	"fmt"
)

// ExitCode is the process exit status the entry point should terminate with.
type ExitCode int

const (
	ExitSuccess ExitCode = 0
	ExitFailure ExitCode = 1
)

var (
	// ErrPlatformInit means the windowing subsystem could not be initialised.
	ErrPlatformInit = errors.New("windowing subsystem failed to initialise")
	// ErrWindowCreate means the window or its context could not be created.
	ErrWindowCreate = errors.New("window creation failed")
	// ErrContext means the context was created but could not be made current.
	ErrContext = errors.New("graphics context failed to load")
	// ErrAlreadyInitialised is returned by a second Init on the same Application.
	ErrAlreadyInitialised = errors.New("application already initialised")
)

// ShutdownRequest is what Init and Shutdown hand back to the entry point instead of exiting
// the process themselves. Err is set for failure codes.
type ShutdownRequest struct {
	Code ExitCode
	Err  error
}

// OK reports whether the request carries the success code.
func (r ShutdownRequest) OK() bool {
	return r.Code == ExitSuccess
}

func (r ShutdownRequest) String() string {
	if r.Err != nil {
		return fmt.Sprintf("exit %d: %v", r.Code, r.Err)
	}
	return fmt.Sprintf("exit %d", r.Code)
}
