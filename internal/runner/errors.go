package runner

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedExitCode = errors.New("unexpected exit code")
	ErrLaunch             = errors.New("launch failed")
)

// Reports a build tool exit code outside the accepted set.
type ExitCodeError struct {
	Name string // Executable name.
	Code int    // Exit code reported by the tool.
}

// Formats the error.
func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("%s failed with unexpected exit code %d", e.Name, e.Code)
}

// Matches [ErrUnexpectedExitCode].
func (e *ExitCodeError) Is(target error) bool {
	return target == ErrUnexpectedExitCode
}
