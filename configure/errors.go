package configure

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSourceDirectory is returned when the source tree does not exist.
	ErrInvalidSourceDirectory = errors.New("invalid source directory specified")
	// ErrMissingPairedCompiler is returned when a C++ compiler is given without a C compiler.
	ErrMissingPairedCompiler = errors.New("--cxx specified but not --cc")
	// ErrInvalidProfile is returned for build profiles other than Debug and Release.
	ErrInvalidProfile = errors.New("invalid build profile")
	// ErrInvalidDefinition is returned for cache definitions not shaped NAME:TYPE=VALUE.
	ErrInvalidDefinition = errors.New("invalid cache definition")
)

// ExternalToolFailure reports a configure step that could not run or exited non-zero.
type ExternalToolFailure struct {
	Tool     string
	ExitCode int
	Err      error
}

func (e *ExternalToolFailure) Error() string {
	if e.ExitCode > 0 {
		return fmt.Sprintf("%s exited with status %d", e.Tool, e.ExitCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
	}
	return fmt.Sprintf("%s failed", e.Tool)
}

func (e *ExternalToolFailure) Unwrap() error { return e.Err }
