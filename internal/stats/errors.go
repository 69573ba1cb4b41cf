package stats

import (
	"errors"
	"fmt"
)

var (
	ErrIO        = errors.New("io failure")
	ErrFetch     = errors.New("fetch failure")
	ErrClone     = errors.New("clone failure")
	ErrWorkspace = errors.New("workspace failure")
)

// Messages returned to API clients.
const (
	MessageURLInvalid         = "URL seems invalid"
	MessageRequestFailed      = "GET request failed"
	MessageCloneFailed        = "Failed to git clone"
	MessageRepositoryNotFound = ".git directory not found"
	MessageWorkspaceFailed    = "Failed to make a temporary directory"
	MessageScanFailed         = "Failed to scan repository"
	MessageCleanupFailed      = "Failed to remove temporary directory"
)

// PipelineError is the failure of one analysis run. Its kind is one of ErrIO,
// ErrFetch, ErrClone or ErrWorkspace and can be matched with errors.Is.
type PipelineError struct {
	kind    error
	message string
	cause   error
}

func newPipelineError(kind error, message string, cause error) *PipelineError {
	return &PipelineError{
		kind:    kind,
		message: message,
		cause:   cause,
	}
}

// Error returns the client facing message.
func (e *PipelineError) Error() string {
	return e.message
}

func (e *PipelineError) Kind() error {
	return e.kind
}

func (e *PipelineError) Is(target error) bool {
	return target == e.kind
}

func (e *PipelineError) Unwrap() error {
	return e.cause
}

// Detail includes the underlying cause, for logs.
func (e *PipelineError) Detail() string {
	if e.cause == nil {
		return e.message
	}
	return fmt.Sprintf("%s: %v", e.message, e.cause)
}
