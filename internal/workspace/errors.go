package workspace

import "errors"

var (
	ErrInvalidPath   = errors.New("invalid workspace path")
	ErrCreateFailed  = errors.New("failed to create workspace")
	ErrReleaseFailed = errors.New("failed to release workspace")
)
