package git

import "errors"

var (
	ErrURLInvalid         = errors.New("url seems invalid")
	ErrRequestFailed      = errors.New("get request failed")
	ErrCloneFailed        = errors.New("failed to clone repository")
	ErrRepositoryNotFound = errors.New("repository metadata not found")
	ErrUnsupportedDriver  = errors.New("unsupported clone driver")
)
