package scanner

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid scanner config")
	ErrScanFailed    = errors.New("failed to scan directory")
)
