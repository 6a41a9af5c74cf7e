package match

import "errors"

var (
	// ErrDriverNotFound is returned when a driver profile does not exist
	ErrDriverNotFound = errors.New("driver not found")
	// ErrInvalidLocation is returned for out-of-range coordinates
	ErrInvalidLocation = errors.New("invalid location coordinates")
)
