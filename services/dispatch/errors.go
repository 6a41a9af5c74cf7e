package dispatch

import "errors"

var (
	// ErrDuplicateActiveRequest is returned when the user already has a live request
	ErrDuplicateActiveRequest = errors.New("user already has an active ride request")
	// ErrDistanceOutOfRange is returned for trips shorter or longer than the service bounds
	ErrDistanceOutOfRange = errors.New("trip distance out of serviceable range")
	// ErrNoDriverAvailable is returned when the matcher finds no compatible driver
	ErrNoDriverAvailable = errors.New("no driver available")
	// ErrRequestNotFound is returned when the ride request does not exist
	ErrRequestNotFound = errors.New("ride request not found")
	// ErrRideNotFound is returned when the ride does not exist
	ErrRideNotFound = errors.New("ride not found")
	// ErrRideAlreadyTaken is returned when another driver won the request
	ErrRideAlreadyTaken = errors.New("ride request already taken")
	// ErrDriverNotAvailable is returned when the accepting driver is offline,
	// busy or not active
	ErrDriverNotAvailable = errors.New("driver not available")
	// ErrWrongActor is returned when someone other than the assigned parties
	// drives a transition
	ErrWrongActor = errors.New("actor not allowed to perform this transition")
	// ErrInvalidTransition is returned for out-of-order lifecycle moves
	ErrInvalidTransition = errors.New("invalid ride state transition")
	// ErrCancelReasonRequired is returned when a cancellation carries no reason
	ErrCancelReasonRequired = errors.New("cancellation reason is required")
	// ErrInvalidLocation is returned for out-of-range coordinates
	ErrInvalidLocation = errors.New("invalid location coordinates")
)
