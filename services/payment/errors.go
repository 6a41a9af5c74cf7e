package payment

import "errors"

var (
	// ErrTransactionNotFound is returned when no transaction matches the provider reference
	ErrTransactionNotFound = errors.New("transaction not found for provider reference")
	// ErrInvalidOutcome is returned for outcomes outside the provider contract
	ErrInvalidOutcome = errors.New("unknown payment outcome")
	// ErrProviderUnavailable is returned when the provider cannot be reached
	// or answers outside its contract
	ErrProviderUnavailable = errors.New("payment provider unavailable")
)
