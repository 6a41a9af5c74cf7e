package wallet

import "errors"

var (
	// ErrInsufficientFunds is returned when a block or debit would make
	// the available balance negative
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrWalletNotFound is returned when the wallet does not exist and
	// the operation does not create one
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrWalletInactive is returned when mutating a deactivated wallet
	ErrWalletInactive = errors.New("wallet is deactivated")
	// ErrInvalidAmount is returned for zero or negative amounts
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrTransactionImmutable is returned when updating a transaction
	// that already reached a terminal status
	ErrTransactionImmutable = errors.New("transaction already finalized")
	// ErrHoldNotFound is returned when no pending hold exists for a ride request
	ErrHoldNotFound = errors.New("no pending hold for request")
	// ErrSelfTransfer is returned when transferring to the same wallet
	ErrSelfTransfer = errors.New("cannot transfer to the same wallet")
)
