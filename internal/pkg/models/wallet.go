package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet represents a user's mobile money wallet.
// Invariant: Balance >= BlockedAmount >= 0 at all times; every mutation is
// derived from the previous state inside a row-locked transaction.
type Wallet struct {
	UserID        uuid.UUID       `json:"user_id" db:"user_id"`
	Balance       decimal.Decimal `json:"balance" db:"balance"`
	BlockedAmount decimal.Decimal `json:"blocked_amount" db:"blocked_amount"`
	IsActive      bool            `json:"is_active" db:"is_active"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// AvailableBalance returns the spendable portion of the wallet
func (w *Wallet) AvailableBalance() decimal.Decimal {
	return w.Balance.Sub(w.BlockedAmount)
}
