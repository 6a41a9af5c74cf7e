package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry
type TransactionType string

const (
	TransactionTypeDeposit      TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal   TransactionType = "WITHDRAWAL"
	TransactionTypePayment      TransactionType = "PAYMENT"
	TransactionTypeTransfer     TransactionType = "TRANSFER"
	TransactionTypeCredit       TransactionType = "CREDIT"
	TransactionTypeRideEarnings TransactionType = "RIDE_EARNINGS"
)

// TransactionStatus is the settlement state of a ledger entry
type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "PENDING"
	TransactionStatusProcessing TransactionStatus = "PROCESSING"
	TransactionStatusCompleted  TransactionStatus = "COMPLETED"
	TransactionStatusFailed     TransactionStatus = "FAILED"
)

// IsTerminal reports whether the status permits no further updates
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusCompleted || s == TransactionStatusFailed
}

// Known metadata keys. Metadata is schemaless in the database but each
// use site writes only from this set.
const (
	MetaKeyProvider     = "provider"
	MetaKeyMethod       = "method"
	MetaKeyPhoneNumber  = "phone_number"
	MetaKeyCounterparty = "counterparty"
	MetaKeyReason       = "reason"
	MetaKeyRideType     = "ride_type"
)

// Metadata is a free-form key/value bag persisted as JSONB
type Metadata map[string]string

// Value implements driver.Valuer for JSONB columns
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB columns
func (m *Metadata) Scan(src interface{}) error {
	if src == nil {
		*m = Metadata{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported metadata type %T", src)
	}
}

// Transaction is an immutable ledger entry. Amount is signed: negative
// means money leaving the wallet. Once Status is COMPLETED the row is
// never mutated again; corrections are appended as new transactions.
type Transaction struct {
	ID            uuid.UUID         `json:"id" db:"id"`
	UserID        uuid.UUID         `json:"user_id" db:"user_id"`
	Type          TransactionType   `json:"type" db:"type"`
	Amount        decimal.Decimal   `json:"amount" db:"amount"`
	Fees          decimal.Decimal   `json:"fees" db:"fees"`
	Status        TransactionStatus `json:"status" db:"status"`
	BalanceBefore decimal.Decimal   `json:"balance_before" db:"balance_before"`
	BalanceAfter  decimal.Decimal   `json:"balance_after" db:"balance_after"`
	ExternalRef   *string           `json:"external_ref,omitempty" db:"external_ref"`
	RideID        *uuid.UUID        `json:"ride_id,omitempty" db:"ride_id"`
	Metadata      Metadata          `json:"metadata,omitempty" db:"metadata"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	ProcessedAt   *time.Time        `json:"processed_at,omitempty" db:"processed_at"`
}
