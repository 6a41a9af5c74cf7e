package wallet

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wakacab/wakacab/internal/pkg/models"
)

// Op is a ledger mutation kind. Block and Unblock move only the blocked
// amount; Settle consumes a reservation (balance and blocked both drop);
// Credit and Debit move the balance directly. None records intent only:
// a pending deposit must not hold funds the wallet does not have yet.
type Op string

const (
	OpBlock   Op = "block"
	OpUnblock Op = "unblock"
	OpSettle  Op = "settle"
	OpCredit  Op = "credit"
	OpDebit   Op = "debit"
	OpNone    Op = "none"
)

// LedgerMutation describes one atomic ledger application: a wallet
// mutation plus exactly one transaction row.
type LedgerMutation struct {
	UserID      uuid.UUID
	Op          Op
	Type        models.TransactionType
	Status      models.TransactionStatus
	Amount      decimal.Decimal // always positive; sign is derived
	Fees        decimal.Decimal
	ExternalRef *string
	RideID      *uuid.UUID
	Metadata    models.Metadata
}

// SignedAmount returns the amount as recorded on the transaction row:
// negative for outflows, positive for inflows. Pending holds carry the
// sign of the movement they anticipate.
func (m LedgerMutation) SignedAmount() decimal.Decimal {
	switch m.Op {
	case OpDebit, OpSettle:
		return m.Amount.Neg()
	case OpBlock, OpUnblock:
		if m.Type == models.TransactionTypeDeposit {
			return m.Amount
		}
		return m.Amount.Neg()
	default:
		return m.Amount
	}
}
