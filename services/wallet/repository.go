package wallet

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/wakacab/wakacab/internal/pkg/models"
)

// Ledger is the transaction-scoped ledger surface shared with the
// dispatch and payment slices so their multi-entity mutations stay in a
// single database transaction.
// go:generate mockgen -destination=mocks/mock_ledger.go -package=mocks github.com/wakacab/wakacab/services/wallet Ledger
type Ledger interface {
	// Transact runs fn inside one database transaction, committing on nil
	Transact(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	// ApplyTx mutates the wallet and appends exactly one transaction row
	ApplyTx(ctx context.Context, tx *sqlx.Tx, m LedgerMutation) (*models.Transaction, error)
	// AdjustTx mutates only the wallet; used when the logical transaction
	// row already exists (holds being settled or released, reconciliation)
	AdjustTx(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, op Op, amount decimal.Decimal) (*models.Wallet, error)
	// FindByExternalRefTx locks and returns the transaction carrying the
	// provider reference
	FindByExternalRefTx(ctx context.Context, tx *sqlx.Tx, ref string) (*models.Transaction, error)
	// FindHoldByRequestTx locks and returns the pending payment hold
	// placed for a ride request
	FindHoldByRequestTx(ctx context.Context, tx *sqlx.Tx, requestID uuid.UUID) (*models.Transaction, error)
	// MarkTransactionTx finalizes a non-terminal transaction row,
	// optionally recording the post-settlement balance
	MarkTransactionTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, status models.TransactionStatus, balanceAfter *decimal.Decimal) error
	// SettleHoldTx completes a pending hold row, rewriting its amount to
	// the signed value actually settled. A discounted settlement charges
	// less than the reservation and the completed row must record the
	// real movement, or replaying amounts no longer reconstructs balances.
	SettleHoldTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, amount, balanceAfter decimal.Decimal) error
}

// WalletRepo is the full wallet data access surface
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/wakacab/wakacab/services/wallet WalletRepo
type WalletRepo interface {
	Ledger

	GetWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	// GetOrCreateWallet returns the wallet, materializing an empty one on
	// first need
	GetOrCreateWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Transaction, error)
	// Apply runs ApplyTx inside its own transaction
	Apply(ctx context.Context, m LedgerMutation) (*models.Transaction, error)
}
