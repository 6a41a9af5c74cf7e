package wallet

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wakacab/wakacab/internal/pkg/models"
)

// WalletUC is the transaction processor: every ledger mutation flows
// through here or through the Ledger primitives inside another slice's
// transaction.
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/wakacab/wakacab/services/wallet WalletUC
type WalletUC interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	GetTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Transaction, error)

	// Block reserves amount for a ride request, recording a pending
	// payment hold. Fails with ErrInsufficientFunds without side effects.
	Block(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, requestID uuid.UUID) (*models.Transaction, error)
	// ReleaseHold releases the pending hold for a ride request,
	// unblocking the funds and marking the hold row failed. Saturating
	// and idempotent: a missing or already-released hold is a no-op.
	ReleaseHold(ctx context.Context, userID, requestID uuid.UUID) error

	// Credit and Debit mutate the balance outside the block/settle pair
	Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, txType models.TransactionType, meta models.Metadata) (*models.Transaction, error)
	Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, txType models.TransactionType, meta models.Metadata) (*models.Transaction, error)

	// Transfer moves amount between two wallets in one transaction,
	// appending a debit row and a credit row
	Transfer(ctx context.Context, fromUserID, toUserID uuid.UUID, amount decimal.Decimal) error
}
