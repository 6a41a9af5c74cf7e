package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wakacab/wakacab/internal/pkg/models"
)

// PaymentUC bridges the mobile money provider and the wallet ledger
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/wakacab/wakacab/services/payment PaymentUC
type PaymentUC interface {
	// InitiateDeposit opens a top-up with the provider and records a
	// pending deposit. The balance moves only when the webhook confirms.
	InitiateDeposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, method, phoneNumber string) (*models.Transaction, error)
	// InitiateWithdrawal debits the wallet up front and asks the provider
	// to pay out. A failed outcome re-credits the debited amount.
	InitiateWithdrawal(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, method, phoneNumber string) (*models.Transaction, error)
	// Reconcile applies a verified provider notification to the ledger.
	// Re-delivered notifications for settled transactions are no-ops.
	Reconcile(ctx context.Context, notification models.PaymentNotification) error
}
