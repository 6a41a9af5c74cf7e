package payment

import (
	"context"

	"github.com/wakacab/wakacab/internal/pkg/models"
)

// PaymentGW talks to the mobile money provider and announces settlements
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/wakacab/wakacab/services/payment PaymentGW
type PaymentGW interface {
	// InitiatePayment opens a deposit or withdrawal with the provider
	InitiatePayment(ctx context.Context, request models.ProviderInitiateRequest) (*models.ProviderInitiateResponse, error)
	// PublishPaymentSettled is fire-and-forget: failures are logged only
	PublishPaymentSettled(ctx context.Context, event models.PaymentSettledEvent)
}
