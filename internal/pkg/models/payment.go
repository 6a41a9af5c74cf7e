package models

import (
	"github.com/shopspring/decimal"
)

// PaymentOutcome is a settlement outcome reported by the mobile money provider
type PaymentOutcome string

const (
	PaymentOutcomeSuccess   PaymentOutcome = "SUCCESS"
	PaymentOutcomeFailed    PaymentOutcome = "FAILED"
	PaymentOutcomePending   PaymentOutcome = "PENDING"
	PaymentOutcomeExpired   PaymentOutcome = "EXPIRED"
	PaymentOutcomeCancelled PaymentOutcome = "CANCELLED"
)

// IsFailure reports whether the outcome terminates the payment without settling it
func (o PaymentOutcome) IsFailure() bool {
	return o == PaymentOutcomeFailed || o == PaymentOutcomeExpired || o == PaymentOutcomeCancelled
}

// PaymentNotification is the normalized webhook payload after boundary
// signature verification
type PaymentNotification struct {
	ProviderRef string          `json:"provider_ref"`
	Outcome     PaymentOutcome  `json:"outcome"`
	Amount      decimal.Decimal `json:"amount"`
	Metadata    Metadata        `json:"metadata,omitempty"`
}

// ProviderInitiateRequest is sent to the provider to open a deposit or withdrawal
type ProviderInitiateRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Method      string          `json:"method"`
	Reference   string          `json:"reference"`
	PhoneNumber string          `json:"phone_number,omitempty"`
}

// ProviderInitiateResponse is the provider's acknowledgement
type ProviderInitiateResponse struct {
	ExternalRef string `json:"external_ref"`
	Status      string `json:"status"`
}
