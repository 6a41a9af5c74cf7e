package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/wakacab/wakacab/internal/pkg/middleware"
	"github.com/wakacab/wakacab/internal/pkg/models"
	"github.com/wakacab/wakacab/internal/utils"
	"github.com/wakacab/wakacab/services/payment"
	"github.com/wakacab/wakacab/services/wallet"
)

// PaymentHandler exposes deposit/withdrawal initiation and the provider
// webhook over HTTP
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// InitiateRequest is the deposit/withdrawal payload
type InitiateRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	PhoneNumber string          `json:"phone_number"`
}

// Deposit opens a wallet top-up with the mobile money provider
func (h *PaymentHandler) Deposit(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req InitiateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	txn, err := h.paymentUC.InitiateDeposit(c.Request().Context(), userID, req.Amount, req.Method, req.PhoneNumber)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Deposit initiated", txn)
}

// Withdraw opens a payout to the caller's mobile money account
func (h *PaymentHandler) Withdraw(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req InitiateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	txn, err := h.paymentUC.InitiateWithdrawal(c.Request().Context(), userID, req.Amount, req.Method, req.PhoneNumber)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Withdrawal initiated", txn)
}

// Webhook applies a provider settlement notification. The signature
// middleware has already authenticated the payload by the time this runs.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	var notification models.PaymentNotification
	if err := c.Bind(&notification); err != nil {
		return utils.BadRequestResponse(c, "Invalid notification payload")
	}
	if notification.ProviderRef == "" {
		return utils.BadRequestResponse(c, "Missing provider reference")
	}

	if err := h.paymentUC.Reconcile(c.Request().Context(), notification); err != nil {
		return mapPaymentError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notification processed", nil)
}

func mapPaymentError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, wallet.ErrInvalidAmount):
		return utils.BadRequestResponse(c, "Amount must be positive")
	case errors.Is(err, wallet.ErrInsufficientFunds):
		return utils.BadRequestResponse(c, "Insufficient funds")
	case errors.Is(err, wallet.ErrWalletInactive):
		return utils.BadRequestResponse(c, "Wallet is deactivated")
	case errors.Is(err, payment.ErrInvalidOutcome):
		return utils.BadRequestResponse(c, "Unknown payment outcome")
	case errors.Is(err, payment.ErrTransactionNotFound):
		return utils.NotFoundResponse(c, "Transaction not found")
	case errors.Is(err, payment.ErrProviderUnavailable):
		return utils.InternalServerErrorResponse(c, "Payment provider unavailable")
	default:
		return utils.InternalServerErrorResponse(c, "")
	}
}
