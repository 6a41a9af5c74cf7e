package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/wakacab/wakacab/internal/pkg/middleware"
	"github.com/wakacab/wakacab/internal/utils"
	"github.com/wakacab/wakacab/services/wallet"
)

// WalletHandler exposes wallet reads and transfers over HTTP
type WalletHandler struct {
	walletUC wallet.WalletUC
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUC wallet.WalletUC) *WalletHandler {
	return &WalletHandler{walletUC: walletUC}
}

// GetWallet returns the caller's wallet snapshot
func (h *WalletHandler) GetWallet(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	w, err := h.walletUC.GetWallet(c.Request().Context(), userID)
	if err != nil {
		return mapWalletError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Wallet retrieved", w)
}

// GetTransactions returns the caller's transaction history
func (h *WalletHandler) GetTransactions(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	transactions, err := h.walletUC.GetTransactions(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return mapWalletError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved", transactions)
}

// TransferRequest is the transfer payload
type TransferRequest struct {
	ToUserID string          `json:"to_user_id"`
	Amount   decimal.Decimal `json:"amount"`
}

// Transfer moves funds from the caller's wallet to another user's wallet
func (h *WalletHandler) Transfer(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req TransferRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	toUserID, err := uuid.Parse(req.ToUserID)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid recipient user id")
	}

	if err := h.walletUC.Transfer(c.Request().Context(), userID, toUserID, req.Amount); err != nil {
		return mapWalletError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transfer completed", nil)
}

func mapWalletError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, wallet.ErrInsufficientFunds):
		return utils.BadRequestResponse(c, "Insufficient funds")
	case errors.Is(err, wallet.ErrInvalidAmount):
		return utils.BadRequestResponse(c, "Amount must be positive")
	case errors.Is(err, wallet.ErrSelfTransfer):
		return utils.BadRequestResponse(c, "Cannot transfer to your own wallet")
	case errors.Is(err, wallet.ErrWalletInactive):
		return utils.BadRequestResponse(c, "Wallet is deactivated")
	case errors.Is(err, wallet.ErrWalletNotFound):
		return utils.NotFoundResponse(c, "Wallet not found")
	default:
		return utils.InternalServerErrorResponse(c, "")
	}
}
