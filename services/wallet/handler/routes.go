package handler

import (
	"github.com/labstack/echo/v4"

	walletHTTP "github.com/wakacab/wakacab/services/wallet/handler/http"
)

// RegisterRoutes attaches wallet endpoints to the authenticated group
func RegisterRoutes(g *echo.Group, h *walletHTTP.WalletHandler) {
	g.GET("/wallet", h.GetWallet)
	g.GET("/wallet/transactions", h.GetTransactions)
	g.POST("/wallet/transfer", h.Transfer)
}
