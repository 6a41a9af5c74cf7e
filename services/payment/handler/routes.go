package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/wakacab/wakacab/internal/pkg/middleware"
	paymentHTTP "github.com/wakacab/wakacab/services/payment/handler/http"
)

// RegisterRoutes attaches deposit and withdrawal endpoints to the
// authenticated group
func RegisterRoutes(g *echo.Group, h *paymentHTTP.PaymentHandler) {
	g.POST("/wallet/deposit", h.Deposit)
	g.POST("/wallet/withdraw", h.Withdraw)
}

// RegisterWebhookRoutes attaches the provider webhook behind signature
// verification, outside the JWT surface
func RegisterWebhookRoutes(e *echo.Echo, h *paymentHTTP.PaymentHandler, webhookSecret string) {
	e.POST("/webhooks/payment", h.Webhook, middleware.WebhookSignatureMiddleware(webhookSecret))
}
