package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/wakacab/wakacab/internal/utils"
)

// SignatureHeader carries the provider's HMAC-SHA256 of the raw body
const SignatureHeader = "X-Webhook-Signature"

// WebhookSignatureMiddleware verifies the provider's HMAC signature over
// the raw request body before the reconciliation adapter ever sees the
// payload. Comparison is constant-time.
func WebhookSignatureMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			signature := c.Request().Header.Get(SignatureHeader)
			if signature == "" {
				return utils.UnauthorizedResponse(c, "Missing webhook signature")
			}

			body, err := io.ReadAll(c.Request().Body)
			if err != nil {
				return utils.BadRequestResponse(c, "Unable to read request body")
			}
			// Restore the body for the handler
			c.Request().Body = io.NopCloser(bytes.NewReader(body))

			mac := hmac.New(sha256.New, []byte(secret))
			mac.Write(body)
			expected := mac.Sum(nil)

			provided, err := hex.DecodeString(signature)
			if err != nil || !hmac.Equal(provided, expected) {
				return utils.UnauthorizedResponse(c, "Invalid webhook signature")
			}

			return next(c)
		}
	}
}
