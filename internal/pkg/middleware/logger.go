package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// LoggerMiddleware logs each request with status, latency and caller identity
func LoggerMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status

			if raw != "" {
				path = path + "?" + raw
			}

			userIDStr := "anonymous"
			if userID := c.Get(ContextKeyUserID); userID != nil {
				userIDStr = fmt.Sprintf("%v", userID)
			}

			entry := logger.WithFields(logrus.Fields{
				"status":    statusCode,
				"latency":   latency.String(),
				"client_ip": c.RealIP(),
				"method":    c.Request().Method,
				"path":      path,
				"user_id":   userIDStr,
			})

			if statusCode >= 500 {
				entry.Error("Server error")
			} else if statusCode >= 400 {
				entry.Warn("Client error")
			} else {
				entry.Info("Request processed")
			}

			return err
		}
	}
}
