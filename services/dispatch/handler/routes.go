package handler

import (
	"github.com/labstack/echo/v4"

	dispatchHTTP "github.com/wakacab/wakacab/services/dispatch/handler/http"
)

// RegisterRoutes attaches ride endpoints to the authenticated group
func RegisterRoutes(g *echo.Group, h *dispatchHTTP.RideHandler) {
	g.POST("/rides/request", h.RequestRide)
	g.POST("/rides/requests/:id/cancel", h.CancelRequest)
	g.GET("/rides/:id", h.GetRide)
	g.POST("/rides/:id/accept", h.AcceptRide)
	g.POST("/rides/:id/arriving", h.DriverArriving)
	g.POST("/rides/:id/arrived", h.MarkArrived)
	g.POST("/rides/:id/start", h.StartRide)
	g.POST("/rides/:id/complete", h.CompleteRide)
	g.POST("/rides/:id/cancel", h.CancelRide)
}
