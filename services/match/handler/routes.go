package handler

import (
	"github.com/labstack/echo/v4"

	matchHTTP "github.com/wakacab/wakacab/services/match/handler/http"
)

// RegisterRoutes attaches driver endpoints to the authenticated group
func RegisterRoutes(g *echo.Group, h *matchHTTP.DriverHandler) {
	g.POST("/drivers/location", h.UpdateLocation)
	g.POST("/drivers/availability", h.UpdateAvailability)
}
