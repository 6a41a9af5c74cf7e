package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wakacab/wakacab/internal/pkg/middleware"
	"github.com/wakacab/wakacab/internal/pkg/models"
	"github.com/wakacab/wakacab/internal/utils"
	"github.com/wakacab/wakacab/services/match"
)

// DriverHandler exposes driver presence and location updates over HTTP
type DriverHandler struct {
	matchUC match.MatchUC
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(matchUC match.MatchUC) *DriverHandler {
	return &DriverHandler{matchUC: matchUC}
}

// LocationRequest is the driver location beacon payload
type LocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UpdateLocation records the driver's current position
func (h *DriverHandler) UpdateLocation(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	location := models.Location{Latitude: req.Latitude, Longitude: req.Longitude}
	if err := h.matchUC.UpdateDriverLocation(c.Request().Context(), driverID, location); err != nil {
		return mapMatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", nil)
}

// AvailabilityRequest is the driver presence payload
type AvailabilityRequest struct {
	IsOnline bool `json:"is_online"`
}

// UpdateAvailability flips the driver's online flag
func (h *DriverHandler) UpdateAvailability(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := h.matchUC.SetDriverOnline(c.Request().Context(), driverID, req.IsOnline); err != nil {
		return mapMatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Availability updated", nil)
}

func mapMatchError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, match.ErrInvalidLocation):
		return utils.BadRequestResponse(c, "Invalid location coordinates")
	case errors.Is(err, match.ErrDriverNotFound):
		return utils.NotFoundResponse(c, "Driver not found")
	default:
		return utils.InternalServerErrorResponse(c, "")
	}
}
