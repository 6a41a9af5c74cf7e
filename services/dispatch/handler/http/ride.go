package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/wakacab/wakacab/internal/pkg/middleware"
	"github.com/wakacab/wakacab/internal/pkg/models"
	"github.com/wakacab/wakacab/internal/utils"
	"github.com/wakacab/wakacab/services/dispatch"
	"github.com/wakacab/wakacab/services/wallet"
)

// RideHandler exposes the ride lifecycle over HTTP
type RideHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewRideHandler creates a new ride handler
func NewRideHandler(dispatchUC dispatch.DispatchUC) *RideHandler {
	return &RideHandler{dispatchUC: dispatchUC}
}

// RequestRideRequest is the ride request payload
type RequestRideRequest struct {
	PickupLat      float64         `json:"pickup_lat"`
	PickupLng      float64         `json:"pickup_lng"`
	PickupAddress  string          `json:"pickup_address"`
	DropoffLat     float64         `json:"dropoff_lat"`
	DropoffLng     float64         `json:"dropoff_lng"`
	DropoffAddress string          `json:"dropoff_address"`
	RideType       models.RideType `json:"ride_type"`
}

// RequestRide opens a new ride request for the caller
func (h *RideHandler) RequestRide(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req RequestRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	switch req.RideType {
	case models.RideTypeTaxi, models.RideTypeMoto, models.RideTypeDelivery:
	default:
		return utils.BadRequestResponse(c, "Unknown ride type")
	}

	pickup := models.Location{Latitude: req.PickupLat, Longitude: req.PickupLng, Address: req.PickupAddress}
	dropoff := models.Location{Latitude: req.DropoffLat, Longitude: req.DropoffLng, Address: req.DropoffAddress}

	request, err := h.dispatchUC.RequestRide(c.Request().Context(), userID, pickup, dropoff, req.RideType)
	if err != nil {
		return mapDispatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride requested", request)
}

// AcceptRide claims a pending request for the calling driver
func (h *RideHandler) AcceptRide(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request id")
	}

	ride, err := h.dispatchUC.AcceptRide(c.Request().Context(), driverID, requestID)
	if err != nil {
		return mapDispatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride accepted", ride)
}

// DriverArriving marks the driver en route to the pickup
func (h *RideHandler) DriverArriving(c echo.Context) error {
	return h.transition(c, h.dispatchUC.DriverArriving, "Driver arriving")
}

// MarkArrived marks the driver at the pickup point
func (h *RideHandler) MarkArrived(c echo.Context) error {
	return h.transition(c, h.dispatchUC.MarkArrived, "Driver arrived")
}

// StartRide marks the trip in progress
func (h *RideHandler) StartRide(c echo.Context) error {
	return h.transition(c, h.dispatchUC.StartRide, "Ride started")
}

func (h *RideHandler) transition(c echo.Context, fn func(ctx context.Context, driverID, rideID uuid.UUID) (*models.Ride, error), message string) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride id")
	}

	ride, err := fn(c.Request().Context(), driverID, rideID)
	if err != nil {
		return mapDispatchError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, message, ride)
}

// CompleteRideRequest is the optional completion payload
type CompleteRideRequest struct {
	FinalPrice *decimal.Decimal `json:"final_price,omitempty"`
}

// CompleteRide finishes the trip and settles payment
func (h *RideHandler) CompleteRide(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride id")
	}

	var req CompleteRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	ride, err := h.dispatchUC.CompleteRide(c.Request().Context(), driverID, rideID, req.FinalPrice)
	if err != nil {
		return mapDispatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride completed", ride)
}

// CancelRideRequest is the cancellation payload
type CancelRideRequest struct {
	Reason string `json:"reason"`
}

// CancelRide cancels the trip for either party
func (h *RideHandler) CancelRide(c echo.Context) error {
	actorID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride id")
	}

	var req CancelRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	ride, err := h.dispatchUC.CancelRide(c.Request().Context(), actorID, rideID, req.Reason)
	if err != nil {
		return mapDispatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride cancelled", ride)
}

// CancelRequest withdraws the caller's pending request before acceptance
func (h *RideHandler) CancelRequest(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request id")
	}

	request, err := h.dispatchUC.CancelRequest(c.Request().Context(), userID, requestID)
	if err != nil {
		return mapDispatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride request cancelled", request)
}

// GetRide returns a ride by id
func (h *RideHandler) GetRide(c echo.Context) error {
	if _, ok := middleware.UserIDFromContext(c); !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride id")
	}

	ride, err := h.dispatchUC.GetRide(c.Request().Context(), rideID)
	if err != nil {
		return mapDispatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved", ride)
}

func mapDispatchError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, dispatch.ErrDuplicateActiveRequest):
		return utils.ConflictResponse(c, "An active ride request already exists")
	case errors.Is(err, dispatch.ErrRideAlreadyTaken):
		return utils.ConflictResponse(c, "Ride request already taken")
	case errors.Is(err, dispatch.ErrDriverNotAvailable):
		return utils.ConflictResponse(c, "Driver not available")
	case errors.Is(err, dispatch.ErrInvalidTransition):
		return utils.ConflictResponse(c, "Invalid ride state transition")
	case errors.Is(err, dispatch.ErrDistanceOutOfRange):
		return utils.BadRequestResponse(c, "Trip distance out of serviceable range")
	case errors.Is(err, dispatch.ErrInvalidLocation):
		return utils.BadRequestResponse(c, "Invalid location coordinates")
	case errors.Is(err, dispatch.ErrCancelReasonRequired):
		return utils.BadRequestResponse(c, "Cancellation reason is required")
	case errors.Is(err, dispatch.ErrNoDriverAvailable):
		return utils.NotFoundResponse(c, "No driver available")
	case errors.Is(err, dispatch.ErrRequestNotFound):
		return utils.NotFoundResponse(c, "Ride request not found")
	case errors.Is(err, dispatch.ErrRideNotFound):
		return utils.NotFoundResponse(c, "Ride not found")
	case errors.Is(err, dispatch.ErrWrongActor):
		return utils.ForbiddenResponse(c, "Not allowed to act on this ride")
	case errors.Is(err, wallet.ErrInsufficientFunds):
		return utils.BadRequestResponse(c, "Insufficient funds")
	default:
		return utils.InternalServerErrorResponse(c, "")
	}
}
