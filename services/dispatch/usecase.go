package dispatch

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wakacab/wakacab/internal/pkg/models"
)

// DispatchUC is the ride lifecycle engine
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/wakacab/wakacab/services/dispatch DispatchUC
type DispatchUC interface {
	// RequestRide prices the trip, blocks the fare on the passenger's
	// wallet and opens a pending request offered to nearby drivers
	RequestRide(ctx context.Context, userID uuid.UUID, pickup, dropoff models.Location, rideType models.RideType) (*models.RideRequest, error)
	// AcceptRide claims a pending request for the driver. Exactly one
	// driver wins a request.
	AcceptRide(ctx context.Context, driverID, requestID uuid.UUID) (*models.Ride, error)

	DriverArriving(ctx context.Context, driverID, rideID uuid.UUID) (*models.Ride, error)
	MarkArrived(ctx context.Context, driverID, rideID uuid.UUID) (*models.Ride, error)
	StartRide(ctx context.Context, driverID, rideID uuid.UUID) (*models.Ride, error)
	// CompleteRide settles payment and earnings. finalPrice overrides the
	// quoted price when set; it can only lower the charge, never raise it
	// past the reservation.
	CompleteRide(ctx context.Context, driverID, rideID uuid.UUID, finalPrice *decimal.Decimal) (*models.Ride, error)
	// CancelRide cancels pre-completion. Passenger or assigned driver
	// only; idempotent when the ride is already cancelled.
	CancelRide(ctx context.Context, actorID, rideID uuid.UUID, reason string) (*models.Ride, error)
	// CancelRequest withdraws the caller's own pending request before any
	// driver accepts it, releasing the fare hold. Idempotent once the
	// request is cancelled.
	CancelRequest(ctx context.Context, userID, requestID uuid.UUID) (*models.RideRequest, error)

	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)

	// SweepExpiredRequests cancels pending requests past their TTL and
	// returns how many it expired
	SweepExpiredRequests(ctx context.Context) (int, error)
	// StartExpirySweeper runs SweepExpiredRequests on a ticker until ctx
	// is done
	StartExpirySweeper(ctx context.Context)
}
