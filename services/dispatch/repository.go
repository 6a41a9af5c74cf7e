package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wakacab/wakacab/internal/pkg/models"
)

// RideRepo is the dispatch data access surface. Money-moving operations
// run the ride, request, driver and wallet mutations inside one database
// transaction through the injected ledger.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/wakacab/wakacab/services/dispatch RideRepo
type RideRepo interface {
	CreateRequest(ctx context.Context, request *models.RideRequest) error
	GetRequest(ctx context.Context, requestID uuid.UUID) (*models.RideRequest, error)
	HasActiveRequest(ctx context.Context, userID uuid.UUID) (bool, error)
	// CancelRequest marks a pending request cancelled and releases its
	// fare hold in one transaction. A request no longer pending is a no-op.
	CancelRequest(ctx context.Context, requestID, userID uuid.UUID) error

	// AcceptRequest runs the single-winner acceptance transaction: the
	// request row is locked, the first caller flips it to accepted, claims
	// the driver and creates the ride; later callers lose.
	AcceptRequest(ctx context.Context, driverID, requestID uuid.UUID) (*models.Ride, error)

	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	// TransitionRide moves the ride from one status to the next,
	// stamping the matching timestamp column. Zero rows means the ride
	// moved concurrently.
	TransitionRide(ctx context.Context, rideID uuid.UUID, from, to models.RideStatus) (*models.Ride, error)

	// CompleteRide finishes the ride: settles the passenger's hold for the
	// charged amount, credits the driver's earnings and frees the driver.
	CompleteRide(ctx context.Context, ride *models.Ride, charged, driverEarnings decimal.Decimal) (*models.Ride, error)
	// CancelRide cancels the ride and its request, releases the
	// passenger's hold and frees the driver.
	CancelRide(ctx context.Context, ride *models.Ride, reason, cancelledBy string) (*models.Ride, error)

	// ExpirePendingRequests cancels pending requests created before the
	// cutoff, releasing their holds, and returns the expired requests
	ExpirePendingRequests(ctx context.Context, cutoff time.Time) ([]models.RideRequest, error)
}
