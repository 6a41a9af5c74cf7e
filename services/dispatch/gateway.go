package dispatch

import (
	"context"

	"github.com/wakacab/wakacab/internal/pkg/models"
)

// DispatchGW publishes ride lifecycle events for the notification layer.
// Publishing is fire-and-forget: failures are logged, never propagated
// into the ride flow.
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/wakacab/wakacab/services/dispatch DispatchGW
type DispatchGW interface {
	PublishRideRequested(ctx context.Context, event models.RideRequestedEvent)
	PublishRideRequestExpired(ctx context.Context, event models.RideRequestedEvent)
	PublishRideAccepted(ctx context.Context, event models.RideEvent)
	PublishRideStatusChanged(ctx context.Context, event models.RideEvent)
	PublishRideCompleted(ctx context.Context, event models.RideCompletedEvent)
	PublishRideCancelled(ctx context.Context, event models.RideCancelledEvent)
}
