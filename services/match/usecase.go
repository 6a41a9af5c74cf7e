package match

import (
	"context"

	"github.com/google/uuid"

	"github.com/wakacab/wakacab/internal/pkg/models"
)

// MatchUC ranks available drivers for a pickup point and maintains the
// availability pool.
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/wakacab/wakacab/services/match MatchUC
type MatchUC interface {
	// Nearby returns up to maxCandidates compatible drivers within
	// maxRadiusKm of the pickup, nearest first. An empty result is not an
	// error; the caller decides policy.
	Nearby(ctx context.Context, pickup models.Location, rideType models.RideType, maxRadiusKm float64, maxCandidates int) ([]models.NearbyDriver, error)

	UpdateDriverLocation(ctx context.Context, driverID uuid.UUID, location models.Location) error
	SetDriverOnline(ctx context.Context, driverID uuid.UUID, online bool) error
}
