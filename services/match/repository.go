package match

import (
	"context"

	"github.com/google/uuid"

	"github.com/wakacab/wakacab/internal/pkg/models"
)

// DriverRepo is the driver profile and availability pool data access surface
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/wakacab/wakacab/services/match DriverRepo
type DriverRepo interface {
	GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error)
	GetDrivers(ctx context.Context, driverIDs []uuid.UUID) ([]models.Driver, error)

	// UpdateLocation persists the driver's position and refreshes the geo pool
	UpdateLocation(ctx context.Context, driverID uuid.UUID, location models.Location) error
	// SetOnline flips the driver's presence flag. Going offline removes
	// the driver from the pool but never touches is_available: that flag
	// stays owned by dispatch while a ride is live.
	SetOnline(ctx context.Context, driverID uuid.UUID, online bool) error

	// NearbyDrivers returns pool members within radiusKm of the point,
	// nearest first
	NearbyDrivers(ctx context.Context, location models.Location, radiusKm float64) ([]models.NearbyDriver, error)
}
