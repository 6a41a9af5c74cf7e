package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/wakacab/wakacab/internal/pkg/database"
	"github.com/wakacab/wakacab/internal/pkg/models"
	"github.com/wakacab/wakacab/services/match"
)

// driverPoolKey is the geo set holding online drivers' last known positions
const driverPoolKey = "drivers:geo"

type driverRepo struct {
	db    *sqlx.DB
	redis *database.RedisClient
}

// NewDriverRepo creates a new driver repository backed by Postgres profiles
// and a Redis geo pool
func NewDriverRepo(db *sqlx.DB, redis *database.RedisClient) match.DriverRepo {
	return &driverRepo{db: db, redis: redis}
}

func (r *driverRepo) GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error) {
	var driver models.Driver
	err := r.db.GetContext(ctx, &driver, `
		SELECT id, is_online, is_available, status, vehicle_type,
		       current_lat, current_lng, rating, total_rides, updated_at
		FROM drivers
		WHERE id = $1`, driverID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, match.ErrDriverNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return &driver, nil
}

func (r *driverRepo) GetDrivers(ctx context.Context, driverIDs []uuid.UUID) ([]models.Driver, error) {
	if len(driverIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, is_online, is_available, status, vehicle_type,
		       current_lat, current_lng, rating, total_rides, updated_at
		FROM drivers
		WHERE id IN (?)`, driverIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build driver query: %w", err)
	}

	var drivers []models.Driver
	if err := r.db.SelectContext(ctx, &drivers, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get drivers: %w", err)
	}
	return drivers, nil
}

func (r *driverRepo) UpdateLocation(ctx context.Context, driverID uuid.UUID, location models.Location) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE drivers
		SET current_lat = $1, current_lng = $2, updated_at = NOW()
		WHERE id = $3`,
		location.Latitude, location.Longitude, driverID)
	if err != nil {
		return fmt.Errorf("failed to update driver location: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return match.ErrDriverNotFound
	}

	if err := r.redis.GeoAdd(ctx, driverPoolKey, location.Longitude, location.Latitude, driverID.String()); err != nil {
		return fmt.Errorf("failed to update driver geo pool: %w", err)
	}
	return nil
}

func (r *driverRepo) SetOnline(ctx context.Context, driverID uuid.UUID, online bool) error {
	var driver models.Driver
	err := r.db.GetContext(ctx, &driver, `
		UPDATE drivers
		SET is_online = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, is_online, is_available, status, vehicle_type,
		          current_lat, current_lng, rating, total_rides, updated_at`,
		online, driverID)
	if errors.Is(err, sql.ErrNoRows) {
		return match.ErrDriverNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to set driver online flag: %w", err)
	}

	if online {
		if err := r.redis.GeoAdd(ctx, driverPoolKey, driver.CurrentLng, driver.CurrentLat, driverID.String()); err != nil {
			return fmt.Errorf("failed to add driver to geo pool: %w", err)
		}
		return nil
	}
	if err := r.redis.ZRem(ctx, driverPoolKey, driverID.String()); err != nil {
		return fmt.Errorf("failed to remove driver from geo pool: %w", err)
	}
	return nil
}

func (r *driverRepo) NearbyDrivers(ctx context.Context, location models.Location, radiusKm float64) ([]models.NearbyDriver, error) {
	results, err := r.redis.GeoRadius(ctx, driverPoolKey, location.Longitude, location.Latitude, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to query driver geo pool: %w", err)
	}

	nearby := make([]models.NearbyDriver, 0, len(results))
	for _, result := range results {
		driverID, err := uuid.Parse(result.Name)
		if err != nil {
			// stale or foreign member, skip it
			continue
		}
		nearby = append(nearby, models.NearbyDriver{
			DriverID:   driverID,
			DistanceKm: result.Dist,
			Location: models.Location{
				Latitude:  result.Latitude,
				Longitude: result.Longitude,
			},
		})
	}
	return nearby, nil
}
