package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wakacab/wakacab/internal/pkg/logger"
	"github.com/wakacab/wakacab/internal/pkg/models"
	"github.com/wakacab/wakacab/services/match"
)

type matchUC struct {
	cfg  *models.Config
	repo match.DriverRepo
	log  *logger.AppLogger
}

// NewMatchUC creates the matcher usecase
func NewMatchUC(cfg *models.Config, repo match.DriverRepo, log *logger.AppLogger) match.MatchUC {
	return &matchUC{cfg: cfg, repo: repo, log: log}
}

func (uc *matchUC) Nearby(ctx context.Context, pickup models.Location, rideType models.RideType, maxRadiusKm float64, maxCandidates int) ([]models.NearbyDriver, error) {
	if !validCoordinates(pickup) {
		return nil, match.ErrInvalidLocation
	}
	if maxRadiusKm <= 0 {
		maxRadiusKm = uc.cfg.Dispatch.SearchRadiusKm
	}
	if maxCandidates <= 0 {
		maxCandidates = uc.cfg.Dispatch.MaxCandidates
	}

	candidates, err := uc.repo.NearbyDrivers(ctx, pickup, maxRadiusKm)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []models.NearbyDriver{}, nil
	}

	ids := make([]uuid.UUID, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.DriverID)
	}
	drivers, err := uc.repo.GetDrivers(ctx, ids)
	if err != nil {
		return nil, err
	}
	eligible := make(map[uuid.UUID]bool, len(drivers))
	for _, d := range drivers {
		eligible[d.ID] = d.IsOnline && d.IsAvailable &&
			d.Status == models.DriverStatusActive &&
			VehicleCompatible(d.VehicleType, rideType)
	}

	// candidates arrive sorted nearest first from the geo query
	matched := make([]models.NearbyDriver, 0, maxCandidates)
	for _, c := range candidates {
		if !eligible[c.DriverID] {
			continue
		}
		matched = append(matched, c)
		if len(matched) == maxCandidates {
			break
		}
	}

	uc.log.WithFields(logrus.Fields{
		"pool_hits": len(candidates),
		"matched":   len(matched),
		"ride_type": rideType,
		"radius_km": maxRadiusKm,
	}).Debug("Matcher ranked nearby drivers")

	return matched, nil
}

func (uc *matchUC) UpdateDriverLocation(ctx context.Context, driverID uuid.UUID, location models.Location) error {
	if !validCoordinates(location) {
		return match.ErrInvalidLocation
	}
	return uc.repo.UpdateLocation(ctx, driverID, location)
}

func (uc *matchUC) SetDriverOnline(ctx context.Context, driverID uuid.UUID, online bool) error {
	return uc.repo.SetOnline(ctx, driverID, online)
}

// VehicleCompatible reports whether a vehicle class can serve a ride type.
// Delivery rides require delivery vehicles; passenger rides exclude them.
func VehicleCompatible(vehicle models.VehicleType, rideType models.RideType) bool {
	if rideType == models.RideTypeDelivery {
		return vehicle == models.VehicleTypeDelivery
	}
	return vehicle != models.VehicleTypeDelivery
}

func validCoordinates(loc models.Location) bool {
	return loc.Latitude >= -90 && loc.Latitude <= 90 &&
		loc.Longitude >= -180 && loc.Longitude <= 180
}
