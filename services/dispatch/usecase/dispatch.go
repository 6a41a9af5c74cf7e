package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/wakacab/wakacab/internal/pkg/logger"
	"github.com/wakacab/wakacab/internal/pkg/models"
	"github.com/wakacab/wakacab/internal/utils"
	"github.com/wakacab/wakacab/services/dispatch"
	"github.com/wakacab/wakacab/services/match"
	"github.com/wakacab/wakacab/services/wallet"
)

// actor labels recorded on cancelled rides
const (
	CancelledByPassenger = "PASSENGER"
	CancelledByDriver    = "DRIVER"
	CancelledBySystem    = "SYSTEM"
)

type dispatchUC struct {
	cfg      *models.Config
	repo     dispatch.RideRepo
	walletUC wallet.WalletUC
	matchUC  match.MatchUC
	gateway  dispatch.DispatchGW
	log      *logger.AppLogger
}

// NewDispatchUC creates the ride lifecycle engine
func NewDispatchUC(cfg *models.Config, repo dispatch.RideRepo, walletUC wallet.WalletUC, matchUC match.MatchUC, gateway dispatch.DispatchGW, log *logger.AppLogger) dispatch.DispatchUC {
	return &dispatchUC{
		cfg:      cfg,
		repo:     repo,
		walletUC: walletUC,
		matchUC:  matchUC,
		gateway:  gateway,
		log:      log,
	}
}

func (uc *dispatchUC) RequestRide(ctx context.Context, userID uuid.UUID, pickup, dropoff models.Location, rideType models.RideType) (*models.RideRequest, error) {
	if !validCoordinates(pickup) || !validCoordinates(dropoff) {
		return nil, dispatch.ErrInvalidLocation
	}

	active, err := uc.repo.HasActiveRequest(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, dispatch.ErrDuplicateActiveRequest
	}

	distanceKm := utils.HaversineKm(pickup, dropoff)
	if distanceKm < uc.cfg.Dispatch.MinDistanceKm || distanceKm > uc.cfg.Dispatch.MaxDistanceKm {
		return nil, dispatch.ErrDistanceOutOfRange
	}

	price := utils.ComputeFare(uc.cfg.Pricing, rideType, distanceKm)

	request := &models.RideRequest{
		ID:             uuid.New(),
		UserID:         userID,
		PickupLat:      pickup.Latitude,
		PickupLng:      pickup.Longitude,
		PickupAddress:  pickup.Address,
		DropoffLat:     dropoff.Latitude,
		DropoffLng:     dropoff.Longitude,
		DropoffAddress: dropoff.Address,
		RideType:       rideType,
		EstimatedPrice: price,
		DistanceKm:     distanceKm,
		Status:         models.RequestStatusPending,
	}

	// the hold comes first: a priced request only ever exists with its
	// fare reserved. A ride type without pricing config rides free.
	if price.IsPositive() {
		if _, err := uc.walletUC.Block(ctx, userID, price, request.ID); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.CreateRequest(ctx, request); err != nil {
		if releaseErr := uc.walletUC.ReleaseHold(ctx, userID, request.ID); releaseErr != nil {
			uc.log.WithFields(logrus.Fields{
				"request_id": request.ID,
				"user_id":    userID,
				"error":      releaseErr.Error(),
			}).Error("Failed to release hold after request persist failure")
		}
		return nil, err
	}

	candidates, err := uc.matchUC.Nearby(ctx, pickup, rideType, uc.cfg.Dispatch.SearchRadiusKm, uc.cfg.Dispatch.MaxCandidates)
	if err != nil || len(candidates) == 0 {
		if cancelErr := uc.repo.CancelRequest(ctx, request.ID, userID); cancelErr != nil {
			uc.log.WithFields(logrus.Fields{
				"request_id": request.ID,
				"error":      cancelErr.Error(),
			}).Error("Failed to cancel unmatched request")
		}
		if err != nil {
			return nil, err
		}
		return nil, dispatch.ErrNoDriverAvailable
	}

	driverIDs := make([]uuid.UUID, 0, len(candidates))
	for _, c := range candidates {
		driverIDs = append(driverIDs, c.DriverID)
	}
	uc.gateway.PublishRideRequested(ctx, models.RideRequestedEvent{
		RequestID:      request.ID,
		UserID:         userID,
		RideType:       rideType,
		Pickup:         pickup,
		Dropoff:        dropoff,
		EstimatedPrice: price,
		Candidates:     driverIDs,
		RequestedAt:    time.Now(),
	})

	uc.log.WithFields(logrus.Fields{
		"request_id": request.ID,
		"user_id":    userID,
		"ride_type":  rideType,
		"price":      price.String(),
		"candidates": len(candidates),
	}).Info("Ride requested")

	return request, nil
}

func (uc *dispatchUC) AcceptRide(ctx context.Context, driverID, requestID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.repo.AcceptRequest(ctx, driverID, requestID)
	if err != nil {
		return nil, err
	}

	uc.gateway.PublishRideAccepted(ctx, models.RideEvent{
		RideID:    ride.ID,
		RequestID: ride.RequestID,
		UserID:    ride.UserID,
		DriverID:  ride.DriverID,
		Status:    ride.Status,
		Timestamp: ride.AcceptedAt,
	})

	uc.log.WithFields(logrus.Fields{
		"ride_id":    ride.ID,
		"request_id": requestID,
		"driver_id":  driverID,
	}).Info("Ride accepted")

	return ride, nil
}

func (uc *dispatchUC) DriverArriving(ctx context.Context, driverID, rideID uuid.UUID) (*models.Ride, error) {
	return uc.progress(ctx, driverID, rideID, models.RideStatusAccepted, models.RideStatusArriving)
}

func (uc *dispatchUC) MarkArrived(ctx context.Context, driverID, rideID uuid.UUID) (*models.Ride, error) {
	return uc.progress(ctx, driverID, rideID, models.RideStatusArriving, models.RideStatusArrived)
}

func (uc *dispatchUC) StartRide(ctx context.Context, driverID, rideID uuid.UUID) (*models.Ride, error) {
	return uc.progress(ctx, driverID, rideID, models.RideStatusArrived, models.RideStatusInProgress)
}

// progress drives one forward transition. Only the assigned driver moves
// a ride forward.
func (uc *dispatchUC) progress(ctx context.Context, driverID, rideID uuid.UUID, from, to models.RideStatus) (*models.Ride, error) {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driverID {
		return nil, dispatch.ErrWrongActor
	}
	if ride.Status != from {
		return nil, dispatch.ErrInvalidTransition
	}

	updated, err := uc.repo.TransitionRide(ctx, rideID, from, to)
	if err != nil {
		return nil, err
	}

	uc.gateway.PublishRideStatusChanged(ctx, models.RideEvent{
		RideID:    updated.ID,
		RequestID: updated.RequestID,
		UserID:    updated.UserID,
		DriverID:  updated.DriverID,
		Status:    updated.Status,
		Timestamp: time.Now(),
	})
	return updated, nil
}

func (uc *dispatchUC) CompleteRide(ctx context.Context, driverID, rideID uuid.UUID, finalPrice *decimal.Decimal) (*models.Ride, error) {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driverID {
		return nil, dispatch.ErrWrongActor
	}
	if ride.Status != models.RideStatusInProgress {
		return nil, dispatch.ErrInvalidTransition
	}

	// the reservation caps the charge; a lower final price refunds the
	// difference on settlement
	charged := ride.Price
	if finalPrice != nil && finalPrice.IsPositive() && finalPrice.LessThan(ride.Price) {
		charged = *finalPrice
	}
	driverShare := decimal.NewFromFloat(uc.cfg.Pricing.DriverShare)
	earnings := charged.Mul(driverShare).RoundDown(0)

	completed, err := uc.repo.CompleteRide(ctx, ride, charged, earnings)
	if err != nil {
		return nil, err
	}

	uc.gateway.PublishRideCompleted(ctx, models.RideCompletedEvent{
		RideID:         completed.ID,
		UserID:         completed.UserID,
		DriverID:       completed.DriverID,
		Price:          charged,
		DriverEarnings: earnings,
		PlatformFee:    charged.Sub(earnings),
		CompletedAt:    time.Now(),
	})

	uc.log.WithFields(logrus.Fields{
		"ride_id":   completed.ID,
		"driver_id": driverID,
		"charged":   charged.String(),
		"earnings":  earnings.String(),
	}).Info("Ride completed")

	return completed, nil
}

func (uc *dispatchUC) CancelRide(ctx context.Context, actorID, rideID uuid.UUID, reason string) (*models.Ride, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, dispatch.ErrCancelReasonRequired
	}

	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	var cancelledBy string
	switch actorID {
	case ride.UserID:
		cancelledBy = CancelledByPassenger
	case ride.DriverID:
		cancelledBy = CancelledByDriver
	default:
		return nil, dispatch.ErrWrongActor
	}

	// retried cancellations succeed without touching anything
	if ride.Status == models.RideStatusCancelled {
		return ride, nil
	}
	if ride.Status == models.RideStatusCompleted {
		return nil, dispatch.ErrInvalidTransition
	}

	cancelled, err := uc.repo.CancelRide(ctx, ride, reason, cancelledBy)
	if err != nil {
		return nil, err
	}

	uc.gateway.PublishRideCancelled(ctx, models.RideCancelledEvent{
		RideID:      cancelled.ID,
		RequestID:   cancelled.RequestID,
		UserID:      cancelled.UserID,
		DriverID:    cancelled.DriverID,
		Reason:      reason,
		CancelledBy: cancelledBy,
		CancelledAt: time.Now(),
	})

	uc.log.WithFields(logrus.Fields{
		"ride_id":      cancelled.ID,
		"cancelled_by": cancelledBy,
		"reason":       reason,
	}).Info("Ride cancelled")

	return cancelled, nil
}

func (uc *dispatchUC) CancelRequest(ctx context.Context, userID, requestID uuid.UUID) (*models.RideRequest, error) {
	request, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.UserID != userID {
		return nil, dispatch.ErrWrongActor
	}

	switch request.Status {
	case models.RequestStatusCancelled:
		// retried cancellations succeed without touching anything
		return request, nil
	case models.RequestStatusAccepted:
		// a driver already won the request; only the ride can be cancelled
		return nil, dispatch.ErrRideAlreadyTaken
	case models.RequestStatusCompleted:
		return nil, dispatch.ErrInvalidTransition
	}

	if err := uc.repo.CancelRequest(ctx, requestID, userID); err != nil {
		return nil, err
	}
	request.Status = models.RequestStatusCancelled

	uc.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
	}).Info("Ride request cancelled by passenger")

	return request, nil
}

func (uc *dispatchUC) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	return uc.repo.GetRide(ctx, rideID)
}

func (uc *dispatchUC) SweepExpiredRequests(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-uc.cfg.Dispatch.RequestTTL)
	expired, err := uc.repo.ExpirePendingRequests(ctx, cutoff)

	for _, request := range expired {
		uc.gateway.PublishRideRequestExpired(ctx, models.RideRequestedEvent{
			RequestID:      request.ID,
			UserID:         request.UserID,
			RideType:       request.RideType,
			Pickup:         request.Pickup(),
			Dropoff:        request.Dropoff(),
			EstimatedPrice: request.EstimatedPrice,
			RequestedAt:    request.CreatedAt,
		})
	}
	if len(expired) > 0 {
		uc.log.WithFields(logrus.Fields{
			"expired": len(expired),
		}).Info("Expired stale ride requests")
	}
	return len(expired), err
}

// StartExpirySweeper blocks until ctx is done, cancelling overdue
// pending requests on every tick. Run it in its own goroutine.
func (uc *dispatchUC) StartExpirySweeper(ctx context.Context) {
	interval := uc.cfg.Dispatch.SweepInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := uc.SweepExpiredRequests(ctx); err != nil {
				uc.log.WithFields(logrus.Fields{
					"error": err.Error(),
				}).Error("Request expiry sweep failed")
			}
		}
	}
}

func validCoordinates(loc models.Location) bool {
	return loc.Latitude >= -90 && loc.Latitude <= 90 &&
		loc.Longitude >= -180 && loc.Longitude <= 180
}
