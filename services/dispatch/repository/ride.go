package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/wakacab/wakacab/internal/pkg/models"
	"github.com/wakacab/wakacab/services/dispatch"
	"github.com/wakacab/wakacab/services/wallet"
)

// pgUniqueViolation is the SQLSTATE raised when an insert breaks a
// unique index
const pgUniqueViolation = "23505"

const rideColumns = `id, request_id, user_id, driver_id,
	pickup_lat, pickup_lng, pickup_address,
	dropoff_lat, dropoff_lng, dropoff_address,
	ride_type, price, status, accepted_at, arriving_at, arrived_at,
	started_at, completed_at, cancelled_at, cancel_reason, cancelled_by`

type rideRepo struct {
	db     *sqlx.DB
	ledger wallet.Ledger
}

// NewRideRepo creates a new ride repository. The ledger shares the same
// database so dispatch mutations and wallet movements commit together.
func NewRideRepo(db *sqlx.DB, ledger wallet.Ledger) dispatch.RideRepo {
	return &rideRepo{db: db, ledger: ledger}
}

func (r *rideRepo) CreateRequest(ctx context.Context, request *models.RideRequest) error {
	query := `
		INSERT INTO ride_requests (
			id, user_id, pickup_lat, pickup_lng, pickup_address,
			dropoff_lat, dropoff_lng, dropoff_address,
			ride_type, estimated_price, distance_km, status, created_at, updated_at
		) VALUES (
			:id, :user_id, :pickup_lat, :pickup_lng, :pickup_address,
			:dropoff_lat, :dropoff_lng, :dropoff_address,
			:ride_type, :estimated_price, :distance_km, :status, NOW(), NOW()
		)`
	if _, err := r.db.NamedExecContext(ctx, query, request); err != nil {
		// the partial unique index on active requests is the authority;
		// the usecase pre-check only catches the cheap case
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return dispatch.ErrDuplicateActiveRequest
		}
		return fmt.Errorf("failed to create ride request: %w", err)
	}
	return nil
}

func (r *rideRepo) GetRequest(ctx context.Context, requestID uuid.UUID) (*models.RideRequest, error) {
	var request models.RideRequest
	err := r.db.GetContext(ctx, &request, `
		SELECT id, user_id, pickup_lat, pickup_lng, pickup_address,
		       dropoff_lat, dropoff_lng, dropoff_address,
		       ride_type, estimated_price, distance_km, status, created_at, updated_at
		FROM ride_requests
		WHERE id = $1`, requestID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dispatch.ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ride request: %w", err)
	}
	return &request, nil
}

func (r *rideRepo) HasActiveRequest(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
		SELECT EXISTS (
			SELECT 1 FROM ride_requests
			WHERE user_id = $1 AND status IN ('PENDING', 'ACCEPTED')
		)`, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check active request: %w", err)
	}
	return exists, nil
}

func (r *rideRepo) CancelRequest(ctx context.Context, requestID, userID uuid.UUID) error {
	return r.ledger.Transact(ctx, func(tx *sqlx.Tx) error {
		return r.cancelRequestTx(ctx, tx, requestID, userID)
	})
}

// cancelRequestTx flips a pending request to cancelled and releases its
// fare hold. Safe to call on a request that already moved on.
func (r *rideRepo) cancelRequestTx(ctx context.Context, tx *sqlx.Tx, requestID, userID uuid.UUID) error {
	result, err := tx.ExecContext(ctx, `
		UPDATE ride_requests
		SET status = 'CANCELLED', updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'`, requestID)
	if err != nil {
		return fmt.Errorf("failed to cancel ride request: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check cancel result: %w", err)
	}
	if rows == 0 {
		return nil
	}
	return r.releaseHoldTx(ctx, tx, requestID, userID)
}

// releaseHoldTx unblocks the fare reservation and fails the hold row.
// A missing hold is tolerated so retried cancellations stay idempotent.
func (r *rideRepo) releaseHoldTx(ctx context.Context, tx *sqlx.Tx, requestID, userID uuid.UUID) error {
	hold, err := r.ledger.FindHoldByRequestTx(ctx, tx, requestID)
	if errors.Is(err, wallet.ErrHoldNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if _, err := r.ledger.AdjustTx(ctx, tx, userID, wallet.OpUnblock, hold.Amount.Abs()); err != nil {
		return err
	}
	return r.ledger.MarkTransactionTx(ctx, tx, hold.ID, models.TransactionStatusFailed, nil)
}

func (r *rideRepo) AcceptRequest(ctx context.Context, driverID, requestID uuid.UUID) (*models.Ride, error) {
	var ride models.Ride
	err := r.ledger.Transact(ctx, func(tx *sqlx.Tx) error {
		var request models.RideRequest
		err := tx.GetContext(ctx, &request, `
			SELECT id, user_id, pickup_lat, pickup_lng, pickup_address,
			       dropoff_lat, dropoff_lng, dropoff_address,
			       ride_type, estimated_price, distance_km, status, created_at, updated_at
			FROM ride_requests
			WHERE id = $1
			FOR UPDATE`, requestID)
		if errors.Is(err, sql.ErrNoRows) {
			return dispatch.ErrRequestNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock ride request: %w", err)
		}
		if request.Status != models.RequestStatusPending {
			return dispatch.ErrRideAlreadyTaken
		}

		// claim the driver; the conditional update is the availability lock
		result, err := tx.ExecContext(ctx, `
			UPDATE drivers
			SET is_available = false, updated_at = NOW()
			WHERE id = $1 AND is_available AND is_online AND status = 'ACTIVE'`,
			driverID)
		if err != nil {
			return fmt.Errorf("failed to claim driver: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check driver claim: %w", err)
		}
		if rows == 0 {
			return dispatch.ErrDriverNotAvailable
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE ride_requests
			SET status = 'ACCEPTED', updated_at = NOW()
			WHERE id = $1`, requestID); err != nil {
			return fmt.Errorf("failed to accept ride request: %w", err)
		}

		err = tx.GetContext(ctx, &ride, `
			INSERT INTO rides (
				id, request_id, user_id, driver_id,
				pickup_lat, pickup_lng, pickup_address,
				dropoff_lat, dropoff_lng, dropoff_address,
				ride_type, price, status, accepted_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 'ACCEPTED', NOW())
			RETURNING `+rideColumns,
			uuid.New(), request.ID, request.UserID, driverID,
			request.PickupLat, request.PickupLng, request.PickupAddress,
			request.DropoffLat, request.DropoffLng, request.DropoffAddress,
			request.RideType, request.EstimatedPrice)
		if err != nil {
			return fmt.Errorf("failed to create ride: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ride, nil
}

func (r *rideRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	var ride models.Ride
	err := r.db.GetContext(ctx, &ride, `
		SELECT `+rideColumns+`
		FROM rides
		WHERE id = $1`, rideID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dispatch.ErrRideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return &ride, nil
}

// timestampColumn maps a target status to the column stamped on entry
func timestampColumn(to models.RideStatus) string {
	switch to {
	case models.RideStatusArriving:
		return "arriving_at"
	case models.RideStatusArrived:
		return "arrived_at"
	case models.RideStatusInProgress:
		return "started_at"
	default:
		return ""
	}
}

func (r *rideRepo) TransitionRide(ctx context.Context, rideID uuid.UUID, from, to models.RideStatus) (*models.Ride, error) {
	column := timestampColumn(to)
	if column == "" {
		return nil, dispatch.ErrInvalidTransition
	}

	var ride models.Ride
	err := r.db.GetContext(ctx, &ride, `
		UPDATE rides
		SET status = $1, `+column+` = NOW()
		WHERE id = $2 AND status = $3
		RETURNING `+rideColumns,
		to, rideID, from)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dispatch.ErrInvalidTransition
	}
	if err != nil {
		return nil, fmt.Errorf("failed to transition ride: %w", err)
	}
	return &ride, nil
}

func (r *rideRepo) CompleteRide(ctx context.Context, ride *models.Ride, charged, driverEarnings decimal.Decimal) (*models.Ride, error) {
	var completed models.Ride
	err := r.ledger.Transact(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &completed, `
			UPDATE rides
			SET status = 'COMPLETED', completed_at = NOW()
			WHERE id = $1 AND status = 'IN_PROGRESS'
			RETURNING `+rideColumns, ride.ID)
		if errors.Is(err, sql.ErrNoRows) {
			return dispatch.ErrInvalidTransition
		}
		if err != nil {
			return fmt.Errorf("failed to complete ride: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE ride_requests
			SET status = 'COMPLETED', updated_at = NOW()
			WHERE id = $1`, ride.RequestID); err != nil {
			return fmt.Errorf("failed to complete ride request: %w", err)
		}

		hold, err := r.ledger.FindHoldByRequestTx(ctx, tx, ride.RequestID)
		switch {
		case errors.Is(err, wallet.ErrHoldNotFound) && !charged.IsPositive():
			// zero-fare rides reserve nothing, so there is no hold to settle
		case err != nil:
			return err
		default:
			holdAmount := hold.Amount.Abs()

			w, err := r.ledger.AdjustTx(ctx, tx, ride.UserID, wallet.OpSettle, charged)
			if err != nil {
				return err
			}
			if leftover := holdAmount.Sub(charged); leftover.IsPositive() {
				if w, err = r.ledger.AdjustTx(ctx, tx, ride.UserID, wallet.OpUnblock, leftover); err != nil {
					return err
				}
			}
			// the completed row must carry the amount actually settled, not
			// the reservation it started as
			if err := r.ledger.SettleHoldTx(ctx, tx, hold.ID, charged.Neg(), w.Balance); err != nil {
				return err
			}
		}

		if driverEarnings.IsPositive() {
			if _, err := r.ledger.ApplyTx(ctx, tx, wallet.LedgerMutation{
				UserID: ride.DriverID,
				Op:     wallet.OpCredit,
				Type:   models.TransactionTypeRideEarnings,
				Status: models.TransactionStatusCompleted,
				Amount: driverEarnings,
				RideID: &ride.ID,
				Metadata: models.Metadata{
					models.MetaKeyRideType: string(ride.RideType),
				},
			}); err != nil {
				return err
			}
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE drivers
			SET is_available = true, total_rides = total_rides + 1, updated_at = NOW()
			WHERE id = $1`, ride.DriverID); err != nil {
			return fmt.Errorf("failed to free driver: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &completed, nil
}

func (r *rideRepo) CancelRide(ctx context.Context, ride *models.Ride, reason, cancelledBy string) (*models.Ride, error) {
	var cancelled models.Ride
	err := r.ledger.Transact(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &cancelled, `
			UPDATE rides
			SET status = 'CANCELLED', cancelled_at = NOW(),
			    cancel_reason = $1, cancelled_by = $2
			WHERE id = $3 AND status NOT IN ('COMPLETED', 'CANCELLED')
			RETURNING `+rideColumns,
			reason, cancelledBy, ride.ID)
		if errors.Is(err, sql.ErrNoRows) {
			return dispatch.ErrInvalidTransition
		}
		if err != nil {
			return fmt.Errorf("failed to cancel ride: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE ride_requests
			SET status = 'CANCELLED', updated_at = NOW()
			WHERE id = $1`, ride.RequestID); err != nil {
			return fmt.Errorf("failed to cancel ride request: %w", err)
		}

		if err := r.releaseHoldTx(ctx, tx, ride.RequestID, ride.UserID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE drivers
			SET is_available = true, updated_at = NOW()
			WHERE id = $1`, ride.DriverID); err != nil {
			return fmt.Errorf("failed to free driver: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cancelled, nil
}

func (r *rideRepo) ExpirePendingRequests(ctx context.Context, cutoff time.Time) ([]models.RideRequest, error) {
	var stale []models.RideRequest
	err := r.db.SelectContext(ctx, &stale, `
		SELECT id, user_id, pickup_lat, pickup_lng, pickup_address,
		       dropoff_lat, dropoff_lng, dropoff_address,
		       ride_type, estimated_price, distance_km, status, created_at, updated_at
		FROM ride_requests
		WHERE status = 'PENDING' AND created_at < $1
		ORDER BY created_at`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale requests: %w", err)
	}

	// each request expires in its own transaction so one bad row does
	// not wedge the whole sweep
	expired := make([]models.RideRequest, 0, len(stale))
	for _, request := range stale {
		err := r.ledger.Transact(ctx, func(tx *sqlx.Tx) error {
			return r.cancelRequestTx(ctx, tx, request.ID, request.UserID)
		})
		if err != nil {
			return expired, fmt.Errorf("failed to expire request %s: %w", request.ID, err)
		}
		expired = append(expired, request)
	}
	return expired, nil
}
