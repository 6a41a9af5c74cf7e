package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wakacab/wakacab/internal/pkg/models"
	"github.com/wakacab/wakacab/services/dispatch"
	"github.com/wakacab/wakacab/services/dispatch/repository"
	walletrepo "github.com/wakacab/wakacab/services/wallet/repository"
)

func setupRideRepo(t *testing.T) (dispatch.RideRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	ledger := walletrepo.NewWalletRepository(&models.Config{}, db)
	return repository.NewRideRepo(db, ledger), mock
}

var requestColumns = []string{
	"id", "user_id", "pickup_lat", "pickup_lng", "pickup_address",
	"dropoff_lat", "dropoff_lng", "dropoff_address",
	"ride_type", "estimated_price", "distance_km", "status", "created_at", "updated_at",
}

func requestRow(requestID, userID uuid.UUID, status string) *sqlmock.Rows {
	return sqlmock.NewRows(requestColumns).
		AddRow(requestID, userID, 4.0511, 9.7679, "Bonanjo",
			4.0611, 9.7679, "Akwa",
			"TAXI", "1000", 1.11, status, time.Now(), time.Now())
}

var rideColumns = []string{
	"id", "request_id", "user_id", "driver_id",
	"pickup_lat", "pickup_lng", "pickup_address",
	"dropoff_lat", "dropoff_lng", "dropoff_address",
	"ride_type", "price", "status", "accepted_at", "arriving_at", "arrived_at",
	"started_at", "completed_at", "cancelled_at", "cancel_reason", "cancelled_by",
}

func rideRow(rideID, requestID, userID, driverID uuid.UUID, status string) *sqlmock.Rows {
	return sqlmock.NewRows(rideColumns).
		AddRow(rideID, requestID, userID, driverID,
			4.0511, 9.7679, "Bonanjo",
			4.0611, 9.7679, "Akwa",
			"TAXI", "1000", status, time.Now(), nil, nil,
			nil, nil, nil, nil, nil)
}

func walletRow(userID uuid.UUID, balance, blocked string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "balance", "blocked_amount", "is_active", "created_at", "updated_at"}).
		AddRow(userID, balance, blocked, true, time.Now(), time.Now())
}

var holdColumns = []string{
	"id", "user_id", "type", "amount", "fees", "status",
	"balance_before", "balance_after", "external_ref", "ride_id",
	"metadata", "created_at", "processed_at",
}

func TestHasActiveRequest(t *testing.T) {
	repo, mock := setupRideRepo(t)

	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	active, err := repo.HasActiveRequest(context.Background(), userID)
	assert.NoError(t, err)
	assert.True(t, active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRequest_UniqueViolationMapsToDuplicate(t *testing.T) {
	repo, mock := setupRideRepo(t)

	request := &models.RideRequest{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		RideType:       models.RideTypeTaxi,
		EstimatedPrice: decimal.NewFromInt(1000),
		DistanceKm:     1.11,
		Status:         models.RequestStatusPending,
	}

	// two racing requests both pass the pre-check; the partial unique
	// index rejects the loser at insert time
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ride_requests")).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.CreateRequest(context.Background(), request)
	assert.ErrorIs(t, err, dispatch.ErrDuplicateActiveRequest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRequest_NotFound(t *testing.T) {
	repo, mock := setupRideRepo(t)

	requestID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM ride_requests")).
		WithArgs(requestID).
		WillReturnRows(sqlmock.NewRows(requestColumns))

	_, err := repo.GetRequest(context.Background(), requestID)
	assert.ErrorIs(t, err, dispatch.ErrRequestNotFound)
}

func TestAcceptRequest_SingleWinner(t *testing.T) {
	repo, mock := setupRideRepo(t)

	requestID := uuid.New()
	userID := uuid.New()
	driverID := uuid.New()
	rideID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(requestID).
		WillReturnRows(requestRow(requestID, userID, "PENDING"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE drivers")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE ride_requests")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO rides")).
		WillReturnRows(rideRow(rideID, requestID, userID, driverID, "ACCEPTED"))
	mock.ExpectCommit()

	ride, err := repo.AcceptRequest(context.Background(), driverID, requestID)
	assert.NoError(t, err)
	assert.Equal(t, rideID, ride.ID)
	assert.Equal(t, models.RideStatusAccepted, ride.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptRequest_AlreadyTaken(t *testing.T) {
	repo, mock := setupRideRepo(t)

	requestID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(requestID).
		WillReturnRows(requestRow(requestID, uuid.New(), "ACCEPTED"))
	mock.ExpectRollback()

	_, err := repo.AcceptRequest(context.Background(), uuid.New(), requestID)
	assert.ErrorIs(t, err, dispatch.ErrRideAlreadyTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptRequest_DriverNotAvailable(t *testing.T) {
	repo, mock := setupRideRepo(t)

	requestID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(requestID).
		WillReturnRows(requestRow(requestID, uuid.New(), "PENDING"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE drivers")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.AcceptRequest(context.Background(), uuid.New(), requestID)
	assert.ErrorIs(t, err, dispatch.ErrDriverNotAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionRide_StaleStatus(t *testing.T) {
	repo, mock := setupRideRepo(t)

	rideID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE rides")).
		WillReturnRows(sqlmock.NewRows(rideColumns))

	_, err := repo.TransitionRide(context.Background(), rideID, models.RideStatusAccepted, models.RideStatusArriving)
	assert.ErrorIs(t, err, dispatch.ErrInvalidTransition)
}

func TestTransitionRide_UnknownTarget(t *testing.T) {
	repo, _ := setupRideRepo(t)

	_, err := repo.TransitionRide(context.Background(), uuid.New(), models.RideStatusAccepted, models.RideStatusCompleted)
	assert.ErrorIs(t, err, dispatch.ErrInvalidTransition)
}

func TestCompleteRide_DiscountedSettlementRewritesHold(t *testing.T) {
	repo, mock := setupRideRepo(t)

	requestID := uuid.New()
	userID := uuid.New()
	driverID := uuid.New()
	rideID := uuid.New()
	holdID := uuid.New()

	ride := &models.Ride{
		ID:        rideID,
		RequestID: requestID,
		UserID:    userID,
		DriverID:  driverID,
		RideType:  models.RideTypeTaxi,
		Price:     decimal.NewFromInt(2000),
		Status:    models.RideStatusInProgress,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE rides")).
		WillReturnRows(rideRow(rideID, requestID, userID, driverID, "COMPLETED"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE ride_requests")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// the hold still carries the 2000 reservation
	mock.ExpectQuery(regexp.QuoteMeta("FROM wallet_transactions")).
		WillReturnRows(sqlmock.NewRows(holdColumns).
			AddRow(holdID, userID, "PAYMENT", "-2000", "0", "PENDING",
				"5000", "5000", nil, requestID,
				nil, time.Now(), nil))
	// settle 1700 against the passenger wallet
	mock.ExpectQuery(regexp.QuoteMeta("FROM wallets")).
		WillReturnRows(walletRow(userID, "5000", "2000"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE wallets")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// release the 300 the discount left blocked
	mock.ExpectQuery(regexp.QuoteMeta("FROM wallets")).
		WillReturnRows(walletRow(userID, "3300", "300"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE wallets")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// the completed hold row is rewritten to the charged movement
	mock.ExpectExec(regexp.QuoteMeta("UPDATE wallet_transactions")).
		WithArgs(decimal.NewFromInt(-1700), decimal.NewFromInt(3300), holdID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// driver earnings
	mock.ExpectQuery(regexp.QuoteMeta("FROM wallets")).
		WillReturnRows(walletRow(driverID, "0", "0"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE wallets")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO wallet_transactions")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE drivers")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	completed, err := repo.CompleteRide(context.Background(), ride,
		decimal.NewFromInt(1700), decimal.NewFromInt(1445))
	assert.NoError(t, err)
	assert.Equal(t, models.RideStatusCompleted, completed.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelRequest_AlreadyMovedOnIsNoop(t *testing.T) {
	repo, mock := setupRideRepo(t)

	requestID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE ride_requests")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.CancelRequest(context.Background(), requestID, uuid.New())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRide_NotFound(t *testing.T) {
	repo, mock := setupRideRepo(t)

	rideID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM rides")).
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows(rideColumns))

	_, err := repo.GetRide(context.Background(), rideID)
	assert.ErrorIs(t, err, dispatch.ErrRideNotFound)
}
