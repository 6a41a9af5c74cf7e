package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wakacab/wakacab/internal/pkg/models"
	"github.com/wakacab/wakacab/services/wallet"
	"github.com/wakacab/wakacab/services/wallet/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func walletRows(userID uuid.UUID, balance, blocked string, active bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "balance", "blocked_amount", "is_active", "created_at", "updated_at"}).
		AddRow(userID, balance, blocked, active, time.Now(), time.Now())
}

func TestApply_BlockSuccess(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewWalletRepository(&models.Config{}, db)

	userID := uuid.New()
	requestID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, balance, blocked_amount, is_active, created_at, updated_at")).
		WithArgs(userID).
		WillReturnRows(walletRows(userID, "5000", "0", true))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE wallets")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO wallet_transactions")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	txn, err := repo.Apply(context.Background(), wallet.LedgerMutation{
		UserID: userID,
		Op:     wallet.OpBlock,
		Type:   models.TransactionTypePayment,
		Status: models.TransactionStatusPending,
		Amount: decimal.NewFromInt(1200),
		RideID: &requestID,
	})
	assert.NoError(t, err)
	assert.Equal(t, "-1200", txn.Amount.String())
	assert.Equal(t, "5000", txn.BalanceBefore.String())
	assert.Equal(t, "5000", txn.BalanceAfter.String())
	assert.Nil(t, txn.ProcessedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_BlockInsufficientFunds(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewWalletRepository(&models.Config{}, db)

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, balance, blocked_amount, is_active, created_at, updated_at")).
		WithArgs(userID).
		WillReturnRows(walletRows(userID, "500", "200", true))
	mock.ExpectRollback()

	_, err := repo.Apply(context.Background(), wallet.LedgerMutation{
		UserID: userID,
		Op:     wallet.OpBlock,
		Type:   models.TransactionTypePayment,
		Status: models.TransactionStatusPending,
		Amount: decimal.NewFromInt(400),
	})
	assert.ErrorIs(t, err, wallet.ErrInsufficientFunds)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_BlockInactiveWallet(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewWalletRepository(&models.Config{}, db)

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, balance, blocked_amount, is_active, created_at, updated_at")).
		WithArgs(userID).
		WillReturnRows(walletRows(userID, "5000", "0", false))
	mock.ExpectRollback()

	_, err := repo.Apply(context.Background(), wallet.LedgerMutation{
		UserID: userID,
		Op:     wallet.OpBlock,
		Type:   models.TransactionTypePayment,
		Status: models.TransactionStatusPending,
		Amount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, wallet.ErrWalletInactive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustTx_UnblockSaturates(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewWalletRepository(&models.Config{}, db)

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, balance, blocked_amount, is_active, created_at, updated_at")).
		WithArgs(userID).
		WillReturnRows(walletRows(userID, "1000", "200", true))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE wallets")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Transact(context.Background(), func(tx *sqlx.Tx) error {
		w, err := repo.AdjustTx(context.Background(), tx, userID, wallet.OpUnblock, decimal.NewFromInt(500))
		if err != nil {
			return err
		}
		assert.Equal(t, "0", w.BlockedAmount.String())
		assert.Equal(t, "1000", w.Balance.String())
		return nil
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_InvalidAmount(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewWalletRepository(&models.Config{}, db)

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, balance, blocked_amount, is_active, created_at, updated_at")).
		WithArgs(userID).
		WillReturnRows(walletRows(userID, "1000", "0", true))
	mock.ExpectRollback()

	_, err := repo.Apply(context.Background(), wallet.LedgerMutation{
		UserID: userID,
		Op:     wallet.OpDebit,
		Type:   models.TransactionTypeWithdrawal,
		Status: models.TransactionStatusPending,
		Amount: decimal.NewFromInt(-50),
	})
	assert.ErrorIs(t, err, wallet.ErrInvalidAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkTransactionTx_Immutable(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewWalletRepository(&models.Config{}, db)

	txnID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE wallet_transactions")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Transact(context.Background(), func(tx *sqlx.Tx) error {
		return repo.MarkTransactionTx(context.Background(), tx, txnID, models.TransactionStatusCompleted, nil)
	})
	assert.ErrorIs(t, err, wallet.ErrTransactionImmutable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettleHoldTx_RewritesAmount(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewWalletRepository(&models.Config{}, db)

	holdID := uuid.New()
	charged := decimal.NewFromInt(-1700)
	balance := decimal.NewFromInt(3300)

	mock.ExpectBegin()
	// the settled row carries the amount actually charged, not the
	// reservation it was opened with
	mock.ExpectExec(regexp.QuoteMeta("UPDATE wallet_transactions")).
		WithArgs(charged, balance, holdID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Transact(context.Background(), func(tx *sqlx.Tx) error {
		return repo.SettleHoldTx(context.Background(), tx, holdID, charged, balance)
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettleHoldTx_TerminalRowImmutable(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewWalletRepository(&models.Config{}, db)

	holdID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE wallet_transactions")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Transact(context.Background(), func(tx *sqlx.Tx) error {
		return repo.SettleHoldTx(context.Background(), tx, holdID, decimal.NewFromInt(-500), decimal.NewFromInt(100))
	})
	assert.ErrorIs(t, err, wallet.ErrTransactionImmutable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWallet_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewWalletRepository(&models.Config{}, db)

	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, balance, blocked_amount, is_active, created_at, updated_at")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "balance", "blocked_amount", "is_active", "created_at", "updated_at"}))

	_, err := repo.GetWallet(context.Background(), userID)
	assert.ErrorIs(t, err, wallet.ErrWalletNotFound)
}

func TestFindHoldByRequestTx_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewWalletRepository(&models.Config{}, db)

	requestID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM wallet_transactions")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := repo.Transact(context.Background(), func(tx *sqlx.Tx) error {
		_, err := repo.FindHoldByRequestTx(context.Background(), tx, requestID)
		return err
	})
	assert.ErrorIs(t, err, wallet.ErrHoldNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
