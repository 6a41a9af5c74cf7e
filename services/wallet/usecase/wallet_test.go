package usecase_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wakacab/wakacab/internal/pkg/logger"
	"github.com/wakacab/wakacab/internal/pkg/models"
	"github.com/wakacab/wakacab/services/wallet"
	"github.com/wakacab/wakacab/services/wallet/mocks"
	"github.com/wakacab/wakacab/services/wallet/usecase"
)

func testLogger(t *testing.T) *logger.AppLogger {
	log, err := logger.NewAppLogger(models.LoggerConfig{Level: "error"}, nil)
	assert.NoError(t, err)
	return log
}

func TestBlock_RecordsPendingHold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWalletRepo(ctrl)
	uc := usecase.NewWalletUC(&models.Config{}, mockRepo, testLogger(t))

	userID := uuid.New()
	requestID := uuid.New()
	amount := decimal.NewFromInt(1500)

	mockRepo.EXPECT().
		Apply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m wallet.LedgerMutation) (*models.Transaction, error) {
			assert.Equal(t, wallet.OpBlock, m.Op)
			assert.Equal(t, models.TransactionTypePayment, m.Type)
			assert.Equal(t, models.TransactionStatusPending, m.Status)
			assert.Equal(t, requestID, *m.RideID)
			return &models.Transaction{ID: uuid.New(), UserID: userID, Amount: amount.Neg()}, nil
		})

	txn, err := uc.Block(context.Background(), userID, amount, requestID)
	assert.NoError(t, err)
	assert.Equal(t, amount.Neg(), txn.Amount)
}

func TestBlock_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWalletRepo(ctrl)
	uc := usecase.NewWalletUC(&models.Config{}, mockRepo, testLogger(t))

	mockRepo.EXPECT().
		Apply(gomock.Any(), gomock.Any()).
		Return(nil, wallet.ErrInsufficientFunds)

	_, err := uc.Block(context.Background(), uuid.New(), decimal.NewFromInt(9999), uuid.New())
	assert.ErrorIs(t, err, wallet.ErrInsufficientFunds)
}

func TestReleaseHold_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWalletRepo(ctrl)
	uc := usecase.NewWalletUC(&models.Config{}, mockRepo, testLogger(t))

	userID := uuid.New()
	requestID := uuid.New()
	holdID := uuid.New()
	hold := &models.Transaction{
		ID:     holdID,
		UserID: userID,
		Amount: decimal.NewFromInt(-1200),
		Status: models.TransactionStatusPending,
	}

	mockRepo.EXPECT().
		Transact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
	mockRepo.EXPECT().
		FindHoldByRequestTx(gomock.Any(), gomock.Nil(), requestID).
		Return(hold, nil)
	mockRepo.EXPECT().
		AdjustTx(gomock.Any(), gomock.Nil(), userID, wallet.OpUnblock, decimal.NewFromInt(1200)).
		Return(&models.Wallet{UserID: userID}, nil)
	mockRepo.EXPECT().
		MarkTransactionTx(gomock.Any(), gomock.Nil(), holdID, models.TransactionStatusFailed, nil).
		Return(nil)

	err := uc.ReleaseHold(context.Background(), userID, requestID)
	assert.NoError(t, err)
}

func TestReleaseHold_MissingHoldIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWalletRepo(ctrl)
	uc := usecase.NewWalletUC(&models.Config{}, mockRepo, testLogger(t))

	requestID := uuid.New()

	mockRepo.EXPECT().
		Transact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
	mockRepo.EXPECT().
		FindHoldByRequestTx(gomock.Any(), gomock.Nil(), requestID).
		Return(nil, wallet.ErrHoldNotFound)

	err := uc.ReleaseHold(context.Background(), uuid.New(), requestID)
	assert.NoError(t, err)
}

func TestTransfer_RejectsSelfTransfer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWalletRepo(ctrl)
	uc := usecase.NewWalletUC(&models.Config{}, mockRepo, testLogger(t))

	userID := uuid.New()
	err := uc.Transfer(context.Background(), userID, userID, decimal.NewFromInt(100))
	assert.ErrorIs(t, err, wallet.ErrSelfTransfer)
}

func TestTransfer_RejectsNonPositiveAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWalletRepo(ctrl)
	uc := usecase.NewWalletUC(&models.Config{}, mockRepo, testLogger(t))

	err := uc.Transfer(context.Background(), uuid.New(), uuid.New(), decimal.Zero)
	assert.ErrorIs(t, err, wallet.ErrInvalidAmount)
}

func TestTransfer_AppendsDebitAndCreditRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWalletRepo(ctrl)
	uc := usecase.NewWalletUC(&models.Config{}, mockRepo, testLogger(t))

	fromID := uuid.New()
	toID := uuid.New()
	amount := decimal.NewFromInt(750)

	var applied []wallet.LedgerMutation
	mockRepo.EXPECT().
		Transact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
	mockRepo.EXPECT().
		ApplyTx(gomock.Any(), gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, m wallet.LedgerMutation) (*models.Transaction, error) {
			applied = append(applied, m)
			return &models.Transaction{ID: uuid.New()}, nil
		}).
		Times(2)

	err := uc.Transfer(context.Background(), fromID, toID, amount)
	assert.NoError(t, err)
	assert.Len(t, applied, 2)

	var debit, credit *wallet.LedgerMutation
	for i := range applied {
		switch applied[i].Op {
		case wallet.OpDebit:
			debit = &applied[i]
		case wallet.OpCredit:
			credit = &applied[i]
		}
	}
	assert.NotNil(t, debit)
	assert.NotNil(t, credit)
	assert.Equal(t, fromID, debit.UserID)
	assert.Equal(t, toID, credit.UserID)
	assert.Equal(t, toID.String(), debit.Metadata[models.MetaKeyCounterparty])
	assert.Equal(t, fromID.String(), credit.Metadata[models.MetaKeyCounterparty])
}
