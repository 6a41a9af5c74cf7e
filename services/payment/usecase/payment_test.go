package usecase_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wakacab/wakacab/internal/pkg/logger"
	"github.com/wakacab/wakacab/internal/pkg/models"
	"github.com/wakacab/wakacab/services/payment"
	"github.com/wakacab/wakacab/services/payment/mocks"
	"github.com/wakacab/wakacab/services/payment/usecase"
	"github.com/wakacab/wakacab/services/wallet"
	walletmocks "github.com/wakacab/wakacab/services/wallet/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Pricing: models.PricingConfig{Currency: "XAF"},
	}
}

func testLogger(t *testing.T) *logger.AppLogger {
	log, err := logger.NewAppLogger(models.LoggerConfig{Level: "error"}, nil)
	assert.NoError(t, err)
	return log
}

type paymentFixture struct {
	repo    *walletmocks.MockWalletRepo
	gateway *mocks.MockPaymentGW
	uc      payment.PaymentUC
}

func newPaymentFixture(t *testing.T, ctrl *gomock.Controller) *paymentFixture {
	f := &paymentFixture{
		repo:    walletmocks.NewMockWalletRepo(ctrl),
		gateway: mocks.NewMockPaymentGW(ctrl),
	}
	f.uc = usecase.NewPaymentUC(testConfig(), f.repo, f.gateway, testLogger(t))
	return f
}

func expectTransact(repo *walletmocks.MockWalletRepo) *gomock.Call {
	return repo.EXPECT().
		Transact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
}

func TestInitiateDeposit_RecordsIntentWithoutMovingFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPaymentFixture(t, ctrl)

	userID := uuid.New()
	amount := decimal.NewFromInt(5000)
	providerRef := "MM-REF-123"

	f.gateway.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.ProviderInitiateRequest) (*models.ProviderInitiateResponse, error) {
			assert.Equal(t, "XAF", req.Currency)
			assert.Equal(t, "MTN_MOMO", req.Method)
			assert.NotEmpty(t, req.Reference)
			return &models.ProviderInitiateResponse{ExternalRef: providerRef}, nil
		})
	f.repo.EXPECT().
		Apply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m wallet.LedgerMutation) (*models.Transaction, error) {
			assert.Equal(t, wallet.OpNone, m.Op)
			assert.Equal(t, models.TransactionTypeDeposit, m.Type)
			assert.Equal(t, models.TransactionStatusPending, m.Status)
			assert.Equal(t, providerRef, *m.ExternalRef)
			return &models.Transaction{ID: uuid.New(), UserID: userID}, nil
		})

	txn, err := f.uc.InitiateDeposit(context.Background(), userID, amount, "MTN_MOMO", "+237670000001")
	assert.NoError(t, err)
	assert.Equal(t, userID, txn.UserID)
}

func TestInitiateDeposit_RejectsNonPositiveAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPaymentFixture(t, ctrl)

	_, err := f.uc.InitiateDeposit(context.Background(), uuid.New(), decimal.Zero, "MTN_MOMO", "+237670000001")
	assert.ErrorIs(t, err, wallet.ErrInvalidAmount)
}

func TestInitiateDeposit_ProviderDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPaymentFixture(t, ctrl)

	f.gateway.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return(nil, payment.ErrProviderUnavailable)

	_, err := f.uc.InitiateDeposit(context.Background(), uuid.New(), decimal.NewFromInt(1000), "MTN_MOMO", "+237670000001")
	assert.ErrorIs(t, err, payment.ErrProviderUnavailable)
}

func TestInitiateWithdrawal_DebitsBeforeProviderCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPaymentFixture(t, ctrl)

	userID := uuid.New()
	txnID := uuid.New()
	amount := decimal.NewFromInt(3000)

	debited := f.repo.EXPECT().
		Apply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m wallet.LedgerMutation) (*models.Transaction, error) {
			assert.Equal(t, wallet.OpDebit, m.Op)
			assert.Equal(t, models.TransactionTypeWithdrawal, m.Type)
			assert.Equal(t, models.TransactionStatusPending, m.Status)
			return &models.Transaction{ID: txnID, UserID: userID}, nil
		})
	f.gateway.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		After(debited).
		DoAndReturn(func(_ context.Context, req models.ProviderInitiateRequest) (*models.ProviderInitiateResponse, error) {
			assert.Equal(t, txnID.String(), req.Reference)
			return &models.ProviderInitiateResponse{ExternalRef: "MM-REF-9"}, nil
		})

	txn, err := f.uc.InitiateWithdrawal(context.Background(), userID, amount, "ORANGE_MONEY", "+237690000002")
	assert.NoError(t, err)
	assert.Equal(t, txnID, txn.ID)
}

func TestInitiateWithdrawal_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPaymentFixture(t, ctrl)

	f.repo.EXPECT().
		Apply(gomock.Any(), gomock.Any()).
		Return(nil, wallet.ErrInsufficientFunds)

	_, err := f.uc.InitiateWithdrawal(context.Background(), uuid.New(), decimal.NewFromInt(99999), "MTN_MOMO", "+237670000001")
	assert.ErrorIs(t, err, wallet.ErrInsufficientFunds)
}

func TestInitiateWithdrawal_ProviderFailureRefundsDebit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPaymentFixture(t, ctrl)

	userID := uuid.New()
	txnID := uuid.New()
	amount := decimal.NewFromInt(3000)
	balance := decimal.NewFromInt(8000)

	f.repo.EXPECT().
		Apply(gomock.Any(), gomock.Any()).
		Return(&models.Transaction{ID: txnID, UserID: userID}, nil)
	f.gateway.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return(nil, payment.ErrProviderUnavailable)
	expectTransact(f.repo)
	f.repo.EXPECT().
		AdjustTx(gomock.Any(), gomock.Nil(), userID, wallet.OpCredit, amount).
		Return(&models.Wallet{UserID: userID, Balance: balance}, nil)
	f.repo.EXPECT().
		MarkTransactionTx(gomock.Any(), gomock.Nil(), txnID, models.TransactionStatusFailed, &balance).
		Return(nil)

	_, err := f.uc.InitiateWithdrawal(context.Background(), userID, amount, "MTN_MOMO", "+237670000001")
	assert.ErrorIs(t, err, payment.ErrProviderUnavailable)
}

func TestReconcile_UnknownOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPaymentFixture(t, ctrl)

	err := f.uc.Reconcile(context.Background(), models.PaymentNotification{
		ProviderRef: "MM-REF-1",
		Outcome:     "EXPLODED",
	})
	assert.ErrorIs(t, err, payment.ErrInvalidOutcome)
}

func TestReconcile_TransactionNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPaymentFixture(t, ctrl)

	expectTransact(f.repo)
	f.repo.EXPECT().
		FindByExternalRefTx(gomock.Any(), gomock.Nil(), "MM-REF-404").
		Return(nil, sql.ErrNoRows)

	err := f.uc.Reconcile(context.Background(), models.PaymentNotification{
		ProviderRef: "MM-REF-404",
		Outcome:     models.PaymentOutcomeSuccess,
	})
	assert.ErrorIs(t, err, payment.ErrTransactionNotFound)
}

func TestReconcile_RedeliveryOnSettledRowIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPaymentFixture(t, ctrl)

	expectTransact(f.repo)
	f.repo.EXPECT().
		FindByExternalRefTx(gomock.Any(), gomock.Nil(), "MM-REF-2").
		Return(&models.Transaction{
			ID:     uuid.New(),
			Type:   models.TransactionTypeDeposit,
			Status: models.TransactionStatusCompleted,
			Amount: decimal.NewFromInt(5000),
		}, nil)

	err := f.uc.Reconcile(context.Background(), models.PaymentNotification{
		ProviderRef: "MM-REF-2",
		Outcome:     models.PaymentOutcomeSuccess,
	})
	assert.NoError(t, err)
}

func TestReconcile_PendingOutcomeMarksProcessing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPaymentFixture(t, ctrl)

	txnID := uuid.New()

	expectTransact(f.repo)
	f.repo.EXPECT().
		FindByExternalRefTx(gomock.Any(), gomock.Nil(), "MM-REF-3").
		Return(&models.Transaction{
			ID:     txnID,
			Type:   models.TransactionTypeDeposit,
			Status: models.TransactionStatusPending,
			Amount: decimal.NewFromInt(5000),
		}, nil)
	f.repo.EXPECT().
		MarkTransactionTx(gomock.Any(), gomock.Nil(), txnID, models.TransactionStatusProcessing, nil).
		Return(nil)

	err := f.uc.Reconcile(context.Background(), models.PaymentNotification{
		ProviderRef: "MM-REF-3",
		Outcome:     models.PaymentOutcomePending,
	})
	assert.NoError(t, err)
}

func TestReconcile_DepositSuccessCreditsWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPaymentFixture(t, ctrl)

	userID := uuid.New()
	txnID := uuid.New()
	amount := decimal.NewFromInt(5000)
	balance := decimal.NewFromInt(12000)

	expectTransact(f.repo)
	f.repo.EXPECT().
		FindByExternalRefTx(gomock.Any(), gomock.Nil(), "MM-REF-4").
		Return(&models.Transaction{
			ID:     txnID,
			UserID: userID,
			Type:   models.TransactionTypeDeposit,
			Status: models.TransactionStatusProcessing,
			Amount: amount,
		}, nil)
	f.repo.EXPECT().
		AdjustTx(gomock.Any(), gomock.Nil(), userID, wallet.OpCredit, amount).
		Return(&models.Wallet{UserID: userID, Balance: balance}, nil)
	f.repo.EXPECT().
		MarkTransactionTx(gomock.Any(), gomock.Nil(), txnID, models.TransactionStatusCompleted, &balance).
		Return(nil)
	f.gateway.EXPECT().
		PublishPaymentSettled(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, event models.PaymentSettledEvent) {
			assert.Equal(t, txnID, event.TransactionID)
			assert.Equal(t, models.TransactionStatusCompleted, event.Status)
			assert.Equal(t, "5000", event.Amount.String())
		})

	err := f.uc.Reconcile(context.Background(), models.PaymentNotification{
		ProviderRef: "MM-REF-4",
		Outcome:     models.PaymentOutcomeSuccess,
	})
	assert.NoError(t, err)
}

func TestReconcile_DepositFailureLeavesBalanceAlone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPaymentFixture(t, ctrl)

	txnID := uuid.New()

	expectTransact(f.repo)
	f.repo.EXPECT().
		FindByExternalRefTx(gomock.Any(), gomock.Nil(), "MM-REF-5").
		Return(&models.Transaction{
			ID:     txnID,
			Type:   models.TransactionTypeDeposit,
			Status: models.TransactionStatusPending,
			Amount: decimal.NewFromInt(5000),
		}, nil)
	f.repo.EXPECT().
		MarkTransactionTx(gomock.Any(), gomock.Nil(), txnID, models.TransactionStatusFailed, nil).
		Return(nil)
	f.gateway.EXPECT().PublishPaymentSettled(gomock.Any(), gomock.Any())

	err := f.uc.Reconcile(context.Background(), models.PaymentNotification{
		ProviderRef: "MM-REF-5",
		Outcome:     models.PaymentOutcomeExpired,
	})
	assert.NoError(t, err)
}

func TestReconcile_WithdrawalSuccessOnlyMarksRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPaymentFixture(t, ctrl)

	txnID := uuid.New()

	expectTransact(f.repo)
	f.repo.EXPECT().
		FindByExternalRefTx(gomock.Any(), gomock.Nil(), "MM-REF-6").
		Return(&models.Transaction{
			ID:     txnID,
			Type:   models.TransactionTypeWithdrawal,
			Status: models.TransactionStatusProcessing,
			Amount: decimal.NewFromInt(-3000),
		}, nil)
	f.repo.EXPECT().
		MarkTransactionTx(gomock.Any(), gomock.Nil(), txnID, models.TransactionStatusCompleted, nil).
		Return(nil)
	f.gateway.EXPECT().PublishPaymentSettled(gomock.Any(), gomock.Any())

	err := f.uc.Reconcile(context.Background(), models.PaymentNotification{
		ProviderRef: "MM-REF-6",
		Outcome:     models.PaymentOutcomeSuccess,
	})
	assert.NoError(t, err)
}

func TestReconcile_WithdrawalFailureRecredits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPaymentFixture(t, ctrl)

	userID := uuid.New()
	txnID := uuid.New()
	balance := decimal.NewFromInt(9000)

	expectTransact(f.repo)
	f.repo.EXPECT().
		FindByExternalRefTx(gomock.Any(), gomock.Nil(), "MM-REF-7").
		Return(&models.Transaction{
			ID:     txnID,
			UserID: userID,
			Type:   models.TransactionTypeWithdrawal,
			Status: models.TransactionStatusProcessing,
			Amount: decimal.NewFromInt(-3000),
		}, nil)
	f.repo.EXPECT().
		AdjustTx(gomock.Any(), gomock.Nil(), userID, wallet.OpCredit, decimal.NewFromInt(3000)).
		Return(&models.Wallet{UserID: userID, Balance: balance}, nil)
	f.repo.EXPECT().
		MarkTransactionTx(gomock.Any(), gomock.Nil(), txnID, models.TransactionStatusFailed, &balance).
		Return(nil)
	f.gateway.EXPECT().
		PublishPaymentSettled(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, event models.PaymentSettledEvent) {
			assert.Equal(t, models.TransactionStatusFailed, event.Status)
		})

	err := f.uc.Reconcile(context.Background(), models.PaymentNotification{
		ProviderRef: "MM-REF-7",
		Outcome:     models.PaymentOutcomeFailed,
	})
	assert.NoError(t, err)
}

func TestReconcile_RideHoldRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPaymentFixture(t, ctrl)

	expectTransact(f.repo)
	f.repo.EXPECT().
		FindByExternalRefTx(gomock.Any(), gomock.Nil(), "MM-REF-8").
		Return(&models.Transaction{
			ID:     uuid.New(),
			Type:   models.TransactionTypePayment,
			Status: models.TransactionStatusPending,
			Amount: decimal.NewFromInt(-2000),
		}, nil)

	err := f.uc.Reconcile(context.Background(), models.PaymentNotification{
		ProviderRef: "MM-REF-8",
		Outcome:     models.PaymentOutcomeSuccess,
	})
	assert.ErrorIs(t, err, payment.ErrInvalidOutcome)
}

func TestReconcile_RepoErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPaymentFixture(t, ctrl)

	boom := errors.New("connection reset")

	expectTransact(f.repo)
	f.repo.EXPECT().
		FindByExternalRefTx(gomock.Any(), gomock.Nil(), "MM-REF-9").
		Return(nil, boom)

	err := f.uc.Reconcile(context.Background(), models.PaymentNotification{
		ProviderRef: "MM-REF-9",
		Outcome:     models.PaymentOutcomeSuccess,
	})
	assert.ErrorIs(t, err, boom)
}
