package usecase

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/wakacab/wakacab/internal/pkg/logger"
	"github.com/wakacab/wakacab/internal/pkg/models"
	"github.com/wakacab/wakacab/services/payment"
	"github.com/wakacab/wakacab/services/wallet"
)

type paymentUC struct {
	cfg     *models.Config
	repo    wallet.WalletRepo
	gateway payment.PaymentGW
	log     *logger.AppLogger
}

// NewPaymentUC creates the payment reconciliation usecase
func NewPaymentUC(cfg *models.Config, repo wallet.WalletRepo, gateway payment.PaymentGW, log *logger.AppLogger) payment.PaymentUC {
	return &paymentUC{cfg: cfg, repo: repo, gateway: gateway, log: log}
}

func (uc *paymentUC) InitiateDeposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, method, phoneNumber string) (*models.Transaction, error) {
	if amount.Sign() <= 0 {
		return nil, wallet.ErrInvalidAmount
	}

	resp, err := uc.gateway.InitiatePayment(ctx, models.ProviderInitiateRequest{
		Amount:      amount,
		Currency:    uc.cfg.Pricing.Currency,
		Method:      method,
		Reference:   uuid.New().String(),
		PhoneNumber: phoneNumber,
	})
	if err != nil {
		return nil, err
	}

	// intent only: the balance moves when the provider confirms
	txn, err := uc.repo.Apply(ctx, wallet.LedgerMutation{
		UserID:      userID,
		Op:          wallet.OpNone,
		Type:        models.TransactionTypeDeposit,
		Status:      models.TransactionStatusPending,
		Amount:      amount,
		ExternalRef: &resp.ExternalRef,
		Metadata: models.Metadata{
			models.MetaKeyMethod:      method,
			models.MetaKeyPhoneNumber: phoneNumber,
		},
	})
	if err != nil {
		uc.log.WithFields(logrus.Fields{
			"user_id":      userID,
			"external_ref": resp.ExternalRef,
			"error":        err.Error(),
		}).Error("Provider deposit opened but ledger row not recorded")
		return nil, err
	}

	uc.log.WithFields(logrus.Fields{
		"transaction_id": txn.ID,
		"user_id":        userID,
		"amount":         amount.String(),
	}).Info("Deposit initiated")

	return txn, nil
}

func (uc *paymentUC) InitiateWithdrawal(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, method, phoneNumber string) (*models.Transaction, error) {
	if amount.Sign() <= 0 {
		return nil, wallet.ErrInvalidAmount
	}

	// funds leave the wallet up front so a slow provider cannot let the
	// user spend them twice
	txn, err := uc.repo.Apply(ctx, wallet.LedgerMutation{
		UserID: userID,
		Op:     wallet.OpDebit,
		Type:   models.TransactionTypeWithdrawal,
		Status: models.TransactionStatusPending,
		Amount: amount,
		Metadata: models.Metadata{
			models.MetaKeyMethod:      method,
			models.MetaKeyPhoneNumber: phoneNumber,
		},
	})
	if err != nil {
		return nil, err
	}

	_, err = uc.gateway.InitiatePayment(ctx, models.ProviderInitiateRequest{
		Amount:      amount,
		Currency:    uc.cfg.Pricing.Currency,
		Method:      method,
		Reference:   txn.ID.String(),
		PhoneNumber: phoneNumber,
	})
	if err != nil {
		if compErr := uc.compensateWithdrawal(ctx, txn, amount); compErr != nil {
			uc.log.WithFields(logrus.Fields{
				"transaction_id": txn.ID,
				"error":          compErr.Error(),
			}).Error("Failed to refund aborted withdrawal")
		}
		return nil, err
	}

	uc.log.WithFields(logrus.Fields{
		"transaction_id": txn.ID,
		"user_id":        userID,
		"amount":         amount.String(),
	}).Info("Withdrawal initiated")

	return txn, nil
}

// compensateWithdrawal re-credits a debit whose provider call never went
// through
func (uc *paymentUC) compensateWithdrawal(ctx context.Context, txn *models.Transaction, amount decimal.Decimal) error {
	return uc.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		w, err := uc.repo.AdjustTx(ctx, tx, txn.UserID, wallet.OpCredit, amount)
		if err != nil {
			return err
		}
		return uc.repo.MarkTransactionTx(ctx, tx, txn.ID, models.TransactionStatusFailed, &w.Balance)
	})
}

func (uc *paymentUC) Reconcile(ctx context.Context, notification models.PaymentNotification) error {
	switch notification.Outcome {
	case models.PaymentOutcomeSuccess, models.PaymentOutcomeFailed,
		models.PaymentOutcomePending, models.PaymentOutcomeExpired,
		models.PaymentOutcomeCancelled:
	default:
		return payment.ErrInvalidOutcome
	}

	var settled *models.PaymentSettledEvent
	err := uc.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		txn, err := uc.repo.FindByExternalRefTx(ctx, tx, notification.ProviderRef)
		if errors.Is(err, sql.ErrNoRows) {
			return payment.ErrTransactionNotFound
		}
		if err != nil {
			return err
		}

		// settled rows are immutable; re-deliveries succeed silently
		if txn.Status.IsTerminal() {
			return nil
		}

		if notification.Outcome == models.PaymentOutcomePending {
			return uc.repo.MarkTransactionTx(ctx, tx, txn.ID, models.TransactionStatusProcessing, nil)
		}

		amount := txn.Amount.Abs()
		status := models.TransactionStatusCompleted

		switch {
		case txn.Type == models.TransactionTypeDeposit && notification.Outcome == models.PaymentOutcomeSuccess:
			w, err := uc.repo.AdjustTx(ctx, tx, txn.UserID, wallet.OpCredit, amount)
			if err != nil {
				return err
			}
			if err := uc.repo.MarkTransactionTx(ctx, tx, txn.ID, status, &w.Balance); err != nil {
				return err
			}
		case txn.Type == models.TransactionTypeDeposit:
			status = models.TransactionStatusFailed
			if err := uc.repo.MarkTransactionTx(ctx, tx, txn.ID, status, nil); err != nil {
				return err
			}
		case txn.Type == models.TransactionTypeWithdrawal && notification.Outcome == models.PaymentOutcomeSuccess:
			if err := uc.repo.MarkTransactionTx(ctx, tx, txn.ID, status, nil); err != nil {
				return err
			}
		case txn.Type == models.TransactionTypeWithdrawal:
			status = models.TransactionStatusFailed
			w, err := uc.repo.AdjustTx(ctx, tx, txn.UserID, wallet.OpCredit, amount)
			if err != nil {
				return err
			}
			if err := uc.repo.MarkTransactionTx(ctx, tx, txn.ID, status, &w.Balance); err != nil {
				return err
			}
		default:
			// PAYMENT holds settle through the ride flow, not webhooks
			return payment.ErrInvalidOutcome
		}

		settled = &models.PaymentSettledEvent{
			TransactionID: txn.ID,
			UserID:        txn.UserID,
			Type:          txn.Type,
			Status:        status,
			Amount:        amount,
			SettledAt:     time.Now(),
		}
		return nil
	})
	if err != nil {
		return err
	}

	if settled != nil {
		uc.gateway.PublishPaymentSettled(ctx, *settled)
		uc.log.WithFields(logrus.Fields{
			"transaction_id": settled.TransactionID,
			"type":           settled.Type,
			"status":         settled.Status,
			"outcome":        notification.Outcome,
		}).Info("Payment reconciled")
	}
	return nil
}
