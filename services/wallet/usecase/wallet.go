package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/wakacab/wakacab/internal/pkg/logger"
	"github.com/wakacab/wakacab/internal/pkg/models"
	"github.com/wakacab/wakacab/services/wallet"
)

// walletUC implements wallet.WalletUC
type walletUC struct {
	cfg  *models.Config
	repo wallet.WalletRepo
	log  *logger.AppLogger
}

// NewWalletUC creates the transaction processor
func NewWalletUC(cfg *models.Config, repo wallet.WalletRepo, log *logger.AppLogger) wallet.WalletUC {
	return &walletUC{
		cfg:  cfg,
		repo: repo,
		log:  log,
	}
}

// GetWallet returns the wallet for a user, creating it lazily on first use
func (uc *walletUC) GetWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	return uc.repo.GetOrCreateWallet(ctx, userID)
}

// GetTransactions returns the user's transaction history
func (uc *walletUC) GetTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Transaction, error) {
	return uc.repo.ListTransactions(ctx, userID, limit, offset)
}

// Block reserves funds for a ride request. The hold is recorded as a
// pending payment transaction referencing the request.
func (uc *walletUC) Block(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, requestID uuid.UUID) (*models.Transaction, error) {
	txn, err := uc.repo.Apply(ctx, wallet.LedgerMutation{
		UserID: userID,
		Op:     wallet.OpBlock,
		Type:   models.TransactionTypePayment,
		Status: models.TransactionStatusPending,
		Amount: amount,
		RideID: &requestID,
	})
	if err != nil {
		return nil, err
	}

	uc.log.WithFields(logrus.Fields{
		"user_id":    userID,
		"request_id": requestID,
		"amount":     amount.String(),
	}).Info("Blocked funds for ride request")

	return txn, nil
}

// ReleaseHold releases the pending hold for a ride request. Idempotent:
// a missing hold means it was already released or never placed.
func (uc *walletUC) ReleaseHold(ctx context.Context, userID, requestID uuid.UUID) error {
	err := uc.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		hold, err := uc.repo.FindHoldByRequestTx(ctx, tx, requestID)
		if err != nil {
			return err
		}

		if _, err := uc.repo.AdjustTx(ctx, tx, userID, wallet.OpUnblock, hold.Amount.Abs()); err != nil {
			return err
		}
		return uc.repo.MarkTransactionTx(ctx, tx, hold.ID, models.TransactionStatusFailed, nil)
	})
	if errors.Is(err, wallet.ErrHoldNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to release hold: %w", err)
	}

	uc.log.WithFields(logrus.Fields{
		"user_id":    userID,
		"request_id": requestID,
	}).Info("Released ride request hold")

	return nil
}

// Credit unconditionally adds to the balance
func (uc *walletUC) Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, txType models.TransactionType, meta models.Metadata) (*models.Transaction, error) {
	return uc.repo.Apply(ctx, wallet.LedgerMutation{
		UserID:   userID,
		Op:       wallet.OpCredit,
		Type:     txType,
		Status:   models.TransactionStatusCompleted,
		Amount:   amount,
		Metadata: meta,
	})
}

// Debit removes from the balance, failing if the available balance would
// go negative
func (uc *walletUC) Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, txType models.TransactionType, meta models.Metadata) (*models.Transaction, error) {
	return uc.repo.Apply(ctx, wallet.LedgerMutation{
		UserID:   userID,
		Op:       wallet.OpDebit,
		Type:     txType,
		Status:   models.TransactionStatusCompleted,
		Amount:   amount,
		Metadata: meta,
	})
}

// Transfer moves amount between two wallets atomically. Wallets are
// locked in a fixed order to avoid deadlock between concurrent opposite
// transfers.
func (uc *walletUC) Transfer(ctx context.Context, fromUserID, toUserID uuid.UUID, amount decimal.Decimal) error {
	if fromUserID == toUserID {
		return wallet.ErrSelfTransfer
	}
	if amount.Sign() <= 0 {
		return wallet.ErrInvalidAmount
	}

	debit := wallet.LedgerMutation{
		UserID:   fromUserID,
		Op:       wallet.OpDebit,
		Type:     models.TransactionTypeTransfer,
		Status:   models.TransactionStatusCompleted,
		Amount:   amount,
		Metadata: models.Metadata{models.MetaKeyCounterparty: toUserID.String()},
	}
	credit := wallet.LedgerMutation{
		UserID:   toUserID,
		Op:       wallet.OpCredit,
		Type:     models.TransactionTypeTransfer,
		Status:   models.TransactionStatusCompleted,
		Amount:   amount,
		Metadata: models.Metadata{models.MetaKeyCounterparty: fromUserID.String()},
	}

	first, second := debit, credit
	if toUserID.String() < fromUserID.String() {
		first, second = credit, debit
	}

	err := uc.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		if _, err := uc.repo.ApplyTx(ctx, tx, first); err != nil {
			return err
		}
		_, err := uc.repo.ApplyTx(ctx, tx, second)
		return err
	})
	if err != nil {
		return err
	}

	uc.log.WithFields(logrus.Fields{
		"from":   fromUserID,
		"to":     toUserID,
		"amount": amount.String(),
	}).Info("Transfer completed")

	return nil
}
