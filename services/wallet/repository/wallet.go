package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/wakacab/wakacab/internal/pkg/models"
	"github.com/wakacab/wakacab/services/wallet"
)

// WalletRepo implements wallet.WalletRepo over PostgreSQL. Every mutation
// locks the wallet row, derives the new state from the previous one and
// appends to the transaction log inside the same database transaction.
type WalletRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(cfg *models.Config, db *sqlx.DB) *WalletRepo {
	return &WalletRepo{
		cfg: cfg,
		db:  db,
	}
}

// Transact runs fn inside a single database transaction
func (r *WalletRepo) Transact(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetWallet returns the wallet for a user
func (r *WalletRepo) GetWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	var w models.Wallet
	err := r.db.GetContext(ctx, &w, `
		SELECT user_id, balance, blocked_amount, is_active, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
	`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, wallet.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &w, nil
}

// GetOrCreateWallet returns the wallet, materializing an empty one on
// first need
func (r *WalletRepo) GetOrCreateWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	w, err := r.GetWallet(ctx, userID)
	if !errors.Is(err, wallet.ErrWalletNotFound) {
		return w, err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO wallets (user_id, balance, blocked_amount, is_active, created_at, updated_at)
		VALUES ($1, 0, 0, true, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}
	return r.GetWallet(ctx, userID)
}

// ListTransactions returns the newest-first transaction history for a user
func (r *WalletRepo) ListTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Transaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	transactions := []models.Transaction{}
	err := r.db.SelectContext(ctx, &transactions, `
		SELECT id, user_id, type, amount, fees, status,
		       balance_before, balance_after, external_ref, ride_id,
		       metadata, created_at, processed_at
		FROM wallet_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// lockWallet selects the wallet row FOR UPDATE, creating it with a zero
// balance on first need. Wallets are never deleted, only deactivated.
func (r *WalletRepo) lockWallet(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID) (*models.Wallet, error) {
	const selectForUpdate = `
		SELECT user_id, balance, blocked_amount, is_active, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
		FOR UPDATE
	`

	var w models.Wallet
	err := tx.GetContext(ctx, &w, selectForUpdate, userID)
	if errors.Is(err, sql.ErrNoRows) {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO wallets (user_id, balance, blocked_amount, is_active, created_at, updated_at)
			VALUES ($1, 0, 0, true, NOW(), NOW())
			ON CONFLICT (user_id) DO NOTHING
		`, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to create wallet: %w", err)
		}
		err = tx.GetContext(ctx, &w, selectForUpdate, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock wallet: %w", err)
	}
	return &w, nil
}

// applyOp derives the new wallet state from the previous one. It never
// lets balance or blocked amount go negative and never lets the blocked
// amount exceed the balance.
func applyOp(w *models.Wallet, op wallet.Op, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return wallet.ErrInvalidAmount
	}

	switch op {
	case wallet.OpBlock:
		if !w.IsActive {
			return wallet.ErrWalletInactive
		}
		if w.AvailableBalance().LessThan(amount) {
			return wallet.ErrInsufficientFunds
		}
		w.BlockedAmount = w.BlockedAmount.Add(amount)
	case wallet.OpUnblock:
		// Saturating: releasing more than is held frees only what is held
		w.BlockedAmount = w.BlockedAmount.Sub(amount)
		if w.BlockedAmount.Sign() < 0 {
			w.BlockedAmount = decimal.Zero
		}
	case wallet.OpSettle:
		if w.Balance.LessThan(amount) {
			return wallet.ErrInsufficientFunds
		}
		w.Balance = w.Balance.Sub(amount)
		w.BlockedAmount = w.BlockedAmount.Sub(amount)
		if w.BlockedAmount.Sign() < 0 {
			w.BlockedAmount = decimal.Zero
		}
	case wallet.OpCredit:
		w.Balance = w.Balance.Add(amount)
	case wallet.OpNone:
		if !w.IsActive {
			return wallet.ErrWalletInactive
		}
	case wallet.OpDebit:
		if !w.IsActive {
			return wallet.ErrWalletInactive
		}
		if w.AvailableBalance().LessThan(amount) {
			return wallet.ErrInsufficientFunds
		}
		w.Balance = w.Balance.Sub(amount)
	default:
		return fmt.Errorf("unknown ledger op: %s", op)
	}

	return nil
}

// AdjustTx mutates only the wallet inside the caller's transaction
func (r *WalletRepo) AdjustTx(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, op wallet.Op, amount decimal.Decimal) (*models.Wallet, error) {
	w, err := r.lockWallet(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	if err := applyOp(w, op, amount); err != nil {
		return nil, err
	}

	if err := r.updateWallet(ctx, tx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// ApplyTx mutates the wallet and appends exactly one transaction row
// inside the caller's transaction. Partial failure is impossible: either
// both writes commit or neither does.
func (r *WalletRepo) ApplyTx(ctx context.Context, tx *sqlx.Tx, m wallet.LedgerMutation) (*models.Transaction, error) {
	w, err := r.lockWallet(ctx, tx, m.UserID)
	if err != nil {
		return nil, err
	}

	balanceBefore := w.Balance
	if err := applyOp(w, m.Op, m.Amount); err != nil {
		return nil, err
	}

	if err := r.updateWallet(ctx, tx, w); err != nil {
		return nil, err
	}

	now := time.Now()
	txn := &models.Transaction{
		ID:            uuid.New(),
		UserID:        m.UserID,
		Type:          m.Type,
		Amount:        m.SignedAmount(),
		Fees:          m.Fees,
		Status:        m.Status,
		BalanceBefore: balanceBefore,
		BalanceAfter:  w.Balance,
		ExternalRef:   m.ExternalRef,
		RideID:        m.RideID,
		Metadata:      m.Metadata,
		CreatedAt:     now,
	}
	if m.Status.IsTerminal() {
		txn.ProcessedAt = &now
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO wallet_transactions (
			id, user_id, type, amount, fees, status,
			balance_before, balance_after, external_ref, ride_id,
			metadata, created_at, processed_at
		) VALUES (
			:id, :user_id, :type, :amount, :fees, :status,
			:balance_before, :balance_after, :external_ref, :ride_id,
			:metadata, :created_at, :processed_at
		)
	`, txn)
	if err != nil {
		return nil, fmt.Errorf("failed to append transaction: %w", err)
	}

	return txn, nil
}

// Apply runs ApplyTx inside its own transaction
func (r *WalletRepo) Apply(ctx context.Context, m wallet.LedgerMutation) (*models.Transaction, error) {
	var txn *models.Transaction
	err := r.Transact(ctx, func(tx *sqlx.Tx) error {
		var err error
		txn, err = r.ApplyTx(ctx, tx, m)
		return err
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// FindByExternalRefTx locks and returns the transaction carrying the
// provider reference, falling back to the internal id when the reference
// parses as one.
func (r *WalletRepo) FindByExternalRefTx(ctx context.Context, tx *sqlx.Tx, ref string) (*models.Transaction, error) {
	const query = `
		SELECT id, user_id, type, amount, fees, status,
		       balance_before, balance_after, external_ref, ride_id,
		       metadata, created_at, processed_at
		FROM wallet_transactions
		WHERE external_ref = $1
		FOR UPDATE
	`

	var txn models.Transaction
	err := tx.GetContext(ctx, &txn, query, ref)
	if errors.Is(err, sql.ErrNoRows) {
		if id, parseErr := uuid.Parse(ref); parseErr == nil {
			err = tx.GetContext(ctx, &txn, `
				SELECT id, user_id, type, amount, fees, status,
				       balance_before, balance_after, external_ref, ride_id,
				       metadata, created_at, processed_at
				FROM wallet_transactions
				WHERE id = $1
				FOR UPDATE
			`, id)
		}
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to find transaction by ref: %w", err)
	}
	return &txn, nil
}

// FindHoldByRequestTx locks and returns the pending payment hold placed
// for a ride request
func (r *WalletRepo) FindHoldByRequestTx(ctx context.Context, tx *sqlx.Tx, requestID uuid.UUID) (*models.Transaction, error) {
	var txn models.Transaction
	err := tx.GetContext(ctx, &txn, `
		SELECT id, user_id, type, amount, fees, status,
		       balance_before, balance_after, external_ref, ride_id,
		       metadata, created_at, processed_at
		FROM wallet_transactions
		WHERE ride_id = $1 AND type = $2 AND status = $3
		ORDER BY created_at DESC
		LIMIT 1
		FOR UPDATE
	`, requestID, models.TransactionTypePayment, models.TransactionStatusPending)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, wallet.ErrHoldNotFound
		}
		return nil, fmt.Errorf("failed to find hold: %w", err)
	}
	return &txn, nil
}

// MarkTransactionTx finalizes a non-terminal transaction row. Rows that
// already reached COMPLETED or FAILED are immutable.
func (r *WalletRepo) MarkTransactionTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, status models.TransactionStatus, balanceAfter *decimal.Decimal) error {
	var result sql.Result
	var err error
	if balanceAfter != nil {
		result, err = tx.ExecContext(ctx, `
			UPDATE wallet_transactions
			SET status = $1,
			    balance_after = $2,
			    processed_at = CASE WHEN $1 IN ('COMPLETED', 'FAILED') THEN NOW() ELSE processed_at END
			WHERE id = $3 AND status NOT IN ('COMPLETED', 'FAILED')
		`, status, *balanceAfter, id)
	} else {
		result, err = tx.ExecContext(ctx, `
			UPDATE wallet_transactions
			SET status = $1,
			    processed_at = CASE WHEN $1 IN ('COMPLETED', 'FAILED') THEN NOW() ELSE processed_at END
			WHERE id = $2 AND status NOT IN ('COMPLETED', 'FAILED')
		`, status, id)
	}
	if err != nil {
		return fmt.Errorf("failed to mark transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return wallet.ErrTransactionImmutable
	}
	return nil
}

// SettleHoldTx completes a pending hold row, rewriting its amount to the
// signed value actually settled so the log replays to the real balance.
// Terminal rows are immutable.
func (r *WalletRepo) SettleHoldTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, amount, balanceAfter decimal.Decimal) error {
	result, err := tx.ExecContext(ctx, `
		UPDATE wallet_transactions
		SET status = 'COMPLETED',
		    amount = $1,
		    balance_after = $2,
		    processed_at = NOW()
		WHERE id = $3 AND status NOT IN ('COMPLETED', 'FAILED')
	`, amount, balanceAfter, id)
	if err != nil {
		return fmt.Errorf("failed to settle hold: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return wallet.ErrTransactionImmutable
	}
	return nil
}

func (r *WalletRepo) updateWallet(ctx context.Context, tx *sqlx.Tx, w *models.Wallet) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE wallets
		SET balance = $1, blocked_amount = $2, updated_at = NOW()
		WHERE user_id = $3
	`, w.Balance, w.BlockedAmount, w.UserID)
	if err != nil {
		return fmt.Errorf("failed to update wallet: %w", err)
	}
	return nil
}
