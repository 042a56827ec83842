package creditrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/D1yWeb/S2C/internal/domain"
	"github.com/D1yWeb/S2C/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetBalance(ctx context.Context, userID string) (*domain.CreditBalance, error) {
	query := `
		SELECT user_id, balance, updated_at
		FROM user_credits
		WHERE user_id = $1
	`
	var balance domain.CreditBalance
	err := r.db.QueryRow(ctx, query, userID).Scan(&balance.UserID, &balance.Balance, &balance.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get credit balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// AddToBalance creates the balance row on first use, otherwise increments it
// in place.
func (r *Repository) AddToBalance(ctx context.Context, userID string, amount int, at time.Time) (*domain.CreditBalance, error) {
	query := `
		INSERT INTO user_credits (user_id, balance, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET balance = user_credits.balance + excluded.balance, updated_at = excluded.updated_at
		RETURNING user_id, balance, updated_at
	`
	var balance domain.CreditBalance
	err := r.db.QueryRow(ctx, query, userID, amount, at).Scan(&balance.UserID, &balance.Balance, &balance.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to update credit balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Append stores a ledger entry. It returns false when an entry with the same
// idempotency key already exists.
func (r *Repository) Append(ctx context.Context, entry *domain.LedgerEntry) (bool, error) {
	query := `
		INSERT INTO credit_ledger (id, user_id, amount, reason, idempotency_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, entry.ID, entry.UserID, entry.Amount, entry.Reason, entry.IdempotencyKey, entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't append credit ledger entry", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.LedgerEntry, error) {
	query := `
		SELECT id, user_id, amount, reason, idempotency_key, created_at
		FROM credit_ledger
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch credit ledger", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Reason, &e.IdempotencyKey, &e.CreatedAt); err != nil {
			zap.L().Error("failed to scan credit ledger row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
