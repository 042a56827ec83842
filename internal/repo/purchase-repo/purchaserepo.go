package purchaserepo

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

func (r *Repository) Create(ctx context.Context, p *domain.CreditPurchase) error {
	query := `
		INSERT INTO credit_purchases (id, user_id, package_id, credits, price, affiliate_code, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query, p.ID, p.UserID, p.PackageID, p.Credits, p.Price, p.AffiliateCode, p.Status, p.CreatedAt)
	if err != nil {
		zap.L().Error("can't save credit purchase", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetCheckoutID(ctx context.Context, id, checkoutID string) error {
	_, err := r.db.Exec(ctx, `UPDATE credit_purchases SET provider_checkout_id = $2 WHERE id = $1`, id, checkoutID)
	if err != nil {
		zap.L().Error("failed to store checkout id", zap.Error(err))
		return err
	}
	return nil
}

// LockByID must run inside a transaction.
func (r *Repository) LockByID(ctx context.Context, id string) (*domain.CreditPurchase, error) {
	query := `
		SELECT id, user_id, package_id, credits, price, affiliate_code, status,
			provider_checkout_id, provider_order_id, created_at, completed_at
		FROM credit_purchases
		WHERE id = $1
		FOR UPDATE
	`
	var p domain.CreditPurchase
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.UserID, &p.PackageID, &p.Credits, &p.Price, &p.AffiliateCode,
		&p.Status, &p.ProviderCheckoutID, &p.ProviderOrderID, &p.CreatedAt, &p.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find credit purchase", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) MarkCompleted(ctx context.Context, id, providerOrderID string, at time.Time) error {
	query := `
		UPDATE credit_purchases
		SET status = 'completed', provider_order_id = NULLIF($2, ''), completed_at = $3
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, id, providerOrderID, at)
	if err != nil {
		zap.L().Error("failed to complete credit purchase", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkFailed(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE credit_purchases SET status = 'failed' WHERE id = $1 AND status = 'pending'`, id)
	if err != nil {
		zap.L().Error("failed to mark credit purchase failed", zap.Error(err))
		return err
	}
	return nil
}
