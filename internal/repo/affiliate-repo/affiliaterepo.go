package affiliaterepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/D1yWeb/S2C/internal/domain"
	"github.com/D1yWeb/S2C/internal/pg"
)

const affiliateColumns = `id, user_id, code, credits_per_signup, is_active, total_clicks, total_signups,
	total_purchases, total_credits_earned, pending_credits, granted_credits, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanAffiliate(row pgx.Row) (*domain.Affiliate, error) {
	var a domain.Affiliate
	err := row.Scan(&a.ID, &a.UserID, &a.Code, &a.CreditsPerSignup, &a.IsActive, &a.TotalClicks, &a.TotalSignups,
		&a.TotalPurchases, &a.TotalCreditsEarned, &a.PendingCredits, &a.GrantedCredits, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.Affiliate, error) {
	affiliate, err := scanAffiliate(r.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find affiliate", zap.Error(err))
		return nil, err
	}
	return affiliate, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.Affiliate, error) {
	return r.findOne(ctx, `SELECT `+affiliateColumns+` FROM affiliates WHERE user_id = $1`, userID)
}

func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Affiliate, error) {
	return r.findOne(ctx, `SELECT `+affiliateColumns+` FROM affiliates WHERE code = $1`, code)
}

// LockByCode must run inside a transaction; the row stays locked until commit.
func (r *Repository) LockByCode(ctx context.Context, code string) (*domain.Affiliate, error) {
	return r.findOne(ctx, `SELECT `+affiliateColumns+` FROM affiliates WHERE code = $1 FOR UPDATE`, code)
}

func (r *Repository) LockByID(ctx context.Context, id string) (*domain.Affiliate, error) {
	return r.findOne(ctx, `SELECT `+affiliateColumns+` FROM affiliates WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) Create(ctx context.Context, a *domain.Affiliate) error {
	query := `
		INSERT INTO affiliates (id, user_id, code, credits_per_signup, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, a.ID, a.UserID, a.Code, a.CreditsPerSignup, a.IsActive, a.CreatedAt)
	if constraint, ok := pg.UniqueViolation(err); ok {
		if constraint == "affiliates_user_id_key" {
			return domain.ErrAffiliateExists
		}
		return domain.ErrAffiliateCodeTaken
	}
	if err != nil {
		zap.L().Error("can't save affiliate", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) IncrementClicks(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE affiliates SET total_clicks = total_clicks + 1 WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("failed to increment affiliate clicks", zap.Error(err))
		return err
	}
	return nil
}

// AddConversion bumps the counter matching kind and books credits as pending.
func (r *Repository) AddConversion(ctx context.Context, id string, kind domain.ConversionType, credits int) error {
	query := `
		UPDATE affiliates
		SET total_signups = total_signups + $2,
			total_purchases = total_purchases + $3,
			total_credits_earned = total_credits_earned + $4,
			pending_credits = pending_credits + $4
		WHERE id = $1
	`
	signups, purchases := 0, 0
	if kind == domain.ConversionSignup {
		signups = 1
	} else {
		purchases = 1
	}
	_, err := r.db.Exec(ctx, query, id, signups, purchases, credits)
	if err != nil {
		zap.L().Error("failed to add affiliate conversion", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MoveToGranted(ctx context.Context, id string, credits int) error {
	query := `
		UPDATE affiliates
		SET pending_credits = pending_credits - $2,
			granted_credits = granted_credits + $2
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, id, credits)
	if err != nil {
		zap.L().Error("failed to move affiliate credits to granted", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetActive(ctx context.Context, id string, isActive bool) (*domain.Affiliate, error) {
	query := `UPDATE affiliates SET is_active = $2 WHERE id = $1 RETURNING ` + affiliateColumns
	affiliate, err := scanAffiliate(r.db.QueryRow(ctx, query, id, isActive))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to update affiliate settings", zap.Error(err))
		return nil, err
	}
	return affiliate, nil
}
