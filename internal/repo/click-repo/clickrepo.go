package clickrepo

import (
	"context"
	"time"

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

func (r *Repository) Create(ctx context.Context, click *domain.Click) error {
	query := `
		INSERT INTO affiliate_clicks (id, affiliate_id, affiliate_code, ip_address, user_agent, referrer, clicked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, click.ID, click.AffiliateID, click.AffiliateCode,
		click.IPAddress, click.UserAgent, click.Referrer, click.ClickedAt)
	if err != nil {
		zap.L().Error("can't save affiliate click", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountSince(ctx context.Context, affiliateID string, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM affiliate_clicks WHERE affiliate_id = $1 AND clicked_at >= $2`,
		affiliateID, since).Scan(&count)
	if err != nil {
		zap.L().Error("failed to count affiliate clicks", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) ListSince(ctx context.Context, affiliateID string, since time.Time) ([]domain.Click, error) {
	query := `
		SELECT id, affiliate_id, affiliate_code, ip_address, user_agent, referrer, clicked_at
		FROM affiliate_clicks
		WHERE affiliate_id = $1 AND clicked_at >= $2
		ORDER BY clicked_at ASC
	`
	rows, err := r.db.Query(ctx, query, affiliateID, since)
	if err != nil {
		zap.L().Error("failed to fetch affiliate clicks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var clicks []domain.Click
	for rows.Next() {
		var c domain.Click
		err := rows.Scan(&c.ID, &c.AffiliateID, &c.AffiliateCode, &c.IPAddress, &c.UserAgent, &c.Referrer, &c.ClickedAt)
		if err != nil {
			zap.L().Error("failed to scan affiliate click row", zap.Error(err))
			return nil, err
		}
		clicks = append(clicks, c)
	}
	return clicks, rows.Err()
}
