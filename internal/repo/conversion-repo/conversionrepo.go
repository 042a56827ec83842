package conversionrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/D1yWeb/S2C/internal/domain"
	"github.com/D1yWeb/S2C/internal/pg"
)

const conversionColumns = `c.id, c.affiliate_id, c.affiliate_code, c.converted_user_id, c.conversion_type, c.amount,
	c.purchase_ref, c.credits_earned, c.status, c.converted_at, c.granted_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func conversionFields(c *domain.Conversion) []any {
	return []any{&c.ID, &c.AffiliateID, &c.AffiliateCode, &c.UserID, &c.Type, &c.Amount,
		&c.PurchaseRef, &c.CreditsEarned, &c.Status, &c.ConvertedAt, &c.GrantedAt}
}

func (r *Repository) Create(ctx context.Context, c *domain.Conversion) error {
	query := `
		INSERT INTO affiliate_conversions (id, affiliate_id, affiliate_code, converted_user_id, conversion_type,
			amount, purchase_ref, credits_earned, status, converted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query, c.ID, c.AffiliateID, c.AffiliateCode, c.UserID, c.Type,
		c.Amount, c.PurchaseRef, c.CreditsEarned, c.Status, c.ConvertedAt)
	if _, ok := pg.UniqueViolation(err); ok {
		return domain.ErrConversionExists
	}
	if err != nil {
		zap.L().Error("can't save affiliate conversion", zap.Error(err))
		return err
	}
	return nil
}

// Exists reports whether a signup was already attributed for userID, or a
// conversion was already recorded for purchaseRef.
func (r *Repository) Exists(ctx context.Context, kind domain.ConversionType, userID string, purchaseRef *string) (bool, error) {
	var (
		query string
		arg   any
	)
	switch {
	case kind == domain.ConversionSignup:
		query = `SELECT EXISTS (SELECT 1 FROM affiliate_conversions WHERE converted_user_id = $1 AND conversion_type = 'signup')`
		arg = userID
	case purchaseRef != nil:
		query = `SELECT EXISTS (SELECT 1 FROM affiliate_conversions WHERE purchase_ref = $1)`
		arg = *purchaseRef
	default:
		return false, nil
	}

	var exists bool
	if err := r.db.QueryRow(ctx, query, arg).Scan(&exists); err != nil {
		zap.L().Error("failed to check affiliate conversion", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// MarkGranted flips a pending conversion to granted. It returns false when the
// conversion was not pending.
func (r *Repository) MarkGranted(ctx context.Context, id string, grantedAt time.Time) (bool, error) {
	query := `
		UPDATE affiliate_conversions
		SET status = 'granted', granted_at = $2
		WHERE id = $1 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, id, grantedAt)
	if err != nil {
		zap.L().Error("failed to mark conversion granted", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) CountByStatus(ctx context.Context, affiliateID string) (map[domain.ConversionStatus]int, error) {
	query := `
		SELECT status, COUNT(*)
		FROM affiliate_conversions
		WHERE affiliate_id = $1
		GROUP BY status
	`
	rows, err := r.db.Query(ctx, query, affiliateID)
	if err != nil {
		zap.L().Error("failed to count affiliate conversions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.ConversionStatus]int)
	for rows.Next() {
		var (
			status domain.ConversionStatus
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			zap.L().Error("failed to scan conversion count row", zap.Error(err))
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// ListByAffiliate returns the newest conversions first. An empty status
// matches every status.
func (r *Repository) ListByAffiliate(ctx context.Context, affiliateID string, status domain.ConversionStatus, limit int) ([]domain.ConversionView, error) {
	query := `
		SELECT ` + conversionColumns + `, COALESCE(u.email, ''), COALESCE(u.name, '')
		FROM affiliate_conversions c
		LEFT JOIN users u ON u.id = c.converted_user_id
		WHERE c.affiliate_id = $1 AND ($2::text = '' OR c.status = $2::text)
		ORDER BY c.converted_at DESC
		LIMIT $3
	`
	rows, err := r.db.Query(ctx, query, affiliateID, string(status), limit)
	if err != nil {
		zap.L().Error("failed to fetch affiliate conversions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var views []domain.ConversionView
	for rows.Next() {
		var v domain.ConversionView
		dest := append(conversionFields(&v.Conversion), &v.UserEmail, &v.UserName)
		if err := rows.Scan(dest...); err != nil {
			zap.L().Error("failed to scan affiliate conversion row", zap.Error(err))
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

func (r *Repository) ListSince(ctx context.Context, affiliateID string, since time.Time) ([]domain.Conversion, error) {
	query := `
		SELECT ` + conversionColumns + `
		FROM affiliate_conversions c
		WHERE c.affiliate_id = $1 AND c.converted_at >= $2
		ORDER BY c.converted_at ASC
	`
	rows, err := r.db.Query(ctx, query, affiliateID, since)
	if err != nil {
		zap.L().Error("failed to fetch affiliate conversions", zap.Error(err))
		return nil, err
	}
	return collect(rows)
}

// ListPendingGrants returns credit-bearing conversions still waiting for
// their grant, oldest first.
func (r *Repository) ListPendingGrants(ctx context.Context, limit int) ([]domain.Conversion, error) {
	query := `
		SELECT ` + conversionColumns + `
		FROM affiliate_conversions c
		WHERE c.status = 'pending' AND c.credits_earned > 0
		ORDER BY c.converted_at ASC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to fetch pending grants", zap.Error(err))
		return nil, err
	}
	return collect(rows)
}

func collect(rows pgx.Rows) ([]domain.Conversion, error) {
	defer rows.Close()

	var conversions []domain.Conversion
	for rows.Next() {
		var c domain.Conversion
		if err := rows.Scan(conversionFields(&c)...); err != nil {
			zap.L().Error("failed to scan affiliate conversion row", zap.Error(err))
			return nil, err
		}
		conversions = append(conversions, c)
	}
	return conversions, rows.Err()
}
