package folderrepo

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

func (r *Repository) Create(ctx context.Context, f *domain.Folder) error {
	query := `
		INSERT INTO folders (id, user_id, name, color, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.Exec(ctx, query, f.ID, f.UserID, f.Name, f.Color, f.CreatedAt); err != nil {
		zap.L().Error("can't save folder", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Folder, error) {
	query := `
		SELECT id, user_id, name, color, is_deleted, deleted_at, created_at
		FROM folders
		WHERE id = $1
	`
	var f domain.Folder
	err := r.db.QueryRow(ctx, query, id).Scan(&f.ID, &f.UserID, &f.Name, &f.Color, &f.IsDeleted, &f.DeletedAt, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find folder", zap.Error(err))
		return nil, err
	}
	return &f, nil
}

func (r *Repository) List(ctx context.Context, userID string, deleted bool) ([]domain.Folder, error) {
	query := `
		SELECT id, user_id, name, color, is_deleted, deleted_at, created_at
		FROM folders
		WHERE user_id = $1 AND is_deleted = $2
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, userID, deleted)
	if err != nil {
		zap.L().Error("can't get folders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var folders []domain.Folder
	for rows.Next() {
		var f domain.Folder
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.Color, &f.IsDeleted, &f.DeletedAt, &f.CreatedAt); err != nil {
			zap.L().Error("can't scan folder row", zap.Error(err))
			return nil, err
		}
		folders = append(folders, f)
	}
	return folders, rows.Err()
}

func (r *Repository) Update(ctx context.Context, id, name, color string) error {
	if _, err := r.db.Exec(ctx, `UPDATE folders SET name = $2, color = $3 WHERE id = $1`, id, name, color); err != nil {
		zap.L().Error("failed to update folder", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SoftDelete(ctx context.Context, id string, at time.Time) error {
	if _, err := r.db.Exec(ctx, `UPDATE folders SET is_deleted = TRUE, deleted_at = $2 WHERE id = $1`, id, at); err != nil {
		zap.L().Error("failed to delete folder", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Restore(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `UPDATE folders SET is_deleted = FALSE, deleted_at = NULL WHERE id = $1`, id); err != nil {
		zap.L().Error("failed to restore folder", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM folders WHERE is_deleted AND deleted_at < $1`, cutoff)
	if err != nil {
		zap.L().Error("failed to purge expired folders", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
