package projectrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/D1yWeb/S2C/internal/domain"
	"github.com/D1yWeb/S2C/internal/pg"
)

const projectColumns = `p.id, p.user_id, p.name, p.description, p.folder_id, p.style_guide, p.sketches_data,
	p.viewport_data, p.generated_design_data, p.thumbnail, p.is_public, p.tags, p.project_number,
	p.is_deleted, p.deleted_at, p.last_modified, p.created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func projectFields(p *domain.Project) []any {
	return []any{&p.ID, &p.UserID, &p.Name, &p.Description, &p.FolderID, &p.StyleGuide, &p.SketchesData,
		&p.ViewportData, &p.GeneratedDesignData, &p.Thumbnail, &p.IsPublic, &p.Tags, &p.ProjectNumber,
		&p.IsDeleted, &p.DeletedAt, &p.LastModified, &p.CreatedAt}
}

// NextNumber hands out per-user project numbers starting at 1.
func (r *Repository) NextNumber(ctx context.Context, userID string) (int, error) {
	query := `
		INSERT INTO project_counters (user_id, next_number)
		VALUES ($1, 2)
		ON CONFLICT (user_id) DO UPDATE SET next_number = project_counters.next_number + 1
		RETURNING next_number - 1
	`
	var number int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&number); err != nil {
		zap.L().Error("failed to allocate project number", zap.Error(err))
		return 0, err
	}
	return number, nil
}

func (r *Repository) Create(ctx context.Context, p *domain.Project) error {
	query := `
		INSERT INTO projects (id, user_id, name, description, folder_id, sketches_data, thumbnail, is_public,
			tags, project_number, last_modified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	_, err := r.db.Exec(ctx, query, p.ID, p.UserID, p.Name, p.Description, p.FolderID, p.SketchesData, p.Thumbnail,
		p.IsPublic, tags, p.ProjectNumber, p.LastModified, p.CreatedAt)
	if err != nil {
		zap.L().Error("can't save project", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	var p domain.Project
	err := r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects p WHERE p.id = $1`, id).Scan(projectFields(&p)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find project", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// List returns projects owned by userID and projects shared with them through
// an accepted invite, most recently modified first.
func (r *Repository) List(ctx context.Context, userID string, filter domain.ProjectFilter) ([]domain.ProjectListItem, error) {
	query := `
		SELECT ` + projectColumns + `, p.user_id <> $1,
			(SELECT COUNT(*) FROM project_team_members m WHERE m.project_id = p.id AND m.joined_at IS NOT NULL)
		FROM projects p
		WHERE (p.user_id = $1 OR EXISTS (
				SELECT 1 FROM project_team_members tm
				WHERE tm.project_id = p.id AND tm.user_id = $1 AND tm.joined_at IS NOT NULL))
			AND p.is_deleted = $2
			AND ($3::uuid IS NULL OR p.folder_id = $3::uuid)
			AND (NOT $4::bool OR p.folder_id IS NULL)
		ORDER BY p.last_modified DESC
		LIMIT $5
	`
	rows, err := r.db.Query(ctx, query, userID, filter.Deleted, filter.FolderID, filter.RootOnly, filter.Limit)
	if err != nil {
		zap.L().Error("can't get projects", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.ProjectListItem
	for rows.Next() {
		var item domain.ProjectListItem
		dest := append(projectFields(&item.Project), &item.IsShared, &item.TeamMemberCount)
		if err := rows.Scan(dest...); err != nil {
			zap.L().Error("can't scan project row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateSketches keeps the stored viewport and thumbnail when they are not
// provided.
func (r *Repository) UpdateSketches(ctx context.Context, id string, sketches, viewport json.RawMessage, thumbnail *string, at time.Time) error {
	query := `
		UPDATE projects
		SET sketches_data = $2, viewport_data = COALESCE($3, viewport_data),
			thumbnail = COALESCE($4, thumbnail), last_modified = $5
		WHERE id = $1
	`
	return r.exec(ctx, "failed to update project sketches", query, id, sketches, viewport, thumbnail, at)
}

func (r *Repository) UpdateStyleGuide(ctx context.Context, id, styleGuide string, at time.Time) error {
	query := `UPDATE projects SET style_guide = $2, last_modified = $3 WHERE id = $1`
	return r.exec(ctx, "failed to update project style guide", query, id, styleGuide, at)
}

func (r *Repository) Rename(ctx context.Context, id, name string, at time.Time) error {
	query := `UPDATE projects SET name = $2, last_modified = $3 WHERE id = $1`
	return r.exec(ctx, "failed to rename project", query, id, name, at)
}

func (r *Repository) SetFolder(ctx context.Context, id string, folderID *string, at time.Time) error {
	query := `UPDATE projects SET folder_id = $2, last_modified = $3 WHERE id = $1`
	return r.exec(ctx, "failed to move project", query, id, folderID, at)
}

func (r *Repository) SoftDelete(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE projects SET is_deleted = TRUE, deleted_at = $2 WHERE id = $1`
	return r.exec(ctx, "failed to delete project", query, id, at)
}

func (r *Repository) Restore(ctx context.Context, id string) error {
	query := `UPDATE projects SET is_deleted = FALSE, deleted_at = NULL WHERE id = $1`
	return r.exec(ctx, "failed to restore project", query, id)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.exec(ctx, "failed to permanently delete project", `DELETE FROM projects WHERE id = $1`, id)
}

// PurgeInExpiredFolders removes every project inside a folder that has been
// in the trash since before cutoff.
func (r *Repository) PurgeInExpiredFolders(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM projects
		WHERE folder_id IN (SELECT id FROM folders WHERE is_deleted AND deleted_at < $1)
	`
	tag, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		zap.L().Error("failed to purge projects of expired folders", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE is_deleted AND deleted_at < $1`, cutoff)
	if err != nil {
		zap.L().Error("failed to purge expired projects", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) exec(ctx context.Context, msg, query string, args ...any) error {
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		zap.L().Error(msg, zap.Error(err))
		return err
	}
	return nil
}
