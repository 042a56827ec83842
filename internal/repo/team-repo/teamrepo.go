package teamrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/D1yWeb/S2C/internal/domain"
	"github.com/D1yWeb/S2C/internal/pg"
)

const memberColumns = `m.id, m.project_id, m.user_id, m.role, m.invited_at, m.joined_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func memberFields(m *domain.TeamMember) []any {
	return []any{&m.ID, &m.ProjectID, &m.UserID, &m.Role, &m.InvitedAt, &m.JoinedAt}
}

func (r *Repository) Create(ctx context.Context, m *domain.TeamMember) error {
	query := `
		INSERT INTO project_team_members (id, project_id, user_id, role, invited_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, m.ID, m.ProjectID, m.UserID, m.Role, m.InvitedAt)
	if _, ok := pg.UniqueViolation(err); ok {
		return domain.ErrMemberExists
	}
	if err != nil {
		zap.L().Error("can't save team member", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.TeamMember, error) {
	var m domain.TeamMember
	err := r.db.QueryRow(ctx, query, args...).Scan(memberFields(&m)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find team member", zap.Error(err))
		return nil, err
	}
	return &m, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	return r.findOne(ctx, `SELECT `+memberColumns+` FROM project_team_members m WHERE m.id = $1`, id)
}

func (r *Repository) GetMember(ctx context.Context, projectID, userID string) (*domain.TeamMember, error) {
	return r.findOne(ctx, `SELECT `+memberColumns+` FROM project_team_members m WHERE m.project_id = $1 AND m.user_id = $2`,
		projectID, userID)
}

func (r *Repository) ListAccepted(ctx context.Context, projectID string) ([]domain.MemberView, error) {
	query := `
		SELECT ` + memberColumns + `, COALESCE(u.email, ''), COALESCE(u.name, ''), COALESCE(u.image, '')
		FROM project_team_members m
		LEFT JOIN users u ON u.id = m.user_id
		WHERE m.project_id = $1 AND m.joined_at IS NOT NULL
		ORDER BY m.joined_at ASC
	`
	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		zap.L().Error("can't get team members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var members []domain.MemberView
	for rows.Next() {
		var v domain.MemberView
		dest := append(memberFields(&v.TeamMember), &v.UserEmail, &v.UserName, &v.UserImage)
		if err := rows.Scan(dest...); err != nil {
			zap.L().Error("can't scan team member row", zap.Error(err))
			return nil, err
		}
		members = append(members, v)
	}
	return members, rows.Err()
}

// ListPending returns open invites addressed to userID together with the
// invited project and its owner.
func (r *Repository) ListPending(ctx context.Context, userID string) ([]domain.InviteView, error) {
	query := `
		SELECT ` + memberColumns + `, p.name, p.thumbnail, COALESCE(o.name, ''), COALESCE(o.email, '')
		FROM project_team_members m
		JOIN projects p ON p.id = m.project_id
		LEFT JOIN users o ON o.id = p.user_id
		WHERE m.user_id = $1 AND m.joined_at IS NULL
		ORDER BY m.invited_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get pending invites", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var invites []domain.InviteView
	for rows.Next() {
		var v domain.InviteView
		dest := append(memberFields(&v.TeamMember), &v.ProjectName, &v.ProjectThumbnail, &v.OwnerName, &v.OwnerEmail)
		if err := rows.Scan(dest...); err != nil {
			zap.L().Error("can't scan invite row", zap.Error(err))
			return nil, err
		}
		invites = append(invites, v)
	}
	return invites, rows.Err()
}

// Accept stamps joined_at on a pending invite. It returns false when the
// invite was already accepted.
func (r *Repository) Accept(ctx context.Context, id string, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE project_team_members SET joined_at = $2 WHERE id = $1 AND joined_at IS NULL`, id, at)
	if err != nil {
		zap.L().Error("failed to accept invite", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM project_team_members WHERE id = $1`, id); err != nil {
		zap.L().Error("failed to delete team member", zap.Error(err))
		return err
	}
	return nil
}
