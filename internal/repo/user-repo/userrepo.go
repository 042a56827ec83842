package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/D1yWeb/S2C/internal/domain"
	"github.com/D1yWeb/S2C/internal/pg"
)

const userColumns = `id, email, name, password_hash, image, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, query, args...).
		Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.Image, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return repo.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email)
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return repo.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
}

// UpdateName returns nil when no user has the id.
func (repo *Repository) UpdateName(ctx context.Context, id, name string) (*domain.User, error) {
	return repo.findOne(ctx, "UPDATE users SET name = $2 WHERE id = $1 RETURNING "+userColumns, id, name)
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, email, name, password_hash, image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := repo.db.Exec(ctx, query, user.ID, user.Email, user.Name, user.PasswordHash, user.Image, user.CreatedAt)
	if _, ok := pg.UniqueViolation(err); ok {
		return nil, domain.ErrEmailTaken
	}
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Search matches pattern (a lower-cased LIKE pattern) against email and name,
// skipping excludeID.
func (repo *Repository) Search(ctx context.Context, excludeID, pattern string, limit int) ([]domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id <> $1 AND (LOWER(email) LIKE $2 OR LOWER(name) LIKE $2)
		ORDER BY email
		LIMIT $3
	`
	rows, err := repo.db.Query(ctx, query, excludeID, pattern, limit)
	if err != nil {
		zap.L().Error("failed to search users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.Image, &user.CreatedAt); err != nil {
			zap.L().Error("failed to scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
