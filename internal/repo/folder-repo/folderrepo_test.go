package folderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/D1yWeb/S2C/internal/domain"
)

var (
	now               = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	folderColumnNames = []string{"id", "user_id", "name", "color", "is_deleted", "deleted_at", "created_at"}
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		expectErr bool
	}{
		{name: "Folder created"},
		{name: "Database error", err: errors.New("database error"), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			exec := mock.ExpectExec(regexp.QuoteMeta("INSERT INTO folders")).
				WithArgs("f1", "u1", "Clients", "#3b82f6", now)
			if tt.err != nil {
				exec.WillReturnError(tt.err)
			} else {
				exec.WillReturnResult(pgxmock.NewResult("INSERT", 1))
			}

			err := repo.Create(context.Background(), &domain.Folder{
				ID: "f1", UserID: "u1", Name: "Clients", Color: "#3b82f6", CreatedAt: now,
			})
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		result    *domain.Folder
	}{
		{
			name: "Folder in trash",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM folders")).
					WithArgs("f1").
					WillReturnRows(pgxmock.NewRows(folderColumnNames).
						AddRow("f1", "u1", "Clients", "#3b82f6", true, &now, now))
			},
			result: &domain.Folder{ID: "f1", UserID: "u1", Name: "Clients", Color: "#3b82f6", IsDeleted: true,
				DeletedAt: &now, CreatedAt: now},
		},
		{
			name: "Folder not found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM folders")).
					WithArgs("f1").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM folders")).
					WithArgs("f1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			f, err := repo.GetByID(context.Background(), "f1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, f)
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND is_deleted = $2")).
		WithArgs("u1", false).
		WillReturnRows(pgxmock.NewRows(folderColumnNames).
			AddRow("f1", "u1", "Clients", "#3b82f6", false, nil, now).
			AddRow("f2", "u1", "Drafts", "#ef4444", false, nil, now.Add(time.Hour)))

	folders, err := repo.List(context.Background(), "u1", false)
	require.NoError(t, err)
	require.Len(t, folders, 2)
	assert.Equal(t, "Drafts", folders[1].Name)
	assert.Nil(t, folders[0].DeletedAt)
}

func TestRepository_Mutations(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		args     []any
		call     func(repo *Repository) error
	}{
		{
			name:     "Update",
			fragment: "SET name = $2, color = $3",
			args:     []any{"f1", "Archive", "#000000"},
			call: func(repo *Repository) error {
				return repo.Update(context.Background(), "f1", "Archive", "#000000")
			},
		},
		{
			name:     "Soft delete",
			fragment: "SET is_deleted = TRUE, deleted_at = $2",
			args:     []any{"f1", now},
			call: func(repo *Repository) error {
				return repo.SoftDelete(context.Background(), "f1", now)
			},
		},
		{
			name:     "Restore",
			fragment: "SET is_deleted = FALSE, deleted_at = NULL",
			args:     []any{"f1"},
			call: func(repo *Repository) error {
				return repo.Restore(context.Background(), "f1")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			mock.ExpectExec(regexp.QuoteMeta(tt.fragment)).
				WithArgs(tt.args...).
				WillReturnResult(pgxmock.NewResult("UPDATE", 1))

			assert.NoError(t, tt.call(repo))
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run(tt.name+" fails", func(t *testing.T) {
			repo, mock := NewMock(t)
			mock.ExpectExec(regexp.QuoteMeta(tt.fragment)).
				WithArgs(tt.args...).
				WillReturnError(errors.New("database error"))

			assert.Error(t, tt.call(repo))
		})
	}
}

func TestRepository_PurgeExpired(t *testing.T) {
	cutoff := now.AddDate(0, 0, -90)
	repo, mock := NewMock(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM folders WHERE is_deleted AND deleted_at < $1")).
		WithArgs(cutoff).
		WillReturnResult(pgxmock.NewResult("DELETE", 4))

	n, err := repo.PurgeExpired(context.Background(), cutoff)
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
}
