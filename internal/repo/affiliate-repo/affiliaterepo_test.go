package affiliaterepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/D1yWeb/S2C/internal/domain"
)

var createdAt = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func affiliateRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "user_id", "code", "credits_per_signup", "is_active", "total_clicks",
		"total_signups", "total_purchases", "total_credits_earned", "pending_credits", "granted_credits", "created_at"}).
		AddRow("a1", "u1", "CODE1", 10, true, 7, 2, 1, 20, 10, 10, createdAt)
}

var expectedAffiliate = &domain.Affiliate{
	ID: "a1", UserID: "u1", Code: "CODE1", CreditsPerSignup: 10, IsActive: true, TotalClicks: 7,
	TotalSignups: 2, TotalPurchases: 1, TotalCreditsEarned: 20, PendingCredits: 10, GrantedCredits: 10,
	CreatedAt: createdAt,
}

func TestRepository_Lookups(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		call      func(r *Repository) (*domain.Affiliate, error)
		mockSetup func(e *pgxmock.ExpectedQuery)
		expectErr bool
		result    *domain.Affiliate
	}{
		{
			name:      "By user id",
			query:     "FROM affiliates WHERE user_id = $1",
			call:      func(r *Repository) (*domain.Affiliate, error) { return r.GetByUserID(context.Background(), "u1") },
			mockSetup: func(e *pgxmock.ExpectedQuery) { e.WithArgs("u1").WillReturnRows(affiliateRows()) },
			result:    expectedAffiliate,
		},
		{
			name:      "By code",
			query:     "FROM affiliates WHERE code = $1",
			call:      func(r *Repository) (*domain.Affiliate, error) { return r.GetByCode(context.Background(), "CODE1") },
			mockSetup: func(e *pgxmock.ExpectedQuery) { e.WithArgs("CODE1").WillReturnRows(affiliateRows()) },
			result:    expectedAffiliate,
		},
		{
			name:      "Locked by code",
			query:     "FROM affiliates WHERE code = $1 FOR UPDATE",
			call:      func(r *Repository) (*domain.Affiliate, error) { return r.LockByCode(context.Background(), "CODE1") },
			mockSetup: func(e *pgxmock.ExpectedQuery) { e.WithArgs("CODE1").WillReturnRows(affiliateRows()) },
			result:    expectedAffiliate,
		},
		{
			name:      "Locked by id",
			query:     "FROM affiliates WHERE id = $1 FOR UPDATE",
			call:      func(r *Repository) (*domain.Affiliate, error) { return r.LockByID(context.Background(), "a1") },
			mockSetup: func(e *pgxmock.ExpectedQuery) { e.WithArgs("a1").WillReturnRows(affiliateRows()) },
			result:    expectedAffiliate,
		},
		{
			name:      "Unknown code",
			query:     "FROM affiliates WHERE code = $1",
			call:      func(r *Repository) (*domain.Affiliate, error) { return r.GetByCode(context.Background(), "NOPE") },
			mockSetup: func(e *pgxmock.ExpectedQuery) { e.WithArgs("NOPE").WillReturnError(pgx.ErrNoRows) },
		},
		{
			name:      "Database error",
			query:     "FROM affiliates WHERE user_id = $1",
			call:      func(r *Repository) (*domain.Affiliate, error) { return r.GetByUserID(context.Background(), "u1") },
			mockSetup: func(e *pgxmock.ExpectedQuery) { e.WithArgs("u1").WillReturnError(errors.New("database error")) },
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock.ExpectQuery(regexp.QuoteMeta(tt.query)))

			result, err := tt.call(repo)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedErr error
	}{
		{name: "Created"},
		{
			name:        "User already has an account",
			err:         &pgconn.PgError{Code: "23505", ConstraintName: "affiliates_user_id_key"},
			expectedErr: domain.ErrAffiliateExists,
		},
		{
			name:        "Code collision",
			err:         &pgconn.PgError{Code: "23505", ConstraintName: "affiliates_code_key"},
			expectedErr: domain.ErrAffiliateCodeTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			a := &domain.Affiliate{ID: "a1", UserID: "u1", Code: "CODE1", CreditsPerSignup: 10, IsActive: true, CreatedAt: createdAt}

			exec := mock.ExpectExec(regexp.QuoteMeta("INSERT INTO affiliates (id, user_id, code, credits_per_signup, is_active, created_at)")).
				WithArgs("a1", "u1", "CODE1", 10, true, createdAt)
			if tt.err != nil {
				exec.WillReturnError(tt.err)
			} else {
				exec.WillReturnResult(pgxmock.NewResult("INSERT", 1))
			}

			err := repo.Create(context.Background(), a)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Counters(t *testing.T) {
	t.Run("Increment clicks", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE affiliates SET total_clicks = total_clicks + 1 WHERE id = $1")).
			WithArgs("a1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.IncrementClicks(context.Background(), "a1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Signup conversion books pending credits", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectExec(regexp.QuoteMeta("SET total_signups = total_signups + $2,")).
			WithArgs("a1", 1, 0, 10).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.AddConversion(context.Background(), "a1", domain.ConversionSignup, 10))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Purchase conversion counts purchase only", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectExec(regexp.QuoteMeta("SET total_signups = total_signups + $2,")).
			WithArgs("a1", 0, 1, 0).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.AddConversion(context.Background(), "a1", domain.ConversionPurchase, 0))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Move to granted", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectExec(regexp.QuoteMeta("SET pending_credits = pending_credits - $2,")).
			WithArgs("a1", 10).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.MoveToGranted(context.Background(), "a1", 10))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Update failure", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE affiliates SET total_clicks")).
			WithArgs("a1").
			WillReturnError(errors.New("database error"))

		assert.Error(t, repo.IncrementClicks(context.Background(), "a1"))
	})
}

func TestRepository_SetActive(t *testing.T) {
	repo, mock := NewMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE affiliates SET is_active = $2 WHERE id = $1 RETURNING")).
		WithArgs("a1", true).
		WillReturnRows(affiliateRows())

	result, err := repo.SetActive(context.Background(), "a1", true)
	assert.NoError(t, err)
	assert.Equal(t, expectedAffiliate, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
