package purchaserepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
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

func TestRepository_Create(t *testing.T) {
	code := "CODE1"
	tests := []struct {
		name      string
		err       error
		expectErr bool
	}{
		{name: "Created"},
		{name: "Database error", err: errors.New("database error"), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			exec := mock.ExpectExec(regexp.QuoteMeta("INSERT INTO credit_purchases")).
				WithArgs("p1", "u1", "small", 10, pgxmock.AnyArg(), &code, domain.PurchasePending, createdAt)
			if tt.err != nil {
				exec.WillReturnError(tt.err)
			} else {
				exec.WillReturnResult(pgxmock.NewResult("INSERT", 1))
			}

			err := repo.Create(context.Background(), &domain.CreditPurchase{
				ID: "p1", UserID: "u1", PackageID: "small", Credits: 10, Price: decimal.RequireFromString("9.99"),
				AffiliateCode: &code, Status: domain.PurchasePending, CreatedAt: createdAt,
			})
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_SetCheckoutID(t *testing.T) {
	repo, mock := NewMock(t)
	mock.ExpectExec(regexp.QuoteMeta("SET provider_checkout_id = $2")).
		WithArgs("p1", "chk_1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.SetCheckoutID(context.Background(), "p1", "chk_1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LockByID(t *testing.T) {
	code := "CODE1"
	checkoutID := "chk_1"
	columns := []string{"id", "user_id", "package_id", "credits", "price", "affiliate_code", "status",
		"provider_checkout_id", "provider_order_id", "created_at", "completed_at"}

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		expectNil bool
	}{
		{
			name: "Pending purchase",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
					WithArgs("p1").
					WillReturnRows(pgxmock.NewRows(columns).
						AddRow("p1", "u1", "small", 10, "9.99", &code, domain.PurchasePending,
							&checkoutID, nil, createdAt, nil))
			},
		},
		{
			name: "Unknown purchase",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
					WithArgs("p1").
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
					WithArgs("p1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			p, err := repo.LockByID(context.Background(), "p1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, p)
				return
			}
			require.NotNil(t, p)
			assert.Equal(t, domain.PurchasePending, p.Status)
			assert.True(t, decimal.RequireFromString("9.99").Equal(p.Price))
			assert.Equal(t, &code, p.AffiliateCode)
			assert.Nil(t, p.CompletedAt)
		})
	}
}

func TestRepository_MarkCompleted(t *testing.T) {
	repo, mock := NewMock(t)
	mock.ExpectExec(regexp.QuoteMeta("provider_order_id = NULLIF($2, '')")).
		WithArgs("p1", "", createdAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.MarkCompleted(context.Background(), "p1", "", createdAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkFailed(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		expectErr bool
	}{
		{name: "Marked"},
		{name: "Database error", err: errors.New("database error"), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			exec := mock.ExpectExec(regexp.QuoteMeta("SET status = 'failed'")).WithArgs("p1")
			if tt.err != nil {
				exec.WillReturnError(tt.err)
			} else {
				exec.WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			}

			err := repo.MarkFailed(context.Background(), "p1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
