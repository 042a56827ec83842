package creditservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/D1yWeb/S2C/internal/checkout"
	"github.com/D1yWeb/S2C/internal/domain"
	"github.com/D1yWeb/S2C/internal/pg"
)

type mocks struct {
	tx        *pg.MockTXManager
	balances  *MockBalanceRepo
	ledger    *MockLedgerRepo
	purchases *MockPurchaseRepo
	checkout  *MockCheckoutClient
}

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		tx:        pg.NewMockTXManager(ctrl),
		balances:  NewMockBalanceRepo(ctrl),
		ledger:    NewMockLedgerRepo(ctrl),
		purchases: NewMockPurchaseRepo(ctrl),
		checkout:  NewMockCheckoutClient(ctrl),
	}
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).AnyTimes()

	service := New(m.tx, m.balances, m.ledger, m.purchases, m.checkout, Options{
		Products: map[string]string{"small": "prod_small", "medium": "prod_medium"},
		AppURL:   "https://app.example.com",
	})
	service.now = func() time.Time { return fixedNow }
	return service, m
}

func TestGetBalance(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		expected    *domain.CreditBalance
		expectErr   bool
	}{
		{
			name: "Existing balance",
			prepareMock: func(m *mocks) {
				m.balances.EXPECT().GetBalance(gomock.Any(), "u1").
					Return(&domain.CreditBalance{UserID: "u1", Balance: 42, UpdatedAt: fixedNow}, nil)
			},
			expected: &domain.CreditBalance{UserID: "u1", Balance: 42, UpdatedAt: fixedNow},
		},
		{
			name: "No balance yet",
			prepareMock: func(m *mocks) {
				m.balances.EXPECT().GetBalance(gomock.Any(), "u1").Return(nil, nil)
			},
			expected: &domain.CreditBalance{UserID: "u1"},
		},
		{
			name: "Repository error",
			prepareMock: func(m *mocks) {
				m.balances.EXPECT().GetBalance(gomock.Any(), "u1").Return(nil, errors.New("db down"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			balance, err := service.GetBalance(context.Background(), "u1")
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, balance)
		})
	}
}

func TestAddCredits(t *testing.T) {
	tests := []struct {
		name        string
		amount      int
		key         string
		prepareMock func(m *mocks)
		expected    int
		expectedErr error
		expectErr   bool
	}{
		{
			name:   "Appends entry and increments balance",
			amount: 10,
			key:    "affiliate_conversion:c1",
			prepareMock: func(m *mocks) {
				m.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, e *domain.LedgerEntry) (bool, error) {
						assert.Equal(t, 10, e.Amount)
						require.NotNil(t, e.IdempotencyKey)
						assert.Equal(t, "affiliate_conversion:c1", *e.IdempotencyKey)
						return true, nil
					})
				m.balances.EXPECT().AddToBalance(gomock.Any(), "u1", 10, fixedNow).
					Return(&domain.CreditBalance{UserID: "u1", Balance: 10}, nil)
			},
			expected: 10,
		},
		{
			name:   "Replayed key leaves balance untouched",
			amount: 10,
			key:    "affiliate_conversion:c1",
			prepareMock: func(m *mocks) {
				m.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(false, nil)
				m.balances.EXPECT().GetBalance(gomock.Any(), "u1").
					Return(&domain.CreditBalance{UserID: "u1", Balance: 10}, nil)
			},
			expected: 10,
		},
		{
			name:   "Entry without key",
			amount: 5,
			prepareMock: func(m *mocks) {
				m.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, e *domain.LedgerEntry) (bool, error) {
						assert.Nil(t, e.IdempotencyKey)
						return true, nil
					})
				m.balances.EXPECT().AddToBalance(gomock.Any(), "u1", 5, fixedNow).
					Return(&domain.CreditBalance{UserID: "u1", Balance: 15}, nil)
			},
			expected: 15,
		},
		{
			name:        "Rejects non-positive amount",
			amount:      0,
			prepareMock: func(m *mocks) {},
			expectedErr: ErrInvalidAmount,
		},
		{
			name:   "Balance update fails",
			amount: 10,
			prepareMock: func(m *mocks) {
				m.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(true, nil)
				m.balances.EXPECT().AddToBalance(gomock.Any(), "u1", 10, fixedNow).Return(nil, errors.New("db down"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			balance, err := service.AddCredits(context.Background(), "u1", tt.amount, "affiliate_signup", tt.key)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, balance.Balance)
		})
	}
}

func TestGetLedger_DefaultLimit(t *testing.T) {
	service, m := NewMock(t)
	m.ledger.EXPECT().ListByUser(gomock.Any(), "u1", DefaultLedgerLimit).
		Return([]domain.LedgerEntry{{ID: "l1", Amount: 10}}, nil)

	entries, err := service.GetLedger(context.Background(), "u1", 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestPackages_SortedByCredits(t *testing.T) {
	service, _ := NewMock(t)

	packages := service.Packages()
	require.Len(t, packages, len(DefaultPackages))
	for i := 1; i < len(packages); i++ {
		assert.Less(t, packages[i-1].Credits, packages[i].Credits)
	}
}

func TestCheckout(t *testing.T) {
	tests := []struct {
		name        string
		packageID   string
		prepareMock func(m *mocks)
		expectedErr error
		expectErr   bool
	}{
		{
			name:      "Session created",
			packageID: "small",
			prepareMock: func(m *mocks) {
				m.purchases.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p *domain.CreditPurchase) error {
						assert.Equal(t, domain.PurchasePending, p.Status)
						assert.Equal(t, 10, p.Credits)
						require.NotNil(t, p.AffiliateCode)
						assert.Equal(t, "REF1", *p.AffiliateCode)
						return nil
					})
				m.checkout.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req checkout.SessionRequest) (*checkout.Session, error) {
						assert.Equal(t, "prod_small", req.ProductID)
						assert.Equal(t, "https://app.example.com/billing/success?credits=10", req.SuccessURL)
						assert.Equal(t, "u1", req.Metadata["userId"])
						assert.Equal(t, "10", req.Metadata["credits"])
						return &checkout.Session{ID: "cs_1", URL: "https://pay.example.com/cs_1"}, nil
					})
				m.purchases.EXPECT().SetCheckoutID(gomock.Any(), gomock.Any(), "cs_1").Return(nil)
			},
		},
		{
			name:        "Unknown package",
			packageID:   "huge",
			prepareMock: func(m *mocks) {},
			expectedErr: ErrUnknownPackage,
		},
		{
			name:        "Package without product",
			packageID:   "large",
			prepareMock: func(m *mocks) {},
			expectedErr: ErrPackageUnavailable,
		},
		{
			name:      "Provider failure marks purchase failed",
			packageID: "medium",
			prepareMock: func(m *mocks) {
				m.purchases.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.checkout.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil, errors.New("provider down"))
				m.purchases.EXPECT().MarkFailed(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedErr: ErrCheckoutUnavailable,
		},
		{
			name:      "Session without url",
			packageID: "medium",
			prepareMock: func(m *mocks) {
				m.purchases.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.checkout.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(&checkout.Session{ID: "cs_2"}, nil)
				m.purchases.EXPECT().MarkFailed(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedErr: ErrCheckoutUnavailable,
		},
		{
			name:      "Purchase insert fails",
			packageID: "small",
			prepareMock: func(m *mocks) {
				m.purchases.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			session, err := service.Checkout(context.Background(), "u1", tt.packageID, "REF1")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "https://pay.example.com/cs_1", session.URL)
			assert.Equal(t, 10, session.Credits)
			assert.NotEmpty(t, session.PurchaseID)
		})
	}
}

func TestCompletePurchase(t *testing.T) {
	pending := func() *domain.CreditPurchase {
		return &domain.CreditPurchase{ID: "p1", UserID: "u1", Credits: 25, Status: domain.PurchasePending}
	}

	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		expectedErr error
		expectErr   bool
	}{
		{
			name: "Grants credits once",
			prepareMock: func(m *mocks) {
				m.purchases.EXPECT().LockByID(gomock.Any(), "p1").Return(pending(), nil)
				m.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, e *domain.LedgerEntry) (bool, error) {
						assert.Equal(t, "purchase:p1", *e.IdempotencyKey)
						assert.Equal(t, purchaseReason, e.Reason)
						return true, nil
					})
				m.balances.EXPECT().AddToBalance(gomock.Any(), "u1", 25, fixedNow).
					Return(&domain.CreditBalance{UserID: "u1", Balance: 25}, nil)
				m.purchases.EXPECT().MarkCompleted(gomock.Any(), "p1", "ord_1", fixedNow).Return(nil)
			},
		},
		{
			name: "Replayed webhook",
			prepareMock: func(m *mocks) {
				p := pending()
				p.Status = domain.PurchaseCompleted
				m.purchases.EXPECT().LockByID(gomock.Any(), "p1").Return(p, nil)
			},
		},
		{
			name: "Unknown purchase",
			prepareMock: func(m *mocks) {
				m.purchases.EXPECT().LockByID(gomock.Any(), "p1").Return(nil, nil)
			},
			expectedErr: ErrPurchaseNotFound,
		},
		{
			name: "Mark completed fails",
			prepareMock: func(m *mocks) {
				m.purchases.EXPECT().LockByID(gomock.Any(), "p1").Return(pending(), nil)
				m.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(true, nil)
				m.balances.EXPECT().AddToBalance(gomock.Any(), "u1", 25, fixedNow).
					Return(&domain.CreditBalance{UserID: "u1", Balance: 25}, nil)
				m.purchases.EXPECT().MarkCompleted(gomock.Any(), "p1", "ord_1", fixedNow).Return(errors.New("db down"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			purchase, err := service.CompletePurchase(context.Background(), "p1", "ord_1")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.PurchaseCompleted, purchase.Status)
		})
	}
}
