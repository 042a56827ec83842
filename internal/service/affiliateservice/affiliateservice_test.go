package affiliateservice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/D1yWeb/S2C/internal/domain"
	"github.com/D1yWeb/S2C/internal/pg"
)

type mocks struct {
	tx          *pg.MockTXManager
	affiliates  *MockAffiliateRepo
	clicks      *MockClickRepo
	conversions *MockConversionRepo
	credits     *MockCreditGranter
}

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		tx:          pg.NewMockTXManager(ctrl),
		affiliates:  NewMockAffiliateRepo(ctrl),
		clicks:      NewMockClickRepo(ctrl),
		conversions: NewMockConversionRepo(ctrl),
		credits:     NewMockCreditGranter(ctrl),
	}
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).AnyTimes()

	service := New(m.tx, m.affiliates, m.clicks, m.conversions, m.credits, 10)
	service.now = func() time.Time { return fixedNow }
	return service, m
}

func TestGenerateCode(t *testing.T) {
	userID := "7f0c1a2b-0000-4000-8000-00000abcdef1"
	code, err := GenerateCode(userID, fixedNow)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(code, "BCDEF1"))
	assert.Equal(t, strings.ToUpper(code), code)
	assert.Len(t, code, 6+len("lvzx3k00")+codeRandomLength)

	other, err := GenerateCode(userID, fixedNow)
	require.NoError(t, err)
	assert.NotEqual(t, code, other)
}

func TestCreateOrGet(t *testing.T) {
	existing := &domain.Affiliate{ID: "a1", UserID: "u1", Code: "CODE1", IsActive: true}

	tests := []struct {
		name         string
		prepareMock  func(m *mocks)
		generate     func(userID string, now time.Time) (string, error)
		expectedCode string
		expectedErr  error
	}{
		{
			name: "Returns existing account unchanged",
			prepareMock: func(m *mocks) {
				m.affiliates.EXPECT().GetByUserID(gomock.Any(), "u1").Return(existing, nil)
			},
			expectedCode: "CODE1",
		},
		{
			name: "Creates new account",
			prepareMock: func(m *mocks) {
				m.affiliates.EXPECT().GetByUserID(gomock.Any(), "u1").Return(nil, nil)
				m.affiliates.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, a *domain.Affiliate) error {
						assert.True(t, a.IsActive)
						assert.Equal(t, 10, a.CreditsPerSignup)
						assert.Zero(t, a.TotalClicks)
						return nil
					})
			},
			generate:     func(string, time.Time) (string, error) { return "NEWCODE", nil },
			expectedCode: "NEWCODE",
		},
		{
			name: "Regenerates code on collision",
			prepareMock: func(m *mocks) {
				m.affiliates.EXPECT().GetByUserID(gomock.Any(), "u1").Return(nil, nil)
				gomock.InOrder(
					m.affiliates.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrAffiliateCodeTaken),
					m.affiliates.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
				)
			},
			generate: func() func(string, time.Time) (string, error) {
				codes := []string{"TAKEN", "FREE"}
				return func(string, time.Time) (string, error) {
					code := codes[0]
					codes = codes[1:]
					return code, nil
				}
			}(),
			expectedCode: "FREE",
		},
		{
			name: "Gives up after repeated collisions",
			prepareMock: func(m *mocks) {
				m.affiliates.EXPECT().GetByUserID(gomock.Any(), "u1").Return(nil, nil)
				m.affiliates.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrAffiliateCodeTaken).Times(maxCodeAttempts)
			},
			generate:    func(string, time.Time) (string, error) { return "TAKEN", nil },
			expectedErr: ErrCodeGeneration,
		},
		{
			name: "Re-reads the winner after a concurrent create",
			prepareMock: func(m *mocks) {
				gomock.InOrder(
					m.affiliates.EXPECT().GetByUserID(gomock.Any(), "u1").Return(nil, nil),
					m.affiliates.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrAffiliateExists),
					m.affiliates.EXPECT().GetByUserID(gomock.Any(), "u1").Return(existing, nil),
				)
			},
			generate:     func(string, time.Time) (string, error) { return "LOSER", nil },
			expectedCode: "CODE1",
		},
		{
			name: "Repository error",
			prepareMock: func(m *mocks) {
				m.affiliates.EXPECT().GetByUserID(gomock.Any(), "u1").Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)
			if tt.generate != nil {
				service.generate = tt.generate
			}

			affiliate, err := service.CreateOrGet(context.Background(), "u1")
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Nil(t, affiliate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCode, affiliate.Code)
		})
	}
}

func TestCreateOrGet_CanceledCaller(t *testing.T) {
	service, m := NewMock(t)
	service.generate = func(string, time.Time) (string, error) { return "NEWCODE", nil }

	m.affiliates.EXPECT().GetByUserID(gomock.Any(), "u1").
		DoAndReturn(func(ctx context.Context, userID string) (*domain.Affiliate, error) {
			assert.NoError(t, ctx.Err())
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return nil, nil
		})
	m.affiliates.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, a *domain.Affiliate) error {
			return ctx.Err()
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	affiliate, err := service.CreateOrGet(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "NEWCODE", affiliate.Code)
}

func TestTrackClick(t *testing.T) {
	active := &domain.Affiliate{ID: "a1", UserID: "owner", Code: "CODE1", IsActive: true}
	inactive := &domain.Affiliate{ID: "a2", UserID: "owner", Code: "CODE2", IsActive: false}

	tests := []struct {
		name        string
		code        string
		prepareMock func(m *mocks)
		expectedErr error
	}{
		{
			name: "Records click and increments counter",
			code: "CODE1",
			prepareMock: func(m *mocks) {
				m.affiliates.EXPECT().GetByCode(gomock.Any(), "CODE1").Return(active, nil)
				m.clicks.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, c *domain.Click) error {
						assert.Equal(t, "a1", c.AffiliateID)
						assert.Equal(t, "CODE1", c.AffiliateCode)
						assert.Equal(t, "10.0.0.1", c.IPAddress)
						assert.Equal(t, fixedNow, c.ClickedAt)
						return nil
					})
				m.affiliates.EXPECT().IncrementClicks(gomock.Any(), "a1").Return(nil)
			},
		},
		{
			name: "Unknown code",
			code: "NOPE",
			prepareMock: func(m *mocks) {
				m.affiliates.EXPECT().GetByCode(gomock.Any(), "NOPE").Return(nil, nil)
			},
			expectedErr: ErrInvalidCode,
		},
		{
			name: "Inactive account",
			code: "CODE2",
			prepareMock: func(m *mocks) {
				m.affiliates.EXPECT().GetByCode(gomock.Any(), "CODE2").Return(inactive, nil)
			},
			expectedErr: ErrInvalidCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.TrackClick(context.Background(), tt.code, domain.ClickMeta{IPAddress: "10.0.0.1"})
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecordConversion(t *testing.T) {
	account := func() *domain.Affiliate {
		return &domain.Affiliate{ID: "a1", UserID: "owner", Code: "CODE1", IsActive: true, CreditsPerSignup: 10}
	}

	tests := []struct {
		name            string
		input           domain.ConversionInput
		prepareMock     func(m *mocks)
		expectedCredits int
		expectedErr     error
	}{
		{
			name:  "Signup grants credits",
			input: domain.ConversionInput{Code: "CODE1", UserID: "referred", Type: domain.ConversionSignup},
			prepareMock: func(m *mocks) {
				m.affiliates.EXPECT().LockByCode(gomock.Any(), "CODE1").Return(account(), nil)
				m.conversions.EXPECT().Exists(gomock.Any(), domain.ConversionSignup, "referred", nil).Return(false, nil)
				var conversionID string
				m.conversions.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, c *domain.Conversion) error {
						assert.Equal(t, domain.ConversionPending, c.Status)
						assert.Equal(t, 10, c.CreditsEarned)
						conversionID = c.ID
						return nil
					})
				m.affiliates.EXPECT().AddConversion(gomock.Any(), "a1", domain.ConversionSignup, 10).Return(nil)
				m.credits.EXPECT().AddCredits(gomock.Any(), "owner", 10, grantReason, gomock.Any()).
					DoAndReturn(func(ctx context.Context, userID string, amount int, reason, key string) (*domain.CreditBalance, error) {
						assert.Equal(t, "affiliate_conversion:"+conversionID, key)
						return &domain.CreditBalance{UserID: userID, Balance: 10}, nil
					})
				m.conversions.EXPECT().MarkGranted(gomock.Any(), gomock.Any(), fixedNow).Return(true, nil)
				m.affiliates.EXPECT().MoveToGranted(gomock.Any(), "a1", 10).Return(nil)
			},
			expectedCredits: 10,
		},
		{
			name: "Purchase earns no credits and skips grant",
			input: domain.ConversionInput{
				Code: "CODE1", UserID: "referred", Type: domain.ConversionPurchase, PurchaseRef: "p1",
			},
			prepareMock: func(m *mocks) {
				m.affiliates.EXPECT().LockByCode(gomock.Any(), "CODE1").Return(account(), nil)
				m.conversions.EXPECT().Exists(gomock.Any(), domain.ConversionPurchase, "referred", gomock.Any()).Return(false, nil)
				m.conversions.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, c *domain.Conversion) error {
						require.NotNil(t, c.PurchaseRef)
						assert.Equal(t, "p1", *c.PurchaseRef)
						assert.Zero(t, c.CreditsEarned)
						return nil
					})
				m.affiliates.EXPECT().AddConversion(gomock.Any(), "a1", domain.ConversionPurchase, 0).Return(nil)
			},
			expectedCredits: 0,
		},
		{
			name:  "Failed grant keeps the conversion",
			input: domain.ConversionInput{Code: "CODE1", UserID: "referred", Type: domain.ConversionSignup},
			prepareMock: func(m *mocks) {
				m.affiliates.EXPECT().LockByCode(gomock.Any(), "CODE1").Return(account(), nil)
				m.conversions.EXPECT().Exists(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				m.conversions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.affiliates.EXPECT().AddConversion(gomock.Any(), "a1", domain.ConversionSignup, 10).Return(nil)
				m.credits.EXPECT().AddCredits(gomock.Any(), "owner", 10, grantReason, gomock.Any()).
					Return(nil, errors.New("ledger unavailable"))
			},
			expectedCredits: 10,
		},
		{
			name:  "Unknown code",
			input: domain.ConversionInput{Code: "NOPE", UserID: "referred", Type: domain.ConversionSignup},
			prepareMock: func(m *mocks) {
				m.affiliates.EXPECT().LockByCode(gomock.Any(), "NOPE").Return(nil, nil)
			},
			expectedErr: ErrInvalidCode,
		},
		{
			name:  "Inactive account",
			input: domain.ConversionInput{Code: "CODE1", UserID: "referred", Type: domain.ConversionSignup},
			prepareMock: func(m *mocks) {
				a := account()
				a.IsActive = false
				m.affiliates.EXPECT().LockByCode(gomock.Any(), "CODE1").Return(a, nil)
			},
			expectedErr: ErrInvalidCode,
		},
		{
			name:  "Self referral",
			input: domain.ConversionInput{Code: "CODE1", UserID: "owner", Type: domain.ConversionSignup},
			prepareMock: func(m *mocks) {
				m.affiliates.EXPECT().LockByCode(gomock.Any(), "CODE1").Return(account(), nil)
			},
			expectedErr: ErrSelfReferral,
		},
		{
			name:  "Duplicate signup",
			input: domain.ConversionInput{Code: "CODE1", UserID: "referred", Type: domain.ConversionSignup},
			prepareMock: func(m *mocks) {
				m.affiliates.EXPECT().LockByCode(gomock.Any(), "CODE1").Return(account(), nil)
				m.conversions.EXPECT().Exists(gomock.Any(), domain.ConversionSignup, "referred", nil).Return(true, nil)
			},
			expectedErr: ErrDuplicateConversion,
		},
		{
			name:  "Duplicate caught by unique index",
			input: domain.ConversionInput{Code: "CODE1", UserID: "referred", Type: domain.ConversionSignup},
			prepareMock: func(m *mocks) {
				m.affiliates.EXPECT().LockByCode(gomock.Any(), "CODE1").Return(account(), nil)
				m.conversions.EXPECT().Exists(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				m.conversions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrConversionExists)
			},
			expectedErr: ErrDuplicateConversion,
		},
		{
			name:        "Unknown conversion type",
			input:       domain.ConversionInput{Code: "CODE1", UserID: "referred", Type: "refund"},
			prepareMock: func(m *mocks) {},
			expectedErr: ErrInvalidConversionType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			credits, err := service.RecordConversion(context.Background(), tt.input)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Zero(t, credits)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCredits, credits)
		})
	}
}

func TestReconcileGrants(t *testing.T) {
	service, m := NewMock(t)

	pending := []domain.Conversion{
		{ID: "c1", AffiliateID: "a1", CreditsEarned: 10, Status: domain.ConversionPending},
		{ID: "c2", AffiliateID: "a1", CreditsEarned: 10, Status: domain.ConversionPending},
		{ID: "c3", AffiliateID: "a1", CreditsEarned: 10, Status: domain.ConversionPending},
	}
	owner := &domain.Affiliate{ID: "a1", UserID: "owner"}

	m.conversions.EXPECT().ListPendingGrants(gomock.Any(), 100).Return(pending, nil)
	m.affiliates.EXPECT().LockByID(gomock.Any(), "a1").Return(owner, nil).Times(3)
	m.credits.EXPECT().AddCredits(gomock.Any(), "owner", 10, grantReason, "affiliate_conversion:c1").Return(&domain.CreditBalance{}, nil)
	m.credits.EXPECT().AddCredits(gomock.Any(), "owner", 10, grantReason, "affiliate_conversion:c2").Return(nil, errors.New("timeout"))
	m.credits.EXPECT().AddCredits(gomock.Any(), "owner", 10, grantReason, "affiliate_conversion:c3").Return(&domain.CreditBalance{}, nil)
	m.conversions.EXPECT().MarkGranted(gomock.Any(), "c1", fixedNow).Return(true, nil)
	m.conversions.EXPECT().MarkGranted(gomock.Any(), "c3", fixedNow).Return(false, nil)
	m.affiliates.EXPECT().MoveToGranted(gomock.Any(), "a1", 10).Return(nil)

	granted, err := service.ReconcileGrants(context.Background(), 100)
	assert.NoError(t, err)
	assert.Equal(t, 1, granted)
}

func TestGetStats(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		expected    *domain.AffiliateStats
		expectErr   bool
	}{
		{
			name: "No account",
			prepareMock: func(m *mocks) {
				m.affiliates.EXPECT().GetByUserID(gomock.Any(), "u1").Return(nil, nil)
			},
		},
		{
			name: "Derived counts",
			prepareMock: func(m *mocks) {
				m.affiliates.EXPECT().GetByUserID(gomock.Any(), "u1").Return(&domain.Affiliate{ID: "a1", TotalClicks: 9}, nil)
				m.clicks.EXPECT().CountSince(gomock.Any(), "a1", fixedNow.Add(-30*24*time.Hour)).Return(4, nil)
				m.conversions.EXPECT().CountByStatus(gomock.Any(), "a1").Return(map[domain.ConversionStatus]int{
					domain.ConversionPending: 1,
					domain.ConversionGranted: 3,
				}, nil)
			},
			expected: &domain.AffiliateStats{
				Affiliate:               domain.Affiliate{ID: "a1", TotalClicks: 9},
				RecentClicksCount:       4,
				PendingConversionsCount: 1,
				GrantedConversionsCount: 3,
			},
		},
		{
			name: "Click count error",
			prepareMock: func(m *mocks) {
				m.affiliates.EXPECT().GetByUserID(gomock.Any(), "u1").Return(&domain.Affiliate{ID: "a1"}, nil)
				m.clicks.EXPECT().CountSince(gomock.Any(), "a1", gomock.Any()).Return(0, errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			stats, err := service.GetStats(context.Background(), "u1")
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, stats)
		})
	}
}

func TestGetConversions(t *testing.T) {
	t.Run("No account returns empty list", func(t *testing.T) {
		service, m := NewMock(t)
		m.affiliates.EXPECT().GetByUserID(gomock.Any(), "u1").Return(nil, nil)

		conversions, err := service.GetConversions(context.Background(), "u1", 0, "")
		assert.NoError(t, err)
		assert.NotNil(t, conversions)
		assert.Empty(t, conversions)
	})

	t.Run("Defaults limit and fills display fields", func(t *testing.T) {
		service, m := NewMock(t)
		m.affiliates.EXPECT().GetByUserID(gomock.Any(), "u1").Return(&domain.Affiliate{ID: "a1"}, nil)
		m.conversions.EXPECT().ListByAffiliate(gomock.Any(), "a1", domain.ConversionGranted, DefaultConversionsLimit).
			Return([]domain.ConversionView{
				{UserEmail: "jane@example.com", UserName: "Jane"},
				{UserEmail: "bob@example.com"},
				{},
			}, nil)

		conversions, err := service.GetConversions(context.Background(), "u1", 0, domain.ConversionGranted)
		require.NoError(t, err)
		require.Len(t, conversions, 3)
		assert.Equal(t, "Jane", conversions[0].UserName)
		assert.Equal(t, "bob", conversions[1].UserName)
		assert.Equal(t, "Unknown", conversions[2].UserEmail)
		assert.Equal(t, "User", conversions[2].UserName)
	})
}

func TestGetAnalytics(t *testing.T) {
	t.Run("No account", func(t *testing.T) {
		service, m := NewMock(t)
		m.affiliates.EXPECT().GetByUserID(gomock.Any(), "u1").Return(nil, nil)

		analytics, err := service.GetAnalytics(context.Background(), "u1", 0)
		assert.NoError(t, err)
		assert.Nil(t, analytics)
	})

	t.Run("Buckets by UTC day in ascending order", func(t *testing.T) {
		service, m := NewMock(t)
		since := fixedNow.Add(-7 * 24 * time.Hour)
		day1 := time.Date(2024, 5, 8, 23, 30, 0, 0, time.UTC)
		day2 := time.Date(2024, 5, 9, 1, 0, 0, 0, time.FixedZone("EST", -5*3600))

		m.affiliates.EXPECT().GetByUserID(gomock.Any(), "u1").Return(&domain.Affiliate{ID: "a1"}, nil)
		m.clicks.EXPECT().ListSince(gomock.Any(), "a1", since).Return([]domain.Click{
			{ClickedAt: day2}, {ClickedAt: day1}, {ClickedAt: day1}, {ClickedAt: day2},
		}, nil)
		m.conversions.EXPECT().ListSince(gomock.Any(), "a1", since).Return([]domain.Conversion{
			{ConvertedAt: day2, CreditsEarned: 10},
		}, nil)

		analytics, err := service.GetAnalytics(context.Background(), "u1", 7)
		require.NoError(t, err)
		assert.Equal(t, []domain.DailyStat{
			{Date: "2024-05-08", Clicks: 2},
			{Date: "2024-05-09", Clicks: 2, Conversions: 1, Earnings: 10},
		}, analytics.TimeSeries)
		assert.Equal(t, 4, analytics.TotalClicks)
		assert.Equal(t, 1, analytics.TotalConversions)
		assert.InDelta(t, 25.0, analytics.ConversionRate, 0.0001)
	})

	t.Run("Window is capped at ten years", func(t *testing.T) {
		service, m := NewMock(t)
		since := fixedNow.AddDate(0, 0, -MaxAnalyticsDays)
		m.affiliates.EXPECT().GetByUserID(gomock.Any(), "u1").Return(&domain.Affiliate{ID: "a1"}, nil)
		m.clicks.EXPECT().ListSince(gomock.Any(), "a1", since).Return([]domain.Click{{ClickedAt: fixedNow}}, nil)
		m.conversions.EXPECT().ListSince(gomock.Any(), "a1", since).Return(nil, nil)

		analytics, err := service.GetAnalytics(context.Background(), "u1", 200000)
		require.NoError(t, err)
		assert.Equal(t, 1, analytics.TotalClicks)
	})

	t.Run("Zero clicks gives zero rate", func(t *testing.T) {
		service, m := NewMock(t)
		m.affiliates.EXPECT().GetByUserID(gomock.Any(), "u1").Return(&domain.Affiliate{ID: "a1"}, nil)
		m.clicks.EXPECT().ListSince(gomock.Any(), "a1", gomock.Any()).Return(nil, nil)
		m.conversions.EXPECT().ListSince(gomock.Any(), "a1", gomock.Any()).Return([]domain.Conversion{{ConvertedAt: fixedNow}}, nil)

		analytics, err := service.GetAnalytics(context.Background(), "u1", 0)
		require.NoError(t, err)
		assert.Zero(t, analytics.ConversionRate)
	})

	t.Run("Query failure", func(t *testing.T) {
		service, m := NewMock(t)
		m.affiliates.EXPECT().GetByUserID(gomock.Any(), "u1").Return(&domain.Affiliate{ID: "a1"}, nil)
		m.clicks.EXPECT().ListSince(gomock.Any(), "a1", gomock.Any()).Return(nil, errors.New("db error"))
		m.conversions.EXPECT().ListSince(gomock.Any(), "a1", gomock.Any()).Return(nil, nil).AnyTimes()

		_, err := service.GetAnalytics(context.Background(), "u1", 0)
		assert.Error(t, err)
	})
}

func TestUpdateSettings(t *testing.T) {
	off := false

	t.Run("Account not found", func(t *testing.T) {
		service, m := NewMock(t)
		m.affiliates.EXPECT().GetByUserID(gomock.Any(), "u1").Return(nil, nil)

		_, err := service.UpdateSettings(context.Background(), "u1", &off)
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("Deactivates", func(t *testing.T) {
		service, m := NewMock(t)
		m.affiliates.EXPECT().GetByUserID(gomock.Any(), "u1").Return(&domain.Affiliate{ID: "a1", IsActive: true}, nil)
		m.affiliates.EXPECT().SetActive(gomock.Any(), "a1", false).Return(&domain.Affiliate{ID: "a1", IsActive: false}, nil)

		updated, err := service.UpdateSettings(context.Background(), "u1", &off)
		require.NoError(t, err)
		assert.False(t, updated.IsActive)
	})

	t.Run("Nothing to change", func(t *testing.T) {
		service, m := NewMock(t)
		m.affiliates.EXPECT().GetByUserID(gomock.Any(), "u1").Return(&domain.Affiliate{ID: "a1", IsActive: true}, nil)

		updated, err := service.UpdateSettings(context.Background(), "u1", nil)
		require.NoError(t, err)
		assert.True(t, updated.IsActive)
	})
}
