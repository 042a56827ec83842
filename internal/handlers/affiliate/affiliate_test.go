package affiliate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/D1yWeb/S2C/internal/domain"
	"github.com/D1yWeb/S2C/internal/dto"
	"github.com/D1yWeb/S2C/internal/service/affiliateservice"
	"github.com/D1yWeb/S2C/pkg/auth"
	"github.com/D1yWeb/S2C/pkg/utils"
)

var createdAt = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*AffiliateHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func withUser(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, "u1"))
}

func testAffiliate() *domain.Affiliate {
	return &domain.Affiliate{ID: "a1", UserID: "u1", Code: "CODE1", CreditsPerSignup: 10, IsActive: true,
		TotalClicks: 4, TotalSignups: 1, PendingCredits: 0, GrantedCredits: 10, TotalCreditsEarned: 10, CreatedAt: createdAt}
}

func TestCreateOrGet(t *testing.T) {
	tests := []struct {
		name         string
		prepareMock  func(s *MockService)
		expectedCode int
	}{
		{
			name: "Account returned",
			prepareMock: func(s *MockService) {
				s.EXPECT().CreateOrGet(gomock.Any(), "u1").Return(testAffiliate(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Service failure",
			prepareMock: func(s *MockService) {
				s.EXPECT().CreateOrGet(gomock.Any(), "u1").Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.CreateOrGet(w, withUser(httptest.NewRequest(http.MethodPost, "/api/affiliate", nil)))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.AffiliateResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "CODE1", body.Code)
				assert.Equal(t, 10, body.GrantedCredits)
			}
		})
	}
}

func TestGetStats(t *testing.T) {
	tests := []struct {
		name         string
		prepareMock  func(s *MockService)
		expectedCode int
	}{
		{
			name: "Stats returned",
			prepareMock: func(s *MockService) {
				s.EXPECT().GetStats(gomock.Any(), "u1").Return(&domain.AffiliateStats{
					Affiliate:               *testAffiliate(),
					RecentClicksCount:       3,
					PendingConversionsCount: 1,
					GrantedConversionsCount: 2,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No account",
			prepareMock: func(s *MockService) {
				s.EXPECT().GetStats(gomock.Any(), "u1").Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Service failure",
			prepareMock: func(s *MockService) {
				s.EXPECT().GetStats(gomock.Any(), "u1").Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.GetStats(w, withUser(httptest.NewRequest(http.MethodGet, "/api/affiliate/stats", nil)))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.AffiliateStatsResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, 3, body.RecentClicksCount)
				assert.Equal(t, 2, body.GrantedConversionsCount)
				assert.Equal(t, "CODE1", body.Code)
			}
		})
	}
}

func TestGetConversions(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		prepareMock  func(s *MockService)
		expectedCode int
		expectedLen  int
	}{
		{
			name:  "Filtered by status",
			query: "?limit=10&status=granted",
			prepareMock: func(s *MockService) {
				s.EXPECT().GetConversions(gomock.Any(), "u1", 10, domain.ConversionGranted).Return([]domain.ConversionView{
					{
						Conversion: domain.Conversion{ID: "c1", Type: domain.ConversionPurchase, Status: domain.ConversionGranted,
							Amount: decimal.NewNullDecimal(decimal.RequireFromString("19.99")), ConvertedAt: createdAt},
						UserEmail: "bob@example.com",
						UserName:  "bob",
					},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:  "Defaults",
			query: "",
			prepareMock: func(s *MockService) {
				s.EXPECT().GetConversions(gomock.Any(), "u1", 0, domain.ConversionStatus("")).Return([]domain.ConversionView{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid status",
			query:        "?status=lost",
			prepareMock:  func(s *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid limit",
			query:        "?limit=ten",
			prepareMock:  func(s *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.GetConversions(w, withUser(httptest.NewRequest(http.MethodGet, "/api/affiliate/conversions"+tt.query, nil)))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.ConversionResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Len(t, body, tt.expectedLen)
				if tt.expectedLen > 0 {
					require.NotNil(t, body[0].Amount)
					assert.Equal(t, "19.99", *body[0].Amount)
				}
			}
		})
	}
}

func TestGetAnalytics(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		prepareMock  func(s *MockService)
		expectedCode int
	}{
		{
			name:  "Seven day window",
			query: "?days=7",
			prepareMock: func(s *MockService) {
				s.EXPECT().GetAnalytics(gomock.Any(), "u1", 7).Return(&domain.Analytics{
					Affiliate:        *testAffiliate(),
					TimeSeries:       []domain.DailyStat{{Date: "2024-05-09", Clicks: 4, Conversions: 1, Earnings: 10}},
					TotalClicks:      4,
					TotalConversions: 1,
					ConversionRate:   25,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "No account",
			query: "",
			prepareMock: func(s *MockService) {
				s.EXPECT().GetAnalytics(gomock.Any(), "u1", 0).Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.GetAnalytics(w, withUser(httptest.NewRequest(http.MethodGet, "/api/affiliate/analytics"+tt.query, nil)))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.AnalyticsResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, 25.0, body.ConversionRate)
				require.Len(t, body.TimeSeriesData, 1)
				assert.Equal(t, "2024-05-09", body.TimeSeriesData[0].Date)
			}
		})
	}
}

func TestUpdateSettings(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		prepareMock   func(s *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Deactivated",
			body: `{"isActive":false}`,
			prepareMock: func(s *MockService) {
				inactive := testAffiliate()
				inactive.IsActive = false
				s.EXPECT().UpdateSettings(gomock.Any(), "u1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, isActive *bool) (*domain.Affiliate, error) {
						assert.False(t, *isActive)
						return inactive, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No account",
			body: `{"isActive":true}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().UpdateSettings(gomock.Any(), "u1", gomock.Any()).Return(nil, affiliateservice.ErrAccountNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Affiliate account not found",
		},
		{
			name:          "Invalid body",
			body:          `{"isActive":`,
			prepareMock:   func(s *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPatch, "/api/affiliate/settings", strings.NewReader(tt.body))
			handler.UpdateSettings(w, withUser(r))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var body utils.Response
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedError, body.Message)
			}
		})
	}
}

func TestTrackClick(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(s *MockService)
		expectedCode int
		expected     dto.OkResponseDTO
	}{
		{
			name: "Tracked",
			body: `{"affiliateCode":"CODE1","ipAddress":"203.0.113.7"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().TrackClick(gomock.Any(), "CODE1", domain.ClickMeta{
					IPAddress: "203.0.113.7",
					UserAgent: "unknown",
					Referrer:  "/api/affiliate/track",
				}).Return(nil)
			},
			expectedCode: http.StatusOK,
			expected:     dto.OkResponseDTO{OK: true},
		},
		{
			name: "Inactive code",
			body: `{"affiliateCode":"CODE1"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().TrackClick(gomock.Any(), "CODE1", gomock.Any()).Return(affiliateservice.ErrInvalidCode)
			},
			expectedCode: http.StatusOK,
			expected:     dto.OkResponseDTO{Error: "Invalid or inactive affiliate code"},
		},
		{
			name:         "Missing code",
			body:         `{}`,
			prepareMock:  func(s *MockService) {},
			expectedCode: http.StatusBadRequest,
			expected:     dto.OkResponseDTO{Error: "Affiliate code is required"},
		},
		{
			name: "Database failure",
			body: `{"affiliateCode":"CODE1"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().TrackClick(gomock.Any(), "CODE1", gomock.Any()).Return(errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
			expected:     dto.OkResponseDTO{Error: "Failed to track click"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/affiliate/track", strings.NewReader(tt.body))
			r.Header.Del("User-Agent")
			handler.TrackClick(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			var body dto.OkResponseDTO
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.expected, body)
		})
	}
}

func TestRecordSignup(t *testing.T) {
	ten := 10

	tests := []struct {
		name         string
		cookie       string
		body         string
		prepareMock  func(s *MockService)
		expectedCode int
		expected     dto.OkResponseDTO
	}{
		{
			name:   "Cookie converted",
			cookie: "CODE1",
			prepareMock: func(s *MockService) {
				s.EXPECT().RecordConversion(gomock.Any(), domain.ConversionInput{
					Code: "CODE1", UserID: "u1", Type: domain.ConversionSignup,
				}).Return(10, nil)
			},
			expectedCode: http.StatusOK,
			expected:     dto.OkResponseDTO{OK: true, CreditsEarned: &ten},
		},
		{
			name: "Body code used without cookie",
			body: `{"affiliateCode":"CODE2"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().RecordConversion(gomock.Any(), domain.ConversionInput{
					Code: "CODE2", UserID: "u1", Type: domain.ConversionSignup,
				}).Return(10, nil)
			},
			expectedCode: http.StatusOK,
			expected:     dto.OkResponseDTO{OK: true, CreditsEarned: &ten},
		},
		{
			name:   "Self referral",
			cookie: "CODE1",
			prepareMock: func(s *MockService) {
				s.EXPECT().RecordConversion(gomock.Any(), gomock.Any()).Return(0, affiliateservice.ErrSelfReferral)
			},
			expectedCode: http.StatusOK,
			expected:     dto.OkResponseDTO{Error: "Self-referral not allowed"},
		},
		{
			name:         "No referral code",
			prepareMock:  func(s *MockService) {},
			expectedCode: http.StatusBadRequest,
			expected:     dto.OkResponseDTO{Error: "No referral code"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			var r *http.Request
			if tt.body != "" {
				r = httptest.NewRequest(http.MethodPost, "/api/affiliate/conversions/signup", strings.NewReader(tt.body))
			} else {
				r = httptest.NewRequest(http.MethodPost, "/api/affiliate/conversions/signup", nil)
			}
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: ReferralCookie, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			handler.RecordSignup(w, withUser(r))

			assert.Equal(t, tt.expectedCode, w.Code)
			var body dto.OkResponseDTO
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.expected, body)
		})
	}
}
