package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/D1yWeb/S2C/internal/config"
	"github.com/D1yWeb/S2C/internal/handlers/affiliate"
	"github.com/D1yWeb/S2C/internal/pg"
	"github.com/D1yWeb/S2C/internal/repo"
	"github.com/D1yWeb/S2C/internal/service"
	"github.com/D1yWeb/S2C/internal/service/creditservice"
	pkgauth "github.com/D1yWeb/S2C/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	services := service.New(repo.New(pg.New(pool)), pg.NewMockTXManager(ctrl), creditservice.NewMockCheckoutClient(ctrl), &config.Config{JWTKey: "secret"})

	h := New(services, affiliate.NewMockClickTracker(ctrl), nil, "whsec")
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AuthHandler)
	assert.NotNil(t, h.AffiliateHandler)
	assert.NotNil(t, h.CreditsHandler)
	assert.NotNil(t, h.ProjectsHandler)
	assert.NotNil(t, h.TeamHandler)
}

type routerMocks struct {
	auth      *MockAuthHandler
	affiliate *MockAffiliateHandler
	credits   *MockCreditsHandler
	projects  *MockProjectsHandler
	team      *MockTeamHandler
	tracker   *affiliate.MockClickTracker
}

func newRouter(t *testing.T, limiter Middleware) (http.Handler, *routerMocks) {
	ctrl := gomock.NewController(t)
	m := &routerMocks{
		auth:      NewMockAuthHandler(ctrl),
		affiliate: NewMockAffiliateHandler(ctrl),
		credits:   NewMockCreditsHandler(ctrl),
		projects:  NewMockProjectsHandler(ctrl),
		team:      NewMockTeamHandler(ctrl),
		tracker:   affiliate.NewMockClickTracker(ctrl),
	}
	h := &Handlers{
		AuthHandler:      m.auth,
		AffiliateHandler: m.affiliate,
		CreditsHandler:   m.credits,
		ProjectsHandler:  m.projects,
		TeamHandler:      m.team,
		jwt:              pkgauth.NewJWTService("secret"),
		tracker:          m.tracker,
		trackLimiter:     limiter,
	}
	return h.InitRoutes(chi.NewRouter()), m
}

func TestInitRoutes(t *testing.T) {
	router, m := newRouter(t, nil)

	m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	m.credits.EXPECT().GetPackages(gomock.Any(), gomock.Any()).AnyTimes()
	m.credits.EXPECT().Webhook(gomock.Any(), gomock.Any()).AnyTimes()
	m.affiliate.EXPECT().TrackClick(gomock.Any(), gomock.Any()).AnyTimes()

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/billing/packages", http.StatusOK},
		{"POST", "/api/billing/webhook", http.StatusOK},
		{"POST", "/api/affiliate/track", http.StatusOK},
		{"GET", "/api/user/me", http.StatusUnauthorized},
		{"PATCH", "/api/user/name", http.StatusUnauthorized},
		{"GET", "/api/users/search", http.StatusUnauthorized},
		{"POST", "/api/affiliate", http.StatusUnauthorized},
		{"GET", "/api/affiliate/stats", http.StatusUnauthorized},
		{"GET", "/api/affiliate/conversions", http.StatusUnauthorized},
		{"POST", "/api/affiliate/conversions/signup", http.StatusUnauthorized},
		{"GET", "/api/affiliate/analytics", http.StatusUnauthorized},
		{"PATCH", "/api/affiliate/settings", http.StatusUnauthorized},
		{"GET", "/api/credits/balance", http.StatusUnauthorized},
		{"GET", "/api/credits/ledger", http.StatusUnauthorized},
		{"POST", "/api/billing/checkout", http.StatusUnauthorized},
		{"GET", "/api/projects", http.StatusUnauthorized},
		{"POST", "/api/projects", http.StatusUnauthorized},
		{"GET", "/api/projects/p1", http.StatusUnauthorized},
		{"DELETE", "/api/projects/p1", http.StatusUnauthorized},
		{"PUT", "/api/projects/p1/sketches", http.StatusUnauthorized},
		{"GET", "/api/projects/p1/style-guide", http.StatusUnauthorized},
		{"PUT", "/api/projects/p1/style-guide", http.StatusUnauthorized},
		{"PATCH", "/api/projects/p1/name", http.StatusUnauthorized},
		{"PATCH", "/api/projects/p1/folder", http.StatusUnauthorized},
		{"POST", "/api/projects/p1/restore", http.StatusUnauthorized},
		{"DELETE", "/api/projects/p1/permanent", http.StatusUnauthorized},
		{"GET", "/api/projects/p1/members", http.StatusUnauthorized},
		{"POST", "/api/projects/p1/members", http.StatusUnauthorized},
		{"GET", "/api/folders", http.StatusUnauthorized},
		{"POST", "/api/folders", http.StatusUnauthorized},
		{"PATCH", "/api/folders/f1", http.StatusUnauthorized},
		{"DELETE", "/api/folders/f1", http.StatusUnauthorized},
		{"POST", "/api/folders/f1/restore", http.StatusUnauthorized},
		{"GET", "/api/team/invites", http.StatusUnauthorized},
		{"POST", "/api/team/invites/i1/accept", http.StatusUnauthorized},
		{"DELETE", "/api/team/invites/i1", http.StatusUnauthorized},
		{"DELETE", "/api/team/members/m1", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestAuthorizedRoute(t *testing.T) {
	router, m := newRouter(t, nil)
	m.projects.EXPECT().GetProject(gomock.Any(), gomock.Any()).Do(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pkgauth.UserID(r.Context())
		assert.True(t, ok)
		assert.Equal(t, "u1", userID)
		w.WriteHeader(http.StatusTeapot)
	})

	token, err := pkgauth.NewJWTService("secret").GenerateJWT("u1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/p1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestReferralOnEveryRoute(t *testing.T) {
	router, m := newRouter(t, nil)
	m.credits.EXPECT().GetPackages(gomock.Any(), gomock.Any())
	m.tracker.EXPECT().Track("FRIEND", gomock.Any()).Return(true)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/billing/packages?ref=FRIEND", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Result().Cookies())
	assert.Equal(t, affiliate.ReferralCookie, rec.Result().Cookies()[0].Name)
}

func TestTrackRouteCountsClickOnce(t *testing.T) {
	router, m := newRouter(t, nil)
	m.affiliate.EXPECT().TrackClick(gomock.Any(), gomock.Any()).Times(1)
	m.tracker.EXPECT().Track(gomock.Any(), gomock.Any()).Times(0)

	req := httptest.NewRequest(http.MethodPost, "/api/affiliate/track?ref=FRIEND", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTrackRateLimitCoversRefParam(t *testing.T) {
	limiter, err := NewRateLimiter("1-M", nil)
	require.NoError(t, err)

	router, m := newRouter(t, limiter)
	m.affiliate.EXPECT().TrackClick(gomock.Any(), gomock.Any()).Times(1)
	m.tracker.EXPECT().Track(gomock.Any(), gomock.Any()).Times(0)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/affiliate/track?ref=FRIEND", nil)
		req.RemoteAddr = "203.0.113.8:5000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}

func TestTrackRateLimit(t *testing.T) {
	limiter, err := NewRateLimiter("2-M", nil)
	require.NoError(t, err)

	router, m := newRouter(t, limiter)
	m.affiliate.EXPECT().TrackClick(gomock.Any(), gomock.Any()).Times(2)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/affiliate/track", nil)
		req.RemoteAddr = "203.0.113.7:5000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewRateLimiterInvalidRate(t *testing.T) {
	_, err := NewRateLimiter("lots", nil)
	assert.Error(t, err)
}
