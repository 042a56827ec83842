package affiliateservice

//go:generate mockgen -source=affiliateservice.go -destination=mock_affiliateservice.go -package=affiliateservice

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/D1yWeb/S2C/internal/domain"
	"github.com/D1yWeb/S2C/internal/pg"
)

type AffiliateRepo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Affiliate, error)
	GetByCode(ctx context.Context, code string) (*domain.Affiliate, error)
	LockByCode(ctx context.Context, code string) (*domain.Affiliate, error)
	LockByID(ctx context.Context, id string) (*domain.Affiliate, error)
	Create(ctx context.Context, affiliate *domain.Affiliate) error
	IncrementClicks(ctx context.Context, id string) error
	AddConversion(ctx context.Context, id string, kind domain.ConversionType, credits int) error
	MoveToGranted(ctx context.Context, id string, credits int) error
	SetActive(ctx context.Context, id string, isActive bool) (*domain.Affiliate, error)
}

type ClickRepo interface {
	Create(ctx context.Context, click *domain.Click) error
	CountSince(ctx context.Context, affiliateID string, since time.Time) (int, error)
	ListSince(ctx context.Context, affiliateID string, since time.Time) ([]domain.Click, error)
}

type ConversionRepo interface {
	Create(ctx context.Context, conversion *domain.Conversion) error
	Exists(ctx context.Context, kind domain.ConversionType, userID string, purchaseRef *string) (bool, error)
	MarkGranted(ctx context.Context, id string, grantedAt time.Time) (bool, error)
	CountByStatus(ctx context.Context, affiliateID string) (map[domain.ConversionStatus]int, error)
	ListByAffiliate(ctx context.Context, affiliateID string, status domain.ConversionStatus, limit int) ([]domain.ConversionView, error)
	ListSince(ctx context.Context, affiliateID string, since time.Time) ([]domain.Conversion, error)
	ListPendingGrants(ctx context.Context, limit int) ([]domain.Conversion, error)
}

type CreditGranter interface {
	AddCredits(ctx context.Context, userID string, amount int, reason, idempotencyKey string) (*domain.CreditBalance, error)
}

const (
	codeAlphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
	codeRandomLength = 6
	maxCodeAttempts  = 5
	createTimeout    = 10 * time.Second

	recentClicksWindow = 30 * 24 * time.Hour

	DefaultConversionsLimit = 50
	DefaultAnalyticsDays    = 30
	MaxAnalyticsDays        = 3650
	DefaultCreditsPerSignup = 10

	grantReason = "affiliate_signup"
)

var (
	ErrInvalidCode           = errors.New("Invalid or inactive affiliate code")
	ErrSelfReferral          = errors.New("Self-referral not allowed")
	ErrDuplicateConversion   = errors.New("Conversion already recorded")
	ErrAccountNotFound       = errors.New("Affiliate account not found")
	ErrInvalidConversionType = errors.New("invalid conversion type")
	ErrCodeGeneration        = errors.New("can't generate unique affiliate code")

	errAlreadyGranted = errors.New("conversion already granted")
)

// IsSoftFailure reports errors that are returned to callers as {ok: false}.
func IsSoftFailure(err error) bool {
	return errors.Is(err, ErrInvalidCode) ||
		errors.Is(err, ErrSelfReferral) ||
		errors.Is(err, ErrDuplicateConversion)
}

type Service struct {
	txManager        pg.TXManager
	affiliateRepo    AffiliateRepo
	clickRepo        ClickRepo
	conversionRepo   ConversionRepo
	credits          CreditGranter
	creditsPerSignup int

	now      func() time.Time
	generate func(userID string, now time.Time) (string, error)
	creating singleflight.Group
}

func New(
	txManager pg.TXManager,
	affiliateRepo AffiliateRepo,
	clickRepo ClickRepo,
	conversionRepo ConversionRepo,
	credits CreditGranter,
	creditsPerSignup int,
) *Service {
	if creditsPerSignup <= 0 {
		creditsPerSignup = DefaultCreditsPerSignup
	}
	return &Service{
		txManager:        txManager,
		affiliateRepo:    affiliateRepo,
		clickRepo:        clickRepo,
		conversionRepo:   conversionRepo,
		credits:          credits,
		creditsPerSignup: creditsPerSignup,
		now:              time.Now,
		generate:         GenerateCode,
	}
}

// GenerateCode builds an upper-cased code from the last six characters of the
// user id, the base-36 unix millis and six random base-36 characters.
func GenerateCode(userID string, now time.Time) (string, error) {
	userPart := userID
	if len(userPart) > 6 {
		userPart = userPart[len(userPart)-6:]
	}

	var random strings.Builder
	size := big.NewInt(int64(len(codeAlphabet)))
	for i := 0; i < codeRandomLength; i++ {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", err
		}
		random.WriteByte(codeAlphabet[n.Int64()])
	}

	code := userPart + strconv.FormatInt(now.UnixMilli(), 36) + random.String()
	return strings.ToUpper(code), nil
}

// CreateOrGet collapses concurrent calls for one user into a single create.
// The shared call outlives any one caller's cancellation.
func (s *Service) CreateOrGet(ctx context.Context, userID string) (*domain.Affiliate, error) {
	v, err, _ := s.creating.Do(userID, func() (any, error) {
		shared, cancel := context.WithTimeout(context.WithoutCancel(ctx), createTimeout)
		defer cancel()
		return s.createOrGet(shared, userID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Affiliate), nil
}

func (s *Service) createOrGet(ctx context.Context, userID string) (*domain.Affiliate, error) {
	existing, err := s.affiliateRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get affiliate", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		now := s.now()
		code, err := s.generate(userID, now)
		if err != nil {
			return nil, fmt.Errorf("generate affiliate code: %w", err)
		}

		affiliate := &domain.Affiliate{
			ID:               uuid.NewString(),
			UserID:           userID,
			Code:             code,
			CreditsPerSignup: s.creditsPerSignup,
			IsActive:         true,
			CreatedAt:        now,
		}

		err = s.affiliateRepo.Create(ctx, affiliate)
		switch {
		case err == nil:
			zap.L().Info("affiliate account created", zap.String("userID", userID), zap.String("code", code))
			return affiliate, nil
		case errors.Is(err, domain.ErrAffiliateCodeTaken):
			zap.L().Warn("affiliate code collision, regenerating", zap.String("code", code), zap.Int("attempt", attempt))
			continue
		case errors.Is(err, domain.ErrAffiliateExists):
			// Lost a race against another request for the same user.
			return s.affiliateRepo.GetByUserID(ctx, userID)
		default:
			zap.L().Error("failed to create affiliate", zap.String("userID", userID), zap.Error(err))
			return nil, err
		}
	}
	return nil, ErrCodeGeneration
}

func (s *Service) TrackClick(ctx context.Context, code string, meta domain.ClickMeta) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		affiliate, err := s.affiliateRepo.GetByCode(ctx, code)
		if err != nil {
			return err
		}
		if affiliate == nil || !affiliate.IsActive {
			return ErrInvalidCode
		}

		click := &domain.Click{
			ID:            uuid.NewString(),
			AffiliateID:   affiliate.ID,
			AffiliateCode: affiliate.Code,
			IPAddress:     meta.IPAddress,
			UserAgent:     meta.UserAgent,
			Referrer:      meta.Referrer,
			ClickedAt:     s.now(),
		}
		if err := s.clickRepo.Create(ctx, click); err != nil {
			return err
		}
		return s.affiliateRepo.IncrementClicks(ctx, affiliate.ID)
	})
	if err != nil && !errors.Is(err, ErrInvalidCode) {
		zap.L().Error("failed to track affiliate click", zap.String("code", code), zap.Error(err))
	}
	return err
}

// RecordConversion writes the conversion, the account counters and, for
// signups, the credit grant in one transaction. The grant runs in a savepoint:
// when it fails the conversion stays pending and ReconcileGrants picks it up.
func (s *Service) RecordConversion(ctx context.Context, in domain.ConversionInput) (int, error) {
	if !in.Type.Valid() {
		return 0, ErrInvalidConversionType
	}

	var credits int
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		affiliate, err := s.affiliateRepo.LockByCode(ctx, in.Code)
		if err != nil {
			return err
		}
		if affiliate == nil || !affiliate.IsActive {
			return ErrInvalidCode
		}
		if affiliate.UserID == in.UserID {
			return ErrSelfReferral
		}

		var purchaseRef *string
		if in.PurchaseRef != "" {
			purchaseRef = &in.PurchaseRef
		}
		duplicate, err := s.conversionRepo.Exists(ctx, in.Type, in.UserID, purchaseRef)
		if err != nil {
			return err
		}
		if duplicate {
			return ErrDuplicateConversion
		}

		credits = 0
		if in.Type == domain.ConversionSignup {
			credits = affiliate.CreditsPerSignup
		}

		conversion := &domain.Conversion{
			ID:            uuid.NewString(),
			AffiliateID:   affiliate.ID,
			AffiliateCode: affiliate.Code,
			UserID:        in.UserID,
			Type:          in.Type,
			Amount:        in.Amount,
			PurchaseRef:   purchaseRef,
			CreditsEarned: credits,
			Status:        domain.ConversionPending,
			ConvertedAt:   s.now(),
		}
		if err := s.conversionRepo.Create(ctx, conversion); err != nil {
			if errors.Is(err, domain.ErrConversionExists) {
				return ErrDuplicateConversion
			}
			return err
		}
		if err := s.affiliateRepo.AddConversion(ctx, affiliate.ID, in.Type, credits); err != nil {
			return err
		}

		if in.Type == domain.ConversionSignup && credits > 0 {
			grantErr := s.txManager.Begin(ctx, func(ctx context.Context) error {
				return s.grant(ctx, affiliate, conversion)
			})
			if grantErr != nil {
				zap.L().Error("failed to auto-grant affiliate credits, left pending",
					zap.String("conversionID", conversion.ID),
					zap.String("affiliateID", affiliate.ID),
					zap.Error(grantErr),
				)
			}
		}
		return nil
	})
	if err != nil {
		if !IsSoftFailure(err) {
			zap.L().Error("failed to record affiliate conversion", zap.String("code", in.Code), zap.Error(err))
		}
		return 0, err
	}

	zap.L().Info("affiliate conversion recorded",
		zap.String("code", in.Code),
		zap.String("type", string(in.Type)),
		zap.Int("credits", credits),
	)
	return credits, nil
}

func grantKey(conversionID string) string {
	return "affiliate_conversion:" + conversionID
}

func (s *Service) grant(ctx context.Context, affiliate *domain.Affiliate, conversion *domain.Conversion) error {
	if _, err := s.credits.AddCredits(ctx, affiliate.UserID, conversion.CreditsEarned, grantReason, grantKey(conversion.ID)); err != nil {
		return fmt.Errorf("add credits: %w", err)
	}
	marked, err := s.conversionRepo.MarkGranted(ctx, conversion.ID, s.now())
	if err != nil {
		return fmt.Errorf("mark conversion granted: %w", err)
	}
	if !marked {
		return errAlreadyGranted
	}
	if err := s.affiliateRepo.MoveToGranted(ctx, affiliate.ID, conversion.CreditsEarned); err != nil {
		return fmt.Errorf("move credits to granted: %w", err)
	}
	return nil
}

// ReconcileGrants retries the grant step for signup conversions left pending.
func (s *Service) ReconcileGrants(ctx context.Context, limit int) (int, error) {
	pending, err := s.conversionRepo.ListPendingGrants(ctx, limit)
	if err != nil {
		zap.L().Error("failed to list pending grants", zap.Error(err))
		return 0, err
	}

	granted := 0
	for i := range pending {
		conversion := pending[i]
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			affiliate, err := s.affiliateRepo.LockByID(ctx, conversion.AffiliateID)
			if err != nil {
				return err
			}
			if affiliate == nil {
				return fmt.Errorf("affiliate %s not found", conversion.AffiliateID)
			}
			return s.grant(ctx, affiliate, &conversion)
		})
		if errors.Is(err, errAlreadyGranted) {
			continue
		}
		if err != nil {
			zap.L().Warn("failed to reconcile grant", zap.String("conversionID", conversion.ID), zap.Error(err))
			continue
		}
		granted++
	}

	if granted > 0 {
		zap.L().Info("reconciled affiliate grants", zap.Int("granted", granted), zap.Int("pending", len(pending)))
	}
	return granted, nil
}

func (s *Service) GetStats(ctx context.Context, userID string) (*domain.AffiliateStats, error) {
	affiliate, err := s.affiliateRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get affiliate", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	if affiliate == nil {
		return nil, nil
	}

	recent, err := s.clickRepo.CountSince(ctx, affiliate.ID, s.now().Add(-recentClicksWindow))
	if err != nil {
		return nil, err
	}
	byStatus, err := s.conversionRepo.CountByStatus(ctx, affiliate.ID)
	if err != nil {
		return nil, err
	}

	return &domain.AffiliateStats{
		Affiliate:               *affiliate,
		RecentClicksCount:       recent,
		PendingConversionsCount: byStatus[domain.ConversionPending],
		GrantedConversionsCount: byStatus[domain.ConversionGranted],
	}, nil
}

func (s *Service) GetConversions(ctx context.Context, userID string, limit int, status domain.ConversionStatus) ([]domain.ConversionView, error) {
	if limit <= 0 {
		limit = DefaultConversionsLimit
	}

	affiliate, err := s.affiliateRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get affiliate", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	if affiliate == nil {
		return []domain.ConversionView{}, nil
	}

	conversions, err := s.conversionRepo.ListByAffiliate(ctx, affiliate.ID, status, limit)
	if err != nil {
		return nil, err
	}
	for i := range conversions {
		email := conversions[i].UserEmail
		conversions[i].UserName = domain.DisplayName(conversions[i].UserName, email)
		if email == "" {
			conversions[i].UserEmail = "Unknown"
		}
	}
	return conversions, nil
}

func (s *Service) GetAnalytics(ctx context.Context, userID string, days int) (*domain.Analytics, error) {
	switch {
	case days <= 0:
		days = DefaultAnalyticsDays
	case days > MaxAnalyticsDays:
		days = MaxAnalyticsDays
	}

	affiliate, err := s.affiliateRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get affiliate", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	if affiliate == nil {
		return nil, nil
	}

	since := s.now().UTC().AddDate(0, 0, -days)

	var (
		clicks      []domain.Click
		conversions []domain.Conversion
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clicks, err = s.clickRepo.ListSince(gCtx, affiliate.ID, since)
		return err
	})
	g.Go(func() error {
		var err error
		conversions, err = s.conversionRepo.ListSince(gCtx, affiliate.ID, since)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to load affiliate analytics", zap.String("affiliateID", affiliate.ID), zap.Error(err))
		return nil, err
	}

	daily := make(map[string]*domain.DailyStat)
	bucket := func(t time.Time) *domain.DailyStat {
		day := t.UTC().Format(time.DateOnly)
		stat, ok := daily[day]
		if !ok {
			stat = &domain.DailyStat{Date: day}
			daily[day] = stat
		}
		return stat
	}
	for _, click := range clicks {
		bucket(click.ClickedAt).Clicks++
	}
	for _, conversion := range conversions {
		stat := bucket(conversion.ConvertedAt)
		stat.Conversions++
		stat.Earnings += conversion.CreditsEarned
	}

	series := make([]domain.DailyStat, 0, len(daily))
	for _, stat := range daily {
		series = append(series, *stat)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })

	var rate float64
	if len(clicks) > 0 {
		rate = float64(len(conversions)) / float64(len(clicks)) * 100
	}

	return &domain.Analytics{
		Affiliate:        *affiliate,
		TimeSeries:       series,
		TotalClicks:      len(clicks),
		TotalConversions: len(conversions),
		ConversionRate:   rate,
	}, nil
}

func (s *Service) UpdateSettings(ctx context.Context, userID string, isActive *bool) (*domain.Affiliate, error) {
	affiliate, err := s.affiliateRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get affiliate", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	if affiliate == nil {
		return nil, ErrAccountNotFound
	}
	if isActive == nil {
		return affiliate, nil
	}

	updated, err := s.affiliateRepo.SetActive(ctx, affiliate.ID, *isActive)
	if err != nil {
		zap.L().Error("failed to update affiliate settings", zap.String("affiliateID", affiliate.ID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("affiliate settings updated", zap.String("affiliateID", affiliate.ID), zap.Bool("isActive", *isActive))
	return updated, nil
}
