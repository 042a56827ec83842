package creditservice

//go:generate mockgen -source=creditservice.go -destination=mock_creditservice.go -package=creditservice

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/D1yWeb/S2C/internal/checkout"
	"github.com/D1yWeb/S2C/internal/domain"
	"github.com/D1yWeb/S2C/internal/pg"
)

type BalanceRepo interface {
	GetBalance(ctx context.Context, userID string) (*domain.CreditBalance, error)
	AddToBalance(ctx context.Context, userID string, amount int, at time.Time) (*domain.CreditBalance, error)
}

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) (bool, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.LedgerEntry, error)
}

type PurchaseRepo interface {
	Create(ctx context.Context, purchase *domain.CreditPurchase) error
	SetCheckoutID(ctx context.Context, id, checkoutID string) error
	LockByID(ctx context.Context, id string) (*domain.CreditPurchase, error)
	MarkCompleted(ctx context.Context, id, providerOrderID string, at time.Time) error
	MarkFailed(ctx context.Context, id string) error
}

type CheckoutClient interface {
	CreateSession(ctx context.Context, req checkout.SessionRequest) (*checkout.Session, error)
}

const (
	DefaultLedgerLimit = 50

	purchaseReason = "credit_purchase"
)

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrUnknownPackage      = errors.New("invalid package ID")
	ErrPackageUnavailable  = errors.New("credit purchase not available for this package")
	ErrPurchaseNotFound    = errors.New("purchase not found")
	ErrCheckoutUnavailable = errors.New("failed to create checkout session")
)

// DefaultPackages are the credit bundles sold through hosted checkout.
var DefaultPackages = []domain.CreditPackage{
	{ID: "small", Name: "10 Credits", Credits: 10, Price: decimal.RequireFromString("9.99")},
	{ID: "medium", Name: "25 Credits", Credits: 25, Price: decimal.RequireFromString("19.99")},
	{ID: "large", Name: "50 Credits", Credits: 50, Price: decimal.RequireFromString("34.99")},
	{ID: "xlarge", Name: "100 Credits", Credits: 100, Price: decimal.RequireFromString("59.99")},
}

type Service struct {
	txManager pg.TXManager
	balances  BalanceRepo
	ledger    LedgerRepo
	purchases PurchaseRepo
	checkout  CheckoutClient

	packages map[string]domain.CreditPackage
	products map[string]string
	appURL   string
	now      func() time.Time
}

type Options struct {
	Products map[string]string
	AppURL   string
}

func New(txManager pg.TXManager, balances BalanceRepo, ledger LedgerRepo, purchases PurchaseRepo, checkout CheckoutClient, opts Options) *Service {
	packages := make(map[string]domain.CreditPackage, len(DefaultPackages))
	for _, p := range DefaultPackages {
		packages[p.ID] = p
	}
	return &Service{
		txManager: txManager,
		balances:  balances,
		ledger:    ledger,
		purchases: purchases,
		checkout:  checkout,
		packages:  packages,
		products:  opts.Products,
		appURL:    opts.AppURL,
		now:       time.Now,
	}
}

func (s *Service) GetBalance(ctx context.Context, userID string) (*domain.CreditBalance, error) {
	balance, err := s.balances.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get credit balance", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	if balance == nil {
		return &domain.CreditBalance{UserID: userID}, nil
	}
	return balance, nil
}

// AddCredits increments the balance and appends a ledger entry. A repeated
// call with the same non-empty idempotency key leaves the balance untouched.
func (s *Service) AddCredits(ctx context.Context, userID string, amount int, reason, idempotencyKey string) (*domain.CreditBalance, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var balance *domain.CreditBalance
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		now := s.now()
		entry := &domain.LedgerEntry{
			ID:        uuid.NewString(),
			UserID:    userID,
			Amount:    amount,
			Reason:    reason,
			CreatedAt: now,
		}
		if idempotencyKey != "" {
			entry.IdempotencyKey = &idempotencyKey
		}

		appended, err := s.ledger.Append(ctx, entry)
		if err != nil {
			return err
		}
		if !appended {
			zap.L().Info("credit grant already applied", zap.String("key", idempotencyKey))
			balance, err = s.GetBalance(ctx, userID)
			return err
		}

		balance, err = s.balances.AddToBalance(ctx, userID, amount, now)
		return err
	})
	if err != nil {
		zap.L().Error("failed to add credits", zap.String("userID", userID), zap.Int("amount", amount), zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (s *Service) GetLedger(ctx context.Context, userID string, limit int) ([]domain.LedgerEntry, error) {
	if limit <= 0 {
		limit = DefaultLedgerLimit
	}
	entries, err := s.ledger.ListByUser(ctx, userID, limit)
	if err != nil {
		zap.L().Error("failed to get credit ledger", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func (s *Service) Packages() []domain.CreditPackage {
	out := make([]domain.CreditPackage, 0, len(s.packages))
	for _, p := range s.packages {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Credits < out[j].Credits })
	return out
}

// Checkout records a pending purchase and opens a hosted checkout session for
// it. affiliateCode is kept on the purchase for attribution on completion.
func (s *Service) Checkout(ctx context.Context, userID, packageID, affiliateCode string) (*domain.CheckoutSession, error) {
	pkg, ok := s.packages[packageID]
	if !ok {
		return nil, ErrUnknownPackage
	}
	productID := s.products[packageID]
	if productID == "" {
		zap.L().Warn("product is not configured for package", zap.String("packageID", packageID))
		return nil, ErrPackageUnavailable
	}

	purchase := &domain.CreditPurchase{
		ID:        uuid.NewString(),
		UserID:    userID,
		PackageID: pkg.ID,
		Credits:   pkg.Credits,
		Price:     pkg.Price,
		Status:    domain.PurchasePending,
		CreatedAt: s.now(),
	}
	if affiliateCode != "" {
		purchase.AffiliateCode = &affiliateCode
	}
	if err := s.purchases.Create(ctx, purchase); err != nil {
		zap.L().Error("failed to create credit purchase", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}

	session, err := s.checkout.CreateSession(ctx, checkout.SessionRequest{
		ProductID:  productID,
		SuccessURL: fmt.Sprintf("%s/billing/success?credits=%d", s.appURL, pkg.Credits),
		Metadata: map[string]string{
			"userId":     userID,
			"credits":    strconv.Itoa(pkg.Credits),
			"packageId":  pkg.ID,
			"purchaseId": purchase.ID,
			"type":       purchaseReason,
		},
	})
	if err == nil && session.URL == "" {
		err = errors.New("checkout session without url")
	}
	if err != nil {
		zap.L().Error("failed to create checkout session", zap.String("purchaseID", purchase.ID), zap.Error(err))
		if markErr := s.purchases.MarkFailed(ctx, purchase.ID); markErr != nil {
			zap.L().Error("failed to mark purchase failed", zap.String("purchaseID", purchase.ID), zap.Error(markErr))
		}
		return nil, ErrCheckoutUnavailable
	}

	if err := s.purchases.SetCheckoutID(ctx, purchase.ID, session.ID); err != nil {
		zap.L().Error("failed to store checkout id", zap.String("purchaseID", purchase.ID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("checkout session created", zap.String("purchaseID", purchase.ID), zap.String("packageID", pkg.ID))
	return &domain.CheckoutSession{
		PurchaseID: purchase.ID,
		URL:        session.URL,
		Credits:    pkg.Credits,
		Price:      pkg.Price,
	}, nil
}

// CompletePurchase applies a paid purchase. Replayed webhooks return the
// already completed purchase without granting again.
func (s *Service) CompletePurchase(ctx context.Context, purchaseID, providerOrderID string) (*domain.CreditPurchase, error) {
	var purchase *domain.CreditPurchase
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		p, err := s.purchases.LockByID(ctx, purchaseID)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrPurchaseNotFound
		}
		purchase = p
		if p.Status == domain.PurchaseCompleted {
			return nil
		}

		if _, err := s.AddCredits(ctx, p.UserID, p.Credits, purchaseReason, "purchase:"+p.ID); err != nil {
			return err
		}
		now := s.now()
		if err := s.purchases.MarkCompleted(ctx, p.ID, providerOrderID, now); err != nil {
			return err
		}
		p.Status = domain.PurchaseCompleted
		p.CompletedAt = &now
		if providerOrderID != "" {
			p.ProviderOrderID = &providerOrderID
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrPurchaseNotFound) {
			zap.L().Error("failed to complete purchase", zap.String("purchaseID", purchaseID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("credit purchase completed", zap.String("purchaseID", purchaseID), zap.Int("credits", purchase.Credits))
	return purchase, nil
}
