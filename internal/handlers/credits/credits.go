package credits

//go:generate mockgen -source=credits.go -destination=mock_credits.go -package=credits

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/D1yWeb/S2C/internal/domain"
	"github.com/D1yWeb/S2C/internal/dto"
	"github.com/D1yWeb/S2C/internal/handlers/affiliate"
	"github.com/D1yWeb/S2C/internal/service/creditservice"
	"github.com/D1yWeb/S2C/pkg/auth"
	"github.com/D1yWeb/S2C/pkg/utils"
)

const (
	WebhookSecretHeader = "X-Webhook-Secret"

	orderPaidEvent = "order.paid"
)

type Service interface {
	GetBalance(ctx context.Context, userID string) (*domain.CreditBalance, error)
	GetLedger(ctx context.Context, userID string, limit int) ([]domain.LedgerEntry, error)
	Packages() []domain.CreditPackage
	Checkout(ctx context.Context, userID, packageID, affiliateCode string) (*domain.CheckoutSession, error)
	CompletePurchase(ctx context.Context, purchaseID, providerOrderID string) (*domain.CreditPurchase, error)
}

type ConversionRecorder interface {
	RecordConversion(ctx context.Context, in domain.ConversionInput) (int, error)
}

type CreditsHandler struct {
	creditService Service
	referrals     ConversionRecorder
	webhookSecret string
}

func New(creditService Service, referrals ConversionRecorder, webhookSecret string) *CreditsHandler {
	return &CreditsHandler{
		creditService: creditService,
		referrals:     referrals,
		webhookSecret: webhookSecret,
	}
}

// GetBalance godoc
//
//	@Summary		Get credit balance
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CreditBalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/credits/balance [get]
func (h *CreditsHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	balance, err := h.creditService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreditBalanceResponseDTO{
		Balance:   balance.Balance,
		UpdatedAt: balance.UpdatedAt,
	})
}

// GetLedger godoc
//
//	@Summary		Get credit history
//	@Description	Ledger entries of the authenticated user, newest first.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Max items (default 50)"
//	@Success		200		{array}		dto.LedgerEntryResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid limit"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/credits/ledger [get]
func (h *CreditsHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.creditService.GetLedger(r.Context(), userID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.LedgerEntryResponseDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.LedgerEntryResponseDTO{
			ID:        e.ID,
			Amount:    e.Amount,
			Reason:    e.Reason,
			CreatedAt: e.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetPackages godoc
//
//	@Summary		List credit packages
//	@Tags			Billing
//	@Produce		json
//	@Success		200	{array}	dto.CreditPackageResponseDTO
//	@Router			/api/billing/packages [get]
func (h *CreditsHandler) GetPackages(w http.ResponseWriter, r *http.Request) {
	packages := h.creditService.Packages()
	response := make([]dto.CreditPackageResponseDTO, len(packages))
	for i, p := range packages {
		response[i] = dto.CreditPackageResponseDTO{
			ID:      p.ID,
			Name:    p.Name,
			Credits: p.Credits,
			Price:   p.Price.StringFixed(2),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Checkout godoc
//
//	@Summary		Buy credits
//	@Description	Opens a hosted checkout session for a credit package. The referral cookie is kept for attribution.
//	@Tags			Billing
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CheckoutRequestDTO	true	"Package"
//	@Success		200		{object}	dto.CheckoutResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid package ID"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		503		{object}	utils.Response	"Package not available"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/billing/checkout [post]
func (h *CreditsHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req dto.CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PackageID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "packageId is required")
		return
	}

	session, err := h.creditService.Checkout(r.Context(), userID, req.PackageID, affiliate.ReferralCode(r))
	if err != nil {
		switch {
		case errors.Is(err, creditservice.ErrUnknownPackage):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, creditservice.ErrPackageUnavailable):
			utils.RespondWithError(w, http.StatusServiceUnavailable, err.Error())
		case errors.Is(err, creditservice.ErrCheckoutUnavailable):
			utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CheckoutResponseDTO{
		URL:        session.URL,
		PurchaseID: session.PurchaseID,
		Credits:    session.Credits,
		Price:      session.Price.StringFixed(2),
	})
}

// Webhook godoc
//
//	@Summary		Payment provider webhook
//	@Description	Completes a paid credit purchase and attributes it to the referring affiliate.
//	@Tags			Billing
//	@Accept			json
//	@Produce		json
//	@Param			X-Webhook-Secret	header		string					true	"Shared secret"
//	@Param			request				body		dto.WebhookRequestDTO	true	"Event"
//	@Success		200					{object}	utils.Response
//	@Failure		400					{object}	utils.Response	"Invalid event"
//	@Failure		401					{object}	utils.Response	"Invalid secret"
//	@Failure		404					{object}	utils.Response	"Purchase not found"
//	@Failure		500					{object}	utils.Response	"Internal server error"
//	@Router			/api/billing/webhook [post]
func (h *CreditsHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	secret := r.Header.Get(WebhookSecretHeader)
	if h.webhookSecret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(h.webhookSecret)) != 1 {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid webhook secret")
		return
	}

	var event dto.WebhookRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if event.Type != orderPaidEvent || event.Data.Metadata["type"] != "credit_purchase" {
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Event ignored"})
		return
	}
	purchaseID := event.Data.Metadata["purchaseId"]
	if purchaseID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "purchaseId is required")
		return
	}
	if !utils.IsUUID(purchaseID) {
		utils.RespondWithError(w, http.StatusNotFound, creditservice.ErrPurchaseNotFound.Error())
		return
	}

	purchase, err := h.creditService.CompletePurchase(r.Context(), purchaseID, event.Data.ID)
	if err != nil {
		if errors.Is(err, creditservice.ErrPurchaseNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if purchase.AffiliateCode != nil {
		h.attributePurchase(r.Context(), purchase)
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Purchase completed"})
}

func (h *CreditsHandler) attributePurchase(ctx context.Context, purchase *domain.CreditPurchase) {
	_, err := h.referrals.RecordConversion(ctx, domain.ConversionInput{
		Code:        *purchase.AffiliateCode,
		UserID:      purchase.UserID,
		Type:        domain.ConversionPurchase,
		Amount:      decimal.NewNullDecimal(purchase.Price),
		PurchaseRef: purchase.ID,
	})
	if err != nil {
		zap.L().Warn("purchase referral not attributed", zap.String("purchaseID", purchase.ID), zap.Error(err))
	}
}
