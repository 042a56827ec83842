package affiliate

//go:generate mockgen -source=affiliate.go -destination=mock_affiliate.go -package=affiliate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/D1yWeb/S2C/internal/domain"
	"github.com/D1yWeb/S2C/internal/dto"
	"github.com/D1yWeb/S2C/internal/service/affiliateservice"
	"github.com/D1yWeb/S2C/pkg/auth"
	"github.com/D1yWeb/S2C/pkg/utils"
)

type Service interface {
	CreateOrGet(ctx context.Context, userID string) (*domain.Affiliate, error)
	TrackClick(ctx context.Context, code string, meta domain.ClickMeta) error
	RecordConversion(ctx context.Context, in domain.ConversionInput) (int, error)
	GetStats(ctx context.Context, userID string) (*domain.AffiliateStats, error)
	GetConversions(ctx context.Context, userID string, limit int, status domain.ConversionStatus) ([]domain.ConversionView, error)
	GetAnalytics(ctx context.Context, userID string, days int) (*domain.Analytics, error)
	UpdateSettings(ctx context.Context, userID string, isActive *bool) (*domain.Affiliate, error)
}

type AffiliateHandler struct {
	affiliateService Service
}

func New(affiliateService Service) *AffiliateHandler {
	return &AffiliateHandler{
		affiliateService: affiliateService,
	}
}

// CreateOrGet godoc
//
//	@Summary		Get or create the affiliate account
//	@Description	Returns the caller's affiliate account, creating it with a fresh referral code on first use.
//	@Tags			Affiliate
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AffiliateResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/affiliate [post]
func (h *AffiliateHandler) CreateOrGet(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	affiliate, err := h.affiliateService.CreateOrGet(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAffiliateDTO(affiliate))
}

// GetStats godoc
//
//	@Summary		Get affiliate statistics
//	@Description	Account counters plus clicks of the last 30 days and conversions per status.
//	@Tags			Affiliate
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AffiliateStatsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Affiliate account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/affiliate/stats [get]
func (h *AffiliateHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	stats, err := h.affiliateService.GetStats(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if stats == nil {
		utils.RespondWithError(w, http.StatusNotFound, affiliateservice.ErrAccountNotFound.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AffiliateStatsResponseDTO{
		AffiliateResponseDTO:    toAffiliateDTO(&stats.Affiliate),
		RecentClicksCount:       stats.RecentClicksCount,
		PendingConversionsCount: stats.PendingConversionsCount,
		GrantedConversionsCount: stats.GrantedConversionsCount,
	})
}

// GetConversions godoc
//
//	@Summary		List affiliate conversions
//	@Description	Newest first, optionally filtered by status.
//	@Tags			Affiliate
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int		false	"Max items (default 50)"
//	@Param			status	query		string	false	"pending or granted"
//	@Success		200		{array}		dto.ConversionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid query"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/affiliate/conversions [get]
func (h *AffiliateHandler) GetConversions(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	limit, err := queryInt(r, "limit")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
		return
	}
	status := domain.ConversionStatus(r.URL.Query().Get("status"))
	if status != "" && status != domain.ConversionPending && status != domain.ConversionGranted {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	conversions, err := h.affiliateService.GetConversions(r.Context(), userID, limit, status)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ConversionResponseDTO, len(conversions))
	for i, c := range conversions {
		response[i] = dto.ConversionResponseDTO{
			ID:             c.ID,
			ConvertedUser:  c.UserID,
			ConversionType: string(c.Type),
			CreditsEarned:  c.CreditsEarned,
			Status:         string(c.Status),
			ConvertedAt:    c.ConvertedAt,
			GrantedAt:      c.GrantedAt,
			UserEmail:      c.UserEmail,
			UserName:       c.UserName,
		}
		if c.Amount.Valid {
			amount := c.Amount.Decimal.StringFixed(2)
			response[i].Amount = &amount
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetAnalytics godoc
//
//	@Summary		Get affiliate analytics
//	@Description	Clicks, conversions and earnings per UTC day over the requested window.
//	@Tags			Affiliate
//	@Security		BearerAuth
//	@Produce		json
//	@Param			days	query		int	false	"Window in days (default 30)"
//	@Success		200		{object}	dto.AnalyticsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid query"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Affiliate account not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/affiliate/analytics [get]
func (h *AffiliateHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	days, err := queryInt(r, "days")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid days")
		return
	}

	analytics, err := h.affiliateService.GetAnalytics(r.Context(), userID, days)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if analytics == nil {
		utils.RespondWithError(w, http.StatusNotFound, affiliateservice.ErrAccountNotFound.Error())
		return
	}

	series := make([]dto.DailyStatDTO, len(analytics.TimeSeries))
	for i, s := range analytics.TimeSeries {
		series[i] = dto.DailyStatDTO{Date: s.Date, Clicks: s.Clicks, Conversions: s.Conversions, Earnings: s.Earnings}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AnalyticsResponseDTO{
		Affiliate:        toAffiliateDTO(&analytics.Affiliate),
		TimeSeriesData:   series,
		TotalClicks:      analytics.TotalClicks,
		TotalConversions: analytics.TotalConversions,
		ConversionRate:   analytics.ConversionRate,
	})
}

// UpdateSettings godoc
//
//	@Summary		Update affiliate settings
//	@Description	Activates or deactivates the referral code.
//	@Tags			Affiliate
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateSettingsRequestDTO	true	"Settings"
//	@Success		200		{object}	dto.AffiliateResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Affiliate account not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/affiliate/settings [patch]
func (h *AffiliateHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req dto.UpdateSettingsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	affiliate, err := h.affiliateService.UpdateSettings(r.Context(), userID, req.IsActive)
	if err != nil {
		switch {
		case errors.Is(err, affiliateservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAffiliateDTO(affiliate))
}

// TrackClick godoc
//
//	@Summary		Track a referral click
//	@Description	Public endpoint. Unknown or inactive codes are reported as ok=false.
//	@Tags			Affiliate
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TrackClickRequestDTO	true	"Click"
//	@Success		200		{object}	dto.OkResponseDTO
//	@Failure		400		{object}	dto.OkResponseDTO	"Missing affiliate code"
//	@Failure		429		{string}	string				"Too many requests"
//	@Failure		500		{object}	dto.OkResponseDTO	"Internal server error"
//	@Router			/api/affiliate/track [post]
func (h *AffiliateHandler) TrackClick(w http.ResponseWriter, r *http.Request) {
	var req dto.TrackClickRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.AffiliateCode) == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, dto.OkResponseDTO{Error: "Affiliate code is required"})
		return
	}

	meta := ClickMetaFromRequest(r)
	if req.IPAddress != "" {
		meta.IPAddress = req.IPAddress
	}
	if req.UserAgent != "" {
		meta.UserAgent = req.UserAgent
	}
	if req.Referrer != "" {
		meta.Referrer = req.Referrer
	}

	err := h.affiliateService.TrackClick(r.Context(), req.AffiliateCode, meta)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusOK, dto.OkResponseDTO{OK: true})
	case affiliateservice.IsSoftFailure(err):
		utils.RespondWithJSON(w, http.StatusOK, dto.OkResponseDTO{Error: err.Error()})
	default:
		utils.RespondWithJSON(w, http.StatusInternalServerError, dto.OkResponseDTO{Error: "Failed to track click"})
	}
}

// RecordSignup godoc
//
//	@Summary		Attribute the caller's signup
//	@Description	Converts the referral cookie (or the code in the body) into a signup conversion for the caller.
//	@Tags			Affiliate
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SignupConversionRequestDTO	false	"Referral code"
//	@Success		200		{object}	dto.OkResponseDTO
//	@Failure		400		{object}	dto.OkResponseDTO	"No referral code"
//	@Failure		401		{object}	utils.Response		"User not authorized"
//	@Failure		500		{object}	dto.OkResponseDTO	"Internal server error"
//	@Router			/api/affiliate/conversions/signup [post]
func (h *AffiliateHandler) RecordSignup(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req dto.SignupConversionRequestDTO
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithJSON(w, http.StatusBadRequest, dto.OkResponseDTO{Error: "Invalid request body"})
			return
		}
	}
	code := ReferralCode(r)
	if code == "" {
		code = strings.TrimSpace(req.AffiliateCode)
	}
	if code == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, dto.OkResponseDTO{Error: "No referral code"})
		return
	}

	credits, err := h.affiliateService.RecordConversion(r.Context(), domain.ConversionInput{
		Code:   code,
		UserID: userID,
		Type:   domain.ConversionSignup,
	})
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusOK, dto.OkResponseDTO{OK: true, CreditsEarned: &credits})
	case affiliateservice.IsSoftFailure(err):
		zap.L().Info("signup conversion rejected", zap.String("userID", userID), zap.Error(err))
		utils.RespondWithJSON(w, http.StatusOK, dto.OkResponseDTO{Error: err.Error()})
	default:
		utils.RespondWithJSON(w, http.StatusInternalServerError, dto.OkResponseDTO{Error: "Failed to record conversion"})
	}
}

func toAffiliateDTO(a *domain.Affiliate) dto.AffiliateResponseDTO {
	return dto.AffiliateResponseDTO{
		ID:                 a.ID,
		UserID:             a.UserID,
		Code:               a.Code,
		CreditsPerSignup:   a.CreditsPerSignup,
		IsActive:           a.IsActive,
		TotalClicks:        a.TotalClicks,
		TotalSignups:       a.TotalSignups,
		TotalPurchases:     a.TotalPurchases,
		TotalCreditsEarned: a.TotalCreditsEarned,
		PendingCredits:     a.PendingCredits,
		GrantedCredits:     a.GrantedCredits,
		CreatedAt:          a.CreatedAt,
	}
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errors.New("invalid " + key)
	}
	return n, nil
}
