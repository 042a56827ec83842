package auth

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/D1yWeb/S2C/internal/domain"
	"github.com/D1yWeb/S2C/internal/dto"
	"github.com/D1yWeb/S2C/internal/handlers/affiliate"
	"github.com/D1yWeb/S2C/internal/service/authservice"
	pkgauth "github.com/D1yWeb/S2C/pkg/auth"
	"github.com/D1yWeb/S2C/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, email, name, password string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	UpdateName(ctx context.Context, userID, name string) (*domain.User, error)
	GenerateToken(userID string) (string, error)
}

type ConversionRecorder interface {
	RecordConversion(ctx context.Context, in domain.ConversionInput) (int, error)
}

type AuthHandler struct {
	authService Service
	referrals   ConversionRecorder
}

func New(authService Service, referrals ConversionRecorder) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		referrals:   referrals,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a new account. A referral code from the affiliate_ref cookie or the body is attributed as a signup.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"User already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, authservice.ErrUserExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.attributeSignup(r, user.ID, req.ReferralCode)

	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Message: "User successfully registered",
		UserID:  user.ID,
	})
}

// attributeSignup never fails the registration.
func (h *AuthHandler) attributeSignup(r *http.Request, userID, bodyCode string) {
	code := affiliate.ReferralCode(r)
	if code == "" {
		code = strings.TrimSpace(bodyCode)
	}
	if code == "" {
		return
	}

	credits, err := h.referrals.RecordConversion(r.Context(), domain.ConversionInput{
		Code:   code,
		UserID: userID,
		Type:   domain.ConversionSignup,
	})
	if err != nil {
		zap.L().Warn("signup referral not attributed", zap.String("userID", userID), zap.String("code", code), zap.Error(err))
		return
	}
	zap.L().Info("signup referral attributed", zap.String("userID", userID), zap.Int("credits", credits))
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with email and password and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Message: "User successfully authenticated",
		UserID:  user.ID,
	})
}

// Me godoc
//
//	@Summary		Current user
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.UserResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := pkgauth.UserID(r.Context())

	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if user == nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserResponseDTO{
		ID:    user.ID,
		Email: user.Email,
		Name:  domain.DisplayName(user.Name, user.Email),
		Image: user.Image,
	})
}

// UpdateName godoc
//
//	@Summary		Rename current user
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateNameRequestDTO	true	"New display name"
//	@Success		200		{object}	dto.UserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or empty name"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/name [patch]
func (h *AuthHandler) UpdateName(w http.ResponseWriter, r *http.Request) {
	userID, _ := pkgauth.UserID(r.Context())

	var req dto.UpdateNameRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.UpdateName(r.Context(), userID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrEmptyName):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, authservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserResponseDTO{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Image: user.Image,
	})
}
