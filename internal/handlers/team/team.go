package team

//go:generate mockgen -source=team.go -destination=mock_team.go -package=team

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/D1yWeb/S2C/internal/domain"
	"github.com/D1yWeb/S2C/internal/dto"
	"github.com/D1yWeb/S2C/internal/service/teamservice"
	"github.com/D1yWeb/S2C/pkg/auth"
	"github.com/D1yWeb/S2C/pkg/utils"
)

type Service interface {
	SearchUsers(ctx context.Context, userID, query string, limit int) ([]domain.User, error)
	Members(ctx context.Context, userID, projectID string) ([]domain.MemberView, error)
	Invite(ctx context.Context, ownerID, projectID, inviteeID string, role domain.TeamRole) (*domain.TeamMember, error)
	PendingInvites(ctx context.Context, userID string) ([]domain.InviteView, error)
	Accept(ctx context.Context, userID, inviteID string) (string, error)
	Decline(ctx context.Context, userID, inviteID string) error
	Remove(ctx context.Context, userID, memberID string) error
}

type TeamHandler struct {
	teamService Service
}

func New(teamService Service) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, teamservice.ErrProjectNotFound),
		errors.Is(err, teamservice.ErrUserNotFound),
		errors.Is(err, teamservice.ErrInviteNotFound):
		return http.StatusNotFound
	case errors.Is(err, teamservice.ErrAccessDenied),
		errors.Is(err, teamservice.ErrNotOwner),
		errors.Is(err, teamservice.ErrNotInvitee),
		errors.Is(err, teamservice.ErrNoPermission):
		return http.StatusForbidden
	case errors.Is(err, teamservice.ErrAlreadyMember), errors.Is(err, teamservice.ErrAlreadyAccepted):
		return http.StatusConflict
	case errors.Is(err, teamservice.ErrSelfInvite), errors.Is(err, teamservice.ErrInvalidRole):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// pathID answers 404 with notFound when the {id} segment cannot name a row.
func pathID(w http.ResponseWriter, r *http.Request, notFound error) (string, bool) {
	id := chi.URLParam(r, "id")
	if !utils.IsUUID(id) {
		utils.RespondWithError(w, http.StatusNotFound, notFound.Error())
		return "", false
	}
	return id, true
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		utils.RespondWithError(w, code, "Internal server error")
		return
	}
	utils.RespondWithError(w, code, err.Error())
}

// SearchUsers godoc
//
//	@Summary		Search users to invite
//	@Description	Case-insensitive match on name or email. The caller is never included.
//	@Tags			Team
//	@Security		BearerAuth
//	@Produce		json
//	@Param			q		query		string	false	"Name or email fragment"
//	@Param			limit	query		int		false	"Max results (default 20)"
//	@Success		200		{array}		dto.UserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid limit"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Router			/api/users/search [get]
func (h *TeamHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
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

	users, err := h.teamService.SearchUsers(r.Context(), userID, r.URL.Query().Get("q"), limit)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	response := make([]dto.UserResponseDTO, len(users))
	for i, u := range users {
		response[i] = dto.UserResponseDTO{ID: u.ID, Email: u.Email, Name: u.Name, Image: u.Image}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Members godoc
//
//	@Summary		List project members
//	@Tags			Team
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Project ID"
//	@Success		200	{array}		dto.MemberResponseDTO
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		404	{object}	utils.Response	"Project not found"
//	@Router			/api/projects/{id}/members [get]
func (h *TeamHandler) Members(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	id, ok := pathID(w, r, teamservice.ErrProjectNotFound)
	if !ok {
		return
	}

	members, err := h.teamService.Members(r.Context(), userID, id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	response := make([]dto.MemberResponseDTO, len(members))
	for i, m := range members {
		response[i] = toMemberDTO(m.TeamMember)
		response[i].UserEmail = m.UserEmail
		response[i].UserName = m.UserName
		response[i].UserImage = m.UserImage
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Invite godoc
//
//	@Summary		Invite a user to a project
//	@Description	Only the owner may invite. Role defaults to editor.
//	@Tags			Team
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Project ID"
//	@Param			request	body		dto.InviteRequestDTO	true	"Invitee"
//	@Success		201		{object}	dto.MemberResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		403		{object}	utils.Response	"Only project owner can manage members"
//	@Failure		404		{object}	utils.Response	"Project or user not found"
//	@Failure		409		{object}	utils.Response	"User is already a team member"
//	@Router			/api/projects/{id}/members [post]
func (h *TeamHandler) Invite(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	id, ok := pathID(w, r, teamservice.ErrProjectNotFound)
	if !ok {
		return
	}

	var req dto.InviteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !utils.IsUUID(req.UserID) {
		utils.RespondWithError(w, http.StatusNotFound, teamservice.ErrUserNotFound.Error())
		return
	}

	member, err := h.teamService.Invite(r.Context(), userID, id, req.UserID, domain.TeamRole(req.Role))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toMemberDTO(*member))
}

// PendingInvites godoc
//
//	@Summary		List my pending invites
//	@Tags			Team
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.InviteResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/team/invites [get]
func (h *TeamHandler) PendingInvites(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	invites, err := h.teamService.PendingInvites(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	response := make([]dto.InviteResponseDTO, len(invites))
	for i, inv := range invites {
		response[i] = dto.InviteResponseDTO{
			ID:               inv.ID,
			ProjectID:        inv.ProjectID,
			Role:             string(inv.Role),
			InvitedAt:        inv.InvitedAt,
			ProjectName:      inv.ProjectName,
			ProjectThumbnail: inv.ProjectThumbnail,
			OwnerName:        inv.OwnerName,
			OwnerEmail:       inv.OwnerEmail,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// AcceptInvite godoc
//
//	@Summary		Accept an invite
//	@Tags			Team
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Invite ID"
//	@Success		200	{object}	dto.AcceptInviteResponseDTO
//	@Failure		403	{object}	utils.Response	"This invite does not belong to you"
//	@Failure		404	{object}	utils.Response	"Invite not found"
//	@Failure		409	{object}	utils.Response	"Invite already accepted"
//	@Router			/api/team/invites/{id}/accept [post]
func (h *TeamHandler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	id, ok := pathID(w, r, teamservice.ErrInviteNotFound)
	if !ok {
		return
	}

	projectID, err := h.teamService.Accept(r.Context(), userID, id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AcceptInviteResponseDTO{ProjectID: projectID})
}

// DeclineInvite godoc
//
//	@Summary		Decline an invite
//	@Tags			Team
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Invite ID"
//	@Success		204
//	@Failure		403	{object}	utils.Response	"No permission"
//	@Failure		404	{object}	utils.Response	"Invite not found"
//	@Router			/api/team/invites/{id} [delete]
func (h *TeamHandler) DeclineInvite(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	id, ok := pathID(w, r, teamservice.ErrInviteNotFound)
	if !ok {
		return
	}

	if err := h.teamService.Decline(r.Context(), userID, id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveMember godoc
//
//	@Summary		Remove a member
//	@Description	Only the project owner may remove members.
//	@Tags			Team
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Member ID"
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		404	{object}	utils.Response	"Member not found"
//	@Router			/api/team/members/{id} [delete]
func (h *TeamHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	id, ok := pathID(w, r, teamservice.ErrInviteNotFound)
	if !ok {
		return
	}

	if err := h.teamService.Remove(r.Context(), userID, id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toMemberDTO(m domain.TeamMember) dto.MemberResponseDTO {
	return dto.MemberResponseDTO{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		UserID:    m.UserID,
		Role:      string(m.Role),
		InvitedAt: m.InvitedAt,
		JoinedAt:  m.JoinedAt,
	}
}
