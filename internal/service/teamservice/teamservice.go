package teamservice

//go:generate mockgen -source=teamservice.go -destination=mock_teamservice.go -package=teamservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/D1yWeb/S2C/internal/domain"
)

type MemberRepo interface {
	Create(ctx context.Context, member *domain.TeamMember) error
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
	GetMember(ctx context.Context, projectID, userID string) (*domain.TeamMember, error)
	ListAccepted(ctx context.Context, projectID string) ([]domain.MemberView, error)
	ListPending(ctx context.Context, userID string) ([]domain.InviteView, error)
	Accept(ctx context.Context, id string, at time.Time) (bool, error)
	Delete(ctx context.Context, id string) error
}

type ProjectRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Project, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Search(ctx context.Context, excludeID, pattern string, limit int) ([]domain.User, error)
}

const DefaultSearchLimit = 20

var (
	ErrProjectNotFound = errors.New("Project not found")
	ErrUserNotFound    = errors.New("User not found")
	ErrAccessDenied    = errors.New("Access denied")
	ErrNotOwner        = errors.New("Only project owner can manage members")
	ErrAlreadyMember   = errors.New("User is already a team member")
	ErrSelfInvite      = errors.New("Cannot invite yourself")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInviteNotFound  = errors.New("Invite not found")
	ErrNotInvitee      = errors.New("This invite does not belong to you")
	ErrAlreadyAccepted = errors.New("Invite already accepted")
	ErrNoPermission    = errors.New("You don't have permission to decline this invite")
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type Service struct {
	members  MemberRepo
	projects ProjectRepo
	users    UserRepo
	now      func() time.Time
}

func New(members MemberRepo, projects ProjectRepo, users UserRepo) *Service {
	return &Service{
		members:  members,
		projects: projects,
		users:    users,
		now:      time.Now,
	}
}

func (s *Service) project(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

// SearchUsers finds invite candidates by email, name or email local part.
// The caller is never part of the result.
func (s *Service) SearchUsers(ctx context.Context, userID, query string, limit int) ([]domain.User, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	pattern := "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(query))) + "%"
	users, err := s.users.Search(ctx, userID, pattern, limit)
	if err != nil {
		zap.L().Error("failed to search users", zap.Error(err))
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// Members lists accepted members. Visible to the owner, accepted members and
// anyone when the project is public.
func (s *Service) Members(ctx context.Context, userID, projectID string) ([]domain.MemberView, error) {
	project, err := s.project(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != userID && !project.IsPublic {
		m, err := s.members.GetMember(ctx, projectID, userID)
		if err != nil {
			return nil, err
		}
		if m == nil || !m.Accepted() {
			return nil, ErrAccessDenied
		}
	}

	members, err := s.members.ListAccepted(ctx, projectID)
	if err != nil {
		zap.L().Error("failed to list team members", zap.String("projectID", projectID), zap.Error(err))
		return nil, err
	}
	if members == nil {
		members = []domain.MemberView{}
	}
	return members, nil
}

func (s *Service) Invite(ctx context.Context, ownerID, projectID, inviteeID string, role domain.TeamRole) (*domain.TeamMember, error) {
	if role == "" {
		role = domain.RoleEditor
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	project, err := s.project(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != ownerID {
		return nil, ErrNotOwner
	}
	existing, err := s.members.GetMember(ctx, projectID, inviteeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyMember
	}
	if inviteeID == ownerID {
		return nil, ErrSelfInvite
	}
	invitee, err := s.users.FindByID(ctx, inviteeID)
	if err != nil {
		return nil, err
	}
	if invitee == nil {
		return nil, ErrUserNotFound
	}

	member := &domain.TeamMember{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		UserID:    inviteeID,
		Role:      role,
		InvitedAt: s.now(),
	}
	err = s.members.Create(ctx, member)
	if errors.Is(err, domain.ErrMemberExists) {
		return nil, ErrAlreadyMember
	}
	if err != nil {
		zap.L().Error("failed to create invite", zap.String("projectID", projectID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("team member invited", zap.String("projectID", projectID), zap.String("role", string(role)))
	return member, nil
}

func (s *Service) PendingInvites(ctx context.Context, userID string) ([]domain.InviteView, error) {
	invites, err := s.members.ListPending(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list pending invites", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	if invites == nil {
		invites = []domain.InviteView{}
	}
	return invites, nil
}

func (s *Service) invite(ctx context.Context, id string) (*domain.TeamMember, error) {
	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrInviteNotFound
	}
	return member, nil
}

// Accept returns the project the caller has joined.
func (s *Service) Accept(ctx context.Context, userID, inviteID string) (string, error) {
	member, err := s.invite(ctx, inviteID)
	if err != nil {
		return "", err
	}
	if member.UserID != userID {
		return "", ErrNotInvitee
	}
	if member.Accepted() {
		return "", ErrAlreadyAccepted
	}
	ok, err := s.members.Accept(ctx, inviteID, s.now())
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrAlreadyAccepted
	}
	zap.L().Info("invite accepted", zap.String("projectID", member.ProjectID))
	return member.ProjectID, nil
}

// Decline withdraws an invite. Both the invitee and the project owner may do
// it.
func (s *Service) Decline(ctx context.Context, userID, inviteID string) error {
	member, err := s.invite(ctx, inviteID)
	if err != nil {
		return err
	}
	project, err := s.project(ctx, member.ProjectID)
	if err != nil {
		return err
	}
	if member.UserID != userID && project.UserID != userID {
		return ErrNoPermission
	}
	return s.members.Delete(ctx, inviteID)
}

func (s *Service) Remove(ctx context.Context, userID, memberID string) error {
	member, err := s.invite(ctx, memberID)
	if err != nil {
		return err
	}
	project, err := s.project(ctx, member.ProjectID)
	if err != nil {
		return err
	}
	if project.UserID != userID {
		return ErrNotOwner
	}
	if err := s.members.Delete(ctx, memberID); err != nil {
		return err
	}
	zap.L().Info("team member removed", zap.String("projectID", member.ProjectID))
	return nil
}
