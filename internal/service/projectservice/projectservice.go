package projectservice

//go:generate mockgen -source=projectservice.go -destination=mock_projectservice.go -package=projectservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/D1yWeb/S2C/internal/domain"
	"github.com/D1yWeb/S2C/internal/pg"
)

type ProjectRepo interface {
	NextNumber(ctx context.Context, userID string) (int, error)
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, userID string, filter domain.ProjectFilter) ([]domain.ProjectListItem, error)
	UpdateSketches(ctx context.Context, id string, sketches, viewport json.RawMessage, thumbnail *string, at time.Time) error
	UpdateStyleGuide(ctx context.Context, id, styleGuide string, at time.Time) error
	Rename(ctx context.Context, id, name string, at time.Time) error
	SetFolder(ctx context.Context, id string, folderID *string, at time.Time) error
	SoftDelete(ctx context.Context, id string, at time.Time) error
	Restore(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	PurgeInExpiredFolders(ctx context.Context, cutoff time.Time) (int64, error)
	PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

type FolderRepo interface {
	Create(ctx context.Context, folder *domain.Folder) error
	GetByID(ctx context.Context, id string) (*domain.Folder, error)
	List(ctx context.Context, userID string, deleted bool) ([]domain.Folder, error)
	Update(ctx context.Context, id, name, color string) error
	SoftDelete(ctx context.Context, id string, at time.Time) error
	Restore(ctx context.Context, id string) error
	PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

type MemberRepo interface {
	GetMember(ctx context.Context, projectID, userID string) (*domain.TeamMember, error)
}

const (
	DefaultListLimit = 20
	DefaultRetention = 90 * 24 * time.Hour
)

var (
	ErrProjectNotFound  = errors.New("Project not found")
	ErrFolderNotFound   = errors.New("Folder not found")
	ErrAccessDenied     = errors.New("Access denied")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrInvalidStyleJSON = errors.New("style guide must be valid JSON")
)

type CreateInput struct {
	Name         string
	Description  string
	FolderID     *string
	SketchesData json.RawMessage
	Thumbnail    string
}

type Service struct {
	txManager pg.TXManager
	projects  ProjectRepo
	folders   FolderRepo
	members   MemberRepo
	retention time.Duration
	now       func() time.Time
}

func New(txManager pg.TXManager, projects ProjectRepo, folders FolderRepo, members MemberRepo, retention time.Duration) *Service {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &Service{
		txManager: txManager,
		projects:  projects,
		folders:   folders,
		members:   members,
		retention: retention,
		now:       time.Now,
	}
}

// CreateProject names unnamed projects "Project N" after the owner's next
// project number.
func (s *Service) CreateProject(ctx context.Context, userID string, in CreateInput) (*domain.Project, error) {
	if in.FolderID != nil {
		if _, err := s.ownedFolder(ctx, userID, *in.FolderID, false); err != nil {
			return nil, err
		}
	}

	var project *domain.Project
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		number, err := s.projects.NextNumber(ctx, userID)
		if err != nil {
			return err
		}
		name := strings.TrimSpace(in.Name)
		if name == "" {
			name = fmt.Sprintf("Project %d", number)
		}
		now := s.now()
		project = &domain.Project{
			ID:            uuid.NewString(),
			UserID:        userID,
			Name:          name,
			Description:   in.Description,
			FolderID:      in.FolderID,
			SketchesData:  in.SketchesData,
			Thumbnail:     in.Thumbnail,
			Tags:          []string{},
			ProjectNumber: number,
			LastModified:  now,
			CreatedAt:     now,
		}
		return s.projects.Create(ctx, project)
	})
	if err != nil {
		zap.L().Error("failed to create project", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("project created", zap.String("projectID", project.ID), zap.Int("number", project.ProjectNumber))
	return project, nil
}

func (s *Service) ListProjects(ctx context.Context, userID string, filter domain.ProjectFilter) ([]domain.ProjectListItem, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	projects, err := s.projects.List(ctx, userID, filter)
	if err != nil {
		zap.L().Error("failed to list projects", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	if projects == nil {
		projects = []domain.ProjectListItem{}
	}
	return projects, nil
}

func (s *Service) find(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

func (s *Service) owned(ctx context.Context, userID, id string) (*domain.Project, error) {
	project, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if project.UserID != userID {
		return nil, ErrAccessDenied
	}
	return project, nil
}

// member returns the accepted membership of userID, or nil.
func (s *Service) member(ctx context.Context, projectID, userID string) (*domain.TeamMember, error) {
	m, err := s.members.GetMember(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	if m == nil || !m.Accepted() {
		return nil, nil
	}
	return m, nil
}

// GetProject is allowed for the owner, accepted team members and anyone when
// the project is public.
func (s *Service) GetProject(ctx context.Context, userID, id string) (*domain.Project, error) {
	project, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if project.UserID == userID || project.IsPublic {
		return project, nil
	}
	m, err := s.member(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrAccessDenied
	}
	return project, nil
}

func (s *Service) GetStyleGuide(ctx context.Context, userID, id string) (json.RawMessage, error) {
	project, err := s.GetProject(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if project.StyleGuide == "" {
		return nil, nil
	}
	return json.RawMessage(project.StyleGuide), nil
}

// UpdateSketches is the autosave path; editors and admins of the team may
// write as well as the owner.
func (s *Service) UpdateSketches(ctx context.Context, userID, id string, sketches, viewport json.RawMessage, thumbnail *string) error {
	project, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if project.UserID != userID {
		m, err := s.member(ctx, id, userID)
		if err != nil {
			return err
		}
		if m == nil || !m.Role.CanEdit() {
			return ErrAccessDenied
		}
	}
	return s.projects.UpdateSketches(ctx, id, sketches, viewport, thumbnail, s.now())
}

func (s *Service) UpdateStyleGuide(ctx context.Context, userID, id string, styleGuide json.RawMessage) error {
	if !json.Valid(styleGuide) {
		return ErrInvalidStyleJSON
	}
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.projects.UpdateStyleGuide(ctx, id, string(styleGuide), s.now())
}

func (s *Service) RenameProject(ctx context.Context, userID, id, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if _, err := s.owned(ctx, userID, id); err != nil {
		return "", err
	}
	if err := s.projects.Rename(ctx, id, name, s.now()); err != nil {
		return "", err
	}
	return name, nil
}

// MoveProject puts the project into folderID, or back to the root when
// folderID is nil.
func (s *Service) MoveProject(ctx context.Context, userID, id string, folderID *string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if folderID != nil {
		if _, err := s.ownedFolder(ctx, userID, *folderID, false); err != nil {
			return err
		}
	}
	return s.projects.SetFolder(ctx, id, folderID, s.now())
}

func (s *Service) DeleteProject(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.projects.SoftDelete(ctx, id, s.now()); err != nil {
		return err
	}
	zap.L().Info("project moved to trash", zap.String("projectID", id))
	return nil
}

func (s *Service) RestoreProject(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.projects.Restore(ctx, id); err != nil {
		return err
	}
	zap.L().Info("project restored", zap.String("projectID", id))
	return nil
}

func (s *Service) PermanentlyDeleteProject(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	zap.L().Info("project permanently deleted", zap.String("projectID", id))
	return nil
}
