package projectservice

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/D1yWeb/S2C/internal/domain"
)

// ownedFolder loads a folder of userID. With allowDeleted unset a folder in
// the trash is reported as missing.
func (s *Service) ownedFolder(ctx context.Context, userID, id string, allowDeleted bool) (*domain.Folder, error) {
	folder, err := s.folders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if folder == nil || (folder.IsDeleted && !allowDeleted) {
		return nil, ErrFolderNotFound
	}
	if folder.UserID != userID {
		return nil, ErrAccessDenied
	}
	return folder, nil
}

func (s *Service) CreateFolder(ctx context.Context, userID, name, color string) (*domain.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	folder := &domain.Folder{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Color:     color,
		CreatedAt: s.now(),
	}
	if err := s.folders.Create(ctx, folder); err != nil {
		zap.L().Error("failed to create folder", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return folder, nil
}

// ListFolders returns active folders, or the trash when deleted is set.
func (s *Service) ListFolders(ctx context.Context, userID string, deleted bool) ([]domain.Folder, error) {
	folders, err := s.folders.List(ctx, userID, deleted)
	if err != nil {
		zap.L().Error("failed to list folders", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	if folders == nil {
		folders = []domain.Folder{}
	}
	return folders, nil
}

func (s *Service) UpdateFolder(ctx context.Context, userID, id, name, color string) (*domain.Folder, error) {
	folder, err := s.ownedFolder(ctx, userID, id, false)
	if err != nil {
		return nil, err
	}
	if name = strings.TrimSpace(name); name != "" {
		folder.Name = name
	}
	if color != "" {
		folder.Color = color
	}
	if err := s.folders.Update(ctx, id, folder.Name, folder.Color); err != nil {
		return nil, err
	}
	return folder, nil
}

func (s *Service) DeleteFolder(ctx context.Context, userID, id string) error {
	if _, err := s.ownedFolder(ctx, userID, id, false); err != nil {
		return err
	}
	if err := s.folders.SoftDelete(ctx, id, s.now()); err != nil {
		return err
	}
	zap.L().Info("folder moved to trash", zap.String("folderID", id))
	return nil
}

func (s *Service) RestoreFolder(ctx context.Context, userID, id string) error {
	if _, err := s.ownedFolder(ctx, userID, id, true); err != nil {
		return err
	}
	return s.folders.Restore(ctx, id)
}
