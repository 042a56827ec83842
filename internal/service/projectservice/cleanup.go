package projectservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/D1yWeb/S2C/internal/domain"
)

// PurgeDeleted permanently removes folders and projects that have been in the
// trash for longer than the retention window as of now. Projects inside an expired folder go
// with it, even when they were never deleted themselves.
func (s *Service) PurgeDeleted(ctx context.Context, now time.Time) (domain.CleanupResult, error) {
	cutoff := now.Add(-s.retention)

	var result domain.CleanupResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		if result.FolderProjects, err = s.projects.PurgeInExpiredFolders(ctx, cutoff); err != nil {
			return err
		}
		if result.Folders, err = s.folders.PurgeExpired(ctx, cutoff); err != nil {
			return err
		}
		result.Projects, err = s.projects.PurgeExpired(ctx, cutoff)
		return err
	})
	if err != nil {
		zap.L().Error("cleanup failed", zap.Error(err))
		return domain.CleanupResult{}, err
	}

	zap.L().Info("cleanup completed",
		zap.Time("cutoff", cutoff),
		zap.Int64("folders", result.Folders),
		zap.Int64("folderProjects", result.FolderProjects),
		zap.Int64("projects", result.Projects),
	)
	return result, nil
}
