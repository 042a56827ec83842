package scheduler

//go:generate mockgen -source=scheduler.go -destination=mock_scheduler.go -package=scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/D1yWeb/S2C/internal/domain"
	"github.com/D1yWeb/S2C/internal/lock"
)

type Cleaner interface {
	PurgeDeleted(ctx context.Context, now time.Time) (domain.CleanupResult, error)
}

type Reconciler interface {
	ReconcileGrants(ctx context.Context, limit int) (int, error)
}

const (
	cleanupLockKey   = "s2c:lock:cleanup"
	cleanupLockTTL   = 30 * time.Minute
	reconcileLockKey = "s2c:lock:reconcile"
	reconcileLimit   = 100
)

type Options struct {
	CleanupHourUTC    int
	ReconcileInterval time.Duration
}

// Scheduler runs the daily trash cleanup and the periodic grant
// reconciliation. Every run takes a run-lock first and is skipped when the
// lock is held elsewhere.
type Scheduler struct {
	cleaner    Cleaner
	reconciler Reconciler
	locker     lock.Locker

	cleanupHour       int
	reconcileInterval time.Duration
	now               func() time.Time
}

func New(cleaner Cleaner, reconciler Reconciler, locker lock.Locker, opts Options) *Scheduler {
	return &Scheduler{
		cleaner:           cleaner,
		reconciler:        reconciler,
		locker:            locker,
		cleanupHour:       opts.CleanupHourUTC,
		reconcileInterval: opts.ReconcileInterval,
		now:               time.Now,
	}
}

// Run blocks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	zap.L().Info("Scheduler started",
		zap.Int("cleanupHourUTC", s.cleanupHour),
		zap.Duration("reconcileInterval", s.reconcileInterval))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.cleanupLoop(ctx)
		return nil
	})
	if s.reconcileInterval > 0 {
		g.Go(func() error {
			s.reconcileLoop(ctx)
			return nil
		})
	}
	err := g.Wait()
	zap.L().Info("Scheduler stopped")
	return err
}

func (s *Scheduler) cleanupLoop(ctx context.Context) {
	timer := time.NewTimer(nextRun(s.now(), s.cleanupHour).Sub(s.now()))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			s.RunCleanup(ctx)
			timer.Reset(nextRun(s.now(), s.cleanupHour).Sub(s.now()))
		}
	}
}

func (s *Scheduler) reconcileLoop(ctx context.Context) {
	ticker := time.NewTicker(s.reconcileInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunReconcile(ctx)
		}
	}
}

// RunCleanup purges trash older than the retention window.
func (s *Scheduler) RunCleanup(ctx context.Context) {
	release, ok, err := s.locker.TryLock(ctx, cleanupLockKey, cleanupLockTTL)
	if err != nil {
		zap.L().Error("Failed to take cleanup lock", zap.Error(err))
		return
	}
	if !ok {
		zap.L().Info("Cleanup already running elsewhere, skipping")
		return
	}
	defer release()

	start := s.now()
	result, err := s.cleaner.PurgeDeleted(ctx, start)
	if err != nil {
		zap.L().Error("Cleanup failed", zap.Error(err))
		return
	}
	zap.L().Info("Cleanup finished",
		zap.Int64("folderProjects", result.FolderProjects),
		zap.Int64("folders", result.Folders),
		zap.Int64("projects", result.Projects),
		zap.Int64("total", result.Total()),
		zap.Duration("took", s.now().Sub(start)))
}

// RunReconcile retries signup grants left pending by a failed transaction.
func (s *Scheduler) RunReconcile(ctx context.Context) {
	release, ok, err := s.locker.TryLock(ctx, reconcileLockKey, s.reconcileInterval)
	if err != nil {
		zap.L().Error("Failed to take reconcile lock", zap.Error(err))
		return
	}
	if !ok {
		return
	}
	defer release()

	granted, err := s.reconciler.ReconcileGrants(ctx, reconcileLimit)
	if err != nil {
		zap.L().Error("Grant reconciliation failed", zap.Error(err))
		return
	}
	if granted > 0 {
		zap.L().Info("Pending grants reconciled", zap.Int("granted", granted))
	}
}

// nextRun returns the first moment strictly after now at hour:00 UTC.
func nextRun(now time.Time, hour int) time.Time {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
