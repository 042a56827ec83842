package tracker

//go:generate mockgen -source=tracker.go -destination=mock_tracker.go -package=tracker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/D1yWeb/S2C/internal/domain"
	"github.com/D1yWeb/S2C/internal/service/affiliateservice"
)

const taskTimeout = 5 * time.Second

type Recorder interface {
	TrackClick(ctx context.Context, code string, meta domain.ClickMeta) error
}

// Tracker records referral clicks off the request path.
type Tracker struct {
	recorder Recorder
	pool     *WorkerPool
}

func New(recorder Recorder, workers, queue int) *Tracker {
	return &Tracker{
		recorder: recorder,
		pool:     NewWorkerPool(workers, queue, taskTimeout),
	}
}

// Track queues the click and reports whether it was accepted. Clicks are
// dropped when the queue is full.
func (t *Tracker) Track(code string, meta domain.ClickMeta) bool {
	ok := t.pool.TryAdd(func(ctx context.Context) error {
		err := t.recorder.TrackClick(ctx, code, meta)
		if affiliateservice.IsSoftFailure(err) {
			zap.L().Debug("click ignored", zap.String("code", code), zap.Error(err))
			return nil
		}
		return err
	})
	if !ok {
		zap.L().Warn("click dropped, tracker queue is full", zap.String("code", code))
	}
	return ok
}

func (t *Tracker) Close() {
	t.pool.Close()
	zap.L().Info("Click tracker stopped")
}
