package tracker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Task func(ctx context.Context) error

// WorkerPool runs tasks on a fixed set of workers. TryAdd never blocks: a
// full queue rejects the task.
type WorkerPool struct {
	pool    chan Task
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewWorkerPool(workers, queue int, timeout time.Duration) *WorkerPool {
	wp := &WorkerPool{
		pool:    make(chan Task, queue),
		timeout: timeout,
	}

	wp.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.pool {
		wp.run(task)
	}
}

func (wp *WorkerPool) run(task Task) {
	ctx, cancel := context.WithTimeout(context.Background(), wp.timeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("Task panicked", zap.Any("panic", r))
		}
	}()
	if err := task(ctx); err != nil {
		zap.L().Error("Task execution failed", zap.Error(err))
	}
}

func (wp *WorkerPool) TryAdd(task Task) bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		return false
	}
	select {
	case wp.pool <- task:
		return true
	default:
		return false
	}
}

// Close stops accepting tasks and waits for the queued ones to finish.
func (wp *WorkerPool) Close() {
	wp.mu.Lock()
	if wp.closed {
		wp.mu.Unlock()
		return
	}
	wp.closed = true
	close(wp.pool)
	wp.mu.Unlock()

	wp.wg.Wait()
}
