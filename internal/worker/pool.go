package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/taskhub/taskhub-api/internal/repo"
)

const (
	sweepInterval = 30 * time.Second
	sweepBatch    = 10
)

// Pool - пул фоновых воркеров, отрабатывающих наступившие напоминания задач
type Pool struct {
	tasks  repo.TaskRepository
	logger *zap.Logger
	count  int
	wg     sync.WaitGroup
	stop   chan struct{}
}

func NewPool(tasks repo.TaskRepository, logger *zap.Logger, count int) *Pool {
	return &Pool{
		tasks:  tasks,
		logger: logger,
		count:  count,
		stop:   make(chan struct{}),
	}
}

func (p *Pool) Start(ctx context.Context) {
	p.logger.Info("Starting worker pool", zap.Int("workers", p.count))

	for i := 0; i < p.count; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

func (p *Pool) Stop() {
	p.logger.Info("Stopping worker pool...")
	close(p.stop)
	p.wg.Wait()
	p.logger.Info("Worker pool stopped")
}

func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.sweep(ctx, id)
		}
	}
}

// sweep находит задачи с наступившим напоминанием и отмечает их.
// Отметка одновременно служит блокировкой от соседних воркеров.
func (p *Pool) sweep(ctx context.Context, workerID int) {
	due, err := p.tasks.DueReminders(ctx, time.Now(), sweepBatch)
	if err != nil {
		p.logger.Error("reminder sweep failed", zap.Int("worker", workerID), zap.Error(err))
		return
	}

	for _, t := range due {
		if err := p.tasks.MarkReminded(ctx, t.ID); err != nil {
			if errors.Is(err, repo.ErrorNotFound) {
				continue // напоминание уже забрал другой воркер
			}
			p.logger.Error("failed to mark reminder", zap.Int("worker", workerID), zap.Error(err))
			continue
		}

		p.logger.Info("task reminder due",
			zap.Int("worker", workerID),
			zap.String("task_id", t.ID.Hex()),
			zap.String("name", t.Name),
			zap.String("created_by", t.CreatedBy.Hex()),
		)
	}
}
