package services

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AchievementWorker runs achievement checks off the request path. Awards are
// idempotent, so a dropped job at shutdown is re-earned on the next check.
type AchievementWorker interface {
	Start()
	Stop()
	Enqueue(userID uuid.UUID)
}

type achievementWorker struct {
	achievements AchievementService
	logger       *zap.Logger
	jobQueue     chan uuid.UUID
	concurrency  int
	wg           sync.WaitGroup
	stopChan     chan struct{}
}

func NewAchievementWorker(
	achievements AchievementService,
	logger *zap.Logger,
	concurrency int,
	queueSize int,
) AchievementWorker {
	return &achievementWorker{
		achievements: achievements,
		logger:       logger,
		jobQueue:     make(chan uuid.UUID, queueSize),
		concurrency:  concurrency,
		stopChan:     make(chan struct{}),
	}
}

func (w *achievementWorker) Start() {
	w.logger.Info("starting achievement worker", zap.Int("concurrency", w.concurrency))

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(i + 1)
	}
}

func (w *achievementWorker) Stop() {
	w.logger.Info("stopping achievement worker")
	close(w.stopChan)
	w.wg.Wait()
	w.logger.Info("achievement worker stopped")
}

// Enqueue never blocks the caller: when the queue is full the check is
// skipped and picked up by the next enqueue for that user.
func (w *achievementWorker) Enqueue(userID uuid.UUID) {
	select {
	case w.jobQueue <- userID:
	case <-w.stopChan:
		w.logger.Warn("worker stopped, dropping achievement check",
			zap.String("user_id", userID.String()))
	default:
		w.logger.Warn("achievement queue full, dropping check",
			zap.String("user_id", userID.String()))
	}
}

func (w *achievementWorker) processJobs(workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			return
		case userID := <-w.jobQueue:
			if err := w.achievements.Evaluate(userID); err != nil {
				w.logger.Error("achievement check failed",
					zap.Int("worker", workerID),
					zap.String("user_id", userID.String()),
					zap.Error(err))
			}
		}
	}
}
