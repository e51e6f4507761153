package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"liyu1981.xyz/farm-sustainability-service/pkg/common"
	"liyu1981.xyz/farm-sustainability-service/pkg/observability"
)

type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// JobScheduler runs its jobs one after another on every tick. A tick that
// arrives while jobs are still running is dropped by the ticker.
type JobScheduler struct {
	Name     string
	Interval time.Duration
	Clock    clockwork.Clock
	Metrics  *observability.Metrics

	jobs []Job
	mu   sync.RWMutex
}

func NewJobScheduler(name string, interval time.Duration, clock clockwork.Clock) *JobScheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &JobScheduler{
		Name:     name,
		Interval: interval,
		Clock:    clock,
		jobs:     make([]Job, 0),
	}
}

func (s *JobScheduler) AddJob(job Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, job)
}

// Run blocks until ctx is cancelled.
func (s *JobScheduler) Run(ctx context.Context) {
	logger := common.GetCategoryLogger(common.LoggerNameScheduler, common.LoggerCategoryScheduledJob).
		With(zap.String("scheduler", s.Name))

	ticker := s.Clock.NewTicker(s.Interval)
	defer ticker.Stop()

	logger.Info("Scheduler running", zap.Duration("interval", s.Interval))

	for {
		select {
		case <-ticker.Chan():
			s.runJobs(ctx, logger)
		case <-ctx.Done():
			logger.Info("Scheduler shutting down")
			return
		}
	}
}

func (s *JobScheduler) runJobs(ctx context.Context, logger *zap.Logger) {
	s.mu.RLock()
	jobsToRun := make([]Job, len(s.jobs))
	copy(jobsToRun, s.jobs)
	s.mu.RUnlock()

	if s.Metrics != nil {
		s.Metrics.SchedulerRuns.Inc()
	}

	for _, job := range jobsToRun {
		if ctx.Err() != nil {
			return
		}
		runID := uuid.NewString()
		started := s.Clock.Now()
		if err := job.Run(ctx); err != nil {
			logger.Error("Scheduled job failed",
				zap.String("job", job.Name), zap.String("run_id", runID), zap.Error(err))
			continue
		}
		logger.Info("Scheduled job finished",
			zap.String("job", job.Name), zap.String("run_id", runID),
			zap.Duration("took", s.Clock.Since(started)))
	}
}
