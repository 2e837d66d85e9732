package scheduler

import (
	"context"
	"log/slog"
	"time"

	"newsdesk/internal/metrics"
)

// Job is one unit of periodic work, for example the fetch or translate batch.
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

type Scheduler struct {
	jobs       []Job
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(jobs []Job, interval, runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		jobs:       jobs,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger.With("component", "scheduler"),
	}
}

// Start runs every job once immediately and then on each tick, in order,
// until ctx is cancelled. A failing job does not stop the ones after it.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "jobs", len(s.jobs))

	s.runAll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Scheduler) runAll(ctx context.Context) {
	for _, job := range s.jobs {
		if ctx.Err() != nil {
			return
		}
		s.run(ctx, job)
	}
}

func (s *Scheduler) run(ctx context.Context, job Job) {
	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	start := time.Now()
	err := job.Run(runCtx)
	metrics.SchedulerRuns.WithLabelValues(job.Name, metrics.Result(err)).Inc()

	if err != nil {
		s.logger.Error("job failed", "job", job.Name, "error", err, "duration", time.Since(start))
		return
	}
	s.logger.Info("job completed", "job", job.Name, "duration", time.Since(start))
}
