package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/workhive/api/internal/metrics"
	"github.com/workhive/api/internal/service"
)

// DigestRunner runs one digest pass over all subscribers.
type DigestRunner interface {
	Run(ctx context.Context) (*service.DigestResult, error)
}

// Weekly digest schedule: Sunday at 00:10.
const (
	digestWeekday = time.Sunday
	digestHour    = 0
	digestMinute  = 10
)

// DigestWeeklyJob sends the subscriber job digest every Sunday morning.
type DigestWeeklyJob struct {
	runner  DigestRunner
	logger  *slog.Logger
	stopCh  chan struct{}
	wg      sync.WaitGroup
	running bool
	mu      sync.Mutex
}

// NewDigestWeeklyJob creates a new weekly digest job
func NewDigestWeeklyJob(runner DigestRunner, logger *slog.Logger) *DigestWeeklyJob {
	return &DigestWeeklyJob{
		runner: runner,
		logger: logger,
		stopCh: make(chan struct{}),
	}
}

// Start begins the weekly digest job
func (j *DigestWeeklyJob) Start() {
	j.mu.Lock()
	if j.running {
		j.mu.Unlock()
		return
	}
	j.running = true
	j.mu.Unlock()

	j.wg.Add(1)
	go j.run()
	j.logger.Info("weekly digest job started")
}

// Stop gracefully stops the job
func (j *DigestWeeklyJob) Stop() {
	j.mu.Lock()
	if !j.running {
		j.mu.Unlock()
		return
	}
	j.running = false
	j.mu.Unlock()

	close(j.stopCh)
	j.wg.Wait()
	j.logger.Info("weekly digest job stopped")
}

// run sleeps until the next scheduled slot, fires, and repeats.
func (j *DigestWeeklyJob) run() {
	defer j.wg.Done()

	for {
		timer := time.NewTimer(time.Until(nextRun(time.Now())))
		select {
		case <-timer.C:
			j.fire()
		case <-j.stopCh:
			timer.Stop()
			return
		}
	}
}

func (j *DigestWeeklyJob) fire() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	if err := j.RunOnce(ctx); err != nil {
		j.logger.Error("weekly digest run failed", "error", err)
	}
}

// RunOnce runs a single digest pass (for manual trigger or testing).
func (j *DigestWeeklyJob) RunOnce(ctx context.Context) error {
	result, err := j.runner.Run(ctx)
	if err != nil {
		metrics.RecordDigestRun(false, 0)
		return err
	}
	metrics.RecordDigestRun(true, result.Sent)
	return nil
}

// nextRun returns the next Sunday 00:10 strictly after now.
func nextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), digestHour, digestMinute, 0, 0, now.Location())
	for next.Weekday() != digestWeekday || !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
