package jobs

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/workhive/api/internal/service"
)

type stubRunner struct {
	result *service.DigestResult
	err    error
	calls  int
}

func (s *stubRunner) Run(ctx context.Context) (*service.DigestResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ===========================================================================
// RunOnce
// ===========================================================================

func TestRunOnce_Success(t *testing.T) {
	runner := &stubRunner{result: &service.DigestResult{Subscribers: 2, Sent: 2}}
	job := NewDigestWeeklyJob(runner, discardLogger())

	if err := job.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}
	if runner.calls != 1 {
		t.Errorf("expected 1 run, got %d", runner.calls)
	}
}

func TestRunOnce_RunnerError(t *testing.T) {
	runner := &stubRunner{err: errors.New("smtp down")}
	job := NewDigestWeeklyJob(runner, discardLogger())

	if err := job.RunOnce(context.Background()); err == nil {
		t.Fatal("expected error from RunOnce")
	}
}

// ===========================================================================
// Scheduling
// ===========================================================================

func TestNextRun_MidWeek(t *testing.T) {
	// Wednesday 2026-01-07 15:00 -> Sunday 2026-01-11 00:10
	now := time.Date(2026, 1, 7, 15, 0, 0, 0, time.UTC)
	next := nextRun(now)

	want := time.Date(2026, 1, 11, 0, 10, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("expected %v, got %v", want, next)
	}
}

func TestNextRun_SundayBeforeSlot(t *testing.T) {
	now := time.Date(2026, 1, 11, 0, 5, 0, 0, time.UTC)
	next := nextRun(now)

	want := time.Date(2026, 1, 11, 0, 10, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("expected %v, got %v", want, next)
	}
}

func TestNextRun_SundayAfterSlot(t *testing.T) {
	// Already past 00:10 on Sunday, next run is the following Sunday.
	now := time.Date(2026, 1, 11, 0, 30, 0, 0, time.UTC)
	next := nextRun(now)

	want := time.Date(2026, 1, 18, 0, 10, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("expected %v, got %v", want, next)
	}
}

func TestStartStop_Idempotent(t *testing.T) {
	runner := &stubRunner{result: &service.DigestResult{}}
	job := NewDigestWeeklyJob(runner, discardLogger())

	job.Start()
	job.Start()
	job.Stop()
	job.Stop()
}
