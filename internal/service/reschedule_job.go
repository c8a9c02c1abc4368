package service

import (
	"context"
	"sync"
	"time"

	"github.com/hexaaagon/tugascollecter/internal/logger"
)

type rescheduleJob struct {
	scheduler Rescheduler
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRescheduleJob creates a rescheduleJob that rebuilds reminder cascades
// on a ticker. The job is idle until Start is called.
func NewRescheduleJob(scheduler Rescheduler, log *logger.Logger) RescheduleJob {
	return &rescheduleJob{scheduler: scheduler, logger: log}
}

// Start implements RescheduleJob. It stops any previously running job, runs
// one immediate reschedule pass, then launches a background goroutine that
// repeats the pass every interval. If interval is zero or negative it
// defaults to 15 minutes. The goroutine exits when ctx is cancelled or Stop
// is called.
func (j *rescheduleJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		j.run(jobCtx)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.run(jobCtx)
			}
		}
	}()
}

func (j *rescheduleJob) run(ctx context.Context) {
	if err := j.scheduler.RescheduleAllHomeworkNotifications(ctx); err != nil {
		j.logger.Err(err).Msg("background reschedule pass failed")
	}
}

// Stop implements RescheduleJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call
// when the job is not running (no-op in that case).
func (j *rescheduleJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
