package workers

import (
	"context"
	"time"

	"github.com/hexaaagon/tugascollecter/internal/service"
)

// rescheduleWorker adapts the background reschedule job to the Worker
// contract. The context bounds the job's lifetime: cancelling it stops the
// reschedule loop.
type rescheduleWorker struct {
	ctx      context.Context
	job      service.RescheduleJob
	interval time.Duration
}

func NewRescheduleWorker(ctx context.Context, job service.RescheduleJob, interval time.Duration) Worker {
	return &rescheduleWorker{ctx: ctx, job: job, interval: interval}
}

func (w *rescheduleWorker) Run() {
	w.job.Start(w.ctx, w.interval)
}
