package jobs

import (
	"context"
	"log/slog"
	"time"

	"mangoshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultBacklogSchedule runs the backlog report at the start of every minute.
const DefaultBacklogSchedule = "0 * * * * *"

const backlogRunTimeout = 30 * time.Second

// BacklogQueryHandler reads the processing order counts.
type BacklogQueryHandler interface {
	Handle(ctx context.Context, query queries.GetOrderBacklogQuery) (queries.GetOrderBacklogQueryResponse, error)
}

// BacklogRecorder receives the count of one delivery method after each run.
type BacklogRecorder interface {
	RecordBacklog(method string, count int64)
}

// OrderBacklogJob reports how many paid orders are waiting to ship.
type OrderBacklogJob struct {
	handler  BacklogQueryHandler
	recorder BacklogRecorder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderBacklogJob creates the job. An empty schedule means DefaultBacklogSchedule and
// a nil recorder only logs.
func NewOrderBacklogJob(
	handler BacklogQueryHandler,
	recorder BacklogRecorder,
	schedule string,
	logger *slog.Logger,
) *OrderBacklogJob {
	if schedule == "" {
		schedule = DefaultBacklogSchedule
	}
	return &OrderBacklogJob{
		handler:  handler,
		recorder: recorder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_backlog_job"),
	}
}

// Start schedules the job. An invalid schedule is returned as an error.
func (j *OrderBacklogJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog job started", "schedule", j.schedule)
	return nil
}

// Run performs one report.
func (j *OrderBacklogJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), backlogRunTimeout)
	defer cancel()

	backlog, err := j.handler.Handle(ctx, queries.NewGetOrderBacklogQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order backlog job failed", "error", err)
		return
	}

	attrs := make([]any, 0, 2*len(backlog.Entries)+2)
	for _, entry := range backlog.Entries {
		if j.recorder != nil {
			j.recorder.RecordBacklog(entry.DeliveryMethod, entry.Count)
		}
		attrs = append(attrs, entry.DeliveryMethod, entry.Count)
	}
	attrs = append(attrs, "total", backlog.Total)
	j.logger.InfoContext(ctx, "Order backlog", attrs...)
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *OrderBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order backlog job stopped")
}
