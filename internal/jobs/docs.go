// Package jobs provides scheduled background tasks for the shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderBacklogJob - counts processing orders per delivery method, logs the counts and
// refreshes the backlog gauge. Runs every minute unless another schedule is configured.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(backlogHandler, appMetrics, "0 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six field cron expressions with a leading seconds field.
//
// # Error Handling
//
// A failed run is logged and the next run happens on schedule. An invalid schedule is
// reported by StartAll.
package jobs
