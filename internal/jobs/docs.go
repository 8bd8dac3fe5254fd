// Package jobs provides scheduled background tasks for the marketplace
// order workflow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the workflow needs.
//
// # Available Jobs
//
// 1. StaleOrderJob - Periodically cancels pending orders that were never
// confirmed by their seller within the configured window.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, maxAge, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The stale-order job logs failures and retries on the next tick; one bad
// sweep never stops the schedule.
package jobs
