// Package jobs provides scheduled background tasks for the freight
// marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the marketplace.
//
// # Available Jobs
//
// 1. QuotationExpiryJob - Runs every ten minutes to close quotations whose validity window has lapsed
// 2. VendorRequestExpiryJob - Runs every ten minutes to expire fan-out requests vendors did not answer in time
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireQuotationsHandler, expireVendorRequestsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs run on ten-minute schedules, offset by thirty seconds so they
// never contend for the same rows. Expiry is also enforced lazily when an
// aggregate is acted on, so the jobs only keep listings tidy.
//
// # Error Handling
//
// - Job failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
