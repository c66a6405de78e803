package jobs

import (
	"fmt"
	"log/slog"

	"freight/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	quotationExpiryJob     *QuotationExpiryJob
	vendorRequestExpiryJob *VendorRequestExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	expireQuotationsHandler commands.ExpireQuotationsCommandHandler,
	expireVendorRequestsHandler commands.ExpireVendorRequestsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		quotationExpiryJob:     NewQuotationExpiryJob(expireQuotationsHandler, logger),
		vendorRequestExpiryJob: NewVendorRequestExpiryJob(expireVendorRequestsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.quotationExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start quotation expiry job: %w", err)
	}

	if err := jm.vendorRequestExpiryJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.quotationExpiryJob.Stop()
		return fmt.Errorf("failed to start vendor request expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.quotationExpiryJob.Stop()
	jm.vendorRequestExpiryJob.Stop()
}
