package jobs

import (
	"context"
	"log/slog"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// VendorRequestExpiryJob expires fan-out requests vendors did not answer
// within the response window. Runs every ten minutes.
type VendorRequestExpiryJob struct {
	handler commands.ExpireVendorRequestsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewVendorRequestExpiryJob creates a job that expires unanswered vendor
// requests.
func NewVendorRequestExpiryJob(
	handler commands.ExpireVendorRequestsCommandHandler,
	logger *slog.Logger,
) *VendorRequestExpiryJob {
	return &VendorRequestExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "vendor_request_expiry_job"),
	}
}

// Start begins the vendor request expiry job.
func (j *VendorRequestExpiryJob) Start() error {
	_, err := j.cron.AddFunc("30 */10 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireVendorRequestsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Vendor request expiry job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Vendor request expiry job started (running every ten minutes)")
	return nil
}

// Stop stops the vendor request expiry job.
func (j *VendorRequestExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Vendor request expiry job stopped")
}
