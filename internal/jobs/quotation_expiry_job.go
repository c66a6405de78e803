package jobs

import (
	"context"
	"log/slog"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// QuotationExpiryJob closes quotations whose validity window has lapsed.
// Runs every ten minutes; quotations are also checked lazily when acted
// on, so the job only keeps listings tidy.
type QuotationExpiryJob struct {
	handler commands.ExpireQuotationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQuotationExpiryJob creates a job that expires stale quotations.
func NewQuotationExpiryJob(handler commands.ExpireQuotationsCommandHandler, logger *slog.Logger) *QuotationExpiryJob {
	return &QuotationExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "quotation_expiry_job"),
	}
}

// Start begins the quotation expiry job.
func (j *QuotationExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 */10 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireQuotationsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Quotation expiry job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Quotation expiry job started (running every ten minutes)")
	return nil
}

// Stop stops the quotation expiry job.
func (j *QuotationExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Quotation expiry job stopped")
}
