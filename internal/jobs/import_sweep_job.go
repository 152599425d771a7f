package jobs

import (
	"context"
	"log/slog"

	"transport/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// importSweepSchedule fires at the top of every hour.
const importSweepSchedule = "0 0 * * * *"

// ImportSweepJob periodically creates transport orders for import
// shipments that are still open long past their ETA.
type ImportSweepJob struct {
	handler commands.SweepImportsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewImportSweepJob creates the hourly import sweep.
func NewImportSweepJob(handler commands.SweepImportsCommandHandler, logger *slog.Logger) *ImportSweepJob {
	return &ImportSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "import_sweep_job"),
	}
}

// Start schedules the sweep to run at the top of every hour.
func (j *ImportSweepJob) Start() error {
	_, err := j.cron.AddFunc(importSweepSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewSweepImportsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Import sweep job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Import sweep job started (running hourly)")
	return nil
}

// Stop stops the import sweep job.
func (j *ImportSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Import sweep job stopped")
}
