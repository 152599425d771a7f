package jobs

import (
	"fmt"
	"log/slog"

	"transport/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	importSweepJob *ImportSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	sweepImportsHandler commands.SweepImportsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		importSweepJob: NewImportSweepJob(sweepImportsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.importSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start import sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.importSweepJob.Stop()
}
