// Package jobs provides the scheduled background tasks of the transport
// service, built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ImportSweepJob - Runs hourly to create transport orders for import
// shipments that stayed open more than ten days past their ETA.
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(sweepImportsHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweep skips imports that carry no file number; any other failure
// aborts the run and is logged. The next scheduled run starts over from
// the full overdue set, and order creation is idempotent, so an aborted
// run loses no work.
package jobs
