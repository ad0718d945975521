// Package jobs provides scheduled background tasks for the logistics system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the shipment tracking service.
//
// # Available Jobs
//
// 1. OverdueShipmentsJob - Runs every five minutes to flag shipments still in
// transit past their expected arrival date
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(overdueHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The overdue watch logs query failures and keeps running; overdue shipments
// themselves are reported as warnings, not errors.
package jobs
