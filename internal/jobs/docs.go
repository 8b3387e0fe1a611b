// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. ShipmentTrackingJob - Polls the carrier for each in-flight shipment and
// reconciles the order status with the carrier's answer.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(shipmentTrackingJob, logger)
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
// Shipment tracking runs per order: starting a shipment registers the order
// with the job, and each registered order is polled on its own interval
// (20 seconds by default). Polling stops when the carrier reports a final
// status, when the order leaves its shipping leg, or when tracking is
// cancelled.
//
// # Error Handling
//
// - Transient carrier failures are logged and retried on the next tick
// - A completed shipment removes its own polling entry
// - Failed job starts will stop any already running jobs
package jobs
