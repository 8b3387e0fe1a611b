package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shipmentTrackingJob *ShipmentTrackingJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(shipmentTrackingJob *ShipmentTrackingJob) *JobManager {
	return &JobManager{
		shipmentTrackingJob: shipmentTrackingJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.shipmentTrackingJob.Start(); err != nil {
		return fmt.Errorf("failed to start shipment tracking job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shipmentTrackingJob.Stop()
}
