package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"greenspace/internal/core/application/usecases/commands"
	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/ports"
	"greenspace/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DefaultPollInterval is how often each tracked shipment is reconciled with
// the carrier unless configured otherwise.
const DefaultPollInterval = 20 * time.Second

// ShipmentTrackingJob polls the carrier for every in-flight shipment and
// reconciles the owning order. Each tracked order gets its own cron entry,
// so orders enter and leave tracking independently.
//
// The job implements ports.ShipmentTracker: the shipment start handler
// registers orders here and terminal transitions cancel them.
type ShipmentTrackingJob struct {
	handler    commands.ReconcileShipmentCommandHandler
	uowFactory ports.UnitOfWorkFactory
	cron       *cron.Cron
	interval   time.Duration
	logger     *slog.Logger

	mu      sync.Mutex
	entries map[kernel.UUID]cron.EntryID
}

// NewShipmentTrackingJob creates the tracking job. A non-positive interval
// falls back to DefaultPollInterval.
func NewShipmentTrackingJob(
	handler commands.ReconcileShipmentCommandHandler,
	uowFactory ports.UnitOfWorkFactory,
	interval time.Duration,
	logger *slog.Logger,
) *ShipmentTrackingJob {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &ShipmentTrackingJob{
		handler:    handler,
		uowFactory: uowFactory,
		cron:       cron.New(),
		interval:   interval,
		logger:     logger.With("component", "shipment_tracking_job"),
		entries:    make(map[kernel.UUID]cron.EntryID),
	}
}

// Start begins the scheduler and re-registers every order that was on its
// shipping leg when the process last stopped. Without the seed a restart
// would silently orphan in-flight shipments.
func (j *ShipmentTrackingJob) Start() error {
	ctx := context.Background()

	inShipping, err := j.uowFactory.Create().OrderRepository().GetAllInShipping(ctx)
	if err != nil {
		return fmt.Errorf("failed to load in-flight shipments: %w", err)
	}

	j.cron.Start()

	for _, serviceOrder := range inShipping {
		if trackErr := j.Track(serviceOrder.ID()); trackErr != nil {
			j.Stop()
			return fmt.Errorf("failed to resume tracking order %s: %w", serviceOrder.ID(), trackErr)
		}
	}

	j.logger.InfoContext(ctx, "Shipment tracking job started",
		"interval", j.interval.String(),
		"resumed", len(inShipping))
	return nil
}

// Stop stops the scheduler and drops all tracking entries.
func (j *ShipmentTrackingJob) Stop() {
	j.cron.Stop()

	j.mu.Lock()
	j.entries = make(map[kernel.UUID]cron.EntryID)
	j.mu.Unlock()

	j.logger.InfoContext(context.Background(), "Shipment tracking job stopped")
}

// Track registers an order for periodic carrier reconciliation.
// Tracking an already tracked order is a no-op.
func (j *ShipmentTrackingJob) Track(serviceOrderID kernel.UUID) error {
	if err := serviceOrderID.Validate(); err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if _, tracked := j.entries[serviceOrderID]; tracked {
		return nil
	}

	entryID, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		j.reconcile(serviceOrderID)
	})
	if err != nil {
		return err
	}

	j.entries[serviceOrderID] = entryID
	j.logger.InfoContext(context.Background(), "Started tracking shipment", "order_id", serviceOrderID.String())
	return nil
}

// Cancel stops polling for the order. Cancelling an untracked order is a
// no-op.
func (j *ShipmentTrackingJob) Cancel(serviceOrderID kernel.UUID) {
	j.mu.Lock()
	defer j.mu.Unlock()

	entryID, tracked := j.entries[serviceOrderID]
	if !tracked {
		return
	}

	j.cron.Remove(entryID)
	delete(j.entries, serviceOrderID)
	j.logger.InfoContext(context.Background(), "Stopped tracking shipment", "order_id", serviceOrderID.String())
}

// IsTracking reports whether the order currently has a polling entry.
func (j *ShipmentTrackingJob) IsTracking(serviceOrderID kernel.UUID) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	_, tracked := j.entries[serviceOrderID]
	return tracked
}

// reconcile runs one reconciliation tick for the order. Transient carrier
// failures are retried on the next tick; a completed shipment removes its
// own entry.
func (j *ShipmentTrackingJob) reconcile(serviceOrderID kernel.UUID) {
	ctx := context.Background()

	cmd, err := commands.NewReconcileShipmentCommand(serviceOrderID)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to build reconciliation command",
			"order_id", serviceOrderID.String(), "error", err)
		j.Cancel(serviceOrderID)
		return
	}

	err = j.handler.Handle(ctx, cmd)
	switch {
	case err == nil:
		return
	case errors.Is(err, commands.ErrTrackingComplete):
		j.Cancel(serviceOrderID)
	case errors.Is(err, errs.ErrExternalServiceFailure):
		j.logger.WarnContext(ctx, "Carrier unavailable, will retry",
			"order_id", serviceOrderID.String(), "error", err)
	default:
		j.logger.ErrorContext(ctx, "Shipment reconciliation failed",
			"order_id", serviceOrderID.String(), "error", err)
	}
}
