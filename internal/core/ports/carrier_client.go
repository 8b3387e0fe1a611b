package ports

import (
	"context"

	"greenspace/internal/core/domain/model/carrier"
)

// CarrierClient is the outbound port to the external shipping carrier.
type CarrierClient interface {
	// CreateShipment registers a shipment for the order's materials and
	// returns the carrier's tracking code.
	CreateShipment(ctx context.Context, recipientName, recipientPhone, address string) (string, error)

	// Track reports the carrier's current status for a tracking code.
	Track(ctx context.Context, deliveryCode string) (carrier.Status, error)
}
