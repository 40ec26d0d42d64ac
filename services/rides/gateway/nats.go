package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/swiftcab/swiftcab/internal/pkg/constants"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
	natspkg "github.com/swiftcab/swiftcab/internal/pkg/nats"
	"github.com/swiftcab/swiftcab/services/rides"
)

// RideGW handles NATS publishing for the ride ledger
type RideGW struct {
	natsClient *natspkg.Client
}

// NewRideGW creates a new ride gateway
func NewRideGW(client *natspkg.Client) rides.RideGW {
	return &RideGW{
		natsClient: client,
	}
}

// PublishRideCreated announces a freshly persisted ride on
// driver-candidate-notify so the matcher can assemble its candidate set.
func (g *RideGW) PublishRideCreated(ctx context.Context, event models.RideCreatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal ride created event: %w", err)
	}

	return g.natsClient.PublishWithOptions(natspkg.PublishOptions{
		Subject: constants.SubjectDriverCandidateNotify,
		Data:    data,
		MsgID:   fmt.Sprintf("ride-created:%s", event.RideID),
	})
}

// PublishGatewayNotify publishes a live-push instruction on
// ledger-to-gateway-notify. The msgID keys JetStream de-duplication so
// a retried ledger operation does not double-notify.
func (g *RideGW) PublishGatewayNotify(ctx context.Context, msgID string, notify models.GatewayNotify) error {
	data, err := json.Marshal(notify)
	if err != nil {
		return fmt.Errorf("failed to marshal gateway notify: %w", err)
	}

	return g.natsClient.PublishWithOptions(natspkg.PublishOptions{
		Subject: constants.SubjectLedgerGatewayNotify,
		Data:    data,
		MsgID:   msgID,
	})
}
