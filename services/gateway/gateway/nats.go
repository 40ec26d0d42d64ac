package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/swiftcab/swiftcab/internal/pkg/constants"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
	natspkg "github.com/swiftcab/swiftcab/internal/pkg/nats"
	gatewaysvc "github.com/swiftcab/swiftcab/services/gateway"
)

// DispatchGW handles NATS publishing for the dispatch gateway
type DispatchGW struct {
	natsClient *natspkg.Client
}

// NewDispatchGW creates a new dispatch gateway
func NewDispatchGW(client *natspkg.Client) gatewaysvc.DispatchGW {
	return &DispatchGW{
		natsClient: client,
	}
}

// PublishAcceptance forwards a driver's accept action onto the durable
// ride-acceptance queue. The gateway is transport only: no arbitration
// happens here, the ledger decides the winner.
func (g *DispatchGW) PublishAcceptance(ctx context.Context, req models.AcceptanceRequest) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal acceptance request: %w", err)
	}

	return g.natsClient.PublishWithOptions(natspkg.PublishOptions{
		Subject: constants.SubjectRideAcceptance,
		Data:    data,
		MsgID:   fmt.Sprintf("acceptance:%s:%s", req.RideID, req.DriverID),
	})
}
