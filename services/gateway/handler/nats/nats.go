package nats

import (
	"encoding/json"
	"fmt"

	"github.com/swiftcab/swiftcab/internal/pkg/constants"
	"github.com/swiftcab/swiftcab/internal/pkg/logger"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
	natspkg "github.com/swiftcab/swiftcab/internal/pkg/nats"
	wspkg "github.com/swiftcab/swiftcab/internal/pkg/websocket"
)

// GatewayHandler bridges the durable bus to live WebSocket pushes.
// Delivery to an absent participant is dropped by design: the bus
// guarantees the message reached the gateway, not the phone.
type GatewayHandler struct {
	manager    *wspkg.Manager
	natsClient *natspkg.Client
	consumers  []*natspkg.Consumer
}

// NewGatewayHandler creates a new gateway NATS handler
func NewGatewayHandler(manager *wspkg.Manager, client *natspkg.Client) *GatewayHandler {
	return &GatewayHandler{
		manager:    manager,
		natsClient: client,
		consumers:  make([]*natspkg.Consumer, 0),
	}
}

// InitConsumers provisions and starts the durable consumers for
// gateway-candidate-push and ledger-to-gateway-notify.
func (h *GatewayHandler) InitConsumers() error {
	logger.Info("Initializing JetStream consumers for gateway service")

	pushCfg := natspkg.NewConsumerConfig(
		constants.StreamDispatch, constants.ConsumerGatewayPush, constants.SubjectGatewayCandidatePush)
	c, err := natspkg.NewJetStreamConsumer(h.natsClient, pushCfg, h.handleCandidateSet)
	if err != nil {
		return fmt.Errorf("failed to start gateway-candidate-push consumer: %w", err)
	}
	h.consumers = append(h.consumers, c)

	notifyCfg := natspkg.NewConsumerConfig(
		constants.StreamDispatch, constants.ConsumerGatewayNotify, constants.SubjectLedgerGatewayNotify)
	c, err = natspkg.NewJetStreamConsumer(h.natsClient, notifyCfg, h.handleGatewayNotify)
	if err != nil {
		return fmt.Errorf("failed to start ledger-to-gateway-notify consumer: %w", err)
	}
	h.consumers = append(h.consumers, c)

	return nil
}

// Stop stops all running consumers.
func (h *GatewayHandler) Stop() {
	for _, c := range h.consumers {
		c.Stop()
	}
}

// handleCandidateSet pushes a new-ride-offer to every candidate driver
// currently connected. Absent drivers are skipped silently; the message
// is always acknowledged because a retry would push duplicates to the
// drivers who already got theirs.
func (h *GatewayHandler) handleCandidateSet(msg []byte) error {
	var set models.CandidateSet
	if err := json.Unmarshal(msg, &set); err != nil {
		logger.Error("Dropping unparseable candidate set",
			logger.String("raw_message", string(msg)),
			logger.Err(err))
		return nil
	}

	logger.Info("Pushing ride offer to candidates",
		logger.String("ride_id", set.Ride.RideID),
		logger.Int("candidates", len(set.DriverIDs)))

	for _, driverID := range set.DriverIDs {
		h.manager.Push(driverID, models.RoleDriver, constants.EventNewRideOffer, set.Ride)
	}
	return nil
}

// handleGatewayNotify pushes a single named event to a single named
// recipient, or drops it if they are not connected.
func (h *GatewayHandler) handleGatewayNotify(msg []byte) error {
	var notify models.GatewayNotify
	if err := json.Unmarshal(msg, &notify); err != nil {
		logger.Error("Dropping unparseable gateway notify",
			logger.String("raw_message", string(msg)),
			logger.Err(err))
		return nil
	}

	h.manager.Push(notify.RecipientID, notify.RecipientRole, notify.Event, notify.Payload)
	return nil
}
