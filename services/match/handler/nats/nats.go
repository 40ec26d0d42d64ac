package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/swiftcab/swiftcab/internal/pkg/constants"
	"github.com/swiftcab/swiftcab/internal/pkg/logger"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
	natspkg "github.com/swiftcab/swiftcab/internal/pkg/nats"
	"github.com/swiftcab/swiftcab/services/match"
)

// MatchHandler consumes ride announcements for the proximity matcher.
type MatchHandler struct {
	matchUC    match.MatchUC
	natsClient *natspkg.Client
	consumers  []*natspkg.Consumer
}

// NewMatchHandler creates a new match NATS handler
func NewMatchHandler(matchUC match.MatchUC, client *natspkg.Client) *MatchHandler {
	return &MatchHandler{
		matchUC:    matchUC,
		natsClient: client,
		consumers:  make([]*natspkg.Consumer, 0),
	}
}

// InitConsumers provisions and starts the durable consumer for
// driver-candidate-notify.
func (h *MatchHandler) InitConsumers() error {
	logger.Info("Initializing JetStream consumers for match service")

	cfg := natspkg.NewConsumerConfig(
		constants.StreamRide, constants.ConsumerCandidateSets, constants.SubjectDriverCandidateNotify)
	c, err := natspkg.NewJetStreamConsumer(h.natsClient, cfg, h.handleRideCreated)
	if err != nil {
		return fmt.Errorf("failed to start driver-candidate-notify consumer: %w", err)
	}
	h.consumers = append(h.consumers, c)

	return nil
}

// Stop stops all running consumers.
func (h *MatchHandler) Stop() {
	for _, c := range h.consumers {
		c.Stop()
	}
}

// handleRideCreated runs the matching pass for a freshly created ride.
// Storage errors propagate for redelivery; garbage payloads are
// acknowledged and dropped.
func (h *MatchHandler) handleRideCreated(msg []byte) error {
	var event models.RideCreatedEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		logger.Error("Dropping unparseable ride created event",
			logger.String("raw_message", string(msg)),
			logger.Err(err))
		return nil
	}

	return h.matchUC.HandleRideCreated(context.Background(), event)
}
