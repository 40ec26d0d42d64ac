package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/swiftcab/swiftcab/internal/pkg/constants"
	"github.com/swiftcab/swiftcab/internal/pkg/logger"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
	natspkg "github.com/swiftcab/swiftcab/internal/pkg/nats"
	"github.com/swiftcab/swiftcab/services/rides"
)

// RidesHandler consumes the ride ledger's durable subjects.
type RidesHandler struct {
	rideUC     rides.RideUC
	natsClient *natspkg.Client
	consumers  []*natspkg.Consumer
}

// NewRidesHandler creates a new rides NATS handler
func NewRidesHandler(rideUC rides.RideUC, client *natspkg.Client) *RidesHandler {
	return &RidesHandler{
		rideUC:     rideUC,
		natsClient: client,
		consumers:  make([]*natspkg.Consumer, 0),
	}
}

// InitConsumers provisions and starts the durable consumers for
// ride-requests and ride-acceptance.
func (h *RidesHandler) InitConsumers() error {
	logger.Info("Initializing JetStream consumers for rides service")

	requestsCfg := natspkg.NewConsumerConfig(
		constants.StreamRide, constants.ConsumerRideRequests, constants.SubjectRideRequests)
	c, err := natspkg.NewJetStreamConsumer(h.natsClient, requestsCfg, h.handleRideRequest)
	if err != nil {
		return fmt.Errorf("failed to start ride-requests consumer: %w", err)
	}
	h.consumers = append(h.consumers, c)

	acceptanceCfg := natspkg.NewConsumerConfig(
		constants.StreamRide, constants.ConsumerRideAcceptance, constants.SubjectRideAcceptance)
	c, err = natspkg.NewJetStreamConsumer(h.natsClient, acceptanceCfg, h.handleRideAcceptance)
	if err != nil {
		return fmt.Errorf("failed to start ride-acceptance consumer: %w", err)
	}
	h.consumers = append(h.consumers, c)

	return nil
}

// Stop stops all running consumers.
func (h *RidesHandler) Stop() {
	for _, c := range h.consumers {
		c.Stop()
	}
}

// handleRideRequest processes a ride request into a ledger entry. A
// malformed payload is acknowledged and dropped: redelivering it can
// never succeed. Validation failures are terminal for the same reason.
func (h *RidesHandler) handleRideRequest(msg []byte) error {
	var req models.RideRequest
	if err := json.Unmarshal(msg, &req); err != nil {
		logger.Error("Dropping unparseable ride request",
			logger.String("raw_message", string(msg)),
			logger.Err(err))
		return nil
	}

	_, err := h.rideUC.CreateRide(context.Background(), req)
	if err != nil {
		if errors.Is(err, rides.ErrValidation) {
			logger.Warn("Dropping invalid ride request",
				logger.String("rider_id", req.RiderID),
				logger.Err(err))
			return nil
		}
		return err
	}
	return nil
}

// handleRideAcceptance processes a driver's acceptance. Conflicts are
// handled inside the usecase (losing driver is notified); only
// infrastructure failures propagate for redelivery.
func (h *RidesHandler) handleRideAcceptance(msg []byte) error {
	var req models.AcceptanceRequest
	if err := json.Unmarshal(msg, &req); err != nil {
		logger.Error("Dropping unparseable acceptance request",
			logger.String("raw_message", string(msg)),
			logger.Err(err))
		return nil
	}

	if err := h.rideUC.HandleAcceptance(context.Background(), req); err != nil {
		if errors.Is(err, rides.ErrRideNotFound) || errors.Is(err, rides.ErrValidation) {
			logger.Warn("Dropping acceptance for unknown or invalid ride",
				logger.String("ride_id", req.RideID),
				logger.String("driver_id", req.DriverID),
				logger.Err(err))
			return nil
		}
		return err
	}
	return nil
}
