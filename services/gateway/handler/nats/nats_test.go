package nats

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
	wspkg "github.com/swiftcab/swiftcab/internal/pkg/websocket"
)

func newBridge() *GatewayHandler {
	manager := wspkg.NewManager(models.JWTConfig{Secret: "test-secret"})
	return NewGatewayHandler(manager, nil)
}

func TestHandleCandidateSet_AbsentDriversSkipped(t *testing.T) {
	h := newBridge()

	set := models.CandidateSet{
		Ride: models.RideCreatedEvent{
			RideID:       uuid.NewString(),
			RiderID:      uuid.NewString(),
			VehicleClass: models.VehicleBike,
		},
		DriverIDs: []string{uuid.NewString(), uuid.NewString()},
	}
	payload, err := json.Marshal(set)
	require.NoError(t, err)

	// Nobody is connected; the push set must still be acknowledged.
	assert.NoError(t, h.handleCandidateSet(payload))
}

func TestHandleCandidateSet_MalformedIsAcked(t *testing.T) {
	h := newBridge()
	assert.NoError(t, h.handleCandidateSet([]byte("{nope")))
}

func TestHandleGatewayNotify_AbsentRecipientDropped(t *testing.T) {
	h := newBridge()

	notify := models.GatewayNotify{
		RecipientID:   uuid.NewString(),
		RecipientRole: models.RoleRider,
		Event:         "ride-accepted",
		Payload:       models.RideAcceptedPayload{RideID: uuid.NewString(), DriverID: uuid.NewString()},
	}
	payload, err := json.Marshal(notify)
	require.NoError(t, err)

	assert.NoError(t, h.handleGatewayNotify(payload))
}

func TestHandleGatewayNotify_ConnectedRecipient(t *testing.T) {
	h := newBridge()

	riderID := uuid.NewString()
	// A nil connection entry exercises the lookup path without a socket.
	h.manager.Registry().Register(riderID, models.RoleRider, nil)

	notify := models.GatewayNotify{
		RecipientID:   riderID,
		RecipientRole: models.RoleRider,
		Event:         "ride-accepted",
		Payload:       models.RideAcceptedPayload{RideID: uuid.NewString()},
	}
	payload, err := json.Marshal(notify)
	require.NoError(t, err)

	assert.NoError(t, h.handleGatewayNotify(payload))
}
