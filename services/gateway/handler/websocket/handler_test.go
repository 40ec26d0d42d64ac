package websocket

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftcab/swiftcab/internal/pkg/constants"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
	wspkg "github.com/swiftcab/swiftcab/internal/pkg/websocket"
	"github.com/swiftcab/swiftcab/services/gateway/mocks"
)

func newHandler(t *testing.T) (*WebSocketHandler, *mocks.MockDispatchGW, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	manager := wspkg.NewManager(models.JWTConfig{Secret: "test-secret"})
	return NewWebSocketHandler(manager, mockGW), mockGW, ctrl
}

func envelope(t *testing.T, event string, payload interface{}) *models.WSMessage {
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return &models.WSMessage{Event: event, Data: data}
}

func driverClient(id string) *models.WebSocketClient {
	return &models.WebSocketClient{UserID: id, Role: models.RoleDriver}
}

func riderClient(id string) *models.WebSocketClient {
	return &models.WebSocketClient{UserID: id, Role: models.RoleRider}
}

func TestHandleRegister_AddsToRegistry(t *testing.T) {
	h, _, ctrl := newHandler(t)
	defer ctrl.Finish()

	riderID := uuid.NewString()
	client := riderClient(riderID)

	err := h.handleMessage(client, nil, envelope(t, constants.EventRegisterRequester, models.RegisterRequest{ID: riderID}))
	require.NoError(t, err)

	_, ok := h.Manager().Registry().Lookup(riderID, models.RoleRider)
	assert.True(t, ok)
}

func TestHandleRegister_RoleMismatchRejected(t *testing.T) {
	h, _, ctrl := newHandler(t)
	defer ctrl.Finish()

	riderID := uuid.NewString()
	client := riderClient(riderID)

	// A rider token cannot claim a driver slot.
	err := h.handleMessage(client, nil, envelope(t, constants.EventRegisterDriver, models.RegisterRequest{ID: riderID}))
	require.NoError(t, err)

	assert.Equal(t, 0, h.Manager().Registry().Len())
}

func TestHandleAcceptRide_PublishesToBus(t *testing.T) {
	h, mockGW, ctrl := newHandler(t)
	defer ctrl.Finish()

	rideID := uuid.NewString()
	driverID := uuid.NewString()

	mockGW.EXPECT().PublishAcceptance(gomock.Any(), models.AcceptanceRequest{
		RideID:   rideID,
		DriverID: driverID,
	}).Return(nil)

	err := h.handleMessage(driverClient(driverID), nil,
		envelope(t, constants.EventAcceptRide, models.AcceptanceRequest{RideID: rideID}))
	assert.NoError(t, err)
}

func TestHandleAcceptRide_MissingRideID(t *testing.T) {
	h, _, ctrl := newHandler(t)
	defer ctrl.Finish()

	// No publish expectation: validation failure never reaches the bus.
	err := h.handleMessage(driverClient(uuid.NewString()), nil,
		envelope(t, constants.EventAcceptRide, models.AcceptanceRequest{}))
	assert.NoError(t, err)
}

func TestHandleAcceptRide_PublishFailureKeepsConnection(t *testing.T) {
	h, mockGW, ctrl := newHandler(t)
	defer ctrl.Finish()

	mockGW.EXPECT().PublishAcceptance(gomock.Any(), gomock.Any()).
		Return(errors.New("nats: no responders"))

	err := h.handleMessage(driverClient(uuid.NewString()), nil,
		envelope(t, constants.EventAcceptRide, models.AcceptanceRequest{RideID: uuid.NewString()}))
	assert.NoError(t, err, "publish failures are reported to the client, not fatal")
}

func TestHandleDriverLocation_RelayDroppedWhenRiderAbsent(t *testing.T) {
	h, _, ctrl := newHandler(t)
	defer ctrl.Finish()

	tick := models.DriverLocationTick{
		RideID:   uuid.NewString(),
		RiderID:  uuid.NewString(),
		Location: models.Coordinates{Latitude: 12.9, Longitude: 77.6},
	}

	err := h.handleMessage(driverClient(uuid.NewString()), nil, envelope(t, constants.EventDriverLocation, tick))
	assert.NoError(t, err, "relays to absent recipients are silent no-ops")
}

func TestHandleChatMessage_SenderRoleDefaultsFromClient(t *testing.T) {
	h, _, ctrl := newHandler(t)
	defer ctrl.Finish()

	chat := models.ChatMessage{
		RideID:   uuid.NewString(),
		RiderID:  uuid.NewString(),
		DriverID: uuid.NewString(),
		Text:     "on my way",
	}

	// Sender omitted: filled from the connection's role tag.
	err := h.handleMessage(driverClient(chat.DriverID), nil, envelope(t, constants.EventChatMessage, chat))
	assert.NoError(t, err)
}

func TestHandleCallSignal_MissingTarget(t *testing.T) {
	h, _, ctrl := newHandler(t)
	defer ctrl.Finish()

	err := h.handleMessage(riderClient(uuid.NewString()), nil,
		envelope(t, constants.EventCallOffer, models.CallSignal{}))
	assert.NoError(t, err)
}

func TestHandleMessage_UnknownEventKeepsConnection(t *testing.T) {
	h, _, ctrl := newHandler(t)
	defer ctrl.Finish()

	err := h.handleMessage(riderClient(uuid.NewString()), nil,
		&models.WSMessage{Event: "mystery-event", Data: json.RawMessage(`{}`)})
	assert.NoError(t, err)
}

func TestHandleMessage_MalformedPayload(t *testing.T) {
	h, _, ctrl := newHandler(t)
	defer ctrl.Finish()

	err := h.handleMessage(driverClient(uuid.NewString()), nil,
		&models.WSMessage{Event: constants.EventAcceptRide, Data: json.RawMessage(`{broken`)})
	assert.NoError(t, err)
}
