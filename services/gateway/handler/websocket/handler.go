package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/swiftcab/swiftcab/internal/pkg/constants"
	"github.com/swiftcab/swiftcab/internal/pkg/logger"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
	wspkg "github.com/swiftcab/swiftcab/internal/pkg/websocket"
	gatewaysvc "github.com/swiftcab/swiftcab/services/gateway"
)

// WebSocketHandler runs the live connection loop for the dispatch
// gateway: presence registration, acceptance forwarding, and the
// ephemeral relays. Everything here is fire and forget; the only
// durable step is the accept-ride publish.
type WebSocketHandler struct {
	manager    *wspkg.Manager
	dispatchGW gatewaysvc.DispatchGW
}

// NewWebSocketHandler creates a new gateway WebSocket handler
func NewWebSocketHandler(manager *wspkg.Manager, dispatchGW gatewaysvc.DispatchGW) *WebSocketHandler {
	return &WebSocketHandler{
		manager:    manager,
		dispatchGW: dispatchGW,
	}
}

// Manager exposes the connection manager, used by the NATS bridge to
// push bus-driven events to live participants.
func (h *WebSocketHandler) Manager() *wspkg.Manager {
	return h.manager
}

// HandleWebSocket upgrades the connection and runs the message loop
// until the client disconnects.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

func (h *WebSocketHandler) handleClient(client *models.WebSocketClient, conn *websocket.Conn) error {
	logger.Info("WebSocket client connected",
		logger.String("user_id", client.UserID),
		logger.String("role", client.Role))

	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Info("WebSocket client disconnected",
					logger.String("user_id", client.UserID))
				return nil
			}
			logger.Warn("Error reading websocket message",
				logger.String("user_id", client.UserID),
				logger.Err(err))
			return nil
		}

		if err := h.handleMessage(client, conn, &msg); err != nil {
			logger.Error("Error handling message",
				logger.String("user_id", client.UserID),
				logger.String("event", msg.Event),
				logger.Err(err))
		}
	}
}

// handleMessage dispatches one inbound envelope. Handler errors never
// break the connection; clients are told through error events instead.
func (h *WebSocketHandler) handleMessage(client *models.WebSocketClient, conn *websocket.Conn, msg *models.WSMessage) error {
	switch msg.Event {
	case constants.EventRegisterRequester:
		return h.handleRegister(client, conn, msg.Data, models.RoleRider)
	case constants.EventRegisterDriver:
		return h.handleRegister(client, conn, msg.Data, models.RoleDriver)
	case constants.EventAcceptRide:
		return h.handleAcceptRide(client, conn, msg.Data)
	case constants.EventDriverLocation:
		return h.handleDriverLocation(client, conn, msg.Data)
	case constants.EventChatMessage:
		return h.handleChatMessage(client, conn, msg.Data)
	case constants.EventRideStart:
		return h.handleRideStart(client, conn, msg.Data)
	case constants.EventCallOffer:
		return h.handleCallSignal(client, conn, msg.Data, constants.EventIncomingCall)
	case constants.EventCallAnswer:
		return h.handleCallSignal(client, conn, msg.Data, constants.EventCallAnswered)
	case constants.EventICECandidate:
		return h.handleCallSignal(client, conn, msg.Data, constants.EventICECandidate)
	case constants.EventCallDeclined:
		return h.handleCallSignal(client, conn, msg.Data, constants.EventCallDeclined)
	case constants.EventCallEnded:
		return h.handleCallSignal(client, conn, msg.Data, constants.EventCallEnded)
	default:
		err := fmt.Errorf("unknown event type: %s", msg.Event)
		return h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, err.Error())
	}
}

// handleRegister binds a participant id to this connection under the
// given role. Re-registration overwrites: last registration wins.
func (h *WebSocketHandler) handleRegister(client *models.WebSocketClient, conn *websocket.Conn, data json.RawMessage, role string) error {
	var req models.RegisterRequest
	if len(data) > 0 {
		if err := json.Unmarshal(data, &req); err != nil {
			return h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "invalid registration payload")
		}
	}

	id := req.ID
	if id == "" {
		id = client.UserID
	}
	if client.Role != role {
		return h.manager.SendErrorMessage(conn, constants.ErrorUnauthorized,
			fmt.Sprintf("token role %q cannot register as %s", client.Role, role))
	}

	h.manager.Registry().Register(id, role, conn)
	client.UserID = id

	logger.Info("Participant registered",
		logger.String("participant_id", id),
		logger.String("role", role))

	return h.manager.SendMessage(conn, constants.EventRegistered, models.RegisterRequest{ID: id})
}

// handleAcceptRide forwards a driver's accept action verbatim onto the
// durable acceptance queue.
func (h *WebSocketHandler) handleAcceptRide(client *models.WebSocketClient, conn *websocket.Conn, data json.RawMessage) error {
	var req models.AcceptanceRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "invalid acceptance payload")
	}
	if req.DriverID == "" {
		req.DriverID = client.UserID
	}
	if req.RideID == "" {
		return h.manager.SendErrorMessage(conn, constants.ErrorValidationFailed, "ride_id is required")
	}

	if err := h.dispatchGW.PublishAcceptance(context.Background(), req); err != nil {
		logger.Error("Failed to publish acceptance",
			logger.String("ride_id", req.RideID),
			logger.String("driver_id", req.DriverID),
			logger.Err(err))
		return h.manager.SendErrorMessage(conn, constants.ErrorPublishFailed, "could not submit acceptance")
	}
	return nil
}

// handleDriverLocation relays a location tick to the ride's requester.
// Dropped silently if the rider is not connected.
func (h *WebSocketHandler) handleDriverLocation(client *models.WebSocketClient, conn *websocket.Conn, data json.RawMessage) error {
	var tick models.DriverLocationTick
	if err := json.Unmarshal(data, &tick); err != nil {
		return h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "invalid location payload")
	}
	if tick.DriverID == "" {
		tick.DriverID = client.UserID
	}

	h.manager.Push(tick.RiderID, models.RoleRider, constants.EventDriverLocation, tick)
	return nil
}

// handleChatMessage relays chat to the counter-party named by the
// sender's role tag.
func (h *WebSocketHandler) handleChatMessage(client *models.WebSocketClient, conn *websocket.Conn, data json.RawMessage) error {
	var chat models.ChatMessage
	if err := json.Unmarshal(data, &chat); err != nil {
		return h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "invalid chat payload")
	}
	if chat.Sender == "" {
		chat.Sender = client.Role
	}

	switch chat.Sender {
	case models.RoleRider:
		h.manager.Push(chat.DriverID, models.RoleDriver, constants.EventChatMessage, chat)
	case models.RoleDriver:
		h.manager.Push(chat.RiderID, models.RoleRider, constants.EventChatMessage, chat)
	default:
		return h.manager.SendErrorMessage(conn, constants.ErrorValidationFailed,
			fmt.Sprintf("unknown sender role %q", chat.Sender))
	}
	return nil
}

// handleRideStart relays the trip-begun signal to the requester.
func (h *WebSocketHandler) handleRideStart(client *models.WebSocketClient, conn *websocket.Conn, data json.RawMessage) error {
	var sig models.RideStartSignal
	if err := json.Unmarshal(data, &sig); err != nil {
		return h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "invalid ride start payload")
	}

	h.manager.Push(sig.RiderID, models.RoleRider, constants.EventRideStart, sig)
	return nil
}

// handleCallSignal relays call signaling to the target participant.
// Targets are bare ids, so resolution tries the rider registry first.
func (h *WebSocketHandler) handleCallSignal(client *models.WebSocketClient, conn *websocket.Conn, data json.RawMessage, outEvent string) error {
	var sig models.CallSignal
	if err := json.Unmarshal(data, &sig); err != nil {
		return h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "invalid call signal payload")
	}
	if sig.FromID == "" {
		sig.FromID = client.UserID
	}
	if sig.ToID == "" {
		return h.manager.SendErrorMessage(conn, constants.ErrorValidationFailed, "to_id is required")
	}

	h.manager.PushAny(sig.ToID, outEvent, sig)
	return nil
}
