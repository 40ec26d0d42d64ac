package models

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// Participant roles on the live connection side.
const (
	RoleRider  = "rider"
	RoleDriver = "driver"
)

// WSMessage is the wire envelope for every WebSocket message.
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage is an error pushed over a WebSocket connection
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient is an authenticated live connection.
type WebSocketClient struct {
	UserID string
	Role   string
	Conn   *websocket.Conn
}

// WebSocketClaims are the JWT claims carried by a connecting client.
type WebSocketClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// RegisterRequest is the payload of a register-as-requester /
// register-as-driver event.
type RegisterRequest struct {
	ID string `json:"id"`
}

// DriverLocationTick is a driver's live location update, relayed to the
// ride's requester. Fire and forget, never durable.
type DriverLocationTick struct {
	RideID   string      `json:"ride_id"`
	RiderID  string      `json:"rider_id"`
	DriverID string      `json:"driver_id"`
	Location Coordinates `json:"location"`
}

// ChatMessage is an in-trip chat message relayed to the counter-party
// named by the sender's role tag.
type ChatMessage struct {
	RideID   string `json:"ride_id"`
	Sender   string `json:"sender"` // rider or driver
	RiderID  string `json:"rider_id"`
	DriverID string `json:"driver_id"`
	Text     string `json:"text"`
}

// RideStartSignal tells the requester the trip has begun.
type RideStartSignal struct {
	RideID  string `json:"ride_id"`
	RiderID string `json:"rider_id"`
}

// CallSignal carries WebRTC signaling (offer, answer, ICE candidate,
// decline, end) between two participants. The gateway relays it to
// ToID without inspecting the SDP/candidate payloads.
type CallSignal struct {
	FromID    string          `json:"from_id"`
	ToID      string          `json:"to_id"`
	Offer     json.RawMessage `json:"offer,omitempty"`
	Answer    json.RawMessage `json:"answer,omitempty"`
	Candidate json.RawMessage `json:"candidate,omitempty"`
}
