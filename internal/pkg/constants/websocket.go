package constants

// WebSocket event types. Names are part of the client contract.
const (
	// Common
	EventError = "error"

	// Presence registration
	EventRegisterRequester = "register-as-requester"
	EventRegisterDriver    = "register-as-driver"
	EventRegistered        = "registered"

	// Dispatch
	EventNewRideOffer    = "new-ride-offer"
	EventAcceptRide      = "accept-ride"
	EventRideAccepted    = "ride-accepted"
	EventRideUnavailable = "ride-unavailable"

	// Ephemeral in-trip relay
	EventRideStart      = "ride-start"
	EventDriverLocation = "driver-location"
	EventChatMessage    = "chat-message"

	// Call signaling relay
	EventCallOffer    = "call-offer"
	EventCallAnswer   = "call-answer"
	EventICECandidate = "ice-candidate"
	EventCallDeclined = "call-declined"
	EventCallEnded    = "call-ended"
	EventIncomingCall = "incoming-call"
	EventCallAnswered = "call-answered"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorUnauthorized     = "unauthorized"
	ErrorNotRegistered    = "not_registered"
	ErrorInternalError    = "internal_error"
	ErrorPublishFailed    = "publish_failed"
)
