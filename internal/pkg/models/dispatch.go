package models

// CandidateSet is published once per ride on gateway-candidate-push:
// the drivers judged reachable and within matching radius at filter
// time, plus the ride summary the gateway pushes to each of them. No
// retry state is kept for it.
type CandidateSet struct {
	Ride      RideCreatedEvent `json:"ride"`
	DriverIDs []string         `json:"driver_ids"`
}

// GatewayNotify is the ledger-to-gateway-notify payload: a live push
// the gateway should attempt for a single recipient. Recipients absent
// from the presence registry are dropped.
type GatewayNotify struct {
	RecipientID   string      `json:"recipient_id"`
	RecipientRole string      `json:"recipient_role"`
	Event         string      `json:"event"`
	Payload       interface{} `json:"payload"`
}

// RideAcceptedPayload is the payload of a ride-accepted push.
type RideAcceptedPayload struct {
	RideID   string `json:"ride_id"`
	DriverID string `json:"driver_id"`
}

// RideUnavailablePayload notifies a losing driver that a ride is gone.
type RideUnavailablePayload struct {
	RideID string `json:"ride_id"`
}
