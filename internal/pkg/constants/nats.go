package constants

// NATS subjects. These names are the fixed external queue contract and
// must not change between deployments.
const (
	// Rider-facing service -> Ride Ledger
	SubjectRideRequests = "ride-requests"

	// Ride Ledger -> Proximity Matcher
	SubjectDriverCandidateNotify = "driver-candidate-notify"

	// Proximity Matcher -> Dispatch Gateway
	SubjectGatewayCandidatePush = "gateway-candidate-push"

	// Dispatch Gateway (driver action) -> Ride Ledger
	SubjectRideAcceptance = "ride-acceptance"

	// Ride Ledger -> Dispatch Gateway
	SubjectLedgerGatewayNotify = "ledger-to-gateway-notify"
)

// JetStream stream names
const (
	StreamRide     = "RIDE_STREAM"
	StreamDispatch = "DISPATCH_STREAM"
)

// Durable consumer names
const (
	ConsumerRideRequests   = "rides_ride_requests"
	ConsumerRideAcceptance = "rides_ride_acceptance"
	ConsumerCandidateSets  = "match_candidate_notify"
	ConsumerGatewayPush    = "gateway_candidate_push"
	ConsumerGatewayNotify  = "gateway_ledger_notify"
)
