package rides

import "errors"

// Sentinel errors for the ride ledger. Handlers map these onto HTTP
// status codes and the NATS handlers use them to tell expected outcomes
// apart from infrastructure faults.
var (
	// ErrRideNotFound indicates the ride id does not exist in the ledger.
	ErrRideNotFound = errors.New("ride not found")

	// ErrRideUnavailable indicates an acceptance lost the race: the ride
	// already left the requested state. This is a result, not a fault.
	ErrRideUnavailable = errors.New("ride no longer available")

	// ErrInvalidState indicates an operation was attempted against a
	// ride whose status does not permit it.
	ErrInvalidState = errors.New("ride is not in a valid state for this operation")

	// ErrOTPMismatch indicates the start code did not match. Retryable.
	ErrOTPMismatch = errors.New("start code does not match")

	// ErrValidation indicates a malformed ride request payload.
	ErrValidation = errors.New("invalid ride request")
)
