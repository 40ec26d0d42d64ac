package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the lifecycle status of a ride. Transitions are
// monotonic: requested -> accepted -> started -> completed.
type RideStatus string

const (
	RideStatusRequested RideStatus = "requested"
	RideStatusAccepted  RideStatus = "accepted"
	RideStatusStarted   RideStatus = "started"
	RideStatusCompleted RideStatus = "completed"
)

// VehicleClass is the requested vehicle category for a ride.
type VehicleClass string

const (
	VehicleBike VehicleClass = "bike"
	VehicleAuto VehicleClass = "auto"
	VehicleCab  VehicleClass = "cab"
)

// Coordinates is a latitude/longitude pair
type Coordinates struct {
	Latitude  float64 `json:"lat" db:"latitude"`
	Longitude float64 `json:"lng" db:"longitude"`
}

// Ride is the ledger record for a single trip. Rides are never deleted;
// the driver is unset exactly while the status is requested.
type Ride struct {
	RideID       uuid.UUID    `json:"ride_id" db:"ride_id"`
	RiderID      uuid.UUID    `json:"rider_id" db:"rider_id"`
	DriverID     *uuid.UUID   `json:"driver_id,omitempty" db:"driver_id"`
	Pickup       string       `json:"pickup" db:"pickup"`
	Destination  string       `json:"destination" db:"destination"`
	DistanceKm   float64      `json:"distance_km" db:"distance_km"`
	DurationMin  float64      `json:"duration_min" db:"duration_min"`
	Fare         float64      `json:"fare" db:"fare"`
	VehicleClass VehicleClass `json:"vehicle_class" db:"vehicle_class"`
	Coordinates  Coordinates  `json:"coordinates"`
	OTP          int          `json:"otp" db:"otp"`
	Status       RideStatus   `json:"status" db:"status"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
}

// RideRequest is the payload consumed from the ride-requests queue.
type RideRequest struct {
	RiderID      string       `json:"rider_id"`
	Pickup       string       `json:"pickup"`
	Destination  string       `json:"destination"`
	DistanceKm   float64      `json:"distance_km"`
	DurationMin  float64      `json:"duration_min"`
	Fare         float64      `json:"fare"`
	VehicleClass VehicleClass `json:"vehicle_class"`
	Coordinates  Coordinates  `json:"coordinates"`
}

// RideCreatedEvent is published on driver-candidate-notify after a ride
// is persisted. It carries everything the matcher and, later, the
// drivers' ride offers need.
type RideCreatedEvent struct {
	RideID       string       `json:"ride_id"`
	RiderID      string       `json:"rider_id"`
	Pickup       string       `json:"pickup"`
	Destination  string       `json:"destination"`
	Coordinates  Coordinates  `json:"coordinates"`
	VehicleClass VehicleClass `json:"vehicle_class"`
}

// RideStartRequest carries the rider's code for the OTP-gated start.
type RideStartRequest struct {
	OTP int `json:"otp"`
}

// AcceptanceRequest is the payload consumed from the ride-acceptance
// queue. The gateway forwards it verbatim from a driver's accept action.
type AcceptanceRequest struct {
	RideID   string `json:"ride_id"`
	DriverID string `json:"driver_id"`
}
