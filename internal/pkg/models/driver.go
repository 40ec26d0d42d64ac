package models

import "time"

// DriverAvailability is a driver's availability record. Coordinates are
// only trusted while Available is true and the record is fresher than
// the configured matching window.
type DriverAvailability struct {
	DriverID     string       `json:"driver_id"`
	Location     Coordinates  `json:"location"`
	VehicleClass VehicleClass `json:"vehicle_class"`
	Available    bool         `json:"available"`
	Geohash      string       `json:"geohash,omitempty"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// AvailabilityRequest is the go-online / go-offline request body.
type AvailabilityRequest struct {
	Available    bool         `json:"available"`
	Location     Coordinates  `json:"location"`
	VehicleClass VehicleClass `json:"vehicle_class"`
}
