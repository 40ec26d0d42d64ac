package constants

// Redis key formats
const (
	// Driver availability record. Format: driver:availability:{driver_id}
	KeyDriverAvailability = "driver:availability:%s"

	// Set of available driver IDs
	KeyAvailableDrivers = "drivers:available"

	// Geo set of available driver locations
	KeyDriverGeo = "drivers:geo"
)

// Redis hash fields of a driver availability record
const (
	FieldLatitude     = "lat"
	FieldLongitude    = "lng"
	FieldVehicleClass = "vehicle_class"
	FieldGeohash      = "geohash"
	FieldUpdatedAt    = "updated_at"
)
