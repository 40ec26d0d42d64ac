package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
)

// earthRadiusKm is the spherical-earth radius used for all distance math.
const earthRadiusKm = 6371.0

// GeohashPrecision is the cell size used for driver-location bucketing.
// Precision 6 cells are roughly 1.2 km x 0.6 km.
const GeohashPrecision = 6

// NeighborhoodPrecision is the coarser cell size used for the matching
// prefilter. Precision 6 cells are only ~0.6 km tall, so a nine-cell
// neighborhood at that precision clips a 1 km radius for a requester
// near a cell's north or south edge. Precision 5 cells are ~4.9 km
// square; the cell plus its eight neighbors always covers the radius.
const NeighborhoodPrecision = 5

// CalculateDistance returns the great-circle distance between two
// coordinates in kilometers using the haversine formula.
func CalculateDistance(p1, p2 models.Coordinates) float64 {
	lat1 := p1.Latitude * math.Pi / 180.0
	lon1 := p1.Longitude * math.Pi / 180.0
	lat2 := p2.Latitude * math.Pi / 180.0
	lon2 := p2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// EncodeLocation converts coordinates to a geohash at the bucketing
// precision.
func EncodeLocation(p models.Coordinates) string {
	return geohash.EncodeWithPrecision(p.Latitude, p.Longitude, GeohashPrecision)
}

// GeohashNeighborhood returns the prefilter cell containing p plus its
// eight neighbors, as a set. Used as a coarse cut before exact
// haversine distance checks; membership is tested against
// NeighborhoodCell of a stored hash.
func GeohashNeighborhood(p models.Coordinates) map[string]struct{} {
	center := geohash.EncodeWithPrecision(p.Latitude, p.Longitude, NeighborhoodPrecision)
	cells := make(map[string]struct{}, 9)
	cells[center] = struct{}{}
	for _, n := range geohash.Neighbors(center) {
		cells[n] = struct{}{}
	}
	return cells
}

// NeighborhoodCell truncates a stored geohash to the prefilter
// precision. Geohashes nest, so the prefix is the containing cell.
func NeighborhoodCell(hash string) string {
	if len(hash) > NeighborhoodPrecision {
		return hash[:NeighborhoodPrecision]
	}
	return hash
}
