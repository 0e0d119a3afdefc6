package lifecycle

import "math"

const earthRadiusMeters = 6371000.0

// DistanceMeters is the haversine distance between two WGS84 points.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// boundingDeltas approximates a radius as lat/lon deltas for coarse SQL
// prefiltering; exact distance is rechecked in-process.
func boundingDeltas(lat, radiusMeters float64) (dLat, dLon float64) {
	dLat = radiusMeters / 111320.0
	cos := math.Cos(lat * math.Pi / 180)
	if cos < 0.01 {
		cos = 0.01
	}
	dLon = radiusMeters / (111320.0 * cos)
	return dLat, dLon
}
