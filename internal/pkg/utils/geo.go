package utils

// ValidateCoordinates reports whether a latitude/longitude pair lies in
// the WGS84 value ranges.
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
