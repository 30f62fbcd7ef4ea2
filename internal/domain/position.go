package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// PositionToString serializes a [lng, lat] pair as "lng,lat" with six
// decimal places. Positions shorter than two elements serialize as "".
func PositionToString(position []float64) string {
	if len(position) < 2 {
		return ""
	}
	return fmt.Sprintf("%.6f,%.6f", position[0], position[1])
}

// ParsePosition parses a comma-joined "lng,lat" string. Missing or
// malformed coordinates parse as zero, mirroring how an empty marker
// position renders at the map origin.
func ParsePosition(s string) (lng, lat float64) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) > 0 {
		lng, _ = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	}
	if len(parts) > 1 {
		lat, _ = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	}
	return lng, lat
}
