package utils

import (
	"strconv"
	"strings"
)

// ParseCoordinate turns an optional form value into a float. Blank input
// yields nil with no error.
func ParseCoordinate(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// MapLink builds a map search link, or "" unless both coordinates are set.
func MapLink(baseURL string, lat, lon *float64) string {
	if lat == nil || lon == nil {
		return ""
	}
	return baseURL + formatCoordinate(*lat) + "," + formatCoordinate(*lon)
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
