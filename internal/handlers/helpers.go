package handlers

import "math"

func fieldString(fields map[string]any, key string) string {
	if value, ok := fields[key].(string); ok {
		return value
	}
	return ""
}

// fieldInt narrows a decoded JSON number to an integer. Non-numeric and
// fractional values report false.
func fieldInt(fields map[string]any, key string) (int, bool) {
	value, ok := fields[key].(float64)
	if !ok || value != math.Trunc(value) {
		return 0, false
	}
	return int(value), true
}
