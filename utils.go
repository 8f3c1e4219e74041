package drills

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// requireParam returns the first value of field in q.
// A missing key and an empty value are both reported as "<field> is required".
func requireParam(q url.Values, field string) (string, error) {
	v := q.Get(field)
	if v == "" {
		return "", errRequired(field)
	}
	return v, nil
}

// parseNumber parses s as a finite float64.
// Surrounding whitespace is ignored; NaN and ±Inf are rejected.
func parseNumber(field, s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotNumber(field)
	}
	return f, nil
}

// formatNumber renders f the way a JavaScript runtime would print it:
// integers without a fraction, shortest round-trip digits otherwise.
func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	case math.Abs(f) >= 1e21 || math.Abs(f) < 1e-6:
		return strconv.FormatFloat(f, 'g', -1, 64)
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}
