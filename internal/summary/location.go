package summary

import (
	"math"
	"strconv"
	"strings"
)

// parseLocationID converts a raw location id to an integer.
//
// This is the drop step for malformed ids: when ok is false the row must be
// left out of the response without failing the request. Accepted forms are a
// decimal integer ("12") and a finite float with no fractional part ("12.0"),
// both with surrounding whitespace tolerated.
func parseLocationID(raw string) (id int, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if math.Abs(f) > 1<<53 {
		return 0, false
	}
	return int(f), true
}
