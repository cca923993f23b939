package scene

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber parses free-form numeric text from an edit field. Partial
// input such as "", "-", "." or a trailing exponent is input in
// progress, not an error: it reports ok=false and the caller keeps the
// previous value. NaN and infinities are rejected the same way.
func ParseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ClampMass enforces the non-negative mass invariant at the input
// boundary. Negative input clamps to zero.
func ClampMass(m float64) float64 {
	if m < 0 {
		return 0
	}
	return m
}
