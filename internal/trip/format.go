package trip

import (
	"math"
	"strconv"
	"strings"
)

// ParseDestinations splits a comma-separated answer and trims each entry.
// Empty entries are kept so the list mirrors what was typed.
func ParseDestinations(line string) []string {
	parts := strings.Split(line, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// FormatBudget renders an amount as the shortest decimal that round-trips,
// always with a fractional part (500 -> "500.0"). Magnitudes below 1e-4 or
// at least 1e16 switch to exponent form ("1e+16", "1.5e-05").
func FormatBudget(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
