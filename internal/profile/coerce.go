package profile

import (
	"math"
	"strconv"
	"strings"
)

// CoerceQuantity parses a user-entered quantity. Surrounding whitespace is
// trimmed. Empty, unparsable, NaN, infinite and negative input yields 0.
func CoerceQuantity(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return clampQuantity(v)
}

func clampQuantity(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// coerceValue converts a decoded document value to a quantity. The second
// result reports whether the value was usable as given; false means it was
// replaced by 0.
func coerceValue(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0, true
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case string:
		f = CoerceQuantity(n)
		return f, f != 0 || isZeroLiteral(n)
	default:
		return 0, false
	}
	c := clampQuantity(f)
	return c, c == f
}

func isZeroLiteral(s string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && v == 0
}
