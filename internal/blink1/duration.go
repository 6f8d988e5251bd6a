package blink1

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// splitDuration separates a duration token into its numeric part and unit
// suffix. The numeric part must be non-empty.
func splitDuration(token string) (value float64, suffix string, ok bool) {
	for _, s := range []string{"", "s", "ms"} {
		num, found := strings.CutSuffix(token, s)
		if !found || num == "" {
			continue
		}
		if v, err := strconv.ParseFloat(num, 64); err == nil {
			return v, s, true
		}
	}
	return 0, "", false
}

// ParseDuration converts a duration token to hundredths of a second, as
// used by the blink(1). A bare number is taken as hundredths directly, an
// "s" suffix as seconds, an "ms" suffix as milliseconds. The result is
// clamped to [-1, DurationMax]; clamping is not an error. -1 is the
// device's "cancel" sentinel.
func ParseDuration(token string) (int, error) {
	value, suffix, ok := splitDuration(token)
	if !ok || math.IsNaN(value) {
		return 0, fmt.Errorf("%w %q", ErrInvalidDuration, token)
	}

	var n float64
	switch suffix {
	case "":
		n = math.Trunc(value)
	case "s":
		n = math.Round(value * 100)
	case "ms":
		n = math.Round(value / 10)
	}

	switch {
	case n < -1:
		return -1, nil
	case n > DurationMax:
		return DurationMax, nil
	}
	return int(n), nil
}
