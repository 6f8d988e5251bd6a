package blink1

import (
	"fmt"
	"strconv"
)

type namedColor struct {
	name  string
	value uint32
}

// colors is the defined color palette. Lookup is a linear scan; the slice
// order is the order -c lists them in.
var colors = []namedColor{
	{"blue", 0x0000FF},
	{"cyan", 0x00FFFF},
	{"green", 0x00FF00},
	{"purple", 0xFF00FF},
	{"red", 0xFF0000},
	{"white", 0xFFFFFF},
	{"yellow", 0xFFFF00},
}

// ParseColor resolves a color token to a 24-bit RGB value. The token is
// either a defined color name (case-sensitive) or a hexadecimal value no
// larger than 0xFFFFFF.
func ParseColor(token string) (uint32, error) {
	for _, c := range colors {
		if c.name == token {
			return c.value, nil
		}
	}

	value, err := strconv.ParseUint(token, 16, 64)
	if err != nil || value > 0xFFFFFF {
		return 0, fmt.Errorf("%w %q", ErrInvalidColor, token)
	}

	return uint32(value), nil
}

// ColorNames returns the defined color names in palette order.
func ColorNames() []string {
	names := make([]string, 0, len(colors))
	for _, c := range colors {
		names = append(names, c.name)
	}
	return names
}
