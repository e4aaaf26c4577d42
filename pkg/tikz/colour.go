package tikz

import (
	"strconv"
	s "strings"

	"github.com/pkg/errors"
)

// RGB is a colour as TikZ \definecolor{..}{RGB}{r,g,b} expects it.
type RGB struct {
	R, G, B uint8
}

// ParseHexColour converts "RRGGBB" (an optional leading '#' allowed) to RGB.
func ParseHexColour(hex string) (RGB, error) {
	hex = s.TrimPrefix(s.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return RGB{}, errors.Errorf("colour %q: want 6 hex digits", hex)
	}
	var c [3]uint8
	for i := range c {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGB{}, errors.Wrapf(err, "colour %q", hex)
		}
		c[i] = uint8(v)
	}
	return RGB{c[0], c[1], c[2]}, nil
}
