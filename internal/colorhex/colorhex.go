// Package colorhex converts between the float RGBA quads stored in color
// presets and the #RRGGBBAA hex strings used everywhere user-facing.
package colorhex

import (
	"fmt"
	"strconv"
	"strings"
)

// RGBA holds one display color with channels in [0.0, 1.0].
type RGBA struct {
	R, G, B, A float64
}

// White is the fallback color for rules whose serialized color cannot be
// resolved.
var White = RGBA{R: 1, G: 1, B: 1, A: 1}

// ToHex formats the color as "#RRGGBBAA". Channels are clamped to [0, 1]
// before quantizing.
func (c RGBA) ToHex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X",
		channelByte(c.R), channelByte(c.G), channelByte(c.B), channelByte(c.A))
}

func channelByte(f float64) uint8 {
	v := int(f * 255)
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return uint8(v)
}

// Parse reads a "#RRGGBB" or "#RRGGBBAA" string, with or without the leading
// hash. A 6-digit string gets alpha 1.0.
func Parse(s string) (RGBA, error) {
	hexStr := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hexStr) != 6 && len(hexStr) != 8 {
		return RGBA{}, fmt.Errorf("parse color %q: want 6 or 8 hex digits, got %d", s, len(hexStr))
	}

	channels := make([]float64, 0, 4)
	for i := 0; i+2 <= len(hexStr); i += 2 {
		n, err := strconv.ParseUint(hexStr[i:i+2], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		channels = append(channels, float64(n)/255.0)
	}

	c := RGBA{R: channels[0], G: channels[1], B: channels[2], A: 1.0}
	if len(channels) == 4 {
		c.A = channels[3]
	}
	return c, nil
}
