package sketch

import "fmt"

// Color is an immutable RGB triple. Each channel is in [0, 255].
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	White = Color{255, 255, 255}
	Black = Color{0, 0, 0}
)

// RGB creates a Color from integer channel values. Out-of-range values are
// clamped to [0, 255] rather than rejected; RGB(300, -5, 128) is the same as
// RGB(255, 0, 128).
func RGB(r, g, b int) Color {
	return Color{clampChannel(r), clampChannel(g), clampChannel(b)}
}

// Hex returns the canonical 7-character hex encoding, e.g. "#FF0000".
// Channels are zero-padded to two uppercase hex digits.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
