package charts

import (
	"fmt"
	"math"
)

// colorAt resolves a position on [0,1] to a hex color by piecewise linear
// interpolation between the scale's anchor stops. Out-of-range positions
// clamp to the scale ends.
func colorAt(scale []colorStop, pos float64) string {
	if pos <= scale[0].pos {
		return hexColor(scale[0])
	}
	last := scale[len(scale)-1]
	if pos >= last.pos {
		return hexColor(last)
	}

	for i := 1; i < len(scale); i++ {
		lo, hi := scale[i-1], scale[i]
		if pos > hi.pos {
			continue
		}
		t := (pos - lo.pos) / (hi.pos - lo.pos)
		return fmt.Sprintf("#%02X%02X%02X",
			lerp(lo.r, hi.r, t),
			lerp(lo.g, hi.g, t),
			lerp(lo.b, hi.b, t),
		)
	}
	return hexColor(last)
}

func hexColor(s colorStop) string {
	return fmt.Sprintf("#%02X%02X%02X", s.r, s.g, s.b)
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// round2 rounds to 2 decimal places
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
