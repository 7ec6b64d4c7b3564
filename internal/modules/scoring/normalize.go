package scoring

import "math"

// sigmoidScale controls normalization sensitivity. Without it a single
// standard deviation already saturates near the scale ends.
const sigmoidScale = 0.5

// Fixed normalization bounds for bounds mode. The yield spread bound is
// declared for future direct spread scoring; the composite formula does
// not consume it yet.
var metricBounds = map[string][2]float64{
	"debt_to_gdp":  {0, 350},
	"fx_reserves":  {0, 24},
	"inflation":    {0, 220},
	"yield_spread": {-500, 5500},
}

// Pressure is normalized against a dedicated range in bounds mode rather
// than the named bound table.
const (
	pressureBoundMin = 0
	pressureBoundMax = 250
)

// zScoreNormalize maps a raw value onto [0,100] via z-score plus logistic
// squashing. With invert set, lower raw values score higher (used for
// metrics where lower = better, e.g. debt and pressure). Total function:
// any finite input produces a clamped in-range score.
func zScoreNormalize(value, mean, std float64, invert bool) float64 {
	z := (value - mean) / std
	if invert {
		z = -z
	}
	normalized := 100 / (1 + math.Exp(-z*sigmoidScale))
	return clamp(normalized, 0, 100)
}

// rawZScore returns the unclamped z-score for diagnostic display.
func rawZScore(value, mean, std float64) float64 {
	return (value - mean) / std
}

// boundsNormalize maps a value onto [0,100] by linear rescale within hard
// bounds, ignoring the population entirely. Out-of-range inputs are
// clamped, not rejected.
func boundsNormalize(value, minVal, maxVal float64, invert bool) float64 {
	clamped := clamp(value, minVal, maxVal)
	normalized := (clamped - minVal) / (maxVal - minVal) * 100
	if invert {
		return 100 - normalized
	}
	return normalized
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
