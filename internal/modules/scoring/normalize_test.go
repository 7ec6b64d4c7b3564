package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZScoreNormalizeAtMean(t *testing.T) {
	// A value exactly at the population mean maps to the midpoint.
	assert.InDelta(t, 50.0, zScoreNormalize(100, 100, 10, false), 1e-9)
	assert.InDelta(t, 50.0, zScoreNormalize(100, 100, 10, true), 1e-9)
}

func TestZScoreNormalizeDirection(t *testing.T) {
	// Above the mean scores high without invert, low with invert.
	high := zScoreNormalize(120, 100, 10, false)
	assert.Greater(t, high, 50.0)

	inverted := zScoreNormalize(120, 100, 10, true)
	assert.Less(t, inverted, 50.0)

	// Sigmoid symmetry around the midpoint.
	assert.InDelta(t, 100.0, high+inverted, 1e-9)
}

func TestZScoreNormalizeBounded(t *testing.T) {
	// Total function: extreme inputs stay inside [0,100].
	extremes := []float64{-1e9, -1e3, 0, 1e3, 1e9}
	for _, v := range extremes {
		for _, invert := range []bool{false, true} {
			score := zScoreNormalize(v, 0, 1, invert)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		}
	}
}

func TestZScoreNormalizeMonotonic(t *testing.T) {
	// With invert=true, decreasing the raw value never decreases the
	// score.
	prev := zScoreNormalize(300, 100, 50, true)
	for v := 295.0; v >= -100; v -= 5 {
		score := zScoreNormalize(v, 100, 50, true)
		assert.GreaterOrEqual(t, score, prev, "invert normalization must be monotonic at value %v", v)
		prev = score
	}
}

func TestBoundsNormalize(t *testing.T) {
	assert.InDelta(t, 0.0, boundsNormalize(0, 0, 350, false), 1e-9)
	assert.InDelta(t, 100.0, boundsNormalize(350, 0, 350, false), 1e-9)
	assert.InDelta(t, 50.0, boundsNormalize(175, 0, 350, false), 1e-9)

	// Invert flips the scale
	assert.InDelta(t, 100.0, boundsNormalize(0, 0, 350, true), 1e-9)
	assert.InDelta(t, 0.0, boundsNormalize(350, 0, 350, true), 1e-9)
}

func TestBoundsNormalizeClampsOutOfRange(t *testing.T) {
	// Out-of-range inputs are clamped, not rejected.
	assert.InDelta(t, 0.0, boundsNormalize(500, 0, 350, true), 1e-9)
	assert.InDelta(t, 100.0, boundsNormalize(-50, 0, 350, true), 1e-9)
	assert.InDelta(t, 0.0, boundsNormalize(-50, 0, 350, false), 1e-9)
}

func TestRawZScoreUnclamped(t *testing.T) {
	// Diagnostic z-scores are not squashed.
	assert.InDelta(t, 5.0, rawZScore(150, 100, 10), 1e-9)
	assert.InDelta(t, -5.0, rawZScore(50, 100, 10), 1e-9)
}

func TestMetricBoundsTable(t *testing.T) {
	// The declared bound table, including the reserved yield spread
	// range.
	assert.Equal(t, [2]float64{0, 350}, metricBounds["debt_to_gdp"])
	assert.Equal(t, [2]float64{0, 24}, metricBounds["fx_reserves"])
	assert.Equal(t, [2]float64{0, 220}, metricBounds["inflation"])
	assert.Equal(t, [2]float64{-500, 5500}, metricBounds["yield_spread"])
}
