package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexintel/apex/internal/domain"
)

func TestAveragesCanonicalValues(t *testing.T) {
	rows := []domain.Sovereign{
		{Code: "AAA", Name: "Alpha", DebtToGDP: 100, FXReservesMonths: 10, InflationRate: 2, Yield10Y: 4, YieldSpread: 0},
		{Code: "BBB", Name: "Bravo", DebtToGDP: 200, FXReservesMonths: 20, InflationRate: 4, Yield10Y: 6, YieldSpread: 1000},
	}
	engine := newTestEngine(rows, ModeZScore)

	avg, err := engine.Averages()
	require.NoError(t, err)

	assert.InDelta(t, 150.0, avg.DebtToGDP, 1e-9)
	assert.InDelta(t, 15.0, avg.FXReserves, 1e-9)
	assert.InDelta(t, 3.0, avg.Inflation, 1e-9)
	assert.InDelta(t, 5.0, avg.Yield10Y, 1e-9)
	// Yield health: (100 - 0/50) and (100 - 1000/50) -> (100 + 80)/2
	assert.InDelta(t, 90.0, avg.YieldHealth, 1e-9)
	// Inflation health: 100 - mean/2.5
	assert.InDelta(t, 98.8, avg.InflationHealth, 1e-9)
}

func TestInflationHealthDerivesFromUnroundedMean(t *testing.T) {
	rows := []domain.Sovereign{
		{Code: "AAA", Name: "Alpha", DebtToGDP: 100, FXReservesMonths: 10, InflationRate: 2.5125, Yield10Y: 4},
		{Code: "BBB", Name: "Bravo", DebtToGDP: 100, FXReservesMonths: 10, InflationRate: 2.513, Yield10Y: 4},
	}
	engine := newTestEngine(rows, ModeZScore)

	avg, err := engine.Averages()
	require.NoError(t, err)

	// Raw mean is 2.51275, so 100 - 2.51275/2.5 = 98.9949 rounds to
	// 98.99. Deriving from the rounded mean (2.51) would give 99.00.
	assert.InDelta(t, 98.99, avg.InflationHealth, 1e-9)
	assert.InDelta(t, 2.51, avg.Inflation, 1e-9)
}

func TestAveragesScoreMeans(t *testing.T) {
	engine := newDefaultEngine(ModeZScore)

	avg, err := engine.Averages()
	require.NoError(t, err)
	results, err := engine.ScoreAll()
	require.NoError(t, err)

	var apex, solvency float64
	for _, r := range results {
		apex += r.APEXScore
		solvency += r.SolvencyScore
	}
	n := float64(len(results))

	assert.InDelta(t, round2(apex/n), avg.APEXScore, 1e-9)
	assert.InDelta(t, round2(solvency/n), avg.Solvency, 1e-9)
}

func TestAveragesByLabelSpellings(t *testing.T) {
	engine := newDefaultEngine(ModeZScore)

	avg, err := engine.Averages()
	require.NoError(t, err)

	// Both consumer vocabularies resolve to the same canonical value.
	pairs := [][2]string{
		{"apex_score", "APEX SCORE"},
		{"solvency", "Solvency"},
		{"liquidity", "Liquidity"},
		{"pressure", "Stability"},
		{"yield_health", "Yield Health"},
		{"inflation_health", "Inflation"},
	}
	for _, pair := range pairs {
		snake, ok := avg.ByLabel(pair[0])
		require.True(t, ok, "missing label %s", pair[0])
		display, ok := avg.ByLabel(pair[1])
		require.True(t, ok, "missing label %s", pair[1])
		assert.Equal(t, snake, display, "labels %q and %q must resolve to the same value", pair[0], pair[1])
	}

	// The raw inflation mean and the display health variant are distinct
	// aggregates.
	raw, ok := avg.ByLabel("inflation")
	require.True(t, ok)
	health, ok := avg.ByLabel("Inflation")
	require.True(t, ok)
	assert.NotEqual(t, raw, health)

	_, ok = avg.ByLabel("unknown_metric")
	assert.False(t, ok)
}
