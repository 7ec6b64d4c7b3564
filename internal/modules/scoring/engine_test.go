package scoring

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexintel/apex/internal/domain"
	"github.com/apexintel/apex/internal/modules/watchlist"
)

func newTestEngine(rows []domain.Sovereign, mode Mode) *Engine {
	return NewEngine(watchlist.NewProviderWithData(rows), mode, zerolog.Nop())
}

func newDefaultEngine(mode Mode) *Engine {
	return NewEngine(watchlist.NewProvider(), mode, zerolog.Nop())
}

func floatPtr(v float64) *float64 { return &v }

func TestScoresWithinRangeBothModes(t *testing.T) {
	for _, mode := range []Mode{ModeZScore, ModeBounds} {
		engine := newDefaultEngine(mode)
		results, err := engine.ScoreAll()
		require.NoError(t, err)
		require.Len(t, results, 25)

		for _, r := range results {
			for name, score := range map[string]float64{
				"apex":      r.APEXScore,
				"solvency":  r.SolvencyScore,
				"liquidity": r.LiquidityScore,
				"pressure":  r.PressureScore,
			} {
				assert.GreaterOrEqual(t, score, 0.0, "%s %s score below range in mode %s", r.Code, name, mode)
				assert.LessOrEqual(t, score, 100.0, "%s %s score above range in mode %s", r.Code, name, mode)
			}
		}
	}
}

func TestCompositeIsFixedLinearCombination(t *testing.T) {
	engine := newDefaultEngine(ModeZScore)
	results, err := engine.ScoreAll()
	require.NoError(t, err)

	for _, r := range results {
		expected := round2(0.35*r.SolvencyScore + 0.30*r.LiquidityScore + 0.35*r.PressureScore)
		assert.InDelta(t, expected, r.APEXScore, 1e-9, "composite mismatch for %s", r.Code)
	}
}

func TestZScoresPresentOnlyInZScoreMode(t *testing.T) {
	engine := newDefaultEngine(ModeZScore)

	r, err := engine.ScoreByCode("USA", Options{Mode: ModeZScore})
	require.NoError(t, err)
	require.NotNil(t, r.ZScores)

	r, err = engine.ScoreByCode("USA", Options{Mode: ModeBounds})
	require.NoError(t, err)
	assert.Nil(t, r.ZScores)
}

func TestGradeAndTierBoundaries(t *testing.T) {
	assert.Equal(t, "AAA", LetterGrade(90.00))
	assert.Equal(t, TierFortress, RiskTier(90.00))

	assert.Equal(t, "AA", LetterGrade(89.99))
	assert.Equal(t, TierStable, RiskTier(89.99))

	assert.Equal(t, "D", LetterGrade(9.99))
	assert.Equal(t, "C", LetterGrade(10.00))
	assert.Equal(t, TierCritical, RiskTier(29.99))
	assert.Equal(t, TierHighRisk, RiskTier(30.00))
}

func TestSolvencyMonotonicInDebt(t *testing.T) {
	// Holding the population fixed, decreasing one entity's debt must
	// not decrease its solvency sub-score.
	engine := newDefaultEngine(ModeZScore)

	base, err := engine.Simulate("FRA", floatPtr(112.0), nil)
	require.NoError(t, err)

	lower, err := engine.Simulate("FRA", floatPtr(60.0), nil)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, lower.SolvencyScore, base.SolvencyScore)
}

func TestOverrideIsolation(t *testing.T) {
	engine := newDefaultEngine(ModeZScore)

	statsBefore, err := engine.Statistics()
	require.NoError(t, err)
	othersBefore, err := engine.ScoreAll()
	require.NoError(t, err)

	// Simulate a large debt shock for one entity.
	_, err = engine.Simulate("DEU", floatPtr(340.0), floatPtr(95.0))
	require.NoError(t, err)

	statsAfter, err := engine.Statistics()
	require.NoError(t, err)
	othersAfter, err := engine.ScoreAll()
	require.NoError(t, err)

	assert.Equal(t, statsBefore, statsAfter, "Simulation must not perturb the population statistics")
	assert.Equal(t, othersBefore, othersAfter, "Simulation must not change any stored entity's score")
}

func TestRankingReversal(t *testing.T) {
	// Distinct metrics guarantee distinct composites, so the stress
	// ranking reversed equals the best-first ranking.
	rows := []domain.Sovereign{
		{Code: "AAA", Name: "Alpha", DebtToGDP: 30, FXReservesMonths: 18, InflationRate: 2, YieldSpread: 50},
		{Code: "BBB", Name: "Bravo", DebtToGDP: 90, FXReservesMonths: 8, InflationRate: 6, YieldSpread: 500},
		{Code: "CCC", Name: "Charlie", DebtToGDP: 160, FXReservesMonths: 3, InflationRate: 25, YieldSpread: 1800},
		{Code: "DDD", Name: "Delta", DebtToGDP: 320, FXReservesMonths: 0.8, InflationRate: 160, YieldSpread: 4500},
	}
	engine := newTestEngine(rows, ModeZScore)

	best, err := engine.Ranked()
	require.NoError(t, err)
	stress, err := engine.StressRanked()
	require.NoError(t, err)
	require.Len(t, best, len(stress))

	for i := range best {
		assert.Equal(t, best[i].Code, stress[len(stress)-1-i].Code)
	}
}

func TestRankingTieBreak(t *testing.T) {
	// Identical metrics produce identical composites; ties order by code
	// ascending regardless of table order.
	rows := []domain.Sovereign{
		{Code: "ZZZ", Name: "Zulu", DebtToGDP: 80, FXReservesMonths: 5, InflationRate: 3, YieldSpread: 100},
		{Code: "AAA", Name: "Alpha", DebtToGDP: 80, FXReservesMonths: 5, InflationRate: 3, YieldSpread: 100},
	}
	engine := newTestEngine(rows, ModeZScore)

	best, err := engine.Ranked()
	require.NoError(t, err)
	require.Len(t, best, 2)
	assert.Equal(t, best[0].APEXScore, best[1].APEXScore)
	assert.Equal(t, "AAA", best[0].Code)

	stress, err := engine.StressRanked()
	require.NoError(t, err)
	assert.Equal(t, "AAA", stress[0].Code)
}

func TestFortressVersusCriticalScenario(t *testing.T) {
	rows := []domain.Sovereign{
		{Code: "AAA", Name: "Alpha", DebtToGDP: 20, FXReservesMonths: 20, InflationRate: 1, YieldSpread: 0},
		{Code: "BBB", Name: "Bravo", DebtToGDP: 300, FXReservesMonths: 0.5, InflationRate: 150, YieldSpread: 4000},
	}

	// Bounds mode places the strong entity near the top of the scale and
	// the weak one near the bottom.
	engine := newTestEngine(rows, ModeBounds)
	a, err := engine.ScoreByCode("AAA", Options{})
	require.NoError(t, err)
	b, err := engine.ScoreByCode("BBB", Options{})
	require.NoError(t, err)

	assert.Contains(t, []string{TierFortress, TierStable}, a.RiskTier)
	assert.Contains(t, []string{TierCritical, TierHighRisk}, b.RiskTier)
	assert.Greater(t, a.APEXScore, b.APEXScore)

	// The ordering holds in z-score mode too.
	zEngine := newTestEngine(rows, ModeZScore)
	za, err := zEngine.ScoreByCode("AAA", Options{})
	require.NoError(t, err)
	zb, err := zEngine.ScoreByCode("BBB", Options{})
	require.NoError(t, err)
	assert.Greater(t, za.APEXScore, zb.APEXScore)
}

func TestSingleEntityPopulation(t *testing.T) {
	// One entity sits exactly at every mean: each z is 0, each sub-score
	// is 50, and the composite collapses to 50.
	rows := []domain.Sovereign{
		{Code: "AAA", Name: "Alpha", DebtToGDP: 100, FXReservesMonths: 5, InflationRate: 3, YieldSpread: 200},
	}
	engine := newTestEngine(rows, ModeZScore)

	r, err := engine.ScoreByCode("AAA", Options{})
	require.NoError(t, err)
	assert.InDelta(t, 50.0, r.SolvencyScore, 1e-9)
	assert.InDelta(t, 50.0, r.LiquidityScore, 1e-9)
	assert.InDelta(t, 50.0, r.PressureScore, 1e-9)
	assert.InDelta(t, 50.0, r.APEXScore, 1e-9)
	assert.Equal(t, TierElevated, r.RiskTier)
	assert.Equal(t, "BB", r.LetterGrade)
}

func TestEmptyPopulationFailsFast(t *testing.T) {
	engine := newTestEngine(nil, ModeZScore)

	_, err := engine.ScoreAll()
	assert.ErrorIs(t, err, ErrEmptyWatchlist)

	_, err = engine.Statistics()
	assert.ErrorIs(t, err, ErrEmptyWatchlist)

	_, err = engine.Averages()
	assert.ErrorIs(t, err, ErrEmptyWatchlist)
}

func TestScoreByCodeNotFound(t *testing.T) {
	engine := newDefaultEngine(ModeZScore)

	_, err := engine.ScoreByCode("XYZ", Options{})
	assert.ErrorIs(t, err, domain.ErrSovereignNotFound)
}
