package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexintel/apex/internal/domain"
)

func TestInsightFallbackWhenNoSignificantDeviation(t *testing.T) {
	// Identical entities: every sub-score equals the population average,
	// so no factor deviates and the fallback must pick the weakest
	// absolute sub-score instead of leaving the primary risk undefined.
	rows := []domain.Sovereign{
		{Code: "AAA", Name: "Alpha", DebtToGDP: 80, FXReservesMonths: 5, InflationRate: 3, YieldSpread: 100},
		{Code: "BBB", Name: "Bravo", DebtToGDP: 80, FXReservesMonths: 5, InflationRate: 3, YieldSpread: 100},
		{Code: "CCC", Name: "Charlie", DebtToGDP: 80, FXReservesMonths: 5, InflationRate: 3, YieldSpread: 100},
	}
	engine := newTestEngine(rows, ModeZScore)

	insight, err := engine.Insight("BBB")
	require.NoError(t, err)

	assert.NotEmpty(t, insight.PrimaryRisk)
	assert.Equal(t, factorSolvency, insight.PrimaryRisk, "equal sub-scores fall back to the first factor in evaluation order")
	assert.Equal(t, 0.0, insight.Deviation)
}

func TestInsightSevereDistressBracket(t *testing.T) {
	// Bounds mode with a collapsed sovereign: composite lands deep in
	// the critical bracket.
	rows := []domain.Sovereign{
		{Code: "AAA", Name: "Alpha", DebtToGDP: 20, FXReservesMonths: 20, InflationRate: 1, YieldSpread: 0},
		{Code: "BBB", Name: "Bravo", DebtToGDP: 25, FXReservesMonths: 18, InflationRate: 2, YieldSpread: 50},
		{Code: "VVV", Name: "Victor", DebtToGDP: 350, FXReservesMonths: 0.5, InflationRate: 185, YieldSpread: 5075},
	}
	engine := newTestEngine(rows, ModeBounds)

	insight, err := engine.Insight("VVV")
	require.NoError(t, err)

	assert.Less(t, insight.APEXScore, 30.0)
	assert.Contains(t, insight.Summary, "faces severe sovereign distress")
	assert.True(t, strings.HasPrefix(insight.Recommendation, "CRITICAL:"), "recommendation %q", insight.Recommendation)
	assert.Equal(t, TierCritical, insight.RiskTier)
	assert.Equal(t, "D", insight.Grade)
	assert.Equal(t, "default imminent", insight.GradeDescription)
}

func TestInsightSummaryShape(t *testing.T) {
	engine := newDefaultEngine(ModeZScore)

	insight, err := engine.Insight("DEU")
	require.NoError(t, err)

	assert.Contains(t, insight.Summary, "Germany")
	assert.Contains(t, insight.Summary, "("+insight.Grade+")")
	assert.Contains(t, insight.Summary, insight.PrimaryRisk)
	assert.GreaterOrEqual(t, insight.Deviation, 0.0)
	assert.NotEmpty(t, insight.Recommendation)
	assert.NotEqual(t, "undefined", insight.GradeDescription)
}

func TestInsightNotFound(t *testing.T) {
	engine := newDefaultEngine(ModeZScore)

	_, err := engine.Insight("XYZ")
	assert.ErrorIs(t, err, domain.ErrSovereignNotFound)
}

func TestGradeDescriptionUnknown(t *testing.T) {
	assert.Equal(t, "undefined", GradeDescription("ZZ"))
}
