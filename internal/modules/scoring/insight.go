package scoring

import (
	"fmt"
	"math"
)

// Insight is the deterministic analytical summary for one sovereign. The
// text is a fixed template fill keyed by score bracket and letter grade -
// no external model call.
type Insight struct {
	Summary          string  `json:"summary"`
	PrimaryRisk      string  `json:"primary_risk"`
	Deviation        float64 `json:"deviation"`
	Grade            string  `json:"grade"`
	GradeDescription string  `json:"grade_description"`
	Recommendation   string  `json:"recommendation"`
	APEXScore        float64 `json:"apex_score"`
	RiskTier         string  `json:"risk_tier"`
}

// Risk factor display names, in deterministic evaluation order.
const (
	factorSolvency  = "Solvency (Debt/GDP)"
	factorLiquidity = "Liquidity (FX Reserves)"
	factorPressure  = "Market Pressure"
)

// significantDeviation is the minimum shortfall below the global average
// (in points) for a factor to qualify as the primary risk on its own.
const significantDeviation = 5.0

// Insight generates the analytical insight for one sovereign: the
// sub-score it underperforms the population on by the largest margin,
// with bracket-selected tone and recommendation text.
func (e *Engine) Insight(code string) (Insight, error) {
	result, err := e.ScoreByCode(code, Options{})
	if err != nil {
		return Insight{}, err
	}
	averages, err := e.Averages()
	if err != nil {
		return Insight{}, err
	}

	factors := []struct {
		name  string
		score float64
		avg   float64
	}{
		{factorSolvency, result.SolvencyScore, averages.Solvency},
		{factorLiquidity, result.LiquidityScore, averages.Liquidity},
		{factorPressure, result.PressureScore, averages.Pressure},
	}

	// Primary risk factor: largest positive deviation below the global
	// average.
	primaryRisk := ""
	maxDeviation := 0.0
	for _, f := range factors {
		deviation := f.avg - f.score
		if deviation > maxDeviation {
			maxDeviation = deviation
			primaryRisk = f.name
		}
	}

	// No factor deviates meaningfully below average: fall back to the
	// weakest absolute sub-score.
	if primaryRisk == "" || maxDeviation < significantDeviation {
		weakest := factors[0]
		for _, f := range factors[1:] {
			if f.score < weakest.score {
				weakest = f
			}
		}
		primaryRisk = weakest.name
	}

	var tone string
	switch {
	case result.APEXScore >= 70:
		tone = "demonstrates robust fundamentals"
	case result.APEXScore >= 50:
		tone = "exhibits moderate vulnerability"
	case result.APEXScore >= 30:
		tone = "shows significant stress indicators"
	default:
		tone = "faces severe sovereign distress"
	}

	var recommendation string
	switch {
	case result.APEXScore >= 70:
		recommendation = "LOW RISK: Suitable for sovereign bond allocation."
	case result.APEXScore >= 50:
		recommendation = "MODERATE RISK: Monitor key indicators closely."
	case result.APEXScore >= 30:
		recommendation = "HIGH RISK: Consider hedging or reduced exposure."
	default:
		recommendation = "CRITICAL: Avoid new exposure. Evaluate exit strategy."
	}

	deviation := round1(math.Abs(maxDeviation))
	summary := fmt.Sprintf(
		"%s (%s) %s. Primary risk factor is %s which deviates %.1f%% from the global mean.",
		result.Name, result.LetterGrade, tone, primaryRisk, deviation,
	)

	return Insight{
		Summary:          summary,
		PrimaryRisk:      primaryRisk,
		Deviation:        deviation,
		Grade:            result.LetterGrade,
		GradeDescription: GradeDescription(result.LetterGrade),
		Recommendation:   recommendation,
		APEXScore:        result.APEXScore,
		RiskTier:         result.RiskTier,
	}, nil
}
