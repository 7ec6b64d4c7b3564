package scoring

import "math"

// Averages holds the global average values for all key metrics. One
// canonical struct; presentation spellings map onto these fields via
// ByLabel, so the values are computed exactly once per call.
type Averages struct {
	APEXScore  float64 `json:"apex_score"`
	Solvency   float64 `json:"solvency"`
	Liquidity  float64 `json:"liquidity"`
	Pressure   float64 `json:"pressure"`
	DebtToGDP  float64 `json:"debt_to_gdp"`
	FXReserves float64 `json:"fx_reserves"`
	Inflation  float64 `json:"inflation"`
	Yield10Y   float64 `json:"yield_10y"`

	// Display-only health variants consumed by the radar and dashboard
	// views. Yield health rescales the absolute spread; inflation health
	// rescales the raw inflation mean.
	YieldHealth     float64 `json:"yield_health"`
	InflationHealth float64 `json:"inflation_health"`
}

// ByLabel resolves an aggregate value by either its canonical snake_case
// key or its display-label spelling. Keeps both consumer vocabularies
// working without duplicating the computation.
func (a Averages) ByLabel(label string) (float64, bool) {
	switch label {
	case "apex_score", "APEX SCORE":
		return a.APEXScore, true
	case "solvency", "Solvency":
		return a.Solvency, true
	case "liquidity", "Liquidity":
		return a.Liquidity, true
	case "pressure", "Stability":
		return a.Pressure, true
	case "debt_to_gdp":
		return a.DebtToGDP, true
	case "fx_reserves":
		return a.FXReserves, true
	case "inflation":
		return a.Inflation, true
	case "yield_10y":
		return a.Yield10Y, true
	case "yield_health", "Yield Health":
		return a.YieldHealth, true
	case "inflation_health", "Inflation":
		return a.InflationHealth, true
	default:
		return 0, false
	}
}

// Averages computes arithmetic means across all sovereigns for the
// sub-scores, the composite, and the raw input metrics.
func (e *Engine) Averages() (Averages, error) {
	rows := e.watchlist.All()
	results, err := e.ScoreAll()
	if err != nil {
		return Averages{}, err
	}

	n := float64(len(results))
	var avg Averages
	for _, r := range results {
		avg.APEXScore += r.APEXScore
		avg.Solvency += r.SolvencyScore
		avg.Liquidity += r.LiquidityScore
		avg.Pressure += r.PressureScore
	}
	for _, s := range rows {
		avg.DebtToGDP += s.DebtToGDP
		avg.FXReserves += s.FXReservesMonths
		avg.Inflation += s.InflationRate
		avg.Yield10Y += s.Yield10Y
		avg.YieldHealth += math.Max(0, 100-math.Abs(s.YieldSpread)/50)
	}

	// Inflation health derives from the unrounded mean so the rounding
	// happens exactly once per value.
	meanInflation := avg.Inflation / n

	avg.APEXScore = round2(avg.APEXScore / n)
	avg.Solvency = round2(avg.Solvency / n)
	avg.Liquidity = round2(avg.Liquidity / n)
	avg.Pressure = round2(avg.Pressure / n)
	avg.DebtToGDP = round2(avg.DebtToGDP / n)
	avg.FXReserves = round2(avg.FXReserves / n)
	avg.Inflation = round2(meanInflation)
	avg.Yield10Y = round2(avg.Yield10Y / n)
	avg.YieldHealth = round2(avg.YieldHealth / n)
	avg.InflationHealth = round2(100 - meanInflation/2.5)

	return avg, nil
}
