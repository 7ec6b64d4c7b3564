package scoring

// Static educational glossary served to the UI. Pass-through mapping, not
// computed.
var tooltips = map[string]string{
	"apex_score":   "A composite stress index (0-100) aggregating solvency, liquidity, and political stability to estimate the probability of a sovereign credit event.",
	"solvency":     "The long-term ability of a state to meet its debt obligations, primarily measured by the Debt-to-GDP ratio. Lower debt ratios indicate stronger solvency.",
	"liquidity":    "The availability of immediate foreign currency reserves to cover imports and short-term debt servicing. Measured in months of import coverage.",
	"pressure":     "Combined market stress from inflation and bond yield spreads. Higher inflation and wider spreads indicate greater fiscal pressure.",
	"debt_to_gdp":  "Total government debt as a percentage of GDP. A key indicator of fiscal sustainability. Levels above 100% are considered elevated.",
	"fx_reserves":  "Foreign exchange reserves measured in months of import coverage. The IMF recommends a minimum of 3 months coverage.",
	"inflation":    "Year-over-year change in consumer prices. High inflation erodes purchasing power and can signal monetary instability.",
	"yield_spread": "The difference between a country's 10-year bond yield and the US Treasury benchmark. Wider spreads indicate higher perceived risk.",
	"yield_10y":    "The yield on 10-year government bonds. Higher yields generally indicate higher perceived credit risk or inflation expectations.",
	"z_score":      "A statistical measure indicating how many standard deviations a value is from the mean. Used for metric comparability.",
}

// Tooltip looks up the glossary text for a named concept.
func Tooltip(key string) (string, bool) {
	text, ok := tooltips[key]
	return text, ok
}

// Tooltips returns a copy of the full glossary.
func Tooltips() map[string]string {
	out := make(map[string]string, len(tooltips))
	for k, v := range tooltips {
		out[k] = v
	}
	return out
}
