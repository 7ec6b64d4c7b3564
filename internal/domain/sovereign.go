// Package domain contains the pure domain types for the APEX sovereign risk
// service. The domain layer has no infrastructure dependencies.
package domain

import "errors"

// ErrSovereignNotFound is returned when a sovereign code is not present in
// the watchlist.
var ErrSovereignNotFound = errors.New("sovereign not found")

// Category classifies a sovereign within the watchlist.
type Category string

const (
	CategoryG7       Category = "G7"
	CategoryBRICS    Category = "BRICS"
	CategoryFrontier Category = "FRONTIER"
)

// Sovereign represents one entry in the global watchlist. Instances are
// immutable inputs to the scoring engine; simulation overrides are applied
// by substitution, never by mutating a Sovereign.
type Sovereign struct {
	Code     string   `json:"code"` // ISO 3-letter code, unique within the watchlist
	Name     string   `json:"name"`
	Category Category `json:"category"`

	DebtToGDP        float64 `json:"debt_to_gdp"`        // Solvency metric (%)
	FXReservesMonths float64 `json:"fx_reserves_months"` // Liquidity - months of import cover
	InflationRate    float64 `json:"inflation_rate"`     // CPI YoY (%)
	Yield10Y         float64 `json:"yield_10y"`          // 10Y govt bond yield (%)
	YieldSpread      float64 `json:"yield_spread"`       // Spread vs US 10Y (bps), signed
}
