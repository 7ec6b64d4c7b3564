package watchlist

import (
	"time"

	"github.com/apexintel/apex/internal/domain"
)

// US10YYield is the US 10Y Treasury baseline used for spread calculation.
const US10YYield = 4.25

// dataLastUpdated marks the vintage of the static dataset.
// Data approximates Q4 2025 / Q1 2026 conditions.
var dataLastUpdated = time.Date(2026, time.January, 30, 12, 0, 0, 0, time.UTC)

// defaultWatchlist returns the Global Watchlist of 25 sovereign entities.
func defaultWatchlist() []domain.Sovereign {
	return []domain.Sovereign{
		// G7 - fortress economies
		{Code: "USA", Name: "United States", Category: domain.CategoryG7, DebtToGDP: 122.0, FXReservesMonths: 3.2, InflationRate: 3.1, Yield10Y: 4.25, YieldSpread: 0},
		{Code: "JPN", Name: "Japan", Category: domain.CategoryG7, DebtToGDP: 263.0, FXReservesMonths: 18.5, InflationRate: 2.8, Yield10Y: 1.05, YieldSpread: -320},
		{Code: "DEU", Name: "Germany", Category: domain.CategoryG7, DebtToGDP: 66.0, FXReservesMonths: 2.8, InflationRate: 2.4, Yield10Y: 2.35, YieldSpread: -190},
		{Code: "GBR", Name: "United Kingdom", Category: domain.CategoryG7, DebtToGDP: 101.0, FXReservesMonths: 3.1, InflationRate: 4.0, Yield10Y: 4.15, YieldSpread: -10},
		{Code: "FRA", Name: "France", Category: domain.CategoryG7, DebtToGDP: 112.0, FXReservesMonths: 2.5, InflationRate: 2.6, Yield10Y: 3.05, YieldSpread: -120},
		{Code: "ITA", Name: "Italy", Category: domain.CategoryG7, DebtToGDP: 140.0, FXReservesMonths: 2.9, InflationRate: 1.8, Yield10Y: 3.85, YieldSpread: -40},
		{Code: "CAN", Name: "Canada", Category: domain.CategoryG7, DebtToGDP: 107.0, FXReservesMonths: 2.4, InflationRate: 2.9, Yield10Y: 3.25, YieldSpread: -100},

		// BRICS - emerging powers
		{Code: "BRA", Name: "Brazil", Category: domain.CategoryBRICS, DebtToGDP: 88.0, FXReservesMonths: 14.2, InflationRate: 4.5, Yield10Y: 12.80, YieldSpread: 855},
		{Code: "RUS", Name: "Russia", Category: domain.CategoryBRICS, DebtToGDP: 20.0, FXReservesMonths: 24.0, InflationRate: 8.5, Yield10Y: 16.50, YieldSpread: 1225},
		{Code: "IND", Name: "India", Category: domain.CategoryBRICS, DebtToGDP: 83.0, FXReservesMonths: 10.8, InflationRate: 5.2, Yield10Y: 7.15, YieldSpread: 290},
		{Code: "CHN", Name: "China", Category: domain.CategoryBRICS, DebtToGDP: 77.0, FXReservesMonths: 16.5, InflationRate: 0.3, Yield10Y: 2.65, YieldSpread: -160},
		{Code: "ZAF", Name: "South Africa", Category: domain.CategoryBRICS, DebtToGDP: 73.0, FXReservesMonths: 5.8, InflationRate: 5.8, Yield10Y: 10.25, YieldSpread: 600},

		// Frontier - high risk sovereigns
		{Code: "LBN", Name: "Lebanon", Category: domain.CategoryFrontier, DebtToGDP: 180.0, FXReservesMonths: 0.8, InflationRate: 210.0, Yield10Y: 45.00, YieldSpread: 4075},
		{Code: "ARG", Name: "Argentina", Category: domain.CategoryFrontier, DebtToGDP: 89.0, FXReservesMonths: 2.1, InflationRate: 140.0, Yield10Y: 38.50, YieldSpread: 3425},
		{Code: "EGY", Name: "Egypt", Category: domain.CategoryFrontier, DebtToGDP: 92.0, FXReservesMonths: 4.5, InflationRate: 28.5, Yield10Y: 27.80, YieldSpread: 2355},
		{Code: "TUR", Name: "Turkey", Category: domain.CategoryFrontier, DebtToGDP: 35.0, FXReservesMonths: 4.2, InflationRate: 48.5, Yield10Y: 28.50, YieldSpread: 2425},
		{Code: "PAK", Name: "Pakistan", Category: domain.CategoryFrontier, DebtToGDP: 78.0, FXReservesMonths: 2.8, InflationRate: 24.5, Yield10Y: 18.75, YieldSpread: 1450},
		{Code: "NGA", Name: "Nigeria", Category: domain.CategoryFrontier, DebtToGDP: 38.0, FXReservesMonths: 5.1, InflationRate: 28.8, Yield10Y: 18.50, YieldSpread: 1425},
		{Code: "GHA", Name: "Ghana", Category: domain.CategoryFrontier, DebtToGDP: 88.0, FXReservesMonths: 2.2, InflationRate: 22.5, Yield10Y: 28.00, YieldSpread: 2375},
		{Code: "LKA", Name: "Sri Lanka", Category: domain.CategoryFrontier, DebtToGDP: 115.0, FXReservesMonths: 3.5, InflationRate: 8.5, Yield10Y: 24.50, YieldSpread: 2025},
		{Code: "UKR", Name: "Ukraine", Category: domain.CategoryFrontier, DebtToGDP: 85.0, FXReservesMonths: 4.8, InflationRate: 12.5, Yield10Y: 19.50, YieldSpread: 1525},
		{Code: "VEN", Name: "Venezuela", Category: domain.CategoryFrontier, DebtToGDP: 350.0, FXReservesMonths: 0.5, InflationRate: 185.0, Yield10Y: 55.00, YieldSpread: 5075},
		{Code: "KEN", Name: "Kenya", Category: domain.CategoryFrontier, DebtToGDP: 68.0, FXReservesMonths: 4.1, InflationRate: 6.8, Yield10Y: 16.25, YieldSpread: 1200},
		{Code: "TUN", Name: "Tunisia", Category: domain.CategoryFrontier, DebtToGDP: 82.0, FXReservesMonths: 3.2, InflationRate: 9.2, Yield10Y: 14.50, YieldSpread: 1025},
		{Code: "SLV", Name: "El Salvador", Category: domain.CategoryFrontier, DebtToGDP: 85.0, FXReservesMonths: 2.8, InflationRate: 1.5, Yield10Y: 12.80, YieldSpread: 855},
	}
}
