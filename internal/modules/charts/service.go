// Package charts provides services for generating chart data from APEX
// scoring results: the stress heatmap rows and the command map points.
// Colors are resolved server-side so every visualization consumer shares
// one scale; all rendering stays client-side.
package charts

import (
	"github.com/rs/zerolog"

	"github.com/apexintel/apex/internal/modules/scoring"
	"github.com/apexintel/apex/internal/modules/watchlist"
)

// colorStop is one anchor of a sequential color scale, positioned on
// [0,1] over stress/100.
type colorStop struct {
	pos     float64
	r, g, b uint8
}

// Stress heatmap scale: deep blue (low stress) to electric cyan (high
// stress). Matches the command map's monochrome family.
var heatmapScale = []colorStop{
	{0.0, 0x00, 0x2B, 0x36},
	{0.25, 0x00, 0x48, 0x55},
	{0.5, 0x00, 0x6B, 0x7A},
	{0.75, 0x00, 0xA8, 0xBD},
	{1.0, 0x00, 0xE5, 0xFF},
}

// Command map scale: deep black (fortress) to electric cyan (critical).
var commandMapScale = []colorStop{
	{0.0, 0x05, 0x0A, 0x0E},
	{0.25, 0x0A, 0x25, 0x30},
	{0.5, 0x0A, 0x4A, 0x60},
	{0.75, 0x00, 0xA0, 0xC0},
	{1.0, 0x00, 0xE5, 0xFF},
}

// HeatmapRow is one row of the vertical stress heatmap, worst sovereign
// first.
type HeatmapRow struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	APEXScore float64 `json:"apex_score"`
	Stress    float64 `json:"stress"` // 100 - APEX
	RiskTier  string  `json:"risk_tier"`
	Color     string  `json:"color"` // #RRGGBB from the heatmap scale
	Selected  bool    `json:"selected"`
}

// MapPoint is one sovereign on the world command map, carrying the raw
// metrics shown in the hover panel.
type MapPoint struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	APEXScore  float64 `json:"apex_score"`
	Stress     float64 `json:"stress"`
	RiskTier   string  `json:"risk_tier"`
	Color      string  `json:"color"` // #RRGGBB from the command map scale
	DebtToGDP  float64 `json:"debt_to_gdp"`
	FXReserves float64 `json:"fx_reserves"`
	Inflation  float64 `json:"inflation"`
	Yield10Y   float64 `json:"yield_10y"`
	Selected   bool    `json:"selected"`
}

// Service provides chart data operations
type Service struct {
	watchlist *watchlist.Provider
	engine    *scoring.Engine
	log       zerolog.Logger
}

// NewService creates a new charts service
func NewService(wl *watchlist.Provider, engine *scoring.Engine, log zerolog.Logger) *Service {
	return &Service{
		watchlist: wl,
		engine:    engine,
		log:       log.With().Str("service", "charts").Logger(),
	}
}

// HeatmapRows returns the stress-ranked heatmap rows (lowest APEX first).
// The selected code, if present in the watchlist, gets its row flagged
// for highlighting.
func (s *Service) HeatmapRows(selected string) ([]HeatmapRow, error) {
	ranked, err := s.engine.StressRanked()
	if err != nil {
		return nil, err
	}

	rows := make([]HeatmapRow, 0, len(ranked))
	for _, r := range ranked {
		stress := round2(100 - r.APEXScore)
		rows = append(rows, HeatmapRow{
			Code:      r.Code,
			Name:      r.Name,
			APEXScore: r.APEXScore,
			Stress:    stress,
			RiskTier:  r.RiskTier,
			Color:     colorAt(heatmapScale, stress/100),
			Selected:  selected != "" && r.Code == selected,
		})
	}
	return rows, nil
}

// MapPoints returns the command map dataset in watchlist order.
func (s *Service) MapPoints(selected string) ([]MapPoint, error) {
	results, err := s.engine.ScoreAll()
	if err != nil {
		return nil, err
	}

	rows := s.watchlist.All()
	points := make([]MapPoint, 0, len(results))
	for i, r := range results {
		sovereign := rows[i]
		stress := round2(100 - r.APEXScore)
		points = append(points, MapPoint{
			Code:       r.Code,
			Name:       r.Name,
			Category:   string(sovereign.Category),
			APEXScore:  r.APEXScore,
			Stress:     stress,
			RiskTier:   r.RiskTier,
			Color:      colorAt(commandMapScale, stress/100),
			DebtToGDP:  sovereign.DebtToGDP,
			FXReserves: sovereign.FXReservesMonths,
			Inflation:  sovereign.InflationRate,
			Yield10Y:   sovereign.Yield10Y,
			Selected:   selected != "" && r.Code == selected,
		})
	}
	return points, nil
}
