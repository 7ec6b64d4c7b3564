// Package comparison provides side-by-side structural analysis of two
// sovereigns: radar-axis values plus a textual summary. Rendering stays in
// the UI; this module only prepares chart-ready data.
package comparison

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/apexintel/apex/internal/domain"
	"github.com/apexintel/apex/internal/modules/scoring"
	"github.com/apexintel/apex/internal/modules/watchlist"
)

// RadarAxes are the comparison axes, in display order. Stability is the
// inverse-pressure sub-score.
var RadarAxes = []string{"SOLVENCY", "LIQUIDITY", "STABILITY", "YIELD HEALTH", "APEX SCORE"}

// Side describes one sovereign in a comparison.
type Side struct {
	Name        string          `json:"name"`
	Code        string          `json:"code"`
	APEXScore   float64         `json:"apex_score"`
	RiskTier    string          `json:"risk_tier"`
	Category    domain.Category `json:"category"`
	RadarValues []float64       `json:"radar_values"` // aligned with RadarAxes
}

// Summary is the full pairwise comparison output.
type Summary struct {
	Axes      []string `json:"axes"`
	SideA     Side     `json:"country_1"`
	SideB     Side     `json:"country_2"`
	Stronger  string   `json:"stronger"`
	Weaker    string   `json:"weaker"`
	APEXDelta float64  `json:"apex_delta"`
}

// Service computes pairwise comparisons.
type Service struct {
	watchlist *watchlist.Provider
	engine    *scoring.Engine
	log       zerolog.Logger
}

// NewService creates a new comparison service
func NewService(wl *watchlist.Provider, engine *scoring.Engine, log zerolog.Logger) *Service {
	return &Service{
		watchlist: wl,
		engine:    engine,
		log:       log.With().Str("service", "comparison").Logger(),
	}
}

// Compare builds the structural comparison between two sovereigns.
// Unknown codes surface domain.ErrSovereignNotFound.
func (s *Service) Compare(codeA, codeB string) (Summary, error) {
	sideA, err := s.buildSide(codeA)
	if err != nil {
		return Summary{}, err
	}
	sideB, err := s.buildSide(codeB)
	if err != nil {
		return Summary{}, err
	}

	stronger, weaker := sideA.Name, sideB.Name
	if sideB.APEXScore > sideA.APEXScore {
		stronger, weaker = sideB.Name, sideA.Name
	}

	return Summary{
		Axes:      RadarAxes,
		SideA:     sideA,
		SideB:     sideB,
		Stronger:  stronger,
		Weaker:    weaker,
		APEXDelta: math.Round(math.Abs(sideA.APEXScore-sideB.APEXScore)*100) / 100,
	}, nil
}

func (s *Service) buildSide(code string) (Side, error) {
	sovereign, err := s.watchlist.ByCode(code)
	if err != nil {
		return Side{}, err
	}
	result, err := s.engine.Score(sovereign, scoring.Options{})
	if err != nil {
		return Side{}, err
	}

	return Side{
		Name:      sovereign.Name,
		Code:      sovereign.Code,
		APEXScore: result.APEXScore,
		RiskTier:  result.RiskTier,
		Category:  sovereign.Category,
		RadarValues: []float64{
			result.SolvencyScore,
			result.LiquidityScore,
			result.PressureScore,
			yieldHealth(sovereign.YieldSpread),
			result.APEXScore,
		},
	}, nil
}

// yieldHealth rescales the absolute yield spread onto [0,100];
// 5000bps of spread exhausts the scale.
func yieldHealth(yieldSpread float64) float64 {
	return math.Max(0, 100-math.Abs(yieldSpread)/50)
}
