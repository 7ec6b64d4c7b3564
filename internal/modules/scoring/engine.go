// Package scoring implements the APEX sovereign risk scoring engine.
//
//	APEX = 0.35 x Solvency + 0.30 x Liquidity + 0.35 x Pressure
//
// Lower APEX = higher risk (critical sovereigns approach 0); higher APEX =
// fortress status (stable sovereigns approach 100). All operations are
// pure, synchronous computations over the injected watchlist: statistics
// are recomputed from the full table on every call and nothing is cached,
// so the engine is trivially safe for concurrent readers.
package scoring

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/apexintel/apex/internal/domain"
	"github.com/apexintel/apex/internal/modules/watchlist"
)

// Mode selects the normalization strategy.
type Mode string

const (
	// ModeZScore normalizes against population statistics (default).
	ModeZScore Mode = "zscore"
	// ModeBounds normalizes against static hard bounds, ignoring the
	// population. Explicit opt-out of z-scoring.
	ModeBounds Mode = "bounds"
)

// Composite weights. Must sum to 1.0 - a design assumption, not enforced
// at runtime.
const (
	weightSolvency  = 0.35
	weightLiquidity = 0.30
	weightPressure  = 0.35
)

// ZScores holds the raw diagnostic z-scores for one result. Present only
// in z-score mode; values are unclamped and rounded to 2 decimals.
type ZScores struct {
	Debt      float64 `json:"debt"`
	Liquidity float64 `json:"liquidity"`
	Pressure  float64 `json:"pressure"`
}

// Result is the APEX scoring result for one sovereign. Created fresh per
// scoring call and immutable once returned.
type Result struct {
	Code           string   `json:"code"`
	Name           string   `json:"name"`
	APEXScore      float64  `json:"apex_score"`
	SolvencyScore  float64  `json:"solvency_score"`
	LiquidityScore float64  `json:"liquidity_score"`
	PressureScore  float64  `json:"pressure_score"`
	RiskTier       string   `json:"risk_tier"`
	LetterGrade    string   `json:"letter_grade"`
	ZScores        *ZScores `json:"z_scores,omitempty"`
}

// Options tunes a single scoring call. Overrides substitute raw metric
// values before normalization ("what-if" simulation) and never alter the
// stored sovereign or the global statistics: simulating one entity's
// change must not perturb the population baseline.
type Options struct {
	Mode              Mode
	OverrideDebt      *float64
	OverrideInflation *float64
}

// Engine computes APEX scores over an injected watchlist.
type Engine struct {
	watchlist *watchlist.Provider
	mode      Mode // default mode when Options.Mode is empty
	log       zerolog.Logger
}

// NewEngine creates a scoring engine over the given watchlist.
func NewEngine(wl *watchlist.Provider, mode Mode, log zerolog.Logger) *Engine {
	if mode == "" {
		mode = ModeZScore
	}
	return &Engine{
		watchlist: wl,
		mode:      mode,
		log:       log.With().Str("module", "scoring").Logger(),
	}
}

// Statistics computes population statistics over the full watchlist.
func (e *Engine) Statistics() (Statistics, error) {
	return computeStatistics(e.watchlist.All())
}

// Score computes the APEX result for one sovereign against the full
// population.
func (e *Engine) Score(s domain.Sovereign, opts Options) (Result, error) {
	mode := opts.Mode
	if mode == "" {
		mode = e.mode
	}

	debtValue := s.DebtToGDP
	if opts.OverrideDebt != nil {
		debtValue = *opts.OverrideDebt
	}
	inflationValue := s.InflationRate
	if opts.OverrideInflation != nil {
		inflationValue = *opts.OverrideInflation
	}
	pressureValue := pressureRaw(inflationValue, s.YieldSpread)

	var solvency, liquidity, pressure float64
	var zScores *ZScores

	if mode == ModeBounds {
		debtBounds := metricBounds["debt_to_gdp"]
		fxBounds := metricBounds["fx_reserves"]
		solvency = boundsNormalize(debtValue, debtBounds[0], debtBounds[1], true)
		liquidity = boundsNormalize(s.FXReservesMonths, fxBounds[0], fxBounds[1], false)
		pressure = boundsNormalize(pressureValue, pressureBoundMin, pressureBoundMax, true)
	} else {
		stats, err := e.Statistics()
		if err != nil {
			return Result{}, err
		}

		solvency = zScoreNormalize(debtValue, stats.DebtToGDP.Mean, stats.DebtToGDP.Std, true)
		liquidity = zScoreNormalize(s.FXReservesMonths, stats.FXReserves.Mean, stats.FXReserves.Std, false)
		pressure = zScoreNormalize(pressureValue, stats.Pressure.Mean, stats.Pressure.Std, true)

		zScores = &ZScores{
			Debt:      round2(rawZScore(debtValue, stats.DebtToGDP.Mean, stats.DebtToGDP.Std)),
			Liquidity: round2(rawZScore(s.FXReservesMonths, stats.FXReserves.Mean, stats.FXReserves.Std)),
			Pressure:  round2(rawZScore(pressureValue, stats.Pressure.Mean, stats.Pressure.Std)),
		}
	}

	solvency = round2(solvency)
	liquidity = round2(liquidity)
	pressure = round2(pressure)
	apex := round2(weightSolvency*solvency + weightLiquidity*liquidity + weightPressure*pressure)

	return Result{
		Code:           s.Code,
		Name:           s.Name,
		APEXScore:      apex,
		SolvencyScore:  solvency,
		LiquidityScore: liquidity,
		PressureScore:  pressure,
		RiskTier:       RiskTier(apex),
		LetterGrade:    LetterGrade(apex),
		ZScores:        zScores,
	}, nil
}

// ScoreByCode computes the APEX result for the sovereign with the given
// code. Returns domain.ErrSovereignNotFound for unknown codes.
func (e *Engine) ScoreByCode(code string, opts Options) (Result, error) {
	s, err := e.watchlist.ByCode(code)
	if err != nil {
		return Result{}, err
	}
	return e.Score(s, opts)
}

// Simulate computes a what-if APEX result with custom debt and/or
// inflation overrides. Always z-score mode; global statistics stay
// untouched by the overrides.
func (e *Engine) Simulate(code string, debtToGDP, inflationRate *float64) (Result, error) {
	return e.ScoreByCode(code, Options{
		Mode:              ModeZScore,
		OverrideDebt:      debtToGDP,
		OverrideInflation: inflationRate,
	})
}

// ScoreAll computes APEX results for the entire watchlist in table order.
func (e *Engine) ScoreAll() ([]Result, error) {
	rows := e.watchlist.All()
	if len(rows) == 0 {
		return nil, ErrEmptyWatchlist
	}

	results := make([]Result, 0, len(rows))
	for _, s := range rows {
		r, err := e.Score(s, Options{Mode: e.mode})
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// Ranked returns all results ordered best-first (highest APEX score
// first). Equal scores order by sovereign code ascending so rankings are
// deterministic regardless of table order.
func (e *Engine) Ranked() ([]Result, error) {
	results, err := e.ScoreAll()
	if err != nil {
		return nil, err
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].APEXScore == results[j].APEXScore {
			return results[i].Code < results[j].Code
		}
		return results[i].APEXScore > results[j].APEXScore
	})
	return results, nil
}

// StressRanked returns all results ordered worst-first (lowest APEX score
// first). Same code-ascending tie-break as Ranked.
func (e *Engine) StressRanked() ([]Result, error) {
	results, err := e.ScoreAll()
	if err != nil {
		return nil, err
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].APEXScore == results[j].APEXScore {
			return results[i].Code < results[j].Code
		}
		return results[i].APEXScore < results[j].APEXScore
	})
	return results, nil
}
