package scoring

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/apexintel/apex/internal/domain"
)

// ErrEmptyWatchlist is returned when a scoring operation is attempted over
// an empty population. Statistics over zero rows are meaningless, so the
// engine fails fast instead of propagating NaN.
var ErrEmptyWatchlist = errors.New("empty watchlist population")

// SeriesStats holds the population mean and standard deviation for one
// metric series. Std is always >= 1.0.
type SeriesStats struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// Statistics holds per-series population statistics for the full
// watchlist. Recomputed from the entire table on every scoring call;
// subsetting would break cross-sovereign comparability.
type Statistics struct {
	DebtToGDP  SeriesStats `json:"debt_to_gdp"`
	FXReserves SeriesStats `json:"fx_reserves"`
	Inflation  SeriesStats `json:"inflation"`
	Pressure   SeriesStats `json:"pressure"`
}

// computeStatistics derives population mean/std for the four metric
// series. The pressure series blends inflation (%) with the absolute
// yield spread in hundredths of a percentage point; the unit mix is
// intentional - it folds two distinct stress signals into one scalar.
func computeStatistics(rows []domain.Sovereign) (Statistics, error) {
	if len(rows) == 0 {
		return Statistics{}, ErrEmptyWatchlist
	}

	debt := make([]float64, 0, len(rows))
	fx := make([]float64, 0, len(rows))
	inflation := make([]float64, 0, len(rows))
	pressure := make([]float64, 0, len(rows))

	for _, s := range rows {
		debt = append(debt, s.DebtToGDP)
		fx = append(fx, s.FXReservesMonths)
		inflation = append(inflation, s.InflationRate)
		pressure = append(pressure, pressureRaw(s.InflationRate, s.YieldSpread))
	}

	return Statistics{
		DebtToGDP:  seriesStats(debt),
		FXReserves: seriesStats(fx),
		Inflation:  seriesStats(inflation),
		Pressure:   seriesStats(pressure),
	}, nil
}

// seriesStats computes population statistics for one series, flooring the
// standard deviation at 1.0 so zero-variance populations never divide by
// zero.
func seriesStats(values []float64) SeriesStats {
	return SeriesStats{
		Mean: stat.Mean(values, nil),
		Std:  math.Max(stat.PopStdDev(values, nil), 1.0),
	}
}

// pressureRaw computes the mixed-unit pressure proxy:
// inflation rate (%) + |yield spread| / 100 (spread is in bps).
func pressureRaw(inflationRate, yieldSpread float64) float64 {
	return inflationRate + math.Abs(yieldSpread)/100
}
