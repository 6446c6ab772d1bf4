package calculation

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rpgo/mortgage-simulator/internal/domain"
	"github.com/rpgo/mortgage-simulator/pkg/dateutil"
)

// File names expected by LoadSeriesStore.
const (
	ReturnsFileName  = "sp500-annual.csv"
	TreasuryFileName = "treasury-1y.csv"
)

// DefaultLongTermCutoff excludes the pre-1965 regime from the reversion target.
var DefaultLongTermCutoff = time.Date(1965, 1, 1, 0, 0, 0, 0, time.UTC)

// SeriesStore holds the annual market returns and the short-rate history.
// It is read-only after construction and safe to share.
type SeriesStore struct {
	returns []domain.AnnualReturnPoint
	rates   []domain.RatePoint
	monthly []domain.RatePoint
}

// NewSeriesStore validates and copies the supplied series. Rates are sorted by date.
func NewSeriesStore(returns []domain.AnnualReturnPoint, rates []domain.RatePoint) (*SeriesStore, error) {
	if len(returns) == 0 {
		return nil, domain.NewInputError("returns", "series is empty")
	}
	if len(rates) == 0 {
		return nil, domain.NewInputError("rates", "series is empty")
	}

	r := make([]domain.AnnualReturnPoint, len(returns))
	copy(r, returns)
	sort.SliceStable(r, func(i, j int) bool { return r[i].Year < r[j].Year })
	for i := 1; i < len(r); i++ {
		if r[i].Year != r[i-1].Year+1 {
			return nil, domain.NewInputError("returns", "years must be contiguous and unique, found %d after %d", r[i].Year, r[i-1].Year)
		}
	}

	rt := make([]domain.RatePoint, len(rates))
	copy(rt, rates)
	sort.SliceStable(rt, func(i, j int) bool { return rt[i].Date.Before(rt[j].Date) })
	for i := 1; i < len(rt); i++ {
		if !rt[i].Date.After(rt[i-1].Date) {
			return nil, domain.NewInputError("rates", "duplicate observation on %s", rt[i].Date.Format(dateutil.DateLayout))
		}
	}

	s := &SeriesStore{returns: r, rates: rt}
	s.monthly = densify(rt)
	return s, nil
}

// DefaultSeriesStore returns a store over the embedded S&P 500 and 1-year Treasury tables.
func DefaultSeriesStore() *SeriesStore {
	s, err := NewSeriesStore(sp500AnnualReturns, treasury1YRates)
	if err != nil {
		panic(fmt.Sprintf("embedded historical data is invalid: %v", err))
	}
	return s
}

// LoadSeriesStore reads sp500-annual.csv (year,return_pct) and treasury-1y.csv
// (date,rate_pct) from dir. Malformed rows are skipped.
func LoadSeriesStore(dir string) (*SeriesStore, error) {
	returns, err := loadReturnsCSV(filepath.Join(dir, ReturnsFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to load market returns: %w", err)
	}
	rates, err := loadRatesCSV(filepath.Join(dir, TreasuryFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to load treasury rates: %w", err)
	}
	return NewSeriesStore(returns, rates)
}

func readCSVRows(filePath string) ([][]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("invalid CSV format: expected at least 2 columns")
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read data row: %w", err)
		}
		if len(record) < 2 {
			continue // Skip malformed rows
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func loadReturnsCSV(filePath string) ([]domain.AnnualReturnPoint, error) {
	rows, err := readCSVRows(filePath)
	if err != nil {
		return nil, err
	}
	var points []domain.AnnualReturnPoint
	for _, record := range rows {
		year, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			continue
		}
		points = append(points, domain.AnnualReturnPoint{Year: year, ReturnPct: value})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no valid data points found in %s", filePath)
	}
	return points, nil
}

func loadRatesCSV(filePath string) ([]domain.RatePoint, error) {
	rows, err := readCSVRows(filePath)
	if err != nil {
		return nil, err
	}
	var points []domain.RatePoint
	for _, record := range rows {
		d, err := dateutil.ParseDate(strings.TrimSpace(record[0]))
		if err != nil {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			continue
		}
		points = append(points, domain.RatePoint{Date: d, RatePct: value})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no valid data points found in %s", filePath)
	}
	return points, nil
}

// densify linearly interpolates a month-by-month series between observations.
// Each observation appears exactly once.
func densify(rates []domain.RatePoint) []domain.RatePoint {
	out := make([]domain.RatePoint, 0, len(rates)*6)
	for i := 0; i < len(rates)-1; i++ {
		start, end := rates[i], rates[i+1]
		out = append(out, start)

		months := dateutil.MonthsBetween(start.Date, end.Date)
		if months > 1 {
			step := (end.RatePct - start.RatePct) / float64(months)
			for j := 1; j < months; j++ {
				out = append(out, domain.RatePoint{
					Date:    dateutil.AddMonths(start.Date, j),
					RatePct: start.RatePct + step*float64(j),
				})
			}
		}
	}
	return append(out, rates[len(rates)-1])
}

// Returns copies the annual return series.
func (s *SeriesStore) Returns() []domain.AnnualReturnPoint {
	out := make([]domain.AnnualReturnPoint, len(s.returns))
	copy(out, s.returns)
	return out
}

// Rates copies the raw rate observations in date order.
func (s *SeriesStore) Rates() []domain.RatePoint {
	out := make([]domain.RatePoint, len(s.rates))
	copy(out, s.rates)
	return out
}

// YearSpan returns the first and last year of the return series.
func (s *SeriesStore) YearSpan() (first, last int) {
	return s.returns[0].Year, s.returns[len(s.returns)-1].Year
}

// GetPeriods returns every contiguous window of the given length, sliding by one year.
func (s *SeriesStore) GetPeriods(years int) ([]domain.HistoricalPeriod, error) {
	n := len(s.returns)
	if years <= 0 || years > n {
		return nil, &domain.RangeError{Requested: years, Available: n}
	}

	periods := make([]domain.HistoricalPeriod, 0, n-years+1)
	for i := 0; i <= n-years; i++ {
		returns := make([]float64, years)
		for j := range returns {
			returns[j] = s.returns[i+j].ReturnPct
		}
		periods = append(periods, domain.HistoricalPeriod{
			StartYear: s.returns[i].Year,
			EndYear:   s.returns[i].Year + years - 1,
			Returns:   returns,
		})
	}
	return periods, nil
}

// MonthlyRateSeries returns a copy of the densified monthly series.
func (s *SeriesStore) MonthlyRateSeries() []domain.RatePoint {
	out := make([]domain.RatePoint, len(s.monthly))
	copy(out, s.monthly)
	return out
}

// RateLevels returns the rate of every point in the monthly series.
func (s *SeriesStore) RateLevels() []float64 {
	levels := make([]float64, len(s.monthly))
	for i, p := range s.monthly {
		levels[i] = p.RatePct
	}
	return levels
}

// LatestRate is the most recent observation.
func (s *SeriesStore) LatestRate() float64 {
	return s.rates[len(s.rates)-1].RatePct
}

// LongTermAverage averages the raw observations dated on or after cutoff.
// It falls back to every observation when none qualify.
func (s *SeriesStore) LongTermAverage(cutoff time.Time) float64 {
	var sum float64
	var count int
	for _, p := range s.rates {
		if !p.Date.Before(cutoff) {
			sum += p.RatePct
			count++
		}
	}
	if count == 0 {
		for _, p := range s.rates {
			sum += p.RatePct
		}
		count = len(s.rates)
	}
	return sum / float64(count)
}

// PeriodStatistics summarizes the CAGR of every window of the given length.
func (s *SeriesStore) PeriodStatistics(years int) (domain.PeriodStatistics, error) {
	periods, err := s.GetPeriods(years)
	if err != nil {
		return domain.PeriodStatistics{}, err
	}

	cagrs := make([]float64, len(periods))
	for i, p := range periods {
		cagrs[i] = CAGR(p.Returns)
	}
	summary, err := Summarize(cagrs)
	if err != nil {
		return domain.PeriodStatistics{}, err
	}
	pct, err := Percentiles(cagrs, []float64{0.1, 0.9})
	if err != nil {
		return domain.PeriodStatistics{}, err
	}

	return domain.PeriodStatistics{
		Years:        years,
		Count:        len(periods),
		MinCAGR:      summary.Min,
		MaxCAGR:      summary.Max,
		MeanCAGR:     summary.Mean,
		MedianCAGR:   summary.Median,
		Percentile10: pct[0],
		Percentile90: pct[1],
	}, nil
}

// CAGR is the constant annual rate, in percent, equivalent to a sequence of percent returns.
func CAGR(returns []float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	total := 1.0
	for _, r := range returns {
		total *= 1 + r/100
	}
	return (math.Pow(total, 1/float64(len(returns))) - 1) * 100
}
