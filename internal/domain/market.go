package domain

import (
	"fmt"
	"time"
)

// AnnualReturnPoint is one calendar year of total market return, in percent.
type AnnualReturnPoint struct {
	Year      int     `json:"year"`
	ReturnPct float64 `json:"return_pct"`
}

// RatePoint is a short-rate observation, in percent.
type RatePoint struct {
	Date    time.Time `json:"date"`
	RatePct float64   `json:"rate_pct"`
}

// HistoricalPeriod is a contiguous window of annual returns.
type HistoricalPeriod struct {
	StartYear int       `json:"start_year"`
	EndYear   int       `json:"end_year"`
	Returns   []float64 `json:"returns"`
}

// Label renders the window as "1950-1979".
func (p HistoricalPeriod) Label() string {
	return fmt.Sprintf("%d-%d", p.StartYear, p.EndYear)
}

// PeriodStatistics summarizes the CAGR of every window of a given length.
type PeriodStatistics struct {
	Years        int     `json:"years"`
	Count        int     `json:"count"`
	MinCAGR      float64 `json:"min_cagr"`
	MaxCAGR      float64 `json:"max_cagr"`
	MeanCAGR     float64 `json:"mean_cagr"`
	MedianCAGR   float64 `json:"median_cagr"`
	Percentile10 float64 `json:"percentile_10"`
	Percentile90 float64 `json:"percentile_90"`
}
