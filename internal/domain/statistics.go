package domain

// PercentileBand holds per-step percentiles aligned to a time axis.
type PercentileBand struct {
	LowerFraction float64   `json:"lower_fraction"`
	UpperFraction float64   `json:"upper_fraction"`
	Lower         []float64 `json:"lower"`
	Median        []float64 `json:"median"`
	Upper         []float64 `json:"upper"`
}

// Final returns the last (lower, median, upper) triple, or zeros when empty.
func (b PercentileBand) Final() (lower, median, upper float64) {
	n := len(b.Median)
	if n == 0 {
		return 0, 0, 0
	}
	return b.Lower[n-1], b.Median[n-1], b.Upper[n-1]
}

// Summary describes a batch of scalar outcomes.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// Histogram buckets a batch into equal-width bins; the last bin is closed.
type Histogram struct {
	Min      float64   `json:"min"`
	Max      float64   `json:"max"`
	BinWidth float64   `json:"bin_width"`
	Starts   []float64 `json:"starts"`
	Counts   []int     `json:"counts"`
}
