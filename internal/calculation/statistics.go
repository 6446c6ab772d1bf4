package calculation

import (
	"math"
	"sort"

	"github.com/rpgo/mortgage-simulator/internal/domain"
)

// rankIndex is the nearest-rank position floor(n*f), clamped into [0, n-1].
func rankIndex(n int, f float64) int {
	i := int(math.Floor(float64(n) * f))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func sortedCopy(batch []float64) []float64 {
	s := make([]float64, len(batch))
	copy(s, batch)
	sort.Float64s(s)
	return s
}

func checkFractions(fractions []float64) error {
	for _, f := range fractions {
		if f < 0 || f > 1 || math.IsNaN(f) {
			return domain.NewInputError("fraction", "must be within [0,1], got %v", f)
		}
	}
	return nil
}

// Percentile returns sorted[floor(N*f)] without interpolation.
func Percentile(batch []float64, f float64) (float64, error) {
	out, err := Percentiles(batch, []float64{f})
	if err != nil {
		return 0, err
	}
	return out[0], nil
}

// Percentiles evaluates several nearest-rank fractions over one sort of the batch.
func Percentiles(batch []float64, fractions []float64) ([]float64, error) {
	if len(batch) == 0 {
		return nil, domain.NewInputError("batch", "is empty")
	}
	if err := checkFractions(fractions); err != nil {
		return nil, err
	}
	sorted := sortedCopy(batch)
	out := make([]float64, len(fractions))
	for i, f := range fractions {
		out[i] = sorted[rankIndex(len(sorted), f)]
	}
	return out, nil
}

// SeriesPercentiles computes percentiles independently at each time step.
// The result is indexed [fraction][step]; every series must share one length.
func SeriesPercentiles(batch [][]float64, fractions []float64) ([][]float64, error) {
	if len(batch) == 0 {
		return nil, domain.NewInputError("batch", "is empty")
	}
	if err := checkFractions(fractions); err != nil {
		return nil, err
	}
	steps := len(batch[0])
	for i, series := range batch {
		if len(series) != steps {
			return nil, domain.NewInputError("batch", "series %d has %d steps, expected %d", i, len(series), steps)
		}
	}

	out := make([][]float64, len(fractions))
	for k := range out {
		out[k] = make([]float64, steps)
	}
	column := make([]float64, len(batch))
	for step := 0; step < steps; step++ {
		for i, series := range batch {
			column[i] = series[step]
		}
		sort.Float64s(column)
		for k, f := range fractions {
			out[k][step] = column[rankIndex(len(column), f)]
		}
	}
	return out, nil
}

// Band builds a per-step lower/median/upper band.
func Band(batch [][]float64, lower, upper float64) (domain.PercentileBand, error) {
	p, err := SeriesPercentiles(batch, []float64{lower, 0.5, upper})
	if err != nil {
		return domain.PercentileBand{}, err
	}
	return domain.PercentileBand{
		LowerFraction: lower,
		UpperFraction: upper,
		Lower:         p[0],
		Median:        p[1],
		Upper:         p[2],
	}, nil
}

// MedianRankIndex returns the batch position of the element ranked floor(N/2)
// after a stable ascending sort. Ties keep their original order.
func MedianRankIndex(finals []float64) (int, error) {
	if len(finals) == 0 {
		return 0, domain.NewInputError("batch", "is empty")
	}
	idx := make([]int, len(finals))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return finals[idx[a]] < finals[idx[b]] })
	return idx[len(idx)/2], nil
}

// Summarize returns count, mean, population standard deviation, extremes and median.
func Summarize(batch []float64) (domain.Summary, error) {
	if len(batch) == 0 {
		return domain.Summary{}, domain.NewInputError("batch", "is empty")
	}
	n := float64(len(batch))

	var sum float64
	min, max := batch[0], batch[0]
	for _, v := range batch {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mean := sum / n

	var sq float64
	for _, v := range batch {
		d := v - mean
		sq += d * d
	}

	sorted := sortedCopy(batch)
	return domain.Summary{
		Count:  len(batch),
		Mean:   mean,
		StdDev: math.Sqrt(sq / n),
		Min:    min,
		Max:    max,
		Median: sorted[len(sorted)/2],
	}, nil
}

// ProbabilityBelow is the percentage of outcomes strictly below threshold.
func ProbabilityBelow(batch []float64, threshold float64) float64 {
	if len(batch) == 0 {
		return 0
	}
	var hits int
	for _, v := range batch {
		if v < threshold {
			hits++
		}
	}
	return float64(hits) / float64(len(batch)) * 100
}

// ProbabilityAbove is the percentage of outcomes strictly above threshold.
func ProbabilityAbove(batch []float64, threshold float64) float64 {
	if len(batch) == 0 {
		return 0
	}
	var hits int
	for _, v := range batch {
		if v > threshold {
			hits++
		}
	}
	return float64(hits) / float64(len(batch)) * 100
}

// PairedWinRate is the percentage of positions where a[i] - b[i] > 0.
func PairedWinRate(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, domain.NewInputError("batch", "paired lengths differ (%d vs %d)", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, domain.NewInputError("batch", "is empty")
	}
	var wins int
	for i := range a {
		if a[i]-b[i] > 0 {
			wins++
		}
	}
	return float64(wins) / float64(len(a)) * 100, nil
}

// Histogram splits [min, max] into equal-width bins. Values equal to max land in the last bin.
func Histogram(batch []float64, bins int) (domain.Histogram, error) {
	if len(batch) == 0 {
		return domain.Histogram{}, domain.NewInputError("batch", "is empty")
	}
	if bins <= 0 {
		return domain.Histogram{}, domain.NewInputError("bins", "must be positive, got %d", bins)
	}

	min, max := batch[0], batch[0]
	for _, v := range batch {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	width := (max - min) / float64(bins)

	h := domain.Histogram{
		Min:      min,
		Max:      max,
		BinWidth: width,
		Starts:   make([]float64, bins),
		Counts:   make([]int, bins),
	}
	for i := range h.Starts {
		h.Starts[i] = min + float64(i)*width
	}
	for _, v := range batch {
		i := bins - 1
		if width > 0 {
			i = int((v - min) / width)
			if i >= bins {
				i = bins - 1
			}
		}
		h.Counts[i]++
	}
	return h, nil
}
