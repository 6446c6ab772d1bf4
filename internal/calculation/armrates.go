package calculation

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/rpgo/mortgage-simulator/internal/domain"
)

const (
	// ArmRateFloorPct is the absolute floor for both the index and the note rate.
	ArmRateFloorPct = 0.5
	// indexPersistence weights the previous index and the sampled level equally.
	indexPersistence = 0.4
	indexSampleShare = 0.4
)

// IndexSampler draws a uniform index in [0, n). *rand.Rand satisfies it.
type IndexSampler interface {
	Intn(n int) int
}

// NewSampler returns a seeded sampler; a zero seed draws one from seedFunc.
func NewSampler(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = seedFunc()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// ArmSimulatorOptions tunes the index model.
type ArmSimulatorOptions struct {
	// MeanReversionStrength in [0,1]; 0 disables reversion.
	MeanReversionStrength float64
	// LongTermCutoff selects the observations averaged for reversion.
	LongTermCutoff time.Time
	// StartingIndexPct overrides the latest observed rate when positive.
	StartingIndexPct float64
}

// DefaultArmSimulatorOptions disables mean reversion and averages from 1965 on.
func DefaultArmSimulatorOptions() ArmSimulatorOptions {
	return ArmSimulatorOptions{LongTermCutoff: DefaultLongTermCutoff}
}

// ArmRateSimulator generates capped 5/1 ARM rate paths by resampling historical index levels.
type ArmRateSimulator struct {
	levels          []float64
	longTermAverage float64
	startIndex      float64
	reversion       float64
	rng             IndexSampler
}

// NewArmRateSimulator prepares a simulator over the store's monthly rate series.
func NewArmRateSimulator(store *SeriesStore, rng IndexSampler, opts ArmSimulatorOptions) (*ArmRateSimulator, error) {
	if store == nil {
		return nil, domain.NewInputError("store", "is required")
	}
	if rng == nil {
		return nil, domain.NewInputError("sampler", "is required")
	}
	if opts.MeanReversionStrength < 0 || opts.MeanReversionStrength > 1 {
		return nil, domain.NewInputError("mean_reversion", "must be within [0,1], got %v", opts.MeanReversionStrength)
	}
	if opts.LongTermCutoff.IsZero() {
		opts.LongTermCutoff = DefaultLongTermCutoff
	}

	start := store.LatestRate()
	if opts.StartingIndexPct > 0 {
		start = opts.StartingIndexPct
	}
	return &ArmRateSimulator{
		levels:          store.RateLevels(),
		longTermAverage: store.LongTermAverage(opts.LongTermCutoff),
		startIndex:      start,
		reversion:       opts.MeanReversionStrength,
		rng:             rng,
	}, nil
}

// LongTermAverage is the reversion target in percent.
func (s *ArmRateSimulator) LongTermAverage() float64 { return s.longTermAverage }

// SimulatePath draws one path of annual note rates for a loan of the given length.
// Years 1-5 hold the initial rate. Each later year blends the previous index
// with a uniformly sampled historical level, adds the margin, then applies the
// adjustment cap, the lifetime cap and the absolute floor in that order.
func (s *ArmRateSimulator) SimulatePath(terms domain.ArmTerms, years int) (domain.ArmPath, error) {
	if err := terms.Validate(); err != nil {
		return domain.ArmPath{}, err
	}
	if years <= ArmFixedYears {
		return domain.ArmPath{}, domain.NewInputError("years", "must exceed the %d-year fixed period, got %d", ArmFixedYears, years)
	}

	annual := make([]float64, 0, years)
	for i := 0; i < ArmFixedYears; i++ {
		annual = append(annual, terms.InitialRatePct)
	}

	index := s.startIndex
	last := terms.InitialRatePct
	ceiling := terms.CeilingPct()
	for year := 0; year < years-ArmFixedYears; year++ {
		reversion := (s.longTermAverage - index) * s.reversion
		sample := s.levels[s.rng.Intn(len(s.levels))]
		index = math.Max(ArmRateFloorPct, index*indexPersistence+sample*indexSampleShare+reversion)

		capPct := terms.PeriodicCapPct
		if year == 0 {
			capPct = terms.InitialCapPct
		}
		rate := math.Min(index+terms.MarginPct, last+capPct)
		rate = math.Min(rate, ceiling)
		rate = math.Max(rate, ArmRateFloorPct)

		annual = append(annual, rate)
		last = rate
	}

	return domain.ArmPath{AnnualRates: annual, MonthlyRates: MonthlyRatesFromAnnual(annual)}, nil
}

// MonthlyRatesFromAnnual repeats each annual percentage twelve times as a periodic decimal rate.
func MonthlyRatesFromAnnual(annual []float64) []float64 {
	out := make([]float64, 0, len(annual)*12)
	for _, r := range annual {
		m := r / 100 / 12
		for i := 0; i < 12; i++ {
			out = append(out, m)
		}
	}
	return out
}

func (s *ArmRateSimulator) String() string {
	return fmt.Sprintf("ArmRateSimulator{levels=%d, lta=%.3f, start=%.2f, reversion=%.2f}",
		len(s.levels), s.longTermAverage, s.startIndex, s.reversion)
}
