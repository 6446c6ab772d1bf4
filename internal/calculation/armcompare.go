package calculation

import (
	"github.com/rpgo/mortgage-simulator/internal/domain"
	"github.com/rpgo/mortgage-simulator/pkg/dateutil"
)

const (
	// armSampleEvery keeps one rate path per this many trials.
	armSampleEvery = 50
	// histogramBins is the resolution of the cost and savings distributions.
	histogramBins = 30
)

// ArmMonteCarlo accumulates trials of a fixed vs 5/1 ARM comparison. Callers
// drive it incrementally with RunBatch and collect the aggregate with Result.
type ArmMonteCarlo struct {
	input        domain.ArmComparisonInput
	sim          *ArmRateSimulator
	fixedCost    float64
	fixedPayment float64
	costs        []float64
	samples      [][]float64
}

// ValidateArmComparison checks an ARM comparison before any trial runs.
func ValidateArmComparison(in domain.ArmComparisonInput) error {
	switch {
	case in.LoanAmount <= 0:
		return domain.NewInputError("loan_amount", "must be positive, got %.2f", in.LoanAmount)
	case in.TermYears <= ArmFixedYears:
		return domain.NewInputError("term_years", "must exceed the %d-year fixed period, got %d", ArmFixedYears, in.TermYears)
	case in.FixedRatePct < 0:
		return domain.NewInputError("fixed_rate_pct", "cannot be negative, got %.4f", in.FixedRatePct)
	case in.Trials <= 0:
		return domain.NewInputError("trials", "must be positive, got %d", in.Trials)
	}
	return in.Arm.Validate()
}

// NewArmMonteCarlo prices the fixed loan and prepares the rate simulator.
func NewArmMonteCarlo(store *SeriesStore, rng IndexSampler, in domain.ArmComparisonInput) (*ArmMonteCarlo, error) {
	if err := ValidateArmComparison(in); err != nil {
		return nil, err
	}
	opts := DefaultArmSimulatorOptions()
	opts.MeanReversionStrength = in.MeanReversion
	sim, err := NewArmRateSimulator(store, rng, opts)
	if err != nil {
		return nil, err
	}

	n := dateutil.YearsToMonths(in.TermYears)
	payment, err := MonthlyPayment(in.LoanAmount, in.FixedRatePct/100/12, n)
	if err != nil {
		return nil, err
	}
	return &ArmMonteCarlo{
		input:        in,
		sim:          sim,
		fixedPayment: payment,
		fixedCost:    payment * float64(n),
		costs:        make([]float64, 0, in.Trials),
	}, nil
}

// Completed is the number of trials run so far.
func (mc *ArmMonteCarlo) Completed() int { return len(mc.costs) }

// Done reports whether every requested trial has run.
func (mc *ArmMonteCarlo) Done() bool { return len(mc.costs) >= mc.input.Trials }

// FixedCost is the total of all fixed-rate payments.
func (mc *ArmMonteCarlo) FixedCost() float64 { return mc.fixedCost }

// RunBatch runs up to n further trials and returns how many it ran.
func (mc *ArmMonteCarlo) RunBatch(n int) (int, error) {
	ran := 0
	for ran < n && !mc.Done() {
		if err := mc.runTrial(); err != nil {
			return ran, err
		}
		ran++
	}
	return ran, nil
}

func (mc *ArmMonteCarlo) runTrial() error {
	i := len(mc.costs)
	path, err := mc.sim.SimulatePath(mc.input.Arm, mc.input.TermYears)
	if err != nil {
		return err
	}
	cost, err := ArmTotalCost(mc.input.LoanAmount, path.MonthlyRates)
	if err != nil {
		return err
	}
	mc.costs = append(mc.costs, cost)
	if i%armSampleEvery == 0 {
		mc.samples = append(mc.samples, path.AnnualRates)
	}
	return nil
}

// Result aggregates the trials run so far.
func (mc *ArmMonteCarlo) Result() (*domain.ArmComparisonResult, error) {
	if len(mc.costs) == 0 {
		return nil, domain.NewInputError("trials", "no trials have run")
	}

	summary, err := Summarize(mc.costs)
	if err != nil {
		return nil, err
	}
	ci, err := Percentiles(mc.costs, []float64{0.025, 0.975})
	if err != nil {
		return nil, err
	}

	savings := make([]float64, len(mc.costs))
	for i, c := range mc.costs {
		savings[i] = mc.fixedCost - c
	}
	costHist, err := Histogram(mc.costs, histogramBins)
	if err != nil {
		return nil, err
	}
	savingsHist, err := Histogram(savings, histogramBins)
	if err != nil {
		return nil, err
	}
	bands, err := yearlyRateStats(mc.samples)
	if err != nil {
		return nil, err
	}

	costs := make([]float64, len(mc.costs))
	copy(costs, mc.costs)
	return &domain.ArmComparisonResult{
		Input:            mc.input,
		FixedCost:        mc.fixedCost,
		FixedPayment:     mc.fixedPayment,
		Costs:            summary,
		CILow:            ci[0],
		CIHigh:           ci[1],
		ProbArmCheaper:   ProbabilityBelow(mc.costs, mc.fixedCost),
		ExpectedSavings:  mc.fixedCost - summary.Median,
		TrialCosts:       costs,
		SamplePaths:      mc.samples,
		RateBands:        bands,
		CostHistogram:    costHist,
		SavingsHistogram: savingsHist,
	}, nil
}

// yearlyRateStats is the per-year P5/P50/P95 and mean across sampled rate paths.
func yearlyRateStats(paths [][]float64) ([]domain.YearlyRateStat, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	p, err := SeriesPercentiles(paths, []float64{0.05, 0.5, 0.95})
	if err != nil {
		return nil, err
	}
	stats := make([]domain.YearlyRateStat, len(p[0]))
	for y := range stats {
		var sum float64
		for _, path := range paths {
			sum += path[y]
		}
		stats[y] = domain.YearlyRateStat{
			Year:    y + 1,
			Lower:   p[0][y],
			Median:  p[1][y],
			Upper:   p[2][y],
			Average: sum / float64(len(paths)),
		}
	}
	return stats, nil
}
