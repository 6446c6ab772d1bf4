package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/mortgage-simulator/internal/domain"
	"github.com/rpgo/mortgage-simulator/pkg/dateutil"
)

// defaultCostPerPointPct is the conventional price of one discount point.
const defaultCostPerPointPct = 1.0

func validatePoints(in *domain.PointsInput) error {
	if in.CostPerPointPct == 0 {
		in.CostPerPointPct = defaultCostPerPointPct
	}
	if in.TermYears == 0 {
		in.TermYears = defaultLoanTermYears
	}
	switch {
	case in.LoanAmount <= 0:
		return domain.NewInputError("loan_amount", "must be positive, got %.2f", in.LoanAmount)
	case in.BaseRatePct <= 0:
		return domain.NewInputError("base_rate_pct", "must be positive, got %.4f", in.BaseRatePct)
	case in.TermYears < 0:
		return domain.NewInputError("term_years", "must be positive, got %d", in.TermYears)
	case in.CostPerPointPct < 0 || in.ReductionPerPoint < 0 || in.NumPoints < 0:
		return domain.NewInputError("points", "cost, reduction and count cannot be negative")
	case in.OwnershipYears <= 0:
		return domain.NewInputError("ownership_years", "must be positive, got %d", in.OwnershipYears)
	case in.OwnershipYears > in.TermYears:
		return domain.NewInputError("ownership_years", "%d exceeds loan term %d", in.OwnershipYears, in.TermYears)
	}
	if in.BaseRatePct-in.ReductionPerPoint*in.NumPoints <= 0 {
		return domain.NewInputError("reduction_per_point", "reduced rate must stay positive")
	}
	return nil
}

// RunPoints compares buying discount points with investing their cost over
// the planned ownership period.
func (e *Engine) RunPoints(ctx context.Context, in domain.PointsInput) (*domain.PointsResult, error) {
	if err := validatePoints(&in); err != nil {
		return nil, fmt.Errorf("points: %w", err)
	}

	cost := in.LoanAmount * (in.CostPerPointPct / 100) * in.NumPoints
	reduced := in.BaseRatePct - in.ReductionPerPoint*in.NumPoints
	n := dateutil.YearsToMonths(in.TermYears)
	planned := dateutil.YearsToMonths(in.OwnershipYears)
	baseRate := in.BaseRatePct / 100 / 12
	reducedRate := reduced / 100 / 12

	basePay, err := MonthlyPayment(in.LoanAmount, baseRate, n)
	if err != nil {
		return nil, fmt.Errorf("points: %w", err)
	}
	reducedPay, err := MonthlyPayment(in.LoanAmount, reducedRate, n)
	if err != nil {
		return nil, fmt.Errorf("points: %w", err)
	}
	baseSched, err := Amortize(in.LoanAmount, baseRate, basePay, planned, 0)
	if err != nil {
		return nil, fmt.Errorf("points: %w", err)
	}
	reducedSched, err := Amortize(in.LoanAmount, reducedRate, reducedPay, planned, 0)
	if err != nil {
		return nil, fmt.Errorf("points: %w", err)
	}

	cumulative := -cost
	yearly := make([]float64, 1, in.OwnershipYears+1)
	yearly[0] = cumulative
	breakEven, reached := 0, cost <= 0
	for m := 1; m <= planned; m++ {
		cumulative += baseSched.MonthlyInterest[m-1] - reducedSched.MonthlyInterest[m-1]
		if !reached && cumulative >= 0 {
			breakEven, reached = m, true
		}
		if dateutil.IsAnniversary(m) {
			yearly = append(yearly, cumulative)
		}
	}
	if !reached {
		breakEven = planned
	}

	periods, err := e.Store.GetPeriods(in.OwnershipYears)
	if err != nil {
		return nil, fmt.Errorf("points: %w", err)
	}
	paths := make([][]float64, len(periods))
	finals := make([]float64, len(periods))
	err = e.runner("points").Run(ctx, len(periods), func(i int) error {
		paths[i] = GrowSeries(cost, periods[i].Returns, in.OwnershipYears)
		finals[i] = paths[i][len(paths[i])-1]
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("points: %w", err)
	}
	band, err := Band(paths, 0.1, 0.9)
	if err != nil {
		return nil, fmt.Errorf("points: %w", err)
	}
	fp, err := Percentiles(finals, []float64{0.1, 0.5, 0.9})
	if err != nil {
		return nil, fmt.Errorf("points: %w", err)
	}

	savings := baseSched.TotalInterest - reducedSched.TotalInterest
	wins := ProbabilityAbove(finals, savings)
	e.logger().Debugf("points: cost %.2f, break-even month %d (reached=%t), investing wins %.1f%%", cost, breakEven, reached, wins)

	return &domain.PointsResult{
		Input:             in,
		PointsCost:        cost,
		ReducedRatePct:    reduced,
		BasePayment:       basePay,
		ReducedPayment:    reducedPay,
		MonthlySavings:    basePay - reducedPay,
		InterestSavings:   savings,
		CumulativeSavings: yearly,
		BreakEvenMonth:    breakEven,
		BreakEvenReached:  reached,
		Investment:        band,
		FinalP10:          fp[0],
		FinalMedian:       fp[1],
		FinalP90:          fp[2],
		ProbInvestingWins: wins,
		PeriodCount:       len(periods),
	}, nil
}
