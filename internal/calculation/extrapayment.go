package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/mortgage-simulator/internal/domain"
	"github.com/rpgo/mortgage-simulator/pkg/dateutil"
)

func validateExtraPayment(in *domain.ExtraPaymentInput) error {
	if in.TermYears == 0 {
		in.TermYears = defaultLoanTermYears
	}
	if in.HouseValue == 0 {
		in.HouseValue = in.LoanAmount
	}
	switch {
	case in.LoanAmount <= 0:
		return domain.NewInputError("loan_amount", "must be positive, got %.2f", in.LoanAmount)
	case in.RatePct < 0:
		return domain.NewInputError("rate_pct", "cannot be negative, got %.4f", in.RatePct)
	case in.ExtraPayment < 0:
		return domain.NewInputError("extra_payment", "cannot be negative, got %.2f", in.ExtraPayment)
	case in.TermYears < 0:
		return domain.NewInputError("term_years", "must be positive, got %d", in.TermYears)
	case in.HouseValue < 0:
		return domain.NewInputError("house_value", "cannot be negative, got %.2f", in.HouseValue)
	}
	return nil
}

// RunExtraPayment compares prepaying principal with investing the same amount
// each month. The prepay strategy invests nothing until the loan is retired,
// then invests the freed payment plus the extra amount.
func (e *Engine) RunExtraPayment(ctx context.Context, in domain.ExtraPaymentInput) (*domain.ExtraPaymentResult, error) {
	if err := validateExtraPayment(&in); err != nil {
		return nil, fmt.Errorf("extra payment: %w", err)
	}

	n := dateutil.YearsToMonths(in.TermYears)
	rate := in.RatePct / 100 / 12
	base, err := MonthlyPayment(in.LoanAmount, rate, n)
	if err != nil {
		return nil, fmt.Errorf("extra payment: %w", err)
	}
	regular, err := Amortize(in.LoanAmount, rate, base, n, 0)
	if err != nil {
		return nil, fmt.Errorf("extra payment: %w", err)
	}
	accelerated, err := Amortize(in.LoanAmount, rate, base, n, in.ExtraPayment)
	if err != nil {
		return nil, fmt.Errorf("extra payment: %w", err)
	}
	periods, err := e.Store.GetPeriods(in.TermYears)
	if err != nil {
		return nil, fmt.Errorf("extra payment: %w", err)
	}

	payoff := accelerated.PayoffMonth
	investPaths := make([][]float64, len(periods))
	payDownPaths := make([][]float64, len(periods))
	investFinals := make([]float64, len(periods))
	payDownFinals := make([]float64, len(periods))

	err = e.runner("extra payment").Run(ctx, len(periods), func(i int) error {
		returns := periods[i].Returns
		invested := GrowMonthly(0, returns, n, ConstantContribution(in.ExtraPayment))
		redirected := GrowMonthly(0, returns, n, ContributionAfter(payoff, in.ExtraPayment+base))

		investNW := make([]float64, n+1)
		payDownNW := make([]float64, n+1)
		for m := 0; m <= n; m++ {
			investNW[m] = invested[m] + in.HouseValue - regular.Balances[m]
			payDownNW[m] = redirected[m] + in.HouseValue - accelerated.Balances[m]
		}
		investPaths[i] = YearlySamples(investNW)
		payDownPaths[i] = YearlySamples(payDownNW)
		investFinals[i] = investNW[n]
		payDownFinals[i] = payDownNW[n]
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("extra payment: %w", err)
	}

	invest, err := strategyOutcome(investFinals, investPaths, periods)
	if err != nil {
		return nil, fmt.Errorf("extra payment: %w", err)
	}
	payDown, err := strategyOutcome(payDownFinals, payDownPaths, periods)
	if err != nil {
		return nil, fmt.Errorf("extra payment: %w", err)
	}
	wins, err := PairedWinRate(investFinals, payDownFinals)
	if err != nil {
		return nil, fmt.Errorf("extra payment: %w", err)
	}
	e.logger().Debugf("extra payment: payoff month %d, investing wins %.1f%% of %d windows", payoff, wins, len(periods))

	return &domain.ExtraPaymentResult{
		Input:             in,
		BasePayment:       base,
		RegularInterest:   regular.TotalInterest,
		ExtraInterest:     accelerated.TotalInterest,
		InterestSaved:     regular.TotalInterest - accelerated.TotalInterest,
		PayoffMonth:       payoff,
		RegularBalances:   YearlySamples(regular.Balances),
		ExtraBalances:     YearlySamples(accelerated.Balances),
		Invest:            invest,
		PayDown:           payDown,
		ProbInvestingWins: wins,
		PeriodCount:       len(periods),
	}, nil
}

// strategyOutcome takes P5/P50/P95 of the final values and the full path of
// the window whose final value ranks median.
func strategyOutcome(finals []float64, paths [][]float64, periods []domain.HistoricalPeriod) (domain.StrategyOutcome, error) {
	p, err := Percentiles(finals, []float64{0.05, 0.5, 0.95})
	if err != nil {
		return domain.StrategyOutcome{}, err
	}
	idx, err := MedianRankIndex(finals)
	if err != nil {
		return domain.StrategyOutcome{}, err
	}
	return domain.StrategyOutcome{
		Lower:        p[0],
		Median:       p[1],
		Upper:        p[2],
		MedianPath:   paths[idx],
		MedianPeriod: periods[idx].Label(),
		Finals:       finals,
	}, nil
}
