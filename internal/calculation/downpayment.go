package calculation

import (
	"context"
	"fmt"
	"math"

	"github.com/rpgo/mortgage-simulator/internal/domain"
	"github.com/rpgo/mortgage-simulator/pkg/dateutil"
)

// defaultLoanTermYears applies when a scenario leaves the term unset.
const defaultLoanTermYears = 30

func validateDownPayment(in *domain.DownPaymentInput) error {
	if in.LoanTermYears == 0 {
		in.LoanTermYears = defaultLoanTermYears
	}
	if len(in.Tiers) == 0 {
		in.Tiers = append([]float64(nil), domain.DefaultDownPaymentTiers...)
	}
	switch {
	case in.HousePrice <= 0:
		return domain.NewInputError("house_price", "must be positive, got %.2f", in.HousePrice)
	case in.MortgageRatePct <= 0:
		return domain.NewInputError("mortgage_rate_pct", "must be positive, got %.4f", in.MortgageRatePct)
	case in.LoanTermYears < 0:
		return domain.NewInputError("loan_term_years", "must be positive, got %d", in.LoanTermYears)
	case in.SimulationYears <= 0:
		return domain.NewInputError("simulation_years", "must be positive, got %d", in.SimulationYears)
	case in.AppreciationPct <= -100:
		return domain.NewInputError("appreciation_pct", "must exceed -100, got %.2f", in.AppreciationPct)
	case in.PMIRatePct < 0 || in.PMIMonthlyAmount < 0:
		return domain.NewInputError("pmi", "cannot be negative")
	case in.PMIRatePct > 0 && in.PMIMonthlyAmount > 0:
		return domain.NewInputError("pmi", "rate and monthly amount are mutually exclusive")
	}
	for i, pct := range in.Tiers {
		if pct <= 0 || pct >= 1 {
			return domain.NewInputError("tiers", "fraction %v must be within (0,1)", pct)
		}
		if i > 0 && pct <= in.Tiers[i-1] {
			return domain.NewInputError("tiers", "must be strictly ascending")
		}
	}
	return nil
}

// RunDownPayment compares each down-payment tier against investing the cash a
// larger down payment would have consumed. Every historical window of the
// simulation horizon is replayed once per tier.
func (e *Engine) RunDownPayment(ctx context.Context, in domain.DownPaymentInput) (*domain.DownPaymentResult, error) {
	if err := validateDownPayment(&in); err != nil {
		return nil, fmt.Errorf("down payment: %w", err)
	}
	log := e.logger()

	years := in.SimulationYears
	if years > in.LoanTermYears {
		log.Warnf("down payment: simulation years %d exceed loan term, clamped to %d", years, in.LoanTermYears)
		years = in.LoanTermYears
	}
	periods, err := e.Store.GetPeriods(years)
	if err != nil {
		return nil, fmt.Errorf("down payment: %w", err)
	}

	rate := in.MortgageRatePct / 100 / 12
	n := dateutil.YearsToMonths(in.LoanTermYears)
	months := dateutil.YearsToMonths(years)
	maxDown := in.HousePrice * in.Tiers[len(in.Tiers)-1]
	firstDown := in.HousePrice * in.Tiers[0]

	houseValues := make([]float64, years+1)
	for y := range houseValues {
		houseValues[y] = in.HousePrice * math.Pow(1+in.AppreciationPct/100, float64(y))
	}

	tiers := make([]domain.DownPaymentTier, len(in.Tiers))
	schedules := make([]domain.AmortizationTrajectory, len(in.Tiers))
	for i, pct := range in.Tiers {
		down := in.HousePrice * pct
		loan := in.HousePrice - down
		payment, err := MonthlyPayment(loan, rate, n)
		if err != nil {
			return nil, fmt.Errorf("down payment: tier %.0f%%: %w", pct*100, err)
		}
		dropoff, err := PMIDropoffMonth(loan, pct, payment, rate, in.AppreciationPct)
		if err != nil {
			return nil, fmt.Errorf("down payment: tier %.0f%%: %w", pct*100, err)
		}
		traj, err := Amortize(loan, rate, payment, n, 0)
		if err != nil {
			return nil, fmt.Errorf("down payment: tier %.0f%%: %w", pct*100, err)
		}
		pmi := MonthlyPMI(loan, pct, in.PMIRatePct, in.PMIMonthlyAmount)

		tiers[i] = domain.DownPaymentTier{
			Percent:          pct,
			DownPayment:      down,
			InvestmentAmount: down - firstDown,
			InvestedCapital:  maxDown - down,
			LoanAmount:       loan,
			MonthlyPayment:   payment,
			MonthlyPMI:       pmi,
			PMIDropoffMonth:  dropoff,
			TotalPMIPaid:     pmi * float64(min(dropoff, months)),
			HouseValue:       houseValues,
		}
		schedules[i] = traj
	}

	top := len(tiers) - 1
	for i := range tiers {
		t := &tiers[i]
		band, err := e.investmentBand(ctx, fmt.Sprintf("down payment %.0f%%", t.Percent*100), t.InvestedCapital, periods, years)
		if err != nil {
			return nil, fmt.Errorf("down payment: %w", err)
		}
		t.Investment = band

		t.LoanBalance = make([]float64, years+1)
		t.CashFlowDifference = make([]float64, years+1)
		t.NetWorth = make([]float64, years+1)
		var cumulative float64
		for m := 1; m <= months; m++ {
			cumulative += monthlyOutlay(&tiers[top], m) - monthlyOutlay(t, m)
			if dateutil.IsAnniversary(m) {
				t.CashFlowDifference[dateutil.YearOfMonth(m)] = cumulative
			}
		}
		for y := 0; y <= years; y++ {
			t.LoanBalance[y] = schedules[i].BalanceAt(dateutil.YearsToMonths(y))
			t.NetWorth[y] = houseValues[y] - t.LoanBalance[y] + t.CashFlowDifference[y] + band.Median[y]
		}
		t.FinalNetWorth = t.NetWorth[years]
	}

	best := 0
	for i := range tiers {
		if tiers[i].FinalNetWorth > tiers[best].FinalNetWorth {
			best = i
		}
	}
	log.Debugf("down payment: %d windows, best tier %.0f%%", len(periods), tiers[best].Percent*100)

	return &domain.DownPaymentResult{
		Input:           in,
		SimulationYears: years,
		PeriodCount:     len(periods),
		Tiers:           tiers,
		BestTier:        best,
	}, nil
}

// monthlyOutlay is the mortgage payment plus any PMI due in 1-based month m.
func monthlyOutlay(t *domain.DownPaymentTier, m int) float64 {
	if m <= t.PMIDropoffMonth {
		return t.MonthlyPayment + t.MonthlyPMI
	}
	return t.MonthlyPayment
}

// investmentBand grows amount through every window and returns the yearly
// P10/P50/P90 band. A non-positive amount yields an all-zero band.
func (e *Engine) investmentBand(ctx context.Context, stage string, amount float64, periods []domain.HistoricalPeriod, years int) (domain.PercentileBand, error) {
	if amount <= 0 {
		zeros := func() []float64 { return make([]float64, years+1) }
		return domain.PercentileBand{LowerFraction: 0.1, UpperFraction: 0.9, Lower: zeros(), Median: zeros(), Upper: zeros()}, nil
	}
	paths := make([][]float64, len(periods))
	err := e.runner(stage).Run(ctx, len(periods), func(i int) error {
		paths[i] = GrowSeries(amount, periods[i].Returns, years)
		return nil
	})
	if err != nil {
		return domain.PercentileBand{}, err
	}
	return Band(paths, 0.1, 0.9)
}
