package calculation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/mortgage-simulator/internal/domain"
)

func downPaymentInput() domain.DownPaymentInput {
	return domain.DownPaymentInput{
		HousePrice:      400000,
		MortgageRatePct: 6.5,
		LoanTermYears:   30,
		SimulationYears: 10,
		AppreciationPct: 3,
		PMIRatePct:      0.5,
	}
}

func TestRunDownPaymentTiers(t *testing.T) {
	e := NewEngine(nil)
	res, err := e.RunDownPayment(context.Background(), downPaymentInput())
	require.NoError(t, err)

	assert.Equal(t, 10, res.SimulationYears)
	assert.Equal(t, 97-10+1, res.PeriodCount)
	require.Len(t, res.Tiers, 4)
	assert.InDeltaSlice(t, []float64{0, 20000, 40000, 60000}, res.InvestmentAmounts(), 1e-9)

	expectedCapital := []float64{60000, 40000, 20000, 0}
	for i, tier := range res.Tiers {
		assert.InDelta(t, expectedCapital[i], tier.InvestedCapital, 1e-9)
		assert.InDelta(t, 400000-tier.DownPayment, tier.LoanAmount, 1e-9)
		require.Len(t, tier.NetWorth, 11)
		require.Len(t, tier.LoanBalance, 11)
		require.Len(t, tier.Investment.Median, 11)
		// Every tier starts from the same pool of cash: the largest down payment.
		assert.InDelta(t, 80000, tier.NetWorth[0], 1e-6, "tier %.0f%%", tier.Percent*100)
		assert.Equal(t, tier.NetWorth[10], tier.FinalNetWorth)
		for y := range tier.NetWorth {
			assert.LessOrEqual(t, tier.Investment.Lower[y], tier.Investment.Median[y])
			assert.LessOrEqual(t, tier.Investment.Median[y], tier.Investment.Upper[y])
		}
	}

	top := res.Tiers[3]
	assert.Zero(t, top.MonthlyPMI)
	assert.Zero(t, top.PMIDropoffMonth)
	assert.Zero(t, top.TotalPMIPaid)
	for y := range top.CashFlowDifference {
		assert.Zero(t, top.CashFlowDifference[y])
		assert.Zero(t, top.Investment.Median[y])
	}

	// Smaller down payments carry PMI longer and pay more each month.
	for i := 0; i < 2; i++ {
		assert.Greater(t, res.Tiers[i].PMIDropoffMonth, res.Tiers[i+1].PMIDropoffMonth)
		assert.Greater(t, res.Tiers[i].MonthlyPayment, res.Tiers[i+1].MonthlyPayment)
		assert.Less(t, res.Tiers[i].CashFlowDifference[10], 0.0)
	}

	best := res.Tiers[res.BestTier]
	for _, tier := range res.Tiers {
		assert.LessOrEqual(t, tier.FinalNetWorth, best.FinalNetWorth)
	}
}

func TestRunDownPaymentHouseValueAppreciates(t *testing.T) {
	res, err := NewEngine(nil).RunDownPayment(context.Background(), downPaymentInput())
	require.NoError(t, err)

	hv := res.Tiers[0].HouseValue
	require.Len(t, hv, 11)
	assert.Equal(t, 400000.0, hv[0])
	assert.InDelta(t, 412000, hv[1], 1e-6)
	for y := 1; y < len(hv); y++ {
		assert.Greater(t, hv[y], hv[y-1])
	}
}

func TestRunDownPaymentFixedPMIAmount(t *testing.T) {
	in := downPaymentInput()
	in.PMIRatePct = 0
	in.PMIMonthlyAmount = 150
	res, err := NewEngine(nil).RunDownPayment(context.Background(), in)
	require.NoError(t, err)

	for _, tier := range res.Tiers[:3] {
		assert.Equal(t, 150.0, tier.MonthlyPMI)
		assert.InDelta(t, 150*float64(min(tier.PMIDropoffMonth, 120)), tier.TotalPMIPaid, 1e-9)
	}
}

func TestRunDownPaymentClampsSimulationYears(t *testing.T) {
	log := &recordingLogger{}
	e := NewEngine(nil)
	e.SetLogger(log)

	in := downPaymentInput()
	in.LoanTermYears = 15
	in.SimulationYears = 20
	res, err := e.RunDownPayment(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 15, res.SimulationYears)
	assert.Equal(t, 97-15+1, res.PeriodCount)
	require.Len(t, log.warn, 1)
	assert.Contains(t, log.warn[0], "clamped to 15")
	// The loan is retired at the end of its term.
	for _, tier := range res.Tiers {
		assert.Zero(t, tier.LoanBalance[15])
	}
}

func TestRunDownPaymentValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.DownPaymentInput)
	}{
		{"no price", func(in *domain.DownPaymentInput) { in.HousePrice = 0 }},
		{"no rate", func(in *domain.DownPaymentInput) { in.MortgageRatePct = 0 }},
		{"no horizon", func(in *domain.DownPaymentInput) { in.SimulationYears = 0 }},
		{"both pmi forms", func(in *domain.DownPaymentInput) { in.PMIMonthlyAmount = 100 }},
		{"descending tiers", func(in *domain.DownPaymentInput) { in.Tiers = []float64{0.2, 0.1} }},
		{"tier out of range", func(in *domain.DownPaymentInput) { in.Tiers = []float64{0.1, 1.2} }},
		{"collapsing property", func(in *domain.DownPaymentInput) { in.AppreciationPct = -100 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := downPaymentInput()
			tt.mutate(&in)
			_, err := NewEngine(nil).RunDownPayment(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRunDownPaymentHorizonBeyondHistory(t *testing.T) {
	in := downPaymentInput()
	in.LoanTermYears = 120
	in.SimulationYears = 98
	_, err := NewEngine(nil).RunDownPayment(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestRunDownPaymentCustomTiers(t *testing.T) {
	in := downPaymentInput()
	in.Tiers = []float64{0.1, 0.25}
	res, err := NewEngine(nil).RunDownPayment(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, res.Tiers, 2)
	assert.InDeltaSlice(t, []float64{0, 60000}, res.InvestmentAmounts(), 1e-9)
	assert.InDelta(t, 60000, res.Tiers[0].InvestedCapital, 1e-9)
	assert.Zero(t, res.Tiers[1].MonthlyPMI)
}

func TestRunDownPaymentYearlyBalancesFollowSchedule(t *testing.T) {
	in := downPaymentInput()
	res, err := NewEngine(nil).RunDownPayment(context.Background(), in)
	require.NoError(t, err)

	rate := in.MortgageRatePct / 100 / 12
	for _, tier := range res.Tiers {
		traj, err := Amortize(tier.LoanAmount, rate, tier.MonthlyPayment, 360, 0)
		require.NoError(t, err)
		assert.Equal(t, tier.LoanAmount, tier.LoanBalance[0])
		for y := 1; y <= res.SimulationYears; y++ {
			assert.Equal(t, traj.Balances[y*12], tier.LoanBalance[y], "year %d", y)
		}
		assert.Zero(t, tier.CashFlowDifference[0])
	}
}
