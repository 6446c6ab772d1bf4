package calculation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/mortgage-simulator/internal/domain"
)

func pointsInput() domain.PointsInput {
	return domain.PointsInput{
		LoanAmount:        400000,
		TermYears:         30,
		BaseRatePct:       7,
		ReductionPerPoint: 0.25,
		NumPoints:         1,
		OwnershipYears:    10,
	}
}

func TestRunPoints(t *testing.T) {
	res, err := NewEngine(nil).RunPoints(context.Background(), pointsInput())
	require.NoError(t, err)

	assert.Equal(t, defaultCostPerPointPct, res.Input.CostPerPointPct)
	assert.InDelta(t, 4000, res.PointsCost, 1e-9)
	assert.InDelta(t, 6.75, res.ReducedRatePct, 1e-12)
	assert.InDelta(t, 2661.21, res.BasePayment, 0.01)
	assert.Greater(t, res.MonthlySavings, 0.0)
	assert.InDelta(t, res.BasePayment-res.ReducedPayment, res.MonthlySavings, 1e-9)
	assert.Greater(t, res.InterestSavings, 0.0)
	assert.Equal(t, 97-10+1, res.PeriodCount)

	require.Len(t, res.CumulativeSavings, 11)
	assert.InDelta(t, -4000, res.CumulativeSavings[0], 1e-9)
	assert.InDelta(t, res.InterestSavings-res.PointsCost, res.CumulativeSavings[10], 1e-6)

	require.True(t, res.BreakEvenReached)
	assert.Greater(t, res.BreakEvenMonth, 0)
	assert.LessOrEqual(t, res.BreakEvenMonth, 120)
	for y, v := range res.CumulativeSavings {
		if y*12 >= res.BreakEvenMonth {
			assert.GreaterOrEqual(t, v, 0.0, "year %d after break-even", y)
		} else {
			assert.Less(t, v, 0.0, "year %d before break-even", y)
		}
	}

	band := res.Investment
	require.Len(t, band.Median, 11)
	assert.Equal(t, 4000.0, band.Median[0])
	for y := range band.Median {
		assert.LessOrEqual(t, band.Lower[y], band.Median[y])
		assert.LessOrEqual(t, band.Median[y], band.Upper[y])
	}
	assert.LessOrEqual(t, res.FinalP10, res.FinalMedian)
	assert.LessOrEqual(t, res.FinalMedian, res.FinalP90)
	assert.GreaterOrEqual(t, res.ProbInvestingWins, 0.0)
	assert.LessOrEqual(t, res.ProbInvestingWins, 100.0)
}

func TestRunPointsNeverBreaksEven(t *testing.T) {
	in := pointsInput()
	in.CostPerPointPct = 10
	in.ReductionPerPoint = 0.01
	in.OwnershipYears = 2
	res, err := NewEngine(nil).RunPoints(context.Background(), in)
	require.NoError(t, err)

	assert.False(t, res.BreakEvenReached)
	assert.Equal(t, 24, res.BreakEvenMonth, "reports the planned horizon when unreached")
	assert.Less(t, res.CumulativeSavings[2], 0.0)
}

func TestRunPointsWithoutPoints(t *testing.T) {
	in := pointsInput()
	in.NumPoints = 0
	res, err := NewEngine(nil).RunPoints(context.Background(), in)
	require.NoError(t, err)

	assert.Zero(t, res.PointsCost)
	assert.True(t, res.BreakEvenReached)
	assert.Zero(t, res.BreakEvenMonth)
	assert.Zero(t, res.MonthlySavings)
	assert.Zero(t, res.FinalMedian)
}

func TestRunPointsFractionalPoints(t *testing.T) {
	in := pointsInput()
	in.NumPoints = 1.5
	res, err := NewEngine(nil).RunPoints(context.Background(), in)
	require.NoError(t, err)
	assert.InDelta(t, 6000, res.PointsCost, 1e-9)
	assert.InDelta(t, 6.625, res.ReducedRatePct, 1e-12)
}

func TestRunPointsValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.PointsInput)
	}{
		{"no loan", func(in *domain.PointsInput) { in.LoanAmount = 0 }},
		{"no base rate", func(in *domain.PointsInput) { in.BaseRatePct = 0 }},
		{"no ownership", func(in *domain.PointsInput) { in.OwnershipYears = 0 }},
		{"ownership beyond term", func(in *domain.PointsInput) { in.OwnershipYears = 31 }},
		{"negative points", func(in *domain.PointsInput) { in.NumPoints = -1 }},
		{"rate reduced to zero", func(in *domain.PointsInput) { in.NumPoints = 28 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := pointsInput()
			tt.mutate(&in)
			_, err := NewEngine(nil).RunPoints(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
