package calculation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowSeries(t *testing.T) {
	got := GrowSeries(10000, []float64{10, -10}, 2)
	assert.InDeltaSlice(t, []float64{10000, 11000, 9900}, got, 1e-9)
}

func TestGrowSeriesTruncatesToAvailableReturns(t *testing.T) {
	got := GrowSeries(100, []float64{5, 5}, 10)
	assert.Len(t, got, 3)

	got = GrowSeries(100, []float64{5, 5}, 0)
	assert.Equal(t, []float64{100}, got)
}

func TestGrowSeriesZeroAmountStaysZero(t *testing.T) {
	for _, v := range GrowSeries(0, []float64{30, -40, 12}, 3) {
		assert.Zero(t, v)
	}
}

func TestMonthlyReturnsCompoundToAnnual(t *testing.T) {
	rates := MonthlyReturns([]float64{12, -20}, 24)
	require.Len(t, rates, 24)

	growth := 1.0
	for _, r := range rates[:12] {
		growth *= 1 + r
	}
	assert.InDelta(t, 1.12, growth, 1e-12)

	growth = 1.0
	for _, r := range rates[12:] {
		growth *= 1 + r
	}
	assert.InDelta(t, 0.80, growth, 1e-12)
}

func TestMonthlyReturnsPadsWithLastRate(t *testing.T) {
	rates := MonthlyReturns([]float64{10}, 15)
	require.Len(t, rates, 15)
	expected := math.Pow(1.10, 1.0/12) - 1
	for _, r := range rates {
		assert.InDelta(t, expected, r, 1e-15)
	}
}

func TestContributions(t *testing.T) {
	constant := ConstantContribution(250)
	assert.Equal(t, 250.0, constant(1))
	assert.Equal(t, 250.0, constant(360))

	after := ContributionAfter(3, 50)
	assert.Zero(t, after(1))
	assert.Zero(t, after(3))
	assert.Equal(t, 50.0, after(4))
}

func TestGrowMonthlyOrdering(t *testing.T) {
	// Zero returns: the balance is the running contribution total.
	flat := GrowMonthly(0, []float64{0, 0}, 24, ConstantContribution(100))
	require.Len(t, flat, 25)
	for m, v := range flat {
		assert.InDelta(t, float64(100*m), v, 1e-9)
	}

	// Growth is applied before the month's deposit.
	grown := GrowMonthly(0, []float64{12}, 2, ConstantContribution(100))
	r := math.Pow(1.12, 1.0/12) - 1
	assert.InDelta(t, 100, grown[1], 1e-9)
	assert.InDelta(t, 100*(1+r)+100, grown[2], 1e-9)
}

func TestGrowMonthlyWithoutContribution(t *testing.T) {
	got := GrowMonthly(1000, []float64{12}, 12, nil)
	assert.InDelta(t, 1120, got[12], 1e-9)
}
