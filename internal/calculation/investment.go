package calculation

import "math"

// GrowSeries compounds an initial amount through annual percent returns.
// The result starts at initialAmount and has min(years, len(annualReturns))+1 values.
func GrowSeries(initialAmount float64, annualReturns []float64, years int) []float64 {
	n := years
	if n > len(annualReturns) {
		n = len(annualReturns)
	}
	if n < 0 {
		n = 0
	}
	values := make([]float64, n+1)
	values[0] = initialAmount
	for y := 1; y <= n; y++ {
		values[y] = values[y-1] * (1 + annualReturns[y-1]/100)
	}
	return values
}

// MonthlyReturns converts annual percent returns to equivalent monthly decimal
// rates, repeated twelve times per year. Short sequences are padded with the
// last monthly rate.
func MonthlyReturns(annualReturns []float64, months int) []float64 {
	out := make([]float64, 0, max(months, len(annualReturns)*12))
	for _, r := range annualReturns {
		m := math.Pow(1+r/100, 1.0/12) - 1
		for i := 0; i < 12; i++ {
			out = append(out, m)
		}
	}
	var last float64
	if len(out) > 0 {
		last = out[len(out)-1]
	}
	for len(out) < months {
		out = append(out, last)
	}
	return out
}

// ContributionFunc is the deposit made at the end of 1-based month m.
type ContributionFunc func(month int) float64

// ConstantContribution deposits the same amount every month.
func ConstantContribution(amount float64) ContributionFunc {
	return func(int) float64 { return amount }
}

// ContributionAfter deposits nothing through month start, then amount each month.
func ContributionAfter(start int, amount float64) ContributionFunc {
	return func(m int) float64 {
		if m <= start {
			return 0
		}
		return amount
	}
}

// GrowMonthly compounds monthly: each month the balance grows first, then the
// contribution is added. The result has months+1 values starting at initialAmount.
func GrowMonthly(initialAmount float64, annualReturns []float64, months int, contribution ContributionFunc) []float64 {
	if months < 0 {
		months = 0
	}
	rates := MonthlyReturns(annualReturns, months)
	values := make([]float64, months+1)
	values[0] = initialAmount
	balance := initialAmount
	for m := 1; m <= months; m++ {
		balance *= 1 + rates[m-1]
		if contribution != nil {
			balance += contribution(m)
		}
		values[m] = balance
	}
	return values
}
