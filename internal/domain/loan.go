package domain

import "github.com/rpgo/mortgage-simulator/pkg/dateutil"

// LoanScenario describes a fixed-rate mortgage.
// PMIAnnualRatePct and PMIMonthlyAmount are mutually exclusive.
type LoanScenario struct {
	Principal           float64 `yaml:"principal" json:"principal"`
	AnnualRatePct       float64 `yaml:"annual_rate_pct" json:"annual_rate_pct"`
	TermYears           int     `yaml:"term_years" json:"term_years"`
	ExtraMonthlyPayment float64 `yaml:"extra_monthly_payment,omitempty" json:"extra_monthly_payment,omitempty"`
	PMIAnnualRatePct    float64 `yaml:"pmi_annual_rate_pct,omitempty" json:"pmi_annual_rate_pct,omitempty"`
	PMIMonthlyAmount    float64 `yaml:"pmi_monthly_amount,omitempty" json:"pmi_monthly_amount,omitempty"`
}

// TermMonths is the number of scheduled payments.
func (l LoanScenario) TermMonths() int { return dateutil.YearsToMonths(l.TermYears) }

// PeriodicRate converts the annual percentage into a monthly decimal rate.
func (l LoanScenario) PeriodicRate() float64 { return l.AnnualRatePct / 100 / 12 }

// Validate checks the structural invariants of the loan.
func (l LoanScenario) Validate() error {
	switch {
	case l.Principal <= 0:
		return NewInputError("principal", "must be positive, got %.2f", l.Principal)
	case l.AnnualRatePct < 0:
		return NewInputError("annual_rate_pct", "cannot be negative, got %.4f", l.AnnualRatePct)
	case l.TermYears <= 0:
		return NewInputError("term_years", "must be positive, got %d", l.TermYears)
	case l.ExtraMonthlyPayment < 0:
		return NewInputError("extra_monthly_payment", "cannot be negative, got %.2f", l.ExtraMonthlyPayment)
	case l.PMIAnnualRatePct < 0 || l.PMIMonthlyAmount < 0:
		return NewInputError("pmi", "cannot be negative")
	case l.PMIAnnualRatePct > 0 && l.PMIMonthlyAmount > 0:
		return NewInputError("pmi", "rate and monthly amount are mutually exclusive")
	}
	return nil
}

// AmortizationTrajectory is the month-by-month projection of a loan balance.
// Balances has one entry per month plus the opening balance.
type AmortizationTrajectory struct {
	Balances        []float64 `json:"balances"`
	MonthlyInterest []float64 `json:"monthly_interest"`
	TotalInterest   float64   `json:"total_interest"`
	TotalPaid       float64   `json:"total_paid"`
	PayoffMonth     int       `json:"payoff_month"`
	PaidOff         bool      `json:"paid_off"`
}

// BalanceAt returns the balance after month m, clamped to the trajectory.
func (a AmortizationTrajectory) BalanceAt(m int) float64 {
	if len(a.Balances) == 0 {
		return 0
	}
	if m < 0 {
		m = 0
	}
	if m >= len(a.Balances) {
		m = len(a.Balances) - 1
	}
	return a.Balances[m]
}

// ArmTerms are the contractual parameters of a 5/1 ARM, all in percent.
type ArmTerms struct {
	InitialRatePct float64 `yaml:"initial_rate_pct" json:"initial_rate_pct"`
	MarginPct      float64 `yaml:"margin_pct" json:"margin_pct"`
	InitialCapPct  float64 `yaml:"initial_cap_pct" json:"initial_cap_pct"`
	PeriodicCapPct float64 `yaml:"periodic_cap_pct" json:"periodic_cap_pct"`
	LifetimeCapPct float64 `yaml:"lifetime_cap_pct" json:"lifetime_cap_pct"`
}

// CeilingPct is the highest rate the lifetime cap allows.
func (a ArmTerms) CeilingPct() float64 { return a.InitialRatePct + a.LifetimeCapPct }

// Validate rejects negative rates and caps.
func (a ArmTerms) Validate() error {
	switch {
	case a.InitialRatePct < 0:
		return NewInputError("initial_rate_pct", "cannot be negative, got %.4f", a.InitialRatePct)
	case a.MarginPct < 0:
		return NewInputError("margin_pct", "cannot be negative, got %.4f", a.MarginPct)
	case a.InitialCapPct < 0 || a.PeriodicCapPct < 0 || a.LifetimeCapPct < 0:
		return NewInputError("caps", "cannot be negative (initial %.2f, periodic %.2f, lifetime %.2f)",
			a.InitialCapPct, a.PeriodicCapPct, a.LifetimeCapPct)
	}
	return nil
}

// ArmPath is one simulated rate path; MonthlyRates holds periodic decimal rates.
type ArmPath struct {
	AnnualRates  []float64 `json:"annual_rates"`
	MonthlyRates []float64 `json:"monthly_rates"`
}
