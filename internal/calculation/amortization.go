package calculation

import (
	"math"

	"github.com/rpgo/mortgage-simulator/internal/domain"
	"github.com/rpgo/mortgage-simulator/pkg/dateutil"
)

const (
	// balanceEpsilon snaps sub-cent balances to zero.
	balanceEpsilon = 0.01
	// pmiLTVThreshold is the loan-to-value ratio at which PMI is cancelled.
	pmiLTVThreshold = 0.80
	// pmiSearchMonths bounds the drop-off search for non-appreciating property.
	pmiSearchMonths = 360
	// NoPMIDownPaymentPct is the down payment fraction that avoids PMI entirely.
	NoPMIDownPaymentPct = 0.20
	// ArmFixedYears is the initial fixed period of a 5/1 ARM.
	ArmFixedYears = 5
)

func annuity(principal, rate float64, n int) float64 {
	if rate == 0 {
		return principal / float64(n)
	}
	// (1+r)^n - 1 without cancellation for rates near zero
	gm1 := math.Expm1(float64(n) * math.Log1p(rate))
	return principal * rate * (1 + 1/gm1)
}

// MonthlyPayment is the level payment that retires principal over numPeriods.
// When (1+r)^n outgrows float64 precision the payment equals the first
// month's interest and the loan never amortizes.
func MonthlyPayment(principal, periodicRate float64, numPeriods int) (float64, error) {
	switch {
	case principal <= 0:
		return 0, domain.NewInputError("principal", "must be positive, got %.2f", principal)
	case numPeriods <= 0:
		return 0, domain.NewInputError("num_periods", "must be positive, got %d", numPeriods)
	case periodicRate < 0:
		return 0, domain.NewInputError("periodic_rate", "cannot be negative, got %v", periodicRate)
	}
	return annuity(principal, periodicRate, numPeriods), nil
}

// PaymentForLoan computes the scheduled payment of a loan scenario.
func PaymentForLoan(loan domain.LoanScenario) (float64, error) {
	if err := loan.Validate(); err != nil {
		return 0, err
	}
	return MonthlyPayment(loan.Principal, loan.PeriodicRate(), loan.TermMonths())
}

// Amortize projects the balance month by month. The trajectory always has
// numPeriods+1 balances; months after payoff report zero. If the balance is
// still open after numPeriods, PaidOff is false and PayoffMonth is numPeriods.
func Amortize(principal, periodicRate, payment float64, numPeriods int, extraPayment float64) (domain.AmortizationTrajectory, error) {
	switch {
	case principal <= 0:
		return domain.AmortizationTrajectory{}, domain.NewInputError("principal", "must be positive, got %.2f", principal)
	case numPeriods <= 0:
		return domain.AmortizationTrajectory{}, domain.NewInputError("num_periods", "must be positive, got %d", numPeriods)
	case periodicRate < 0:
		return domain.AmortizationTrajectory{}, domain.NewInputError("periodic_rate", "cannot be negative, got %v", periodicRate)
	case extraPayment < 0:
		return domain.AmortizationTrajectory{}, domain.NewInputError("extra_payment", "cannot be negative, got %.2f", extraPayment)
	case payment+extraPayment < principal*periodicRate:
		return domain.AmortizationTrajectory{}, domain.NewInputError("payment", "%.2f is below first month interest %.2f",
			payment+extraPayment, principal*periodicRate)
	}

	traj := domain.AmortizationTrajectory{
		Balances:        make([]float64, numPeriods+1),
		MonthlyInterest: make([]float64, numPeriods),
		PayoffMonth:     numPeriods,
	}
	traj.Balances[0] = principal

	balance := principal
	for m := 1; m <= numPeriods; m++ {
		if balance == 0 {
			continue
		}
		interest := balance * periodicRate
		toPrincipal := payment + extraPayment - interest
		if toPrincipal > balance {
			toPrincipal = balance
		}
		balance -= toPrincipal
		if balance < balanceEpsilon {
			balance = 0
		}

		traj.MonthlyInterest[m-1] = interest
		traj.TotalInterest += interest
		traj.TotalPaid += interest + toPrincipal
		traj.Balances[m] = balance

		if balance == 0 {
			traj.PayoffMonth = m
			traj.PaidOff = true
		}
	}
	return traj, nil
}

// MonthlyPMI is the insurance premium for a loan, zero at or above 20% down.
// A fixed monthly amount takes precedence over the annual rate.
func MonthlyPMI(loanAmount, downPaymentPct, pmiAnnualRatePct, pmiMonthlyAmount float64) float64 {
	if downPaymentPct >= NoPMIDownPaymentPct {
		return 0
	}
	if pmiMonthlyAmount > 0 {
		return pmiMonthlyAmount
	}
	return loanAmount * (pmiAnnualRatePct / 100) / 12
}

// PMIDropoffMonth walks the loan and an appreciating property forward until
// loan-to-value reaches 80%, giving up after 360 months. It is 0 when the
// down payment already covers 20%.
func PMIDropoffMonth(loanAmount, downPaymentPct, payment, periodicRate, annualAppreciationPct float64) (int, error) {
	if downPaymentPct >= NoPMIDownPaymentPct {
		return 0, nil
	}
	switch {
	case loanAmount <= 0:
		return 0, domain.NewInputError("loan_amount", "must be positive, got %.2f", loanAmount)
	case downPaymentPct < 0:
		return 0, domain.NewInputError("down_payment_pct", "cannot be negative, got %v", downPaymentPct)
	case periodicRate < 0:
		return 0, domain.NewInputError("periodic_rate", "cannot be negative, got %v", periodicRate)
	}

	monthlyAppreciation := math.Pow(1+annualAppreciationPct/100, 1.0/12) - 1
	balance := loanAmount
	value := loanAmount / (1 - downPaymentPct)
	month := 0
	for balance/value > pmiLTVThreshold && month < pmiSearchMonths {
		month++
		balance -= payment - balance*periodicRate
		value *= 1 + monthlyAppreciation
	}
	return month, nil
}

// ArmTotalCost sums every payment of an adjustable loan. The payment is set at
// month 0 and re-amortized over the remaining months each year once the fixed
// period ends.
func ArmTotalCost(principal float64, monthlyRates []float64) (float64, error) {
	if principal <= 0 {
		return 0, domain.NewInputError("principal", "must be positive, got %.2f", principal)
	}
	if len(monthlyRates) == 0 {
		return 0, domain.NewInputError("monthly_rates", "is empty")
	}

	fixedMonths := dateutil.YearsToMonths(ArmFixedYears)
	balance := principal
	var payment, total float64
	for month, rate := range monthlyRates {
		if month == 0 || (month >= fixedMonths && dateutil.IsAnniversary(month)) {
			payment = annuity(balance, rate, len(monthlyRates)-month)
		}
		interest := balance * rate
		balance -= math.Min(payment-interest, balance)
		total += payment
		if balance < balanceEpsilon {
			balance = 0
		}
	}
	return total, nil
}

// FixedTotalCost is the sum of all level payments on a fixed-rate loan.
func FixedTotalCost(principal, annualRatePct float64, years int) (float64, error) {
	n := dateutil.YearsToMonths(years)
	payment, err := MonthlyPayment(principal, annualRatePct/100/12, n)
	if err != nil {
		return 0, err
	}
	return payment * float64(n), nil
}

// YearlySamples keeps the entries of a monthly series at months 0, 12, 24, ...
func YearlySamples(monthly []float64) []float64 {
	out := make([]float64, 0, len(monthly)/12+1)
	for i := 0; i < len(monthly); i += 12 {
		out = append(out, monthly[i])
	}
	return out
}
