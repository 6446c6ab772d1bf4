package output

import (
	"fmt"

	"github.com/rpgo/mortgage-simulator/internal/domain"
	money "github.com/rpgo/mortgage-simulator/pkg/decimal"
)

// Recommendation is the headline verdict for one comparison in a report.
type Recommendation struct {
	Scenario string
	Choice   string
	Detail   string
}

// String renders the verdict on one line.
func (r Recommendation) String() string {
	return r.Choice + ": " + r.Detail
}

// AnalyzeScenarios picks the better strategy of every comparison present in
// the report. Verdicts follow the fixed scenario order of the report.
func AnalyzeScenarios(report *domain.SimulationReport) []Recommendation {
	var recs []Recommendation
	if dp := report.DownPayment; dp != nil && len(dp.Tiers) > 0 {
		recs = append(recs, analyzeDownPayment(dp))
	}
	if ep := report.ExtraPayment; ep != nil {
		recs = append(recs, analyzeExtraPayment(ep))
	}
	if pt := report.Points; pt != nil {
		recs = append(recs, analyzePoints(pt))
	}
	if a := report.Arm; a != nil {
		recs = append(recs, analyzeArm(a))
	}
	return recs
}

func analyzeDownPayment(dp *domain.DownPaymentResult) Recommendation {
	best := dp.Tiers[dp.BestTier]
	lowest := dp.Tiers[0]
	return Recommendation{
		Scenario: domain.ScenarioDownPayment,
		Choice:   fmt.Sprintf("Put %.0f%% down", best.Percent*100),
		Detail: fmt.Sprintf("net worth %s after %d years, %s ahead of %.0f%% down",
			wholeCurrency(best.FinalNetWorth), dp.SimulationYears,
			money.NewMoney(best.FinalNetWorth).Sub(money.NewMoney(lowest.FinalNetWorth)).FormatWhole(), lowest.Percent*100),
	}
}

func analyzeExtraPayment(ep *domain.ExtraPaymentResult) Recommendation {
	rec := Recommendation{Scenario: domain.ScenarioExtraPayment}
	diff := money.NewMoney(ep.Invest.Median).Sub(money.NewMoney(ep.PayDown.Median))
	switch {
	case diff.IsPositive():
		rec.Choice = fmt.Sprintf("Invest the extra %s", wholeCurrency(ep.Input.ExtraPayment))
	case diff.IsNegative():
		rec.Choice = fmt.Sprintf("Prepay %s a month", wholeCurrency(ep.Input.ExtraPayment))
	default:
		rec.Choice = "Either strategy"
	}
	rec.Detail = fmt.Sprintf("median net worth differs by %s; investing wins in %s of windows",
		diff.Abs().FormatWhole(), percent(ep.ProbInvestingWins))
	return rec
}

func analyzePoints(pt *domain.PointsResult) Recommendation {
	rec := Recommendation{Scenario: domain.ScenarioPoints}
	if pt.InterestSavings > pt.FinalMedian {
		rec.Choice = fmt.Sprintf("Buy %g point(s)", pt.Input.NumPoints)
	} else {
		rec.Choice = "Invest the point cost"
	}
	breakEven := fmt.Sprintf("break-even at month %d", pt.BreakEvenMonth)
	if !pt.BreakEvenReached {
		breakEven = fmt.Sprintf("no break-even within %d years", pt.Input.OwnershipYears)
	}
	rec.Detail = fmt.Sprintf("%s; %s interest saved vs %s median invested",
		breakEven, wholeCurrency(pt.InterestSavings), wholeCurrency(pt.FinalMedian))
	return rec
}

func analyzeArm(a *domain.ArmComparisonResult) Recommendation {
	rec := Recommendation{Scenario: domain.ScenarioArm, Choice: "Take the fixed rate"}
	if a.ArmCheaper() {
		rec.Choice = "Take the ARM"
	}
	rec.Detail = fmt.Sprintf("median ARM cost %s vs %s fixed; ARM cheaper in %s of trials",
		wholeCurrency(a.Costs.Median), wholeCurrency(a.FixedCost), percent(a.ProbArmCheaper))
	return rec
}
