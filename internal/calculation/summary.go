package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rpgo/mortgage-simulator/internal/domain"
	money "github.com/rpgo/mortgage-simulator/pkg/decimal"
)

func summaryRow(scenario, metric string, v float64, unit string) domain.SummaryRow {
	var d decimal.Decimal
	switch unit {
	case domain.UnitCurrency:
		d = money.NewMoney(v).Round().Decimal
	case domain.UnitPercent:
		d = decimal.NewFromFloat(v).Round(2)
	default:
		d = decimal.NewFromFloat(v).Round(0)
	}
	return domain.SummaryRow{Scenario: scenario, Metric: metric, Value: d, Unit: unit}
}

// BuildSummary flattens the headline numbers of every scenario in the report.
func BuildSummary(r *domain.SimulationReport) []domain.SummaryRow {
	var rows []domain.SummaryRow
	add := func(scenario, metric string, v float64, unit string) {
		rows = append(rows, summaryRow(scenario, metric, v, unit))
	}

	if dp := r.DownPayment; dp != nil {
		s := domain.ScenarioDownPayment
		add(s, "simulation_years", float64(dp.SimulationYears), domain.UnitCount)
		add(s, "historical_windows", float64(dp.PeriodCount), domain.UnitCount)
		for _, t := range dp.Tiers {
			prefix := fmt.Sprintf("tier_%.0f_", t.Percent*100)
			add(s, prefix+"down_payment", t.DownPayment, domain.UnitCurrency)
			add(s, prefix+"investment_amount", t.InvestmentAmount, domain.UnitCurrency)
			add(s, prefix+"monthly_payment", t.MonthlyPayment, domain.UnitCurrency)
			add(s, prefix+"monthly_pmi", t.MonthlyPMI, domain.UnitCurrency)
			add(s, prefix+"pmi_dropoff_month", float64(t.PMIDropoffMonth), domain.UnitMonths)
			add(s, prefix+"final_net_worth", t.FinalNetWorth, domain.UnitCurrency)
		}
		if len(dp.Tiers) > 0 {
			add(s, "best_tier_pct", dp.Tiers[dp.BestTier].Percent*100, domain.UnitPercent)
		}
	}

	if ep := r.ExtraPayment; ep != nil {
		s := domain.ScenarioExtraPayment
		add(s, "base_payment", ep.BasePayment, domain.UnitCurrency)
		add(s, "payoff_month", float64(ep.PayoffMonth), domain.UnitMonths)
		add(s, "interest_saved", ep.InterestSaved, domain.UnitCurrency)
		add(s, "invest_median_net_worth", ep.Invest.Median, domain.UnitCurrency)
		add(s, "invest_p5_net_worth", ep.Invest.Lower, domain.UnitCurrency)
		add(s, "invest_p95_net_worth", ep.Invest.Upper, domain.UnitCurrency)
		add(s, "paydown_median_net_worth", ep.PayDown.Median, domain.UnitCurrency)
		add(s, "paydown_p5_net_worth", ep.PayDown.Lower, domain.UnitCurrency)
		add(s, "paydown_p95_net_worth", ep.PayDown.Upper, domain.UnitCurrency)
		add(s, "prob_investing_wins", ep.ProbInvestingWins, domain.UnitPercent)
		add(s, "historical_windows", float64(ep.PeriodCount), domain.UnitCount)
	}

	if pt := r.Points; pt != nil {
		s := domain.ScenarioPoints
		add(s, "points_cost", pt.PointsCost, domain.UnitCurrency)
		add(s, "reduced_rate_pct", pt.ReducedRatePct, domain.UnitPercent)
		add(s, "monthly_savings", pt.MonthlySavings, domain.UnitCurrency)
		add(s, "interest_savings", pt.InterestSavings, domain.UnitCurrency)
		add(s, "break_even_month", float64(pt.BreakEvenMonth), domain.UnitMonths)
		add(s, "investment_median", pt.FinalMedian, domain.UnitCurrency)
		add(s, "investment_p10", pt.FinalP10, domain.UnitCurrency)
		add(s, "investment_p90", pt.FinalP90, domain.UnitCurrency)
		add(s, "prob_investing_wins", pt.ProbInvestingWins, domain.UnitPercent)
		add(s, "historical_windows", float64(pt.PeriodCount), domain.UnitCount)
	}

	if a := r.Arm; a != nil {
		s := domain.ScenarioArm
		add(s, "fixed_payment", a.FixedPayment, domain.UnitCurrency)
		add(s, "fixed_cost", a.FixedCost, domain.UnitCurrency)
		add(s, "arm_mean_cost", a.Costs.Mean, domain.UnitCurrency)
		add(s, "arm_median_cost", a.Costs.Median, domain.UnitCurrency)
		add(s, "arm_std_dev", a.Costs.StdDev, domain.UnitCurrency)
		add(s, "arm_min_cost", a.Costs.Min, domain.UnitCurrency)
		add(s, "arm_max_cost", a.Costs.Max, domain.UnitCurrency)
		add(s, "arm_ci_low", a.CILow, domain.UnitCurrency)
		add(s, "arm_ci_high", a.CIHigh, domain.UnitCurrency)
		add(s, "prob_arm_cheaper", a.ProbArmCheaper, domain.UnitPercent)
		add(s, "expected_savings", a.ExpectedSavings, domain.UnitCurrency)
		add(s, "trials", float64(a.Costs.Count), domain.UnitCount)
	}
	return rows
}
