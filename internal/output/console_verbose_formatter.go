package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/mortgage-simulator/internal/domain"
	"github.com/rpgo/mortgage-simulator/pkg/dateutil"
	money "github.com/rpgo/mortgage-simulator/pkg/decimal"
)

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

const ruleWidth = 81

func (c ConsoleVerboseFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(&buf, "DETAILED MORTGAGE STRATEGY ANALYSIS")
	fmt.Fprintln(&buf, strings.Repeat("=", ruleWidth))
	if report.Name != "" {
		fmt.Fprintf(&buf, "Scenario file: %s\n", report.Name)
	}
	fmt.Fprintf(&buf, "Run ID:        %s\n", report.RunID)
	fmt.Fprintf(&buf, "Generated:     %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&buf, "Seed:          %d\n", report.Seed)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(report) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	if report.DownPayment != nil {
		writeDownPayment(&buf, report.DownPayment)
	}
	if report.ExtraPayment != nil {
		writeExtraPayment(&buf, report.ExtraPayment)
	}
	if report.Points != nil {
		writePoints(&buf, report.Points)
	}
	if report.Arm != nil {
		writeArm(&buf, report.Arm)
	}

	recs := AnalyzeScenarios(report)
	if len(recs) > 0 {
		fmt.Fprintln(&buf, "RECOMMENDATIONS")
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		for _, rec := range recs {
			fmt.Fprintf(&buf, "• %s\n", rec)
		}
	}
	return buf.Bytes(), nil
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", 50))
}

func writeDownPayment(w io.Writer, dp *domain.DownPaymentResult) {
	section(w, "DOWN PAYMENT COMPARISON")
	fmt.Fprintf(w, "House price: %s  Rate: %s  Horizon: %d years  Windows: %d\n",
		wholeCurrency(dp.Input.HousePrice), percent(dp.Input.MortgageRatePct), dp.SimulationYears, dp.PeriodCount)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-6s %12s %12s %11s %9s %8s %12s %14s\n",
		"Down", "Amount", "Loan", "Payment", "PMI", "PMI off", "Invested", "Net worth")
	for i, t := range dp.Tiers {
		marker := " "
		if i == dp.BestTier {
			marker = "*"
		}
		fmt.Fprintf(w, "%-6s %12s %12s %11s %9s %8s %12s %14s\n",
			fmt.Sprintf("%s%.0f%%", marker, t.Percent*100),
			wholeCurrency(t.DownPayment), wholeCurrency(t.LoanAmount), currency(t.MonthlyPayment),
			currency(t.MonthlyPMI), pmiDropoff(t), wholeCurrency(t.InvestmentAmount), wholeCurrency(t.FinalNetWorth))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Net worth by year:")
	fmt.Fprintf(w, "%-6s", "Year")
	for _, t := range dp.Tiers {
		fmt.Fprintf(w, " %14s", fmt.Sprintf("%.0f%% down", t.Percent*100))
	}
	fmt.Fprintln(w)
	for y := 0; y <= dp.SimulationYears; y++ {
		fmt.Fprintf(w, "%-6d", y)
		for _, t := range dp.Tiers {
			if y < len(t.NetWorth) {
				fmt.Fprintf(w, " %14s", wholeCurrency(t.NetWorth[y]))
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

func pmiDropoff(t domain.DownPaymentTier) string {
	if t.MonthlyPMI == 0 {
		return "-"
	}
	return intToString(t.PMIDropoffMonth)
}

func writeStrategy(w io.Writer, label string, s domain.StrategyOutcome) {
	fmt.Fprintf(w, "  %-10s P5 %14s  Median %14s  P95 %14s  (median window %s)\n",
		label, wholeCurrency(s.Lower), wholeCurrency(s.Median), wholeCurrency(s.Upper), s.MedianPeriod)
}

func writeExtraPayment(w io.Writer, ep *domain.ExtraPaymentResult) {
	section(w, "EXTRA PAYMENT: INVEST VS PAY DOWN")
	fmt.Fprintf(w, "Loan: %s at %s  Base payment: %s  Extra: %s/month\n",
		wholeCurrency(ep.Input.LoanAmount), percent(ep.Input.RatePct), currency(ep.BasePayment), currency(ep.Input.ExtraPayment))
	fmt.Fprintf(w, "Payoff with extra payments: month %d (%.1f years)\n",
		ep.PayoffMonth, dateutil.MonthsToYears(ep.PayoffMonth))
	fmt.Fprintf(w, "Interest: regular %s, with extra %s, saved %s\n",
		currency(ep.RegularInterest), currency(ep.ExtraInterest), currency(ep.InterestSaved))
	fmt.Fprintf(w, "Final net worth across %d historical windows:\n", ep.PeriodCount)
	writeStrategy(w, "Invest", ep.Invest)
	writeStrategy(w, "Pay down", ep.PayDown)
	fmt.Fprintf(w, "Investing finishes ahead in %s of windows\n", percent(ep.ProbInvestingWins))
	fmt.Fprintln(w)
}

func writePoints(w io.Writer, pt *domain.PointsResult) {
	section(w, "DISCOUNT POINTS: BUY VS INVEST")
	fmt.Fprintf(w, "Points: %g costing %s  Rate: %s -> %s\n",
		pt.Input.NumPoints, currency(pt.PointsCost), percent(pt.Input.BaseRatePct), percent(pt.ReducedRatePct))
	fmt.Fprintf(w, "Payment: %s -> %s (saves %s/month, %s/year)\n",
		currency(pt.BasePayment), currency(pt.ReducedPayment), currency(pt.MonthlySavings),
		money.NewMoney(pt.MonthlySavings).Annual().Format())
	if pt.BreakEvenReached {
		fmt.Fprintf(w, "Break-even: month %d\n", pt.BreakEvenMonth)
	} else {
		fmt.Fprintf(w, "Break-even: not reached within %d months\n", pt.BreakEvenMonth)
	}
	fmt.Fprintf(w, "Interest saved over %d years: %s\n", pt.Input.OwnershipYears, currency(pt.InterestSavings))
	fmt.Fprintf(w, "Point cost invested instead: P10 %s  Median %s  P90 %s\n",
		wholeCurrency(pt.FinalP10), wholeCurrency(pt.FinalMedian), wholeCurrency(pt.FinalP90))
	fmt.Fprintf(w, "Investing beats the interest saved in %s of %d windows\n", percent(pt.ProbInvestingWins), pt.PeriodCount)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-6s %16s\n", "Year", "Net savings")
	for y, v := range pt.CumulativeSavings {
		fmt.Fprintf(w, "%-6d %16s\n", y, currency(v))
	}
	fmt.Fprintln(w)
}

func writeArm(w io.Writer, a *domain.ArmComparisonResult) {
	section(w, "ARM VS FIXED RATE")
	fmt.Fprintf(w, "Fixed: %s for %d years, payment %s, total cost %s\n",
		percent(a.Input.FixedRatePct), a.Input.TermYears, currency(a.FixedPayment), wholeCurrency(a.FixedCost))
	fmt.Fprintf(w, "ARM: %s initial, margin %s, caps %g/%g/%g\n",
		percent(a.Input.Arm.InitialRatePct), percent(a.Input.Arm.MarginPct),
		a.Input.Arm.InitialCapPct, a.Input.Arm.PeriodicCapPct, a.Input.Arm.LifetimeCapPct)
	fmt.Fprintf(w, "ARM total cost over %d trials: mean %s  median %s  std dev %s\n",
		a.Costs.Count, wholeCurrency(a.Costs.Mean), wholeCurrency(a.Costs.Median), wholeCurrency(a.Costs.StdDev))
	fmt.Fprintf(w, "  range %s to %s, 95%% interval %s to %s\n",
		wholeCurrency(a.Costs.Min), wholeCurrency(a.Costs.Max), wholeCurrency(a.CILow), wholeCurrency(a.CIHigh))
	fmt.Fprintf(w, "ARM cheaper in %s of trials; expected savings %s\n", percent(a.ProbArmCheaper), wholeCurrency(a.ExpectedSavings))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-6s %8s %8s %8s %8s\n", "Year", "P5", "Median", "P95", "Mean")
	for _, b := range a.RateBands {
		fmt.Fprintf(w, "%-6d %8s %8s %8s %8s\n", b.Year, fixed2(b.Lower), fixed2(b.Median), fixed2(b.Upper), fixed2(b.Average))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Total cost distribution:")
	writeHistogram(w, a.CostHistogram)
	fmt.Fprintln(w)
}

const histogramBarWidth = 40

func writeHistogram(w io.Writer, h domain.Histogram) {
	peak := 0
	for _, c := range h.Counts {
		peak = max(peak, c)
	}
	for i, c := range h.Counts {
		bar := 0
		if peak > 0 {
			bar = c * histogramBarWidth / peak
		}
		fmt.Fprintf(w, "  %12s %6d %s\n", wholeCurrency(h.Starts[i]), c, strings.Repeat("#", bar))
	}
}
