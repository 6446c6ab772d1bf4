package output

import (
	"fmt"

	"github.com/rpgo/mortgage-simulator/internal/domain"
)

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Investment returns replay historical annual total returns, one return per simulated year",
	"Loans amortize monthly at a fixed nominal rate unless simulated as an ARM",
	"PMI is charged until the loan falls to 80% of the appreciated home value",
	"ARM rates stay fixed for 5 years and then reset annually within their caps",
	"Taxes and inflation are not modeled",
}

// GenerateAssumptions extends the defaults with the parameters of an actual run.
func GenerateAssumptions(report *domain.SimulationReport) []string {
	out := append([]string(nil), DefaultAssumptions...)
	if dp := report.DownPayment; dp != nil {
		out = append(out, fmt.Sprintf("Down payment: %d historical windows of %d years, home appreciation %.1f%% annually",
			dp.PeriodCount, dp.SimulationYears, dp.Input.AppreciationPct))
	}
	if ep := report.ExtraPayment; ep != nil {
		out = append(out, fmt.Sprintf("Extra payment: %d historical windows covering the full loan term", ep.PeriodCount))
	}
	if pt := report.Points; pt != nil {
		out = append(out, fmt.Sprintf("Points: %d historical windows of %d years", pt.PeriodCount, pt.Input.OwnershipYears))
	}
	if a := report.Arm; a != nil {
		out = append(out, fmt.Sprintf("ARM: %d Monte Carlo trials with seed %d", a.Costs.Count, report.Seed))
	}
	return out
}
