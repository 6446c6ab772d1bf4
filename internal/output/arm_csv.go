package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/rpgo/mortgage-simulator/internal/domain"
)

// ArmCSVExporter exports the ARM Monte Carlo run: a summary block of
// aggregate statistics followed by one row per trial.
type ArmCSVExporter struct{}

func (a ArmCSVExporter) Name() string { return "arm-csv" }

func (a ArmCSVExporter) Format(report *domain.SimulationReport) ([]byte, error) {
	res := report.Arm
	if res == nil {
		return nil, domain.NewInputError("arm", "report has no ARM comparison")
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"Metric", "Value", "Description"}); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	summaryData := [][]string{
		{"Fixed Total Cost", fixed2(res.FixedCost), "Total of fixed-rate payments over the term"},
		{"Fixed Monthly Payment", fixed2(res.FixedPayment), "Level payment of the fixed-rate loan"},
		{"Mean ARM Cost", fixed2(res.Costs.Mean), "Mean total ARM payments across trials"},
		{"Median ARM Cost", fixed2(res.Costs.Median), "Median total ARM payments across trials"},
		{"ARM Cost Std Dev", fixed2(res.Costs.StdDev), "Standard deviation of total ARM payments"},
		{"ARM Cost 2.5th Percentile", fixed2(res.CILow), "Lower end of the 95% interval"},
		{"ARM Cost 97.5th Percentile", fixed2(res.CIHigh), "Upper end of the 95% interval"},
		{"Probability ARM Cheaper", fmt.Sprintf("%.2f%%", res.ProbArmCheaper), "Share of trials costing less than the fixed loan"},
		{"Expected Savings", fixed2(res.ExpectedSavings), "Fixed cost minus median ARM cost"},
		{"Number of Trials", strconv.Itoa(res.Costs.Count), "Total number of simulated rate paths"},
		{"Seed", strconv.FormatInt(report.Seed, 10), "Random seed for reproduction"},
	}
	for _, row := range summaryData {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write data row: %w", err)
		}
	}

	// blank separator row, then the per-trial block
	if err := w.Write([]string{"", "", ""}); err != nil {
		return nil, err
	}
	if err := w.Write([]string{"Trial", "TotalCost", "SavingsVsFixed"}); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for i, c := range res.TrialCosts {
		if err := w.Write([]string{strconv.Itoa(i + 1), fixed2(c), fixed2(res.FixedCost - c)}); err != nil {
			return nil, fmt.Errorf("failed to write trial row: %w", err)
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
