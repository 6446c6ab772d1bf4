package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/mortgage-simulator/internal/domain"
)

// scenarioTitles orders and names the report sections.
var scenarioTitles = []struct {
	key   string
	title string
}{
	{domain.ScenarioDownPayment, "Down Payment"},
	{domain.ScenarioExtraPayment, "Extra Payment"},
	{domain.ScenarioPoints, "Discount Points"},
	{domain.ScenarioArm, "ARM vs Fixed"},
}

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "MORTGAGE STRATEGY SUMMARY")
	fmt.Fprintln(&buf, "================================")
	if report.Name != "" {
		fmt.Fprintf(&buf, "Scenario file: %s\n", report.Name)
	}
	fmt.Fprintf(&buf, "Run: %s (seed %d)\n", report.RunID, report.Seed)
	for _, s := range scenarioTitles {
		rows := report.SummaryFor(s.key)
		if len(rows) == 0 {
			continue
		}
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s:\n", s.title)
		for _, row := range rows {
			fmt.Fprintf(&buf, "  %s=%s\n", row.Metric, FormatSummaryValue(row))
		}
	}
	recs := AnalyzeScenarios(report)
	if len(recs) > 0 {
		fmt.Fprintln(&buf)
		for _, rec := range recs {
			fmt.Fprintf(&buf, "Recommended: %s\n", rec)
		}
	}
	return buf.Bytes(), nil
}
