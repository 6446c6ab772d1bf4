package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rpgo/mortgage-simulator/internal/domain"
)

// scenarioOrder ranks scenarios for deterministic row order.
var scenarioOrder = map[string]int{
	domain.ScenarioDownPayment:  0,
	domain.ScenarioExtraPayment: 1,
	domain.ScenarioPoints:       2,
	domain.ScenarioArm:          3,
}

// CSVSummarizer implements the simple summary CSV output (one row per headline metric).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.SimulationReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Scenario", "Metric", "Value", "Unit"}); err != nil {
		return nil, err
	}
	rows := append([]domain.SummaryRow(nil), report.Summary...)
	sort.SliceStable(rows, func(i, j int) bool {
		return scenarioOrder[rows[i].Scenario] < scenarioOrder[rows[j].Scenario]
	})
	for _, row := range rows {
		if err := w.Write([]string{row.Scenario, row.Metric, row.Value.String(), row.Unit}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
