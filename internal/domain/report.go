package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Scenario names used in summary rows and report sections.
const (
	ScenarioDownPayment  = "down_payment"
	ScenarioExtraPayment = "extra_payment"
	ScenarioPoints       = "points"
	ScenarioArm          = "arm"
)

// Units for summary values.
const (
	UnitCurrency = "currency"
	UnitPercent  = "percent"
	UnitMonths   = "months"
	UnitCount    = "count"
)

// SummaryRow is one headline metric, rounded for presentation.
type SummaryRow struct {
	Scenario string          `json:"scenario"`
	Metric   string          `json:"metric"`
	Value    decimal.Decimal `json:"value"`
	Unit     string          `json:"unit"`
}

// SimulationReport is the stateless result of running a configuration.
type SimulationReport struct {
	RunID        string               `json:"run_id"`
	Name         string               `json:"name,omitempty"`
	GeneratedAt  time.Time            `json:"generated_at"`
	Seed         int64                `json:"seed"`
	DownPayment  *DownPaymentResult   `json:"down_payment,omitempty"`
	ExtraPayment *ExtraPaymentResult  `json:"extra_payment,omitempty"`
	Points       *PointsResult        `json:"points,omitempty"`
	Arm          *ArmComparisonResult `json:"arm,omitempty"`
	Summary      []SummaryRow         `json:"summary"`
}

// SummaryFor returns the rows belonging to one scenario.
func (r *SimulationReport) SummaryFor(scenario string) []SummaryRow {
	var rows []SummaryRow
	for _, row := range r.Summary {
		if row.Scenario == scenario {
			rows = append(rows, row)
		}
	}
	return rows
}

// Metric looks up a summary value by scenario and metric name.
func (r *SimulationReport) Metric(scenario, metric string) (decimal.Decimal, bool) {
	for _, row := range r.Summary {
		if row.Scenario == scenario && row.Metric == metric {
			return row.Value, true
		}
	}
	return decimal.Zero, false
}
