package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/mortgage-simulator/internal/domain"
)

func TestAnalyzeScenarios_OneVerdictPerComparison(t *testing.T) {
	recs := AnalyzeScenarios(buildTestReport())
	require.Len(t, recs, 4)

	assert.Equal(t, domain.ScenarioDownPayment, recs[0].Scenario)
	assert.Equal(t, "Put 10% down", recs[0].Choice)
	assert.Equal(t, "net worth $55,000 after 2 years, $3,000 ahead of 5% down", recs[0].Detail)

	assert.Equal(t, "Invest the extra $250", recs[1].Choice)
	assert.Equal(t, "median net worth differs by $100,000; investing wins in 62.50% of windows", recs[1].Detail)

	assert.Equal(t, "Invest the point cost", recs[2].Choice)
	assert.Contains(t, recs[2].Detail, "no break-even within 2 years")

	assert.Equal(t, "Take the ARM", recs[3].Choice)
	assert.Equal(t, "Take the ARM: median ARM cost $690,000 vs $747,000 fixed; ARM cheaper in 75.00% of trials", recs[3].String())
}

func TestAnalyzeScenarios_OppositeVerdicts(t *testing.T) {
	report := buildTestReport()
	report.ExtraPayment.PayDown.Median = 950000
	report.Points.InterestSavings = 5000
	report.Points.BreakEvenReached = true
	report.Points.BreakEvenMonth = 20
	report.Arm.Costs.Median = 760000

	recs := AnalyzeScenarios(report)
	require.Len(t, recs, 4)
	assert.Equal(t, "Prepay $250 a month", recs[1].Choice)
	assert.Contains(t, recs[1].Detail, "differs by $50,000")
	assert.Equal(t, "Buy 1 point(s)", recs[2].Choice)
	assert.Contains(t, recs[2].Detail, "break-even at month 20")
	assert.Equal(t, "Take the fixed rate", recs[3].Choice)
}

func TestAnalyzeScenarios_TieAndEmpty(t *testing.T) {
	report := buildTestReport()
	report.ExtraPayment.PayDown.Median = report.ExtraPayment.Invest.Median
	recs := AnalyzeScenarios(report)
	assert.Equal(t, "Either strategy", recs[1].Choice)

	assert.Empty(t, AnalyzeScenarios(&domain.SimulationReport{}))
	assert.Empty(t, AnalyzeScenarios(&domain.SimulationReport{DownPayment: &domain.DownPaymentResult{}}),
		"a down payment result without tiers has no verdict")
}

func TestGenerateAssumptions(t *testing.T) {
	before := append([]string(nil), DefaultAssumptions...)
	got := GenerateAssumptions(buildTestReport())

	assert.Len(t, got, len(DefaultAssumptions)+4)
	assert.Equal(t, DefaultAssumptions, got[:len(DefaultAssumptions)])
	assert.Contains(t, got, "Down payment: 96 historical windows of 2 years, home appreciation 3.0% annually")
	assert.Contains(t, got, "ARM: 4 Monte Carlo trials with seed 99")
	assert.Equal(t, before, DefaultAssumptions)

	assert.Equal(t, DefaultAssumptions, GenerateAssumptions(&domain.SimulationReport{}))
}
