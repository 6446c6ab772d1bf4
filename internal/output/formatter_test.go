package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/mortgage-simulator/internal/calculation"
	"github.com/rpgo/mortgage-simulator/internal/domain"
)

func band3(lower, median, upper float64) domain.PercentileBand {
	return domain.PercentileBand{
		LowerFraction: 0.1,
		UpperFraction: 0.9,
		Lower:         []float64{lower, lower * 1.05, lower * 1.1},
		Median:        []float64{median, median * 1.07, median * 1.14},
		Upper:         []float64{upper, upper * 1.1, upper * 1.2},
	}
}

// buildTestReport is a small hand-built report covering all four comparisons
// with three-point yearly series.
func buildTestReport() *domain.SimulationReport {
	armTerms := domain.ArmTerms{InitialRatePct: 5.875, MarginPct: 2.75, InitialCapPct: 2, PeriodicCapPct: 1, LifetimeCapPct: 5}
	report := &domain.SimulationReport{
		RunID:       "run-123",
		Name:        "fixture",
		GeneratedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Seed:        99,
		DownPayment: &domain.DownPaymentResult{
			Input:           domain.DownPaymentInput{HousePrice: 400000, MortgageRatePct: 6.5, LoanTermYears: 30, SimulationYears: 2, AppreciationPct: 3},
			SimulationYears: 2,
			PeriodCount:     96,
			BestTier:        1,
			Tiers: []domain.DownPaymentTier{
				{
					Percent: 0.05, DownPayment: 20000, InvestmentAmount: 0, InvestedCapital: 20000,
					LoanAmount: 380000, MonthlyPayment: 2401.86, MonthlyPMI: 158.33, PMIDropoffMonth: 100,
					Investment:         band3(0, 0, 0),
					HouseValue:         []float64{400000, 412000, 424360},
					LoanBalance:        []float64{380000, 375750, 371215},
					CashFlowDifference: []float64{0, -1900, -3800},
					NetWorth:           []float64{40000, 45000, 52000},
					FinalNetWorth:      52000,
				},
				{
					Percent: 0.10, DownPayment: 40000, InvestmentAmount: 20000, InvestedCapital: 0,
					LoanAmount: 360000, MonthlyPayment: 2275.44, MonthlyPMI: 150, PMIDropoffMonth: 80,
					Investment:         band3(20000, 20000, 20000),
					HouseValue:         []float64{400000, 412000, 424360},
					LoanBalance:        []float64{360000, 355974, 351677},
					CashFlowDifference: []float64{0, 0, 0},
					NetWorth:           []float64{40000, 46000, 55000},
					FinalNetWorth:      55000,
				},
			},
		},
		ExtraPayment: &domain.ExtraPaymentResult{
			Input:             domain.ExtraPaymentInput{LoanAmount: 320000, RatePct: 6.5, TermYears: 30, ExtraPayment: 250, HouseValue: 400000},
			BasePayment:       2022.62,
			RegularInterest:   408142,
			ExtraInterest:     300000,
			InterestSaved:     108142,
			PayoffMonth:       290,
			RegularBalances:   []float64{320000, 316400, 312559},
			ExtraBalances:     []float64{320000, 313400, 306359},
			Invest:            domain.StrategyOutcome{Median: 900000, Lower: 500000, Upper: 1500000, MedianPath: []float64{80000, 90000, 101000}, MedianPeriod: "1960-1989"},
			PayDown:           domain.StrategyOutcome{Median: 800000, Lower: 600000, Upper: 1100000, MedianPath: []float64{80000, 89000, 99000}, MedianPeriod: "1971-2000"},
			ProbInvestingWins: 62.5,
			PeriodCount:       68,
		},
		Points: &domain.PointsResult{
			Input:             domain.PointsInput{LoanAmount: 320000, TermYears: 30, BaseRatePct: 7, ReductionPerPoint: 0.25, NumPoints: 1, OwnershipYears: 2},
			PointsCost:        3200,
			ReducedRatePct:    6.75,
			BasePayment:       2128.97,
			ReducedPayment:    2075.51,
			MonthlySavings:    53.46,
			InterestSavings:   1500,
			CumulativeSavings: []float64{-3200, -2400, -1500},
			BreakEvenMonth:    24,
			BreakEvenReached:  false,
			Investment:        band3(3200, 3200, 3200),
			FinalP10:          3300,
			FinalMedian:       3700,
			FinalP90:          4100,
			ProbInvestingWins: 100,
			PeriodCount:       96,
		},
		Arm: &domain.ArmComparisonResult{
			Input:           domain.ArmComparisonInput{LoanAmount: 320000, TermYears: 30, FixedRatePct: 6.75, Arm: armTerms, Trials: 4},
			FixedCost:       747000,
			FixedPayment:    2075,
			Costs:           domain.Summary{Count: 4, Mean: 700000, StdDev: 80000, Min: 600000, Max: 820000, Median: 690000},
			CILow:           605000,
			CIHigh:          815000,
			ProbArmCheaper:  75,
			ExpectedSavings: 57000,
			TrialCosts:      []float64{600000, 680000, 700000, 820000},
			SamplePaths:     [][]float64{{5.875, 5.875}},
			RateBands: []domain.YearlyRateStat{
				{Year: 1, Lower: 5.875, Median: 5.875, Upper: 5.875, Average: 5.875},
				{Year: 2, Lower: 5.875, Median: 5.875, Upper: 5.875, Average: 5.875},
			},
			CostHistogram:    domain.Histogram{Min: 600000, Max: 820000, BinWidth: 110000, Starts: []float64{600000, 710000}, Counts: []int{3, 1}},
			SavingsHistogram: domain.Histogram{Min: -73000, Max: 147000, BinWidth: 110000, Starts: []float64{-73000, 37000}, Counts: []int{1, 3}},
		},
	}
	report.Summary = calculation.BuildSummary(report)
	return report
}

func TestConsoleLiteFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport())
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "Scenario file: fixture")
	assert.Contains(t, content, "points_cost=$3,200.00")
	assert.Contains(t, content, "prob_arm_cheaper=75.00%")
	assert.Contains(t, content, "Recommended: Put 10% down")
	assert.Contains(t, content, "Recommended: Take the ARM")
}

func TestConsoleVerboseFormatter(t *testing.T) {
	out, err := ConsoleVerboseFormatter{}.Format(buildTestReport())
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "DETAILED MORTGAGE STRATEGY ANALYSIS")
	assert.Contains(t, content, "*10%")
	assert.Contains(t, content, "Break-even: not reached within 24 months")
	assert.Contains(t, content, "(median window 1960-1989)")
	assert.Contains(t, content, "Payoff with extra payments: month 290 (24.2 years)")
	assert.Contains(t, content, "(saves $53.46/month, $641.52/year)")
	assert.Contains(t, content, strings.Repeat("#", histogramBarWidth)+"\n")
	assert.Contains(t, content, " 1 "+strings.Repeat("#", 13)+"\n")
	assert.Contains(t, content, "RECOMMENDATIONS")
}

func TestConsoleVerboseSkipsAbsentScenarios(t *testing.T) {
	report := buildTestReport()
	report.DownPayment, report.Points, report.Arm = nil, nil, nil
	report.Summary = calculation.BuildSummary(report)

	out, err := ConsoleVerboseFormatter{}.Format(report)
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "EXTRA PAYMENT: INVEST VS PAY DOWN")
	assert.NotContains(t, content, "DOWN PAYMENT COMPARISON")
	assert.NotContains(t, content, "ARM VS FIXED RATE")
}

func TestCSVSummarizerRows(t *testing.T) {
	report := buildTestReport()
	out, err := CSVSummarizer{}.Format(report)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(report.Summary)+1)
	assert.Equal(t, []string{"Scenario", "Metric", "Value", "Unit"}, records[0])
	assert.Equal(t, domain.ScenarioDownPayment, records[1][0])
	assert.Equal(t, domain.ScenarioArm, records[len(records)-1][0])
	assert.Contains(t, records, []string{"points", "points_cost", "3200", "currency"})
	assert.Contains(t, records, []string{"arm", "trials", "4", "count"})
}

func TestCSVSummarizerDeterministicOrder(t *testing.T) {
	report := buildTestReport()
	// reverse the summary; scenario grouping must be restored
	for i, j := 0, len(report.Summary)-1; i < j; i, j = i+1, j-1 {
		report.Summary[i], report.Summary[j] = report.Summary[j], report.Summary[i]
	}
	out, err := CSVSummarizer{}.Format(report)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	assert.True(t, strings.HasPrefix(lines[1], "down_payment,"))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "arm,"))
}

func TestCSVDetailedExporter(t *testing.T) {
	out, err := CSVDetailedExporter{}.Format(buildTestReport())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	// 2 tiers x 7 series x 3 years, 4 + 4 series x 3 years, 2 ARM years x 4 stats
	assert.Len(t, records, 1+42+12+12+8)
	assert.Contains(t, records, []string{"down_payment", "tier_10_net_worth", "2", "55000.00"})
	assert.Contains(t, records, []string{"extra_payment", "invest_median_path", "1", "90000.00"})
	assert.Contains(t, records, []string{"points", "cumulative_savings", "0", "-3200.00"})
	assert.Contains(t, records, []string{"arm", "rate_median", "2", "5.88"})
}

func TestArmCSVExporter(t *testing.T) {
	out, err := ArmCSVExporter{}.Format(buildTestReport())
	require.NoError(t, err)
	content := string(out)
	assert.True(t, strings.HasPrefix(content, "Metric,Value,Description\n"))
	assert.Contains(t, content, "Number of Trials,4,")
	assert.Contains(t, content, "Probability ARM Cheaper,75.00%,")
	assert.Contains(t, content, "Trial,TotalCost,SavingsVsFixed\n")
	assert.Contains(t, content, "1,600000.00,147000.00\n")
	assert.Contains(t, content, "4,820000.00,-73000.00\n")

	report := buildTestReport()
	report.Arm = nil
	_, err = ArmCSVExporter{}.Format(report)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestJSONFormatter(t *testing.T) {
	report := buildTestReport()
	out, err := JSONFormatter{}.Format(report)
	require.NoError(t, err)

	var decoded domain.SimulationReport
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "run-123", decoded.RunID)
	assert.True(t, report.GeneratedAt.Equal(decoded.GeneratedAt))
	require.NotNil(t, decoded.Arm)
	assert.Equal(t, report.Arm.TrialCosts, decoded.Arm.TrialCosts)
	require.Len(t, decoded.Summary, len(report.Summary))
	v, ok := decoded.Metric(domain.ScenarioPoints, "points_cost")
	require.True(t, ok)
	assert.Equal(t, "3200", v.String())
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport())
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "Scenario Summary")
	assert.Contains(t, content, "Key Assumptions")
	assert.Contains(t, content, DefaultAssumptions[0])
	assert.Contains(t, content, `class="best"`)
	assert.Contains(t, content, "$3,200.00")
	assert.Contains(t, content, "armCostHistogram")
}

func TestPDFFormatter(t *testing.T) {
	out, err := PDFFormatter{}.Format(buildTestReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))

	report := buildTestReport()
	report.DownPayment, report.Arm = nil, nil
	report.Summary = calculation.BuildSummary(report)
	out, err = PDFFormatter{}.Format(report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

// Golden snapshot tests (prefix-based) ensure key headers remain stable.
func TestGoldenSnapshots(t *testing.T) {
	cases := []struct {
		name      string
		golden    string
		formatter Formatter
	}{
		{"console_verbose", "console_verbose.golden", ConsoleVerboseFormatter{}},
		{"console_lite", "console_lite.golden", ConsoleFormatter{}},
		{"csv_summary", "csv_summary.golden", CSVSummarizer{}},
		{"csv_detailed", "csv_detailed.golden", CSVDetailedExporter{}},
		{"arm_csv", "arm_csv.golden", ArmCSVExporter{}},
		{"html", "html_prefix.golden", HTMLFormatter{}},
	}

	report := buildTestReport()
	update := os.Getenv("UPDATE_GOLDEN") == "1"
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := tc.formatter.Format(report)
			require.NoError(t, err)
			goldenPath := filepath.Join("testdata", tc.golden)
			if update {
				// only first line to keep golden small & stable
				require.NoError(t, os.WriteFile(goldenPath, []byte(firstLine(string(out))+"\n"), 0644))
			}
			data, err := os.ReadFile(goldenPath)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(out), strings.TrimSpace(string(data))),
				"output does not match golden prefix %q", strings.TrimSpace(string(data)))
		})
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func TestFormatterAliasResolution(t *testing.T) {
	tests := map[string]string{
		"console-verbose": "console",
		" Verbose ":       "console",
		"summary":         "console-lite",
		"ARM":             "arm-csv",
		"csv-detailed":    "detailed-csv",
		"pdf":             "pdf",
	}
	for alias, want := range tests {
		f := GetFormatterByName(alias)
		require.NotNil(t, f, alias)
		assert.Equal(t, want, f.Name(), alias)
	}
	assert.Nil(t, GetFormatterByName("xlsx"))
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"arm-csv", "console", "console-lite", "csv", "detailed-csv", "html", "json", "pdf"}, AvailableFormatterNames())
	assert.Contains(t, AvailableFormatAliases(), "json-pretty")
	for _, name := range AvailableFormatterNames() {
		assert.NotEmpty(t, ExtensionFor(name))
	}
	assert.Equal(t, "pdf", ExtensionFor("pdf-report"))
	assert.Equal(t, "txt", ExtensionFor("unknown"))
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc{ID: "run-id", F: func(r *domain.SimulationReport) ([]byte, error) {
		return []byte(r.RunID), nil
	}}
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	path, err := WriteFormatted(f, buildTestReport(), dir, "txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mortgage_report_run-id_20250301_120000.txt"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "run-123", string(data))
}
