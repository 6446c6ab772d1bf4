package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/rpgo/mortgage-simulator/internal/domain"
)

// CSVDetailedExporter provides the yearly series of every scenario in long form:
// one row per scenario, series and year.
type CSVDetailedExporter struct{}

type series struct {
	name   string
	values []float64
}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.SimulationReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Scenario", "Series", "Year", "Value"}); err != nil {
		return nil, err
	}
	writeAll := func(scenario, prefix string, all []series) error {
		for _, s := range all {
			for y, v := range s.values {
				if err := w.Write([]string{scenario, prefix + s.name, intToString(y), fixed2(v)}); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if dp := report.DownPayment; dp != nil {
		for _, t := range dp.Tiers {
			err := writeAll(domain.ScenarioDownPayment, fmt.Sprintf("tier_%.0f_", t.Percent*100), []series{
				{"house_value", t.HouseValue},
				{"loan_balance", t.LoanBalance},
				{"cash_flow_difference", t.CashFlowDifference},
				{"investment_p10", t.Investment.Lower},
				{"investment_median", t.Investment.Median},
				{"investment_p90", t.Investment.Upper},
				{"net_worth", t.NetWorth},
			})
			if err != nil {
				return nil, err
			}
		}
	}
	if ep := report.ExtraPayment; ep != nil {
		err := writeAll(domain.ScenarioExtraPayment, "", []series{
			{"regular_balance", ep.RegularBalances},
			{"extra_balance", ep.ExtraBalances},
			{"invest_median_path", ep.Invest.MedianPath},
			{"paydown_median_path", ep.PayDown.MedianPath},
		})
		if err != nil {
			return nil, err
		}
	}
	if pt := report.Points; pt != nil {
		err := writeAll(domain.ScenarioPoints, "", []series{
			{"cumulative_savings", pt.CumulativeSavings},
			{"investment_p10", pt.Investment.Lower},
			{"investment_median", pt.Investment.Median},
			{"investment_p90", pt.Investment.Upper},
		})
		if err != nil {
			return nil, err
		}
	}
	if a := report.Arm; a != nil {
		for _, b := range a.RateBands {
			for _, v := range []struct {
				name  string
				value float64
			}{
				{"rate_p5", b.Lower}, {"rate_median", b.Median}, {"rate_p95", b.Upper}, {"rate_mean", b.Average},
			} {
				if err := w.Write([]string{domain.ScenarioArm, v.name, intToString(b.Year), fixed2(v.value)}); err != nil {
					return nil, err
				}
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
