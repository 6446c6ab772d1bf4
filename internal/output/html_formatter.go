package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/mortgage-simulator/internal/domain"
)

// HTMLFormatter produces a static HTML report with summary tables and the chart series as JSON.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":    currency,
	"whole":   wholeCurrency,
	"pct":     percent,
	"value":   FormatSummaryValue,
	"pctOf":   func(f float64) float64 { return f * 100 },
	"isBest":  func(i, best int) bool { return i == best },
	"dropoff": pmiDropoff,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.SimulationReport
		Recommendations []Recommendation
		Assumptions     []string
		Sections        []htmlSection
	}{report, AnalyzeScenarios(report), GenerateAssumptions(report), htmlSections(report)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type htmlSection struct {
	Title string
	Rows  []domain.SummaryRow
}

func htmlSections(report *domain.SimulationReport) []htmlSection {
	var out []htmlSection
	for _, s := range scenarioTitles {
		if rows := report.SummaryFor(s.key); len(rows) > 0 {
			out = append(out, htmlSection{Title: s.title, Rows: rows})
		}
	}
	return out
}
