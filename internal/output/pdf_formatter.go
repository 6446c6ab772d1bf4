package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/rpgo/mortgage-simulator/internal/domain"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// PDFFormatter renders the report as an A4 document: a cover with the
// recommendations, then one page per comparison.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

type pdfReport struct {
	pdf    *fpdf.Fpdf
	report *domain.SimulationReport
}

func (p PDFFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	r := &pdfReport{pdf: fpdf.New("P", "mm", "A4", ""), report: report}
	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(true, marginBottom)
	r.pdf.SetTitle("Mortgage Strategy Report", false)
	r.pdf.SetCreationDate(report.GeneratedAt)

	r.addTitlePage()
	if dp := report.DownPayment; dp != nil {
		r.addDownPaymentPage(dp)
	}
	for _, s := range scenarioTitles[1:] {
		if rows := report.SummaryFor(s.key); len(rows) > 0 {
			r.addSummaryPage(s.title, rows)
		}
	}
	if a := report.Arm; a != nil {
		r.addRateBandTable(a)
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) addTitlePage() {
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 24)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.Ln(30)
	r.pdf.CellFormat(contentWidth, 15, "Mortgage Strategy Report", "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "", 12)
	r.pdf.SetTextColor(80, 80, 80)
	if r.report.Name != "" {
		r.pdf.CellFormat(contentWidth, 8, r.report.Name, "", 1, "C", false, 0, "")
	}
	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.CellFormat(contentWidth, 8, fmt.Sprintf("Generated %s, run %s, seed %d",
		r.report.GeneratedAt.Format("2 January 2006"), r.report.RunID, r.report.Seed), "", 1, "C", false, 0, "")

	if recs := AnalyzeScenarios(r.report); len(recs) > 0 {
		r.pdf.Ln(12)
		r.drawSectionHeader("Recommendations")
		for _, rec := range recs {
			r.pdf.SetFont("Arial", "B", 11)
			r.pdf.SetTextColor(0, 51, 102)
			r.pdf.CellFormat(contentWidth, 7, rec.Choice, "", 1, "L", false, 0, "")
			r.pdf.SetFont("Arial", "", 10)
			r.pdf.SetTextColor(50, 50, 50)
			r.pdf.MultiCell(contentWidth, 5, rec.Detail, "", "L", false)
			r.pdf.Ln(2)
		}
	}

	r.pdf.Ln(8)
	r.drawSectionHeader("Key Assumptions")
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	for _, a := range GenerateAssumptions(r.report) {
		r.pdf.MultiCell(contentWidth, 5, "- "+a, "", "L", false)
	}
}

func (r *pdfReport) addDownPaymentPage(dp *domain.DownPaymentResult) {
	r.pdf.AddPage()
	r.drawSectionHeader("Down Payment")
	headers := []string{"Down", "Amount", "Loan", "Payment", "PMI", "PMI off", "Net worth"}
	widths := []float64{20, 26, 28, 26, 22, 22, 36}
	r.drawTableHeader(headers, widths)
	for i, t := range dp.Tiers {
		r.drawTableRow([]string{
			fmt.Sprintf("%.0f%%", t.Percent*100),
			wholeCurrency(t.DownPayment),
			wholeCurrency(t.LoanAmount),
			currency(t.MonthlyPayment),
			currency(t.MonthlyPMI),
			pmiDropoff(t),
			wholeCurrency(t.FinalNetWorth),
		}, widths, i == dp.BestTier)
	}

	r.pdf.Ln(8)
	r.pdf.SetFont("Arial", "B", 11)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 7, "Net worth by year", "", 1, "L", false, 0, "")
	yearHeaders := []string{"Year"}
	yearWidths := []float64{20}
	colWidth := (contentWidth - 20) / float64(max(len(dp.Tiers), 1))
	for _, t := range dp.Tiers {
		yearHeaders = append(yearHeaders, fmt.Sprintf("%.0f%% down", t.Percent*100))
		yearWidths = append(yearWidths, colWidth)
	}
	r.drawTableHeader(yearHeaders, yearWidths)
	for y := 0; y <= dp.SimulationYears; y++ {
		cells := []string{intToString(y)}
		for _, t := range dp.Tiers {
			v := ""
			if y < len(t.NetWorth) {
				v = wholeCurrency(t.NetWorth[y])
			}
			cells = append(cells, v)
		}
		r.drawTableRow(cells, yearWidths, false)
	}
}

func (r *pdfReport) addSummaryPage(title string, rows []domain.SummaryRow) {
	r.pdf.AddPage()
	r.drawSectionHeader(title)
	widths := []float64{110, 70}
	r.drawTableHeader([]string{"Metric", "Value"}, widths)
	for _, row := range rows {
		r.drawTableRow([]string{row.Metric, FormatSummaryValue(row)}, widths, false)
	}
}

func (r *pdfReport) addRateBandTable(a *domain.ArmComparisonResult) {
	r.pdf.Ln(8)
	r.pdf.SetFont("Arial", "B", 11)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 7, "ARM rate distribution by year (%)", "", 1, "L", false, 0, "")
	widths := []float64{20, 40, 40, 40, 40}
	r.drawTableHeader([]string{"Year", "P5", "Median", "P95", "Mean"}, widths)
	for _, b := range a.RateBands {
		r.drawTableRow([]string{intToString(b.Year), fixed2(b.Lower), fixed2(b.Median), fixed2(b.Upper), fixed2(b.Average)}, widths, false)
	}
}

func (r *pdfReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 10, title, "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(marginLeft, r.pdf.GetY(), marginLeft+contentWidth, r.pdf.GetY())
	r.pdf.Ln(5)
}

func (r *pdfReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 9)

	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, header, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) drawTableRow(cells []string, widths []float64, isBold bool) {
	r.pdf.SetFillColor(250, 250, 250)
	r.pdf.SetTextColor(50, 50, 50)

	if isBold {
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.SetFillColor(232, 245, 233)
	} else {
		r.pdf.SetFont("Arial", "", 9)
	}

	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 5, cell, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}
