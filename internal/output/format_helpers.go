package output

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/rpgo/mortgage-simulator/internal/domain"
	money "github.com/rpgo/mortgage-simulator/pkg/decimal"
)

// FormatCurrency formats a decimal as USD currency with thousands separators and 2 decimals.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatSummaryValue renders a summary value according to its unit.
func FormatSummaryValue(row domain.SummaryRow) string {
	switch row.Unit {
	case domain.UnitCurrency:
		return FormatCurrency(row.Value)
	case domain.UnitPercent:
		return FormatPercentage(row.Value)
	case domain.UnitMonths:
		return row.Value.String() + " months"
	default:
		return row.Value.String()
	}
}

func currency(v float64) string { return money.NewMoney(v).Format() }

func wholeCurrency(v float64) string { return money.NewMoney(v).FormatWhole() }

func percent(v float64) string { return FormatPercentage(decimal.NewFromFloat(v)) }

func intToString(i int) string { return strconv.Itoa(i) }

func fixed2(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
