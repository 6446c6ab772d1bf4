package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	calc "github.com/rpgo/mortgage-simulator/internal/calculation"
	"github.com/rpgo/mortgage-simulator/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_break_even <config-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	if cfg.Points == nil {
		fmt.Println("no points scenario")
		return
	}
	res, err := calc.NewEngine(nil).RunPoints(context.Background(), *cfg.Points)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Cost=%s BaseRate=%.3f ReducedRate=%.3f MonthlySavings=%s\n",
		money(res.PointsCost), res.Input.BaseRatePct, res.ReducedRatePct, money(res.MonthlySavings))

	// Header
	fmt.Println("Year,CumulativeSavings,InvestedP10,InvestedMedian,InvestedP90,Ahead")
	band := res.Investment
	for year, saved := range res.CumulativeSavings {
		row := fmt.Sprintf("%d,%s", year, money(saved))
		if year < len(band.Median) {
			row += fmt.Sprintf(",%s,%s,%s", money(band.Lower[year]), money(band.Median[year]), money(band.Upper[year]))
			// gross interest saved against the outlay invested instead
			ahead := saved+res.PointsCost > band.Median[year]
			row += fmt.Sprintf(",%t", ahead)
		}
		fmt.Println(row)
	}

	if res.BreakEvenReached {
		fmt.Printf("\nBreakEven: month %d (%d years %d months)\n", res.BreakEvenMonth, res.BreakEvenMonth/12, res.BreakEvenMonth%12)
	} else {
		fmt.Printf("\nBreakEven: not reached within %d months\n", res.BreakEvenMonth)
	}
	fmt.Printf("InterestSavings=%s FinalMedian=%s ProbInvestingWins=%.1f%%\n",
		money(res.InterestSavings), money(res.FinalMedian), res.ProbInvestingWins)
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(0)
}
