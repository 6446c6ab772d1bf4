package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rpgo/mortgage-simulator/internal/calculation"
	"github.com/rpgo/mortgage-simulator/internal/domain"
)

func main() {
	engine := calculation.NewEngine(nil)

	// Rate-based PMI
	in := domain.DownPaymentInput{
		HousePrice:      400000,
		MortgageRatePct: 6.5,
		LoanTermYears:   30,
		SimulationYears: 10,
		AppreciationPct: 3,
		PMIRatePct:      0.5,
	}
	res, err := engine.RunDownPayment(context.Background(), in)
	if err != nil {
		panic(err)
	}
	fmt.Println("Rate-based PMI (0.5% annual):")
	printTiers(res)

	// Fixed monthly PMI, no appreciation
	in.PMIRatePct = 0
	in.PMIMonthlyAmount = 150
	in.AppreciationPct = 0
	res, err = engine.RunDownPayment(context.Background(), in)
	if err != nil {
		panic(err)
	}
	fmt.Println("Fixed PMI ($150/month, flat prices):")
	printTiers(res)

	monthly := calculation.MonthlyPMI(360000, 0.10, 0.5, 0)
	fmt.Printf("MonthlyPMI(360000, 10%%, 0.5%%): %s\n", decimal.NewFromFloat(monthly).StringFixed(2))
}

func printTiers(res *domain.DownPaymentResult) {
	for _, t := range res.Tiers {
		fmt.Printf("  %4.0f%% down: loan=%s pmi=%s dropoff=%d paid=%s\n",
			t.Percent*100,
			decimal.NewFromFloat(t.LoanAmount).StringFixed(0),
			decimal.NewFromFloat(t.MonthlyPMI).StringFixed(2),
			t.PMIDropoffMonth,
			decimal.NewFromFloat(t.TotalPMIPaid).StringFixed(2))
	}
}
