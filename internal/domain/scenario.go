package domain

// DefaultDownPaymentTiers are compared when a scenario lists none.
var DefaultDownPaymentTiers = []float64{0.05, 0.10, 0.15, 0.20}

// DownPaymentInput compares putting more cash down against investing it.
type DownPaymentInput struct {
	HousePrice       float64   `yaml:"house_price" json:"house_price"`
	MortgageRatePct  float64   `yaml:"mortgage_rate_pct" json:"mortgage_rate_pct"`
	LoanTermYears    int       `yaml:"loan_term_years" json:"loan_term_years"`
	SimulationYears  int       `yaml:"simulation_years" json:"simulation_years"`
	AppreciationPct  float64   `yaml:"appreciation_pct" json:"appreciation_pct"`
	PMIRatePct       float64   `yaml:"pmi_rate_pct,omitempty" json:"pmi_rate_pct,omitempty"`
	PMIMonthlyAmount float64   `yaml:"pmi_monthly_amount,omitempty" json:"pmi_monthly_amount,omitempty"`
	Tiers            []float64 `yaml:"tiers,omitempty" json:"tiers,omitempty"`
}

// DownPaymentTier is the outcome of one down-payment fraction. Yearly series
// have SimulationYears+1 entries starting at purchase.
type DownPaymentTier struct {
	Percent          float64 `json:"percent"`
	DownPayment      float64 `json:"down_payment"`
	InvestmentAmount float64 `json:"investment_amount"`
	InvestedCapital  float64 `json:"invested_capital"`
	LoanAmount       float64 `json:"loan_amount"`
	MonthlyPayment   float64 `json:"monthly_payment"`
	MonthlyPMI       float64 `json:"monthly_pmi"`
	PMIDropoffMonth  int     `json:"pmi_dropoff_month"`
	TotalPMIPaid     float64 `json:"total_pmi_paid"`

	Investment         PercentileBand `json:"investment"`
	HouseValue         []float64      `json:"house_value"`
	LoanBalance        []float64      `json:"loan_balance"`
	CashFlowDifference []float64      `json:"cash_flow_difference"`
	NetWorth           []float64      `json:"net_worth"`
	FinalNetWorth      float64        `json:"final_net_worth"`
}

// DownPaymentResult collects every tier for a single run.
type DownPaymentResult struct {
	Input           DownPaymentInput  `json:"input"`
	SimulationYears int               `json:"simulation_years"`
	PeriodCount     int               `json:"period_count"`
	Tiers           []DownPaymentTier `json:"tiers"`
	BestTier        int               `json:"best_tier"`
}

// InvestmentAmounts lists each tier's extra cash relative to the smallest tier.
func (r *DownPaymentResult) InvestmentAmounts() []float64 {
	out := make([]float64, len(r.Tiers))
	for i, t := range r.Tiers {
		out[i] = t.InvestmentAmount
	}
	return out
}

// ExtraPaymentInput compares prepaying principal against investing the same cash.
type ExtraPaymentInput struct {
	LoanAmount   float64 `yaml:"loan_amount" json:"loan_amount"`
	RatePct      float64 `yaml:"rate_pct" json:"rate_pct"`
	TermYears    int     `yaml:"term_years,omitempty" json:"term_years,omitempty"`
	ExtraPayment float64 `yaml:"extra_payment" json:"extra_payment"`
	HouseValue   float64 `yaml:"house_value,omitempty" json:"house_value,omitempty"`
}

// StrategyOutcome is the distribution of final net worth for one strategy.
type StrategyOutcome struct {
	Median float64 `json:"median"`
	Lower  float64 `json:"lower"`
	Upper  float64 `json:"upper"`
	// MedianPath is the yearly net worth of the window whose final value ranks median.
	MedianPath   []float64 `json:"median_path"`
	MedianPeriod string    `json:"median_period"`
	Finals       []float64 `json:"finals"`
}

// ExtraPaymentResult reports both amortizations and both strategies.
type ExtraPaymentResult struct {
	Input             ExtraPaymentInput `json:"input"`
	BasePayment       float64           `json:"base_payment"`
	RegularInterest   float64           `json:"regular_interest"`
	ExtraInterest     float64           `json:"extra_interest"`
	InterestSaved     float64           `json:"interest_saved"`
	PayoffMonth       int               `json:"payoff_month"`
	RegularBalances   []float64         `json:"regular_balances"`
	ExtraBalances     []float64         `json:"extra_balances"`
	Invest            StrategyOutcome   `json:"invest"`
	PayDown           StrategyOutcome   `json:"pay_down"`
	ProbInvestingWins float64           `json:"prob_investing_wins"`
	PeriodCount       int               `json:"period_count"`
}

// PointsInput compares buying discount points against investing their cost.
type PointsInput struct {
	LoanAmount        float64 `yaml:"loan_amount" json:"loan_amount"`
	TermYears         int     `yaml:"term_years" json:"term_years"`
	BaseRatePct       float64 `yaml:"base_rate_pct" json:"base_rate_pct"`
	CostPerPointPct   float64 `yaml:"cost_per_point_pct,omitempty" json:"cost_per_point_pct,omitempty"`
	ReductionPerPoint float64 `yaml:"reduction_per_point" json:"reduction_per_point"`
	NumPoints         float64 `yaml:"num_points" json:"num_points"`
	OwnershipYears    int     `yaml:"ownership_years" json:"ownership_years"`
}

// PointsResult reports the cost recovery of points and the invested alternative.
type PointsResult struct {
	Input             PointsInput    `json:"input"`
	PointsCost        float64        `json:"points_cost"`
	ReducedRatePct    float64        `json:"reduced_rate_pct"`
	BasePayment       float64        `json:"base_payment"`
	ReducedPayment    float64        `json:"reduced_payment"`
	MonthlySavings    float64        `json:"monthly_savings"`
	InterestSavings   float64        `json:"interest_savings"`
	CumulativeSavings []float64      `json:"cumulative_savings"`
	// BreakEvenMonth is the exact first month whose cumulative interest
	// savings cover the cost, not a value interpolated between yearly totals.
	// It is the planned month count when BreakEvenReached is false.
	BreakEvenMonth    int            `json:"break_even_month"`
	BreakEvenReached  bool           `json:"break_even_reached"`
	Investment        PercentileBand `json:"investment"`
	FinalMedian       float64        `json:"final_median"`
	FinalP10          float64        `json:"final_p10"`
	FinalP90          float64        `json:"final_p90"`
	ProbInvestingWins float64        `json:"prob_investing_wins"`
	PeriodCount       int            `json:"period_count"`
}

// ArmComparisonInput compares a fixed-rate loan with a simulated 5/1 ARM.
type ArmComparisonInput struct {
	LoanAmount   float64  `yaml:"loan_amount" json:"loan_amount"`
	TermYears    int      `yaml:"term_years" json:"term_years"`
	FixedRatePct float64  `yaml:"fixed_rate_pct" json:"fixed_rate_pct"`
	Arm          ArmTerms `yaml:"arm" json:"arm"`
	Trials       int      `yaml:"trials" json:"trials"`
	// MeanReversion pulls the index toward its long-term average, in [0,1].
	MeanReversion float64 `yaml:"mean_reversion,omitempty" json:"mean_reversion,omitempty"`
}

// YearlyRateStat is the cross-path distribution of ARM rates in one year.
type YearlyRateStat struct {
	Year    int     `json:"year"`
	Lower   float64 `json:"lower"`
	Median  float64 `json:"median"`
	Upper   float64 `json:"upper"`
	Average float64 `json:"average"`
}

// ArmComparisonResult aggregates every trial of an ARM Monte Carlo run.
type ArmComparisonResult struct {
	Input            ArmComparisonInput `json:"input"`
	FixedCost        float64            `json:"fixed_cost"`
	FixedPayment     float64            `json:"fixed_payment"`
	Costs            Summary            `json:"costs"`
	CILow            float64            `json:"ci_low"`
	CIHigh           float64            `json:"ci_high"`
	ProbArmCheaper   float64            `json:"prob_arm_cheaper"`
	ExpectedSavings  float64            `json:"expected_savings"`
	TrialCosts       []float64          `json:"trial_costs"`
	SamplePaths      [][]float64        `json:"sample_paths"`
	RateBands        []YearlyRateStat   `json:"rate_bands"`
	CostHistogram    Histogram          `json:"cost_histogram"`
	SavingsHistogram Histogram          `json:"savings_histogram"`
}

// ArmCheaper reports whether the median ARM cost beats the fixed loan.
func (r *ArmComparisonResult) ArmCheaper() bool { return r.Costs.Median <= r.FixedCost }
