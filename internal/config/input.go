package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rpgo/mortgage-simulator/internal/domain"
)

// InputParser handles parsing of scenario configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates configuration bytes.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration checks that at least one comparison is present and
// that each one is structurally sound. Range checks that depend on the
// historical data are left to the engine.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.ScenarioCount() == 0 {
		return domain.NewInputError("configuration", "no scenarios provided (expected down_payment, extra_payment, points or arm)")
	}
	if config.Seed < 0 {
		return domain.NewInputError("seed", "cannot be negative, got %d", config.Seed)
	}

	if config.DownPayment != nil {
		if err := ip.validateDownPayment(config.DownPayment); err != nil {
			return fmt.Errorf("down_payment validation failed: %w", err)
		}
	}
	if config.ExtraPayment != nil {
		if err := ip.validateExtraPayment(config.ExtraPayment); err != nil {
			return fmt.Errorf("extra_payment validation failed: %w", err)
		}
	}
	if config.Points != nil {
		if err := ip.validatePoints(config.Points); err != nil {
			return fmt.Errorf("points validation failed: %w", err)
		}
	}
	if config.Arm != nil {
		if err := ip.validateArm(config.Arm); err != nil {
			return fmt.Errorf("arm validation failed: %w", err)
		}
	}

	return nil
}

func (ip *InputParser) validateDownPayment(in *domain.DownPaymentInput) error {
	if in.HousePrice <= 0 {
		return domain.NewInputError("house_price", "must be positive")
	}
	if in.MortgageRatePct <= 0 {
		return domain.NewInputError("mortgage_rate_pct", "must be positive")
	}
	if in.SimulationYears <= 0 {
		return domain.NewInputError("simulation_years", "must be positive")
	}
	if in.LoanTermYears < 0 {
		return domain.NewInputError("loan_term_years", "cannot be negative")
	}
	if in.PMIRatePct > 0 && in.PMIMonthlyAmount > 0 {
		return domain.NewInputError("pmi", "specify either pmi_rate_pct or pmi_monthly_amount, not both")
	}
	for _, pct := range in.Tiers {
		if pct <= 0 || pct >= 1 {
			return domain.NewInputError("tiers", "fraction %v must be between 0 and 1", pct)
		}
	}
	return nil
}

func (ip *InputParser) validateExtraPayment(in *domain.ExtraPaymentInput) error {
	if in.LoanAmount <= 0 {
		return domain.NewInputError("loan_amount", "must be positive")
	}
	if in.RatePct < 0 {
		return domain.NewInputError("rate_pct", "cannot be negative")
	}
	if in.ExtraPayment < 0 {
		return domain.NewInputError("extra_payment", "cannot be negative")
	}
	return nil
}

func (ip *InputParser) validatePoints(in *domain.PointsInput) error {
	if in.LoanAmount <= 0 {
		return domain.NewInputError("loan_amount", "must be positive")
	}
	if in.BaseRatePct <= 0 {
		return domain.NewInputError("base_rate_pct", "must be positive")
	}
	if in.OwnershipYears <= 0 {
		return domain.NewInputError("ownership_years", "must be positive")
	}
	if in.TermYears > 0 && in.OwnershipYears > in.TermYears {
		return domain.NewInputError("ownership_years", "cannot exceed term_years")
	}
	if in.NumPoints < 0 || in.ReductionPerPoint < 0 || in.CostPerPointPct < 0 {
		return domain.NewInputError("points", "num_points, reduction_per_point and cost_per_point_pct cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateArm(in *domain.ArmComparisonInput) error {
	if in.LoanAmount <= 0 {
		return domain.NewInputError("loan_amount", "must be positive")
	}
	if in.TermYears <= 5 {
		return domain.NewInputError("term_years", "must exceed the 5-year fixed period")
	}
	if in.Trials <= 0 {
		return domain.NewInputError("trials", "must be positive")
	}
	if in.MeanReversion < 0 || in.MeanReversion > 1 {
		return domain.NewInputError("mean_reversion", "must be between 0 and 1")
	}
	return in.Arm.Validate()
}

// CreateExampleConfiguration creates an example configuration covering all four comparisons
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Name: "Example purchase",
		Seed: 42,
		DownPayment: &domain.DownPaymentInput{
			HousePrice:      400000,
			MortgageRatePct: 6.5,
			LoanTermYears:   30,
			SimulationYears: 10,
			AppreciationPct: 3,
			PMIRatePct:      0.5,
			Tiers:           append([]float64(nil), domain.DefaultDownPaymentTiers...),
		},
		ExtraPayment: &domain.ExtraPaymentInput{
			LoanAmount:   320000,
			RatePct:      6.5,
			TermYears:    30,
			ExtraPayment: 250,
			HouseValue:   400000,
		},
		Points: &domain.PointsInput{
			LoanAmount:        320000,
			TermYears:         30,
			BaseRatePct:       6.75,
			CostPerPointPct:   1,
			ReductionPerPoint: 0.25,
			NumPoints:         2,
			OwnershipYears:    10,
		},
		Arm: &domain.ArmComparisonInput{
			LoanAmount:   320000,
			TermYears:    30,
			FixedRatePct: 6.75,
			Arm: domain.ArmTerms{
				InitialRatePct: 5.875,
				MarginPct:      2.75,
				InitialCapPct:  2,
				PeriodicCapPct: 1,
				LifetimeCapPct: 5,
			},
			Trials: 1000,
		},
	}
}
