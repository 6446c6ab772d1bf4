package main

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rpgo/mortgage-simulator/internal/calculation"
	"github.com/rpgo/mortgage-simulator/internal/config"
	"github.com/rpgo/mortgage-simulator/internal/domain"
	"github.com/rpgo/mortgage-simulator/internal/output"
)

func newRunCmd(a *app) *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every comparison in a scenario file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(configFile)
			if err != nil {
				return err
			}
			return a.simulate(cmd, cfg)
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "scenario configuration file (YAML)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

// simulateFlags validates a configuration assembled from flags before running it.
func (a *app) simulateFlags(cmd *cobra.Command, cfg *domain.Configuration) error {
	if err := config.NewInputParser().ValidateConfiguration(cfg); err != nil {
		return err
	}
	return a.simulate(cmd, cfg)
}

func newDownPaymentCmd(a *app) *cobra.Command {
	var in domain.DownPaymentInput
	cmd := &cobra.Command{
		Use:   "downpayment",
		Short: "Compare down payment tiers against investing the difference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("pmi-monthly") {
				in.PMIRatePct = 0
			}
			return a.simulateFlags(cmd, &domain.Configuration{DownPayment: &in})
		},
	}
	f := cmd.Flags()
	f.Float64Var(&in.HousePrice, "price", 400000, "house price")
	f.Float64Var(&in.MortgageRatePct, "rate", 6.5, "mortgage rate in percent")
	f.IntVar(&in.LoanTermYears, "term", 30, "loan term in years")
	f.IntVar(&in.SimulationYears, "years", 10, "years to simulate")
	f.Float64Var(&in.AppreciationPct, "appreciation", 3, "annual home appreciation in percent")
	f.Float64Var(&in.PMIRatePct, "pmi-rate", 0.5, "annual PMI in percent of the loan")
	f.Float64Var(&in.PMIMonthlyAmount, "pmi-monthly", 0, "fixed monthly PMI, replaces --pmi-rate")
	f.Float64SliceVar(&in.Tiers, "tiers", nil, "down payment fractions (default 0.05,0.10,0.15,0.20)")
	return cmd
}

func newExtraPaymentCmd(a *app) *cobra.Command {
	var in domain.ExtraPaymentInput
	cmd := &cobra.Command{
		Use:   "extra-payment",
		Short: "Compare prepaying principal against investing the same amount",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.simulateFlags(cmd, &domain.Configuration{ExtraPayment: &in})
		},
	}
	f := cmd.Flags()
	f.Float64Var(&in.LoanAmount, "loan", 320000, "loan amount")
	f.Float64Var(&in.RatePct, "rate", 6.5, "mortgage rate in percent")
	f.IntVar(&in.TermYears, "term", 30, "loan term in years")
	f.Float64Var(&in.ExtraPayment, "extra", 250, "extra monthly payment")
	f.Float64Var(&in.HouseValue, "house-value", 0, "house value (default: the loan amount)")
	return cmd
}

func newPointsCmd(a *app) *cobra.Command {
	var in domain.PointsInput
	cmd := &cobra.Command{
		Use:   "points",
		Short: "Compare buying discount points against investing their cost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.simulateFlags(cmd, &domain.Configuration{Points: &in})
		},
	}
	f := cmd.Flags()
	f.Float64Var(&in.LoanAmount, "loan", 320000, "loan amount")
	f.IntVar(&in.TermYears, "term", 30, "loan term in years")
	f.Float64Var(&in.BaseRatePct, "rate", 7, "rate without points in percent")
	f.Float64Var(&in.CostPerPointPct, "cost-per-point", 1, "cost of one point in percent of the loan")
	f.Float64Var(&in.ReductionPerPoint, "reduction", 0.25, "rate reduction per point in percentage points")
	f.Float64Var(&in.NumPoints, "points", 1, "number of points")
	f.IntVar(&in.OwnershipYears, "years", 10, "years you expect to keep the loan")
	return cmd
}

func newArmCmd(a *app) *cobra.Command {
	var in domain.ArmComparisonInput
	cmd := &cobra.Command{
		Use:   "arm",
		Short: "Simulate a 5/1 ARM against a fixed-rate loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.simulateFlags(cmd, &domain.Configuration{Arm: &in})
		},
	}
	f := cmd.Flags()
	f.Float64Var(&in.LoanAmount, "loan", 320000, "loan amount")
	f.IntVar(&in.TermYears, "term", 30, "loan term in years")
	f.Float64Var(&in.FixedRatePct, "fixed-rate", 6.75, "fixed loan rate in percent")
	f.Float64Var(&in.Arm.InitialRatePct, "initial-rate", 5.875, "ARM rate for the first 5 years in percent")
	f.Float64Var(&in.Arm.MarginPct, "margin", 2.75, "margin over the index in percent")
	f.Float64Var(&in.Arm.InitialCapPct, "initial-cap", 2, "cap on the first adjustment")
	f.Float64Var(&in.Arm.PeriodicCapPct, "periodic-cap", 1, "cap on later adjustments")
	f.Float64Var(&in.Arm.LifetimeCapPct, "lifetime-cap", 5, "cap over the initial rate")
	f.IntVar(&in.Trials, "trials", 1000, "number of Monte Carlo trials")
	f.Float64Var(&in.MeanReversion, "mean-reversion", 0, "pull toward the long-term average index, 0 to 1")
	return cmd
}

func newPeriodsCmd(a *app) *cobra.Command {
	var (
		years int
		list  bool
	)
	cmd := &cobra.Command{
		Use:   "periods",
		Short: "Summarize the historical return windows of a given length",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := a.engine.Store
			stats, err := store.PeriodStatistics(years)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if output.NormalizeFormatName(a.settings.Format) == "json" {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			}

			first, last := store.YearSpan()
			fmt.Fprintf(w, "%d-year windows of annual market returns, %d-%d\n", years, first, last)
			fmt.Fprintf(w, "Windows:     %d\n", stats.Count)
			fmt.Fprintf(w, "Min CAGR:    %.2f%%\n", stats.MinCAGR)
			fmt.Fprintf(w, "P10 CAGR:    %.2f%%\n", stats.Percentile10)
			fmt.Fprintf(w, "Median CAGR: %.2f%%\n", stats.MedianCAGR)
			fmt.Fprintf(w, "Mean CAGR:   %.2f%%\n", stats.MeanCAGR)
			fmt.Fprintf(w, "P90 CAGR:    %.2f%%\n", stats.Percentile90)
			fmt.Fprintf(w, "Max CAGR:    %.2f%%\n", stats.MaxCAGR)
			if !list {
				return nil
			}
			periods, err := store.GetPeriods(years)
			if err != nil {
				return err
			}
			fmt.Fprintln(w)
			for _, p := range periods {
				fmt.Fprintf(w, "%s  %6.2f%%\n", p.Label(), calculation.CAGR(p.Returns))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&years, "years", "y", 30, "window length in years")
	cmd.Flags().BoolVar(&list, "list", false, "also print the CAGR of every window")
	return cmd
}

func newExampleConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [file]",
		Short: "Write an example scenario file covering all four comparisons",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "example_config.yaml"
			if len(args) == 1 {
				filename = args[0]
			}
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(cfg, filename); err != nil {
				return fmt.Errorf("failed to save example configuration: %w", err)
			}
			a.log.WithFields(logrus.Fields{"file": filename}).Info("example configuration written")
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", filename)
			return nil
		},
	}
}
