package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rpgo/mortgage-simulator/internal/calculation"
	"github.com/rpgo/mortgage-simulator/internal/config"
	"github.com/rpgo/mortgage-simulator/internal/domain"
	"github.com/rpgo/mortgage-simulator/internal/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app carries what PersistentPreRunE resolves for the subcommands.
type app struct {
	settings *config.Settings
	log      *logrus.Logger
	engine   *calculation.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var settingsFile, envFile string

	root := &cobra.Command{
		Use:          "mortgage-sim",
		Short:        "Compare mortgage strategies against historical market returns",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnvFile(envFile); err != nil {
				return err
			}
			return a.setup(cmd, settingsFile)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&envFile, "env-file", "", "dotenv file with MORTSIM_* variables (default ./.env when present)")
	pf.StringVar(&settingsFile, "settings", "", "settings file (default ./mortsim.yaml when present)")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("log-format", "text", "log format: text or json")
	pf.StringP("format", "f", "console", "report format: "+strings.Join(output.AvailableFormatterNames(), ", ")+" or all")
	pf.StringP("output-dir", "o", "", "write report files into this directory")
	pf.Int("batch-size", calculation.DefaultBatchSize, "work items per cancellation check")
	pf.Int64("seed", 0, "random seed for ARM trials (0 draws one)")
	pf.String("data-dir", "", "directory holding sp500-annual.csv and treasury-1y.csv")

	root.AddCommand(
		newRunCmd(a),
		newDownPaymentCmd(a),
		newExtraPaymentCmd(a),
		newPointsCmd(a),
		newArmCmd(a),
		newPeriodsCmd(a),
		newExampleConfigCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, settingsFile string) error {
	v := config.NewViper()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	s, err := config.LoadSettings(v, settingsFile)
	if err != nil {
		return err
	}
	a.settings = s
	a.log = s.NewLogger()
	a.log.SetOutput(cmd.ErrOrStderr())

	store := calculation.DefaultSeriesStore()
	if s.DataDir != "" {
		store, err = calculation.LoadSeriesStore(s.DataDir)
		if err != nil {
			return fmt.Errorf("failed to load historical data: %w", err)
		}
		first, last := store.YearSpan()
		a.log.WithFields(logrus.Fields{"data_dir": s.DataDir, "first_year": first, "last_year": last}).Info("loaded historical data")
	}
	a.engine = calculation.NewEngine(store)
	a.engine.BatchSize = s.BatchSize
	a.engine.SetLogger(a.log)
	return nil
}

// simulate runs cfg through the engine and renders the report.
func (a *app) simulate(cmd *cobra.Command, cfg *domain.Configuration) error {
	if a.settings.Seed > 0 {
		cfg.Seed = a.settings.Seed
	}
	a.log.WithFields(logrus.Fields{
		"name":      cfg.Name,
		"scenarios": cfg.ScenarioCount(),
		"seed":      cfg.Seed,
	}).Info("starting simulation")

	start := time.Now()
	report, err := a.engine.RunConfiguration(cmd.Context(), cfg)
	if err != nil {
		a.log.WithError(err).Error("simulation failed")
		return err
	}
	a.log.WithFields(logrus.Fields{
		"run_id":  report.RunID,
		"seed":    report.Seed,
		"elapsed": time.Since(start).Round(time.Millisecond).String(),
	}).Info("simulation complete")
	return a.render(cmd, report)
}

// render prints console formats to stdout unless an output directory is set;
// every other format is written to files.
func (a *app) render(cmd *cobra.Command, report *domain.SimulationReport) error {
	format := output.NormalizeFormatName(a.settings.Format)
	if (format == "console" || format == "console-lite") && a.settings.OutputDir == "" {
		data, err := output.GetFormatterByName(format).Format(report)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	dir := a.settings.OutputDir
	if dir == "" {
		dir = "."
	}
	files, err := output.GenerateReport(report, format, dir)
	if err != nil {
		return err
	}
	for _, f := range files {
		a.log.WithFields(logrus.Fields{"run_id": report.RunID, "file": f}).Info("report written")
		fmt.Fprintln(cmd.OutOrStdout(), f)
	}
	return nil
}
