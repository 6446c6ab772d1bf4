package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/mortgage-simulator/internal/domain"
)

// Engine runs mortgage strategy comparisons over a historical series store.
// It holds no per-run state; each Run call returns a fresh result.
type Engine struct {
	Store     *SeriesStore
	Logger    Logger
	BatchSize int
	Progress  ProgressFunc
}

// NewEngine creates an engine over store, or over the embedded data when store is nil.
func NewEngine(store *SeriesStore) *Engine {
	if store == nil {
		store = DefaultSeriesStore()
	}
	return &Engine{
		Store:     store,
		Logger:    NopLogger{},
		BatchSize: DefaultBatchSize,
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

func (e *Engine) logger() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}

func (e *Engine) runner(stage string) BatchRunner {
	return BatchRunner{Stage: stage, Size: e.BatchSize, Progress: e.Progress, Logger: e.logger()}
}

// RunArmComparison runs every ARM trial in batches and aggregates the result.
// A zero seed draws a fresh one; the seed used is returned for reproduction.
func (e *Engine) RunArmComparison(ctx context.Context, in domain.ArmComparisonInput, seed int64) (*domain.ArmComparisonResult, int64, error) {
	rng, seed := NewSampler(seed)
	return e.RunArmComparisonWith(ctx, in, rng, seed)
}

// RunArmComparisonWith is RunArmComparison with a caller-supplied sampler.
func (e *Engine) RunArmComparisonWith(ctx context.Context, in domain.ArmComparisonInput, rng IndexSampler, seed int64) (*domain.ArmComparisonResult, int64, error) {
	mc, err := NewArmMonteCarlo(e.Store, rng, in)
	if err != nil {
		return nil, seed, fmt.Errorf("arm comparison: %w", err)
	}
	e.logger().Debugf("arm comparison: %d trials, seed %d, fixed cost %.2f, %s", in.Trials, seed, mc.FixedCost(), mc.sim)

	err = e.runner("arm trials").Run(ctx, in.Trials, func(int) error {
		_, err := mc.RunBatch(1)
		return err
	})
	if err != nil {
		return nil, seed, fmt.Errorf("arm comparison: %w", err)
	}

	result, err := mc.Result()
	if err != nil {
		return nil, seed, fmt.Errorf("arm comparison: %w", err)
	}
	return result, seed, nil
}

// RunConfiguration runs every comparison present in cfg and summarizes them in one report.
func (e *Engine) RunConfiguration(ctx context.Context, cfg *domain.Configuration) (*domain.SimulationReport, error) {
	if cfg == nil || cfg.ScenarioCount() == 0 {
		return nil, domain.NewInputError("configuration", "contains no scenarios")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = seedFunc()
	}
	report := &domain.SimulationReport{
		RunID:       idFunc(),
		Name:        cfg.Name,
		GeneratedAt: nowFunc(),
		Seed:        seed,
	}
	log := e.logger()
	log.Infof("run %s: %d scenario(s)", report.RunID, cfg.ScenarioCount())

	if cfg.DownPayment != nil {
		r, err := e.RunDownPayment(ctx, *cfg.DownPayment)
		if err != nil {
			return nil, err
		}
		report.DownPayment = r
	}
	if cfg.ExtraPayment != nil {
		r, err := e.RunExtraPayment(ctx, *cfg.ExtraPayment)
		if err != nil {
			return nil, err
		}
		report.ExtraPayment = r
	}
	if cfg.Points != nil {
		r, err := e.RunPoints(ctx, *cfg.Points)
		if err != nil {
			return nil, err
		}
		report.Points = r
	}
	if cfg.Arm != nil {
		r, _, err := e.RunArmComparison(ctx, *cfg.Arm, seed)
		if err != nil {
			return nil, err
		}
		report.Arm = r
	}

	report.Summary = BuildSummary(report)
	log.Infof("run %s: complete with %d summary rows", report.RunID, len(report.Summary))
	return report, nil
}
