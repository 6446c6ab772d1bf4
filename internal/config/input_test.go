package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/mortgage-simulator/internal/domain"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "name: \"First home\"\n" +
		"seed: 7\n" +
		"down_payment:\n" +
		"  house_price: 400000\n" +
		"  mortgage_rate_pct: 6.5\n" +
		"  loan_term_years: 30\n" +
		"  simulation_years: 10\n" +
		"  appreciation_pct: 3\n" +
		"  pmi_rate_pct: 0.5\n" +
		"arm:\n" +
		"  loan_amount: 320000\n" +
		"  term_years: 30\n" +
		"  fixed_rate_pct: 6.75\n" +
		"  trials: 500\n" +
		"  arm:\n" +
		"    initial_rate_pct: 5.875\n" +
		"    margin_pct: 2.75\n" +
		"    initial_cap_pct: 2\n" +
		"    periodic_cap_pct: 1\n" +
		"    lifetime_cap_pct: 5\n"

	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "First home", config.Name)
	assert.Equal(t, int64(7), config.Seed)
	assert.Equal(t, 2, config.ScenarioCount())
	require.NotNil(t, config.DownPayment)
	assert.Equal(t, 400000.0, config.DownPayment.HousePrice)
	assert.Empty(t, config.DownPayment.Tiers, "tiers default inside the engine")
	require.NotNil(t, config.Arm)
	assert.Equal(t, 500, config.Arm.Trials)
	assert.Equal(t, 5.875, config.Arm.Arm.InitialRatePct)
	assert.Nil(t, config.Points)
	assert.Nil(t, config.ExtraPayment)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeConfig(t, "down_payment: [unterminated\n"))
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_NoScenarios(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(writeConfig(t, "name: empty\nseed: 3\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Configuration)
		wantErr string
	}{
		{"example is valid", func(*domain.Configuration) {}, ""},
		{"negative seed", func(c *domain.Configuration) { c.Seed = -1 }, "seed"},
		{"missing house price", func(c *domain.Configuration) { c.DownPayment.HousePrice = 0 }, "down_payment validation failed"},
		{"both pmi forms", func(c *domain.Configuration) { c.DownPayment.PMIMonthlyAmount = 90 }, "not both"},
		{"tier of one", func(c *domain.Configuration) { c.DownPayment.Tiers = []float64{0.1, 1} }, "tiers"},
		{"negative extra", func(c *domain.Configuration) { c.ExtraPayment.ExtraPayment = -10 }, "extra_payment validation failed"},
		{"ownership beyond term", func(c *domain.Configuration) { c.Points.OwnershipYears = 40 }, "points validation failed"},
		{"short arm term", func(c *domain.Configuration) { c.Arm.TermYears = 5 }, "arm validation failed"},
		{"no trials", func(c *domain.Configuration) { c.Arm.Trials = 0 }, "trials"},
		{"negative cap", func(c *domain.Configuration) { c.Arm.Arm.PeriodicCapPct = -1 }, "caps"},
		{"reversion above one", func(c *domain.Configuration) { c.Arm.MeanReversion = 2 }, "mean_reversion"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewInputParser()
			config := parser.CreateExampleConfiguration()
			tt.mutate(config)
			err := parser.ValidateConfiguration(config)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	assert.Equal(t, 4, config.ScenarioCount())
	assert.Equal(t, domain.DefaultDownPaymentTiers, config.DownPayment.Tiers)
	config.DownPayment.Tiers[0] = 0.01
	assert.Equal(t, 0.05, domain.DefaultDownPaymentTiers[0], "example tiers must not alias the defaults")
}

func TestExampleConfigurationRoundTrip(t *testing.T) {
	parser := NewInputParser()
	original := parser.CreateExampleConfiguration()

	data, err := yaml.Marshal(original)
	require.NoError(t, err)
	parsed, err := parser.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}
