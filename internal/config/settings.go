package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rpgo/mortgage-simulator/internal/domain"
)

// EnvPrefix namespaces environment overrides, e.g. MORTSIM_LOG_LEVEL.
const EnvPrefix = "MORTSIM"

// SettingsFileName is searched for in the working directory when no settings file is given.
const SettingsFileName = "mortsim"

// DefaultEnvFile is loaded when present and no env file is given.
const DefaultEnvFile = ".env"

// Settings are the runtime options of the CLI, separate from the scenario file.
type Settings struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	Format    string `mapstructure:"format"`
	OutputDir string `mapstructure:"output_dir"`
	BatchSize int    `mapstructure:"batch_size"`
	Seed      int64  `mapstructure:"seed"`
	DataDir   string `mapstructure:"data_dir"`
}

// flagKeys maps CLI flag names to settings keys.
var flagKeys = map[string]string{
	"log-level":  "log_level",
	"log-format": "log_format",
	"format":     "format",
	"output-dir": "output_dir",
	"batch-size": "batch_size",
	"seed":       "seed",
	"data-dir":   "data_dir",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("format", "console")
	v.SetDefault("output_dir", "")
	v.SetDefault("batch_size", 100)
	v.SetDefault("seed", 0)
	v.SetDefault("data_dir", "")
}

// NewViper returns a viper instance with defaults and MORTSIM_* environment lookup.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadEnvFile copies variables from a dotenv file into the process
// environment without overriding variables that are already set. An explicit
// path must exist; the default .env may be absent.
func LoadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read env file: %w", err)
	}
	for key, value := range vars {
		if _, ok := os.LookupEnv(key); ok {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}
	return nil
}

// BindFlags binds any known flags present in flags to their settings keys.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// LoadSettings reads the optional settings file and resolves every layer.
// An explicit file must exist; the default mortsim.yaml may be absent.
func LoadSettings(v *viper.Viper, file string) (*Settings, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(SettingsFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks enumerated and numeric settings.
func (s *Settings) Validate() error {
	if _, err := logrus.ParseLevel(s.LogLevel); err != nil {
		return domain.NewInputError("log_level", "%v", err)
	}
	switch s.LogFormat {
	case "text", "json":
	default:
		return domain.NewInputError("log_format", "must be text or json, got %q", s.LogFormat)
	}
	if s.BatchSize <= 0 {
		return domain.NewInputError("batch_size", "must be positive, got %d", s.BatchSize)
	}
	if s.Seed < 0 {
		return domain.NewInputError("seed", "cannot be negative, got %d", s.Seed)
	}
	return nil
}

// NewLogger builds a logrus logger from the level and format settings.
func (s *Settings) NewLogger() *logrus.Logger {
	logger := logrus.New()
	if level, err := logrus.ParseLevel(s.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	if s.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
