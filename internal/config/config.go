package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bnema/stonesplit/internal/splitsearch"
	"github.com/spf13/viper"
)

const (
	configDir  = ".stonesplit"
	configName = "config"
	configType = "toml"
	envPrefix  = "STONESPLIT"

	ExactnessThresholdKey = "engine.exactness_threshold"
	IterationCapKey       = "engine.iteration_cap"
	DivisorRuleKey        = "engine.divisor_rule"
	WorkersKey            = "engine.workers"
	SplitCeilingKey       = "engine.split_ceiling"
	LogLevelKey           = "log.level"
	LogFileKey            = "log.file"
	InputPathKey          = "input.path"

	DefaultInputPath = "Input/input.txt"

	ceilingMax    = "max"
	ceilingLegacy = "legacy"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Engine    EngineConfig
	Log       LogConfig
	InputPath string
}

type EngineConfig struct {
	ExactnessThreshold int64
	IterationCap       int
	DivisorRule        splitsearch.DivisorRule
	// Workers is the batch worker count; zero means one per CPU.
	Workers      int
	SplitCeiling uint64
}

type LogConfig struct {
	Level string
	// File, when set, receives a copy of every log record.
	File string
}

// Load reads defaults, the optional config file and STONESPLIT_* environment
// overrides into cfg and decodes the result. A config file set explicitly on
// cfg must exist; the default ~/.stonesplit/config.toml may be absent.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	cfg.SetDefault(ExactnessThresholdKey, splitsearch.DefaultExactnessThreshold)
	cfg.SetDefault(IterationCapKey, splitsearch.DefaultIterationCap)
	cfg.SetDefault(DivisorRuleKey, string(splitsearch.RuleImplicit))
	cfg.SetDefault(WorkersKey, 0)
	cfg.SetDefault(SplitCeilingKey, ceilingMax)
	cfg.SetDefault(LogLevelKey, "warn")
	cfg.SetDefault(LogFileKey, "")
	cfg.SetDefault(InputPathKey, DefaultInputPath)

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if cfg.ConfigFileUsed() == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.SetConfigName(configName)
		cfg.SetConfigType(configType)
		cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	}

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	ceiling, err := ParseSplitCeiling(cfg.GetString(SplitCeilingKey))
	if err != nil {
		return Config{}, err
	}

	rule, err := splitsearch.ParseDivisorRule(cfg.GetString(DivisorRuleKey))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, DivisorRuleKey, err)
	}

	loaded := Config{
		Engine: EngineConfig{
			ExactnessThreshold: cfg.GetInt64(ExactnessThresholdKey),
			IterationCap:       cfg.GetInt(IterationCapKey),
			DivisorRule:        rule,
			Workers:            cfg.GetInt(WorkersKey),
			SplitCeiling:       ceiling,
		},
		Log: LogConfig{
			Level: cfg.GetString(LogLevelKey),
			File:  cfg.GetString(LogFileKey),
		},
		InputPath: cfg.GetString(InputPathKey),
	}

	if err := loaded.validate(); err != nil {
		return Config{}, err
	}

	return loaded, nil
}

func (c Config) validate() error {
	var errs []error
	if c.Engine.ExactnessThreshold <= 0 {
		errs = append(errs, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, ExactnessThresholdKey, c.Engine.ExactnessThreshold))
	}
	if c.Engine.IterationCap <= 0 {
		errs = append(errs, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, IterationCapKey, c.Engine.IterationCap))
	}
	if c.Engine.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidConfig, WorkersKey, c.Engine.Workers))
	}
	if strings.TrimSpace(c.InputPath) == "" {
		errs = append(errs, fmt.Errorf("%w: %s is empty", ErrInvalidConfig, InputPathKey))
	}

	return errors.Join(errs...)
}

// ParseSplitCeiling accepts "max", "legacy" or a positive decimal count.
func ParseSplitCeiling(raw string) (uint64, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", ceilingMax:
		return splitsearch.DefaultSplitCeiling, nil
	case ceilingLegacy:
		return splitsearch.LegacySplitCeiling, nil
	}

	ceiling, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || ceiling == 0 {
		return 0, fmt.Errorf("%w: %s must be %q, %q or a positive integer, got %q", ErrInvalidConfig, SplitCeilingKey, ceilingMax, ceilingLegacy, raw)
	}

	return ceiling, nil
}

// Options converts the engine section into splitsearch options. A zero
// worker count keeps the engine default.
func (c EngineConfig) Options() []splitsearch.Option {
	opts := []splitsearch.Option{
		splitsearch.WithExactnessThreshold(c.ExactnessThreshold),
		splitsearch.WithIterationCap(c.IterationCap),
		splitsearch.WithDivisorRule(c.DivisorRule),
		splitsearch.WithSplitCeiling(c.SplitCeiling),
	}
	if c.Workers > 0 {
		opts = append(opts, splitsearch.WithWorkers(c.Workers))
	}

	return opts
}

// CeilingLabel names a ceiling the way the config file spells it.
func CeilingLabel(ceiling uint64) string {
	switch ceiling {
	case math.MaxUint64:
		return ceilingMax
	case math.MaxInt32:
		return ceilingLegacy
	default:
		return strconv.FormatUint(ceiling, 10)
	}
}
