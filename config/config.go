package config

import (
	"errors"
	"fmt"
	"os"

	"pong/game"
	"pong/meta"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure
type Config struct {
	Seed     uint64         `yaml:"seed"`
	Physics  game.Physics   `yaml:"physics"`
	Learning LearningConfig `yaml:"learning"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LogConfig      `yaml:"logging"`
}

// LearningConfig defines the hyper-parameters of a session
type LearningConfig struct {
	TrainGames int     `yaml:"train_games"`
	EvalGames  int     `yaml:"eval_games"`
	Alpha      float64 `yaml:"alpha"`
	Gamma      float64 `yaml:"gamma"`
	Epsilon    float64 `yaml:"epsilon"`
	MaxSteps   int     `yaml:"max_steps"` // 0 plays every game until a miss
}

// OutputConfig defines where artifacts are written
type OutputConfig struct {
	TablePath      string `yaml:"table_path"`      // Trained value table, empty to skip
	ExperimentsDir string `yaml:"experiments_dir"` // Root of experiment records
	ChartWindow    int    `yaml:"chart_window"`    // Moving average width of learning curves
}

// LogConfig defines logging parameters
type LogConfig struct {
	Level    string `yaml:"level"` // debug|info|warn|error
	LogEvery int    `yaml:"log_every"`
}

// Default returns the configuration of the original assignment.
func Default() *Config {
	return &Config{
		Seed:    meta.Seed,
		Physics: *game.StandardPhysics(),
		Learning: LearningConfig{
			TrainGames: meta.TrainGames,
			EvalGames:  meta.EvalGames,
			Alpha:      meta.Alpha,
			Gamma:      meta.Gamma,
			Epsilon:    meta.Epsilon,
		},
		Output: OutputConfig{
			TablePath:      "artifacts/q_table.json",
			ExperimentsDir: "experiments",
			ChartWindow:    500,
		},
		Logging: LogConfig{
			Level:    "info",
			LogEvery: meta.LogEvery,
		},
	}
}

// Load reads a YAML config file over the defaults: keys missing from the
// file keep their default, keys present are taken as is, zero included.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Learning.TrainGames < 0 || c.Learning.EvalGames < 0 {
		errs = append(errs, errors.New("game counts must not be negative"))
	}
	if c.Learning.MaxSteps < 0 {
		errs = append(errs, errors.New("max steps must not be negative"))
	}
	rates := []struct {
		name  string
		value float64
	}{
		{"alpha", c.Learning.Alpha},
		{"gamma", c.Learning.Gamma},
		{"epsilon", c.Learning.Epsilon},
	}
	for _, rate := range rates {
		if rate.value < 0 || rate.value > 1 {
			errs = append(errs, fmt.Errorf("%s %v outside [0, 1]", rate.name, rate.value))
		}
	}
	if c.Output.ChartWindow < 1 {
		errs = append(errs, errors.New("chart window must be at least 1"))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Logging.Level))
	}
	if err := c.Physics.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
