package experiments

import (
	"fmt"
	"path/filepath"

	"pong/config"
	"pong/engine"
	"pong/experiments/metrics"

	"github.com/rs/zerolog/log"
)

var (
	AlphaSweep   = []float64{0.1, 0.3, 0.5, 0.7, 0.9}
	GammaSweep   = []float64{0.5, 0.7, 0.9, 0.95, 0.99}
	EpsilonSweep = []float64{0, 0.01, 0.05, 0.1, 0.2}
)

// Names lists the experiments accepted by RunNamed.
var Names = []string{"alpha", "gamma", "epsilon"}

func RunAlphaExperiment(base *config.Config) (string, error) {
	configs := sweep(base, AlphaSweep, func(c *metrics.AgentConfig, v float64) { c.Alpha = v })
	return Run("alpha", base, configs)
}

func RunGammaExperiment(base *config.Config) (string, error) {
	configs := sweep(base, GammaSweep, func(c *metrics.AgentConfig, v float64) { c.Gamma = v })
	return Run("gamma", base, configs)
}

func RunEpsilonExperiment(base *config.Config) (string, error) {
	configs := sweep(base, EpsilonSweep, func(c *metrics.AgentConfig, v float64) { c.Epsilon = v })
	return Run("epsilon", base, configs)
}

// RunNamed dispatches one of Names and returns the run directory.
func RunNamed(name string, base *config.Config) (string, error) {
	switch name {
	case "alpha":
		return RunAlphaExperiment(base)
	case "gamma":
		return RunGammaExperiment(base)
	case "epsilon":
		return RunEpsilonExperiment(base)
	default:
		return "", fmt.Errorf("unknown experiment %q, expected one of %v", name, Names)
	}
}

// sweep derives one agent per value from base, every agent on the same seed
// so that only the swept parameter differs.
func sweep(base *config.Config, values []float64, set func(*metrics.AgentConfig, float64)) []metrics.AgentConfig {
	configs := make([]metrics.AgentConfig, 0, len(values))
	for i, v := range values {
		c := metrics.AgentConfig{
			ID:         i + 1,
			Alpha:      base.Learning.Alpha,
			Gamma:      base.Learning.Gamma,
			Epsilon:    base.Learning.Epsilon,
			TrainGames: base.Learning.TrainGames,
			EvalGames:  base.Learning.EvalGames,
			Seed:       base.Seed,
		}
		set(&c, v)
		configs = append(configs, c)
	}
	return configs
}

// Run plays one session per agent config, stores the records under
// base.Output.ExperimentsDir and draws the learning curves next to them.
func Run(name string, base *config.Config, configs []metrics.AgentConfig) (string, error) {
	log.Info().Msgf("starting %s experiment with %d agents...", name, len(configs))

	records := []metrics.GameRecord{}
	summaries := []metrics.SummaryRecord{}
	curves := []Curve{}

	for i, agent := range configs {
		log.Info().Msgf("starting agent %d of %d: %+v", i+1, len(configs), agent)

		cfg := *base
		cfg.Seed = agent.Seed
		cfg.Learning.Alpha = agent.Alpha
		cfg.Learning.Gamma = agent.Gamma
		cfg.Learning.Epsilon = agent.Epsilon
		cfg.Learning.TrainGames = agent.TrainGames
		cfg.Learning.EvalGames = agent.EvalGames
		if err := cfg.Validate(); err != nil {
			return "", fmt.Errorf("invalid agent %d: %w", agent.ID, err)
		}

		report := engine.NewSession(&cfg, engine.WithAgentID(agent.ID)).Run()
		records = append(records, report.Train...)
		records = append(records, report.Eval...)
		summaries = append(summaries, report.Summary())
		curves = append(curves, LearningCurve(label(name, agent), report.Train, base.Output.ChartWindow))

		log.Info().Msgf("completed agent %d of %d with mean contacts %.3f", i+1, len(configs), report.Evaluation.Mean)
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(base.Output.ExperimentsDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(records); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteSummaries(summaries); err != nil {
		return "", fmt.Errorf("failed to write summaries: %w", err)
	}
	log.Info().Msg("stored summaries")

	title := fmt.Sprintf("%s sweep", name)
	if err := RenderHTML(filepath.Join(writer.Dir(), "learning_curves.html"), title, curves); err != nil {
		return "", err
	}
	if err := RenderPNG(filepath.Join(writer.Dir(), "learning_curves.png"), title, curves); err != nil {
		return "", err
	}
	log.Info().Msgf("stored learning curves in %s", writer.Dir())

	return writer.Dir(), nil
}

func label(name string, agent metrics.AgentConfig) string {
	switch name {
	case "alpha":
		return fmt.Sprintf("alpha=%g", agent.Alpha)
	case "gamma":
		return fmt.Sprintf("gamma=%g", agent.Gamma)
	case "epsilon":
		return fmt.Sprintf("epsilon=%g", agent.Epsilon)
	default:
		return fmt.Sprintf("agent %d", agent.ID)
	}
}
