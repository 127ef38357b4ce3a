package engine

import (
	"fmt"
	"time"

	"pong/config"
	"pong/experiments/metrics"
	"pong/game"
	"pong/learner"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Session trains one learner and evaluates it, single threaded.
type Session struct {
	Learner  *learner.Learner
	Court    *game.Court
	agent    int
	train    int
	eval     int
	logEvery int
}

// NewSession wires a seeded random source, a court and a learner from cfg.
func NewSession(cfg *config.Config, options ...Option) *Session {
	s := &settings{}
	for _, option := range options {
		option(s)
	}

	physics := cfg.Physics
	rng := rand.New(rand.NewSource(cfg.Seed))
	court := game.NewCourt(&physics, rng)

	learnerOptions := []learner.Option{
		learner.WithAlpha(cfg.Learning.Alpha),
		learner.WithGamma(cfg.Learning.Gamma),
		learner.WithEpsilon(cfg.Learning.Epsilon),
		learner.WithMaxSteps(cfg.Learning.MaxSteps),
		learner.WithTable(s.table),
		learner.WithMetrics(metrics.NewCollector()),
	}
	if s.render != nil {
		w := s.render
		learnerOptions = append(learnerOptions, learner.WithObserver(
			func(step int, state game.State, action game.Action, reward game.Reward) {
				fmt.Fprintf(w, "step %d: %s -> %s\n%s", step, action, reward, court.Render(state))
			}))
	}

	return &Session{
		Learner:  learner.NewLearner(court, rng, learnerOptions...),
		Court:    court,
		agent:    s.agent,
		train:    cfg.Learning.TrainGames,
		eval:     cfg.Learning.EvalGames,
		logEvery: cfg.Logging.LogEvery,
	}
}

// Run trains for the configured number of games, then evaluates greedily.
func (s *Session) Run() Report {
	start := time.Now()
	report := Report{Agent: s.agent}

	log.Info().Msgf("agent %d: training for %d games", s.agent, s.train)
	chunk := s.logEvery
	if chunk <= 0 {
		chunk = max(s.train, 1)
	}
	for played := 0; played < s.train; {
		n := min(chunk, s.train-played)
		results := s.Learner.Train(n)
		report.Train = append(report.Train, toRecords(s.agent, results, played)...)
		played += n

		log.Info().
			Int("agent", s.agent).
			Int("games", played).
			Float64("mean_contacts", meanContacts(results)).
			Int("states", s.Learner.Table().Len()).
			Msg("training progress")
	}

	evaluated := s.Evaluate()
	report.Eval = evaluated.Eval
	report.Evaluation = evaluated.Evaluation
	report.States = evaluated.States
	report.Duration = time.Since(start)
	return report
}

// Evaluate plays the configured number of greedy games without training first.
func (s *Session) Evaluate() Report {
	start := time.Now()
	log.Info().Msgf("agent %d: evaluating for %d games", s.agent, s.eval)

	evaluation := s.Learner.Evaluate(s.eval)
	report := Report{
		Agent:      s.agent,
		Eval:       toRecords(s.agent, evaluation.Results, 0),
		Evaluation: evaluation,
		States:     s.Learner.Table().Len(),
		Duration:   time.Since(start),
	}

	for _, record := range report.Eval {
		if record.Capped {
			log.Warn().Msgf("agent %d: evaluation game %d hit the step limit after %d steps", s.agent, record.Game, record.Steps)
		}
	}
	log.Info().
		Int("agent", s.agent).
		Float64("mean_contacts", evaluation.Mean).
		Float64("stddev", evaluation.StdDev).
		Int("best", evaluation.Best).
		Int("states", report.States).
		Msg("evaluation complete")
	return report
}

func meanContacts(results []learner.GameResult) float64 {
	if len(results) == 0 {
		return 0
	}
	total := 0
	for _, r := range results {
		total += r.Contacts
	}
	return float64(total) / float64(len(results))
}
