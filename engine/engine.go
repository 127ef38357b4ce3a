package engine

import (
	"io"
	"time"

	"pong/experiments/metrics"
	"pong/learner"
)

type Report struct {
	Agent      int
	Train      []metrics.GameRecord
	Eval       []metrics.GameRecord
	Evaluation learner.Evaluation
	States     int // Value table rows at the end of the session
	Duration   time.Duration
}

// Summary condenses the evaluation for experiment records.
func (r Report) Summary() metrics.SummaryRecord {
	return metrics.SummaryRecord{
		Agent:  r.Agent,
		Mean:   r.Evaluation.Mean,
		StdDev: r.Evaluation.StdDev,
		Best:   r.Evaluation.Best,
		States: r.States,
	}
}

type Option func(s *settings)

type settings struct {
	agent  int
	table  *learner.Table
	render io.Writer
}

// WithAgentID tags the session's records.
func WithAgentID(id int) Option {
	return func(s *settings) {
		s.agent = id
	}
}

// WithTable continues from a trained value table.
func WithTable(table *learner.Table) Option {
	return func(s *settings) {
		s.table = table
	}
}

// WithRender draws the court after every step.
func WithRender(w io.Writer) Option {
	return func(s *settings) {
		s.render = w
	}
}

func toRecords(agent int, results []learner.GameResult, offset int) []metrics.GameRecord {
	records := make([]metrics.GameRecord, len(results))
	for i, result := range results {
		records[i] = metrics.GameRecord{
			Agent:      agent,
			Game:       offset + i + 1,
			GameMetric: result.Metric,
		}
	}
	return records
}
