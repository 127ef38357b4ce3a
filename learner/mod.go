package learner

import (
	"pong/experiments/metrics"
	"pong/game"
)

type Option func(l *Learner)

// Observer sees every step of every game, after the update has been applied.
type Observer func(step int, state game.State, action game.Action, reward game.Reward)

func WithAlpha(alpha float64) Option {
	return func(l *Learner) {
		l.alpha = alpha
	}
}

func WithGamma(gamma float64) Option {
	return func(l *Learner) {
		l.gamma = gamma
	}
}

func WithEpsilon(epsilon float64) Option {
	return func(l *Learner) {
		l.epsilon = epsilon
	}
}

// WithTable starts from an existing (e.g. loaded) value table.
func WithTable(table *Table) Option {
	return func(l *Learner) {
		if table != nil {
			l.table = table
		}
	}
}

// WithMaxSteps ends a game after the given number of steps even without a miss.
func WithMaxSteps(steps int) Option {
	return func(l *Learner) {
		if steps > 0 {
			l.maxSteps = steps
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(l *Learner) {
		l.observer = observer
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(l *Learner) {
		if collector != nil {
			l.metrics = collector
		}
	}
}
