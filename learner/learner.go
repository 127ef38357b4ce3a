package learner

import (
	"fmt"

	"pong/experiments/metrics"
	"pong/game"
	"pong/meta"
	"pong/utils"

	"gonum.org/v1/gonum/stat"
)

// Learner plays games on a court and improves its value table after every
// step with a one-step lookahead update.
type Learner struct {
	court    *game.Court
	rng      game.Rand
	table    *Table
	alpha    float64
	gamma    float64
	epsilon  float64
	maxSteps int
	phase    metrics.Phase
	observer Observer
	metrics  metrics.Collector
}

type GameResult struct {
	Contacts int
	Steps    int
	Capped   bool
	Metric   metrics.GameMetric
}

type Evaluation struct {
	Games   int
	Mean    float64 // Mean contacts per game
	StdDev  float64
	Best    int
	Results []GameResult
}

type successor struct {
	state  game.State
	action game.Action
	value  float64
}

func NewLearner(court *game.Court, rng game.Rand, options ...Option) *Learner {
	if court == nil || rng == nil {
		panic("learner needs a court and a random source")
	}
	l := &Learner{ // Default values
		court:   court,
		rng:     rng,
		table:   NewTable(meta.TableCapacity),
		phase:   metrics.Training,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(l)
	}
	for name, v := range map[string]float64{"alpha": l.alpha, "gamma": l.gamma, "epsilon": l.epsilon} {
		if v < 0 || v > 1 {
			panic(fmt.Sprintf("%s %v outside [0, 1]", name, v))
		}
	}
	return l
}

func (l *Learner) Table() *Table {
	return l.table
}

func (l *Learner) Epsilon() float64 {
	return l.epsilon
}

func (l *Learner) SetEpsilon(epsilon float64) {
	l.epsilon = utils.Clamp(epsilon, 0, 1)
}

// SelectAction explores with probability epsilon and otherwise picks the
// action whose successor has the highest value.
func (l *Learner) SelectAction(s game.State) game.Action {
	if l.epsilon > 0 && l.rng.Float64() < l.epsilon {
		return game.Actions[l.rng.Intn(game.NumActions)]
	}
	return l.lookahead(s).action
}

// Value returns the table entry for (s, a). States where the ball already
// passed the paddle are worth MissPenalty regardless of the table.
func (l *Learner) Value(s game.State, a game.Action) float64 {
	if l.court.Missed(s) {
		return meta.MissPenalty
	}
	return l.table.Get(l.index(s), a)
}

// Update folds the reward observed after taking action into the value of
// the resulting state s.
func (l *Learner) Update(reward game.Reward, action game.Action, s game.State) {
	q := l.Value(s, action)
	best := l.lookahead(s)
	next := l.table.Get(l.index(best.state), best.action)
	updated := q + l.alpha*(float64(reward)+l.gamma*next-q)
	l.table.Set(l.index(s), action, updated)
}

// lookahead tries every action on a copy of s. A single strict maximum wins,
// otherwise one of the tied actions is drawn uniformly.
func (l *Learner) lookahead(s game.State) successor {
	var candidates [game.NumActions]successor
	values := make([]float64, game.NumActions)
	for i, a := range game.Actions {
		next, _ := l.court.Next(s, a)
		candidates[i] = successor{state: next, action: a, value: l.Value(next, a)}
		values[i] = candidates[i].value
	}

	tied := utils.MaxIndices(values)
	if len(tied) == 1 {
		return candidates[tied[0]]
	}
	return candidates[tied[l.rng.Intn(len(tied))]]
}

func (l *Learner) index(s game.State) int {
	return l.table.Index(l.court.Discretize(s))
}

// PlayGame plays from the serve until the ball is missed, learning after
// every step.
func (l *Learner) PlayGame() GameResult {
	l.metrics.Start(l.phase)
	state := l.court.Serve()
	result := GameResult{}
	for {
		action := l.SelectAction(state)
		reward := l.court.Step(&state, action)
		result.Steps++
		l.metrics.AddStep()
		if reward == game.Contact {
			result.Contacts++
			l.metrics.AddContact()
		}
		l.Update(reward, action, state)
		if l.observer != nil {
			l.observer(result.Steps, state, action, reward)
		}

		if reward.Terminal() {
			break
		}
		if l.maxSteps > 0 && result.Steps >= l.maxSteps {
			result.Capped = true
			break
		}
	}
	result.Metric = l.metrics.Complete(l.table.Len(), result.Capped)
	return result
}

// Train plays games with the configured exploration.
func (l *Learner) Train(games int) []GameResult {
	l.phase = metrics.Training
	results := make([]GameResult, 0, max(games, 0))
	for i := 0; i < games; i++ {
		results = append(results, l.PlayGame())
	}
	return results
}

// Evaluate turns exploration off for good and averages contacts over games.
func (l *Learner) Evaluate(games int) Evaluation {
	l.SetEpsilon(0)
	l.phase = metrics.Evaluation
	evaluation := Evaluation{Games: max(games, 0)}
	if games <= 0 {
		return evaluation
	}

	contacts := make([]float64, 0, games)
	for i := 0; i < games; i++ {
		result := l.PlayGame()
		evaluation.Results = append(evaluation.Results, result)
		contacts = append(contacts, float64(result.Contacts))
		if result.Contacts > evaluation.Best {
			evaluation.Best = result.Contacts
		}
	}

	if games == 1 {
		evaluation.Mean = contacts[0]
		return evaluation
	}
	evaluation.Mean, evaluation.StdDev = stat.MeanStdDev(contacts, nil)
	return evaluation
}
