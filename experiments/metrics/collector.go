package metrics

import (
	"time"
)

type Phase string

const (
	Training   Phase = "train"
	Evaluation Phase = "eval"
)

type AgentConfig struct {
	ID         int
	Alpha      float64
	Gamma      float64
	Epsilon    float64
	TrainGames int
	EvalGames  int
	Seed       uint64
}

type GameMetric struct {
	Phase     Phase
	Contacts  int
	Steps     int
	States    int  // Value table rows indexed once the game ended
	Capped    bool // Stopped by the step limit rather than a miss
	StartTime time.Time
	Duration  time.Duration
}

type Collector interface {
	Start(phase Phase)
	AddStep()
	AddContact()
	Complete(states int, capped bool) GameMetric
}

type collector struct {
	phase     Phase
	startTime time.Time
	steps     int
	contacts  int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(phase Phase) {
	m.phase = phase
	m.startTime = time.Now()
	m.steps = 0
	m.contacts = 0
}

func (m *collector) AddStep() {
	m.steps++
}

func (m *collector) AddContact() {
	m.contacts++
}

func (m *collector) Complete(states int, capped bool) GameMetric {
	return GameMetric{
		Phase:     m.phase,
		Contacts:  m.contacts,
		Steps:     m.steps,
		States:    states,
		Capped:    capped,
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(phase Phase)                           {}
func (m *dummyCollector) AddStep()                                    {}
func (m *dummyCollector) AddContact()                                 {}
func (m *dummyCollector) Complete(states int, capped bool) GameMetric { return GameMetric{} }
