package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy    string
	Goroutines  int
	Duration    time.Duration
	Episodes    int
	Nodes       int
	Evaluations int
	IsTreeReset bool
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	Opener     string
	Winner     string // Color name, empty for a draw or an unfinished game
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// AgentConfig describes one side of a matchup.
type AgentConfig struct {
	ID         int
	Strategy   string // minimax, alphabeta, mcts or random
	Depth      int
	Goroutines int
	Duration   time.Duration
	Episodes   int
}

type Collector interface {
	Start(strategy string, goroutines int)
	SetTreeReset(value bool)
	AddEpisode()
	AddNodes(n int)
	AddEvaluations(n int)
	Complete() SearchMetric
}

type collector struct {
	strategy    string
	goroutines  int
	startTime   time.Time
	episodes    atomic.Int64
	nodes       atomic.Int64
	evaluations atomic.Int64
	isTreeReset atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) SetTreeReset(value bool) {
	m.isTreeReset.Store(value)
}

// Start begins a new search, clearing the counters of the previous one.
func (m *collector) Start(strategy string, goroutines int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.goroutines = goroutines
	m.episodes.Store(0)
	m.nodes.Store(0)
	m.evaluations.Store(0)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddNodes(n int) {
	m.nodes.Add(int64(n))
}

func (m *collector) AddEvaluations(n int) {
	m.evaluations.Add(int64(n))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:    m.strategy,
		Goroutines:  m.goroutines,
		Duration:    time.Since(m.startTime),
		Episodes:    int(m.episodes.Load()),
		Nodes:       int(m.nodes.Load()),
		Evaluations: int(m.evaluations.Load()),
		IsTreeReset: m.isTreeReset.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, goroutines int) {}
func (m *dummyCollector) SetTreeReset(value bool)               {}
func (m *dummyCollector) AddEpisode()                           {}
func (m *dummyCollector) AddNodes(n int)                        {}
func (m *dummyCollector) AddEvaluations(n int)                  {}
func (m *dummyCollector) Complete() SearchMetric                { return SearchMetric{} }
