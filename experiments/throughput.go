package experiments

import (
	"gamesearch/experiments/metrics"
	"gamesearch/searcher/agent"
)

// RunThroughputExperiment measures MCTS episodes per move as goroutines are
// added. Both sides use the same config for the same playing strength and a
// similar game length.
func RunThroughputExperiment(c Config) error {
	configs := []metrics.AgentConfig{}
	for i, goroutines := range []int{1, 2, 4, 8, 16, 32} {
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Strategy: agent.MCTS, Goroutines: goroutines, Duration: c.Duration})
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	return runExperiment("throughput", c, configs, matchUps)
}
