package experiments

import (
	"fmt"
	"time"

	"gamesearch/chess"
	"gamesearch/engine"
	"gamesearch/experiments/metrics"
	"gamesearch/meta"
	"gamesearch/searcher"
	"gamesearch/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Config holds the run-time knobs shared by every experiment.
type Config struct {
	Games      int           // Per matchup
	Depth      int           // Minimax and alpha-beta depth
	Duration   time.Duration // MCTS budget per move
	// AlternateDuration is the longer MCTS budget of the strategy experiment
	AlternateDuration time.Duration
	Goroutines        int    // Goroutines of parallel MCTS agents
	Opener            string // Opening line, "all" to rotate, empty for none
	MaxTurns          int
	Parallel          int // Games played at once
	Out               string
}

func DefaultConfig() Config {
	return Config{
		Games:             meta.GamesPerMatchup,
		Depth:             meta.DefaultDepth,
		Duration:          meta.DefaultDuration,
		AlternateDuration: meta.AlternateDuration,
		Goroutines:        meta.GoRoutines,
		MaxTurns:          meta.MaxTurns,
		Parallel:          1,
		Out:               "results",
	}
}

// Experiments maps experiment names to their runners.
var Experiments = map[string]func(Config) error{
	"strategy":        RunStrategyExperiment,
	"parallelization": RunParallelizationExperiment,
	"depth":           RunDepthExperiment,
	"throughput":      RunThroughputExperiment,
}

// RunStrategyExperiment pits every search strategy against the others, each
// pairing played with both colors. MCTS plays with both the default and the
// alternate time budget.
func RunStrategyExperiment(c Config) error {
	configs := []metrics.AgentConfig{
		{ID: 1, Strategy: agent.Minimax, Depth: c.Depth},
		{ID: 2, Strategy: agent.AlphaBeta, Depth: c.Depth},
		{ID: 3, Strategy: agent.MCTS, Goroutines: 1, Duration: c.Duration},
		{ID: 4, Strategy: agent.Random},
		{ID: 5, Strategy: agent.MCTS, Goroutines: 1, Duration: c.AlternateDuration},
	}

	matchUps := [][]metrics.AgentConfig{}
	for i := range configs {
		for j := range configs {
			if i != j {
				matchUps = append(matchUps, []metrics.AgentConfig{configs[i], configs[j]})
			}
		}
	}

	return runExperiment("strategy", c, configs, matchUps)
}

// RunParallelizationExperiment pairs parallel MCTS agents against the
// sequential baseline.
func RunParallelizationExperiment(c Config) error {
	baseline := metrics.AgentConfig{ID: 0, Strategy: agent.MCTS, Goroutines: 1, Duration: c.Duration}
	configs := []metrics.AgentConfig{baseline}
	for i, goroutines := range []int{2, 4, c.Goroutines} {
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Strategy: agent.MCTS, Goroutines: goroutines, Duration: c.Duration})
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs[1:] {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config}, []metrics.AgentConfig{config, baseline})
	}

	return runExperiment("parallelization", c, configs, matchUps)
}

// RunDepthExperiment plays deeper alpha-beta agents against a depth one agent.
func RunDepthExperiment(c Config) error {
	baseline := metrics.AgentConfig{ID: 0, Strategy: agent.AlphaBeta, Depth: 1}
	configs := []metrics.AgentConfig{baseline}
	for depth := 2; depth <= max(c.Depth, 2); depth++ {
		configs = append(configs, metrics.AgentConfig{ID: depth - 1, Strategy: agent.AlphaBeta, Depth: depth})
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs[1:] {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config}, []metrics.AgentConfig{config, baseline})
	}

	return runExperiment("depth", c, configs, matchUps)
}

type result struct {
	matchUp     []metrics.AgentConfig
	gameMetric  metrics.GameMetric
	moveMetrics []metrics.MoveMetric
}

func runExperiment(name string, c Config, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) error {
	openers, err := openerSchedule(c.Opener)
	if err != nil {
		return err
	}

	log.Info().Msgf("starting %s experiment...", name)

	results := make([]result, len(matchUps)*c.Games)
	var g errgroup.Group
	g.SetLimit(max(c.Parallel, 1))
	for mi, matchUp := range matchUps {
		for i := 0; i < c.Games; i++ {
			id := mi*c.Games + i
			g.Go(func() error {
				opener := openers[id%len(openers)]
				log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, c.Games)

				winner, gameMetric, moveMetrics, err := runGame(matchUp[0], matchUp[1], opener, c.MaxTurns)
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}
				results[id] = result{matchUp: matchUp, gameMetric: gameMetric, moveMetrics: moveMetrics}

				log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Info().Msgf("completed %s experiment", name)

	return store(name, c.Out, configs, results)
}

func store(name, out string, configs []metrics.AgentConfig, results []result) error {
	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for i, r := range results {
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Agent1:     r.matchUp[0].ID,
			Agent2:     r.matchUp[1].ID,
			GameMetric: r.gameMetric,
		})
		for _, mm := range r.moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i + 1, MoveMetric: mm})
		}
	}

	writer, err := metrics.NewWriter(out, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored %s results in %s", name, writer.Dir())
	return nil
}

func openerSchedule(opener string) ([]string, error) {
	switch opener {
	case "":
		return []string{""}, nil
	case "all":
		return chess.OpenerNames(), nil
	}
	if _, err := chess.Opener(opener); err != nil {
		return nil, err
	}
	return []string{opener}, nil
}

// runGame plays one game, agent1 with white, and returns the winner.
func runGame(config1, config2 metrics.AgentConfig, opener string, maxTurns int) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	e, err := newEngine(config1, config2, opener, maxTurns)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}

// PlayGame plays a single game outside of an experiment and returns the
// final position and the winner.
func PlayGame(white, black metrics.AgentConfig, opener string, maxTurns int) (*chess.State, string, error) {
	e, err := newEngine(white, black, opener, maxTurns)
	if err != nil {
		return nil, "", err
	}
	winner, _, _ := e.Run()
	return e.State, winner, nil
}

func newEngine(white, black metrics.AgentConfig, opener string, maxTurns int) (*engine.Local[*chess.State, chess.Action, chess.Color], error) {
	g := chess.NewGame()
	agents := map[chess.Color]agent.Agent[*chess.State, chess.Action]{
		chess.White: createAgent(g, white),
		chess.Black: createAgent(g, black),
	}
	e := engine.LocalEngine(g, agents, engine.WithMaxTurns(maxTurns))

	if opener != "" {
		line, err := chess.Opener(opener)
		if err != nil {
			return nil, err
		}
		if err := e.Open(opener, line); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func IsStrategy(name string) bool {
	switch name {
	case agent.Minimax, agent.AlphaBeta, agent.MCTS, agent.Random:
		return true
	}
	return false
}

func createAgent(g chess.Game, config metrics.AgentConfig) agent.Agent[*chess.State, chess.Action] {
	switch config.Strategy {
	case agent.Minimax:
		return agent.NewMinimaxAgent[*chess.State, chess.Action, chess.Color](g, config.Depth)
	case agent.AlphaBeta:
		return agent.NewAlphaBetaAgent[*chess.State, chess.Action, chess.Color](g, config.Depth)
	case agent.MCTS:
		return agent.NewMCTSAgent(createMCTS(g, config))
	case agent.Random:
		return agent.NewRandomAgent[*chess.State, chess.Action, chess.Color](g, uint64(time.Now().UnixNano()))
	}
	panic(fmt.Sprintf("unknown strategy %q", config.Strategy))
}

func createMCTS(g chess.Game, config metrics.AgentConfig) *searcher.MCTS[*chess.State, chess.Action, chess.Color] {
	options := []searcher.Option{}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS[*chess.State, chess.Action, chess.Color](g, options...)
}
