package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gamesearch/experiments"
	"gamesearch/experiments/metrics"
	"gamesearch/searcher/agent"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(mainWithCode())
}

// mainWithCode returns the exit status once deferred calls, such as stopping
// the profiler, have run.
func mainWithCode() int {
	c := experiments.DefaultConfig()

	experiment := flag.String("experiment", "", "Experiment to run (strategy, parallelization, depth, throughput); empty plays one game")
	white := flag.String("white", agent.AlphaBeta, "Strategy of the white agent for a single game")
	black := flag.String("black", agent.MCTS, "Strategy of the black agent for a single game")
	flag.IntVar(&c.Games, "games", c.Games, "Games per matchup")
	flag.IntVar(&c.Depth, "depth", c.Depth, "Ply depth of minimax and alpha-beta agents")
	flag.DurationVar(&c.Duration, "duration", c.Duration, "MCTS time budget per move")
	flag.DurationVar(&c.AlternateDuration, "alternate-duration", c.AlternateDuration, "Longer MCTS budget of the strategy experiment")
	flag.IntVar(&c.Goroutines, "goroutines", c.Goroutines, "Goroutines of parallel MCTS agents")
	flag.StringVar(&c.Opener, "opener", c.Opener, "Opening line to replay, \"all\" to rotate through every line")
	flag.IntVar(&c.MaxTurns, "turns", c.MaxTurns, "Maximum agent moves per game")
	flag.IntVar(&c.Parallel, "parallel", c.Parallel, "Games played at once")
	flag.StringVar(&c.Out, "out", c.Out, "Directory for experiment results")
	level := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	cpuProfile := flag.Bool("profile", false, "Write a CPU profile to the working directory")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	logLevel, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Error().Err(err).Msg("invalid log level")
		return 2
	}
	zerolog.SetGlobalLevel(logLevel)

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	if err := run(*experiment, *white, *black, c); err != nil {
		log.Error().Err(err).Msg("run failed")
		return 1
	}
	return 0
}

func run(experiment, white, black string, c experiments.Config) error {
	if experiment == "" {
		return playOne(white, black, c)
	}

	runner, ok := experiments.Experiments[experiment]
	if !ok {
		return fmt.Errorf("unknown experiment %q", experiment)
	}
	return runner(c)
}

// playOne plays a single game and prints the final board.
func playOne(white, black string, c experiments.Config) error {
	configs := [2]metrics.AgentConfig{
		{ID: 1, Strategy: white, Depth: c.Depth, Goroutines: c.Goroutines, Duration: c.Duration},
		{ID: 2, Strategy: black, Depth: c.Depth, Goroutines: c.Goroutines, Duration: c.Duration},
	}
	for _, config := range configs {
		if !experiments.IsStrategy(config.Strategy) {
			return fmt.Errorf("unknown strategy %q", config.Strategy)
		}
	}

	state, winner, err := experiments.PlayGame(configs[0], configs[1], c.Opener, c.MaxTurns)
	if err != nil {
		return err
	}
	fmt.Print(state.Board.String())
	if winner == "" {
		winner = "nobody"
	}
	fmt.Printf("%d plies played, winner: %s\n", state.Ply, winner)
	return nil
}
