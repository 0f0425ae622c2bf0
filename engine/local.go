package engine

import (
	"fmt"
	"time"

	"gamesearch/experiments/metrics"
	"gamesearch/game"
	"gamesearch/meta"
	"gamesearch/searcher/agent"
	"gamesearch/utils"

	"github.com/rs/zerolog/log"
)

type settings struct {
	maxTurns int
}

type Option func(s *settings)

func WithMaxTurns(turns int) Option {
	return func(s *settings) {
		if turns > 0 {
			s.maxTurns = turns
		}
	}
}

var _ Engine = (*Local[int, int, int])(nil)

// Local drives a game between agents in this process, one agent per player.
type Local[S any, A comparable, P comparable] struct {
	settings
	game   game.Game[S, A, P]
	State  S
	agents map[P]agent.Agent[S, A]
	opener string
	moves  int
}

func LocalEngine[S any, A comparable, P comparable](g game.Game[S, A, P], agents map[P]agent.Agent[S, A], options ...Option) *Local[S, A, P] {
	if len(agents) < 2 {
		panic("need at least two agents")
	}

	s := settings{maxTurns: meta.MaxTurns}
	for _, option := range options {
		option(&s)
	}

	return &Local[S, A, P]{
		settings: s,
		game:     g,
		State:    g.InitialState(),
		agents:   agents,
	}
}

// Play applies move to the current state if it is legal.
func (e *Local[S, A, P]) Play(move A) error {
	if e.game.IsTerminal(e.State) {
		return fmt.Errorf("%w %v: game is over", ErrIllegalMove, move)
	}
	if utils.FindIndex(e.game.Actions(e.State), move) < 0 {
		return fmt.Errorf("%w %v for %v", ErrIllegalMove, move, e.game.ToMove(e.State))
	}
	e.State = e.game.Result(e.State, move)
	e.moves++
	return nil
}

// Open replays a named opening line before the agents take over.
func (e *Local[S, A, P]) Open(name string, line []A) error {
	for i, move := range line {
		if err := e.Play(move); err != nil {
			return fmt.Errorf("failed to replay move %d of %s: %w", i+1, name, err)
		}
	}
	e.opener = name
	log.Debug().Msgf("replayed %d moves of %s", len(line), name)
	return nil
}

func (e *Local[S, A, P]) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		Opener:    e.opener,
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%v is starting", e.game.ToMove(e.State))

	for turn := 1; turn <= e.maxTurns && !e.game.IsTerminal(e.State); turn++ {
		player := e.game.ToMove(e.State)
		current, ok := e.agents[player]
		if !ok {
			panic(fmt.Sprintf("no agent plays %v", player))
		}

		move, found, searchMetric := current.FindMove(e.State)
		if !found || e.Play(move) != nil {
			fallback := e.game.Actions(e.State)
			if len(fallback) == 0 {
				break
			}
			log.Warn().Msgf("%v returned an unplayable move %v, playing %v instead", player, move, fallback[0])
			move = fallback[0]
			if err := e.Play(move); err != nil {
				panic(err)
			}
		}
		log.Debug().Msgf("turn %d: %v played %v", turn, player, move)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       fmt.Sprint(player),
			Move:         fmt.Sprint(move),
			SearchMetric: searchMetric,
		})
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.moves
	gameMetric.Winner = e.Winner()

	if gameMetric.Winner != "" {
		log.Info().Msgf("game over after %d moves, %s won", e.moves, gameMetric.Winner)
	} else {
		log.Info().Msgf("game stopped after %d moves without a winner", e.moves)
	}
	return gameMetric.Winner, gameMetric, moveMetrics
}

// Winner asks the game to judge the current state, if it can.
func (e *Local[S, A, P]) Winner() string {
	if judge, ok := e.game.(game.Judge[S]); ok {
		return judge.Winner(e.State)
	}
	return ""
}
