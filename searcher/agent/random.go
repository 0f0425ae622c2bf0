package agent

import (
	"gamesearch/experiments/metrics"
	"gamesearch/game"

	"golang.org/x/exp/rand"
)

type randomAgent[S any, A any, P comparable] struct {
	game game.Game[S, A, P]
	rng  *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays uniformly random moves.
func NewRandomAgent[S any, A any, P comparable](g game.Game[S, A, P], seed uint64) Agent[S, A] {
	return &randomAgent[S, A, P]{game: g, rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent[S, A, P]) FindMove(state S) (A, bool, metrics.SearchMetric) {
	metric := metrics.SearchMetric{Strategy: Random, Goroutines: 1}
	actions := a.game.Actions(state)
	if len(actions) == 0 {
		var none A
		return none, false, metric
	}
	return actions[a.rng.Intn(len(actions))], true, metric
}
