package agent

import "gamesearch/experiments/metrics"

const (
	Minimax   = "minimax"
	AlphaBeta = "alphabeta"
	MCTS      = "mcts"
	Random    = "random"
)

type Agent[S any, A any] interface {
	// FindMove returns the move to play, false when there is none, and the
	// metrics collected while searching
	FindMove(state S) (A, bool, metrics.SearchMetric)
}
