package agent

import (
	"gamesearch/experiments/metrics"
	"gamesearch/searcher"
)

type mctsAgent[S any, A any, P comparable] struct {
	mcts *searcher.MCTS[S, A, P]
}

// NewMCTSAgent returns an agent that keeps its search tree between moves.
func NewMCTSAgent[S any, A any, P comparable](mcts *searcher.MCTS[S, A, P]) Agent[S, A] {
	return mctsAgent[S, A, P]{mcts: mcts}
}

func (a mctsAgent[S, A, P]) FindMove(state S) (A, bool, metrics.SearchMetric) {
	return a.mcts.Search(state)
}
