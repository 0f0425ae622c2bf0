package searcher

import (
	"math"

	"gamesearch/game"
)

type alphaBeta[S any, A any, P comparable] struct {
	minimax[S, A, P]
}

// AlphaBetaSearch returns the same action as MinimaxSearch at the same depth
// while skipping subtrees that cannot change it.
func AlphaBetaSearch[S any, A any, P comparable](g game.Game[S, A, P], state S, depth int) (A, bool, Stats) {
	var none A
	if depth <= 0 || g.IsTerminal(state) {
		return none, false, Stats{}
	}

	ab := &alphaBeta[S, A, P]{minimax[S, A, P]{game: g, player: g.ToMove(state)}}
	_, action, ok := ab.maxValue(state, math.Inf(-1), math.Inf(1), depth)
	return action, ok, ab.stats
}

func (ab *alphaBeta[S, A, P]) maxValue(state S, alpha, beta float64, depth int) (float64, A, bool) {
	var best A
	actions, isLeaf := ab.leaf(state, depth)
	if isLeaf {
		return ab.evaluate(state), best, false
	}

	value, found := math.Inf(-1), false
	for _, action := range actions {
		v, _, _ := ab.minValue(ab.game.Result(state, action), alpha, beta, depth-1)
		if !found || v > value {
			value, best, found = v, action, true
			alpha = math.Max(alpha, value)
		}
		if value >= beta {
			return value, best, found
		}
	}
	return value, best, found
}

func (ab *alphaBeta[S, A, P]) minValue(state S, alpha, beta float64, depth int) (float64, A, bool) {
	var best A
	actions, isLeaf := ab.leaf(state, depth)
	if isLeaf {
		return ab.evaluate(state), best, false
	}

	value, found := math.Inf(1), false
	for _, action := range actions {
		v, _, _ := ab.maxValue(ab.game.Result(state, action), alpha, beta, depth-1)
		if !found || v < value {
			value, best, found = v, action, true
			beta = math.Min(beta, value)
		}
		if value <= alpha {
			return value, best, found
		}
	}
	return value, best, found
}
