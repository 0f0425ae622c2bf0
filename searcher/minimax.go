package searcher

import (
	"math"

	"gamesearch/game"
)

type minimax[S any, A any, P comparable] struct {
	game   game.Game[S, A, P]
	player P // Side to move at the root; leaves are scored for it
	stats  Stats
}

// MinimaxSearch looks depth plies ahead and returns the action with the best
// guaranteed utility for the side to move. Among equal actions the first in
// the game's order wins. No action is returned for a terminal state or a
// non-positive depth.
func MinimaxSearch[S any, A any, P comparable](g game.Game[S, A, P], state S, depth int) (A, bool, Stats) {
	var none A
	if depth <= 0 || g.IsTerminal(state) {
		return none, false, Stats{}
	}

	m := &minimax[S, A, P]{game: g, player: g.ToMove(state)}
	_, action, ok := m.maxValue(state, depth)
	return action, ok, m.stats
}

func (m *minimax[S, A, P]) leaf(state S, depth int) ([]A, bool) {
	m.stats.Nodes++
	if depth == 0 || m.game.IsTerminal(state) {
		return nil, true
	}
	actions := m.game.Actions(state)
	return actions, len(actions) == 0
}

func (m *minimax[S, A, P]) evaluate(state S) float64 {
	m.stats.Evaluations++
	return m.game.Utility(state, m.player)
}

func (m *minimax[S, A, P]) maxValue(state S, depth int) (float64, A, bool) {
	var best A
	actions, isLeaf := m.leaf(state, depth)
	if isLeaf {
		return m.evaluate(state), best, false
	}

	value, found := math.Inf(-1), false
	for _, action := range actions {
		v, _, _ := m.minValue(m.game.Result(state, action), depth-1)
		if !found || v > value {
			value, best, found = v, action, true
		}
	}
	return value, best, found
}

func (m *minimax[S, A, P]) minValue(state S, depth int) (float64, A, bool) {
	var best A
	actions, isLeaf := m.leaf(state, depth)
	if isLeaf {
		return m.evaluate(state), best, false
	}

	value, found := math.Inf(1), false
	for _, action := range actions {
		v, _, _ := m.maxValue(m.game.Result(state, action), depth-1)
		if !found || v < value {
			value, best, found = v, action, true
		}
	}
	return value, best, found
}
