package searcher

import (
	"hash/fnv"

	"gamesearch/game"
)

// treeState is a node of a mock game tree, named by the actions leading to it.
type treeState struct {
	path string
}

// treeGame is an explicit game tree. Players alternate "max" and "min" and
// values are given from max's point of view.
type treeGame struct {
	children map[string][]string
	values   map[string]float64
}

var _ game.Game[treeState, string, string] = (*treeGame)(nil)

func (g *treeGame) InitialState() treeState {
	return treeState{}
}

func (g *treeGame) ToMove(state treeState) string {
	if len(state.path)%2 == 0 {
		return "max"
	}
	return "min"
}

func (g *treeGame) Actions(state treeState) []string {
	return g.children[state.path]
}

func (g *treeGame) Result(state treeState, action string) treeState {
	return treeState{path: state.path + action}
}

func (g *treeGame) IsTerminal(state treeState) bool {
	return len(g.children[state.path]) == 0
}

func (g *treeGame) Utility(state treeState, player string) float64 {
	if player == "max" {
		return g.values[state.path]
	}
	return -g.values[state.path]
}

// aimaTree is the two-ply example where max picks a with value 3.
func aimaTree() *treeGame {
	return &treeGame{
		children: map[string][]string{
			"":  {"a", "b", "c"},
			"a": {"a", "b", "c"},
			"b": {"a", "b", "c"},
			"c": {"a", "b", "c"},
		},
		values: map[string]float64{
			"aa": 3, "ab": 12, "ac": 8,
			"ba": 2, "bb": 4, "bc": 6,
			"ca": 14, "cb": 5, "cc": 2,
		},
	}
}

// uniformGame branches into the same actions until a fixed depth. Utility
// favors paths with more a's for the side to move.
type uniformGame struct {
	actions []string
	depth   int
}

func (g *uniformGame) InitialState() treeState {
	return treeState{}
}

func (g *uniformGame) ToMove(state treeState) string {
	if len(state.path)%2 == 0 {
		return "max"
	}
	return "min"
}

func (g *uniformGame) Actions(state treeState) []string {
	if len(state.path) >= g.depth {
		return nil
	}
	return g.actions
}

func (g *uniformGame) Result(state treeState, action string) treeState {
	return treeState{path: state.path + action}
}

func (g *uniformGame) IsTerminal(state treeState) bool {
	return len(state.path) >= g.depth
}

func (g *uniformGame) Utility(state treeState, player string) float64 {
	score := 0.0
	for _, c := range state.path {
		if c == 'a' {
			score += 0.05
		}
	}
	if player == "min" {
		return -score
	}
	return score
}

// hashingGame is a uniformGame that can fingerprint its states.
type hashingGame struct {
	uniformGame
}

func (g *hashingGame) Hash(state treeState) game.StateHash {
	h := fnv.New64a()
	h.Write([]byte(state.path))
	return game.StateHash(h.Sum64())
}
