package searcher

import (
	"sync"

	"gamesearch/game"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// node is a search tree node. Its counters and children are guarded by its
// own lock; locks are taken parent before child.
type node[S any, A any] struct {
	sync.RWMutex
	state    S
	action   A // Action leading here from the parent
	hash     game.StateHash
	parent   *node[S, A]
	children []*node[S, A]
	untried  []A
	limit    int // Children a fully expanded node holds
	plays    int
	wins     int
}

// newNode caches the actions still to be expanded. Expansion draws them
// without replacement, so a node with fewer actions than branchingCap is
// fully expanded once each action has a child.
func newNode[S any, A any](parent *node[S, A], state S, action A, actions []A, branchingCap int) *node[S, A] {
	return &node[S, A]{
		state:   state,
		action:  action,
		parent:  parent,
		untried: slices.Clone(actions),
		limit:   min(branchingCap, len(actions)),
	}
}

// expanded reports whether selection should pass through the node.
// Caller holds the lock.
func (n *node[S, A]) expanded() bool {
	return len(n.children) > 0 && len(n.children) >= n.limit
}

// takeUntried removes a uniformly random untried action. Caller holds the lock.
func (n *node[S, A]) takeUntried(rng *rand.Rand) (A, bool) {
	var none A
	if len(n.untried) == 0 {
		return none, false
	}
	i := rng.Intn(len(n.untried))
	action := n.untried[i]
	last := len(n.untried) - 1
	n.untried[i] = n.untried[last]
	n.untried = n.untried[:last]
	return action, true
}

// mostPlayed returns the child with the most plays, the earliest child on a
// tie, or nil without children. Caller holds the lock.
func (n *node[S, A]) mostPlayed() *node[S, A] {
	var best *node[S, A]
	bestPlays := -1
	for _, child := range n.children {
		if plays := child.Plays(); plays > bestPlays {
			best, bestPlays = child, plays
		}
	}
	return best
}

// update records one simulation outcome and returns the parent.
func (n *node[S, A]) update(win bool) *node[S, A] {
	n.Lock()
	defer n.Unlock()

	n.plays++
	if win {
		n.wins++
	}
	return n.parent
}

func (n *node[S, A]) Plays() int {
	n.RLock()
	defer n.RUnlock()

	return n.plays
}

func (n *node[S, A]) Wins() int {
	n.RLock()
	defer n.RUnlock()

	return n.wins
}
