package searcher

import (
	"testing"
	"time"

	"gamesearch/chess"

	"github.com/stretchr/testify/require"
)

// walk visits every node under root, root included.
func walk[S any, A any](root *node[S, A], visit func(n *node[S, A])) {
	visit(root)
	for _, child := range root.children {
		walk(child, visit)
	}
}

func sumPlays[S any, A any](n *node[S, A]) int {
	total := 0
	for _, child := range n.children {
		total += child.plays
	}
	return total
}

type nodeStats struct {
	plays, wins, children int
}

func subtreeStats[S any, A any](root *node[S, A]) ([]*node[S, A], []nodeStats) {
	var nodes []*node[S, A]
	var stats []nodeStats
	walk(root, func(n *node[S, A]) {
		nodes = append(nodes, n)
		stats = append(stats, nodeStats{n.plays, n.wins, len(n.children)})
	})
	return nodes, stats
}

func TestMCTSTree(t *testing.T) {
	t.Run("re-rooting keeps the subtree statistics", func(t *testing.T) {
		g := chess.NewGame()
		m := NewMCTS[*chess.State, chess.Action, chess.Color](g, WithEpisodes(2000), WithGoroutines(4), WithSeed(2))
		m.findRoot(g.InitialState())
		m.iterate()
		best := m.root.mostPlayed()
		require.NotNil(t, best)
		before, beforeStats := subtreeStats(best)
		total, _ := subtreeStats(m.root)
		require.Greater(t, len(total), len(before), "Siblings should hold nodes of their own")

		m.reroot(best)

		require.Same(t, best, m.root)
		require.Nil(t, m.root.parent, "New root should be detached")
		after, afterStats := subtreeStats(m.root)
		require.Len(t, after, len(before), "Only the chosen subtree should remain reachable")
		for i := range before {
			require.Same(t, before[i], after[i], "Node %d should be the same node", i)
			require.Equal(t, beforeStats[i], afterStats[i], "Node %d statistics should not change", i)
		}
	})

	t.Run("counting plays along every path", func(t *testing.T) {
		g := chess.NewGame()
		m := NewMCTS[*chess.State, chess.Action, chess.Color](g, WithEpisodes(200), WithGoroutines(4), WithSeed(1))

		m.findRoot(g.InitialState())
		m.iterate()

		require.Equal(t, 200, m.root.plays, "Root should see every episode")
		require.Equal(t, 200, sumPlays(m.root), "Every episode should pass through a root child")
		walk(m.root, func(n *node[*chess.State, chess.Action]) {
			require.LessOrEqual(t, n.wins, n.plays, "Wins cannot exceed plays")
			if n != m.root {
				require.Equal(t, sumPlays(n)+1, n.plays, "A node's own simulation plus its children's")
			}
		})
	})

	t.Run("respecting the branching cap under concurrency", func(t *testing.T) {
		g := &uniformGame{actions: []string{"a", "b", "c", "d", "e"}, depth: 6}
		m := NewMCTS[treeState, string, string](g, WithEpisodes(500), WithGoroutines(8), WithBranchingCap(3), WithSeed(2))

		m.findRoot(g.InitialState())
		m.iterate()

		walk(m.root, func(n *node[treeState, string]) {
			require.LessOrEqual(t, len(n.children), 3, "No node should grow past the cap")
			seen := map[string]bool{}
			for _, child := range n.children {
				require.False(t, seen[child.action], "Actions should be expanded once")
				seen[child.action] = true
			}
		})
		require.Equal(t, 500, m.root.plays)
	})

	t.Run("expanding every action of a narrow node", func(t *testing.T) {
		g := &uniformGame{actions: []string{"a", "b"}, depth: 3}
		m := NewMCTS[treeState, string, string](g, WithEpisodes(50), WithSeed(3))

		m.findRoot(g.InitialState())
		m.iterate()

		require.Len(t, m.root.children, 2, "A node with fewer actions than the cap fills up with all of them")
		require.Empty(t, m.root.untried)
	})

	t.Run("backing up losses from terminal leaves", func(t *testing.T) {
		g := &uniformGame{actions: []string{"a"}, depth: 1}
		m := NewMCTS[treeState, string, string](g, WithEpisodes(10), WithSeed(4))

		m.findRoot(g.InitialState())
		m.iterate()

		leaf := m.root.children[0]
		require.Equal(t, 10, m.root.plays)
		require.Equal(t, 10, leaf.plays, "Later episodes should fail to expand the terminal leaf")
		require.LessOrEqual(t, leaf.wins, 1, "Only the expanding episode can win")
	})
}

func TestMCTSSearch(t *testing.T) {
	t.Run("returning no action from a terminal root", func(t *testing.T) {
		g := &uniformGame{actions: []string{"a"}, depth: 0}
		m := NewMCTS[treeState, string, string](g, WithEpisodes(5), WithMetrics())

		_, ok, metric := m.Search(g.InitialState())

		require.False(t, ok)
		require.Equal(t, 5, metric.Episodes)
		require.Equal(t, 5, m.root.plays)
		require.Equal(t, 0, m.root.wins, "Failed expansions count as losses")
	})

	t.Run("picking the most played child and re-rooting there", func(t *testing.T) {
		g := &hashingGame{uniformGame{actions: []string{"a", "b", "c"}, depth: 8}}
		m := NewMCTS[treeState, string, string](g, WithEpisodes(300), WithGoroutines(2), WithSeed(5), WithMetrics())

		move, ok, metric := m.Search(g.InitialState())

		require.True(t, ok)
		require.True(t, metric.IsTreeReset, "First search should build a tree")
		require.Equal(t, 300, metric.Episodes)
		require.Equal(t, move, m.root.action, "New root should be the chosen child")
		require.Equal(t, treeState{path: move}, m.root.state)
		require.Nil(t, m.root.parent, "New root should be detached")
		require.Positive(t, m.root.plays, "Statistics should be retained")
	})

	t.Run("finding the opponent's reply in the retained tree", func(t *testing.T) {
		g := &hashingGame{uniformGame{actions: []string{"a", "b", "c"}, depth: 8}}
		m := NewMCTS[treeState, string, string](g, WithEpisodes(300), WithSeed(6), WithMetrics())
		move, _, _ := m.Search(g.InitialState())
		require.NotEmpty(t, m.root.children)
		reply := m.root.children[0]
		plays := reply.plays

		m.findRoot(treeState{path: move + reply.action})

		require.Same(t, reply, m.root, "Reply node should become the root")
		require.Nil(t, m.root.parent)
		require.Equal(t, plays, m.root.plays, "Reply statistics should be kept")

		_, _, metric := m.Search(treeState{path: move + reply.action})
		require.False(t, metric.IsTreeReset, "Search should reuse the retained tree")
	})

	t.Run("rebuilding for an unknown position", func(t *testing.T) {
		g := &hashingGame{uniformGame{actions: []string{"a", "b", "c"}, depth: 8}}
		m := NewMCTS[treeState, string, string](g, WithEpisodes(30), WithSeed(7), WithMetrics())
		m.Search(g.InitialState())

		_, _, metric := m.Search(treeState{path: "cccc"})

		require.True(t, metric.IsTreeReset)
	})

	t.Run("rebuilding when states cannot be hashed", func(t *testing.T) {
		g := &uniformGame{actions: []string{"a", "b"}, depth: 4}
		m := NewMCTS[treeState, string, string](g, WithEpisodes(30), WithSeed(8), WithMetrics())
		move, _, _ := m.Search(g.InitialState())

		_, _, metric := m.Search(treeState{path: move + "a"})

		require.True(t, metric.IsTreeReset)
	})

	t.Run("repeating a seeded search", func(t *testing.T) {
		g := &uniformGame{actions: []string{"a", "b", "c", "d"}, depth: 6}
		first := NewMCTS[treeState, string, string](g, WithEpisodes(100), WithSeed(9))
		second := NewMCTS[treeState, string, string](g, WithEpisodes(100), WithSeed(9))

		move1, _, _ := first.Search(g.InitialState())
		move2, _, _ := second.Search(g.InitialState())

		require.Equal(t, move1, move2, "One goroutine with the same seed should replay the same search")
	})

	t.Run("searching for a fixed duration", func(t *testing.T) {
		g := &uniformGame{actions: []string{"a", "b", "c"}, depth: 6}
		m := NewMCTS[treeState, string, string](g, WithDuration(20*time.Millisecond), WithGoroutines(2), WithMetrics())

		_, ok, metric := m.Search(g.InitialState())

		require.True(t, ok)
		require.Positive(t, metric.Episodes)
		require.GreaterOrEqual(t, metric.Duration, 20*time.Millisecond)
	})
}
