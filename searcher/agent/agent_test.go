package agent

import (
	"testing"

	"gamesearch/chess"
	"gamesearch/searcher"

	"github.com/stretchr/testify/require"
)

func TestDepthAgents(t *testing.T) {
	g := chess.NewGame()
	state := g.InitialState()

	t.Run("reporting search statistics", func(t *testing.T) {
		a := NewAlphaBetaAgent[*chess.State, chess.Action, chess.Color](g, 1)

		move, ok, metric := a.FindMove(state)

		require.True(t, ok)
		require.Contains(t, g.Actions(state), move)
		require.Equal(t, AlphaBeta, metric.Strategy)
		require.Equal(t, 20, metric.Evaluations, "Every opening move should be scored at depth one")
		require.Equal(t, 21, metric.Nodes)
	})

	t.Run("matching the underlying search", func(t *testing.T) {
		a := NewMinimaxAgent[*chess.State, chess.Action, chess.Color](g, 1)

		move, _, metric := a.FindMove(state)
		want, _, stats := searcher.MinimaxSearch[*chess.State, chess.Action, chess.Color](g, state, 1)

		require.Equal(t, want, move)
		require.Equal(t, stats.Evaluations, metric.Evaluations)
		require.Equal(t, Minimax, metric.Strategy)
	})
}

func TestMCTSAgent(t *testing.T) {
	g := chess.NewGame()
	m := searcher.NewMCTS[*chess.State, chess.Action, chess.Color](g, searcher.WithEpisodes(50), searcher.WithSeed(1), searcher.WithMetrics())
	a := NewMCTSAgent(m)

	move, ok, metric := a.FindMove(g.InitialState())

	require.True(t, ok)
	require.Contains(t, g.Actions(g.InitialState()), move)
	require.Equal(t, MCTS, metric.Strategy)
	require.Equal(t, 50, metric.Episodes)
}

func TestRandomAgent(t *testing.T) {
	g := chess.NewGame()

	t.Run("playing legal moves", func(t *testing.T) {
		a := NewRandomAgent[*chess.State, chess.Action, chess.Color](g, 1)
		state := g.InitialState()

		for i := 0; i < 10; i++ {
			move, ok, _ := a.FindMove(state)
			require.True(t, ok)
			require.Contains(t, g.Actions(state), move)
			state = g.Result(state, move)
		}
	})

	t.Run("passing without moves", func(t *testing.T) {
		state, err := chess.Setup(chess.White, chess.Piece{Type: chess.King, Position: chess.Position{File: 4, Rank: 0}, Color: chess.Black})
		require.NoError(t, err)
		a := NewRandomAgent[*chess.State, chess.Action, chess.Color](g, 1)

		_, ok, metric := a.FindMove(state)

		require.False(t, ok)
		require.Equal(t, Random, metric.Strategy)
	})
}
