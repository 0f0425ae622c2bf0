package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestUtility(t *testing.T) {
	g := NewGame()

	t.Run("initial position is balanced", func(t *testing.T) {
		state := g.InitialState()

		require.Equal(t, 0.0, g.Utility(state, White))
		require.Equal(t, 0.0, g.Utility(state, Black))
	})

	t.Run("winning material", func(t *testing.T) {
		state := play(t, g.InitialState(), "e2e4", "d7d5", "e4d5")

		require.Equal(t, 1.0, Material(state, White), "White should be a pawn up")
		require.Equal(t, -1.0, Material(state, Black), "Black should be a pawn down")
	})

	t.Run("losing the king outweighs everything", func(t *testing.T) {
		state := mustSetup(t, White,
			Piece{Type: Queen, Position: pos("d1"), Color: White},
			Piece{Type: Queen, Position: pos("e1"), Color: White},
			Piece{Type: King, Position: pos("e8"), Color: Black},
		)

		require.Less(t, g.Utility(state, White), 0.0)
	})

	t.Run("repetitions are penalized once", func(t *testing.T) {
		shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
		state := play(t, g.InitialState(), append(shuffle, shuffle...)...)

		require.Equal(t, 2, state.repetitions(), "Each position should have been recorded twice")
		require.Equal(t, -2.0*RepetitionPenalty, g.Utility(state, White))
		require.Equal(t, -2.0*RepetitionPenalty, g.Utility(state, Black))
	})

	t.Run("broken rosters panic", func(t *testing.T) {
		state := g.InitialState()
		state.Board.set(pos("e4"), &Piece{Type: Queen, Position: pos("e4"), Color: White})

		_, err := Evaluate(state, White)
		require.ErrorIs(t, err, ErrRosterDesync)
		require.Panics(t, func() { g.Utility(state, White) })
	})
}

func TestMaterialIsAntisymmetric(t *testing.T) {
	g := NewGame()
	rng := rand.New(rand.NewSource(11))

	for game := 0; game < 20; game++ {
		state := g.InitialState()
		for ply := 0; ply < 60 && !g.IsTerminal(state); ply++ {
			actions := g.Actions(state)
			state = g.Result(state, actions[rng.Intn(len(actions))])
			require.Equal(t, Material(state, White), -Material(state, Black))
		}
	}
}

func TestTerms(t *testing.T) {
	t.Run("attacked pieces", func(t *testing.T) {
		state := mustSetup(t, White,
			Piece{Type: Rook, Position: pos("a1"), Color: White},
			Piece{Type: Queen, Position: pos("a8"), Color: Black},
		)

		require.InDelta(t, 0.9, attackedValue(state, White), 1e-9, "Queen on a corner square")
		require.InDelta(t, 0.5, attackedValue(state, Black), 1e-9, "Rook on a corner square")
	})

	t.Run("defended pieces", func(t *testing.T) {
		state := mustSetup(t, White,
			Piece{Type: Rook, Position: pos("a1"), Color: White},
			Piece{Type: Knight, Position: pos("a2"), Color: White},
		)

		require.InDelta(t, 0.3, defendedValue(state, White), 1e-9, "Rook should guard the knight")
		require.InDelta(t, 0.0, defendedValue(state, Black), 1e-9)
	})

	t.Run("mobility", func(t *testing.T) {
		state := mustSetup(t, White,
			Piece{Type: King, Position: pos("a1"), Color: White},
		)

		require.InDelta(t, 0.7, mobility(state, White), 1e-9, "Three moves onto squares weighing 1, 2 and 1")
	})
}
