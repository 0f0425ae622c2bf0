package chess

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

const (
	KingValue   = 200
	QueenValue  = 9
	RookValue   = 5
	KnightValue = 3
	BishopValue = 3
	PawnValue   = 1

	// TermScale weighs the positional terms against material
	TermScale = 0.1
	// RepetitionPenalty is charged once per pair of identical history snapshots
	RepetitionPenalty = 500
)

var pieceValues = [numPieceTypes]float64{
	King:   KingValue,
	Queen:  QueenValue,
	Rook:   RookValue,
	Knight: KnightValue,
	Bishop: BishopValue,
	Pawn:   PawnValue,
}

// PositionWeights favors the centre of the board. It is symmetric, so the
// [file][rank] and [rank][file] readings agree.
var PositionWeights = [BoardSize][BoardSize]float64{
	{1, 1, 1, 1, 1, 1, 1, 1},
	{1, 2, 2, 2, 2, 2, 2, 1},
	{1, 2, 3, 3, 3, 3, 2, 1},
	{1, 2, 3, 4, 4, 3, 2, 1},
	{1, 2, 3, 4, 4, 3, 2, 1},
	{1, 2, 3, 3, 3, 3, 2, 1},
	{1, 2, 2, 2, 2, 2, 2, 1},
	{1, 1, 1, 1, 1, 1, 1, 1},
}

func weight(pos Position) float64 {
	return PositionWeights[pos.File][pos.Rank]
}

// term scores one aspect of the position for a single color.
type term func(s *State, color Color) float64

// Evaluate scores state from player's perspective. The four terms read the
// same state concurrently and are differenced per player before being summed.
func Evaluate(state *State, player Color) (float64, error) {
	if err := state.verifyRosters(); err != nil {
		return 0, err
	}

	terms := [...]term{material, attackedValue, defendedValue, mobility}
	scores := make([]float64, len(terms))

	var g errgroup.Group
	for i, t := range terms {
		g.Go(func() error {
			scores[i] = t(state, player) - t(state, player.Opponent())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0.0
	for _, score := range scores {
		total += score
	}
	return total - RepetitionPenalty*float64(state.repetitions()), nil
}

// Material is the player's material minus the opponent's.
func Material(state *State, player Color) float64 {
	return material(state, player) - material(state, player.Opponent())
}

func material(s *State, color Color) float64 {
	total := 0.0
	for t, roster := range s.Players[color].Pieces {
		total += pieceValues[t] * float64(len(roster))
	}
	return total
}

// attackedValue sums the weighted value of every enemy piece color can capture.
func attackedValue(s *State, color Color) float64 {
	var seen [BoardSize][BoardSize]bool
	total := 0.0
	for _, piece := range s.Players[color].All() {
		for _, pos := range destinations(&s.Board, piece) {
			target := s.Board.At(pos)
			if target == nil || seen[pos.File][pos.Rank] {
				continue
			}
			seen[pos.File][pos.Rank] = true
			total += target.Value() * weight(pos)
		}
	}
	return TermScale * total
}

// defendedValue sums the weighted value of every friendly piece color guards.
func defendedValue(s *State, color Color) float64 {
	var seen [BoardSize][BoardSize]bool
	total := 0.0
	for _, piece := range s.Players[color].All() {
		for _, pos := range covered(&s.Board, piece) {
			if seen[pos.File][pos.Rank] {
				continue
			}
			seen[pos.File][pos.Rank] = true
			total += s.Board.At(pos).Value() * weight(pos)
		}
	}
	return TermScale * total
}

func mobility(s *State, color Color) float64 {
	actions := pseudoActions(&s.Board, s.Players[color])
	total := float64(len(actions))
	for _, action := range actions {
		total += weight(action.To)
	}
	return TermScale * total
}

// verifyRosters checks that every roster piece sits on its board cell and
// that the board holds nothing the rosters do not know about.
func (s *State) verifyRosters() error {
	onBoard := 0
	for file := range s.Board {
		for _, piece := range s.Board[file] {
			if piece != nil {
				onBoard++
			}
		}
	}

	listed := 0
	for _, player := range s.Players {
		for _, piece := range player.All() {
			listed++
			if s.Board.At(piece.Position) != piece {
				return fmt.Errorf("%w: %s %s missing from %s", ErrRosterDesync, player.Color, piece.Type, piece.Position)
			}
			if _, ok := player.At(piece.Position); !ok {
				return fmt.Errorf("%w: %s has no lookup entry for %s", ErrRosterDesync, player.Color, piece.Position)
			}
		}
	}
	if listed != onBoard {
		return fmt.Errorf("%w: %d pieces on the board, %d in rosters", ErrRosterDesync, onBoard, listed)
	}
	return nil
}
