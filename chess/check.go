package chess

import (
	"gamesearch/utils"

	"golang.org/x/exp/slices"
)

// attackerOf returns the first of player's pieces, in roster order, that can
// move onto target.
func attackerOf(board *Board, player *Player, target Position) *Piece {
	for _, roster := range player.Pieces {
		for _, piece := range roster {
			if slices.Contains(destinations(board, piece), target) {
				return piece
			}
		}
	}
	return nil
}

// alignment returns the unit step leading from one square to the other when
// they share a file, rank or diagonal.
func alignment(from, to Position) (direction, bool) {
	dFile, dRank := to.File-from.File, to.Rank-from.Rank
	if dFile == 0 && dRank == 0 {
		return direction{}, false
	}
	if dFile != 0 && dRank != 0 && utils.Abs(dFile) != utils.Abs(dRank) {
		return direction{}, false
	}
	return direction{utils.Sign(dFile), utils.Sign(dRank)}, true
}

// checkedSquares lists where a piece other than the king may land to answer a
// check: the attacker's square, plus every square strictly between a sliding
// attacker and the king.
func checkedSquares(attacker *Piece, king Position) []Position {
	squares := []Position{attacker.Position}
	if !slides(attacker.Type) {
		return squares
	}
	d, ok := alignment(attacker.Position, king)
	if !ok {
		return squares
	}
	for pos := attacker.Position.step(d); pos != king && pos.OnBoard(); pos = pos.step(d) {
		squares = append(squares, pos)
	}
	return squares
}

// onAttackLine reports whether target lies on the ray a sliding attacker
// projects through the king, on either side of the king.
func onAttackLine(attacker *Piece, king, target Position) bool {
	if !slides(attacker.Type) || target == attacker.Position {
		return false
	}
	line, ok := alignment(attacker.Position, king)
	if !ok {
		return false
	}
	d, ok := alignment(attacker.Position, target)
	return ok && d == line
}

// evasions keeps the actions that answer the check on player's king.
func evasions(actions []Action, player *Player) []Action {
	king, attacker := player.King(), player.CheckedBy
	if king == nil || attacker == nil {
		return actions
	}

	blocks := checkedSquares(attacker, king.Position)
	var kept []Action
	for _, action := range actions {
		if action.From == king.Position {
			if !onAttackLine(attacker, king.Position, action.To) {
				kept = append(kept, action)
			}
			continue
		}
		if slices.Contains(blocks, action.To) {
			kept = append(kept, action)
		}
	}
	return kept
}

// updateChecks recomputes both players' check status against the board.
func (s *State) updateChecks() {
	for _, color := range colors {
		player := s.Players[color]
		player.CheckedBy = nil

		king := player.King()
		if king == nil {
			continue
		}
		if attacker := attackerOf(&s.Board, s.Players[color.Opponent()], king.Position); attacker != nil {
			checker := *attacker
			player.CheckedBy = &checker
		}
	}
}
