package chess

import "fmt"

const BoardSize = 8

type Color uint8

const (
	White Color = iota
	Black
)

var colors = [...]Color{White, Black}

func (c Color) Opponent() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// forward is the rank step of a pawn of this color
func (c Color) forward() int {
	if c == White {
		return -1
	}
	return 1
}

func (c Color) promotionRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

type PieceType uint8

const (
	King PieceType = iota
	Queen
	Rook
	Knight
	Bishop
	Pawn
	numPieceTypes
)

var pieceSymbols = [numPieceTypes]byte{'k', 'q', 'r', 'n', 'b', 'p'}

func (t PieceType) String() string {
	switch t {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Pawn:
		return "pawn"
	}
	return fmt.Sprintf("PieceType(%d)", uint8(t))
}

// Position is a square given as (file, rank), both in [0, BoardSize).
// Rank 0 is Black's back rank.
type Position struct {
	File int
	Rank int
}

func (p Position) OnBoard() bool {
	return p.File >= 0 && p.File < BoardSize && p.Rank >= 0 && p.Rank < BoardSize
}

func (p Position) step(d direction) Position {
	return Position{File: p.File + d.dFile, Rank: p.Rank + d.dRank}
}

type direction struct {
	dFile int
	dRank int
}

// Piece is owned by exactly one board cell and one roster slot of its player.
type Piece struct {
	Type     PieceType
	Position Position
	Color    Color
	// CanMoveSpecial marks a piece that has not moved yet (pawn double step,
	// rook and king castling privilege)
	CanMoveSpecial bool
}

func (p *Piece) Value() float64 {
	return pieceValues[p.Type]
}

func (p *Piece) symbol() byte {
	s := pieceSymbols[p.Type]
	if p.Color == White {
		return s - 'a' + 'A'
	}
	return s
}

// Action moves whatever occupies From to To. The moving piece is looked up
// when the action is applied.
type Action struct {
	From Position
	To   Position
}
