package chess

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Slot locates a piece in its player's typed rosters.
type Slot struct {
	Type  PieceType
	Index int
}

type Player struct {
	Color  Color
	Pieces [numPieceTypes][]*Piece // King roster holds at most one piece
	lookup map[Position]Slot
	// CheckedBy is a copy of the piece attacking this player's king, nil if not in check
	CheckedBy *Piece
	LastMove  *Action
}

func newPlayer(color Color) *Player {
	p := &Player{
		Color:  color,
		lookup: make(map[Position]Slot),
	}

	back, pawns := BoardSize-1, BoardSize-2
	if color == Black {
		back, pawns = 0, 1
	}

	p.add(&Piece{Type: King, Position: Position{4, back}, Color: color, CanMoveSpecial: true})
	p.add(&Piece{Type: Queen, Position: Position{3, back}, Color: color})
	p.add(&Piece{Type: Rook, Position: Position{0, back}, Color: color, CanMoveSpecial: true})
	p.add(&Piece{Type: Rook, Position: Position{7, back}, Color: color, CanMoveSpecial: true})
	p.add(&Piece{Type: Knight, Position: Position{1, back}, Color: color})
	p.add(&Piece{Type: Knight, Position: Position{6, back}, Color: color})
	p.add(&Piece{Type: Bishop, Position: Position{2, back}, Color: color})
	p.add(&Piece{Type: Bishop, Position: Position{5, back}, Color: color})
	for file := 0; file < BoardSize; file++ {
		p.add(&Piece{Type: Pawn, Position: Position{file, pawns}, Color: color, CanMoveSpecial: true})
	}
	return p
}

// King returns the player's king, nil once it has been captured.
func (p *Player) King() *Piece {
	if len(p.Pieces[King]) == 0 {
		return nil
	}
	return p.Pieces[King][0]
}

func (p *Player) Count(t PieceType) int {
	return len(p.Pieces[t])
}

// At returns the player's piece on pos.
func (p *Player) At(pos Position) (*Piece, bool) {
	slot, ok := p.lookup[pos]
	if !ok {
		return nil, false
	}
	return p.piece(slot), true
}

// All returns the player's pieces in roster order: king, queens, rooks,
// knights, bishops, pawns.
func (p *Player) All() []*Piece {
	var all []*Piece
	for _, roster := range p.Pieces {
		all = append(all, roster...)
	}
	return all
}

func (p *Player) piece(slot Slot) *Piece {
	roster := p.Pieces[slot.Type]
	if slot.Index < 0 || slot.Index >= len(roster) {
		panic(fmt.Sprintf("%s roster has no %s at index %d", p.Color, slot.Type, slot.Index))
	}
	return roster[slot.Index]
}

func (p *Player) add(piece *Piece) {
	p.Pieces[piece.Type] = append(p.Pieces[piece.Type], piece)
	p.lookup[piece.Position] = Slot{Type: piece.Type, Index: len(p.Pieces[piece.Type]) - 1}
}

// remove takes the piece on pos out of the rosters and shifts the lookup of
// every later piece of the same type down by one.
func (p *Player) remove(pos Position) *Piece {
	slot, ok := p.lookup[pos]
	if !ok {
		panic(fmt.Sprintf("%s has no piece on %s", p.Color, pos))
	}
	piece := p.piece(slot)

	p.Pieces[slot.Type] = slices.Delete(p.Pieces[slot.Type], slot.Index, slot.Index+1)
	delete(p.lookup, pos)
	for i := slot.Index; i < len(p.Pieces[slot.Type]); i++ {
		p.lookup[p.Pieces[slot.Type][i].Position] = Slot{Type: slot.Type, Index: i}
	}
	return piece
}

func (p *Player) relocate(from, to Position) *Piece {
	slot, ok := p.lookup[from]
	if !ok {
		panic(fmt.Sprintf("%s has no piece on %s", p.Color, from))
	}
	piece := p.piece(slot)

	delete(p.lookup, from)
	p.lookup[to] = slot
	piece.Position = to
	piece.CanMoveSpecial = false
	return piece
}

// promote turns the pawn on pos into a queen, moving it between rosters.
// The piece identity (and so its board cell) is kept.
func (p *Player) promote(pos Position) *Piece {
	pawn := p.remove(pos)
	pawn.Type = Queen
	p.add(pawn)
	return pawn
}

// clone deep copies the player and places the copied pieces on board.
func (p *Player) clone(board *Board) *Player {
	c := &Player{
		Color:     p.Color,
		lookup:    maps.Clone(p.lookup),
		CheckedBy: p.CheckedBy,
		LastMove:  p.LastMove,
	}
	for t, roster := range p.Pieces {
		if len(roster) == 0 {
			continue
		}
		copied := make([]*Piece, len(roster))
		for i, piece := range roster {
			pc := *piece
			if board.At(pc.Position) != nil {
				panic(fmt.Sprintf("two pieces claim %s", pc.Position))
			}
			board.set(pc.Position, &pc)
			copied[i] = &pc
		}
		c.Pieces[t] = copied
	}
	return c
}
