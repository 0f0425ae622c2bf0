package chess

import "strings"

// Board is indexed [file][rank].
type Board [BoardSize][BoardSize]*Piece

// Snapshot is a compact copy of a board used for repetition checks. The zero
// value marks an unrecorded history slot.
type Snapshot [BoardSize][BoardSize]uint8

func (b *Board) At(pos Position) *Piece {
	if !pos.OnBoard() {
		return nil
	}
	return b[pos.File][pos.Rank]
}

func (b *Board) set(pos Position, piece *Piece) {
	b[pos.File][pos.Rank] = piece
}

func (b *Board) snapshot() Snapshot {
	var s Snapshot
	for file := range b {
		for rank, piece := range b[file] {
			if piece != nil {
				s[file][rank] = (uint8(piece.Type)<<1 | uint8(piece.Color)) + 1
			}
		}
	}
	return s
}

// String draws the board with Black's back rank on top, white pieces in
// upper case and empty squares as dots.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 0; rank < BoardSize; rank++ {
		sb.WriteByte(byte('8' - rank))
		sb.WriteByte(' ')
		for file := 0; file < BoardSize; file++ {
			if piece := b[file][rank]; piece != nil {
				sb.WriteByte(piece.symbol())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	return sb.String()
}

func (s Snapshot) recorded() bool {
	return s != Snapshot{}
}
