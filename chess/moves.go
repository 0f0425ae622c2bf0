package chess

var (
	royalDirections  = []direction{{1, 0}, {1, 1}, {1, -1}, {-1, 0}, {-1, 1}, {-1, -1}, {0, 1}, {0, -1}}
	rookDirections   = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirections = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightDirections = []direction{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {2, 1}, {2, -1}, {-2, 1}, {-2, -1}}
)

type moveSet struct {
	directions []direction
	reach      int // squares walked per direction
}

// Pawns only use their reach here, their moves are generated separately.
var moveSets = [numPieceTypes]moveSet{
	King:   {royalDirections, 1},
	Queen:  {royalDirections, BoardSize},
	Rook:   {rookDirections, BoardSize},
	Knight: {knightDirections, 1},
	Bishop: {bishopDirections, BoardSize},
	Pawn:   {nil, 1},
}

func slides(t PieceType) bool {
	return moveSets[t].reach > 1
}

// isLegalMove rejects actions without a mover, leaving the board or landing
// on a piece of the mover's own color.
func isLegalMove(board *Board, action Action) bool {
	mover := board.At(action.From)
	if mover == nil || !action.To.OnBoard() {
		return false
	}
	return !isFriendlyPiece(board, action.To, mover.Color)
}

func isOpponentPiece(board *Board, pos Position, color Color) bool {
	occupant := board.At(pos)
	return occupant != nil && occupant.Color != color
}

func isFriendlyPiece(board *Board, pos Position, color Color) bool {
	occupant := board.At(pos)
	return occupant != nil && occupant.Color == color
}

// destinations lists the squares piece may move to, ignoring checks.
func destinations(board *Board, piece *Piece) []Position {
	if piece.Type == Pawn {
		return pawnDestinations(board, piece)
	}
	return walk(board, piece, false)
}

// covered lists the squares piece guards that hold a piece of its own color.
func covered(board *Board, piece *Piece) []Position {
	if piece.Type == Pawn {
		var squares []Position
		for _, diagonal := range pawnDiagonals(piece) {
			if isFriendlyPiece(board, diagonal, piece.Color) {
				squares = append(squares, diagonal)
			}
		}
		return squares
	}

	var squares []Position
	for _, pos := range walk(board, piece, true) {
		if isFriendlyPiece(board, pos, piece.Color) {
			squares = append(squares, pos)
		}
	}
	return squares
}

// walk steps along every direction of the piece's move set until the reach is
// used up, the board ends, or a piece blocks. An enemy blocker is included.
// A friendly blocker is only included when cover is set.
func walk(board *Board, piece *Piece, cover bool) []Position {
	set := moveSets[piece.Type]
	var squares []Position
	for _, d := range set.directions {
		pos := piece.Position
		for i := 0; i < set.reach; i++ {
			pos = pos.step(d)
			if !pos.OnBoard() {
				break
			}
			if !isLegalMove(board, Action{From: piece.Position, To: pos}) {
				if cover {
					squares = append(squares, pos)
				}
				break
			}
			squares = append(squares, pos)
			if isOpponentPiece(board, pos, piece.Color) {
				break
			}
		}
	}
	return squares
}

func pawnDiagonals(piece *Piece) []Position {
	forward := piece.Color.forward()
	return []Position{
		piece.Position.step(direction{1, forward}),
		piece.Position.step(direction{-1, forward}),
	}
}

func pawnDestinations(board *Board, piece *Piece) []Position {
	forward := direction{0, piece.Color.forward()}
	var squares []Position

	one := piece.Position.step(forward)
	if one.OnBoard() && board.At(one) == nil {
		squares = append(squares, one)
	}
	for _, diagonal := range pawnDiagonals(piece) {
		if isOpponentPiece(board, diagonal, piece.Color) {
			squares = append(squares, diagonal)
		}
	}
	two := one.step(forward)
	if piece.CanMoveSpecial && one.OnBoard() && two.OnBoard() && board.At(one) == nil && board.At(two) == nil {
		squares = append(squares, two)
	}
	return squares
}

// pseudoActions lists every move of player's pieces ignoring checks, in
// roster order.
func pseudoActions(board *Board, player *Player) []Action {
	var actions []Action
	for _, roster := range player.Pieces {
		for _, piece := range roster {
			for _, to := range destinations(board, piece) {
				actions = append(actions, Action{From: piece.Position, To: to})
			}
		}
	}
	return actions
}
