package chess

import "fmt"

// HistorySize is the number of board snapshots kept for repetition checks.
const HistorySize = 8

// State is a chess position. States are never modified once handed out:
// every transition works on a clone.
type State struct {
	Board   Board
	Players [2]*Player // indexed by Color
	Ply     int
	// History is a ring buffer of snapshots, slot (ply/2) % HistorySize
	History [HistorySize]Snapshot
}

// NewState returns the standard starting position with White to move.
func NewState() *State {
	s := &State{}
	for _, color := range colors {
		player := newPlayer(color)
		for _, piece := range player.All() {
			s.Board.set(piece.Position, piece)
		}
		s.Players[color] = player
	}
	return s
}

// Setup builds a position from a list of pieces, for puzzles and tests.
func Setup(toMove Color, pieces ...Piece) (*State, error) {
	s := &State{Ply: int(toMove)}
	for _, color := range colors {
		s.Players[color] = &Player{Color: color, lookup: make(map[Position]Slot)}
	}

	for _, p := range pieces {
		if !p.Position.OnBoard() {
			return nil, fmt.Errorf("%w: %s %s off the board", ErrInvalidSetup, p.Color, p.Type)
		}
		if p.Type >= numPieceTypes || p.Color > Black {
			return nil, fmt.Errorf("%w: unknown piece %+v", ErrInvalidSetup, p)
		}
		if s.Board.At(p.Position) != nil {
			return nil, fmt.Errorf("%w: two pieces on %s", ErrInvalidSetup, p.Position)
		}
		player := s.Players[p.Color]
		if p.Type == King && player.King() != nil {
			return nil, fmt.Errorf("%w: %s has two kings", ErrInvalidSetup, p.Color)
		}
		piece := p
		player.add(&piece)
		s.Board.set(piece.Position, &piece)
	}

	s.updateChecks()
	return s, nil
}

func (s *State) Clone() *State {
	c := &State{
		Ply:     s.Ply,
		History: s.History,
	}
	for i, player := range s.Players {
		c.Players[i] = player.clone(&c.Board)
	}
	return c
}

func (s *State) ToMove() Color {
	return Color(s.Ply % 2)
}

func (s *State) Player(color Color) *Player {
	return s.Players[color]
}

// legalActions lists the moves of the side to move. A side without a king
// has none, and a checked side is limited to evasions.
func (s *State) legalActions() []Action {
	player := s.Players[s.ToMove()]
	if player.King() == nil {
		return nil
	}
	actions := pseudoActions(&s.Board, player)
	if player.CheckedBy != nil {
		return evasions(actions, player)
	}
	return actions
}

func (s *State) validate(action Action) error {
	if !action.From.OnBoard() || !action.To.OnBoard() {
		return fmt.Errorf("%w: %s leaves the board", ErrInvalidAction, action)
	}
	piece := s.Board.At(action.From)
	if piece == nil {
		return fmt.Errorf("%w: no piece on %s", ErrInvalidAction, action.From)
	}
	if piece.Color != s.ToMove() {
		return fmt.Errorf("%w: %s is not to move", ErrInvalidAction, piece.Color)
	}
	if !isLegalMove(&s.Board, action) {
		return fmt.Errorf("%w: %s is held by a %s piece", ErrInvalidAction, action.To, piece.Color)
	}
	return nil
}

// move applies a validated action in place.
func (s *State) move(action Action) {
	mover := s.Players[s.ToMove()]
	opponent := s.Players[s.ToMove().Opponent()]

	if s.Board.At(action.To) != nil {
		captured := opponent.remove(action.To)
		if s.Board.At(action.To) != captured {
			panic(fmt.Sprintf("board and %s roster disagree on %s", opponent.Color, action.To))
		}
	}

	piece := mover.relocate(action.From, action.To)
	s.Board.set(action.From, nil)
	s.Board.set(action.To, piece)
	if piece.Type == Pawn && action.To.Rank == piece.Color.promotionRank() {
		mover.promote(action.To)
	}

	last := action
	mover.LastMove = &last
	s.record()
	s.updateChecks()
	s.Ply++
}

func (s *State) record() {
	s.History[(s.Ply/2)%HistorySize] = s.Board.snapshot()
}

// repetitions counts pairs of identical recorded snapshots.
func (s *State) repetitions() int {
	pairs := 0
	for i := 0; i < HistorySize; i++ {
		if !s.History[i].recorded() {
			continue
		}
		for j := i + 1; j < HistorySize; j++ {
			if s.History[i] == s.History[j] {
				pairs++
			}
		}
	}
	return pairs
}

// repeated reports whether the latest snapshot has been recorded at least
// three times in the history, which covers the last three slots being equal.
func (s *State) repeated() bool {
	if s.Ply == 0 {
		return false
	}
	latest := s.History[((s.Ply-1)/2)%HistorySize]
	if !latest.recorded() {
		return false
	}
	seen := 0
	for _, snapshot := range s.History {
		if snapshot == latest {
			seen++
		}
	}
	return seen >= 3
}
