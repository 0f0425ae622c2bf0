package chess

import (
	"hash/fnv"

	"gamesearch/game"

	"github.com/rs/zerolog/log"
)

// Game plays chess without castling or en passant. It holds no state of its
// own: every method is a function of the *State it is given.
type Game struct{}

var (
	_ game.Game[*State, Action, Color] = Game{}
	_ game.Hasher[*State]              = Game{}
	_ game.Judge[*State]               = Game{}
)

func NewGame() Game {
	return Game{}
}

func (Game) InitialState() *State {
	return NewState()
}

func (Game) ToMove(state *State) Color {
	return state.ToMove()
}

func (Game) Actions(state *State) []Action {
	return state.legalActions()
}

// Apply returns the state reached by playing action, or ErrInvalidAction if
// the action cannot be played at all. Actions are not checked against the
// legal move list, so an evasion rule violation goes through.
func (Game) Apply(state *State, action Action) (*State, error) {
	if err := state.validate(action); err != nil {
		return nil, err
	}
	next := state.Clone()
	next.move(action)
	return next, nil
}

// Result is Apply for callers that only play generated actions. A malformed
// action leaves the position unchanged.
func (g Game) Result(state *State, action Action) *State {
	next, err := g.Apply(state, action)
	if err != nil {
		log.Debug().Err(err).Msgf("Ignoring action %s", action)
		return state.Clone()
	}
	return next
}

func (Game) IsTerminal(state *State) bool {
	if state.Players[state.ToMove()].King() == nil {
		return true
	}
	return state.repeated() || len(state.legalActions()) == 0
}

// Utility panics when the rosters and the board disagree.
func (Game) Utility(state *State, player Color) float64 {
	score, err := Evaluate(state, player)
	if err != nil {
		panic(err)
	}
	return score
}

// Winner names the color that won a terminal state. A side to move without
// a king or without moves has lost; a repetition is a draw.
func (Game) Winner(state *State) string {
	loser := state.ToMove()
	switch {
	case state.Players[loser].King() == nil:
		return loser.Opponent().String()
	case state.repeated():
		return ""
	case len(state.legalActions()) == 0:
		return loser.Opponent().String()
	}
	return ""
}

func (Game) Hash(state *State) game.StateHash {
	h := fnv.New64a()
	snapshot := state.Board.snapshot()
	for file := range snapshot {
		h.Write(snapshot[file][:])
	}
	h.Write([]byte{byte(state.ToMove())})
	return game.StateHash(h.Sum64())
}
