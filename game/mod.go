package game

// Game is a two-player, zero-sum, perfect-information game. S is the state,
// A the action and P the player type. States are treated as immutable:
// Result must return a new state and leave its argument untouched.
type Game[S any, A any, P comparable] interface {
	InitialState() S
	ToMove(state S) P
	// Actions returns the playable actions for the side to move, in a stable order
	Actions(state S) []A
	Result(state S, action A) S
	IsTerminal(state S) bool
	// Utility scores state from player's perspective, higher is better
	Utility(state S, player P) float64
}

type StateHash uint64

// Hasher is implemented by games that can fingerprint their states, which
// lets a searcher find a previously built subtree for a new position.
type Hasher[S any] interface {
	Hash(state S) StateHash
}

// Judge is implemented by games that can name the winner of a terminal
// state. An empty string means no winner (draw or game in progress).
type Judge[S any] interface {
	Winner(state S) string
}
