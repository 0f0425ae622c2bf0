// meta/meta.go
package meta

import "time"

// MaxTurns caps the number of agent moves in one game.
const MaxTurns = 300

// DefaultDepth is the ply depth of minimax and alpha-beta agents.
const DefaultDepth = 2

// DefaultDuration is the MCTS time budget per move.
const DefaultDuration = time.Second

// AlternateDuration is the longer MCTS budget used in strength experiments.
const AlternateDuration = 5 * time.Second

// GoRoutines defines the number of goroutines for parallel MCTS agents.
const GoRoutines = 8

// GamesPerMatchup is the number of games played between two agent configs.
const GamesPerMatchup = 10
