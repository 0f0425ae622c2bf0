package engine

import (
	"errors"

	"gamesearch/experiments/metrics"
)

var ErrIllegalMove = errors.New("illegal move")

type Engine interface {
	// Run plays the game till it is over or the turn cap is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
