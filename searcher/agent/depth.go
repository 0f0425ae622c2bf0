package agent

import (
	"gamesearch/experiments/metrics"
	"gamesearch/game"
	"gamesearch/searcher"
)

type search[S any, A any, P comparable] func(g game.Game[S, A, P], state S, depth int) (A, bool, searcher.Stats)

type depthAgent[S any, A any, P comparable] struct {
	name      string
	game      game.Game[S, A, P]
	search    search[S, A, P]
	depth     int
	collector metrics.Collector
}

func NewMinimaxAgent[S any, A any, P comparable](g game.Game[S, A, P], depth int) Agent[S, A] {
	return &depthAgent[S, A, P]{
		name:      Minimax,
		game:      g,
		search:    searcher.MinimaxSearch[S, A, P],
		depth:     depth,
		collector: metrics.NewCollector(),
	}
}

func NewAlphaBetaAgent[S any, A any, P comparable](g game.Game[S, A, P], depth int) Agent[S, A] {
	return &depthAgent[S, A, P]{
		name:      AlphaBeta,
		game:      g,
		search:    searcher.AlphaBetaSearch[S, A, P],
		depth:     depth,
		collector: metrics.NewCollector(),
	}
}

func (a *depthAgent[S, A, P]) FindMove(state S) (A, bool, metrics.SearchMetric) {
	a.collector.Start(a.name, 1)
	move, ok, stats := a.search(a.game, state, a.depth)
	a.collector.AddNodes(stats.Nodes)
	a.collector.AddEvaluations(stats.Evaluations)
	return move, ok, a.collector.Complete()
}
