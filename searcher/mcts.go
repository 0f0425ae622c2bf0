package searcher

import (
	"sync"
	"time"

	"gamesearch/experiments/metrics"
	"gamesearch/game"
	"gamesearch/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type settings struct {
	goroutines   int
	duration     time.Duration
	episodes     int
	branchingCap int
	seed         uint64
	collector    metrics.Collector
}

type Option func(s *settings)

func WithDuration(duration time.Duration) Option {
	return func(s *settings) {
		if duration > 0 {
			s.duration = duration
		}
	}
}

// WithEpisodes runs a fixed number of simulations instead of a timed search.
func WithEpisodes(episodes int) Option {
	return func(s *settings) {
		if episodes > 0 {
			s.episodes = episodes
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(s *settings) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

func WithBranchingCap(branchingCap int) Option {
	return func(s *settings) {
		if branchingCap > 0 {
			s.branchingCap = branchingCap
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.collector = metrics.NewCollector()
	}
}

// MCTS keeps its tree between searches, so one instance should follow a
// single game.
type MCTS[S any, A any, P comparable] struct {
	settings
	game     game.Game[S, A, P]
	hasher   game.Hasher[S] // nil when the game cannot hash states
	root     *node[S, A]
	searches uint64
}

func NewMCTS[S any, A any, P comparable](g game.Game[S, A, P], options ...Option) *MCTS[S, A, P] {
	s := settings{ // Default values
		goroutines:   1,
		duration:     DefaultDuration,
		branchingCap: BranchingCap,
		seed:         uint64(time.Now().UnixNano()),
		collector:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	if s.episodes <= 0 && s.duration <= 0 {
		panic("Must specify search episodes or duration")
	}

	m := &MCTS[S, A, P]{settings: s, game: g}
	m.hasher, _ = g.(game.Hasher[S])
	return m
}

// Search grows the tree from state and returns the most played action, then
// keeps that action's subtree for the next search.
func (m *MCTS[S, A, P]) Search(state S) (A, bool, metrics.SearchMetric) {
	m.findRoot(state)

	m.collector.Start("mcts", m.goroutines)
	if m.episodes > 0 {
		m.iterate()
	} else {
		m.countdown()
	}
	metric := m.collector.Complete()

	// Workers are done, the tree is ours alone
	best := m.root.mostPlayed()
	if best == nil {
		var none A
		return none, false, metric
	}
	m.reroot(best)
	return best.action, true, metric
}

func (m *MCTS[S, A, P]) newNode(parent *node[S, A], state S, action A) *node[S, A] {
	var actions []A
	if !m.game.IsTerminal(state) {
		actions = m.game.Actions(state)
	}
	n := newNode(parent, state, action, actions, m.branchingCap)
	if m.hasher != nil {
		n.hash = m.hasher.Hash(state)
	}
	return n
}

// findRoot reuses the retained tree when state is its root or one of the
// root's children, i.e. the opponent answered with an expanded move.
func (m *MCTS[S, A, P]) findRoot(state S) {
	if root := m.traverse(state); root != nil {
		root.parent = nil
		m.root = root
		m.collector.SetTreeReset(false)
		return
	}

	var none A
	m.root = m.newNode(nil, state, none)
	m.collector.SetTreeReset(true)
	log.Debug().Msg("building a new search tree")
}

func (m *MCTS[S, A, P]) traverse(state S) *node[S, A] {
	if m.root == nil || m.hasher == nil {
		return nil
	}

	hash := m.hasher.Hash(state)
	candidates := append([]*node[S, A]{m.root}, m.root.children...)
	for _, candidate := range candidates {
		if candidate.hash != hash {
			continue
		}
		if m.game.ToMove(candidate.state) != m.game.ToMove(state) {
			log.Warn().Msgf("node's state hash %d matches a position with another side to move", hash)
			return nil
		}
		return candidate
	}
	return nil
}

func (m *MCTS[S, A, P]) reroot(child *node[S, A]) {
	child.parent = nil
	m.root = child
}

func (m *MCTS[S, A, P]) workerRNGs() []*rand.Rand {
	rngs := make([]*rand.Rand, m.goroutines)
	for i := range rngs {
		rngs[i] = rand.New(rand.NewSource(m.seed + m.searches*uint64(m.goroutines) + uint64(i)))
	}
	m.searches++
	return rngs
}

func (m *MCTS[S, A, P]) iterate() {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for _, rng := range m.workerRNGs() {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range task {
				m.simulate(rng)
				m.collector.AddEpisode()
			}
		}()
	}

	wg.Wait()
}

func (m *MCTS[S, A, P]) countdown() {
	done := make(chan any)

	var wg sync.WaitGroup
	for _, rng := range m.workerRNGs() {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
					m.simulate(rng)
					m.collector.AddEpisode()
				}
			}
		}()
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func (m *MCTS[S, A, P]) simulate(rng *rand.Rand) {
	leaf, expanded := m.selectThenExpand(rng)
	if !expanded { // Nothing to expand, count a loss
		backup(leaf, false)
		return
	}
	backup(leaf, m.rollout(leaf.state, rng))
}

// selectThenExpand descends through fully expanded nodes by play count and
// adds one child to the first node that still has room. It returns the new
// child, or the leaf and false when that node has no actions left to try.
func (m *MCTS[S, A, P]) selectThenExpand(rng *rand.Rand) (*node[S, A], bool) {
	n := m.root
	for {
		n.Lock()
		if n.expanded() {
			next := n.mostPlayed()
			n.Unlock()
			n = next
			continue
		}

		action, ok := n.takeUntried(rng)
		if !ok {
			n.Unlock()
			return n, false
		}
		child := m.newNode(n, m.game.Result(n.state, action), action)
		n.children = append(n.children, child)
		n.Unlock()

		m.collector.AddNodes(1)
		return child, true
	}
}

// rollout scores state once with the game's utility for the side to move and
// draws the outcome from it.
func (m *MCTS[S, A, P]) rollout(state S, rng *rand.Rand) bool {
	m.collector.AddEvaluations(1)
	utility := m.game.Utility(state, m.game.ToMove(state))
	chance := utils.Clamp(50+100*utility, 0, MaxWinChance)
	return rng.Intn(MaxWinChance) < int(chance)
}

func backup[S any, A any](leaf *node[S, A], win bool) {
	n := leaf
	for n != nil {
		n = n.update(win)
	}
}
