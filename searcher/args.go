package searcher

import "time"

// Hyperparameters for MCTS

// BranchingCap is the number of children a node grows before selection
// descends through it
const BranchingCap = 10

// Simulation outcomes are drawn as a percentage
const MaxWinChance = 100

const DefaultDuration = time.Second
