package chess

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var openerMoves = map[string][]string{
	"italian":       {"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5"},
	"ruy-lopez":     {"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6"},
	"queens-gambit": {"d2d4", "d7d5", "c2c4", "e7e6", "b1c3", "g8f6"},
	"sicilian":      {"e2e4", "c7c5", "g1f3", "d7d6", "d2d4", "c5d4"},
	"french":        {"e2e4", "e7e6", "d2d4", "d7d5", "b1c3", "g8f6"},
	"london":        {"d2d4", "d7d5", "c1f4", "g8f6", "e2e3", "e7e6"},
}

// Openers holds named opening lines, replayed from the initial position.
var Openers = func() map[string][]Action {
	openers := make(map[string][]Action, len(openerMoves))
	for name, moves := range openerMoves {
		line := make([]Action, len(moves))
		for i, move := range moves {
			line[i] = MustParseAction(move)
		}
		openers[name] = line
	}
	return openers
}()

func Opener(name string) ([]Action, error) {
	line, ok := Openers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOpener, name)
	}
	return line, nil
}

func OpenerNames() []string {
	names := maps.Keys(Openers)
	slices.Sort(names)
	return names
}
