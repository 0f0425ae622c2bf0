package chess

import "fmt"

// String prints the square in coordinate notation, "a8" for (0, 0).
func (p Position) String() string {
	if !p.OnBoard() {
		return fmt.Sprintf("(%d,%d)", p.File, p.Rank)
	}
	return string([]byte{byte('a' + p.File), byte('8' - p.Rank)})
}

func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%w: square %q", ErrNotation, s)
	}
	pos := Position{File: int(s[0]) - 'a', Rank: '8' - int(s[1])}
	if !pos.OnBoard() {
		return Position{}, fmt.Errorf("%w: square %q", ErrNotation, s)
	}
	return pos, nil
}

func (a Action) String() string {
	return a.From.String() + a.To.String()
}

// ParseAction reads an action such as "e2e4".
func ParseAction(s string) (Action, error) {
	if len(s) != 4 {
		return Action{}, fmt.Errorf("%w: action %q", ErrNotation, s)
	}
	from, err := ParsePosition(s[:2])
	if err != nil {
		return Action{}, err
	}
	to, err := ParsePosition(s[2:])
	if err != nil {
		return Action{}, err
	}
	return Action{From: from, To: to}, nil
}

func MustParseAction(s string) Action {
	action, err := ParseAction(s)
	if err != nil {
		panic(err)
	}
	return action
}
