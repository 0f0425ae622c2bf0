package chess

import "errors"

var (
	ErrInvalidAction = errors.New("invalid action")
	ErrInvalidSetup  = errors.New("invalid setup")
	ErrUnknownOpener = errors.New("unknown opener")
	ErrNotation      = errors.New("malformed coordinate notation")
	ErrRosterDesync  = errors.New("roster and board disagree")
)
