package game

import "errors"

// Errors returned by Duel commands. Commands wrap them with context, so
// callers should match with errors.Is.
var (
	// ErrDeckEmpty means a draw (or the Ace effect) found no cards in the deck.
	ErrDeckEmpty = errors.New("deck is empty")
	// ErrNotFound means a referenced card is not in the zone it was expected in.
	ErrNotFound = errors.New("card not found")
	// ErrRequestAction means the command needs more input, usually a target id.
	// Retry with the missing information.
	ErrRequestAction = errors.New("additional input required")
	// ErrInvalidCombination means submitted cards do not form an exact combo,
	// or a suit pair does not share a suit.
	ErrInvalidCombination = errors.New("invalid combination")
	// ErrEngine covers programmer-facing violations such as a disallowed
	// face-down rank or a game that was never initialized.
	ErrEngine = errors.New("engine error")
)

// ErrorKind is the machine-readable name of a command failure.
type ErrorKind string

const (
	KindNone               ErrorKind = ""
	KindDeckEmpty          ErrorKind = "deck_empty"
	KindNotFound           ErrorKind = "not_found"
	KindRequestAction      ErrorKind = "request_action"
	KindInvalidCombination ErrorKind = "invalid_combination"
	KindEngine             ErrorKind = "engine"
)

// KindOf maps err to its ErrorKind. Errors that did not come from the engine
// are reported as KindEngine.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrDeckEmpty):
		return KindDeckEmpty
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrRequestAction):
		return KindRequestAction
	case errors.Is(err, ErrInvalidCombination):
		return KindInvalidCombination
	default:
		return KindEngine
	}
}
