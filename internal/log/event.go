package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventNewGame EventType = iota
	EventShuffle
	EventDeal
	EventNewTurn
	EventDraw
	EventDrawCenter
	EventReveal
	EventSetFaceDown
	EventActivate
	EventSuitEffect
	EventAttackBonus
	EventLifeChange
	EventAddToHand
	EventDiscard
	EventAttackDeclare
	EventDefenseDeclare
	EventDuelResolve
	EventWin
	EventRejected // a command failed and left the state untouched
)

func (e EventType) String() string {
	switch e {
	case EventNewGame:
		return "NewGame"
	case EventShuffle:
		return "Shuffle"
	case EventDeal:
		return "Deal"
	case EventNewTurn:
		return "NewTurn"
	case EventDraw:
		return "Draw"
	case EventDrawCenter:
		return "DrawCenter"
	case EventReveal:
		return "Reveal"
	case EventSetFaceDown:
		return "SetFaceDown"
	case EventActivate:
		return "Activate"
	case EventSuitEffect:
		return "SuitEffect"
	case EventAttackBonus:
		return "AttackBonus"
	case EventLifeChange:
		return "LifeChange"
	case EventAddToHand:
		return "AddToHand"
	case EventDiscard:
		return "Discard"
	case EventAttackDeclare:
		return "AttackDeclare"
	case EventDefenseDeclare:
		return "DefenseDeclare"
	case EventDuelResolve:
		return "DuelResolve"
	case EventWin:
		return "Win"
	case EventRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a duel.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // turn counter when the event happened (0-based)
	Player  string    // acting player ("player1", "player2"), empty for table events
	Type    EventType // event type
	Card    string    // card id (if applicable)
	Details string    // human-readable detail string
}
