package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// Since returns the events logged after sequence number seq.
func (l *MemoryLogger) Since(seq int) []GameEvent {
	for i, e := range l.events {
		if e.Seq > seq {
			out := make([]GameEvent, len(l.events)-i)
			copy(out, l.events[i:])
			return out
		}
	}
	return nil
}

// Reset drops all stored events. Sequence numbers keep increasing.
func (l *MemoryLogger) Reset() {
	l.events = nil
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	player := e.Player
	if player == "" {
		player = "table"
	}
	return fmt.Sprintf("T%-2d %-8s| %s", e.Turn, player, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewGameEvent(seed int64) GameEvent {
	return GameEvent{
		Type:    EventNewGame,
		Details: fmt.Sprintf("=== New duel (seed %d) ===", seed),
	}
}

func NewShuffleEvent(deckCount int) GameEvent {
	return GameEvent{
		Type:    EventShuffle,
		Details: fmt.Sprintf("Deck of %d cards shuffled", deckCount),
	}
}

func NewDealEvent(handSize, centralSize, deckCount int) GameEvent {
	return GameEvent{
		Type:    EventDeal,
		Details: fmt.Sprintf("Dealt %d cards to each player and %d face-down to the center (%d left in deck)", handSize, centralSize, deckCount),
	}
}

func NewTurnEvent(turn int, player string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventNewTurn,
		Details: fmt.Sprintf("=== Turn %d (%s) ===", turn, player),
	}
}

func NewDrawEvent(turn int, player string, cardID, label string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventDraw,
		Card:    cardID,
		Details: fmt.Sprintf("%s draws %s from the deck", player, label),
	}
}

func NewDrawCenterEvent(turn int, player string, cardID, label string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventDrawCenter,
		Card:    cardID,
		Details: fmt.Sprintf("%s takes %s from the center", player, label),
	}
}

func NewRevealEvent(turn int, player string, cardID, label string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventReveal,
		Card:    cardID,
		Details: fmt.Sprintf("%s reveals %s in the center", player, label),
	}
}

func NewSetFaceDownEvent(turn int, player string, cardID string, faceDownCount int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventSetFaceDown,
		Card:    cardID,
		Details: fmt.Sprintf("%s sets a card face-down (%d face-down)", player, faceDownCount),
	}
}

func NewActivateEvent(turn int, player string, cardID, label, effect string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventActivate,
		Card:    cardID,
		Details: fmt.Sprintf("%s activates %s: %s", player, label, effect),
	}
}

func NewSuitEffectEvent(turn int, player string, suit string, labels []string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventSuitEffect,
		Details: fmt.Sprintf("%s discards %s for the %s effect", player, strings.Join(labels, " "), suit),
	}
}

func NewAttackBonusEvent(turn int, player string, oldBonus, newBonus int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventAttackBonus,
		Details: fmt.Sprintf("%s attack bonus: %d → %d", player, oldBonus, newBonus),
	}
}

func NewLifeChangeEvent(turn int, player string, oldLife, newLife int, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventLifeChange,
		Details: fmt.Sprintf("%s life: %d → %d (%s)", player, oldLife, newLife, reason),
	}
}

func NewAddToHandEvent(turn int, player string, cardID, label, from string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventAddToHand,
		Card:    cardID,
		Details: fmt.Sprintf("%s adds %s to hand from the %s", player, label, from),
	}
}

func NewDiscardEvent(turn int, player string, cardID, label, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventDiscard,
		Card:    cardID,
		Details: fmt.Sprintf("%s is discarded from %s (%s)", label, player, reason),
	}
}

func NewAttackDeclareEvent(turn int, player string, labels []string, combo string, value int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventAttackDeclare,
		Details: fmt.Sprintf("%s attacks with %s (%s, %d)", player, strings.Join(labels, " "), combo, value),
	}
}

func NewDefenseDeclareEvent(turn int, player string, labels []string, combo string, value int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventDefenseDeclare,
		Details: fmt.Sprintf("%s defends with %s (%s, %d)", player, strings.Join(labels, " "), combo, value),
	}
}

func NewDuelResolveEvent(turn int, attacker string, attack, defense, damage int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  attacker,
		Type:    EventDuelResolve,
		Details: fmt.Sprintf("Duel resolved: attack %d vs defense %d → %d damage", attack, defense, damage),
	}
}

func NewWinEvent(turn int, winner string, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  winner,
		Type:    EventWin,
		Details: reason,
	}
}

func NewRejectedEvent(turn int, player string, command string, err error) GameEvent {
	return GameEvent{
		Turn:    turn,
		Player:  player,
		Type:    EventRejected,
		Details: fmt.Sprintf("%s rejected: %v", command, err),
	}
}
