package protocol

import (
	"strings"

	"github.com/JSilva6/PokerDuel/internal/game"
	"github.com/JSilva6/PokerDuel/internal/log"
)

// BuildStateView creates a StateView from the perspective of viewer. The
// opponent's hand and face-down cards are hidden; game.PlayerNone sees
// everything (hot-seat play and spectators of a finished game).
func BuildStateView(state *game.GameState, viewer game.PlayerID) *StateView {
	sv := &StateView{
		Turn:             state.TurnCount,
		CurrentPlayer:    string(state.CurrentPlayer),
		IsYourTurn:       viewer != game.PlayerNone && state.CurrentPlayer == viewer,
		DeckCount:        len(state.Deck),
		Discard:          CardViews(state.DiscardPile),
		CentralFaceDown:  len(state.Central.FaceDown),
		CentralRevealed:  CardViews(state.Central.Revealed),
		Attack:           BuildComboView(state.AttackZone),
		Defense:          BuildComboView(state.DefenseZone),
		CanDrawFromDeck:  len(state.Deck) > 0,
		CanDrawFromCtr:   len(state.Central.Revealed) > 0,
		CanRevealCentral: len(state.Central.FaceDown) > 0,
	}

	for i, id := range game.PlayerIDs {
		p := state.Player(id)
		if p == nil {
			continue
		}
		pv := PlayerView{
			ID:            string(id),
			Life:          p.Life,
			AttackBonus:   p.AttackBonus,
			HandCount:     len(p.Hand),
			FaceDownCount: len(p.FaceDownZone),
		}
		if viewer == game.PlayerNone || viewer == id {
			pv.Hand = CardViews(p.Hand)
			pv.FaceDown = CardViews(p.FaceDownZone)
		}
		sv.Players[i] = pv
	}

	out := state.Outcome()
	sv.Over = out.Over
	sv.Winner = string(out.Winner)
	sv.Result = out.Result
	return sv
}

// BuildCardView creates a CardView for c.
func BuildCardView(c game.Card) CardView {
	return CardView{
		ID:    c.ID,
		Suit:  c.Suit.String(),
		Rank:  c.Rank.String(),
		Label: c.String(),
	}
}

// CardViews converts a zone. The result is never nil so it encodes as [].
func CardViews(cards []game.Card) []CardView {
	out := make([]CardView, len(cards))
	for i, c := range cards {
		out[i] = BuildCardView(c)
	}
	return out
}

// BuildComboView scores a duel zone.
func BuildComboView(cards []game.Card) ComboView {
	rank := game.Classify(cards)
	return ComboView{
		Cards: CardViews(cards),
		Combo: rank.String(),
		Value: rank.Value(),
	}
}

// BuildEventView converts a logged event.
func BuildEventView(e log.GameEvent) EventView {
	return EventView{
		Seq:     e.Seq,
		Turn:    e.Turn,
		Player:  e.Player,
		Type:    e.Type.String(),
		Card:    e.Card,
		Details: e.Details,
	}
}

// EventViews converts a slice of logged events as seen by viewer.
func EventViews(events []log.GameEvent, viewer game.PlayerID) []EventView {
	out := make([]EventView, len(events))
	for i, e := range events {
		out[i] = BuildEventView(VisibleEvent(e, viewer))
	}
	return out
}

// VisibleEvents applies VisibleEvent to every event.
func VisibleEvents(events []log.GameEvent, viewer game.PlayerID) []log.GameEvent {
	out := make([]log.GameEvent, len(events))
	for i, e := range events {
		out[i] = VisibleEvent(e, viewer)
	}
	return out
}

// VisibleEvent returns e as viewer may see it. Cards entering the other
// seat's hand or face-down zone lose their identity, and the other seat's
// rejections lose their reason, which can name cards in that hand.
// game.PlayerNone sees everything.
func VisibleEvent(e log.GameEvent, viewer game.PlayerID) log.GameEvent {
	if viewer == game.PlayerNone || e.Player == "" || game.PlayerID(e.Player) == viewer {
		return e
	}
	switch e.Type {
	case log.EventDraw, log.EventAddToHand, log.EventSetFaceDown:
		if c, ok := game.ParseCardID(e.Card); ok {
			e.Details = strings.Replace(e.Details, c.String(), "a card", 1)
		}
		e.Card = ""
	case log.EventRejected:
		if i := strings.Index(e.Details, ": "); i >= 0 {
			e.Details = e.Details[:i]
		}
	}
	return e
}
