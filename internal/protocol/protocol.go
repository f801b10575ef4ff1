// Package protocol is the JSON command surface shared by every PokerDuel host.
// Hosts decode a Command, hand it to Execute and encode the Result.
package protocol

import "github.com/JSilva6/PokerDuel/internal/game"

// Command types.
const (
	CmdInitialize     = "initialize"
	CmdNextTurn       = "next_turn"
	CmdDrawFromDeck   = "draw_from_deck"
	CmdDrawFromCenter = "draw_from_center"
	CmdRevealCentral  = "reveal_central_card"
	CmdPlaceFaceDown  = "place_face_down"
	CmdActivate       = "activate_face_down"
	CmdSuitEffect     = "apply_suit_effect"
	CmdAttack         = "attack"
	CmdDefend         = "defend"
	CmdResolveDuel    = "resolve_duel"
	CmdState          = "state"
)

// CommandTypes lists every command Execute understands.
var CommandTypes = []string{
	CmdInitialize, CmdNextTurn, CmdDrawFromDeck, CmdDrawFromCenter, CmdRevealCentral,
	CmdPlaceFaceDown, CmdActivate, CmdSuitEffect, CmdAttack, CmdDefend, CmdResolveDuel, CmdState,
}

// --- Client → Server ---

// Command is the envelope for all client-to-engine requests.
type Command struct {
	Type string `json:"type"`

	// For "place_face_down" and "activate_face_down"
	CardID string `json:"card_id,omitempty"`

	// For "apply_suit_effect", "attack" and "defend"
	CardIDs []string `json:"card_ids,omitempty"`

	// King/Queen target, or the card clubs discards
	TargetID string `json:"target_id,omitempty"`
}

// --- Server → Client ---

// Result is the reply to every command.
type Result struct {
	OK        bool           `json:"ok"`
	Error     string         `json:"error,omitempty"`
	ErrorKind game.ErrorKind `json:"error_kind,omitempty"`

	// For "draw_from_deck", "draw_from_center" and "reveal_central_card"
	Card *CardView `json:"card,omitempty"`

	// For "resolve_duel"
	Damage *int `json:"damage,omitempty"`

	Events []EventView `json:"events,omitempty"`
	State  *StateView  `json:"state,omitempty"`
}

// EventView is a game event for the client.
type EventView struct {
	Seq     int    `json:"seq"`
	Turn    int    `json:"turn"`
	Player  string `json:"player,omitempty"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// CardView describes one visible card.
type CardView struct {
	ID    string `json:"id"`
	Suit  string `json:"suit"`
	Rank  string `json:"rank"`
	Label string `json:"label"`
}

// ComboView is the contents and score of a duel zone.
type ComboView struct {
	Cards []CardView `json:"cards"`
	Combo string     `json:"combo"`
	Value int        `json:"value"`
}

// PlayerView shows one seat. Hidden cards are reported only as counts.
type PlayerView struct {
	ID            string     `json:"id"`
	Life          int        `json:"life"`
	AttackBonus   int        `json:"attack_bonus"`
	HandCount     int        `json:"hand_count"`
	Hand          []CardView `json:"hand,omitempty"`
	FaceDownCount int        `json:"face_down_count"`
	FaceDown      []CardView `json:"face_down,omitempty"`
}

// StateView is the game state as seen by one viewer.
type StateView struct {
	Turn          int    `json:"turn"`
	CurrentPlayer string `json:"current_player"`
	IsYourTurn    bool   `json:"is_your_turn,omitempty"`

	Players [2]PlayerView `json:"players"`

	DeckCount        int        `json:"deck_count"`
	Discard          []CardView `json:"discard"`
	CentralFaceDown  int        `json:"central_face_down"`
	CentralRevealed  []CardView `json:"central_revealed"`
	Attack           ComboView  `json:"attack"`
	Defense          ComboView  `json:"defense"`
	CanDrawFromDeck  bool       `json:"can_draw_from_deck"`
	CanDrawFromCtr   bool       `json:"can_draw_from_center"`
	CanRevealCentral bool       `json:"can_reveal_central"`

	Over   bool   `json:"over"`
	Winner string `json:"winner,omitempty"`
	Result string `json:"result,omitempty"`
}
