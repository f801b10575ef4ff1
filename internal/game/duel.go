package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/JSilva6/PokerDuel/internal/log"
)

// DuelConfig holds configuration for creating a new duel.
type DuelConfig struct {
	Rules     Rules // zero value means DefaultRules
	Logger    log.EventLogger
	Seed      int64    // RNG seed (0 for random)
	NoShuffle bool     // keep the canonical deck order (for deterministic tests)
	TopCards  []string // card ids forced to the top of every fresh deck, in draw order
}

// Duel owns the state of one match and exposes the commands that mutate it.
// A Duel is not safe for concurrent use; hosts serving several callers must
// serialize access.
type Duel struct {
	state     *GameState
	rules     Rules
	Logger    log.EventLogger
	rng       *rand.Rand
	seed      int64
	noShuffle bool
	topCards  []Card
}

// NewDuel creates a duel. The state stays empty until Initialize is called.
func NewDuel(cfg DuelConfig) (*Duel, error) {
	rules := cfg.Rules
	if rules == (Rules{}) {
		rules = DefaultRules()
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	top, err := resolveTopCards(cfg.TopCards)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed, err = newSeed()
		if err != nil {
			return nil, err
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}

	gs := NewGameState()
	for _, p := range gs.Players {
		p.Life = rules.StartingLife
	}

	return &Duel{
		state:     gs,
		rules:     rules,
		Logger:    logger,
		rng:       rand.New(rand.NewSource(seed)),
		seed:      seed,
		noShuffle: cfg.NoShuffle,
		topCards:  top,
	}, nil
}

// Seed returns the seed driving shuffles and central reveals.
func (d *Duel) Seed() int64 {
	return d.seed
}

// Rules returns the rule set in effect.
func (d *Duel) Rules() Rules {
	return d.rules
}

// Snapshot returns a deep copy of the current state for read-only consumers.
func (d *Duel) Snapshot() *GameState {
	return d.state.Clone()
}

// Outcome reports whether a player's life has reached 0.
func (d *Duel) Outcome() Outcome {
	return d.state.Outcome()
}

// Initialize resets every zone and player, shuffles a fresh deck, deals the
// hands alternately starting with player1, and places the central cards
// face-down. It returns the resulting snapshot.
func (d *Duel) Initialize() *GameState {
	gs := NewGameState()
	for _, p := range gs.Players {
		p.Life = d.rules.StartingLife
	}
	gs.CurrentPlayer = Player1
	gs.Deck = d.buildDeck()
	d.state = gs

	d.log(log.NewGameEvent(d.seed))
	if !d.noShuffle {
		d.log(log.NewShuffleEvent(len(gs.Deck)))
	}

	for i := 0; i < d.rules.HandSize; i++ {
		for _, id := range PlayerIDs {
			gs.drawInto(gs.Player(id))
		}
	}
	gs.Central.FaceDown = cloneCards(gs.Deck[:d.rules.CentralSize])
	gs.Deck = gs.Deck[d.rules.CentralSize:]

	d.log(log.NewDealEvent(d.rules.HandSize, d.rules.CentralSize, len(gs.Deck)))
	d.log(log.NewTurnEvent(gs.TurnCount, string(gs.CurrentPlayer)))

	return d.Snapshot()
}

// buildDeck creates the canonical deck, shuffles it, then lifts the
// configured top cards to the front.
func (d *Duel) buildDeck() []Card {
	deck := NewDeck()
	if !d.noShuffle {
		Shuffle(deck, d.rng)
	}
	if len(d.topCards) == 0 {
		return deck
	}

	forced := make(map[string]bool, len(d.topCards))
	out := make([]Card, 0, len(deck))
	for _, c := range d.topCards {
		forced[c.ID] = true
		out = append(out, c)
	}
	for _, c := range deck {
		if !forced[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

func resolveTopCards(ids []string) ([]Card, error) {
	seen := make(map[string]bool, len(ids))
	cards := make([]Card, 0, len(ids))
	for _, id := range ids {
		c, ok := ParseCardID(id)
		if !ok {
			return nil, fmt.Errorf("%w: unknown card id %q", ErrNotFound, id)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: card id %q listed twice", ErrEngine, id)
		}
		seen[id] = true
		cards = append(cards, c)
	}
	return cards, nil
}

// newSeed generates a random seed using crypto/rand.
func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]))
	if seed == 0 {
		seed = 1
	}
	return seed, nil
}

// log emits a game event through the logger.
func (d *Duel) log(event log.GameEvent) {
	if d.Logger != nil {
		d.Logger.Log(event)
	}
}

// reject records a failed command and hands the error back to the caller.
func (d *Duel) reject(command string, err error) error {
	d.log(log.NewRejectedEvent(d.state.TurnCount, string(d.state.CurrentPlayer), command, err))
	return err
}

// turn returns the current turn number and acting player for event logging.
func (d *Duel) turn() (int, string) {
	return d.state.TurnCount, string(d.state.CurrentPlayer)
}

func labels(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
