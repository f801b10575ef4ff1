package mcp

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/JSilva6/PokerDuel/internal/game"
	"github.com/JSilva6/PokerDuel/internal/log"
	"github.com/JSilva6/PokerDuel/internal/protocol"
)

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	protocol.Result
	Seed   int64  `json:"seed,omitempty"`
	Viewer string `json:"viewer,omitempty"`
}

// GameSession holds the state of a single MCP game session. The duel is
// single-writer, so every command runs under mu.
type GameSession struct {
	mu     sync.Mutex
	duel   *game.Duel
	logger *log.MemoryLogger
	viewer game.PlayerID
}

// NewGameSession creates and deals a new duel. viewer selects whose hidden
// cards are shown; game.PlayerNone shows both hands.
func NewGameSession(rules game.Rules, seed int64, viewer game.PlayerID) (*GameSession, error) {
	logger := log.NewMemoryLogger()
	d, err := game.NewDuel(game.DuelConfig{Rules: rules, Seed: seed, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("create duel: %w", err)
	}
	d.Initialize()
	return &GameSession{duel: d, logger: logger, viewer: viewer}, nil
}

// Execute runs one command under the session lock.
func (s *GameSession) Execute(cmd protocol.Command) *ToolResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &ToolResponse{
		Result: protocol.Execute(s.duel, cmd, s.viewer),
		Viewer: string(s.viewer),
	}
}

// Log returns the event log as text, as seen by the session viewer.
func (s *GameSession) Log() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return log.FormatAll(protocol.VisibleEvents(s.logger.Events(), s.viewer))
}

// Seed returns the seed the duel was dealt with.
func (s *GameSession) Seed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duel.Seed()
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
