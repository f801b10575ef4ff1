package mcp

import (
	"context"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/JSilva6/PokerDuel/internal/game"
	"github.com/JSilva6/PokerDuel/internal/protocol"
)

var (
	// sessionMu guards activeSession and rules.
	sessionMu sync.Mutex
	// activeSession is the singleton game session (one per stdio process).
	activeSession *GameSession
	// rules is the rule set for new games, set by main.
	rules = game.DefaultRules()
	// defaultSeed seeds new games that do not pass one; 0 means random.
	defaultSeed int64
	// logger must not write to stdout, which carries the MCP stream.
	logger = zap.NewNop()
)

// SetLogger sets the operational logger. nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

func currentLogger() *zap.Logger {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	return logger
}

// SetRules sets the rule set used by new_game.
func SetRules(r game.Rules) {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	rules = r
}

// SetSeed sets the seed used by new_game when the caller passes none.
func SetSeed(seed int64) {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	defaultSeed = seed
}

// RegisterTools adds all game tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(newGameTool(), handleNewGame)
	s.AddTool(getGameStateTool(), commandHandler(protocol.CmdState))
	s.AddTool(getLogTool(), handleGetLog)
	s.AddTool(simpleTool(protocol.CmdDrawFromDeck, "Draw the top card of the deck into the current player's hand."), commandHandler(protocol.CmdDrawFromDeck))
	s.AddTool(simpleTool(protocol.CmdDrawFromCenter, "Take the oldest revealed central card into the current player's hand."), commandHandler(protocol.CmdDrawFromCenter))
	s.AddTool(simpleTool(protocol.CmdRevealCentral, "Turn a random face-down central card face-up so it can be drawn."), commandHandler(protocol.CmdRevealCentral))
	s.AddTool(simpleTool(protocol.CmdNextTurn, "Pass the turn to the other player."), commandHandler(protocol.CmdNextTurn))
	s.AddTool(simpleTool(protocol.CmdResolveDuel, "Score the attack (plus attack bonus) against the defense and damage the opponent. Both duel zones are discarded."), commandHandler(protocol.CmdResolveDuel))
	s.AddTool(placeFaceDownTool(), commandHandler(protocol.CmdPlaceFaceDown))
	s.AddTool(activateTool(), commandHandler(protocol.CmdActivate))
	s.AddTool(suitEffectTool(), commandHandler(protocol.CmdSuitEffect))
	s.AddTool(comboTool(protocol.CmdAttack, "Move an exact combination (1-5 cards) from the current player's hand to the attack zone."), commandHandler(protocol.CmdAttack))
	s.AddTool(comboTool(protocol.CmdDefend, "Move an exact combination (1-5 cards) from the current player's hand to the defense zone."), commandHandler(protocol.CmdDefend))
}

// --- Tool definitions ---

func newGameTool() mcp.Tool {
	return mcp.NewTool("new_game",
		mcp.WithDescription("Start a new PokerDuel match, replacing any running one. Both players start at 10 life with 7 cards; "+
			"7 cards lie face-down in the center. Returns the initial state."),
		mcp.WithNumber("seed", mcp.Description("Seed for the shuffle and central reveals. Omit or 0 for random.")),
		mcp.WithString("viewer", mcp.Description("Whose hidden cards to show: 'player1', 'player2', or empty to show both hands.")),
	)
}

func getGameStateTool() mcp.Tool {
	return mcp.NewTool("get_game_state",
		mcp.WithDescription("Get the current game state without changing it. Read-only."),
	)
}

func getLogTool() mcp.Tool {
	return mcp.NewTool("get_log",
		mcp.WithDescription("Get the full event log of the current match as text. Read-only."),
	)
}

func simpleTool(name, desc string) mcp.Tool {
	return mcp.NewTool(name, mcp.WithDescription(desc))
}

func placeFaceDownTool() mcp.Tool {
	return mcp.NewTool(protocol.CmdPlaceFaceDown,
		mcp.WithDescription("Set a J, Q, K or A from the current player's hand face-down for later activation."),
		mcp.WithString("card_id", mcp.Required(), mcp.Description("Card id such as 'spades-K'")),
	)
}

func activateTool() mcp.Tool {
	return mcp.NewTool(protocol.CmdActivate,
		mcp.WithDescription("Activate a face-down card. J: +2 attack bonus. A: discard and redraw the hand. "+
			"K: return target_id from the discard pile to hand. Q: discard target_id from the opponent's hand."),
		mcp.WithString("card_id", mcp.Required(), mcp.Description("Face-down card id")),
		mcp.WithString("target_id", mcp.Description("Target card id, required for K and Q")),
	)
}

func suitEffectTool() mcp.Tool {
	return mcp.NewTool(protocol.CmdSuitEffect,
		mcp.WithDescription("Discard two cards of the same suit from hand for an effect. Hearts: +2 life. Diamonds: draw 2. "+
			"Spades: both players lose 2 life (not below 1). Clubs: also discard target_id from your own hand."),
		mcp.WithString("card_ids", mcp.Required(), mcp.Description("Space-separated ids of the two cards (e.g. 'clubs-2 clubs-9')")),
		mcp.WithString("target_id", mcp.Description("Card to discard, required for clubs")),
	)
}

func comboTool(name, desc string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(desc+" The whole submission must be the combination; extra dead cards are rejected."),
		mcp.WithString("card_ids", mcp.Required(), mcp.Description("Space-separated card ids (e.g. 'hearts-9 spades-9')")),
	)
}

// --- Tool handlers ---

func handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	viewer := game.PlayerID(strings.TrimSpace(request.GetString("viewer", "")))
	if viewer != game.PlayerNone && !viewer.Valid() {
		return mcp.NewToolResultErrorf("viewer must be 'player1', 'player2' or empty, got %q", viewer), nil
	}

	sessionMu.Lock()
	defer sessionMu.Unlock()

	seed := int64(request.GetInt("seed", 0))
	if seed == 0 {
		seed = defaultSeed
	}
	sess, err := NewGameSession(rules, seed, viewer)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}
	activeSession = sess

	resp := sess.Execute(protocol.Command{Type: protocol.CmdState})
	resp.Seed = sess.Seed()
	logger.Info("game created", zap.Int64("seed", resp.Seed), zap.String("viewer", string(viewer)))
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleGetLog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := currentSession()
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use new_game first."), nil
	}
	return mcp.NewToolResultText(sess.Log()), nil
}

// commandHandler returns a handler that builds a protocol.Command of the
// given type from the tool arguments and runs it on the active session.
func commandHandler(typ string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sess := currentSession()
		if sess == nil {
			return mcp.NewToolResultError("No game is running. Use new_game first."), nil
		}

		cmd := protocol.Command{
			Type:     typ,
			CardID:   strings.TrimSpace(request.GetString("card_id", "")),
			CardIDs:  strings.Fields(request.GetString("card_ids", "")),
			TargetID: strings.TrimSpace(request.GetString("target_id", "")),
		}

		resp := sess.Execute(cmd)
		if !resp.OK {
			currentLogger().Info("tool rejected",
				zap.String("tool", typ),
				zap.String("kind", string(resp.ErrorKind)),
				zap.String("error", resp.Error),
			)
			return mcp.NewToolResultError(respondJSON(resp)), nil
		}
		currentLogger().Debug("tool", zap.String("tool", typ))
		return mcp.NewToolResultText(respondJSON(resp)), nil
	}
}

func currentSession() *GameSession {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	return activeSession
}
