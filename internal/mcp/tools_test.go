package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), name string, args map[string]any) (*mcp.CallToolResult, string) {
	t.Helper()
	req := mcp.CallToolRequest{Params: mcp.CallToolParams{Name: name, Arguments: args}}
	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return result, text.Text
}

func decode(t *testing.T, text string) ToolResponse {
	t.Helper()
	var resp ToolResponse
	require.NoError(t, json.Unmarshal([]byte(text), &resp), text)
	return resp
}

func resetSession(t *testing.T) {
	t.Helper()
	sessionMu.Lock()
	activeSession = nil
	sessionMu.Unlock()
	t.Cleanup(func() {
		sessionMu.Lock()
		activeSession = nil
		sessionMu.Unlock()
	})
}

func TestToolsRequireGame(t *testing.T) {
	resetSession(t)
	result, text := callTool(t, commandHandler("draw_from_deck"), "draw_from_deck", nil)
	assert.True(t, result.IsError)
	assert.Contains(t, text, "new_game")

	result, _ = callTool(t, handleGetLog, "get_log", nil)
	assert.True(t, result.IsError)
}

func TestNewGameAndDraw(t *testing.T) {
	resetSession(t)
	result, text := callTool(t, handleNewGame, "new_game", map[string]any{"seed": 11.0, "viewer": "player1"})
	require.False(t, result.IsError, text)

	resp := decode(t, text)
	assert.Equal(t, int64(11), resp.Seed)
	assert.Equal(t, "player1", resp.Viewer)
	require.NotNil(t, resp.State)
	assert.Equal(t, 31, resp.State.DeckCount)
	assert.Len(t, resp.State.Players[0].Hand, 7)
	assert.Empty(t, resp.State.Players[1].Hand)

	result, text = callTool(t, commandHandler("draw_from_deck"), "draw_from_deck", nil)
	require.False(t, result.IsError, text)
	resp = decode(t, text)
	require.NotNil(t, resp.Card)
	assert.Equal(t, 30, resp.State.DeckCount)

	_, logText := callTool(t, handleGetLog, "get_log", nil)
	assert.Contains(t, logText, "New duel (seed 11)")
	assert.Contains(t, logText, "draws "+resp.Card.Label)
}

func TestLogHidesOpponentDraws(t *testing.T) {
	resetSession(t)
	result, text := callTool(t, handleNewGame, "new_game", map[string]any{"seed": 11.0, "viewer": "player2"})
	require.False(t, result.IsError, text)

	result, text = callTool(t, commandHandler("draw_from_deck"), "draw_from_deck", nil)
	require.False(t, result.IsError, text)
	resp := decode(t, text)
	assert.Nil(t, resp.Card)
	require.Len(t, resp.Events, 1)
	assert.Empty(t, resp.Events[0].Card)

	_, logText := callTool(t, handleGetLog, "get_log", nil)
	assert.Contains(t, logText, "player1 draws a card from the deck")
}

func TestSameSeedSameDeal(t *testing.T) {
	resetSession(t)
	_, first := callTool(t, handleNewGame, "new_game", map[string]any{"seed": 4.0})
	_, second := callTool(t, handleNewGame, "new_game", map[string]any{"seed": 4.0})
	assert.Equal(t, decode(t, first).State, decode(t, second).State)
}

func TestCommandRejected(t *testing.T) {
	resetSession(t)
	callTool(t, handleNewGame, "new_game", map[string]any{"seed": 2.0})

	result, text := callTool(t, commandHandler("attack"), "attack", map[string]any{"card_ids": "hearts-1 spades-1"})
	assert.True(t, result.IsError)
	resp := decode(t, text)
	assert.False(t, resp.OK)
	assert.Equal(t, "not_found", string(resp.ErrorKind))

	result, text = callTool(t, commandHandler("apply_suit_effect"), "apply_suit_effect", map[string]any{"card_ids": "hearts-2"})
	assert.True(t, result.IsError)
	assert.Equal(t, "request_action", string(decode(t, text).ErrorKind))
}

func TestNewGameBadViewer(t *testing.T) {
	resetSession(t)
	result, _ := callTool(t, handleNewGame, "new_game", map[string]any{"viewer": "player3"})
	assert.True(t, result.IsError)
	assert.Nil(t, currentSession())
}

func TestGameStateTool(t *testing.T) {
	resetSession(t)
	callTool(t, handleNewGame, "new_game", map[string]any{"seed": 9.0})
	result, text := callTool(t, commandHandler("state"), "get_game_state", nil)
	require.False(t, result.IsError, text)
	resp := decode(t, text)
	assert.True(t, resp.OK)
	assert.Empty(t, resp.Events)
	assert.Equal(t, "player1", resp.State.CurrentPlayer)
	// No viewer: both hands are visible.
	assert.Len(t, resp.State.Players[1].Hand, 7)
}

func TestRejectedToolsAreLogged(t *testing.T) {
	resetSession(t)
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	result, text := callTool(t, handleNewGame, "new_game", map[string]any{"seed": 3.0})
	require.False(t, result.IsError, text)
	result, _ = callTool(t, commandHandler("attack"), "attack", map[string]any{"card_ids": "hearts-1"})
	require.True(t, result.IsError)

	rejected := logs.FilterMessage("tool rejected").All()
	require.Len(t, rejected, 1)
	fields := rejected[0].ContextMap()
	assert.Equal(t, "attack", fields["tool"])
	assert.Equal(t, "not_found", fields["kind"])
	assert.Equal(t, 1, logs.FilterMessage("game created").Len())
}
