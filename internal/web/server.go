package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JSilva6/PokerDuel/internal/game"
	"github.com/JSilva6/PokerDuel/internal/protocol"
)

// NewGameRequest is the optional body of POST /api/games.
type NewGameRequest struct {
	Seed int64 `json:"seed,omitempty"`
}

// NewGameResponse is returned by POST /api/games.
type NewGameResponse struct {
	ID   string `json:"id"`
	Seed int64  `json:"seed"`
	protocol.Result
}

// WSMessage is sent over the websocket. Type is "result" for the reply to
// this connection's own command and "update" for a change made by another
// player.
type WSMessage struct {
	Type string `json:"type"`
	protocol.Result
}

// Server is the PokerDuel web API server.
type Server struct {
	rules  game.Rules
	seed   int64
	logger *zap.Logger
	mux    *http.ServeMux

	mu       sync.Mutex
	sessions map[string]*session
}

// NewServer creates a new web server. seed seeds every game that does not
// ask for its own; 0 means random.
func NewServer(rules game.Rules, seed int64, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		rules:    rules,
		seed:     seed,
		logger:   logger,
		mux:      http.NewServeMux(),
		sessions: make(map[string]*session),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("GET /api/rules", s.handleRules)
	s.mux.HandleFunc("POST /api/games", s.handleNewGame)
	s.mux.HandleFunc("GET /api/games/{id}", s.handleGetGame)
	s.mux.HandleFunc("DELETE /api/games/{id}", s.handleDeleteGame)
	s.mux.HandleFunc("GET /api/games/{id}/log", s.handleLog)
	s.mux.HandleFunc("POST /api/games/{id}/commands", s.handleCommand)
	s.mux.HandleFunc("GET /api/games/{id}/ws", s.handleWebSocket)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}

func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.rules)
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	viewer, ok := viewerParam(w, r)
	if !ok {
		return
	}
	var req NewGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = s.seed
	}

	id := uuid.NewString()
	sess, err := newSession(id, s.rules, seed, s.logger)
	if err != nil {
		s.logger.Error("create game", zap.Error(err))
		http.Error(w, "could not create game", http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	s.logger.Info("game created", zap.String("game_id", id), zap.Int64("seed", sess.seed()))

	res := sess.execute(protocol.Command{Type: protocol.CmdState}, viewer, nil)
	writeJSON(w, http.StatusCreated, NewGameResponse{ID: id, Seed: sess.seed(), Result: res})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	viewer, ok := viewerParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.execute(protocol.Command{Type: protocol.CmdState}, viewer, nil))
}

func (s *Server) handleLog(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	viewer, ok := viewerParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.log(viewer))
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}
	s.logger.Info("game deleted", zap.String("game_id", id))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	viewer, ok := viewerParam(w, r)
	if !ok {
		return
	}
	var cmd protocol.Command
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		http.Error(w, "invalid command body", http.StatusBadRequest)
		return
	}

	res := sess.execute(cmd, viewer, nil)
	s.logCommand(sess.id, cmd, res)

	status := http.StatusOK
	if !res.OK {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, res)
}

// handleWebSocket runs a command channel: each text message is a
// protocol.Command answered with a "result" message, and changes made
// through other connections arrive as "update" messages.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	viewer, ok := viewerParam(w, r)
	if !ok {
		return
	}

	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		s.logger.Warn("websocket accept", zap.Error(err))
		return
	}
	defer wsConn.CloseNow()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	sub := sess.subscribe(viewer)
	defer sess.unsubscribe(sub)

	var writeMu sync.Mutex
	send := func(msg WSMessage) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return wsjson.Write(ctx, wsConn, msg)
	}

	// Session updates → WebSocket
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case update := <-sub.updates:
				if err := send(WSMessage{Type: "update", Result: update}); err != nil {
					cancel()
					return
				}
			}
		}
	}()

	// Initial state so the client can render before its first command.
	if err := send(WSMessage{Type: "result", Result: sess.execute(protocol.Command{Type: protocol.CmdState}, viewer, sub)}); err != nil {
		return
	}

	// WebSocket → session
	for {
		var cmd protocol.Command
		if err := wsjson.Read(ctx, wsConn, &cmd); err != nil {
			var closeErr websocket.CloseError
			if !errors.As(err, &closeErr) && ctx.Err() == nil {
				s.logger.Debug("websocket read", zap.String("game_id", sess.id), zap.Error(err))
			}
			return
		}
		res := sess.execute(cmd, viewer, sub)
		s.logCommand(sess.id, cmd, res)
		if err := send(WSMessage{Type: "result", Result: res}); err != nil {
			return
		}
	}
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*session, bool) {
	s.mu.Lock()
	sess, ok := s.sessions[r.PathValue("id")]
	s.mu.Unlock()
	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
	}
	return sess, ok
}

func (s *Server) logCommand(id string, cmd protocol.Command, res protocol.Result) {
	if res.OK {
		s.logger.Debug("command", zap.String("game_id", id), zap.String("type", cmd.Type))
		return
	}
	s.logger.Info("command rejected",
		zap.String("game_id", id),
		zap.String("type", cmd.Type),
		zap.String("kind", string(res.ErrorKind)),
		zap.String("error", res.Error),
	)
}

// viewerParam reads the optional ?viewer= query parameter.
func viewerParam(w http.ResponseWriter, r *http.Request) (game.PlayerID, bool) {
	viewer := game.PlayerID(r.URL.Query().Get("viewer"))
	if viewer != game.PlayerNone && !viewer.Valid() {
		http.Error(w, "viewer must be player1 or player2", http.StatusBadRequest)
		return game.PlayerNone, false
	}
	return viewer, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
