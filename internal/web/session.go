package web

import (
	"sync"

	"go.uber.org/zap"

	"github.com/JSilva6/PokerDuel/internal/game"
	"github.com/JSilva6/PokerDuel/internal/log"
	"github.com/JSilva6/PokerDuel/internal/protocol"
)

// updateBuffer is how many unread updates a slow subscriber may fall behind
// before further updates to it are dropped.
const updateBuffer = 16

// session is one hosted duel. The duel is single-writer, so every command
// runs under mu.
type session struct {
	id     string
	logger *zap.Logger
	mu     sync.Mutex
	duel   *game.Duel
	events *log.MemoryLogger
	subs   map[*subscriber]struct{}
}

// subscriber is a websocket connection watching a session.
type subscriber struct {
	viewer  game.PlayerID
	updates chan protocol.Result
}

func newSession(id string, rules game.Rules, seed int64, logger *zap.Logger) (*session, error) {
	events := log.NewMemoryLogger()
	d, err := game.NewDuel(game.DuelConfig{Rules: rules, Seed: seed, Logger: events})
	if err != nil {
		return nil, err
	}
	d.Initialize()
	return &session{
		id:     id,
		logger: logger,
		duel:   d,
		events: events,
		subs:   make(map[*subscriber]struct{}),
	}, nil
}

// execute runs cmd for viewer. Successful state changes are pushed to every
// other subscriber from its own perspective.
func (s *session) execute(cmd protocol.Command, viewer game.PlayerID, from *subscriber) protocol.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	mark := len(s.events.Events())
	res := protocol.Execute(s.duel, cmd, viewer)
	if !res.OK || cmd.Type == protocol.CmdState {
		return res
	}
	events := s.events.Events()[mark:]
	snap := s.duel.Snapshot()
	if err := snap.CheckConservation(); err != nil {
		s.logger.Error("card conservation violated",
			zap.String("game_id", s.id),
			zap.String("type", cmd.Type),
			zap.Error(err),
		)
	}
	for sub := range s.subs {
		if sub == from {
			continue
		}
		update := protocol.Result{
			OK:     true,
			Events: protocol.EventViews(events, sub.viewer),
			State:  protocol.BuildStateView(snap, sub.viewer),
		}
		select {
		case sub.updates <- update:
		default:
		}
	}
	return res
}

func (s *session) subscribe(viewer game.PlayerID) *subscriber {
	sub := &subscriber{viewer: viewer, updates: make(chan protocol.Result, updateBuffer)}
	s.mu.Lock()
	s.subs[sub] = struct{}{}
	s.mu.Unlock()
	return sub
}

func (s *session) unsubscribe(sub *subscriber) {
	s.mu.Lock()
	delete(s.subs, sub)
	s.mu.Unlock()
}

// log returns every event of the match so far as seen by viewer.
func (s *session) log(viewer game.PlayerID) []protocol.EventView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return protocol.EventViews(s.events.Events(), viewer)
}

func (s *session) seed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duel.Seed()
}
