package game

import "github.com/JSilva6/PokerDuel/internal/log"

// NextTurn hands the turn to the other player and increments the turn
// counter. It does not check whether the match is over; callers read Outcome.
func (d *Duel) NextTurn() *GameState {
	gs := d.state
	if gs.CurrentPlayer == Player1 {
		gs.CurrentPlayer = Player2
	} else {
		gs.CurrentPlayer = Player1
	}
	gs.TurnCount++

	d.log(log.NewTurnEvent(gs.TurnCount, string(gs.CurrentPlayer)))
	return d.Snapshot()
}
