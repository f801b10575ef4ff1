package protocol

import (
	"fmt"
	"strings"

	"github.com/JSilva6/PokerDuel/internal/game"
)

// Execute applies cmd to d and reports the outcome as seen by viewer. The
// result carries the events the command produced and the state afterwards,
// whether or not the command succeeded.
func Execute(d *game.Duel, cmd Command, viewer game.PlayerID) Result {
	mark := len(d.Logger.Events())

	var res Result
	var err error
	switch cmd.Type {
	case CmdInitialize:
		d.Initialize()
	case CmdNextTurn:
		d.NextTurn()
	case CmdDrawFromDeck:
		res.Card, err = cardResult(d.DrawFromDeck())
	case CmdDrawFromCenter:
		res.Card, err = cardResult(d.DrawFromCenter())
	case CmdRevealCentral:
		res.Card, err = cardResult(d.RevealCentralCard())
	case CmdPlaceFaceDown:
		err = d.PlaceCardFaceDown(cmd.CardID)
	case CmdActivate:
		err = d.ActivateFaceDownCard(cmd.CardID, cmd.TargetID)
	case CmdSuitEffect:
		err = d.ApplySuitEffect(cmd.CardIDs, cmd.TargetID)
	case CmdAttack:
		err = d.Attack(cmd.CardIDs)
	case CmdDefend:
		err = d.Defend(cmd.CardIDs)
	case CmdResolveDuel:
		var damage int
		if damage, err = d.ResolveDuel(); err == nil {
			res.Damage = &damage
		}
	case CmdState:
	default:
		err = fmt.Errorf("%w: unknown command %q", game.ErrRequestAction, cmd.Type)
	}

	res.OK = err == nil
	if err != nil {
		res.Error = err.Error()
		res.ErrorKind = game.KindOf(err)
	}
	if events := d.Logger.Events(); mark <= len(events) {
		res.Events = EventViews(events[mark:], viewer)
	}
	res.State = BuildStateView(d.Snapshot(), viewer)
	// A deck draw lands in the current player's hand.
	if cmd.Type == CmdDrawFromDeck && viewer != game.PlayerNone && res.State.CurrentPlayer != string(viewer) {
		res.Card = nil
	}
	return res
}

func cardResult(c game.Card, err error) (*CardView, error) {
	if err != nil {
		return nil, err
	}
	v := BuildCardView(c)
	return &v, nil
}

// commandAliases maps the short words typed at a prompt to command types.
var commandAliases = map[string]string{
	"init":     CmdInitialize,
	"new":      CmdInitialize,
	"next":     CmdNextTurn,
	"draw":     CmdDrawFromDeck,
	"center":   CmdDrawFromCenter,
	"reveal":   CmdRevealCentral,
	"facedown": CmdPlaceFaceDown,
	"set":      CmdPlaceFaceDown,
	"activate": CmdActivate,
	"suit":     CmdSuitEffect,
	"attack":   CmdAttack,
	"defend":   CmdDefend,
	"resolve":  CmdResolveDuel,
	"state":    CmdState,
}

// ParseCommandLine turns a line such as "attack hearts-9 spades-9" into a
// Command. Accepted forms:
//
//	draw | center | reveal | next | resolve | state | new
//	facedown <card>
//	activate <card> [target]
//	suit <card> <card> [target]
//	attack <card>...
//	defend <card>...
//
// Full command type names are accepted in place of the short words.
func ParseCommandLine(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty command", game.ErrRequestAction)
	}
	typ, ok := commandAliases[strings.ToLower(fields[0])]
	if !ok {
		typ = strings.ToLower(fields[0])
	}
	args := fields[1:]
	cmd := Command{Type: typ}

	switch typ {
	case CmdPlaceFaceDown:
		if len(args) != 1 {
			return Command{}, fmt.Errorf("%w: usage: facedown <card>", game.ErrRequestAction)
		}
		cmd.CardID = args[0]
	case CmdActivate:
		if len(args) < 1 || len(args) > 2 {
			return Command{}, fmt.Errorf("%w: usage: activate <card> [target]", game.ErrRequestAction)
		}
		cmd.CardID = args[0]
		if len(args) == 2 {
			cmd.TargetID = args[1]
		}
	case CmdSuitEffect:
		if len(args) < 2 || len(args) > 3 {
			return Command{}, fmt.Errorf("%w: usage: suit <card> <card> [target]", game.ErrRequestAction)
		}
		cmd.CardIDs = args[:2]
		if len(args) == 3 {
			cmd.TargetID = args[2]
		}
	case CmdAttack, CmdDefend:
		if len(args) == 0 {
			return Command{}, fmt.Errorf("%w: usage: %s <card>...", game.ErrRequestAction, fields[0])
		}
		cmd.CardIDs = args
	default:
		if len(args) != 0 {
			return Command{}, fmt.Errorf("%w: %s takes no arguments", game.ErrRequestAction, fields[0])
		}
	}
	return cmd, nil
}
