package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/JSilva6/PokerDuel/internal/config"
	"github.com/JSilva6/PokerDuel/internal/game"
	"github.com/JSilva6/PokerDuel/internal/log"
	"github.com/JSilva6/PokerDuel/internal/protocol"
)

func main() {
	cfg, err := config.LoadDotEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flag.Int64("seed", cfg.Seed, "RNG seed for the shuffle and reveals (0 for random)")
	rulesFile := flag.String("rules", cfg.RulesPath, "path to a rules YAML file")
	flag.Parse()
	cfg.Seed = *seed
	cfg.RulesPath = *rulesFile

	rules, err := cfg.Rules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	d, err := game.NewDuel(game.DuelConfig{
		Rules:  rules,
		Seed:   cfg.Seed,
		Logger: log.NewTextLogger(os.Stdout),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	d.Initialize()

	printUsage()
	run(d, os.Stdin, os.Stdout)
}

func printUsage() {
	fmt.Println("Commands:")
	fmt.Println("  draw                          draw from the deck")
	fmt.Println("  reveal                        reveal a random central card")
	fmt.Println("  center                        take the oldest revealed central card")
	fmt.Println("  facedown CARD                 set a J, Q, K or A face-down")
	fmt.Println("  activate CARD [TARGET]        activate a face-down card")
	fmt.Println("  suit CARD CARD [TARGET]       discard a same-suit pair for its effect")
	fmt.Println("  attack CARD...                declare an attack combination")
	fmt.Println("  defend CARD...                declare a defense combination")
	fmt.Println("  resolve                       resolve the duel")
	fmt.Println("  next                          pass the turn")
	fmt.Println("  state                         show the table")
	fmt.Println("  init                          start over")
	fmt.Println("  help, quit")
}

// run reads commands until EOF or quit. Events stream through the duel's
// TextLogger; run only prints the table and errors.
func run(d *game.Duel, in io.Reader, out io.Writer) {
	showTable(out, protocol.Execute(d, protocol.Command{Type: protocol.CmdState}, game.PlayerNone).State)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return
		case "help", "?":
			printUsage()
			continue
		}

		cmd, err := protocol.ParseCommandLine(line)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		res := protocol.Execute(d, cmd, game.PlayerNone)
		if !res.OK {
			fmt.Fprintf(out, "Error: %s\n", res.Error)
			continue
		}
		if res.Damage != nil {
			fmt.Fprintf(out, "Damage dealt: %d\n", *res.Damage)
		}
		if cmd.Type != protocol.CmdDrawFromDeck && cmd.Type != protocol.CmdRevealCentral && cmd.Type != protocol.CmdDrawFromCenter {
			showTable(out, res.State)
		}
		if res.State.Over {
			fmt.Fprintf(out, "%s\n", res.State.Result)
		}
	}
}

func showTable(out io.Writer, sv *protocol.StateView) {
	fmt.Fprintf(out, "--- Turn %d, %s to act ---\n", sv.Turn, sv.CurrentPlayer)
	for _, p := range sv.Players {
		fmt.Fprintf(out, "%s  life %d  bonus %+d\n", p.ID, p.Life, p.AttackBonus)
		fmt.Fprintf(out, "  hand:      %s\n", cardList(p.Hand))
		if p.FaceDownCount > 0 {
			fmt.Fprintf(out, "  face-down: %s\n", cardList(p.FaceDown))
		}
	}
	fmt.Fprintf(out, "deck %d  discard %d  center %d face-down, revealed: %s\n",
		sv.DeckCount, len(sv.Discard), sv.CentralFaceDown, cardList(sv.CentralRevealed))
	if len(sv.Attack.Cards) > 0 {
		fmt.Fprintf(out, "attack:  %s (%s, %d)\n", cardList(sv.Attack.Cards), sv.Attack.Combo, sv.Attack.Value)
	}
	if len(sv.Defense.Cards) > 0 {
		fmt.Fprintf(out, "defense: %s (%s, %d)\n", cardList(sv.Defense.Cards), sv.Defense.Combo, sv.Defense.Value)
	}
}

func cardList(cards []protocol.CardView) string {
	if len(cards) == 0 {
		return "-"
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = fmt.Sprintf("%s(%s)", c.Label, c.ID)
	}
	return strings.Join(parts, " ")
}
