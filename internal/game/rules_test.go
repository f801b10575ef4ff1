package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseRulesOverlaysDefaults(t *testing.T) {
	rules, err := ParseRules([]byte(`
rules:
  starting_life: 20
  jack_bonus: 3
`))
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultRules()
	want.StartingLife = 20
	want.JackBonus = 3
	if rules != want {
		t.Errorf("Expected %+v, got %+v", want, rules)
	}
}

func TestParseRulesInvalid(t *testing.T) {
	if _, err := ParseRules([]byte("rules: [")); err == nil {
		t.Error("Expected a YAML error")
	}
	if _, err := ParseRules([]byte("rules:\n  max_combo_cards: 6\n")); err == nil {
		t.Error("Expected max_combo_cards above 5 to be rejected")
	}
	if _, err := ParseRules([]byte("rules:\n  starting_life: 0\n  spades_damage: -1\n")); err == nil {
		t.Error("Expected several problems to be reported")
	}
}

func TestParseRulesFile(t *testing.T) {
	rules, err := ParseRulesFile("")
	if err != nil || rules != DefaultRules() {
		t.Fatalf("Expected defaults for an empty path, got %+v, %v", rules, err)
	}

	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("rules:\n  hand_size: 5\n  central_size: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rules, err = ParseRulesFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if rules.HandSize != 5 || rules.CentralSize != 3 {
		t.Errorf("Unexpected rules %+v", rules)
	}

	if _, err := ParseRulesFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}

// TestCustomRulesDeal: hand and central sizes come from the rules.
func TestCustomRulesDeal(t *testing.T) {
	rules := DefaultRules()
	rules.HandSize = 5
	rules.CentralSize = 3
	rules.StartingLife = 15
	rules.HeartsHeal = 4
	d, err := NewDuel(DuelConfig{Rules: rules, Seed: 3})
	if err != nil {
		t.Fatal(err)
	}
	gs := d.Initialize()
	if len(gs.Player(Player1).Hand) != 5 || len(gs.Central.FaceDown) != 3 || len(gs.Deck) != 39 {
		t.Errorf("Unexpected deal: hand %d, center %d, deck %d",
			len(gs.Player(Player1).Hand), len(gs.Central.FaceDown), len(gs.Deck))
	}
	if gs.Player(Player2).Life != 15 {
		t.Errorf("Expected 15 life, got %d", gs.Player(Player2).Life)
	}

	setHand(t, d, Player1, "hearts-2", "hearts-3")
	if err := d.ApplySuitEffect([]string{"hearts-2", "hearts-3"}, ""); err != nil {
		t.Fatal(err)
	}
	if life := d.state.Player(Player1).Life; life != 19 {
		t.Errorf("Expected 19 life, got %d", life)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorKind
	}{
		{nil, KindNone},
		{ErrDeckEmpty, KindDeckEmpty},
		{errors.Join(errors.New("context"), ErrNotFound), KindNotFound},
		{ErrRequestAction, KindRequestAction},
		{ErrInvalidCombination, KindInvalidCombination},
		{ErrEngine, KindEngine},
		{errors.New("something else"), KindEngine},
	}
	for _, tt := range tests {
		if got := KindOf(tt.err); got != tt.want {
			t.Errorf("KindOf(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
