package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules holds the tunable numbers of a duel. DefaultRules reproduces the
// standard game; a rules file may override any subset of fields.
type Rules struct {
	StartingLife  int `yaml:"starting_life" json:"starting_life"`
	HandSize      int `yaml:"hand_size" json:"hand_size"`
	CentralSize   int `yaml:"central_size" json:"central_size"`
	MaxComboCards int `yaml:"max_combo_cards" json:"max_combo_cards"`
	JackBonus     int `yaml:"jack_bonus" json:"jack_bonus"`
	HeartsHeal    int `yaml:"hearts_heal" json:"hearts_heal"`
	DiamondsDraw  int `yaml:"diamonds_draw" json:"diamonds_draw"`
	SpadesDamage  int `yaml:"spades_damage" json:"spades_damage"`
}

// RulesFile represents the top-level YAML structure.
type RulesFile struct {
	Rules Rules `yaml:"rules"`
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{
		StartingLife:  StartingLife,
		HandSize:      HandSize,
		CentralSize:   CentralSize,
		MaxComboCards: MaxComboCards,
		JackBonus:     2,
		HeartsHeal:    2,
		DiamondsDraw:  2,
		SpadesDamage:  2,
	}
}

// Validate checks that the rules describe a playable deal.
func (r Rules) Validate() error {
	var errs []error
	if r.StartingLife <= 0 {
		errs = append(errs, fmt.Errorf("starting_life must be positive, got %d", r.StartingLife))
	}
	if r.HandSize < 0 || r.CentralSize < 0 {
		errs = append(errs, fmt.Errorf("hand_size and central_size must not be negative"))
	}
	if 2*r.HandSize+r.CentralSize > DeckSize {
		errs = append(errs, fmt.Errorf("deal needs %d cards, deck has %d", 2*r.HandSize+r.CentralSize, DeckSize))
	}
	if r.MaxComboCards < 1 || r.MaxComboCards > MaxComboCards {
		errs = append(errs, fmt.Errorf("max_combo_cards must be between 1 and %d, got %d", MaxComboCards, r.MaxComboCards))
	}
	if r.JackBonus < 0 || r.HeartsHeal < 0 || r.DiamondsDraw < 0 || r.SpadesDamage < 0 {
		errs = append(errs, fmt.Errorf("effect amounts must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid rules: %w", errors.Join(errs...))
	}
	return nil
}

// ParseRules decodes YAML over the defaults, so omitted fields keep their
// standard values.
func ParseRules(data []byte) (Rules, error) {
	rf := RulesFile{Rules: DefaultRules()}
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return Rules{}, fmt.Errorf("parse rules YAML: %w", err)
	}
	if err := rf.Rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rf.Rules, nil
}

// ParseRulesFile reads a YAML rules file. An empty path yields DefaultRules.
func ParseRulesFile(path string) (Rules, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, err
	}
	return ParseRules(data)
}
