package tower

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const validConfigJSON = `{
	"probabilities": {"flee": 0.5},
	"experience_per_level": [10, 30, 60, 100],
	"monsters": [
		{
			"name": "Dunop",
			"base_hp": 14, "hp_growth": 3,
			"base_mp": 6, "mp_growth": 2,
			"base_attack": 6, "attack_growth": 2,
			"base_defense": 4, "defense_growth": 1,
			"base_luck": 10, "luck_growth": 1,
			"base_exp": 4, "exp_growth": 2,
			"element": "Fire",
			"talents": "Quick"
		},
		{
			"name": "Kilia",
			"base_hp": 18, "hp_growth": 3,
			"base_mp": 10, "mp_growth": 2,
			"base_attack": 8, "attack_growth": 2,
			"base_defense": 5, "defense_growth": 1,
			"base_luck": 12, "luck_growth": 1,
			"base_exp": 6, "exp_growth": 2,
			"element": "Water",
			"spell": "DeHeal",
			"talents": "",
			"is_evolved": true
		}
	],
	"special_units": {
		"ghosh": {
			"name": "Ghosh",
			"base_hp": 20, "hp_growth": 4,
			"base_mp": 8, "mp_growth": 2,
			"base_attack": 9, "attack_growth": 2,
			"base_defense": 6, "defense_growth": 1,
			"base_luck": 12, "luck_growth": 1,
			"base_exp": 8, "exp_growth": 3,
			"element": "Fire",
			"talents": ""
		}
	},
	"floors": [
		[{"monster": "Dunop", "level": 1, "weight": 1}],
		[{"monster": "Dunop", "level": 2, "weight": 3}, {"monster": "Kilia", "level": 2, "weight": 1}]
	],
	"timers": {"event_interval": 60, "event_penalty": 120},
	"player_selection_weights": {"with_penalty": 10, "without_penalty": 1},
	"events_weights": {"battle": 5, "character": 2, "elevator": 2, "item": 3, "trap": 2, "familiar": 1},
	"found_items_weights": {"Pita": 3, "Medicinal Herb": 3, "Oleem": 1}
}`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(validConfigJSON))
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.HighestFloor(); got != 1 {
		t.Errorf("HighestFloor = %d, want 1", got)
	}
	if cfg.Timers.EventInterval != 60*time.Second {
		t.Errorf("EventInterval = %v, want 60s", cfg.Timers.EventInterval)
	}
	if cfg.Timers.EventPenalty != 120*time.Second {
		t.Errorf("EventPenalty = %v, want 120s", cfg.Timers.EventPenalty)
	}
	if cfg.Levels.MaxLevel() != 5 {
		t.Errorf("MaxLevel = %d, want 5", cfg.Levels.MaxLevel())
	}
	if !cfg.MonstersTraits["Dunop"].Talents.Has(Quick) {
		t.Error("Dunop should have the Quick talent")
	}
	if cfg.MonstersTraits["Kilia"].NativeSpell == nil {
		t.Error("Kilia should have a native spell")
	}
	if cfg.SpecialUnits.Ghosh == nil {
		t.Fatal("Ghosh traits missing")
	}
	if _, found := cfg.FindTraits("Ghosh"); !found {
		t.Error("FindTraits should resolve special units")
	}
	if got := cfg.MonsterNames(); len(got) != 2 || got[0] != "Dunop" || got[1] != "Kilia" {
		t.Errorf("MonsterNames = %v", got)
	}
	if got := cfg.EvolvedMonsterNames(); len(got) != 1 || got[0] != "Kilia" {
		t.Errorf("EvolvedMonsterNames = %v", got)
	}
}

func TestParseConfigDefaultEventPenalty(t *testing.T) {
	data := strings.Replace(validConfigJSON, `"event_penalty": 120`, `"event_penalty": 0`, 1)
	cfg, err := ParseConfig([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timers.EventPenalty != 300*time.Second {
		t.Errorf("EventPenalty = %v, want default 300s", cfg.Timers.EventPenalty)
	}
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		old  string
		new  string
	}{
		{"flee above one", `"flee": 0.5`, `"flee": 1.5`},
		{"levels not increasing", `[10, 30, 60, 100]`, `[10, 10, 60, 100]`},
		{"empty levels", `[10, 30, 60, 100]`, `[]`},
		{"unknown floor monster", `{"monster": "Dunop", "level": 1, "weight": 1}`, `{"monster": "Golem", "level": 1, "weight": 1}`},
		{"floor level above max", `{"monster": "Dunop", "level": 1, "weight": 1}`, `{"monster": "Dunop", "level": 9, "weight": 1}`},
		{"floor without weight", `{"monster": "Dunop", "level": 1, "weight": 1}`, `{"monster": "Dunop", "level": 1, "weight": 0}`},
		{"zero event interval", `"event_interval": 60`, `"event_interval": 0`},
		{"unknown element", `"element": "Fire",
			"talents": "Quick"`, `"element": "Lava",
			"talents": "Quick"`},
		{"unknown talent", `"talents": "Quick"`, `"talents": "Lazy"`},
		{"unknown spell", `"spell": "DeHeal"`, `"spell": "Meteo"`},
		{"unknown found item", `"found_items_weights": {"Pita": 3, "Medicinal Herb": 3, "Oleem": 1}`,
			`"found_items_weights": {"Sword": 1}`},
		{"zero events weights", `"events_weights": {"battle": 5, "character": 2, "elevator": 2, "item": 3, "trap": 2, "familiar": 1}`,
			`"events_weights": {"battle": 0, "character": 0, "elevator": 0, "item": 0, "trap": 0, "familiar": 0}`},
		{"zero selection weights", `"player_selection_weights": {"with_penalty": 10, "without_penalty": 1}`,
			`"player_selection_weights": {"with_penalty": 0, "without_penalty": 0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := strings.Replace(validConfigJSON, tt.old, tt.new, 1)
			if data == validConfigJSON {
				t.Fatal("replacement did not apply")
			}
			_, err := ParseConfig([]byte(data))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseConfigRejectsDuplicateMonster(t *testing.T) {
	data := strings.Replace(validConfigJSON, `"name": "Kilia"`, `"name": "Dunop"`, 1)
	if _, err := ParseConfig([]byte(data)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestParseConfigRejectsBadJSON(t *testing.T) {
	if _, err := ParseConfig([]byte("{")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}
