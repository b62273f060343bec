package tower

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"
)

// ErrInvalidConfig marks any game config parse or validation failure.
// It is fatal at startup.
var ErrInvalidConfig = errors.New("invalid config")

const defaultEventPenaltySeconds = 300

// Probabilities holds the configured outcome chances.
type Probabilities struct {
	Flee float64
}

// Timers holds the orchestrator timing configuration.
type Timers struct {
	EventInterval time.Duration
	EventPenalty  time.Duration
}

// PlayerSelectionWeights weights the event-player selection. A player with
// an active penalty is selected with WithoutPenalty, everyone else with
// WithPenalty.
type PlayerSelectionWeights struct {
	WithPenalty    int
	WithoutPenalty int
}

// EventsWeights weights the random event selection.
type EventsWeights struct {
	Battle    int
	Character int
	Elevator  int
	Item      int
	Trap      int
	Familiar  int
}

// FloorEntry is one weighted monster spawn on a floor.
type FloorEntry struct {
	Monster string
	Level   int
	Weight  int
}

// Floor is the weighted monster table of one tower floor.
type Floor []FloorEntry

// SpecialUnits holds traits of units that never spawn from floor tables.
type SpecialUnits struct {
	Ghosh *UnitTraits
}

// Config is the full game configuration, read-only after load.
type Config struct {
	Probabilities          Probabilities
	Levels                 Levels
	MonstersTraits         map[string]*UnitTraits
	SpecialUnits           SpecialUnits
	Floors                 []Floor
	Timers                 Timers
	PlayerSelectionWeights PlayerSelectionWeights
	EventsWeights          EventsWeights
	FoundItemsWeights      map[string]int
}

// HighestFloor returns the topmost floor index.
func (c *Config) HighestFloor() int {
	return len(c.Floors) - 1
}

// FindTraits resolves unit traits by name, checking monsters first and
// special units after.
func (c *Config) FindTraits(name string) (*UnitTraits, bool) {
	if traits, ok := c.MonstersTraits[name]; ok {
		return traits, true
	}
	if c.SpecialUnits.Ghosh != nil && c.SpecialUnits.Ghosh.Name == name {
		return c.SpecialUnits.Ghosh, true
	}
	return nil, false
}

// MonsterNames returns the monster names in sorted order, so uniform
// selection is reproducible under a seeded RNG.
func (c *Config) MonsterNames() []string {
	names := make([]string, 0, len(c.MonstersTraits))
	for name := range c.MonstersTraits {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EvolvedMonsterNames returns the sorted names of evolved monster traits.
func (c *Config) EvolvedMonsterNames() []string {
	var names []string
	for name, traits := range c.MonstersTraits {
		if traits.IsEvolved {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

type unitTraitsJSON struct {
	Name          string  `json:"name"`
	BaseHP        int     `json:"base_hp"`
	HPGrowth      float64 `json:"hp_growth"`
	BaseMP        int     `json:"base_mp"`
	MPGrowth      float64 `json:"mp_growth"`
	BaseAttack    int     `json:"base_attack"`
	AttackGrowth  float64 `json:"attack_growth"`
	BaseDefense   int     `json:"base_defense"`
	DefenseGrowth float64 `json:"defense_growth"`
	BaseLuck      int     `json:"base_luck"`
	LuckGrowth    float64 `json:"luck_growth"`
	BaseExp       int     `json:"base_exp"`
	ExpGrowth     float64 `json:"exp_growth"`
	Element       string  `json:"element"`
	Spell         string  `json:"spell"`
	Talents       string  `json:"talents"`
	IsEvolved     bool    `json:"is_evolved"`
}

type floorEntryJSON struct {
	Monster string `json:"monster"`
	Level   int    `json:"level"`
	Weight  int    `json:"weight"`
}

type configJSON struct {
	Probabilities struct {
		Flee float64 `json:"flee"`
	} `json:"probabilities"`
	ExperiencePerLevel []int            `json:"experience_per_level"`
	Monsters           []unitTraitsJSON `json:"monsters"`
	SpecialUnits       struct {
		Ghosh *unitTraitsJSON `json:"ghosh"`
	} `json:"special_units"`
	Floors [][]floorEntryJSON `json:"floors"`
	Timers struct {
		EventInterval int `json:"event_interval"`
		EventPenalty  int `json:"event_penalty"`
	} `json:"timers"`
	PlayerSelectionWeights struct {
		WithPenalty    int `json:"with_penalty"`
		WithoutPenalty int `json:"without_penalty"`
	} `json:"player_selection_weights"`
	EventsWeights struct {
		Battle    int `json:"battle"`
		Character int `json:"character"`
		Elevator  int `json:"elevator"`
		Item      int `json:"item"`
		Trap      int `json:"trap"`
		Familiar  int `json:"familiar"`
	} `json:"events_weights"`
	FoundItemsWeights map[string]int `json:"found_items_weights"`
}

// LoadConfig reads and validates the game config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig parses and validates a JSON game config.
func ParseConfig(data []byte) (*Config, error) {
	var raw configJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrInvalidConfig, err)
	}

	cfg := &Config{
		Probabilities:  Probabilities{Flee: raw.Probabilities.Flee},
		Levels:         Levels{ExpPerLevel: raw.ExperiencePerLevel},
		MonstersTraits: make(map[string]*UnitTraits, len(raw.Monsters)),
		Timers: Timers{
			EventInterval: time.Duration(raw.Timers.EventInterval) * time.Second,
			EventPenalty:  time.Duration(raw.Timers.EventPenalty) * time.Second,
		},
		PlayerSelectionWeights: PlayerSelectionWeights{
			WithPenalty:    raw.PlayerSelectionWeights.WithPenalty,
			WithoutPenalty: raw.PlayerSelectionWeights.WithoutPenalty,
		},
		EventsWeights: EventsWeights{
			Battle:    raw.EventsWeights.Battle,
			Character: raw.EventsWeights.Character,
			Elevator:  raw.EventsWeights.Elevator,
			Item:      raw.EventsWeights.Item,
			Trap:      raw.EventsWeights.Trap,
			Familiar:  raw.EventsWeights.Familiar,
		},
		FoundItemsWeights: raw.FoundItemsWeights,
	}
	if cfg.Timers.EventPenalty == 0 {
		cfg.Timers.EventPenalty = defaultEventPenaltySeconds * time.Second
	}

	for _, unitJSON := range raw.Monsters {
		traits, err := parseUnitTraits(unitJSON)
		if err != nil {
			return nil, err
		}
		if _, exists := cfg.MonstersTraits[traits.Name]; exists {
			return nil, fmt.Errorf("%w: double entry for unit %q traits", ErrInvalidConfig, traits.Name)
		}
		cfg.MonstersTraits[traits.Name] = traits
	}

	if raw.SpecialUnits.Ghosh != nil {
		ghosh, err := parseUnitTraits(*raw.SpecialUnits.Ghosh)
		if err != nil {
			return nil, err
		}
		cfg.SpecialUnits.Ghosh = ghosh
	}

	for _, floorJSON := range raw.Floors {
		floor := make(Floor, 0, len(floorJSON))
		for _, entryJSON := range floorJSON {
			floor = append(floor, FloorEntry(entryJSON))
		}
		cfg.Floors = append(cfg.Floors, floor)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseUnitTraits(raw unitTraitsJSON) (*UnitTraits, error) {
	if raw.Name == "" {
		return nil, fmt.Errorf("%w: unit traits without a name", ErrInvalidConfig)
	}
	genus, err := ParseGenus(raw.Element)
	if err != nil {
		return nil, fmt.Errorf("%w: unit %q: %v", ErrInvalidConfig, raw.Name, err)
	}
	talents, err := ParseTalents(raw.Talents)
	if err != nil {
		return nil, fmt.Errorf("%w: unit %q: %v", ErrInvalidConfig, raw.Name, err)
	}
	traits := &UnitTraits{
		Name:           raw.Name,
		BaseHP:         raw.BaseHP,
		HPGrowth:       raw.HPGrowth,
		BaseMP:         raw.BaseMP,
		MPGrowth:       raw.MPGrowth,
		BaseAttack:     raw.BaseAttack,
		AttackGrowth:   raw.AttackGrowth,
		BaseDefense:    raw.BaseDefense,
		DefenseGrowth:  raw.DefenseGrowth,
		BaseLuck:       raw.BaseLuck,
		LuckGrowth:     raw.LuckGrowth,
		BaseExpGiven:   raw.BaseExp,
		ExpGivenGrowth: raw.ExpGrowth,
		NativeGenus:    genus,
		Talents:        talents,
		IsEvolved:      raw.IsEvolved,
	}
	if raw.Spell != "" {
		spell, err := ParseSpell(raw.Spell)
		if err != nil {
			return nil, fmt.Errorf("%w: unit %q: %v", ErrInvalidConfig, raw.Name, err)
		}
		traits.NativeSpell = spell
	}
	return traits, nil
}

func (c *Config) validate() error {
	if c.Probabilities.Flee < 0 || c.Probabilities.Flee > 1 {
		return fmt.Errorf("%w: probabilities.flee %v outside [0, 1]", ErrInvalidConfig, c.Probabilities.Flee)
	}
	if err := c.validateLevels(); err != nil {
		return err
	}
	if len(c.MonstersTraits) == 0 {
		return fmt.Errorf("%w: no monsters specified", ErrInvalidConfig)
	}
	if err := c.validateFloors(); err != nil {
		return err
	}
	if c.Timers.EventInterval <= 0 {
		return fmt.Errorf("%w: timers.event_interval must be positive", ErrInvalidConfig)
	}
	if err := validateWeights("player_selection_weights",
		c.PlayerSelectionWeights.WithPenalty, c.PlayerSelectionWeights.WithoutPenalty); err != nil {
		return err
	}
	ew := c.EventsWeights
	if err := validateWeights("events_weights",
		ew.Battle, ew.Character, ew.Elevator, ew.Item, ew.Trap, ew.Familiar); err != nil {
		return err
	}
	return c.validateFoundItemsWeights()
}

func (c *Config) validateLevels() error {
	if len(c.Levels.ExpPerLevel) == 0 {
		return fmt.Errorf("%w: experience_per_level is empty", ErrInvalidConfig)
	}
	previous := 0
	for i, exp := range c.Levels.ExpPerLevel {
		if exp <= previous {
			return fmt.Errorf("%w: experience_per_level must be strictly increasing positive ints (index %d)",
				ErrInvalidConfig, i)
		}
		previous = exp
	}
	return nil
}

func (c *Config) validateFloors() error {
	if len(c.Floors) == 0 {
		return fmt.Errorf("%w: no floors specified", ErrInvalidConfig)
	}
	for index, floor := range c.Floors {
		if len(floor) == 0 {
			return fmt.Errorf("%w: floor at index %d has no monsters", ErrInvalidConfig, index)
		}
		total := 0
		for _, entry := range floor {
			if _, ok := c.MonstersTraits[entry.Monster]; !ok {
				return fmt.Errorf("%w: floor at index %d has unknown monster %q", ErrInvalidConfig, index, entry.Monster)
			}
			if entry.Level < 1 || entry.Level > c.Levels.MaxLevel() {
				return fmt.Errorf("%w: floor at index %d has monster %q at invalid level %d",
					ErrInvalidConfig, index, entry.Monster, entry.Level)
			}
			if entry.Weight < 0 {
				return fmt.Errorf("%w: floor at index %d has negative weight", ErrInvalidConfig, index)
			}
			total += entry.Weight
		}
		if total <= 0 {
			return fmt.Errorf("%w: floor at index %d has no positive weight", ErrInvalidConfig, index)
		}
	}
	return nil
}

func (c *Config) validateFoundItemsWeights() error {
	catalog := make(map[string]bool)
	for _, item := range AllItems() {
		catalog[item.Name()] = true
	}
	total := 0
	for name, weight := range c.FoundItemsWeights {
		if !catalog[name] {
			return fmt.Errorf("%w: found_items_weights has unknown item %q", ErrInvalidConfig, name)
		}
		if weight < 0 {
			return fmt.Errorf("%w: found_items_weights[%q] is negative", ErrInvalidConfig, name)
		}
		total += weight
	}
	if total <= 0 {
		return fmt.Errorf("%w: found_items_weights has no positive weight", ErrInvalidConfig)
	}
	return nil
}

func validateWeights(key string, weights ...int) error {
	total := 0
	for _, w := range weights {
		if w < 0 {
			return fmt.Errorf("%w: %s has a negative weight", ErrInvalidConfig, key)
		}
		total += w
	}
	if total <= 0 {
		return fmt.Errorf("%w: %s has no positive weight", ErrInvalidConfig, key)
	}
	return nil
}
