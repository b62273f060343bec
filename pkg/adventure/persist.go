package adventure

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/askorupa/adbot/pkg/tower"
)

// saveVersion is the persisted snapshot format version. Unknown versions
// refuse to load.
const saveVersion = 1

type unitJSON struct {
	Traits   string     `json:"traits"`
	Level    int        `json:"level"`
	MaxHP    int        `json:"max_hp"`
	HP       int        `json:"hp"`
	MaxMP    int        `json:"max_mp"`
	MP       int        `json:"mp"`
	Attack   int        `json:"attack"`
	Defense  int        `json:"defense"`
	Luck     int        `json:"luck"`
	Exp      int        `json:"exp"`
	Talents  uint32     `json:"talents"`
	Statuses uint32     `json:"statuses"`
	Spell    *spellJSON `json:"spell,omitempty"`
}

type spellJSON struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type battleJSON struct {
	Enemy               *unitJSON `json:"enemy"`
	PreparePhaseCounter int       `json:"prepare_phase_counter"`
	HolyScrollCounter   int       `json:"holy_scroll_counter"`
	IsPlayerTurn        bool      `json:"is_player_turn"`
	Finished            bool      `json:"finished"`
}

type contextJSON struct {
	Floor          int         `json:"floor"`
	IsTutorialDone bool        `json:"is_tutorial_done"`
	Familiar       *unitJSON   `json:"familiar,omitempty"`
	Inventory      []string    `json:"inventory"`
	Battle         *battleJSON `json:"battle,omitempty"`
	ItemBuffer     string      `json:"item_buffer,omitempty"`
	UnitBuffer     *unitJSON   `json:"unit_buffer,omitempty"`
}

type stateJSON struct {
	Name string   `json:"name"`
	Args []string `json:"args"`
}

type machineJSON struct {
	Version int         `json:"version"`
	Player  string      `json:"player"`
	Context contextJSON `json:"context"`
	State   stateJSON   `json:"state"`
}

// Save writes the machine snapshot as JSON. The snapshot captures the
// context and the current state's name and raw args; OnEnter effects are
// already reflected in the context, so load does not re-run them.
func (m *Machine) Save(w io.Writer) error {
	snapshot := machineJSON{
		Version: saveVersion,
		Player:  m.player,
		Context: contextToJSON(m.ctx),
		State: stateJSON{
			Name: m.state.Name(),
			Args: m.state.Args(),
		},
	}
	return json.NewEncoder(w).Encode(snapshot)
}

// LoadMachine reads a machine snapshot written by Save.
func LoadMachine(r io.Reader, cfg *tower.Config) (*Machine, error) {
	var snapshot machineJSON
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if snapshot.Version != saveVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", snapshot.Version)
	}
	m := NewMachine(cfg, snapshot.Player)
	if err := contextFromJSON(m.ctx, snapshot.Context, cfg); err != nil {
		return nil, err
	}
	factory, ok := stateFactories[snapshot.State.Name]
	if !ok {
		return nil, fmt.Errorf("unknown state %q", snapshot.State.Name)
	}
	state, err := factory(m.ctx, snapshot.State.Args)
	if err != nil {
		return nil, fmt.Errorf("restore state %q: %w", snapshot.State.Name, err)
	}
	m.state = state
	return m, nil
}

func contextToJSON(ctx *Context) contextJSON {
	out := contextJSON{
		Floor:          ctx.Floor(),
		IsTutorialDone: ctx.IsTutorialDone(),
		Familiar:       unitToJSON(ctx.Familiar()),
		Inventory:      ctx.Inventory().Names(),
		UnitBuffer:     unitToJSON(ctx.BufferedUnit()),
	}
	if battle := ctx.Battle(); battle != nil {
		out.Battle = &battleJSON{
			Enemy:               unitToJSON(battle.Enemy),
			PreparePhaseCounter: battle.PreparePhaseCounter,
			HolyScrollCounter:   battle.HolyScrollCounter,
			IsPlayerTurn:        battle.IsPlayerTurn,
			Finished:            battle.IsFinished(),
		}
	}
	if item := ctx.BufferedItem(); item != nil {
		out.ItemBuffer = item.Name()
	}
	return out
}

func contextFromJSON(ctx *Context, in contextJSON, cfg *tower.Config) error {
	ctx.SetFloor(in.Floor)
	if in.IsTutorialDone {
		ctx.SetTutorialDone()
	}
	familiar, err := unitFromJSON(in.Familiar, cfg)
	if err != nil {
		return fmt.Errorf("restore familiar: %w", err)
	}
	ctx.SetFamiliar(familiar)

	ctx.Inventory().Clear()
	for _, name := range in.Inventory {
		item, found := tower.FindCatalogItem(name)
		if !found {
			return fmt.Errorf("unknown inventory item %q", name)
		}
		if err := ctx.Inventory().AddItem(item); err != nil {
			return err
		}
	}

	if in.Battle != nil {
		enemy, err := unitFromJSON(in.Battle.Enemy, cfg)
		if err != nil {
			return fmt.Errorf("restore enemy: %w", err)
		}
		battle, err := ctx.StartBattle(enemy)
		if err != nil {
			return err
		}
		battle.PreparePhaseCounter = in.Battle.PreparePhaseCounter
		battle.HolyScrollCounter = in.Battle.HolyScrollCounter
		battle.IsPlayerTurn = in.Battle.IsPlayerTurn
		if in.Battle.Finished {
			battle.Finish()
		}
	}

	if in.ItemBuffer != "" {
		item, found := tower.FindCatalogItem(in.ItemBuffer)
		if !found {
			return fmt.Errorf("unknown buffered item %q", in.ItemBuffer)
		}
		if err := ctx.BufferItem(item); err != nil {
			return err
		}
	}

	unit, err := unitFromJSON(in.UnitBuffer, cfg)
	if err != nil {
		return fmt.Errorf("restore buffered unit: %w", err)
	}
	if unit != nil {
		if err := ctx.BufferUnit(unit); err != nil {
			return err
		}
	}
	return nil
}

func unitToJSON(u *tower.Unit) *unitJSON {
	if u == nil {
		return nil
	}
	out := &unitJSON{
		Traits:   u.Traits.Name,
		Level:    u.Level,
		MaxHP:    u.MaxHP,
		HP:       u.HP,
		MaxMP:    u.MaxMP,
		MP:       u.MP,
		Attack:   u.Attack,
		Defense:  u.Defense,
		Luck:     u.Luck,
		Exp:      u.Exp,
		Talents:  uint32(u.Talents),
		Statuses: uint32(u.Statuses),
	}
	if u.Spell != nil {
		out.Spell = &spellJSON{Name: u.Spell.Traits.Name, Level: u.Spell.Level}
	}
	return out
}

// unitFromJSON rebuilds a unit. Stats are restored verbatim rather than
// recalculated because fusion pushes them past the per-level formula.
func unitFromJSON(in *unitJSON, cfg *tower.Config) (*tower.Unit, error) {
	if in == nil {
		return nil, nil
	}
	traits, found := cfg.FindTraits(in.Traits)
	if !found {
		return nil, fmt.Errorf("unknown unit traits %q", in.Traits)
	}
	u := tower.NewUnit(traits, in.Level, cfg.Levels)
	u.MaxHP = in.MaxHP
	u.HP = in.HP
	u.MaxMP = in.MaxMP
	u.MP = in.MP
	u.Attack = in.Attack
	u.Defense = in.Defense
	u.Luck = in.Luck
	u.Exp = in.Exp
	u.Talents = tower.Talents(in.Talents)
	u.Statuses = tower.Statuses(in.Statuses)
	u.Spell = nil
	if in.Spell != nil {
		spellTraits, err := tower.ParseSpell(in.Spell.Name)
		if err != nil {
			return nil, err
		}
		u.Spell = &tower.Spell{Traits: spellTraits, Level: in.Spell.Level}
	}
	return u, nil
}
