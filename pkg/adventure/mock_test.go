package adventure

import (
	"testing"
	"time"

	"github.com/askorupa/adbot/pkg/tower"
)

// scriptedRNG replays a fixed sequence of values. Exhausted sequences
// return zero, which keeps accidental extra draws visible in tests.
type scriptedRNG struct {
	floats []float64
	ints   []int
}

func (r *scriptedRNG) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRNG) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

// testConfig builds a three-floor tower with hand-sized numbers. Dunop
// hits for 28 against itself, so same-level battles end in one blow.
func testConfig() *tower.Config {
	dunop := &tower.UnitTraits{
		Name:   "Dunop",
		BaseHP: 14, HPGrowth: 3,
		BaseMP: 6, MPGrowth: 2,
		BaseAttack: 30, AttackGrowth: 2,
		BaseDefense: 4, DefenseGrowth: 1,
		BaseLuck: 10, LuckGrowth: 1,
		BaseExpGiven: 4, ExpGivenGrowth: 2,
		NativeGenus: tower.GenusFire,
	}
	kiliaSpell, err := tower.ParseSpell("Brid")
	if err != nil {
		panic(err)
	}
	kilia := &tower.UnitTraits{
		Name:   "Kilia",
		BaseHP: 18, HPGrowth: 3,
		BaseMP: 12, MPGrowth: 2,
		BaseAttack: 8, AttackGrowth: 2,
		BaseDefense: 6, DefenseGrowth: 1,
		BaseLuck: 12, LuckGrowth: 1,
		BaseExpGiven: 6, ExpGivenGrowth: 2,
		NativeGenus: tower.GenusFire,
		NativeSpell: kiliaSpell,
		IsEvolved:   true,
	}
	ghosh := &tower.UnitTraits{
		Name:   "Ghosh",
		BaseHP: 20, HPGrowth: 4,
		BaseMP: 8, MPGrowth: 2,
		BaseAttack: 9, AttackGrowth: 2,
		BaseDefense: 6, DefenseGrowth: 1,
		BaseLuck: 12, LuckGrowth: 1,
		BaseExpGiven: 8, ExpGivenGrowth: 3,
		NativeGenus: tower.GenusFire,
	}
	return &tower.Config{
		Probabilities: tower.Probabilities{Flee: 0.5},
		Levels:        tower.Levels{ExpPerLevel: []int{10, 30, 60, 100}},
		MonstersTraits: map[string]*tower.UnitTraits{
			"Dunop": dunop,
			"Kilia": kilia,
		},
		SpecialUnits: tower.SpecialUnits{Ghosh: ghosh},
		Floors: []tower.Floor{
			{{Monster: "Dunop", Level: 1, Weight: 1}},
			{{Monster: "Dunop", Level: 2, Weight: 1}},
			{{Monster: "Dunop", Level: 3, Weight: 1}},
		},
		Timers: tower.Timers{
			EventInterval: 10 * time.Second,
			EventPenalty:  5 * time.Minute,
		},
		PlayerSelectionWeights: tower.PlayerSelectionWeights{WithPenalty: 10, WithoutPenalty: 1},
		EventsWeights:          tower.EventsWeights{Battle: 1},
		FoundItemsWeights:      map[string]int{"Pita": 1},
	}
}

// startedMachine runs the start chain with a Dunop familiar and returns a
// machine resting in WaitForEvent.
func startedMachine(t *testing.T, cfg *tower.Config) *Machine {
	t.Helper()
	m := NewMachine(cfg, "alice")
	m.Context().SetRNG(&scriptedRNG{})
	m.OnAction(AdminAction(CmdStarted, "Dunop"))
	if got := m.StateName(); got != StateNameWaitForEvent {
		t.Fatalf("state after start = %s, want %s", got, StateNameWaitForEvent)
	}
	return m
}

// dropLineBreaks filters the response stream down to visible lines.
func dropLineBreaks(responses []string) []string {
	var out []string
	for _, r := range responses {
		if r != ResponseLineBreak {
			out = append(out, r)
		}
	}
	return out
}
