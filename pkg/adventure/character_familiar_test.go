package adventure

import (
	"strings"
	"testing"
)

func TestCherrlHeals(t *testing.T) {
	m := startedMachine(t, testConfig())
	familiar := m.Context().Familiar()
	familiar.DealDamage(5)
	familiar.UseMP(3)

	responses := m.OnAction(AdminAction(CmdCharacterEvent, "cherrl"))
	if len(responses) != 1 || responses[0] != "You met Cherrl. You are fully healed." {
		t.Fatalf("responses = %q", responses)
	}
	if !familiar.IsHPAtMax() || !familiar.IsMPAtMax() {
		t.Error("familiar not fully restored")
	}
	if m.StateName() != StateNameWaitForEvent {
		t.Errorf("state = %s", m.StateName())
	}
}

func TestCharacterUniformSelection(t *testing.T) {
	m := startedMachine(t, testConfig())
	m.Context().SetRNG(&scriptedRNG{ints: []int{6}})

	responses := m.OnAction(AdminAction(CmdCharacterEvent))
	if len(responses) != 1 || responses[0] != "You met Vivianne. She started dancing." {
		t.Errorf("responses = %q", responses)
	}
}

func TestUnknownCharacter(t *testing.T) {
	m := startedMachine(t, testConfig())
	responses := m.OnAction(AdminAction(CmdCharacterEvent, "gandalf"))
	if len(responses) != 1 || responses[0] != "Unknown character." {
		t.Errorf("responses = %q", responses)
	}
	if m.StateName() != StateNameWaitForEvent {
		t.Errorf("state = %s", m.StateName())
	}
}

func TestGhoshStartsBattle(t *testing.T) {
	m := startedMachine(t, testConfig())
	m.Context().SetRNG(&scriptedRNG{})

	responses := m.OnAction(AdminAction(CmdCharacterEvent, "ghosh"))
	want := []string{
		"You met Ghosh. He wants to fight you!",
		"You encountered LVL 1 Ghosh (20 HP).",
		"Your turn.",
	}
	if len(responses) != len(want) {
		t.Fatalf("responses = %q", responses)
	}
	for i := range want {
		if responses[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, responses[i], want[i])
		}
	}
	if m.StateName() != StateNameBattlePlayerTurn {
		t.Errorf("state = %s", m.StateName())
	}
}

func TestFurItemTrade(t *testing.T) {
	m := startedMachine(t, testConfig())
	// Catalog index 1 is Oleem.
	m.Context().SetRNG(&scriptedRNG{ints: []int{1}})

	responses := m.OnAction(AdminAction(CmdCharacterEvent, "fur"))
	if len(responses) != 2 ||
		responses[0] != "You met Fur. She offers you an item exchange." ||
		responses[1] != "She wants to give you Oleem for one of your items. You have: Pita, Medicinal Herb. Do you accept?" {
		t.Fatalf("responses = %q", responses)
	}

	responses = m.OnAction(UserAction(CmdYes, "pita"))
	if len(responses) != 1 || responses[0] != "You traded Pita for Oleem." {
		t.Errorf("responses = %q", responses)
	}
	if got := m.Context().Inventory().NamesString(); got != "Medicinal Herb, Oleem" {
		t.Errorf("inventory = %q", got)
	}
	if m.StateName() != StateNameWaitForEvent {
		t.Errorf("state = %s", m.StateName())
	}
}

func TestItemTradeRequiresItemArg(t *testing.T) {
	m := startedMachine(t, testConfig())
	m.Context().SetRNG(&scriptedRNG{ints: []int{1}})
	m.OnAction(AdminAction(CmdCharacterEvent, "fur"))

	responses := m.OnAction(UserAction(CmdYes))
	if len(responses) != 1 || responses[0] != "You need to specify item to trade." {
		t.Errorf("responses = %q", responses)
	}
	if m.StateName() != StateNameItemTrade {
		t.Errorf("state = %s, rejected args must preserve it", m.StateName())
	}

	responses = m.OnAction(UserAction(CmdNo))
	if len(responses) != 1 || responses[0] != "You rejected the trade and went away." {
		t.Errorf("responses = %q", responses)
	}
}

func TestSelfiFamiliarTrade(t *testing.T) {
	m := startedMachine(t, testConfig())
	m.Context().SetRNG(&scriptedRNG{ints: []int{0}})

	// The only trade candidate besides the Dunop familiar is Kilia.
	responses := m.OnAction(AdminAction(CmdCharacterEvent, "selfi"))
	if len(responses) != 2 ||
		responses[0] != "You met Selfi. She offers you a familiar trade." ||
		!strings.HasPrefix(responses[1], "She wants to give you Kilia (") ||
		!strings.HasSuffix(responses[1], ") for your Dunop. Do you accept?") {
		t.Fatalf("responses = %q", responses)
	}

	responses = m.OnAction(UserAction(CmdYes))
	if len(responses) != 1 || responses[0] != "You took Kilia with you, leaving sad Dunop behind." {
		t.Errorf("responses = %q", responses)
	}
	familiar := m.Context().Familiar()
	if familiar.Name != "Kilia" || familiar.Level != 1 {
		t.Errorf("familiar = %s LVL %d, want Kilia LVL 1", familiar.Name, familiar.Level)
	}
	if m.StateName() != StateNameWaitForEvent {
		t.Errorf("state = %s", m.StateName())
	}
}

func TestSelfiFamiliarTradeRejected(t *testing.T) {
	m := startedMachine(t, testConfig())
	m.Context().SetRNG(&scriptedRNG{ints: []int{0}})
	m.OnAction(AdminAction(CmdCharacterEvent, "selfi"))

	responses := m.OnAction(UserAction(CmdNo))
	if len(responses) != 1 ||
		responses[0] != "You rejected the trade. As you are walking away you can see Kilia's sad face." {
		t.Errorf("responses = %q", responses)
	}
	if got := m.Context().Familiar().Name; got != "Dunop" {
		t.Errorf("familiar = %s, want Dunop", got)
	}
}

// restInCharacterEvent parks the machine in the encounter state by meeting
// Ghosh without his traits configured.
func restInCharacterEvent(t *testing.T, m *Machine) {
	t.Helper()
	responses := m.OnAction(AdminAction(CmdCharacterEvent, "ghosh"))
	if len(responses) != 1 || responses[0] != "Ghosh traits not configured." {
		t.Fatalf("responses = %q", responses)
	}
	if m.StateName() != StateNameCharacterEvent {
		t.Fatalf("state = %s", m.StateName())
	}
}

func TestEvolveFamiliar(t *testing.T) {
	cfg := testConfig()
	cfg.SpecialUnits.Ghosh = nil
	m := startedMachine(t, cfg)
	restInCharacterEvent(t, m)

	responses := m.OnAction(AdminAction(CmdEvolveFamiliar))
	if len(responses) != 1 ||
		!strings.HasPrefix(responses[0], "Your Dunop evolved into Kilia (") ||
		!strings.HasSuffix(responses[0], ")!") {
		t.Fatalf("responses = %q", responses)
	}
	familiar := m.Context().Familiar()
	if familiar.Name != "Kilia" || familiar.Level != 1 || familiar.Exp != 0 {
		t.Errorf("familiar = %+v", familiar)
	}
	if m.StateName() != StateNameWaitForEvent {
		t.Errorf("state = %s", m.StateName())
	}
}

func TestEvolveFamiliarNoCandidates(t *testing.T) {
	cfg := testConfig()
	cfg.SpecialUnits.Ghosh = nil
	m := NewMachine(cfg, "alice")
	m.Context().SetRNG(&scriptedRNG{})
	m.OnAction(AdminAction(CmdStarted, "Kilia"))
	restInCharacterEvent(t, m)

	responses := m.OnAction(AdminAction(CmdEvolveFamiliar))
	if len(responses) != 1 || responses[0] != "Kilia glows for a moment, but nothing happens." {
		t.Errorf("responses = %q", responses)
	}
	if got := m.Context().Familiar().Name; got != "Kilia" {
		t.Errorf("familiar = %s, want unchanged Kilia", got)
	}
}

func TestFamiliarEventFusion(t *testing.T) {
	m := startedMachine(t, testConfig())

	responses := m.OnAction(AdminAction(CmdFamiliarEvent, "Kilia"))
	if len(responses) != 1 || !strings.HasPrefix(responses[0], "You come across a lonely Kilia (") {
		t.Fatalf("responses = %q", responses)
	}
	if m.StateName() != StateNameFamiliarEvent {
		t.Fatalf("state = %s", m.StateName())
	}

	responses = m.OnAction(UserAction(CmdFuse))
	if len(responses) != 1 || !strings.HasPrefix(responses[0], "Fusion of Dunop and Kilia results in Dunop") {
		t.Fatalf("responses = %q", responses)
	}
	familiar := m.Context().Familiar()
	// Half of Kilia's 18/12/8/6/12 on top of Dunop's own stats.
	if familiar.MaxHP != 23 || familiar.MaxMP != 12 || familiar.Attack != 34 ||
		familiar.Defense != 7 || familiar.Luck != 16 {
		t.Errorf("fused stats = %+v", familiar)
	}
	if familiar.HP != familiar.MaxHP || familiar.MP != familiar.MaxMP {
		t.Error("fusion should refill HP and MP")
	}
	if familiar.Spell == nil || familiar.Spell.Traits.Name != "Brid" {
		t.Errorf("fused spell = %+v, want adopted Brid", familiar.Spell)
	}
	if m.StateName() != StateNameWaitForEvent {
		t.Errorf("state = %s", m.StateName())
	}
}

func TestFamiliarEventReplace(t *testing.T) {
	m := startedMachine(t, testConfig())
	m.OnAction(AdminAction(CmdFamiliarEvent, "Kilia"))

	responses := m.OnAction(UserAction(CmdReplace))
	if len(responses) != 1 || responses[0] != "You took Kilia with you, leaving sad Dunop behind." {
		t.Errorf("responses = %q", responses)
	}
	if got := m.Context().Familiar().Name; got != "Kilia" {
		t.Errorf("familiar = %s, want Kilia", got)
	}
}

func TestFamiliarEventIgnore(t *testing.T) {
	m := startedMachine(t, testConfig())
	m.OnAction(AdminAction(CmdFamiliarEvent, "Kilia"))

	responses := m.OnAction(UserAction(CmdIgnore))
	if len(responses) != 1 || responses[0] != "As you are walking away you can see Kilia's sad face." {
		t.Errorf("responses = %q", responses)
	}
	if got := m.Context().Familiar().Name; got != "Dunop" {
		t.Errorf("familiar = %s, want Dunop", got)
	}
}

func TestFamiliarEventUnknownMonster(t *testing.T) {
	m := startedMachine(t, testConfig())
	responses := m.OnAction(AdminAction(CmdFamiliarEvent, "Golem"))
	if len(responses) != 1 || responses[0] != `Unknown monster "Golem".` {
		t.Errorf("responses = %q", responses)
	}
	if m.StateName() != StateNameWaitForEvent {
		t.Errorf("state = %s", m.StateName())
	}
}
