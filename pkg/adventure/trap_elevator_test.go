package adventure

import (
	"testing"

	"github.com/askorupa/adbot/pkg/tower"
)

func TestPoisonTrap(t *testing.T) {
	m := startedMachine(t, testConfig())

	// 14 HP, poison drains a fifth.
	responses := m.OnAction(AdminAction(CmdTrapEvent, "poison"))
	if len(responses) != 1 || responses[0] != "You stepped on Poison trap. You lose 2 HP." {
		t.Fatalf("responses = %q", responses)
	}
	if got := m.Context().Familiar().HP; got != 12 {
		t.Errorf("familiar HP = %d, want 12", got)
	}
	if m.StateName() != StateNameWaitForEvent {
		t.Errorf("state = %s", m.StateName())
	}
}

func TestPoisonTrapNeverKills(t *testing.T) {
	m := startedMachine(t, testConfig())
	familiar := m.Context().Familiar()
	familiar.DealDamage(familiar.HP - 1)

	m.OnAction(AdminAction(CmdTrapEvent, "poison"))
	if familiar.HP < 1 {
		t.Errorf("familiar HP = %d, poison must leave at least 1", familiar.HP)
	}
}

func TestGoUpTrap(t *testing.T) {
	m := startedMachine(t, testConfig())

	responses := m.OnAction(AdminAction(CmdTrapEvent, "go", "up"))
	if len(responses) != 2 ||
		responses[0] != "You stepped on Go up trap. Giant spring shoots you up to the next floor." ||
		responses[1] != "You entered 2F." {
		t.Fatalf("responses = %q", responses)
	}
	if got := m.Context().Floor(); got != 1 {
		t.Errorf("floor = %d, want 1", got)
	}
	if m.StateName() != StateNameWaitForEvent {
		t.Errorf("state = %s", m.StateName())
	}
}

func TestTrapUniformSelection(t *testing.T) {
	m := startedMachine(t, testConfig())
	m.Context().SetRNG(&scriptedRNG{ints: []int{2}})

	responses := m.OnAction(AdminAction(CmdTrapEvent))
	if len(responses) != 1 || responses[0] != "You stepped on Upheaval trap. Suddenly ground raises." {
		t.Fatalf("responses = %q", responses)
	}
	if !m.Context().Familiar().HasStatus(tower.StatusUpheaval) {
		t.Error("Upheaval status not applied")
	}
}

func TestUnknownTrap(t *testing.T) {
	m := startedMachine(t, testConfig())
	responses := m.OnAction(AdminAction(CmdTrapEvent, "pitfall"))
	if len(responses) != 1 || responses[0] != "Unknown trap." {
		t.Errorf("responses = %q", responses)
	}
	if m.StateName() != StateNameWaitForEvent {
		t.Errorf("state = %s", m.StateName())
	}
}

func TestElevatorDeclined(t *testing.T) {
	m := startedMachine(t, testConfig())

	responses := m.OnAction(AdminAction(CmdElevatorEvent))
	if len(responses) != 1 ||
		responses[0] != "You found an elevator. You are currently on 1F. Do you want to go to the next floor?" {
		t.Fatalf("responses = %q", responses)
	}

	responses = m.OnAction(UserAction(CmdNo))
	if len(responses) != 1 || responses[0] != "You omit elevator and stay on 1F." {
		t.Errorf("responses = %q", responses)
	}
	if got := m.Context().Floor(); got != 0 {
		t.Errorf("floor = %d, want 0", got)
	}
	if m.StateName() != StateNameWaitForEvent {
		t.Errorf("state = %s", m.StateName())
	}
}

func TestElevatorRide(t *testing.T) {
	m := startedMachine(t, testConfig())
	m.OnAction(AdminAction(CmdElevatorEvent))

	responses := m.OnAction(UserAction(CmdYes))
	if len(responses) != 1 || responses[0] != "You entered 2F." {
		t.Errorf("responses = %q", responses)
	}
	if got := m.Context().Floor(); got != 1 {
		t.Errorf("floor = %d, want 1", got)
	}
	if m.StateName() != StateNameWaitForEvent {
		t.Errorf("state = %s", m.StateName())
	}
}

func TestElevatorConquersTower(t *testing.T) {
	cfg := testConfig()
	cfg.Floors = cfg.Floors[:2]
	m := startedMachine(t, cfg)

	m.OnAction(AdminAction(CmdElevatorEvent))
	responses := m.OnAction(UserAction(CmdYes))
	lines := dropLineBreaks(responses)
	if len(lines) != 2 ||
		lines[0] != "You entered 2F." ||
		lines[1] != "You have conquered the Tower! Congratulations! You receive 300 channel points." {
		t.Fatalf("responses = %q", responses)
	}
	if m.IsStarted() {
		t.Error("conquering the tower should reset the adventure")
	}
}
