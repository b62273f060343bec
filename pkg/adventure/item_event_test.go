package adventure

import (
	"testing"

	"github.com/askorupa/adbot/pkg/tower"
)

func TestItemEventPickUp(t *testing.T) {
	m := startedMachine(t, testConfig())

	responses := m.OnAction(AdminAction(CmdItemEvent, "oleem"))
	if len(responses) != 1 || responses[0] != "You come across Oleem. Do you want to pick it up?" {
		t.Fatalf("responses = %q", responses)
	}
	if m.StateName() != StateNameItemEvent {
		t.Fatalf("state = %s", m.StateName())
	}

	responses = m.OnAction(UserAction(CmdYes))
	if len(responses) != 1 || responses[0] != "You picked up Oleem." {
		t.Errorf("responses = %q", responses)
	}
	if _, _, found := m.Context().Inventory().FindItem("oleem"); !found {
		t.Error("Oleem not stored")
	}
	if m.StateName() != StateNameWaitForEvent {
		t.Errorf("state = %s, want %s", m.StateName(), StateNameWaitForEvent)
	}
}

func TestItemEventDeclined(t *testing.T) {
	m := startedMachine(t, testConfig())
	m.OnAction(AdminAction(CmdItemEvent, "oleem"))

	responses := m.OnAction(UserAction(CmdNo))
	if len(responses) != 0 {
		t.Errorf("responses = %q", responses)
	}
	if _, _, found := m.Context().Inventory().FindItem("oleem"); found {
		t.Error("declined item ended up in the inventory")
	}
	if m.StateName() != StateNameWaitForEvent {
		t.Errorf("state = %s", m.StateName())
	}
}

// fillInventory tops the inventory up with Pitas.
func fillInventory(t *testing.T, inventory *tower.Inventory) {
	t.Helper()
	for !inventory.IsFull() {
		if err := inventory.AddItem(tower.Pita{}); err != nil {
			t.Fatal(err)
		}
	}
}

func TestItemEventFullInventoryDrop(t *testing.T) {
	m := startedMachine(t, testConfig())
	fillInventory(t, m.Context().Inventory())

	m.OnAction(AdminAction(CmdItemEvent, "oleem"))
	responses := m.OnAction(UserAction(CmdYes))
	if len(responses) != 1 ||
		responses[0] != "Your inventory is full. You need to drop one of your current items first. You have: "+
			m.Context().Inventory().NamesString()+"." {
		t.Fatalf("responses = %q", responses)
	}
	if m.StateName() != StateNameItemPickUp {
		t.Fatalf("state = %s", m.StateName())
	}

	responses = m.OnAction(UserAction(CmdDropItem, "pita"))
	if len(responses) != 1 || responses[0] != "You dropped Pita and picked up Oleem." {
		t.Errorf("responses = %q", responses)
	}
	if _, _, found := m.Context().Inventory().FindItem("oleem"); !found {
		t.Error("Oleem not stored")
	}
	if !m.Context().Inventory().IsFull() {
		t.Error("drop and pick up should keep the inventory full")
	}
	if m.StateName() != StateNameWaitForEvent {
		t.Errorf("state = %s", m.StateName())
	}
}

func TestItemEventFullInventoryIgnore(t *testing.T) {
	m := startedMachine(t, testConfig())
	fillInventory(t, m.Context().Inventory())

	m.OnAction(AdminAction(CmdItemEvent, "oleem"))
	m.OnAction(UserAction(CmdYes))

	responses := m.OnAction(UserAction(CmdIgnore))
	if len(responses) != 1 || responses[0] != "You left Oleem behind and went away." {
		t.Errorf("responses = %q", responses)
	}
	if _, _, found := m.Context().Inventory().FindItem("oleem"); found {
		t.Error("ignored item ended up in the inventory")
	}
	if m.StateName() != StateNameWaitForEvent {
		t.Errorf("state = %s", m.StateName())
	}
}

func TestItemEventDropUnknownItem(t *testing.T) {
	m := startedMachine(t, testConfig())
	fillInventory(t, m.Context().Inventory())
	m.OnAction(AdminAction(CmdItemEvent, "oleem"))
	m.OnAction(UserAction(CmdYes))

	responses := m.OnAction(UserAction(CmdDropItem, "sword"))
	if len(responses) != 1 || responses[0] != `You do not have "sword" in your inventory.` {
		t.Errorf("responses = %q", responses)
	}
	if m.StateName() != StateNameItemPickUp {
		t.Errorf("state = %s, rejected args must preserve it", m.StateName())
	}

	responses = m.OnAction(UserAction(CmdDropItem))
	if len(responses) != 1 || responses[0] != "You need to specify item to drop." {
		t.Errorf("responses = %q", responses)
	}
}

func TestItemEventUnknownArg(t *testing.T) {
	m := startedMachine(t, testConfig())
	responses := m.OnAction(AdminAction(CmdItemEvent, "sword"))
	if len(responses) != 1 || responses[0] != "Unknown item." {
		t.Errorf("responses = %q", responses)
	}
	if m.StateName() != StateNameWaitForEvent {
		t.Errorf("state = %s", m.StateName())
	}
}

func TestItemEventWeightedSelection(t *testing.T) {
	m := startedMachine(t, testConfig())
	// Only Pita carries weight, so any draw lands on it.
	m.Context().SetRNG(&scriptedRNG{ints: []int{0}})
	responses := m.OnAction(AdminAction(CmdItemEvent))
	if len(responses) != 1 || responses[0] != "You come across Pita. Do you want to pick it up?" {
		t.Errorf("responses = %q", responses)
	}
}
