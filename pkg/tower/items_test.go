package tower

import (
	"errors"
	"strings"
	"testing"
)

func newItemUser(inBattle bool) *mockItemUser {
	return &mockItemUser{
		familiar: NewUnit(testTraits("Dunop"), 1, testLevels),
		enemy:    NewUnit(testTraits("Kilia"), 1, testLevels),
		inBattle: inBattle,
	}
}

func TestPitaRestoresMP(t *testing.T) {
	u := newItemUser(false)
	u.familiar.UseMP(5)
	response, err := Pita{}.Use(u)
	if err != nil {
		t.Fatal(err)
	}
	if response != "You used Pita. Your MP has been restored to max." {
		t.Errorf("response = %q", response)
	}
	if !u.familiar.IsMPAtMax() {
		t.Error("MP not restored")
	}
}

func TestPitaRejectedAtFullMP(t *testing.T) {
	u := newItemUser(false)
	canUse, reason := Pita{}.CanUse(u)
	if canUse {
		t.Fatal("expected CanUse to fail at full MP")
	}
	if reason != "Your MP is already at max." {
		t.Errorf("reason = %q", reason)
	}
	_, err := Pita{}.Use(u)
	var invalid *InvalidOperationError
	if !errors.As(err, &invalid) {
		t.Errorf("Use err = %v, want *InvalidOperationError", err)
	}
}

func TestMedicinalHerbRestoresHP(t *testing.T) {
	u := newItemUser(false)
	u.familiar.DealDamage(5)
	if _, err := (MedicinalHerb{}.Use(u)); err != nil {
		t.Fatal(err)
	}
	if !u.familiar.IsHPAtMax() {
		t.Error("HP not restored")
	}
}

func TestBattleOnlyItemsOutsideBattle(t *testing.T) {
	u := newItemUser(false)
	for _, item := range []Item{Oleem{}, HolyScroll{}, FireBall{}} {
		canUse, reason := item.CanUse(u)
		if canUse {
			t.Errorf("%s usable outside battle", item.Name())
		}
		if reason != "You are not in battle." {
			t.Errorf("%s reason = %q", item.Name(), reason)
		}
	}
}

func TestOleemEndsBattle(t *testing.T) {
	u := newItemUser(true)
	response, err := Oleem{}.Use(u)
	if err != nil {
		t.Fatal(err)
	}
	if !u.battleEnded {
		t.Error("battle not ended")
	}
	if !strings.Contains(response, "Monster disappeared.") {
		t.Errorf("response = %q", response)
	}
}

func TestHolyScrollGrantsInvulnerability(t *testing.T) {
	u := newItemUser(true)
	if _, err := (HolyScroll{}.Use(u)); err != nil {
		t.Fatal(err)
	}
	if u.invulnTurns != 3 {
		t.Errorf("invulnerability turns = %d, want 3", u.invulnTurns)
	}
}

func TestFireBallHalvesEnemyMaxHP(t *testing.T) {
	u := newItemUser(true)
	response, err := FireBall{}.Use(u)
	if err != nil {
		t.Fatal(err)
	}
	if u.enemy.HP != u.enemy.MaxHP-u.enemy.MaxHP/2 {
		t.Errorf("enemy HP = %d after Fire Ball", u.enemy.HP)
	}
	if !strings.Contains(response, "dealt 10 damage") {
		t.Errorf("response = %q", response)
	}
}

func TestWaterBallRestoresBoth(t *testing.T) {
	u := newItemUser(false)
	u.familiar.DealDamage(3)
	u.familiar.UseMP(3)
	if _, err := (WaterBall{}.Use(u)); err != nil {
		t.Fatal(err)
	}
	if !u.familiar.IsHPAtMax() || !u.familiar.IsMPAtMax() {
		t.Error("HP/MP not restored")
	}
}

func TestCureAllHerbHasNothingToCure(t *testing.T) {
	u := newItemUser(false)
	if canUse, _ := (CureAllHerb{}.CanUse(u)); canUse {
		t.Error("Cure-All Herb should report nothing to cure")
	}
}

func TestFindCatalogItem(t *testing.T) {
	tests := []struct {
		query string
		want  string
		found bool
	}{
		{"pita", "Pita", true},
		{"holy", "Holy Scroll", true},
		{"holy scroll", "Holy Scroll", true},
		{"medicinalherb", "Medicinal Herb", true},
		{"fire ball", "Fire Ball", true},
		{"sword", "", false},
	}
	for _, tt := range tests {
		item, found := FindCatalogItem(tt.query)
		if found != tt.found {
			t.Errorf("FindCatalogItem(%q) found = %v, want %v", tt.query, found, tt.found)
			continue
		}
		if found && item.Name() != tt.want {
			t.Errorf("FindCatalogItem(%q) = %s, want %s", tt.query, item.Name(), tt.want)
		}
	}
}
