package tower

import "testing"

func monsterTestConfig() *Config {
	dunop := testTraits("Dunop")
	kilia := testTraits("Kilia")
	return &Config{
		Levels: testLevels,
		MonstersTraits: map[string]*UnitTraits{
			"Dunop": dunop,
			"Kilia": kilia,
		},
		Floors: []Floor{
			{{Monster: "Dunop", Level: 1, Weight: 1}, {Monster: "Kilia", Level: 2, Weight: 3}},
			{{Monster: "Kilia", Level: 4, Weight: 1}},
		},
	}
}

func TestGenerateMonsterPicksWeightedEntry(t *testing.T) {
	cfg := monsterTestConfig()

	// Weights 1:3, Intn(4): roll 0 -> Dunop, rolls 1..3 -> Kilia.
	monster, err := GenerateMonster(cfg, &scriptedRNG{ints: []int{0}}, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if monster.Name != "Dunop" || monster.Level != 1 {
		t.Errorf("got %s LVL %d, want Dunop LVL 1", monster.Name, monster.Level)
	}

	monster, err = GenerateMonster(cfg, &scriptedRNG{ints: []int{2}}, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if monster.Name != "Kilia" || monster.Level != 2 {
		t.Errorf("got %s LVL %d, want Kilia LVL 2", monster.Name, monster.Level)
	}
}

func TestGenerateMonsterLevelIncreaseCapped(t *testing.T) {
	cfg := monsterTestConfig()
	monster, err := GenerateMonster(cfg, &scriptedRNG{}, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	// 4 + 3 exceeds the max level of 5.
	if monster.Level != 5 {
		t.Errorf("level = %d, want 5", monster.Level)
	}
}

func TestGenerateMonsterUnknownFloor(t *testing.T) {
	cfg := monsterTestConfig()
	for _, floor := range []int{-1, 2} {
		if _, err := GenerateMonster(cfg, &scriptedRNG{}, floor, 0); err == nil {
			t.Errorf("floor %d: expected error", floor)
		}
	}
}
