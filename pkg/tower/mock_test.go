package tower

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

// mockItemUser is a hand-rolled ItemUser recording item side effects.
type mockItemUser struct {
	familiar    *Unit
	inBattle    bool
	enemy       *Unit
	battleEnded bool
	invulnTurns int
}

func (m *mockItemUser) Familiar() *Unit              { return m.familiar }
func (m *mockItemUser) IsInBattle() bool             { return m.inBattle }
func (m *mockItemUser) EnemyUnit() *Unit             { return m.enemy }
func (m *mockItemUser) EndBattle()                   { m.battleEnded = true }
func (m *mockItemUser) SetInvulnerability(turns int) { m.invulnTurns = turns }

// testTraits builds a unit blueprint with round numbers so expected stats
// are easy to derive by hand.
func testTraits(name string) *UnitTraits {
	return &UnitTraits{
		Name:           name,
		BaseHP:         20,
		HPGrowth:       4,
		BaseMP:         10,
		MPGrowth:       2,
		BaseAttack:     8,
		AttackGrowth:   2,
		BaseDefense:    6,
		DefenseGrowth:  1.5,
		BaseLuck:       10,
		LuckGrowth:     1,
		BaseExpGiven:   5,
		ExpGivenGrowth: 2.5,
		NativeGenus:    GenusFire,
	}
}

// testLevels supports levels 1 through 5.
var testLevels = Levels{ExpPerLevel: []int{10, 30, 60, 100}}
