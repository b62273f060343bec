package tower

import (
	"fmt"
	"strings"
)

// Unit is a live entity: the player's familiar, a wild monster, an enemy.
// It references its traits by pointer; traits are immutable and shared,
// while Talents and Spell are copied at creation because fusion mutates
// them per unit.
type Unit struct {
	Traits   *UnitTraits
	Name     string
	Genus    Genus
	Level    int
	MaxHP    int
	HP       int
	MaxMP    int
	MP       int
	Attack   int
	Defense  int
	Luck     int
	Exp      int
	Spell    *Spell
	Talents  Talents
	Statuses Statuses

	levels Levels
}

// NewUnit creates a unit of the given traits at the given level with full
// HP and MP and the EXP floor for that level.
func NewUnit(traits *UnitTraits, level int, levels Levels) *Unit {
	calc := NewStatsCalculator(traits)
	u := &Unit{
		Traits:  traits,
		Name:    traits.Name,
		Genus:   traits.NativeGenus,
		Level:   level,
		MaxHP:   calc.HP(level),
		MaxMP:   calc.MP(level),
		Attack:  calc.Attack(level),
		Defense: calc.Defense(level),
		Luck:    calc.Luck(level),
		Exp:     levels.ExpForLevel(level),
		Talents: traits.Talents,
		levels:  levels,
	}
	u.HP = u.MaxHP
	u.MP = u.MaxMP
	if traits.NativeSpell != nil {
		u.Spell = NewSpell(traits.NativeSpell)
	}
	return u
}

// Levels returns the leveling table the unit was created against.
func (u *Unit) Levels() Levels {
	return u.levels
}

func (u *Unit) IsDead() bool {
	return u.HP <= 0
}

func (u *Unit) IsMaxLevel() bool {
	return u.Level >= u.levels.MaxLevel()
}

func (u *Unit) IsHPAtMax() bool {
	return u.HP >= u.MaxHP
}

func (u *Unit) IsMPAtMax() bool {
	return u.MP >= u.MaxMP
}

// DealDamage reduces HP, clamping at zero.
func (u *Unit) DealDamage(damage int) {
	u.HP -= damage
	if u.HP < 0 {
		u.HP = 0
	}
}

func (u *Unit) RestoreHP() {
	u.HP = u.MaxHP
}

func (u *Unit) RestoreMP() {
	u.MP = u.MaxMP
}

// UseMP consumes MP, clamping at zero.
func (u *Unit) UseMP(amount int) {
	u.MP -= amount
	if u.MP < 0 {
		u.MP = 0
	}
}

func (u *Unit) HasSpell() bool {
	return u.Spell != nil
}

// SpellMPCost returns the MP cost of the unit's spell, halved (minimum 1)
// by the MpConsumptionDecreased talent.
func (u *Unit) SpellMPCost() int {
	cost := u.Spell.Traits.MPCost
	if u.Talents.Has(MpConsumptionDecreased) {
		cost /= 2
		if cost < 1 {
			cost = 1
		}
	}
	return cost
}

func (u *Unit) HasEnoughMPForSpell() bool {
	return u.MP >= u.SpellMPCost()
}

func (u *Unit) SetStatus(s Statuses) {
	u.Statuses |= s
}

func (u *Unit) ClearStatuses() {
	u.Statuses = StatusNone
}

func (u *Unit) HasStatus(s Statuses) bool {
	return u.Statuses.Has(s)
}

// GainExp awards experience (doubled by GrowthPromoted) and levels the
// unit up while its total EXP covers the next threshold. Reports whether
// at least one level was gained.
func (u *Unit) GainExp(exp int) bool {
	if u.Talents.Has(GrowthPromoted) {
		exp *= 2
	}
	u.Exp += exp
	leveledUp := false
	for !u.IsMaxLevel() && u.Exp >= u.levels.ExpForLevel(u.Level+1) {
		u.levelUp()
		leveledUp = true
	}
	return leveledUp
}

// levelUp applies one level's stat increases, doubled by the matching
// talent, and raises current HP/MP by the same amount. The spell levels by
// 1 (2 with MagicAttackIncreased) when its genus matches the unit's, capped
// at the unit level.
func (u *Unit) levelUp() {
	u.Level++
	calc := NewStatsCalculator(u.Traits)

	hpGain := talentBoost(calc.HPIncrease(u.Level), u.Talents, HpIncreased)
	mpGain := talentBoost(calc.MPIncrease(u.Level), u.Talents, MpIncreased)
	u.MaxHP += hpGain
	u.HP += hpGain
	u.MaxMP += mpGain
	u.MP += mpGain
	u.Attack += talentBoost(calc.AttackIncrease(u.Level), u.Talents, StrengthIncreased)
	u.Defense += talentBoost(calc.DefenseIncrease(u.Level), u.Talents, Hard)
	u.Luck += calc.LuckIncrease(u.Level)

	if u.Spell != nil && u.Spell.Traits.Genus == u.Genus {
		gain := 1
		if u.Talents.Has(MagicAttackIncreased) {
			gain = 2
		}
		u.Spell.Level += gain
		if u.Spell.Level > u.Level {
			u.Spell.Level = u.Level
		}
	}
}

func talentBoost(increase int, talents Talents, talent Talents) int {
	if talents.Has(talent) {
		return increase * 2
	}
	return increase
}

// Fuse absorbs another unit: its talents carry over unless it has
// DoesNotSurviveFusion without SurvivesFusion; max HP/MP, attack, defense
// and luck each gain half of the other's value; HP and MP refill; the
// other's spell is adopted when this unit has none.
func (u *Unit) Fuse(other *Unit) {
	if !other.Talents.Has(DoesNotSurviveFusion) || other.Talents.Has(SurvivesFusion) {
		u.Talents |= other.Talents
	}
	u.MaxHP += other.MaxHP / 2
	u.MaxMP += other.MaxMP / 2
	u.Attack += other.Attack / 2
	u.Defense += other.Defense / 2
	u.Luck += other.Luck / 2
	u.RestoreHP()
	u.RestoreMP()
	if u.Spell == nil && other.Spell != nil {
		u.Spell = other.Spell
	}
}

// StatsString renders the unit's stats for chat output.
func (u *Unit) StatsString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "HP: %d/%d, MP: %d/%d, ATK: %d, DEF: %d, LUCK: %d",
		u.HP, u.MaxHP, u.MP, u.MaxMP, u.Attack, u.Defense, u.Luck)
	if u.Spell != nil {
		fmt.Fprintf(&b, ", spell: %s LVL %d", u.Spell.Traits.Name, u.Spell.Level)
	}
	return b.String()
}

// String renders the unit's full description for chat output.
func (u *Unit) String() string {
	return fmt.Sprintf("%s - LVL %d, %s, EXP: %d", u.Name, u.Level, u.StatsString(), u.Exp)
}
