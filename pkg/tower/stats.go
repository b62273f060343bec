package tower

import "math"

// StatsCalculator derives a unit's stats at a given level from its traits.
// Every stat grows linearly: stat(L) = base + growth*(L-1), rounded.
type StatsCalculator struct {
	traits *UnitTraits
}

// NewStatsCalculator creates a StatsCalculator for the given traits.
func NewStatsCalculator(traits *UnitTraits) StatsCalculator {
	return StatsCalculator{traits: traits}
}

func statAtLevel(base int, growth float64, level int) int {
	return int(math.Round(float64(base) + growth*float64(level-1)))
}

func (c StatsCalculator) HP(level int) int {
	return statAtLevel(c.traits.BaseHP, c.traits.HPGrowth, level)
}

func (c StatsCalculator) MP(level int) int {
	return statAtLevel(c.traits.BaseMP, c.traits.MPGrowth, level)
}

func (c StatsCalculator) Attack(level int) int {
	return statAtLevel(c.traits.BaseAttack, c.traits.AttackGrowth, level)
}

func (c StatsCalculator) Defense(level int) int {
	return statAtLevel(c.traits.BaseDefense, c.traits.DefenseGrowth, level)
}

func (c StatsCalculator) Luck(level int) int {
	return statAtLevel(c.traits.BaseLuck, c.traits.LuckGrowth, level)
}

// GivenExperience returns the EXP a unit of this kind yields when defeated
// at the given level.
func (c StatsCalculator) GivenExperience(level int) int {
	return statAtLevel(c.traits.BaseExpGiven, c.traits.ExpGivenGrowth, level)
}

// HPIncrease returns the HP gained when leveling up to the given level.
func (c StatsCalculator) HPIncrease(level int) int {
	return c.HP(level) - c.HP(level-1)
}

func (c StatsCalculator) MPIncrease(level int) int {
	return c.MP(level) - c.MP(level-1)
}

func (c StatsCalculator) AttackIncrease(level int) int {
	return c.Attack(level) - c.Attack(level-1)
}

func (c StatsCalculator) DefenseIncrease(level int) int {
	return c.Defense(level) - c.Defense(level-1)
}

func (c StatsCalculator) LuckIncrease(level int) int {
	return c.Luck(level) - c.Luck(level-1)
}
