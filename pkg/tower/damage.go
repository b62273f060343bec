package tower

// DamageRoll is the random quality of a physical attack.
type DamageRoll int

const (
	RollLow DamageRoll = iota
	RollNormal
	RollHigh
)

// damageRollWeights weights the roll selection 1:2:1 (Low:Normal:High).
var damageRollWeights = []int{1, 2, 1}

// SelectDamageRoll samples a damage roll with the standard weights.
func SelectDamageRoll(rng RNG) DamageRoll {
	index, err := WeightedChoice(rng, damageRollWeights)
	if err != nil {
		return RollNormal
	}
	return DamageRoll(index)
}

func (r DamageRoll) factor() float64 {
	switch r {
	case RollLow:
		return 0.875
	case RollHigh:
		return 1.125
	default:
		return 1.0
	}
}

// RelativeHeight is the attacker's position relative to the defender.
type RelativeHeight int

const (
	HeightLower RelativeHeight = iota
	HeightSame
	HeightHigher
)

func (h RelativeHeight) factor() float64 {
	switch h {
	case HeightLower:
		return 0.875
	case HeightHigher:
		return 1.125
	default:
		return 1.0
	}
}

// PhysicalDamage computes physical attack damage. A critical hit ignores
// defense and doubles the result. The result is never below 1.
func PhysicalDamage(attacker, defender *Unit, roll DamageRoll, height RelativeHeight, critical bool) int {
	base := attacker.Attack - defender.Defense/2
	if critical {
		base = attacker.Attack
	}
	if base < 1 {
		base = 1
	}
	damage := float64(base) * roll.factor() * height.factor()
	if critical {
		damage *= 2
	}
	result := int(damage)
	if result < 1 {
		result = 1
	}
	return result
}

// SpellDamage computes spell attack damage with the genus advantage
// multiplier applied. The result is never below 1.
func SpellDamage(attacker, defender *Unit) int {
	spell := attacker.Spell
	base := spell.Traits.BaseDamage*spell.Level + attacker.Attack/2 - defender.Defense/2
	damage := int(float64(base) * GenusMultiplier(spell.Traits.Genus, defender.Genus))
	if damage < 1 {
		damage = 1
	}
	return damage
}

// HitChance returns the probability that a physical attack lands. A unit
// with no luck always misses.
func HitChance(attacker *Unit) float64 {
	if attacker.Luck <= 0 {
		return 0
	}
	return float64(attacker.Luck-1) / float64(attacker.Luck)
}

// CritChance returns the probability that a physical attack is critical.
func CritChance(attacker *Unit) float64 {
	return float64(attacker.Luck/64+1) / 128
}
