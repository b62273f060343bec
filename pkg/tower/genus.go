package tower

import "fmt"

// Genus is a unit's elemental type. It participates in spell damage
// advantage and gates spell level-ups.
type Genus string

const (
	GenusEmpty       Genus = "None"
	GenusFire        Genus = "Fire"
	GenusWater       Genus = "Water"
	GenusWind        Genus = "Wind"
	GenusEarth       Genus = "Earth"
	GenusElectricity Genus = "Electricity"
	GenusIce         Genus = "Ice"
)

// allGenera lists every valid genus, used for config parsing.
var allGenera = []Genus{
	GenusEmpty, GenusFire, GenusWater, GenusWind, GenusEarth,
	GenusElectricity, GenusIce,
}

// ParseGenus resolves a genus by its config name.
func ParseGenus(name string) (Genus, error) {
	for _, g := range allGenera {
		if string(g) == name {
			return g, nil
		}
	}
	return GenusEmpty, fmt.Errorf("unknown genus %q", name)
}

// genusAdvantages maps attacker genus to the defender genera it is strong
// against: the Fire>Wind>Earth>Water>Fire wheel plus the Electricity and
// Ice entries.
var genusAdvantages = map[Genus][]Genus{
	GenusFire:        {GenusWind},
	GenusWind:        {GenusEarth},
	GenusEarth:       {GenusWater},
	GenusWater:       {GenusFire},
	GenusElectricity: {GenusWater},
	GenusIce:         {GenusEarth},
}

const (
	genusAdvantageMultiplier    = 1.5
	genusDisadvantageMultiplier = 0.75
)

// GenusMultiplier returns the spell damage multiplier for an attack of
// genus attacker against a defender of genus defender.
func GenusMultiplier(attacker, defender Genus) float64 {
	if hasGenusAdvantage(attacker, defender) {
		return genusAdvantageMultiplier
	}
	if hasGenusAdvantage(defender, attacker) {
		return genusDisadvantageMultiplier
	}
	return 1.0
}

func hasGenusAdvantage(attacker, defender Genus) bool {
	for _, g := range genusAdvantages[attacker] {
		if g == defender {
			return true
		}
	}
	return false
}
