package tower

import "fmt"

// SpellTraits is the immutable blueprint of a spell.
type SpellTraits struct {
	Name       string
	BaseDamage int
	Genus      Genus
	MPCost     int
}

// spellCatalog holds the built-in spells resolvable by name from unit
// config entries.
var spellCatalog = map[string]SpellTraits{
	"Brid":   {Name: "Brid", BaseDamage: 10, Genus: GenusFire, MPCost: 4},
	"Breath": {Name: "Breath", BaseDamage: 16, Genus: GenusFire, MPCost: 7},
	"Sled":   {Name: "Sled", BaseDamage: 8, Genus: GenusFire, MPCost: 3},
	"Rise":   {Name: "Rise", BaseDamage: 19, Genus: GenusFire, MPCost: 9},
	"DeHeal": {Name: "DeHeal", BaseDamage: 10, Genus: GenusWater, MPCost: 5},
}

// ParseSpell resolves spell traits by name.
func ParseSpell(name string) (*SpellTraits, error) {
	traits, ok := spellCatalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown spell name %q", name)
	}
	return &traits, nil
}

// Spell is a live spell held by a unit. Its level grows with the unit when
// their genera match, capped at the unit's level.
type Spell struct {
	Traits *SpellTraits
	Level  int
}

// NewSpell creates a level 1 spell from traits.
func NewSpell(traits *SpellTraits) *Spell {
	return &Spell{Traits: traits, Level: 1}
}
