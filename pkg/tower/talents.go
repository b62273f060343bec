package tower

import (
	"fmt"
	"strings"
)

// Talents is a bitset of inborn unit talents. The flag values follow the
// classic monster data layout, hence the gaps.
type Talents uint32

const (
	TalentsEmpty           Talents = 0x0
	Quick                  Talents = 0x1
	HpIncreased            Talents = 0x2
	MpIncreased            Talents = 0x4
	StrengthIncreased      Talents = 0x8
	Hard                   Talents = 0x10
	GrowthPromoted         Talents = 0x20
	MagicAttackIncreased   Talents = 0x80
	MpConsumptionDecreased Talents = 0x100
	ElectricShock          Talents = 0x8000
	DoesNotSurviveFusion   Talents = 0x400000
	SurvivesFusion         Talents = 0x800000
)

var talentNames = map[string]Talents{
	"Quick":                  Quick,
	"HpIncreased":            HpIncreased,
	"MpIncreased":            MpIncreased,
	"StrengthIncreased":      StrengthIncreased,
	"Hard":                   Hard,
	"GrowthPromoted":         GrowthPromoted,
	"MagicAttackIncreased":   MagicAttackIncreased,
	"MpConsumptionDecreased": MpConsumptionDecreased,
	"ElectricShock":          ElectricShock,
	"DoesNotSurviveFusion":   DoesNotSurviveFusion,
	"SurvivesFusion":         SurvivesFusion,
}

// Has reports whether every talent in t is set.
func (ts Talents) Has(t Talents) bool {
	return ts&t == t
}

// ParseTalents parses a comma-separated talent list as it appears in the
// game config, e.g. "Quick,HpIncreased".
func ParseTalents(s string) (Talents, error) {
	if s == "" {
		return TalentsEmpty, nil
	}
	talents := TalentsEmpty
	for _, name := range strings.Split(s, ",") {
		t, ok := talentNames[name]
		if !ok {
			return TalentsEmpty, fmt.Errorf("unknown talent %q", name)
		}
		talents |= t
	}
	return talents, nil
}
