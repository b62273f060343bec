package tower

// UnitTraits is the immutable blueprint of a unit kind. Instances are
// shared; live units reference traits by name against the config.
type UnitTraits struct {
	Name           string
	BaseHP         int
	HPGrowth       float64
	BaseMP         int
	MPGrowth       float64
	BaseAttack     int
	AttackGrowth   float64
	BaseDefense    int
	DefenseGrowth  float64
	BaseLuck       int
	LuckGrowth     float64
	BaseExpGiven   int
	ExpGivenGrowth float64
	NativeGenus    Genus
	NativeSpell    *SpellTraits
	Talents        Talents
	IsEvolved      bool
}
