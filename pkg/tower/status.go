package tower

// Statuses is a bitset of conditions currently affecting a unit. Statuses
// are bookkeeping only for now: traps and characters set them and they are
// persisted, but combat does not yet act on them.
type Statuses uint32

const (
	StatusNone       Statuses = 0x0
	StatusPoison     Statuses = 0x1
	StatusSleep      Statuses = 0x2
	StatusParalyze   Statuses = 0x4
	StatusBlind      Statuses = 0x8
	StatusUpheaval   Statuses = 0x10
	StatusCrack      Statuses = 0x20
	StatusStatsBoost Statuses = 0x40
)

// Has reports whether every status in s is set.
func (st Statuses) Has(s Statuses) bool {
	return st&s == s
}
