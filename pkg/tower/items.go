package tower

import (
	"fmt"
	"strings"
)

// ItemUser is the slice of player state items act on. IsInBattle means
// active combat: it is false while the enemy is still approaching, which
// keeps battle-only items unusable during the prepare phase.
type ItemUser interface {
	Familiar() *Unit
	IsInBattle() bool
	EnemyUnit() *Unit
	EndBattle()
	SetInvulnerability(turns int)
}

// Item is a usable inventory entry. CanUse reports whether the item can be
// used right now and, if not, the user-visible reason.
type Item interface {
	Name() string
	CanUse(u ItemUser) (bool, string)
	Use(u ItemUser) (string, error)
}

// useItem runs the shared use flow: re-check CanUse, apply the effect and
// build the "You used ..." line.
func useItem(i Item, u ItemUser, effect func(ItemUser) string) (string, error) {
	canUse, reason := i.CanUse(u)
	if !canUse {
		return "", InvalidOperationf("Cannot use %s. %s", i.Name(), reason)
	}
	return fmt.Sprintf("You used %s. %s", i.Name(), effect(u)), nil
}

// battleOnly is the CanUse gate shared by items usable only in combat.
func battleOnly(u ItemUser) (bool, string) {
	if !u.IsInBattle() {
		return false, "You are not in battle."
	}
	return true, ""
}

// Pita restores MP to max.
type Pita struct{}

func (Pita) Name() string { return "Pita" }

func (Pita) CanUse(u ItemUser) (bool, string) {
	if u.Familiar().IsMPAtMax() {
		return false, "Your MP is already at max."
	}
	return true, ""
}

func (p Pita) Use(u ItemUser) (string, error) {
	return useItem(p, u, func(u ItemUser) string {
		u.Familiar().RestoreMP()
		return "Your MP has been restored to max."
	})
}

// MedicinalHerb restores HP to max.
type MedicinalHerb struct{}

func (MedicinalHerb) Name() string { return "Medicinal Herb" }

func (MedicinalHerb) CanUse(u ItemUser) (bool, string) {
	if u.Familiar().IsHPAtMax() {
		return false, "Your HP is already at max."
	}
	return true, ""
}

func (m MedicinalHerb) Use(u ItemUser) (string, error) {
	return useItem(m, u, func(u ItemUser) string {
		u.Familiar().RestoreHP()
		return "Your HP has been restored to max."
	})
}

// CureAllHerb clears negative statuses. Status effects do not yet gate
// anything, so it always reports nothing to cure.
type CureAllHerb struct{}

func (CureAllHerb) Name() string { return "Cure-All Herb" }

func (CureAllHerb) CanUse(u ItemUser) (bool, string) {
	return false, "You do not have any negative statuses."
}

func (c CureAllHerb) Use(u ItemUser) (string, error) {
	return useItem(c, u, func(u ItemUser) string {
		u.Familiar().ClearStatuses()
		return "You no longer have any negative statuses."
	})
}

// Oleem ends the current battle.
type Oleem struct{}

func (Oleem) Name() string { return "Oleem" }

func (Oleem) CanUse(u ItemUser) (bool, string) { return battleOnly(u) }

func (o Oleem) Use(u ItemUser) (string, error) {
	return useItem(o, u, func(u ItemUser) string {
		u.EndBattle()
		return "Monster disappeared."
	})
}

// HolyScroll grants invulnerability for the next turns.
type HolyScroll struct{}

const holyScrollTurns = 3

func (HolyScroll) Name() string { return "Holy Scroll" }

func (HolyScroll) CanUse(u ItemUser) (bool, string) { return battleOnly(u) }

func (h HolyScroll) Use(u ItemUser) (string, error) {
	return useItem(h, u, func(u ItemUser) string {
		u.SetInvulnerability(holyScrollTurns)
		return fmt.Sprintf("You are invulnerable for next %d turns.", holyScrollTurns)
	})
}

// FireBall deals half the enemy's max HP as damage.
type FireBall struct{}

func (FireBall) Name() string { return "Fire Ball" }

func (FireBall) CanUse(u ItemUser) (bool, string) { return battleOnly(u) }

func (f FireBall) Use(u ItemUser) (string, error) {
	return useItem(f, u, func(u ItemUser) string {
		enemy := u.EnemyUnit()
		damage := enemy.MaxHP / 2
		enemy.DealDamage(damage)
		return fmt.Sprintf("Flames of %s dealt %d damage. %s has %d HP left.",
			f.Name(), damage, enemy.Name, enemy.HP)
	})
}

// WaterBall restores both HP and MP.
type WaterBall struct{}

func (WaterBall) Name() string { return "Water Ball" }

func (WaterBall) CanUse(u ItemUser) (bool, string) {
	familiar := u.Familiar()
	if familiar.IsHPAtMax() && familiar.IsMPAtMax() {
		return false, "Your HP and MP is already at max."
	}
	return true, ""
}

func (w WaterBall) Use(u ItemUser) (string, error) {
	return useItem(w, u, func(u ItemUser) string {
		u.Familiar().RestoreHP()
		u.Familiar().RestoreMP()
		return "Your HP and MP and has been restored to max."
	})
}

// AllItems returns one instance of every catalog item.
func AllItems() []Item {
	return []Item{Pita{}, Oleem{}, HolyScroll{}, MedicinalHerb{}, CureAllHerb{}, FireBall{}, WaterBall{}}
}

// NormalizeItemName lowers and strips spaces for prefix matching, so
// "medicinalherb" and "Medicinal Herb" compare equal.
func NormalizeItemName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}

// FindCatalogItem resolves a catalog item by normalized name prefix.
func FindCatalogItem(query string) (Item, bool) {
	normalized := NormalizeItemName(query)
	for _, item := range AllItems() {
		if strings.HasPrefix(NormalizeItemName(item.Name()), normalized) {
			return item, true
		}
	}
	return nil, false
}
