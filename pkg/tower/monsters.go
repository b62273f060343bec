package tower

import "fmt"

// GenerateMonster creates a monster for the given floor by picking a
// weighted entry from the floor's spawn table. The spawn level is raised by
// levelIncrease, capped at the max level.
func GenerateMonster(cfg *Config, rng RNG, floor, levelIncrease int) (*Unit, error) {
	if floor < 0 || floor >= len(cfg.Floors) {
		return nil, fmt.Errorf("no floor at index %d", floor)
	}
	entries := cfg.Floors[floor]
	weights := make([]int, len(entries))
	for i, entry := range entries {
		weights[i] = entry.Weight
	}
	index, err := WeightedChoice(rng, weights)
	if err != nil {
		return nil, fmt.Errorf("floor %d: %w", floor, err)
	}
	entry := entries[index]
	traits, ok := cfg.FindTraits(entry.Monster)
	if !ok {
		return nil, fmt.Errorf("floor %d: unknown monster %q", floor, entry.Monster)
	}
	level := entry.Level + levelIncrease
	if max := cfg.Levels.MaxLevel(); level > max {
		level = max
	}
	return NewUnit(traits, level, cfg.Levels), nil
}
