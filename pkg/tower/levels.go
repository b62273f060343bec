package tower

// Levels wraps the experience-per-level table. The table holds the total
// EXP required to reach each level starting from level 2, so a table of N
// entries supports levels 1 through N+1.
type Levels struct {
	ExpPerLevel []int
}

// MaxLevel returns the highest attainable level.
func (l Levels) MaxLevel() int {
	return len(l.ExpPerLevel) + 1
}

// ExpForLevel returns the total EXP required to hold the given level.
// Level 1 requires none.
func (l Levels) ExpForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return l.ExpPerLevel[level-2]
}
