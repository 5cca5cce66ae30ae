package domain

import "fmt"

// NoMaxXP marks the final level, whose XP range is unbounded above.
const NoMaxXP = -1

// LevelDefinition describes one tier of the level table. MinXP is
// inclusive and MaxXP is exclusive; the final level has MaxXP == NoMaxXP.
type LevelDefinition struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	Badge string `json:"badge"`
	MinXP int    `json:"min_xp"`
	MaxXP int    `json:"max_xp"`
}

// Unbounded reports whether this is the final level with no upper bound.
func (d LevelDefinition) Unbounded() bool {
	return d.MaxXP == NoMaxXP
}

// LevelTable is a static, ordered, contiguous mapping from XP thresholds
// to level metadata. It is pure data with no mutable state.
type LevelTable struct {
	levels []LevelDefinition
}

// NewLevelTable validates and wraps an ordered slice of level
// definitions. The table must be non-empty, start at level 1 with
// MinXP 0, increase level numbers by one, be contiguous (each level's
// MaxXP equals the next level's MinXP), and end with an unbounded level.
func NewLevelTable(levels []LevelDefinition) (*LevelTable, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: table is empty", ErrInvalidLevelTable)
	}

	if levels[0].Level != 1 || levels[0].MinXP != 0 {
		return nil, fmt.Errorf("%w: first level must be level 1 with min XP 0", ErrInvalidLevelTable)
	}

	for i, def := range levels {
		last := i == len(levels)-1

		if def.Level != i+1 {
			return nil, fmt.Errorf("%w: level numbers must be consecutive", ErrInvalidLevelTable)
		}

		if last {
			if !def.Unbounded() {
				return nil, fmt.Errorf("%w: final level must be unbounded", ErrInvalidLevelTable)
			}
			continue
		}

		if def.MaxXP <= def.MinXP {
			return nil, fmt.Errorf("%w: level %d has an empty XP range", ErrInvalidLevelTable, def.Level)
		}

		if levels[i+1].MinXP != def.MaxXP {
			return nil, fmt.Errorf("%w: gap between levels %d and %d", ErrInvalidLevelTable, def.Level, def.Level+1)
		}
	}

	table := make([]LevelDefinition, len(levels))
	copy(table, levels)

	return &LevelTable{levels: table}, nil
}

// DefaultLevelTable returns the standard ten-level progression used by
// the learning portal, from Novice Learner at 0 XP to Legendary Learner
// at 5500 XP and beyond.
func DefaultLevelTable() *LevelTable {
	table, err := NewLevelTable([]LevelDefinition{
		{Level: 1, Title: "Novice Learner", Badge: "🌱", MinXP: 0, MaxXP: 100},
		{Level: 2, Title: "Curious Student", Badge: "📚", MinXP: 100, MaxXP: 300},
		{Level: 3, Title: "Active Learner", Badge: "⭐", MinXP: 300, MaxXP: 600},
		{Level: 4, Title: "Knowledge Seeker", Badge: "🎯", MinXP: 600, MaxXP: 1000},
		{Level: 5, Title: "Dedicated Scholar", Badge: "🏆", MinXP: 1000, MaxXP: 1500},
		{Level: 6, Title: "Expert Learner", Badge: "💎", MinXP: 1500, MaxXP: 2200},
		{Level: 7, Title: "Master Student", Badge: "🔥", MinXP: 2200, MaxXP: 3000},
		{Level: 8, Title: "Knowledge Master", Badge: "👑", MinXP: 3000, MaxXP: 4000},
		{Level: 9, Title: "Grand Scholar", Badge: "🌟", MinXP: 4000, MaxXP: 5500},
		{Level: 10, Title: "Legendary Learner", Badge: "🦄", MinXP: 5500, MaxXP: NoMaxXP},
	})
	if err != nil {
		// ALLOW-PANIC: static table validated at compile-time shape
		panic(err)
	}

	return table
}

// LevelFor returns the highest level whose MinXP does not exceed
// totalXP. Negative totals are rejected upstream by the ledger and never
// reach here; a defensive caller still gets level 1.
func (t *LevelTable) LevelFor(totalXP int) LevelDefinition {
	for i := len(t.levels) - 1; i >= 0; i-- {
		if totalXP >= t.levels[i].MinXP {
			return t.levels[i]
		}
	}

	return t.levels[0]
}

// XPToNext returns the XP remaining until the next level, or false when
// totalXP already falls in the final, unbounded level.
func (t *LevelTable) XPToNext(totalXP int) (int, bool) {
	current := t.LevelFor(totalXP)
	if current.Unbounded() {
		return 0, false
	}

	return current.MaxXP - totalXP, true
}

// Levels returns a copy of the full table, ordered by level.
func (t *LevelTable) Levels() []LevelDefinition {
	out := make([]LevelDefinition, len(t.levels))
	copy(out, t.levels)
	return out
}

// MaxLevel returns the final level definition.
func (t *LevelTable) MaxLevel() LevelDefinition {
	return t.levels[len(t.levels)-1]
}
