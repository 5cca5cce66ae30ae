// Package domain defines the core entities of the progression engine:
// XP events, the level table, the achievement catalog, daily challenges,
// and flashcard schedules. Entities validate themselves on construction;
// all state transitions live in the engine and srs packages.
package domain
