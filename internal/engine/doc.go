// Package engine implements the progression and mastery engine: a
// per-learner, single-writer state machine tracking XP, levels,
// achievement unlocks, daily-challenge completion, and flashcard
// scheduling. All mutating operations are synchronous and in-memory,
// serialized by a per-engine mutex; engines for different learners are
// fully independent.
package engine
