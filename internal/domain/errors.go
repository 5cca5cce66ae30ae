package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidXPAmount is returned when an XP grant amount is not a
	// positive integer. The ledger is left unchanged.
	ErrInvalidXPAmount = errors.New("xp amount must be a positive integer")

	// ErrEmptyReason is returned when an XP grant has no reason string.
	ErrEmptyReason = errors.New("xp grant reason cannot be empty")

	// ErrInvalidQualityScore is returned when a review quality is outside
	// the 0-5 range. The card is left unchanged.
	ErrInvalidQualityScore = errors.New("quality score must be between 0 and 5")

	// ErrUnknownCard is returned when a review or lookup references a
	// flashcard that does not exist.
	ErrUnknownCard = errors.New("flashcard not found")

	// ErrInvalidDifficulty is returned when a flashcard difficulty is
	// outside the 1-5 range.
	ErrInvalidDifficulty = errors.New("difficulty must be between 1 and 5")

	// ErrEmptyCardSide is returned when a flashcard front or back is empty.
	ErrEmptyCardSide = errors.New("flashcard front and back cannot be empty")

	// ErrInvalidInterval is returned when a schedule interval is below one
	// day.
	ErrInvalidInterval = errors.New("interval must be at least 1 day")

	// ErrInvalidEaseFactor is returned when an ease factor falls below the
	// 1.3 floor.
	ErrInvalidEaseFactor = errors.New("ease factor must be at least 1.3")

	// ErrInvalidChallengeTarget is returned when a challenge target is not
	// a positive integer.
	ErrInvalidChallengeTarget = errors.New("challenge target must be a positive integer")

	// ErrDuplicateChallenge is returned when a challenge ID is already
	// registered with the tracker.
	ErrDuplicateChallenge = errors.New("challenge ID already exists")

	// ErrInvalidLevelTable is returned when a level table is empty, out of
	// order, or has gaps between adjacent levels.
	ErrInvalidLevelTable = errors.New("invalid level table")

	// ErrInvalidCatalog is returned when an achievement catalog contains
	// duplicate IDs or invalid definitions.
	ErrInvalidCatalog = errors.New("invalid achievement catalog")
)
