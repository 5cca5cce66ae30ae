package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Default schedule values for a brand-new flashcard.
const (
	DefaultInterval   = 1   // days
	DefaultEaseFactor = 2.5 // standard SM-2 starting ease
)

// Flashcard holds a card's content together with its spaced-repetition
// schedule state. Difficulty is informational only (1-5, set by the
// learner); the schedule is driven entirely by review quality scores.
type Flashcard struct {
	ID           uuid.UUID `json:"id"`
	Front        string    `json:"front"`
	Back         string    `json:"back"`
	Difficulty   int       `json:"difficulty"`
	Interval     int       `json:"interval"`    // days until the next review
	EaseFactor   float64   `json:"ease_factor"` // >= 1.3
	Repetitions  int       `json:"repetitions"` // consecutive passes
	NextReviewAt time.Time `json:"next_review_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewFlashcard creates a card due for review immediately, with the
// standard starting schedule (interval 1 day, ease factor 2.5, zero
// repetitions).
func NewFlashcard(front, back string, difficulty int, now time.Time) (*Flashcard, error) {
	card := &Flashcard{
		ID:           uuid.New(),
		Front:        front,
		Back:         back,
		Difficulty:   difficulty,
		Interval:     DefaultInterval,
		EaseFactor:   DefaultEaseFactor,
		Repetitions:  0,
		NextReviewAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks the card's content and schedule invariants.
func (c *Flashcard) Validate() error {
	if strings.TrimSpace(c.Front) == "" || strings.TrimSpace(c.Back) == "" {
		return ErrEmptyCardSide
	}

	if c.Difficulty < 1 || c.Difficulty > 5 {
		return ErrInvalidDifficulty
	}

	if c.Interval < 1 {
		return ErrInvalidInterval
	}

	if c.EaseFactor < 1.3 {
		return ErrInvalidEaseFactor
	}

	return nil
}

// Due reports whether the card's next review time has arrived. The
// boundary is inclusive: a card is due at exactly NextReviewAt.
func (c *Flashcard) Due(now time.Time) bool {
	return !c.NextReviewAt.After(now)
}

// Clone returns an independent copy of the card.
func (c *Flashcard) Clone() *Flashcard {
	copied := *c
	return &copied
}
