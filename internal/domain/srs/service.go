// Package srs implements the SM-2 spaced-repetition scheduling
// algorithm: given a card's schedule state and a review quality score
// from 0 to 5, it computes the next interval, ease factor, repetition
// count, and review time.
package srs

import (
	"errors"
	"time"

	"github.com/kestrel-edu/progression-api/internal/domain"
)

// Common errors
var (
	ErrNilCard     = errors.New("flashcard cannot be nil")
	ErrInvalidDays = errors.New("postpone days must be at least 1")
)

// Service defines the interface for SM-2 scheduling operations. All
// methods follow the immutable-update pattern: they return a new
// Flashcard rather than modifying the input.
type Service interface {
	// Review computes the card's next schedule state for a quality score
	// in [0, 5]. Quality at or above the pass threshold advances the
	// repetition ladder; below it the card lapses back to the start.
	Review(card *domain.Flashcard, quality int, now time.Time) (*domain.Flashcard, error)

	// Postpone pushes the next review time forward by a number of days
	// without touching the interval, ease factor, or repetition count.
	Postpone(card *domain.Flashcard, days int, now time.Time) (*domain.Flashcard, error)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates an SM-2 service with default parameters.
func NewDefaultService() Service {
	return &defaultService{params: NewDefaultParams()}
}

// NewServiceWithParams creates an SM-2 service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{params: params}
}

// Review implements the Service interface.
func (s *defaultService) Review(
	card *domain.Flashcard,
	quality int,
	now time.Time,
) (*domain.Flashcard, error) {
	if card == nil {
		return nil, ErrNilCard
	}

	if quality < s.params.MinQuality || quality > s.params.MaxQuality {
		return nil, domain.ErrInvalidQualityScore
	}

	next := card.Clone()

	// The interval is computed against the pre-update ease factor; the
	// ease recalculation below applies in both the pass and lapse
	// branches.
	next.Interval = calculateNewInterval(
		card.Interval,
		card.Repetitions,
		card.EaseFactor,
		quality,
		s.params,
	)

	if quality >= s.params.PassThreshold {
		next.Repetitions = card.Repetitions + 1
	} else {
		next.Repetitions = 0
	}

	next.EaseFactor = calculateNewEaseFactor(card.EaseFactor, quality, s.params)
	next.NextReviewAt = calculateNextReviewAt(now, next.Interval)
	next.UpdatedAt = now

	return next, nil
}

// Postpone implements the Service interface.
func (s *defaultService) Postpone(
	card *domain.Flashcard,
	days int,
	now time.Time,
) (*domain.Flashcard, error) {
	if card == nil {
		return nil, ErrNilCard
	}

	if days < 1 {
		return nil, ErrInvalidDays
	}

	next := card.Clone()
	next.NextReviewAt = card.NextReviewAt.AddDate(0, 0, days)
	next.UpdatedAt = now

	return next, nil
}
