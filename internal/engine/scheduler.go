package engine

import (
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/kestrel-edu/progression-api/internal/domain"
	"github.com/kestrel-edu/progression-api/internal/domain/srs"
)

// FlashcardScheduler owns a learner's flashcard schedule state and
// applies the SM-2 algorithm on review. Reviewing a card does not grant
// XP; reward-on-review, if any, is a collaborator decision.
//
// Not internally locked; the owning Engine serializes all access.
type FlashcardScheduler struct {
	srs    srs.Service
	clock  clockwork.Clock
	logger *slog.Logger
	cards  map[uuid.UUID]*domain.Flashcard
}

// NewFlashcardScheduler creates a scheduler with no cards.
func NewFlashcardScheduler(
	srsService srs.Service,
	clock clockwork.Clock,
	logger *slog.Logger,
) *FlashcardScheduler {
	return &FlashcardScheduler{
		srs:    srsService,
		clock:  clock,
		logger: logger.With("component", "flashcard_scheduler"),
		cards:  make(map[uuid.UUID]*domain.Flashcard),
	}
}

// AddCard creates a card due for review immediately.
func (s *FlashcardScheduler) AddCard(front, back string, difficulty int) (*domain.Flashcard, error) {
	card, err := domain.NewFlashcard(front, back, difficulty, s.clock.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.cards[card.ID] = card

	s.logger.Debug("flashcard added", "card_id", card.ID)

	return card.Clone(), nil
}

// ReviewCard applies the SM-2 algorithm for a quality score in [0, 5]
// and returns the updated schedule. Unknown IDs fail with
// domain.ErrUnknownCard; out-of-range quality fails with
// domain.ErrInvalidQualityScore and leaves the card unchanged.
func (s *FlashcardScheduler) ReviewCard(id uuid.UUID, quality int) (*domain.Flashcard, error) {
	card, ok := s.cards[id]
	if !ok {
		return nil, domain.ErrUnknownCard
	}

	updated, err := s.srs.Review(card, quality, s.clock.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.cards[id] = updated

	s.logger.Debug("flashcard reviewed",
		"card_id", id,
		"quality", quality,
		"interval", updated.Interval,
		"ease_factor", updated.EaseFactor,
		"repetitions", updated.Repetitions)

	return updated.Clone(), nil
}

// PostponeCard pushes the card's next review forward by days >= 1
// without touching its SM-2 state.
func (s *FlashcardScheduler) PostponeCard(id uuid.UUID, days int) (*domain.Flashcard, error) {
	card, ok := s.cards[id]
	if !ok {
		return nil, domain.ErrUnknownCard
	}

	updated, err := s.srs.Postpone(card, days, s.clock.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.cards[id] = updated

	return updated.Clone(), nil
}

// DueCards returns copies of every card whose next review time has
// arrived at now. The boundary is inclusive: a card scheduled exactly
// at now is due. Ordering is deterministic, sorted by card ID.
func (s *FlashcardScheduler) DueCards(now time.Time) []*domain.Flashcard {
	due := make([]*domain.Flashcard, 0)
	for _, card := range s.cards {
		if card.Due(now) {
			due = append(due, card.Clone())
		}
	}

	sort.Slice(due, func(i, j int) bool {
		return due[i].ID.String() < due[j].ID.String()
	})

	return due
}

// Cards returns copies of every card, sorted by ID.
func (s *FlashcardScheduler) Cards() []*domain.Flashcard {
	all := make([]*domain.Flashcard, 0, len(s.cards))
	for _, card := range s.cards {
		all = append(all, card.Clone())
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].ID.String() < all[j].ID.String()
	})

	return all
}

// Get returns a copy of the card with the given ID.
func (s *FlashcardScheduler) Get(id uuid.UUID) (*domain.Flashcard, error) {
	card, ok := s.cards[id]
	if !ok {
		return nil, domain.ErrUnknownCard
	}
	return card.Clone(), nil
}

// Count returns the number of cards in the scheduler.
func (s *FlashcardScheduler) Count() int {
	return len(s.cards)
}
