package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/kestrel-edu/progression-api/internal/domain"
	"github.com/kestrel-edu/progression-api/internal/domain/srs"
	"github.com/kestrel-edu/progression-api/internal/events"
)

// Options configures an Engine. Nil fields fall back to defaults: the
// real clock, the default level table and achievement catalog, the
// default SM-2 service, and slog.Default().
type Options struct {
	Clock   clockwork.Clock
	Logger  *slog.Logger
	Levels  *domain.LevelTable
	Catalog *domain.Catalog
	SRS     srs.Service
}

// Engine is the per-learner progression engine. It composes the ledger,
// trackers, scheduler, and reward queue behind a single mutex so that
// concurrent calls for the same learner are serialized: grant, unlock,
// and progress writes read-modify-write shared ledger state and are not
// commutative under interleaving. Engines for different learners are
// fully independent.
type Engine struct {
	mu sync.Mutex

	learnerID uuid.UUID
	clock     clockwork.Clock
	logger    *slog.Logger

	catalog      *domain.Catalog
	queue        *events.Queue
	ledger       *Ledger
	achievements *AchievementTracker
	challenges   *ChallengeTracker
	scheduler    *FlashcardScheduler
}

// New creates an engine for a learner with an empty ledger, no unlocks,
// no challenges, and no cards.
func New(learnerID uuid.UUID, opts Options) *Engine {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("learner_id", learnerID.String())

	levels := opts.Levels
	if levels == nil {
		levels = domain.DefaultLevelTable()
	}

	catalog := opts.Catalog
	if catalog == nil {
		catalog = domain.DefaultCatalog()
	}

	srsService := opts.SRS
	if srsService == nil {
		srsService = srs.NewDefaultService()
	}

	queue := events.NewQueue(logger)
	ledger := NewLedger(levels, queue, clock, logger)

	return &Engine{
		learnerID:    learnerID,
		clock:        clock,
		logger:       logger,
		catalog:      catalog,
		queue:        queue,
		ledger:       ledger,
		achievements: NewAchievementTracker(catalog, ledger, queue, clock, logger),
		challenges:   NewChallengeTracker(ledger, queue, clock, logger),
		scheduler:    NewFlashcardScheduler(srsService, clock, logger),
	}
}

// LearnerID returns the learner this engine belongs to.
func (e *Engine) LearnerID() uuid.UUID {
	return e.learnerID
}

// GrantXP appends an XP event for a positive amount and non-empty
// reason, recomputing the level from the new total. Non-positive
// amounts fail with domain.ErrInvalidXPAmount and leave the ledger
// unchanged.
func (e *Engine) GrantXP(amount int, reason string) (GrantResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// The external surface requires strictly positive amounts; only
	// internal reward grants (zero-reward achievements) may record zero.
	if amount <= 0 {
		return GrantResult{}, domain.ErrInvalidXPAmount
	}

	return e.ledger.Grant(amount, reason)
}

// UnlockAchievement idempotently unlocks an achievement and grants its
// XP reward. Returns true only when the achievement was newly unlocked.
func (e *Engine) UnlockAchievement(id string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.achievements.Unlock(id)
}

// IsAchievementUnlocked reports whether the achievement is unlocked.
func (e *Engine) IsAchievementUnlocked(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.achievements.IsUnlocked(id)
}

// UnlockedAchievements returns all unlocks in unlock order.
func (e *Engine) UnlockedAchievements() []domain.UnlockedAchievement {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.achievements.UnlockedList()
}

// Achievements returns the full catalog in catalog order.
func (e *Engine) Achievements() []domain.Achievement {
	return e.catalog.All()
}

// AddChallenge registers a challenge instance for this learner.
func (e *Engine) AddChallenge(challenge domain.DailyChallenge) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.challenges.Add(challenge)
}

// SetChallengeProgress records challenge progress, clamped to
// [0, target]. Returns true only on the at-most-once completion
// transition.
func (e *Engine) SetChallengeProgress(id string, progress int) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.challenges.SetProgress(id, progress)
}

// Challenge returns a copy of the challenge with the given ID, if it
// exists.
func (e *Engine) Challenge(id string) (domain.DailyChallenge, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.challenges.Get(id)
}

// ActiveChallenges returns all registered challenges in insertion order.
func (e *Engine) ActiveChallenges() []domain.DailyChallenge {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.challenges.Active()
}

// AddFlashcard creates a card due for review immediately.
func (e *Engine) AddFlashcard(front, back string, difficulty int) (*domain.Flashcard, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.scheduler.AddCard(front, back, difficulty)
}

// ReviewFlashcard applies the SM-2 algorithm for a quality score in
// [0, 5] and returns the updated schedule.
func (e *Engine) ReviewFlashcard(id uuid.UUID, quality int) (*domain.Flashcard, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.scheduler.ReviewCard(id, quality)
}

// PostponeFlashcard pushes a card's next review forward by days >= 1.
func (e *Engine) PostponeFlashcard(id uuid.UUID, days int) (*domain.Flashcard, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.scheduler.PostponeCard(id, days)
}

// DueFlashcards returns the cards due at the engine clock's current
// time, sorted by ID.
func (e *Engine) DueFlashcards() []*domain.Flashcard {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.scheduler.DueCards(e.clock.Now().UTC())
}

// DueFlashcardsAt returns the cards due at an explicit time.
func (e *Engine) DueFlashcardsAt(now time.Time) []*domain.Flashcard {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.scheduler.DueCards(now)
}

// Flashcards returns all cards, sorted by ID.
func (e *Engine) Flashcards() []*domain.Flashcard {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.scheduler.Cards()
}

// FlashcardCount returns the number of cards.
func (e *Engine) FlashcardCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.scheduler.Count()
}

// CurrentLevel returns the level derived from total XP.
func (e *Engine) CurrentLevel() domain.LevelDefinition {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.ledger.CurrentLevel()
}

// TotalXP returns the sum of all granted XP amounts.
func (e *Engine) TotalXP() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.ledger.TotalXP()
}

// XPToNextLevel returns the XP remaining until the next level, or false
// at the max level.
func (e *Engine) XPToNextLevel() (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.ledger.XPToNext()
}

// XPHistory returns a copy of the append-only XP-event log.
func (e *Engine) XPHistory() []domain.XPEvent {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.ledger.History()
}

// DrainNextRewardEvent pops the oldest pending reward event, or nil
// when none are pending. Intended to be polled by a celebration-overlay
// component.
func (e *Engine) DrainNextRewardEvent() *events.RewardEvent {
	return e.queue.DrainNext()
}

// PendingRewardEvents returns the number of undrained reward events.
func (e *Engine) PendingRewardEvents() int {
	return e.queue.Len()
}
