package engine

import (
	"log/slog"

	"github.com/jonboulle/clockwork"
	"github.com/kestrel-edu/progression-api/internal/domain"
	"github.com/kestrel-edu/progression-api/internal/events"
)

// Ledger owns a learner's total XP, the append-only XP-event history,
// and the current level derived from the total. Total XP is strictly
// the sum of all granted amounts; it is never decremented and never
// directly settable.
//
// The ledger is not internally locked; the owning Engine serializes all
// access.
type Ledger struct {
	levels  *domain.LevelTable
	queue   *events.Queue
	clock   clockwork.Clock
	logger  *slog.Logger
	history []domain.XPEvent
	total   int
	level   domain.LevelDefinition
}

// GrantResult reports the outcome of a grant.
type GrantResult struct {
	NewTotal  int
	LeveledUp bool
	NewLevel  domain.LevelDefinition
}

// NewLedger creates an empty ledger at level 1.
func NewLedger(
	levels *domain.LevelTable,
	queue *events.Queue,
	clock clockwork.Clock,
	logger *slog.Logger,
) *Ledger {
	return &Ledger{
		levels: levels,
		queue:  queue,
		clock:  clock,
		logger: logger.With("component", "progression_ledger"),
		level:  levels.LevelFor(0),
	}
}

// Grant appends an XP event and recomputes the level from the new
// total. Exactly one reward event is enqueued per call: level_up when
// the level number increases, xp_granted otherwise (the level-up event
// subsumes the XP-granted event rather than duplicating it).
//
// Zero amounts are accepted here so that zero-reward achievement
// unlocks still record a grant and fire the celebration path; the
// engine's external GrantXP rejects non-positive amounts before
// reaching this method.
func (l *Ledger) Grant(amount int, reason string) (GrantResult, error) {
	now := l.clock.Now().UTC()

	event, err := domain.NewXPEvent(amount, reason, now)
	if err != nil {
		return GrantResult{}, err
	}

	l.history = append(l.history, event)
	l.total += amount

	previous := l.level
	l.level = l.levels.LevelFor(l.total)
	leveledUp := l.level.Level > previous.Level

	if leveledUp {
		l.enqueue(events.RewardLevelUp, events.LevelUpPayload{
			Level:   l.level.Level,
			Title:   l.level.Title,
			Badge:   l.level.Badge,
			TotalXP: l.total,
		})
		l.logger.Info("level up",
			"level", l.level.Level,
			"title", l.level.Title,
			"total_xp", l.total)
	} else {
		l.enqueue(events.RewardXPGranted, events.XPGrantedPayload{
			Amount:  amount,
			Reason:  reason,
			TotalXP: l.total,
		})
		l.logger.Debug("xp granted",
			"amount", amount,
			"reason", reason,
			"total_xp", l.total)
	}

	return GrantResult{
		NewTotal:  l.total,
		LeveledUp: leveledUp,
		NewLevel:  l.level,
	}, nil
}

// TotalXP returns the sum of all granted amounts.
func (l *Ledger) TotalXP() int {
	return l.total
}

// CurrentLevel returns the level derived from the current total.
func (l *Ledger) CurrentLevel() domain.LevelDefinition {
	return l.level
}

// XPToNext returns the XP remaining until the next level, or false at
// the max level.
func (l *Ledger) XPToNext() (int, bool) {
	return l.levels.XPToNext(l.total)
}

// History returns a copy of the append-only XP-event log, oldest first.
func (l *Ledger) History() []domain.XPEvent {
	out := make([]domain.XPEvent, len(l.history))
	copy(out, l.history)
	return out
}

func (l *Ledger) enqueue(rewardType events.RewardType, payload interface{}) {
	event, err := events.NewRewardEvent(rewardType, payload, l.clock.Now().UTC())
	if err != nil {
		l.logger.Error("failed to build reward event",
			"event_type", rewardType,
			"error", err)
		return
	}

	l.queue.Enqueue(event)
}
