package engine

import (
	"log/slog"

	"github.com/jonboulle/clockwork"
	"github.com/kestrel-edu/progression-api/internal/domain"
	"github.com/kestrel-edu/progression-api/internal/events"
)

// AchievementTracker owns the set of unlocked achievement IDs. Unlocks
// are idempotent and monotonic: an ID is added at most once and never
// removed.
//
// Not internally locked; the owning Engine serializes all access.
type AchievementTracker struct {
	catalog  *domain.Catalog
	ledger   *Ledger
	queue    *events.Queue
	clock    clockwork.Clock
	logger   *slog.Logger
	unlocked map[string]domain.UnlockedAchievement
	order    []string
}

// NewAchievementTracker creates a tracker with no unlocks.
func NewAchievementTracker(
	catalog *domain.Catalog,
	ledger *Ledger,
	queue *events.Queue,
	clock clockwork.Clock,
	logger *slog.Logger,
) *AchievementTracker {
	return &AchievementTracker{
		catalog:  catalog,
		ledger:   ledger,
		queue:    queue,
		clock:    clock,
		logger:   logger.With("component", "achievement_tracker"),
		unlocked: make(map[string]domain.UnlockedAchievement),
	}
}

// Unlock records the achievement as unlocked and grants its XP reward.
// Unknown IDs and repeat unlocks are benign no-ops returning false, so
// collaborators referencing stale catalog IDs never crash the UI.
//
// The achievement_unlocked event is enqueued before the XP grant it
// causes, so a consumer draining the queue sees cause before effect.
// The grant fires even when the reward is zero, preserving the
// celebration path.
func (t *AchievementTracker) Unlock(id string) (bool, error) {
	achievement, ok := t.catalog.Get(id)
	if !ok {
		t.logger.Warn("unlock requested for unknown achievement", "achievement_id", id)
		return false, nil
	}

	if _, already := t.unlocked[id]; already {
		return false, nil
	}

	now := t.clock.Now().UTC()
	t.unlocked[id] = domain.UnlockedAchievement{
		AchievementID: id,
		UnlockedAt:    now,
	}
	t.order = append(t.order, id)

	event, err := events.NewRewardEvent(events.RewardAchievementUnlocked, events.AchievementUnlockedPayload{
		AchievementID: achievement.ID,
		Title:         achievement.Title,
		Icon:          achievement.Icon,
		XPReward:      achievement.XPReward,
	}, now)
	if err != nil {
		t.logger.Error("failed to build achievement event", "achievement_id", id, "error", err)
	} else {
		t.queue.Enqueue(event)
	}

	if _, err := t.ledger.Grant(achievement.XPReward, "achievement:"+achievement.ID); err != nil {
		// The unlock itself stands; a grant failure here means the
		// catalog entry was invalid, which NewCatalog prevents.
		t.logger.Error("failed to grant achievement XP", "achievement_id", id, "error", err)
		return true, err
	}

	t.logger.Info("achievement unlocked",
		"achievement_id", id,
		"xp_reward", achievement.XPReward)

	return true, nil
}

// IsUnlocked reports whether the achievement has been unlocked.
func (t *AchievementTracker) IsUnlocked(id string) bool {
	_, ok := t.unlocked[id]
	return ok
}

// UnlockedList returns all unlocks in unlock order.
func (t *AchievementTracker) UnlockedList() []domain.UnlockedAchievement {
	out := make([]domain.UnlockedAchievement, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.unlocked[id])
	}
	return out
}
