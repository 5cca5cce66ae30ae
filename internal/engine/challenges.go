package engine

import (
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"github.com/kestrel-edu/progression-api/internal/domain"
	"github.com/kestrel-edu/progression-api/internal/events"
)

// ChallengeTracker owns the per-day set of challenge instances.
// Crossing a challenge's completion threshold grants XP exactly once.
//
// Not internally locked; the owning Engine serializes all access.
type ChallengeTracker struct {
	ledger     *Ledger
	queue      *events.Queue
	clock      clockwork.Clock
	logger     *slog.Logger
	challenges map[string]*domain.DailyChallenge
	order      []string
}

// NewChallengeTracker creates a tracker with no challenges.
func NewChallengeTracker(
	ledger *Ledger,
	queue *events.Queue,
	clock clockwork.Clock,
	logger *slog.Logger,
) *ChallengeTracker {
	return &ChallengeTracker{
		ledger:     ledger,
		queue:      queue,
		clock:      clock,
		logger:     logger.With("component", "challenge_tracker"),
		challenges: make(map[string]*domain.DailyChallenge),
	}
}

// Add registers a challenge instance. IDs must be unique among the
// tracker's challenges, including expired ones; expired challenges are
// not auto-deleted (it is the collaborator's responsibility to stop
// surfacing them). A zero ExpiresAt is filled in as one challenge
// window from the tracker clock's current time.
func (t *ChallengeTracker) Add(challenge domain.DailyChallenge) error {
	if challenge.ExpiresAt.IsZero() {
		challenge.ExpiresAt = t.clock.Now().UTC().Add(domain.ChallengeWindow)
	}

	if err := challenge.Validate(); err != nil {
		return err
	}

	if _, exists := t.challenges[challenge.ID]; exists {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateChallenge, challenge.ID)
	}

	stored := challenge
	t.challenges[challenge.ID] = &stored
	t.order = append(t.order, challenge.ID)

	return nil
}

// SetProgress records a progress value for a challenge. The value is
// clamped to [0, target]; writes below the current progress are
// accepted (callers are not required to be monotonic) but progress
// never regresses below 0 nor exceeds the target.
//
// The completion transition happens at most once: when progress reaches
// the target while Completed is false, the tracker marks the challenge
// complete, enqueues a challenge_completed event, and grants the XP
// reward. Later writes are no-ops with respect to rewards.
//
// Unknown IDs are benign no-ops. Challenges past ExpiresAt are not
// rejected: the tracker has no wall-clock gate on writes, so completing
// an expired challenge still grants XP. Expiry is advisory metadata for
// the collaborator UI; hard-blocking completion on expiry is a product
// decision deliberately left out of the engine.
func (t *ChallengeTracker) SetProgress(id string, progress int) (bool, error) {
	challenge, ok := t.challenges[id]
	if !ok {
		t.logger.Warn("progress reported for unknown challenge", "challenge_id", id)
		return false, nil
	}

	if progress < 0 {
		progress = 0
	}
	if progress > challenge.Target {
		progress = challenge.Target
	}
	challenge.Progress = progress

	if challenge.Completed || progress < challenge.Target {
		return false, nil
	}

	challenge.Completed = true

	event, err := events.NewRewardEvent(events.RewardChallengeCompleted, events.ChallengeCompletedPayload{
		ChallengeID: challenge.ID,
		Title:       challenge.Title,
		XPReward:    challenge.XPReward,
	}, t.clock.Now().UTC())
	if err != nil {
		t.logger.Error("failed to build challenge event", "challenge_id", id, "error", err)
	} else {
		t.queue.Enqueue(event)
	}

	if _, err := t.ledger.Grant(challenge.XPReward, "challenge:"+challenge.Title); err != nil {
		t.logger.Error("failed to grant challenge XP", "challenge_id", id, "error", err)
		return true, err
	}

	t.logger.Info("challenge completed",
		"challenge_id", id,
		"xp_reward", challenge.XPReward)

	return true, nil
}

// Active returns copies of all registered challenges in insertion
// order, including expired and completed ones.
func (t *ChallengeTracker) Active() []domain.DailyChallenge {
	out := make([]domain.DailyChallenge, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, *t.challenges[id])
	}
	return out
}

// Get returns a copy of the challenge with the given ID, if it exists.
func (t *ChallengeTracker) Get(id string) (domain.DailyChallenge, bool) {
	challenge, ok := t.challenges[id]
	if !ok {
		return domain.DailyChallenge{}, false
	}
	return *challenge, true
}
