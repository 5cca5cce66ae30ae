package engine

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-edu/progression-api/internal/domain"
	"github.com/kestrel-edu/progression-api/internal/events"
)

func newTestChallengeTracker(t *testing.T) (*ChallengeTracker, *Ledger, *events.Queue, *clockwork.FakeClock) {
	t.Helper()
	logger := discardLogger()
	clock := clockwork.NewFakeClockAt(testStart)
	queue := events.NewQueue(logger)
	ledger := NewLedger(domain.DefaultLevelTable(), queue, clock, logger)
	return NewChallengeTracker(ledger, queue, clock, logger), ledger, queue, clock
}

func testChallenge(id string, reward, target int) domain.DailyChallenge {
	return domain.DailyChallenge{
		ID:       id,
		Title:    "Challenge " + id,
		Type:     domain.ChallengePractice,
		XPReward: reward,
		Target:   target,
	}
}

func TestAddChallenge(t *testing.T) {
	t.Parallel()
	tracker, _, _, _ := newTestChallengeTracker(t)

	require.NoError(t, tracker.Add(testChallenge("c1", 50, 3)))

	stored, ok := tracker.Get("c1")
	require.True(t, ok)
	assert.Equal(t, testStart.Add(domain.ChallengeWindow), stored.ExpiresAt,
		"a zero expiry is stamped one window from now")
	assert.Equal(t, 0, stored.Progress)
	assert.False(t, stored.Completed)
}

func TestAddChallengeDuplicate(t *testing.T) {
	t.Parallel()
	tracker, _, _, _ := newTestChallengeTracker(t)

	require.NoError(t, tracker.Add(testChallenge("c1", 50, 3)))
	assert.ErrorIs(t, tracker.Add(testChallenge("c1", 75, 5)), domain.ErrDuplicateChallenge)
}

func TestAddChallengeInvalid(t *testing.T) {
	t.Parallel()
	tracker, _, _, _ := newTestChallengeTracker(t)

	invalid := testChallenge("c1", 50, 0)
	assert.ErrorIs(t, tracker.Add(invalid), domain.ErrInvalidChallengeTarget)
}

func TestSetProgressCompletesOnce(t *testing.T) {
	t.Parallel()
	tracker, ledger, queue, _ := newTestChallengeTracker(t)

	require.NoError(t, tracker.Add(testChallenge("c1", 60, 3)))

	completed, err := tracker.SetProgress("c1", 2)
	require.NoError(t, err)
	assert.False(t, completed)
	assert.Equal(t, 0, queue.Len())

	completed, err = tracker.SetProgress("c1", 3)
	require.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, 60, ledger.TotalXP())

	// Cause before effect: completion event, then the grant it caused.
	first := queue.DrainNext()
	require.NotNil(t, first)
	assert.Equal(t, events.RewardChallengeCompleted, first.Type)
	second := queue.DrainNext()
	require.NotNil(t, second)
	assert.Equal(t, events.RewardXPGranted, second.Type)

	// Writing again, even at the target, never re-grants.
	completed, err = tracker.SetProgress("c1", 3)
	require.NoError(t, err)
	assert.False(t, completed)
	assert.Equal(t, 60, ledger.TotalXP())
	assert.Equal(t, 0, queue.Len())
}

func TestSetProgressClamps(t *testing.T) {
	t.Parallel()
	tracker, ledger, _, _ := newTestChallengeTracker(t)

	require.NoError(t, tracker.Add(testChallenge("c1", 60, 5)))

	completed, err := tracker.SetProgress("c1", -3)
	require.NoError(t, err)
	assert.False(t, completed)
	stored, _ := tracker.Get("c1")
	assert.Equal(t, 0, stored.Progress)

	// Overshooting clamps to the target and triggers the completion.
	completed, err = tracker.SetProgress("c1", 12)
	require.NoError(t, err)
	assert.True(t, completed)
	stored, _ = tracker.Get("c1")
	assert.Equal(t, 5, stored.Progress)
	assert.Equal(t, 60, ledger.TotalXP())
}

func TestSetProgressUnknownID(t *testing.T) {
	t.Parallel()
	tracker, ledger, queue, _ := newTestChallengeTracker(t)

	completed, err := tracker.SetProgress("ghost", 5)
	require.NoError(t, err, "unknown IDs are benign no-ops")
	assert.False(t, completed)
	assert.Equal(t, 0, ledger.TotalXP())
	assert.Equal(t, 0, queue.Len())
}

func TestSetProgressAfterExpiryStillGrants(t *testing.T) {
	t.Parallel()
	tracker, ledger, _, clock := newTestChallengeTracker(t)

	require.NoError(t, tracker.Add(testChallenge("c1", 60, 1)))
	clock.Advance(domain.ChallengeWindow + time.Hour)

	// Expiry is advisory for the UI; the tracker does not gate writes on
	// the wall clock.
	completed, err := tracker.SetProgress("c1", 1)
	require.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, 60, ledger.TotalXP())
}

func TestActivePreservesInsertionOrder(t *testing.T) {
	t.Parallel()
	tracker, _, _, _ := newTestChallengeTracker(t)

	for _, id := range []string{"b", "a", "c"} {
		require.NoError(t, tracker.Add(testChallenge(id, 10, 1)))
	}

	active := tracker.Active()
	require.Len(t, active, 3)
	assert.Equal(t, "b", active[0].ID)
	assert.Equal(t, "a", active[1].ID)
	assert.Equal(t, "c", active[2].ID)
}

func TestActiveReturnsCopies(t *testing.T) {
	t.Parallel()
	tracker, _, _, _ := newTestChallengeTracker(t)

	require.NoError(t, tracker.Add(testChallenge("c1", 10, 5)))

	active := tracker.Active()
	active[0].Progress = 4

	stored, _ := tracker.Get("c1")
	assert.Equal(t, 0, stored.Progress)
}

func TestDefaultDailyChallengesFitTracker(t *testing.T) {
	t.Parallel()
	tracker, _, _, _ := newTestChallengeTracker(t)

	for _, ch := range domain.DefaultDailyChallenges(testStart) {
		require.NoError(t, tracker.Add(ch))
	}

	assert.Len(t, tracker.Active(), 3)
}
