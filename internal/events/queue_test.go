package events

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQueueFIFO(t *testing.T) {
	t.Parallel()
	queue := NewQueue(discardLogger())
	now := time.Now().UTC()

	first, err := NewRewardEvent(RewardXPGranted, XPGrantedPayload{Amount: 50, Reason: "lesson", TotalXP: 50}, now)
	require.NoError(t, err)
	second, err := NewRewardEvent(RewardLevelUp, LevelUpPayload{Level: 2, Title: "Curious Mind", TotalXP: 120}, now)
	require.NoError(t, err)

	queue.Enqueue(first)
	queue.Enqueue(second)
	assert.Equal(t, 2, queue.Len())

	assert.Equal(t, first.ID, queue.DrainNext().ID)
	assert.Equal(t, second.ID, queue.DrainNext().ID)
	assert.Equal(t, 0, queue.Len())
}

func TestQueueDrainNextEmpty(t *testing.T) {
	t.Parallel()
	queue := NewQueue(discardLogger())

	assert.Nil(t, queue.DrainNext())
}

func TestQueueConcurrentEnqueue(t *testing.T) {
	t.Parallel()
	queue := NewQueue(discardLogger())
	now := time.Now().UTC()

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			event, err := NewRewardEvent(RewardXPGranted, XPGrantedPayload{Amount: 1, Reason: "r"}, now)
			if err != nil {
				t.Error(err)
				return
			}
			queue.Enqueue(event)
		}()
	}
	wg.Wait()

	assert.Equal(t, n, queue.Len())
}

func TestRewardEventPayloadRoundTrip(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()

	event, err := NewRewardEvent(RewardAchievementUnlocked, AchievementUnlockedPayload{
		AchievementID: "first_lesson",
		Title:         "First Steps",
		Icon:          "🎯",
		XPReward:      50,
	}, now)
	require.NoError(t, err)

	var payload AchievementUnlockedPayload
	require.NoError(t, event.UnmarshalPayload(&payload))
	assert.Equal(t, "first_lesson", payload.AchievementID)
	assert.Equal(t, 50, payload.XPReward)
}

func TestNewQueueRequiresLogger(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewQueue(nil)
	})
}
