// Package events defines celebration-worthy reward events and the FIFO
// queue that sequences them for presentation. The queue, not a single
// overwritable slot, is what lets simultaneous triggers (an achievement
// unlock that also grants enough XP to level up) all reach the UI in
// order instead of the later one clobbering the earlier.
package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RewardType identifies the kind of celebration an event carries.
type RewardType string

// Possible reward event types.
const (
	RewardXPGranted           RewardType = "xp_granted"
	RewardAchievementUnlocked RewardType = "achievement_unlocked"
	RewardLevelUp             RewardType = "level_up"
	RewardChallengeCompleted  RewardType = "challenge_completed"
)

// RewardEvent is a queued notification intended for celebratory UI
// presentation. Events are informational only; rendering them is
// entirely a UI concern.
type RewardEvent struct {
	// ID is a unique identifier for this event.
	ID uuid.UUID `json:"id"`

	// Type indicates the kind of reward.
	Type RewardType `json:"type"`

	// Payload contains the type-specific data serialized as JSON.
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the timestamp when the event was created.
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *RewardEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewRewardEvent creates a RewardEvent with the specified type and
// payload. The payload must be JSON-serializable.
func NewRewardEvent(rewardType RewardType, payload interface{}, now time.Time) (*RewardEvent, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &RewardEvent{
		ID:        uuid.New(),
		Type:      rewardType,
		Payload:   payloadBytes,
		CreatedAt: now,
	}, nil
}

// XPGrantedPayload is the payload for RewardXPGranted events.
type XPGrantedPayload struct {
	Amount  int    `json:"amount"`
	Reason  string `json:"reason"`
	TotalXP int    `json:"total_xp"`
}

// LevelUpPayload is the payload for RewardLevelUp events.
type LevelUpPayload struct {
	Level   int    `json:"level"`
	Title   string `json:"title"`
	Badge   string `json:"badge"`
	TotalXP int    `json:"total_xp"`
}

// AchievementUnlockedPayload is the payload for RewardAchievementUnlocked
// events.
type AchievementUnlockedPayload struct {
	AchievementID string `json:"achievement_id"`
	Title         string `json:"title"`
	Icon          string `json:"icon"`
	XPReward      int    `json:"xp_reward"`
}

// ChallengeCompletedPayload is the payload for RewardChallengeCompleted
// events.
type ChallengeCompletedPayload struct {
	ChallengeID string `json:"challenge_id"`
	Title       string `json:"title"`
	XPReward    int    `json:"xp_reward"`
}
