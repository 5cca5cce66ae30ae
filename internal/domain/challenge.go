package domain

import (
	"fmt"
	"time"
)

// ChallengeWindow is how long a daily challenge stays actionable after
// creation.
const ChallengeWindow = 24 * time.Hour

// ChallengeType categorizes a daily challenge by the activity it tracks.
type ChallengeType string

// Possible challenge types.
const (
	ChallengeVideo    ChallengeType = "video"
	ChallengeQuiz     ChallengeType = "quiz"
	ChallengePractice ChallengeType = "practice"
	ChallengeSocial   ChallengeType = "social"
)

// IsValid reports whether the challenge type is one of the known values.
func (t ChallengeType) IsValid() bool {
	switch t {
	case ChallengeVideo, ChallengeQuiz, ChallengePractice, ChallengeSocial:
		return true
	default:
		return false
	}
}

// DailyChallenge is a time-boxed, progress-gated task that grants XP on
// completion. Progress never exceeds Target, and Completed never flips
// back to false once set. ExpiresAt is fixed at creation and is advisory
// metadata for the collaborator UI; the tracker does not gate writes on
// it.
type DailyChallenge struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Type        ChallengeType `json:"type"`
	XPReward    int           `json:"xp_reward"`
	Progress    int           `json:"progress"`
	Target      int           `json:"target"`
	Completed   bool          `json:"completed"`
	ExpiresAt   time.Time     `json:"expires_at"`
}

// NewDailyChallenge creates a validated challenge expiring one
// ChallengeWindow after now. Progress starts at zero.
func NewDailyChallenge(
	id, title, description string,
	challengeType ChallengeType,
	xpReward, target int,
	now time.Time,
) (DailyChallenge, error) {
	ch := DailyChallenge{
		ID:          id,
		Title:       title,
		Description: description,
		Type:        challengeType,
		XPReward:    xpReward,
		Target:      target,
		ExpiresAt:   now.Add(ChallengeWindow),
	}

	if err := ch.Validate(); err != nil {
		return DailyChallenge{}, err
	}

	return ch, nil
}

// Validate checks the challenge invariants: non-empty ID and title, a
// known type, non-negative reward, positive target, and progress within
// [0, target].
func (c DailyChallenge) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("challenge ID cannot be empty")
	}

	if c.Title == "" {
		return fmt.Errorf("challenge %q: title cannot be empty", c.ID)
	}

	if !c.Type.IsValid() {
		return fmt.Errorf("challenge %q: unknown type %q", c.ID, c.Type)
	}

	if c.XPReward < 0 {
		return fmt.Errorf("challenge %q: XP reward cannot be negative", c.ID)
	}

	if c.Target <= 0 {
		return fmt.Errorf("challenge %q: %w", c.ID, ErrInvalidChallengeTarget)
	}

	if c.Progress < 0 || c.Progress > c.Target {
		return fmt.Errorf("challenge %q: progress %d outside [0, %d]", c.ID, c.Progress, c.Target)
	}

	return nil
}

// Expired reports whether the challenge's window has passed at the given
// time. Expiry is advisory; see ChallengeTracker.SetProgress.
func (c DailyChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// DefaultDailyChallenges returns the portal's standard daily trio:
// watch videos, pass a quiz, and answer practice questions.
func DefaultDailyChallenges(now time.Time) []DailyChallenge {
	return []DailyChallenge{
		{
			ID:          "daily_video",
			Title:       "Video Watcher",
			Description: "Watch 2 lesson videos",
			Type:        ChallengeVideo,
			XPReward:    50,
			Target:      2,
			ExpiresAt:   now.Add(ChallengeWindow),
		},
		{
			ID:          "daily_quiz",
			Title:       "Quiz Champion",
			Description: "Complete 1 practice quiz",
			Type:        ChallengeQuiz,
			XPReward:    75,
			Target:      1,
			ExpiresAt:   now.Add(ChallengeWindow),
		},
		{
			ID:          "daily_practice",
			Title:       "Practice Makes Perfect",
			Description: "Answer 10 practice questions",
			Type:        ChallengePractice,
			XPReward:    60,
			Target:      10,
			ExpiresAt:   now.Add(ChallengeWindow),
		},
	}
}
