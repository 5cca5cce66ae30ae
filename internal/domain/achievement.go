package domain

import (
	"fmt"
	"time"
)

// AchievementCategory groups achievements for display.
type AchievementCategory string

// Possible achievement categories.
const (
	CategoryLearning   AchievementCategory = "learning"
	CategoryMastery    AchievementCategory = "mastery"
	CategoryEngagement AchievementCategory = "engagement"
	CategoryStreak     AchievementCategory = "streak"
	CategorySocial     AchievementCategory = "social"
)

// IsValid reports whether the category is one of the known values.
func (c AchievementCategory) IsValid() bool {
	switch c {
	case CategoryLearning, CategoryMastery, CategoryEngagement, CategoryStreak, CategorySocial:
		return true
	default:
		return false
	}
}

// Achievement is a one-time unlockable milestone. Target, when non-zero,
// is the progress count a collaborator tracks before unlocking
// (progress-gated achievements); the engine itself only records unlocks.
type Achievement struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Category    AchievementCategory `json:"category"`
	XPReward    int                 `json:"xp_reward"`
	Target      int                 `json:"target,omitempty"`
}

// UnlockedAchievement records that a learner unlocked an achievement.
// Membership is monotonic; entries are never removed.
type UnlockedAchievement struct {
	AchievementID string    `json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}

// Catalog is an immutable registry of achievement definitions keyed by ID.
type Catalog struct {
	byID    map[string]Achievement
	ordered []Achievement
}

// NewCatalog validates and indexes a slice of achievement definitions.
// IDs must be unique and non-empty, categories valid, XP rewards
// non-negative, and targets non-negative.
func NewCatalog(achievements []Achievement) (*Catalog, error) {
	byID := make(map[string]Achievement, len(achievements))
	ordered := make([]Achievement, 0, len(achievements))

	for _, a := range achievements {
		if a.ID == "" {
			return nil, fmt.Errorf("%w: achievement ID cannot be empty", ErrInvalidCatalog)
		}

		if _, exists := byID[a.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate achievement ID %q", ErrInvalidCatalog, a.ID)
		}

		if !a.Category.IsValid() {
			return nil, fmt.Errorf("%w: achievement %q has unknown category %q", ErrInvalidCatalog, a.ID, a.Category)
		}

		if a.XPReward < 0 {
			return nil, fmt.Errorf("%w: achievement %q has negative XP reward", ErrInvalidCatalog, a.ID)
		}

		if a.Target < 0 {
			return nil, fmt.Errorf("%w: achievement %q has negative target", ErrInvalidCatalog, a.ID)
		}

		byID[a.ID] = a
		ordered = append(ordered, a)
	}

	return &Catalog{byID: byID, ordered: ordered}, nil
}

// Get returns the achievement with the given ID, if it exists.
func (c *Catalog) Get(id string) (Achievement, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// All returns every achievement in catalog order.
func (c *Catalog) All() []Achievement {
	out := make([]Achievement, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Len returns the number of achievements in the catalog.
func (c *Catalog) Len() int {
	return len(c.ordered)
}

// DefaultCatalog returns the learning portal's standard achievement set
// across the learning, mastery, engagement, streak, and social
// categories.
func DefaultCatalog() *Catalog {
	catalog, err := NewCatalog([]Achievement{
		// Learning
		{ID: "first_lesson", Title: "First Steps", Description: "Complete your first lesson", Icon: "👣", Category: CategoryLearning, XPReward: 50},
		{ID: "five_lessons", Title: "Getting Started", Description: "Complete 5 lessons", Icon: "📖", Category: CategoryLearning, XPReward: 100, Target: 5},
		{ID: "twenty_lessons", Title: "Bookworm", Description: "Complete 20 lessons", Icon: "📚", Category: CategoryLearning, XPReward: 300, Target: 20},
		{ID: "first_module", Title: "Module Master", Description: "Complete your first module", Icon: "🎓", Category: CategoryLearning, XPReward: 150},
		{ID: "all_modules", Title: "Course Champion", Description: "Complete all modules", Icon: "🏅", Category: CategoryLearning, XPReward: 500},

		// Mastery
		{ID: "first_quiz", Title: "Quiz Taker", Description: "Complete your first quiz", Icon: "❓", Category: CategoryMastery, XPReward: 50},
		{ID: "perfect_quiz", Title: "Perfect Score", Description: "Get 100% on a quiz", Icon: "💯", Category: CategoryMastery, XPReward: 200},
		{ID: "quiz_streak", Title: "Quiz Streak", Description: "Pass 5 quizzes in a row", Icon: "🔥", Category: CategoryMastery, XPReward: 300, Target: 5},

		// Engagement
		{ID: "early_bird", Title: "Early Bird", Description: "Study before 7 AM", Icon: "🌅", Category: CategoryEngagement, XPReward: 75},
		{ID: "night_owl", Title: "Night Owl", Description: "Study after 10 PM", Icon: "🦉", Category: CategoryEngagement, XPReward: 75},
		{ID: "weekend_warrior", Title: "Weekend Warrior", Description: "Study on both Saturday and Sunday", Icon: "⚔️", Category: CategoryEngagement, XPReward: 100},
		{ID: "focus_master", Title: "Focus Master", Description: "Complete 5 Pomodoro sessions", Icon: "🎯", Category: CategoryEngagement, XPReward: 150, Target: 5},

		// Streak
		{ID: "three_day_streak", Title: "Three Day Streak", Description: "Study for 3 consecutive days", Icon: "🔥", Category: CategoryStreak, XPReward: 100, Target: 3},
		{ID: "week_streak", Title: "Week Warrior", Description: "Study for 7 consecutive days", Icon: "📅", Category: CategoryStreak, XPReward: 250, Target: 7},
		{ID: "month_streak", Title: "Monthly Master", Description: "Study for 30 consecutive days", Icon: "📆", Category: CategoryStreak, XPReward: 1000, Target: 30},

		// Social
		{ID: "first_bookmark", Title: "Bookmarker", Description: "Create your first bookmark", Icon: "🔖", Category: CategorySocial, XPReward: 25},
		{ID: "first_note", Title: "Note Taker", Description: "Create your first note", Icon: "📝", Category: CategorySocial, XPReward: 25},
		{ID: "first_question", Title: "Curious Mind", Description: "Ask your first question", Icon: "💭", Category: CategorySocial, XPReward: 50},
		{ID: "helpful_answer", Title: "Helpful Hand", Description: "Get your answer upvoted", Icon: "👍", Category: CategorySocial, XPReward: 75},
		{ID: "study_group_join", Title: "Team Player", Description: "Join a study group", Icon: "👥", Category: CategorySocial, XPReward: 50},
	})
	if err != nil {
		// ALLOW-PANIC: static catalog validated at compile-time shape
		panic(err)
	}

	return catalog
}
