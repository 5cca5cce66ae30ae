package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kestrel-edu/progression-api/internal/api/shared"
	"github.com/kestrel-edu/progression-api/internal/engine"
)

// AchievementHandler handles achievement-related HTTP requests.
type AchievementHandler struct {
	registry *engine.Registry
	logger   *slog.Logger
}

// NewAchievementHandler creates a new AchievementHandler.
func NewAchievementHandler(registry *engine.Registry, logger *slog.Logger) *AchievementHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AchievementHandler")
	}

	return &AchievementHandler{
		registry: registry,
		logger:   logger.With(slog.String("component", "achievement_handler")),
	}
}

// AchievementResponse represents one catalog entry together with the
// learner's unlock state.
type AchievementResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Category    string     `json:"category"`
	XPReward    int        `json:"xp_reward"`
	Target      int        `json:"target,omitempty"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

// UnlockResponse reports the outcome of an unlock request.
type UnlockResponse struct {
	AchievementID    string `json:"achievement_id"`
	WasNewlyUnlocked bool   `json:"was_newly_unlocked"`
}

// List handles GET /learners/{learnerID}/achievements requests. It
// returns the full catalog annotated with the learner's unlocks.
func (h *AchievementHandler) List(w http.ResponseWriter, r *http.Request) {
	eng, ok := learnerEngine(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	unlockedAt := make(map[string]time.Time)
	for _, u := range eng.UnlockedAchievements() {
		unlockedAt[u.AchievementID] = u.UnlockedAt
	}

	catalog := eng.Achievements()
	response := make([]AchievementResponse, 0, len(catalog))
	for _, a := range catalog {
		entry := AchievementResponse{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Icon:        a.Icon,
			Category:    string(a.Category),
			XPReward:    a.XPReward,
			Target:      a.Target,
		}
		if at, unlocked := unlockedAt[a.ID]; unlocked {
			entry.Unlocked = true
			entry.UnlockedAt = &at
		}
		response = append(response, entry)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// Unlock handles POST /learners/{learnerID}/achievements/{id}/unlock
// requests. Unknown achievement IDs and repeat unlocks are reported as
// was_newly_unlocked=false rather than errors.
func (h *AchievementHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	eng, ok := learnerEngine(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	achievementID := chi.URLParam(r, "id")
	if achievementID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Achievement ID is required")
		return
	}

	newlyUnlocked, err := eng.UnlockAchievement(achievementID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UnlockResponse{
		AchievementID:    achievementID,
		WasNewlyUnlocked: newlyUnlocked,
	})
}
