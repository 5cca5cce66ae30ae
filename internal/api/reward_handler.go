package api

import (
	"log/slog"
	"net/http"

	"github.com/kestrel-edu/progression-api/internal/api/shared"
	"github.com/kestrel-edu/progression-api/internal/engine"
)

// RewardHandler exposes the reward event queue to the celebration UI.
type RewardHandler struct {
	registry *engine.Registry
	logger   *slog.Logger
}

// NewRewardHandler creates a new RewardHandler.
func NewRewardHandler(registry *engine.Registry, logger *slog.Logger) *RewardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for RewardHandler")
	}

	return &RewardHandler{
		registry: registry,
		logger:   logger.With(slog.String("component", "reward_handler")),
	}
}

// Next handles GET /learners/{learnerID}/rewards/next requests. It
// drains and returns the oldest pending reward event, or 204 No Content
// when the queue is empty. Draining is destructive by design: each
// celebration is surfaced exactly once.
func (h *RewardHandler) Next(w http.ResponseWriter, r *http.Request) {
	eng, ok := learnerEngine(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	event := eng.DrainNextRewardEvent()
	if event == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, event)
}
