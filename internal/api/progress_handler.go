package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/kestrel-edu/progression-api/internal/api/shared"
	"github.com/kestrel-edu/progression-api/internal/domain"
	"github.com/kestrel-edu/progression-api/internal/engine"
)

// ProgressHandler handles XP and level HTTP requests.
type ProgressHandler struct {
	registry *engine.Registry
	logger   *slog.Logger
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(registry *engine.Registry, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ProgressHandler")
	}

	return &ProgressHandler{
		registry: registry,
		logger:   logger.With(slog.String("component", "progress_handler")),
	}
}

// GrantXPRequest represents the request body for granting XP.
type GrantXPRequest struct {
	Amount int    `json:"amount" validate:"required,gt=0"`
	Reason string `json:"reason" validate:"required"`
}

// GrantXPResponse represents the outcome of an XP grant.
type GrantXPResponse struct {
	NewTotal  int           `json:"new_total"`
	LeveledUp bool          `json:"leveled_up"`
	NewLevel  LevelResponse `json:"new_level"`
}

// LevelResponse represents a level definition.
type LevelResponse struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	Badge string `json:"badge"`
	MinXP int    `json:"min_xp"`
	MaxXP *int   `json:"max_xp"` // null at the unbounded final level
}

// ProgressResponse represents the learner's progression summary.
type ProgressResponse struct {
	TotalXP       int           `json:"total_xp"`
	Level         LevelResponse `json:"level"`
	XPToNextLevel *int          `json:"xp_to_next_level"` // null at the max level
}

// XPEventResponse represents one ledger entry.
type XPEventResponse struct {
	Amount     int       `json:"amount"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}

// GrantXP handles POST /learners/{learnerID}/xp requests.
func (h *ProgressHandler) GrantXP(w http.ResponseWriter, r *http.Request) {
	eng, ok := learnerEngine(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	var req GrantXPRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Validation error", err)
		return
	}

	result, err := eng.GrantXP(req.Amount, req.Reason)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GrantXPResponse{
		NewTotal:  result.NewTotal,
		LeveledUp: result.LeveledUp,
		NewLevel:  levelToResponse(result.NewLevel),
	})
}

// GetProgress handles GET /learners/{learnerID}/progress requests.
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	eng, ok := learnerEngine(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	response := ProgressResponse{
		TotalXP: eng.TotalXP(),
		Level:   levelToResponse(eng.CurrentLevel()),
	}
	if remaining, hasNext := eng.XPToNextLevel(); hasNext {
		response.XPToNextLevel = &remaining
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetHistory handles GET /learners/{learnerID}/xp/history requests.
func (h *ProgressHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	eng, ok := learnerEngine(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	history := eng.XPHistory()
	response := make([]XPEventResponse, 0, len(history))
	for _, event := range history {
		response = append(response, XPEventResponse{
			Amount:     event.Amount,
			Reason:     event.Reason,
			OccurredAt: event.OccurredAt,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// levelToResponse converts a domain.LevelDefinition to a LevelResponse.
func levelToResponse(level domain.LevelDefinition) LevelResponse {
	response := LevelResponse{
		Level: level.Level,
		Title: level.Title,
		Badge: level.Badge,
		MinXP: level.MinXP,
	}
	if !level.Unbounded() {
		maxXP := level.MaxXP
		response.MaxXP = &maxXP
	}

	return response
}
