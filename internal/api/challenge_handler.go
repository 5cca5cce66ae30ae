package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kestrel-edu/progression-api/internal/api/shared"
	"github.com/kestrel-edu/progression-api/internal/domain"
	"github.com/kestrel-edu/progression-api/internal/engine"
)

// ChallengeHandler handles daily-challenge HTTP requests.
type ChallengeHandler struct {
	registry *engine.Registry
	logger   *slog.Logger
}

// NewChallengeHandler creates a new ChallengeHandler.
func NewChallengeHandler(registry *engine.Registry, logger *slog.Logger) *ChallengeHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ChallengeHandler")
	}

	return &ChallengeHandler{
		registry: registry,
		logger:   logger.With(slog.String("component", "challenge_handler")),
	}
}

// CreateChallengeRequest represents the request body for registering a
// challenge.
type CreateChallengeRequest struct {
	ID          string `json:"id"          validate:"required"`
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Type        string `json:"type"        validate:"required,oneof=video quiz practice social"`
	XPReward    int    `json:"xp_reward"   validate:"gte=0"`
	Target      int    `json:"target"      validate:"required,gt=0"`
}

// SetProgressRequest represents the request body for reporting progress.
type SetProgressRequest struct {
	Progress int `json:"progress"`
}

// ChallengeResponse represents one challenge instance.
type ChallengeResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	XPReward    int       `json:"xp_reward"`
	Progress    int       `json:"progress"`
	Target      int       `json:"target"`
	Completed   bool      `json:"completed"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// SetProgressResponse reports the outcome of a progress write.
type SetProgressResponse struct {
	ChallengeID  string `json:"challenge_id"`
	CompletedNow bool   `json:"completed_now"`
}

// List handles GET /learners/{learnerID}/challenges requests. Expired
// challenges are included; filtering them out is the caller's concern.
func (h *ChallengeHandler) List(w http.ResponseWriter, r *http.Request) {
	eng, ok := learnerEngine(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	challenges := eng.ActiveChallenges()
	response := make([]ChallengeResponse, 0, len(challenges))
	for _, c := range challenges {
		response = append(response, challengeToResponse(c))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// Create handles POST /learners/{learnerID}/challenges requests.
func (h *ChallengeHandler) Create(w http.ResponseWriter, r *http.Request) {
	eng, ok := learnerEngine(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	var req CreateChallengeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Validation error", err)
		return
	}

	// ExpiresAt is left zero so the engine stamps it from its own clock.
	challenge := domain.DailyChallenge{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Type:        domain.ChallengeType(req.Type),
		XPReward:    req.XPReward,
		Target:      req.Target,
	}

	if err := eng.AddChallenge(challenge); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	created, _ := eng.Challenge(req.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, challengeToResponse(created))
}

// SetProgress handles PATCH /learners/{learnerID}/challenges/{id}/progress
// requests. Unknown challenge IDs are benign no-ops reported as
// completed_now=false.
func (h *ChallengeHandler) SetProgress(w http.ResponseWriter, r *http.Request) {
	eng, ok := learnerEngine(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	challengeID := chi.URLParam(r, "id")
	if challengeID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Challenge ID is required")
		return
	}

	var req SetProgressRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	completedNow, err := eng.SetChallengeProgress(challengeID, req.Progress)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SetProgressResponse{
		ChallengeID:  challengeID,
		CompletedNow: completedNow,
	})
}

// challengeToResponse converts a domain.DailyChallenge to a
// ChallengeResponse.
func challengeToResponse(c domain.DailyChallenge) ChallengeResponse {
	return ChallengeResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Type:        string(c.Type),
		XPReward:    c.XPReward,
		Progress:    c.Progress,
		Target:      c.Target,
		Completed:   c.Completed,
		ExpiresAt:   c.ExpiresAt,
	}
}
