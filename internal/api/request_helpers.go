package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kestrel-edu/progression-api/internal/api/shared"
	"github.com/kestrel-edu/progression-api/internal/engine"
)

// learnerEngine resolves the learner's engine from the learnerID URL
// parameter. On a missing or malformed ID it writes a 400 response and
// returns false.
func learnerEngine(
	w http.ResponseWriter,
	r *http.Request,
	registry *engine.Registry,
	log *slog.Logger,
) (*engine.Engine, bool) {
	raw := chi.URLParam(r, "learnerID")
	if raw == "" {
		log.Warn("learner ID not found in URL path")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Learner ID is required")
		return nil, false
	}

	learnerID, err := uuid.Parse(raw)
	if err != nil {
		log.Warn("invalid learner ID format", slog.String("learner_id", raw))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid learner ID format")
		return nil, false
	}

	return registry.ForLearner(learnerID), true
}

// cardIDParam parses the card ID URL parameter. On failure it writes a
// 400 response and returns false.
func cardIDParam(w http.ResponseWriter, r *http.Request, log *slog.Logger) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		log.Warn("card ID not found in URL path")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Card ID is required")
		return uuid.Nil, false
	}

	cardID, err := uuid.Parse(raw)
	if err != nil {
		log.Warn("invalid card ID format", slog.String("card_id", raw))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid card ID format")
		return uuid.Nil, false
	}

	return cardID, true
}
