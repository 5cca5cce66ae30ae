package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/kestrel-edu/progression-api/internal/api/shared"
	"github.com/kestrel-edu/progression-api/internal/domain"
	"github.com/kestrel-edu/progression-api/internal/engine"
)

// CardHandler handles flashcard HTTP requests.
type CardHandler struct {
	registry *engine.Registry
	logger   *slog.Logger
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(registry *engine.Registry, logger *slog.Logger) *CardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardHandler")
	}

	return &CardHandler{
		registry: registry,
		logger:   logger.With(slog.String("component", "card_handler")),
	}
}

// CreateCardRequest represents the request body for creating a flashcard.
type CreateCardRequest struct {
	Front      string `json:"front"      validate:"required"`
	Back       string `json:"back"       validate:"required"`
	Difficulty int    `json:"difficulty" validate:"required,gte=1,lte=5"`
}

// ReviewCardRequest represents the request body for reviewing a card.
// Quality is a pointer so that an explicit zero survives decoding.
type ReviewCardRequest struct {
	Quality *int `json:"quality" validate:"required,gte=0,lte=5"`
}

// PostponeCardRequest represents the request body for postponing a card.
type PostponeCardRequest struct {
	Days int `json:"days" validate:"required,gte=1"`
}

// CardResponse represents a flashcard with its schedule state.
type CardResponse struct {
	ID           string    `json:"id"`
	Front        string    `json:"front"`
	Back         string    `json:"back"`
	Difficulty   int       `json:"difficulty"`
	Interval     int       `json:"interval"`
	EaseFactor   float64   `json:"ease_factor"`
	Repetitions  int       `json:"repetitions"`
	NextReviewAt time.Time `json:"next_review_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Create handles POST /learners/{learnerID}/cards requests.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	eng, ok := learnerEngine(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	var req CreateCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Validation error", err)
		return
	}

	card, err := eng.AddFlashcard(req.Front, req.Back, req.Difficulty)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, cardToResponse(card))
}

// Review handles POST /learners/{learnerID}/cards/{id}/review requests.
func (h *CardHandler) Review(w http.ResponseWriter, r *http.Request) {
	eng, ok := learnerEngine(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	cardID, ok := cardIDParam(w, r, h.logger)
	if !ok {
		return
	}

	var req ReviewCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Validation error", err)
		return
	}

	card, err := eng.ReviewFlashcard(cardID, *req.Quality)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// Postpone handles POST /learners/{learnerID}/cards/{id}/postpone
// requests.
func (h *CardHandler) Postpone(w http.ResponseWriter, r *http.Request) {
	eng, ok := learnerEngine(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	cardID, ok := cardIDParam(w, r, h.logger)
	if !ok {
		return
	}

	var req PostponeCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Validation error", err)
		return
	}

	card, err := eng.PostponeFlashcard(cardID, req.Days)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// Due handles GET /learners/{learnerID}/cards/due requests.
func (h *CardHandler) Due(w http.ResponseWriter, r *http.Request) {
	eng, ok := learnerEngine(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardsToResponse(eng.DueFlashcards()))
}

// List handles GET /learners/{learnerID}/cards requests.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	eng, ok := learnerEngine(w, r, h.registry, h.logger)
	if !ok {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardsToResponse(eng.Flashcards()))
}

// cardToResponse converts a domain.Flashcard to a CardResponse.
func cardToResponse(card *domain.Flashcard) CardResponse {
	return CardResponse{
		ID:           card.ID.String(),
		Front:        card.Front,
		Back:         card.Back,
		Difficulty:   card.Difficulty,
		Interval:     card.Interval,
		EaseFactor:   card.EaseFactor,
		Repetitions:  card.Repetitions,
		NextReviewAt: card.NextReviewAt,
		CreatedAt:    card.CreatedAt,
		UpdatedAt:    card.UpdatedAt,
	}
}

func cardsToResponse(cards []*domain.Flashcard) []CardResponse {
	response := make([]CardResponse, 0, len(cards))
	for _, card := range cards {
		response = append(response, cardToResponse(card))
	}
	return response
}
