package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kestrel-edu/progression-api/internal/api"
	apiMiddleware "github.com/kestrel-edu/progression-api/internal/api/middleware"
	"github.com/kestrel-edu/progression-api/internal/engine"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func setupRouter(registry *engine.Registry, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	progressHandler := api.NewProgressHandler(registry, logger)
	achievementHandler := api.NewAchievementHandler(registry, logger)
	challengeHandler := api.NewChallengeHandler(registry, logger)
	cardHandler := api.NewCardHandler(registry, logger)
	rewardHandler := api.NewRewardHandler(registry, logger)

	r.Route("/api/learners/{learnerID}", func(r chi.Router) {
		// Progression
		r.Post("/xp", progressHandler.GrantXP)
		r.Get("/xp/history", progressHandler.GetHistory)
		r.Get("/progress", progressHandler.GetProgress)

		// Achievements
		r.Get("/achievements", achievementHandler.List)
		r.Post("/achievements/{id}/unlock", achievementHandler.Unlock)

		// Daily challenges
		r.Get("/challenges", challengeHandler.List)
		r.Post("/challenges", challengeHandler.Create)
		r.Patch("/challenges/{id}/progress", challengeHandler.SetProgress)

		// Flashcards
		r.Get("/cards", cardHandler.List)
		r.Post("/cards", cardHandler.Create)
		r.Get("/cards/due", cardHandler.Due)
		r.Post("/cards/{id}/review", cardHandler.Review)
		r.Post("/cards/{id}/postpone", cardHandler.Postpone)

		// Reward events
		r.Get("/rewards/next", rewardHandler.Next)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
