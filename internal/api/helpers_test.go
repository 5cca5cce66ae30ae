package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-edu/progression-api/internal/engine"
)

var testStart = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// newTestServer wires the handlers into a chi router the same way the
// server command does, backed by a fake clock.
func newTestServer(t *testing.T) (*chi.Mux, *engine.Registry, *clockwork.FakeClock) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := clockwork.NewFakeClockAt(testStart)
	registry := engine.NewRegistry(engine.Options{
		Clock:  clock,
		Logger: logger,
	})

	progressHandler := NewProgressHandler(registry, logger)
	achievementHandler := NewAchievementHandler(registry, logger)
	challengeHandler := NewChallengeHandler(registry, logger)
	cardHandler := NewCardHandler(registry, logger)
	rewardHandler := NewRewardHandler(registry, logger)

	r := chi.NewRouter()
	r.Route("/api/learners/{learnerID}", func(r chi.Router) {
		r.Post("/xp", progressHandler.GrantXP)
		r.Get("/xp/history", progressHandler.GetHistory)
		r.Get("/progress", progressHandler.GetProgress)
		r.Get("/achievements", achievementHandler.List)
		r.Post("/achievements/{id}/unlock", achievementHandler.Unlock)
		r.Get("/challenges", challengeHandler.List)
		r.Post("/challenges", challengeHandler.Create)
		r.Patch("/challenges/{id}/progress", challengeHandler.SetProgress)
		r.Get("/cards", cardHandler.List)
		r.Post("/cards", cardHandler.Create)
		r.Get("/cards/due", cardHandler.Due)
		r.Post("/cards/{id}/review", cardHandler.Review)
		r.Post("/cards/{id}/postpone", cardHandler.Postpone)
		r.Get("/rewards/next", rewardHandler.Next)
	})

	return r, registry, clock
}

// doJSON performs a request with an optional JSON body and decodes the
// JSON response into out when it is non-nil.
func doJSON(t *testing.T, router http.Handler, method, path string, body, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if out != nil && rec.Code < http.StatusMultipleChoices && rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}

	return rec
}
