package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createCard(t *testing.T, router http.Handler, base string) CardResponse {
	t.Helper()

	var card CardResponse
	rec := doJSON(t, router, http.MethodPost, base+"/cards",
		CreateCardRequest{Front: "front", Back: "back", Difficulty: 3}, &card)
	require.Equal(t, http.StatusCreated, rec.Code)
	return card
}

func TestCreateCard(t *testing.T) {
	t.Parallel()
	router, _, _ := newTestServer(t)
	base := "/api/learners/" + uuid.NewString()

	card := createCard(t, router, base)

	assert.NotEmpty(t, card.ID)
	assert.Equal(t, 1, card.Interval)
	assert.Equal(t, 2.5, card.EaseFactor)
	assert.Equal(t, 0, card.Repetitions)
	assert.Equal(t, testStart, card.NextReviewAt.UTC(), "new cards are due immediately")
}

func TestCreateCardValidation(t *testing.T) {
	t.Parallel()
	router, _, _ := newTestServer(t)
	base := "/api/learners/" + uuid.NewString()

	testCases := []struct {
		name string
		body CreateCardRequest
	}{
		{name: "missing front", body: CreateCardRequest{Back: "b", Difficulty: 3}},
		{name: "missing back", body: CreateCardRequest{Front: "f", Difficulty: 3}},
		{name: "difficulty out of range", body: CreateCardRequest{Front: "f", Back: "b", Difficulty: 6}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, base+"/cards", tc.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestReviewCard(t *testing.T) {
	t.Parallel()
	router, _, _ := newTestServer(t)
	base := "/api/learners/" + uuid.NewString()
	card := createCard(t, router, base)

	quality := 5
	var reviewed CardResponse
	rec := doJSON(t, router, http.MethodPost, base+"/cards/"+card.ID+"/review",
		ReviewCardRequest{Quality: &quality}, &reviewed)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, reviewed.Repetitions)
	assert.Equal(t, 1, reviewed.Interval)
	assert.InDelta(t, 2.6, reviewed.EaseFactor, 1e-9)
	assert.Equal(t, testStart.AddDate(0, 0, 1), reviewed.NextReviewAt.UTC())
}

func TestReviewCardQualityZero(t *testing.T) {
	t.Parallel()
	router, _, _ := newTestServer(t)
	base := "/api/learners/" + uuid.NewString()
	card := createCard(t, router, base)

	// An explicit zero quality is a valid (failing) review, not a
	// missing field.
	quality := 0
	var reviewed CardResponse
	rec := doJSON(t, router, http.MethodPost, base+"/cards/"+card.ID+"/review",
		ReviewCardRequest{Quality: &quality}, &reviewed)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, reviewed.Repetitions)
	assert.InDelta(t, 1.7, reviewed.EaseFactor, 1e-9)
}

func TestReviewCardErrors(t *testing.T) {
	t.Parallel()
	router, _, _ := newTestServer(t)
	base := "/api/learners/" + uuid.NewString()
	card := createCard(t, router, base)

	t.Run("unknown card is 404", func(t *testing.T) {
		quality := 5
		rec := doJSON(t, router, http.MethodPost, base+"/cards/"+uuid.NewString()+"/review",
			ReviewCardRequest{Quality: &quality}, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("quality out of range is 400", func(t *testing.T) {
		quality := 6
		rec := doJSON(t, router, http.MethodPost, base+"/cards/"+card.ID+"/review",
			ReviewCardRequest{Quality: &quality}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing quality is 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, base+"/cards/"+card.ID+"/review",
			map[string]string{}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed card ID is 400", func(t *testing.T) {
		quality := 5
		rec := doJSON(t, router, http.MethodPost, base+"/cards/nope/review",
			ReviewCardRequest{Quality: &quality}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPostponeCard(t *testing.T) {
	t.Parallel()
	router, _, _ := newTestServer(t)
	base := "/api/learners/" + uuid.NewString()
	card := createCard(t, router, base)

	var postponed CardResponse
	rec := doJSON(t, router, http.MethodPost, base+"/cards/"+card.ID+"/postpone",
		PostponeCardRequest{Days: 3}, &postponed)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, card.NextReviewAt.AddDate(0, 0, 3).UTC(), postponed.NextReviewAt.UTC())
	assert.Equal(t, card.Interval, postponed.Interval)

	rec = doJSON(t, router, http.MethodPost, base+"/cards/"+card.ID+"/postpone",
		PostponeCardRequest{Days: 0}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDueCards(t *testing.T) {
	t.Parallel()
	router, _, clock := newTestServer(t)
	base := "/api/learners/" + uuid.NewString()

	first := createCard(t, router, base)
	createCard(t, router, base)

	// Reviewing the first card pushes it a day out, leaving one due.
	quality := 5
	rec := doJSON(t, router, http.MethodPost, base+"/cards/"+first.ID+"/review",
		ReviewCardRequest{Quality: &quality}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var due []CardResponse
	rec = doJSON(t, router, http.MethodGet, base+"/cards/due", nil, &due)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, due, 1)

	clock.Advance(24 * time.Hour)

	rec = doJSON(t, router, http.MethodGet, base+"/cards/due", nil, &due)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, due, 2)
}

func TestListCards(t *testing.T) {
	t.Parallel()
	router, _, _ := newTestServer(t)
	base := "/api/learners/" + uuid.NewString()

	var cards []CardResponse
	rec := doJSON(t, router, http.MethodGet, base+"/cards", nil, &cards)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, cards)

	createCard(t, router, base)
	createCard(t, router, base)

	rec = doJSON(t, router, http.MethodGet, base+"/cards", nil, &cards)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, cards, 2)
}
