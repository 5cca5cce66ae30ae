package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateNewEaseFactor(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	testCases := []struct {
		name      string
		currentEF float64
		quality   int
		expected  float64
	}{
		{name: "perfect recall raises ease", currentEF: 2.5, quality: 5, expected: 2.6},
		{name: "good recall keeps ease flat", currentEF: 2.5, quality: 4, expected: 2.5},
		{name: "hesitant pass lowers ease", currentEF: 2.5, quality: 3, expected: 2.36},
		{name: "near miss", currentEF: 2.5, quality: 2, expected: 2.18},
		{name: "hard failure", currentEF: 2.5, quality: 1, expected: 1.96},
		{name: "blackout", currentEF: 2.5, quality: 0, expected: 1.7},
		{name: "clamped at the floor", currentEF: 1.35, quality: 0, expected: 1.3},
		{name: "already at the floor", currentEF: 1.3, quality: 1, expected: 1.3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := calculateNewEaseFactor(tc.currentEF, tc.quality, params)
			assert.InDelta(t, tc.expected, got, 1e-9)
		})
	}
}

func TestEaseFactorNeverBelowFloor(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	ef := 2.5
	for i := 0; i < 50; i++ {
		ef = calculateNewEaseFactor(ef, 0, params)
		assert.GreaterOrEqual(t, ef, params.MinEaseFactor)
	}
	assert.Equal(t, params.MinEaseFactor, ef)
}

func TestCalculateNewInterval(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	testCases := []struct {
		name            string
		currentInterval int
		repetitions     int
		easeFactor      float64
		quality         int
		expected        int
	}{
		{name: "first pass", currentInterval: 1, repetitions: 0, easeFactor: 2.5, quality: 5, expected: 1},
		{name: "second pass", currentInterval: 1, repetitions: 1, easeFactor: 2.6, quality: 5, expected: 6},
		{name: "third pass multiplies by ease", currentInterval: 6, repetitions: 2, easeFactor: 2.7, quality: 5, expected: 16},
		{name: "fourth pass", currentInterval: 16, repetitions: 3, easeFactor: 2.8, quality: 5, expected: 45},
		{name: "rounding goes to nearest day", currentInterval: 10, repetitions: 2, easeFactor: 2.55, quality: 4, expected: 26},
		{name: "lapse resets regardless of history", currentInterval: 45, repetitions: 7, easeFactor: 2.8, quality: 2, expected: 1},
		{name: "lapse at quality zero", currentInterval: 6, repetitions: 2, easeFactor: 2.5, quality: 0, expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := calculateNewInterval(tc.currentInterval, tc.repetitions, tc.easeFactor, tc.quality, params)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestCalculateNextReviewAt(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	got := calculateNextReviewAt(now, 6)
	assert.Equal(t, time.Date(2025, 6, 7, 9, 30, 0, 0, time.UTC), got)
}
