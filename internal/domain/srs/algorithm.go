package srs

import (
	"math"
	"time"
)

// calculateNewEaseFactor applies the SM-2 ease recurrence for a quality
// score in [0, 5]:
//
//	ef' = ef + 0.1 - (5-q) * (0.08 + (5-q) * 0.02)
//
// A perfect recall (q=5) raises the ease by 0.1; lower scores pull it
// down progressively harder. The result is clamped to
// params.MinEaseFactor after the adjustment, so a run of failures can
// never drive the ease below the floor.
func calculateNewEaseFactor(currentEF float64, quality int, params *Params) float64 {
	miss := float64(params.MaxQuality - quality)
	newEF := currentEF + 0.1 - miss*(0.08+miss*0.02)

	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}

	return newEF
}

// calculateNewInterval determines the next interval in days.
//
// On a pass (quality >= params.PassThreshold) the interval follows the
// SM-2 ladder: FirstInterval after the first pass, SecondInterval after
// the second, then round(interval * easeFactor) for every pass beyond
// that. The ease factor used is the card's current (pre-update) ease.
//
// On a lapse the interval resets to FirstInterval regardless of prior
// state.
func calculateNewInterval(
	currentInterval int,
	repetitions int,
	easeFactor float64,
	quality int,
	params *Params,
) int {
	if quality < params.PassThreshold {
		return params.FirstInterval
	}

	switch {
	case repetitions == 0:
		return params.FirstInterval
	case repetitions == 1:
		return params.SecondInterval
	default:
		return int(math.Round(float64(currentInterval) * easeFactor))
	}
}

// calculateNextReviewAt schedules the next review a whole number of
// days after now.
func calculateNextReviewAt(now time.Time, interval int) time.Time {
	return now.AddDate(0, 0, interval)
}
