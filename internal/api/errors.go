package api

import (
	"errors"
	"net/http"

	"github.com/kestrel-edu/progression-api/internal/domain"
	"github.com/kestrel-edu/progression-api/internal/domain/srs"
)

// MapErrorToStatusCode translates domain errors into HTTP status codes.
// Validation failures on caller-supplied values map to 400, missing
// entities to 404, everything else to 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownCard):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidXPAmount),
		errors.Is(err, domain.ErrEmptyReason),
		errors.Is(err, domain.ErrInvalidQualityScore),
		errors.Is(err, domain.ErrInvalidDifficulty),
		errors.Is(err, domain.ErrEmptyCardSide),
		errors.Is(err, domain.ErrInvalidChallengeTarget),
		errors.Is(err, domain.ErrDuplicateChallenge),
		errors.Is(err, srs.ErrInvalidDays):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for the error.
// Domain validation errors are safe to surface verbatim; anything else
// is replaced with a generic message so internals never leak.
func GetSafeErrorMessage(err error) string {
	for _, safe := range []error{
		domain.ErrUnknownCard,
		domain.ErrInvalidXPAmount,
		domain.ErrEmptyReason,
		domain.ErrInvalidQualityScore,
		domain.ErrInvalidDifficulty,
		domain.ErrEmptyCardSide,
		domain.ErrInvalidChallengeTarget,
		domain.ErrDuplicateChallenge,
		srs.ErrInvalidDays,
	} {
		if errors.Is(err, safe) {
			return safe.Error()
		}
	}

	return "An internal error occurred"
}
