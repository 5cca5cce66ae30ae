package domain

import (
	"strings"
	"time"
)

// XPEvent is a single append-only entry in a learner's XP ledger.
// Events are never mutated or removed; the sum of all amounts is the
// learner's total XP.
type XPEvent struct {
	Amount     int       `json:"amount"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewXPEvent creates a validated XP event. The amount must be a
// non-negative integer and the reason must be non-empty. Zero amounts
// are permitted here because achievement unlocks with a zero reward
// still record a grant; the engine rejects non-positive amounts on its
// external surface.
func NewXPEvent(amount int, reason string, occurredAt time.Time) (XPEvent, error) {
	if amount < 0 {
		return XPEvent{}, ErrInvalidXPAmount
	}

	if strings.TrimSpace(reason) == "" {
		return XPEvent{}, ErrEmptyReason
	}

	return XPEvent{
		Amount:     amount,
		Reason:     reason,
		OccurredAt: occurredAt,
	}, nil
}
