package services

import (
	"time"

	"upipay_backend/internal/models"
)

// StatusPublisher pushes a status transition to live subscribers of a
// reference. Delivery is best-effort; implementations must never return
// an error and must not block the transition path.
type StatusPublisher interface {
	PublishStatus(reference string, status models.TransactionStatus, at time.Time)
}

// NopPublisher is used when no live channel is wired, e.g. in tests that
// only exercise the state machine.
type NopPublisher struct{}

func (NopPublisher) PublishStatus(string, models.TransactionStatus, time.Time) {}
