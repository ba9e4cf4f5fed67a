package service

import (
	"context"
	"time"
)

// AccountEvent represents an account lifecycle event published for
// downstream consumers (analytics, referral reward processing).
type AccountEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	EventType    string    `json:"event_type"`           // e.g. "account.registered"
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	ReferralCode string    `json:"referral_code,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EventTypeAccountRegistered is published once per successful registration.
const EventTypeAccountRegistered = "account.registered"

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishAccountEvent publishes an account event for async processing.
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
