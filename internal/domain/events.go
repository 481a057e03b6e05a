package domain

import "context"

// SubjectUserCreated is the broker subject other services subscribe to.
const SubjectUserCreated = "user:created"

// UserCreatedEvent mirrors the fields of a freshly created user record.
// The payload shape is fixed; there is no schema version field.
type UserCreatedEvent struct {
	ID          string `json:"id"`
	UserName    string `json:"user_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
	IsBlocked   bool   `json:"is_blocked"`
}

// EventPublisher hands events to the broker client. Delivery is best-effort,
// at-most-once: callers must not couple request outcomes to publish results.
type EventPublisher interface {
	PublishUserCreated(ctx context.Context, event UserCreatedEvent) error
}
