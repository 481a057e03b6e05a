package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"job-portal-backend/internal/domain"
)

// Publisher serializes events to JSON and hands them to the Redis broker.
// Delivery is as strong as Redis pub/sub: at-most-once, no replay.
type Publisher struct {
	client *redis.Client
}

func NewPublisher(client *redis.Client) (*Publisher, error) {
	if client == nil {
		return nil, errors.New("events: broker client is nil")
	}
	return &Publisher{client: client}, nil
}

func (p *Publisher) PublishUserCreated(ctx context.Context, event domain.UserCreatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: marshaling user-created payload: %w", err)
	}

	if err := p.client.Publish(ctx, domain.SubjectUserCreated, data).Err(); err != nil {
		return fmt.Errorf("events: publishing on %q: %w", domain.SubjectUserCreated, err)
	}
	return nil
}
