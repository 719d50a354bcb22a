package internal

import (
	"context"
)

//go:generate mockgen -source=consumer.go -destination=mock_consumer.go -package=internal

type Consumer interface {
	Consume(ctx context.Context, message *ConsumerMessage) error
}

// ConsumerFunc adapts a plain callback to Consumer.
type ConsumerFunc func(ctx context.Context, message *ConsumerMessage) error

func (f ConsumerFunc) Consume(ctx context.Context, message *ConsumerMessage) error {
	return f(ctx, message)
}
