package internal

import (
	"context"
)

//go:generate mockgen -source=consumer_interceptor.go -destination=mock_consumer_interceptor.go -package=internal

type ConsumerInterceptor interface {
	OnConsume(ctx context.Context, message *ConsumerMessage) context.Context
}
