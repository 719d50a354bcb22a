package internal

import (
	"context"
)

//go:generate mockgen -source=consumer_interceptor_error.go -destination=mock_consumer_interceptor_error.go -package=internal

type ConsumerErrorInterceptor interface {
	OnError(ctx context.Context, message *ConsumerMessage, err error)
}
