package internal

import (
	"context"
)

type ProducerInterceptor interface {
	OnProduce(ctx context.Context, message *ProducerMessage)
}

type ProducerInterceptorFunc func(ctx context.Context, message *ProducerMessage)

func (f ProducerInterceptorFunc) OnProduce(ctx context.Context, message *ProducerMessage) {
	f(ctx, message)
}
