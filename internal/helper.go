package internal

import (
	"context"
	"time"

	"github.com/aykanferhat/kafka-consumer-service/pkg/log"
)

// processMessage runs the consumer under maxProcessingTime. The error is returned as soon as
// the deadline passes; done is closed only once the consume call itself has returned.
func processMessage(ctx context.Context, consumer Consumer, message *ConsumerMessage, maxProcessingTime time.Duration) (<-chan struct{}, error) {
	contextWithTimeout, cancel := context.WithTimeout(ctx, maxProcessingTime)
	defer cancel()
	resultChan := make(chan error, 1)
	done := make(chan struct{})
	go func(r chan<- error) {
		defer close(done)
		defer func() {
			if rec := recover(); rec != nil {
				r <- NewErrWithArgs("consumer panicked, topic: %s, partition: %d, offset: %d, panic: %v", message.Topic, message.Partition, message.Offset, rec)
			}
		}()
		r <- consumer.Consume(contextWithTimeout, message)
	}(resultChan)
	select {
	case err := <-resultChan:
		return done, err
	case <-contextWithTimeout.Done():
		return done, contextWithTimeout.Err()
	}
}

func processConsumedMessageError(ctx context.Context, message *ConsumerMessage, err error, initializedContext ListenerInitializeContext) {
	for _, interceptor := range initializedContext.ConsumerErrorInterceptors {
		interceptor.OnError(ctx, message, err)
	}
	log.Errorf("group: %s, topic: %s, partition: %d, offset: %d, consume err: %s", message.GroupID, message.Topic, message.Partition, message.Offset, err.Error())
	if initializedContext.LastStep != nil {
		initializedContext.LastStep(ctx, message, err)
	}
}
