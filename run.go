package consumerservice

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// WaitStarted blocks until every listener has started listening on all its
// assigned partitions, or timeout passes.
func WaitStarted(ctx context.Context, listeners map[string]Listener, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	group, ctx := errgroup.WithContext(ctx)
	for _, listener := range listeners {
		listener := listener
		group.Go(func() error {
			return listener.WaitConsumerStart(ctx)
		})
	}
	return group.Wait()
}

// Run blocks until ctx is done, then unsubscribes every listener in parallel and
// waits at most stopTimeout for their partitions to be released.
func Run(ctx context.Context, listeners map[string]Listener, stopTimeout time.Duration) error {
	<-ctx.Done()
	return Shutdown(listeners, stopTimeout)
}

func Shutdown(listeners map[string]Listener, stopTimeout time.Duration) error {
	stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	var group errgroup.Group
	for _, listener := range listeners {
		listener := listener
		group.Go(func() error {
			listener.Unsubscribe()
			return listener.WaitConsumerStop(stopCtx)
		})
	}
	return group.Wait()
}
