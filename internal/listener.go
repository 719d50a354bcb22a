package internal

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/aykanferhat/kafka-consumer-service/pkg/csmap"
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka"
	"github.com/aykanferhat/kafka-consumer-service/pkg/log"
)

type Listener interface {
	GetName() string
	GetGroupID() string
	GetTopics() []string
	Subscribe(ctx context.Context) error
	Unsubscribe()
	WaitConsumerStart(ctx context.Context) error
	WaitConsumerStop(ctx context.Context) error
	Statuses() []ListenerStatus
	LastCommittedOffset(topic string, partition int32) int64
}

type ListenerInitializeContext struct {
	ClusterConfig             *ClusterConfig
	ListenerConfig            *ListenerConfig
	Registration              *ListenerRegistration
	LastStep                  func(context.Context, *ConsumerMessage, error)
	ConsumerInterceptors      []ConsumerInterceptor
	ConsumerErrorInterceptors []ConsumerErrorInterceptor
	Tracers                   []Tracer
}

var kafkaNewConsumerGroup = kafka.NewConsumerGroup

type listener struct {
	cg                 kafka.ConsumerGroup
	offsetTrackers     *csmap.ConcurrentSwissMap[string, *offsetTracker]
	statusListener     *ListenerStatusListener
	initializedContext ListenerInitializeContext
	mutex              sync.Mutex
}

// NewListener merges the registration's own interceptors after the global ones.
func NewListener(initializedContext ListenerInitializeContext) Listener {
	registration := initializedContext.Registration
	initializedContext.ConsumerInterceptors = append(
		append([]ConsumerInterceptor{}, initializedContext.ConsumerInterceptors...),
		registration.ConsumerInterceptors...,
	)
	initializedContext.ConsumerErrorInterceptors = append(
		append([]ConsumerErrorInterceptor{}, initializedContext.ConsumerErrorInterceptors...),
		registration.ConsumerErrorInterceptors...,
	)
	return &listener{
		initializedContext: initializedContext,
		offsetTrackers:     csmap.Create[string, *offsetTracker](),
		statusListener:     newListenerStatusListener(),
	}
}

func (l *listener) GetName() string {
	return l.initializedContext.Registration.ConfigName
}

func (l *listener) GetGroupID() string {
	return l.initializedContext.ListenerConfig.GroupID
}

func (l *listener) GetTopics() []string {
	return l.initializedContext.ListenerConfig.Topics
}

func (l *listener) Subscribe(ctx context.Context) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if l.cg != nil {
		return NewErrWithArgs("listener already subscribed, group: %s", l.GetGroupID())
	}
	cg, err := kafkaNewConsumerGroup(
		mapToClusterConfig(l.initializedContext.ClusterConfig),
		mapToConsumerGroupConfig(l.initializedContext.ListenerConfig),
		l.Handle(),
		l.HandleAssignment(),
	)
	if err != nil {
		return err
	}
	if err := cg.Subscribe(ctx); err != nil {
		log.Errorf("listener: %s, group: %s, subscribe err: %s", l.GetName(), l.GetGroupID(), err.Error())
		return err
	}
	l.cg = cg
	log.Infof("listener: %s, group: %s subscribed to topics: %v", l.GetName(), l.GetGroupID(), l.GetTopics())
	return nil
}

func (l *listener) Unsubscribe() {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if l.cg == nil {
		return
	}
	if err := l.cg.Unsubscribe(); err != nil {
		log.Errorf("listener: %s, group: %s, unsubscribe err: %s", l.GetName(), l.GetGroupID(), err.Error())
	}
	l.statusListener.MarkStopping()
	log.Infof("listener: %s, group: %s unsubscribed", l.GetName(), l.GetGroupID())
}

func (l *listener) WaitConsumerStart(ctx context.Context) error {
	return l.statusListener.WaitConsumerStart(ctx)
}

func (l *listener) WaitConsumerStop(ctx context.Context) error {
	return l.statusListener.WaitConsumerStop(ctx)
}

func (l *listener) Statuses() []ListenerStatus {
	statuses := l.statusListener.Statuses()
	for i := range statuses {
		statuses[i].LastCommittedOffset = l.LastCommittedOffset(statuses[i].Topic, statuses[i].Partition)
	}
	return statuses
}

func (l *listener) LastCommittedOffset(topic string, partition int32) int64 {
	if tracker, exists := l.offsetTrackers.Load(getKey(topic, partition)); exists {
		return tracker.LastCommittedOffset()
	}
	return noCommittedOffset
}

// HandleAssignment forgets the offset trackers of released partitions before the status
// listener sees the session change.
func (l *listener) HandleAssignment() kafka.AssignmentHandler {
	statusHandler := l.statusListener.HandleAssignment()
	return func(claims map[string][]int32, assigned bool) {
		if !assigned {
			for topic, partitions := range claims {
				for _, partition := range partitions {
					l.offsetTrackers.Delete(getKey(topic, partition))
				}
			}
		}
		statusHandler(claims, assigned)
	}
}

// Handle returns the per partition loop. Processing runs on a context detached from the
// session so a revoke does not cancel a message half way through.
func (l *listener) Handle() kafka.PartitionHandler {
	return func(ctx context.Context, topic string, partition int32, messageChan <-chan *kafka.ConsumerMessage, commitFunc kafka.CommitMessageFunc) {
		tracker := newOffsetTracker(topic, partition, commitFunc)
		l.offsetTrackers.Store(getKey(topic, partition), tracker)
		l.statusListener.Listen(topic, partition, StartedListening, noConsumedOffset)
		defer l.statusListener.Listen(topic, partition, StoppedListening, noConsumedOffset)

		processCtx := context.WithoutCancel(ctx)
		if l.initializedContext.ListenerConfig.IsConcurrent() {
			l.listenLanes(processCtx, topic, partition, messageChan, tracker)
			return
		}
		l.listenSequential(processCtx, topic, partition, messageChan, tracker)
	}
}

func (l *listener) listenSequential(ctx context.Context, topic string, partition int32, messageChan <-chan *kafka.ConsumerMessage, tracker *offsetTracker) {
	for msg := range messageChan {
		l.statusListener.Listen(topic, partition, ListenedMessage, msg.Offset)
		tracker.Track(msg.Offset)
		l.process(ctx, l.newConsumerMessage(msg, 0))
		tracker.Done(msg.Offset)
	}
}

func (l *listener) listenLanes(ctx context.Context, topic string, partition int32, messageChan <-chan *kafka.ConsumerMessage, tracker *offsetTracker) {
	listenerConfig := l.initializedContext.ListenerConfig
	stopped := &atomic.Bool{}
	waitGroup := &sync.WaitGroup{}
	lanes := make([]*messageLane, listenerConfig.Concurrency)
	for i := range lanes {
		lanes[i] = newMessageLane(i, listenerConfig.LaneBufferSize, stopped, waitGroup, func(message *ConsumerMessage) {
			l.process(ctx, message)
			tracker.Done(message.Offset)
		})
	}
	for msg := range messageChan {
		l.statusListener.Listen(topic, partition, ListenedMessage, msg.Offset)
		tracker.Track(msg.Offset)
		lane := calculateLane(msg.Key, len(lanes))
		lanes[lane].Publish(l.newConsumerMessage(msg, lane))
	}
	stopped.Store(true)
	for _, lane := range lanes {
		lane.Close()
	}
	waitGroup.Wait()
	if pending := tracker.PendingCount(); pending > 0 {
		log.Infof("listener: %s, topic: %s, partition: %d stopped with %d uncommitted messages", l.GetName(), topic, partition, pending)
	}
}

func (l *listener) process(ctx context.Context, message *ConsumerMessage) {
	ctx = l.intercept(ctx, message)
	ctx, endFunc := trace(ctx, l.initializedContext.Tracers, message)
	defer endFunc()
	done, err := processMessage(ctx, l.initializedContext.Registration.Consumer, message, l.initializedContext.ListenerConfig.MaxProcessingTime)
	if err != nil {
		processConsumedMessageError(ctx, message, err, l.initializedContext)
	}
	// a timed out call still holds its partition or lane until it returns
	<-done
}

func (l *listener) intercept(ctx context.Context, message *ConsumerMessage) context.Context {
	for _, interceptor := range l.initializedContext.ConsumerInterceptors {
		ctx = interceptor.OnConsume(ctx, message)
	}
	return ctx
}

func (l *listener) newConsumerMessage(msg *kafka.ConsumerMessage, lane int) *ConsumerMessage {
	return &ConsumerMessage{
		ConsumerMessage: msg,
		GroupID:         l.initializedContext.ListenerConfig.GroupID,
		Tracer:          l.initializedContext.ListenerConfig.Tracer,
		Lane:            lane,
	}
}
