package internal

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aykanferhat/kafka-consumer-service/pkg/csmap"
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka"
)

type Status string

const (
	AssignedTopicPartition   Status = "ASSIGNED_TOPIC_PARTITION"
	StartedListening         Status = "STARTED_LISTENING"
	ListenedMessage          Status = "LISTENED_MESSAGE"
	StoppedListening         Status = "STOPPED_LISTENING"
)

const noConsumedOffset int64 = -1

type ListenerStatus struct {
	Time                time.Time
	Topic               string
	Status              Status
	LastConsumedOffset  int64
	LastCommittedOffset int64
	Partition           int32
}

func (s ListenerStatus) IsStarted() bool {
	return s.Status == StartedListening || s.Status == ListenedMessage
}

type ListenerStatusListener struct {
	statusMap   *csmap.ConcurrentSwissMap[string, *ListenerStatus]
	startedChan chan struct{}
	stoppedChan chan struct{}
	startOnce   sync.Once
	stopOnce    sync.Once
	joined      atomic.Bool
	stopping    atomic.Bool
}

func newListenerStatusListener() *ListenerStatusListener {
	return &ListenerStatusListener{
		statusMap:   csmap.Create[string, *ListenerStatus](),
		startedChan: make(chan struct{}),
		stoppedChan: make(chan struct{}),
	}
}

func (listener *ListenerStatusListener) Listen(topic string, partition int32, status Status, offset int64) {
	key := getKey(topic, partition)
	lastConsumedOffset := offset
	if offset == noConsumedOffset {
		if previous, exists := listener.statusMap.Load(key); exists {
			lastConsumedOffset = previous.LastConsumedOffset
		}
	}
	listener.statusMap.Store(key, &ListenerStatus{
		Time:               time.Now(),
		Topic:              topic,
		Partition:          partition,
		Status:             status,
		LastConsumedOffset: lastConsumedOffset,
	})
	listener.evaluate()
}

// HandleAssignment records the claims of a group session. Released partitions are dropped
// from the status map.
func (listener *ListenerStatusListener) HandleAssignment() kafka.AssignmentHandler {
	return func(claims map[string][]int32, assigned bool) {
		for topic, partitions := range claims {
			for _, partition := range partitions {
				if assigned {
					listener.statusMap.Store(getKey(topic, partition), &ListenerStatus{
						Time:               time.Now(),
						Topic:              topic,
						Partition:          partition,
						Status:             AssignedTopicPartition,
						LastConsumedOffset: noConsumedOffset,
					})
					continue
				}
				listener.statusMap.Delete(getKey(topic, partition))
			}
		}
		listener.joined.Store(assigned)
		listener.evaluate()
	}
}

// MarkStopping arms the stop signal; it fires once no partition is listening.
func (listener *ListenerStatusListener) MarkStopping() {
	listener.stopping.Store(true)
	listener.evaluate()
}

func (listener *ListenerStatusListener) WaitConsumerStart(ctx context.Context) error {
	select {
	case <-listener.startedChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (listener *ListenerStatusListener) WaitConsumerStop(ctx context.Context) error {
	select {
	case <-listener.stoppedChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (listener *ListenerStatusListener) Statuses() []ListenerStatus {
	statuses := make([]ListenerStatus, 0, listener.statusMap.Count())
	listener.statusMap.Range(func(_ string, status *ListenerStatus) bool {
		statuses = append(statuses, *status)
		return false
	})
	sort.Slice(statuses, func(i, j int) bool {
		if statuses[i].Topic != statuses[j].Topic {
			return statuses[i].Topic < statuses[j].Topic
		}
		return statuses[i].Partition < statuses[j].Partition
	})
	return statuses
}

func (listener *ListenerStatusListener) evaluate() {
	count := listener.statusMap.Count()
	started := 0
	listener.statusMap.Range(func(_ string, status *ListenerStatus) bool {
		if status.IsStarted() {
			started++
		}
		return false
	})
	if listener.joined.Load() && started == count {
		listener.startOnce.Do(func() { close(listener.startedChan) })
	}
	if listener.stopping.Load() && started == 0 {
		listener.stopOnce.Do(func() { close(listener.stoppedChan) })
	}
}
