package internal

import (
	"sync"

	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka"
)

const noCommittedOffset int64 = -1

// offsetTracker commits the highest offset below which every tracked message is done.
// Offsets must be tracked in the order they were fetched from the partition.
type offsetTracker struct {
	commitMessageFunc   kafka.CommitMessageFunc
	mutex               sync.Mutex
	topic               string
	pending             []int64
	done                map[int64]struct{}
	lastCommittedOffset int64
	partition           int32
}

func newOffsetTracker(topic string, partition int32, commitMessageFunc kafka.CommitMessageFunc) *offsetTracker {
	return &offsetTracker{
		topic:               topic,
		partition:           partition,
		commitMessageFunc:   commitMessageFunc,
		pending:             make([]int64, 0),
		done:                make(map[int64]struct{}),
		lastCommittedOffset: noCommittedOffset,
	}
}

func (tracker *offsetTracker) Track(offset int64) {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()
	tracker.pending = append(tracker.pending, offset)
}

func (tracker *offsetTracker) Done(offset int64) {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()
	tracker.done[offset] = struct{}{}
	committable := noCommittedOffset
	for len(tracker.pending) > 0 {
		head := tracker.pending[0]
		if _, processed := tracker.done[head]; !processed {
			break
		}
		delete(tracker.done, head)
		tracker.pending = tracker.pending[1:]
		committable = head
	}
	if committable == noCommittedOffset {
		return
	}
	tracker.commitMessageFunc(tracker.topic, tracker.partition, committable)
	tracker.lastCommittedOffset = committable
}

func (tracker *offsetTracker) LastCommittedOffset() int64 {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()
	return tracker.lastCommittedOffset
}

func (tracker *offsetTracker) PendingCount() int {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()
	return len(tracker.pending)
}
