package internal

import (
	"sync"
	"sync/atomic"
)

// messageLane processes the messages of one key hash bucket of a partition in arrival order.
type messageLane struct {
	messageChan chan *ConsumerMessage
	stopped     *atomic.Bool
	process     func(message *ConsumerMessage)
	waitGroup   *sync.WaitGroup
	index       int
}

func newMessageLane(index, bufferSize int, stopped *atomic.Bool, waitGroup *sync.WaitGroup, process func(message *ConsumerMessage)) *messageLane {
	lane := &messageLane{
		index:       index,
		messageChan: make(chan *ConsumerMessage, bufferSize),
		stopped:     stopped,
		process:     process,
		waitGroup:   waitGroup,
	}
	waitGroup.Add(1)
	go lane.listen()
	return lane
}

func (lane *messageLane) Publish(message *ConsumerMessage) {
	lane.messageChan <- message
}

func (lane *messageLane) Close() {
	close(lane.messageChan)
}

// listen skips buffered messages once the partition is revoked; they stay uncommitted.
func (lane *messageLane) listen() {
	defer lane.waitGroup.Done()
	for message := range lane.messageChan {
		if lane.stopped.Load() {
			continue
		}
		lane.process(message)
	}
}
