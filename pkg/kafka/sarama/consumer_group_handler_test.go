package sarama

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka/handler"
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka/message"
	"github.com/stretchr/testify/assert"
)

type testSession struct {
	ctx    context.Context
	claims map[string][]int32
	mutex  sync.Mutex
	marked map[int32]int64
}

func newTestSession(ctx context.Context, claims map[string][]int32) *testSession {
	return &testSession{ctx: ctx, claims: claims, marked: map[int32]int64{}}
}

func (s *testSession) Claims() map[string][]int32 { return s.claims }
func (s *testSession) MemberID() string           { return "member-1" }
func (s *testSession) GenerationID() int32        { return 1 }
func (s *testSession) Commit()                    {}
func (s *testSession) Context() context.Context   { return s.ctx }
func (s *testSession) ResetOffset(string, int32, int64, string) {
}

func (s *testSession) MarkMessage(msg *sarama.ConsumerMessage, metadata string) {
	s.MarkOffset(msg.Topic, msg.Partition, msg.Offset+1, metadata)
}

func (s *testSession) MarkOffset(_ string, partition int32, offset int64, _ string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.marked[partition] = offset
}

func (s *testSession) markedOffset(partition int32) int64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.marked[partition]
}

type testClaim struct {
	messages chan *sarama.ConsumerMessage
}

func (c *testClaim) Topic() string                            { return "demo-topic" }
func (c *testClaim) Partition() int32                         { return 0 }
func (c *testClaim) InitialOffset() int64                     { return 0 }
func (c *testClaim) HighWaterMarkOffset() int64               { return 3 }
func (c *testClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func Test_ConsumerGroupHandler_ShouldForwardMessagesAndMarkAfterDrain(t *testing.T) {
	// Given
	session := newTestSession(context.Background(), map[string][]int32{"demo-topic": {0}})
	claim := &testClaim{messages: make(chan *sarama.ConsumerMessage, 3)}
	for offset := int64(0); offset < 3; offset++ {
		claim.messages <- &sarama.ConsumerMessage{
			Topic:     "demo-topic",
			Partition: 0,
			Offset:    offset,
			Key:       []byte("key"),
			Value:     []byte("hello"),
			Headers:   []*sarama.RecordHeader{{Key: []byte("X-Source"), Value: []byte("test")}, nil},
		}
	}
	close(claim.messages)

	var received []*message.ConsumerMessage
	var partitionHandler handler.PartitionHandler = func(_ context.Context, topic string, partition int32, messages <-chan *message.ConsumerMessage, commitFunc handler.CommitMessageFunc) {
		for msg := range messages {
			time.Sleep(5 * time.Millisecond)
			received = append(received, msg)
			commitFunc(topic, partition, msg.Offset)
		}
	}
	groupHandler := NewConsumerGroupHandler(partitionHandler, nil)

	// When
	err := groupHandler.ConsumeClaim(session, claim)

	// Then
	assert.Nil(t, err)
	assert.Len(t, received, 3)
	assert.Equal(t, int64(3), session.markedOffset(0))
	assert.Len(t, received[0].Headers, 1)
	assert.Equal(t, "hello", string(received[2].Value))
}

func Test_ConsumerGroupHandler_ShouldStopWhenSessionEnds(t *testing.T) {
	// Given
	ctx, cancel := context.WithCancel(context.Background())
	session := newTestSession(ctx, map[string][]int32{"demo-topic": {0}})
	claim := &testClaim{messages: make(chan *sarama.ConsumerMessage)}
	handlerReturned := make(chan struct{})
	groupHandler := NewConsumerGroupHandler(func(_ context.Context, _ string, _ int32, messages <-chan *message.ConsumerMessage, _ handler.CommitMessageFunc) {
		for range messages {
		}
		close(handlerReturned)
	}, nil)

	// When
	cancel()
	err := groupHandler.ConsumeClaim(session, claim)

	// Then
	assert.Nil(t, err)
	select {
	case <-handlerReturned:
	default:
		t.Fatal("partition handler must return before ConsumeClaim")
	}
}

func Test_ConsumerGroupHandler_ShouldNotifyAssignments(t *testing.T) {
	// Given
	session := newTestSession(context.Background(), map[string][]int32{"demo-topic": {0, 1}})
	var notified []bool
	groupHandler := NewConsumerGroupHandler(nil, func(claims map[string][]int32, assigned bool) {
		assert.Equal(t, map[string][]int32{"demo-topic": {0, 1}}, claims)
		notified = append(notified, assigned)
	})

	// When
	setupErr := groupHandler.Setup(session)

	// Then
	assert.Nil(t, setupErr)
	assert.Equal(t, []bool{true}, notified)

	// When
	cleanupErr := groupHandler.Cleanup(session)

	// Then
	assert.Nil(t, cleanupErr)
	assert.Equal(t, []bool{true, false}, notified)
}

func Test_ConsumerGroupHandler_ShouldNotifyEmptyAssignment(t *testing.T) {
	// Given
	session := newTestSession(context.Background(), map[string][]int32{})
	var notified []int
	groupHandler := NewConsumerGroupHandler(nil, func(claims map[string][]int32, _ bool) {
		notified = append(notified, len(claims))
	})

	// When
	err := groupHandler.Setup(session)

	// Then
	assert.Nil(t, err)
	assert.Equal(t, []int{0}, notified)
}
