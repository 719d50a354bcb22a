package sarama

import (
	"github.com/IBM/sarama"
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka/handler"
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka/message"
)

type consumerGroupHandler struct {
	partitionHandler  handler.PartitionHandler
	assignmentHandler handler.AssignmentHandler
}

func NewConsumerGroupHandler(partitionHandler handler.PartitionHandler, assignmentHandler handler.AssignmentHandler) sarama.ConsumerGroupHandler {
	return &consumerGroupHandler{
		partitionHandler:  partitionHandler,
		assignmentHandler: assignmentHandler,
	}
}

func (h *consumerGroupHandler) Setup(session sarama.ConsumerGroupSession) error {
	h.notifyAssignment(session, true)
	return nil
}

func (h *consumerGroupHandler) Cleanup(session sarama.ConsumerGroupSession) error {
	h.notifyAssignment(session, false)
	return nil
}

// ConsumeClaim hands the claim to the partition handler and returns only after the
// handler has drained, so every mark happens inside the session.
func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	messages := make(chan *message.ConsumerMessage)
	done := make(chan struct{})
	commit := func(topic string, partition int32, offset int64) {
		session.MarkOffset(topic, partition, offset+1, "")
	}
	go func() {
		defer close(done)
		h.partitionHandler(session.Context(), claim.Topic(), claim.Partition(), messages, commit)
	}()
	defer func() {
		close(messages)
		<-done
	}()
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if msg == nil {
				continue
			}
			messages <- toConsumerMessage(msg)
		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *consumerGroupHandler) notifyAssignment(session sarama.ConsumerGroupSession, assigned bool) {
	if h.assignmentHandler == nil {
		return
	}
	h.assignmentHandler(session.Claims(), assigned)
}

func toConsumerMessage(msg *sarama.ConsumerMessage) *message.ConsumerMessage {
	headers := make([]message.Header, 0, len(msg.Headers))
	for _, header := range msg.Headers {
		if header == nil {
			continue
		}
		headers = append(headers, message.Header{Key: header.Key, Value: header.Value})
	}
	return &message.ConsumerMessage{
		Headers:   headers,
		Timestamp: msg.Timestamp,
		Key:       msg.Key,
		Value:     msg.Value,
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    msg.Offset,
	}
}
