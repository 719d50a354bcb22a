package internal

import (
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka"
)

type ConsumerMessage struct {
	*kafka.ConsumerMessage
	GroupID string
	Tracer  string
	Lane    int
}
