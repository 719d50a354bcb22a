package kafka

import (
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka/message"
)

type (
	ConsumerMessage = message.ConsumerMessage
	ProducerMessage = message.ProducerMessage
	Header          = message.Header
)
