package internal

import "github.com/aykanferhat/kafka-consumer-service/pkg/kafka/message"

type (
	ProducerMessage = message.ProducerMessage
	Header          = message.Header
)

// Message is a raw payload addressed by producer topic config name.
type Message struct {
	ConfigName string
	Key        string
	Value      []byte
	Headers    []Header
}
