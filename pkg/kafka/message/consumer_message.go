package message

import (
	"time"
)

type ConsumerMessage struct {
	Timestamp time.Time
	Topic     string
	Headers   []Header
	Key       []byte
	Value     []byte
	Offset    int64
	Partition int32
}

type Header struct {
	Key   []byte
	Value []byte
}

func (c *ConsumerMessage) Header(key string) ([]byte, bool) {
	for _, header := range c.Headers {
		if string(header.Key) == key {
			return header.Value, true
		}
	}
	return nil, false
}
