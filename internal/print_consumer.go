package internal

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aykanferhat/kafka-consumer-service/pkg/json"
)

type PrintFormat string

const (
	PrintFormatText PrintFormat = "text"
	PrintFormatJSON PrintFormat = "json"
)

const consumedMessagePrefix = "Consumed message: "

type printConsumer struct {
	writer io.Writer
	format PrintFormat
	mutex  sync.Mutex
}

type printedMessage struct {
	Timestamp time.Time         `json:"timestamp"`
	Headers   map[string]string `json:"headers,omitempty"`
	GroupID   string            `json:"groupId"`
	Topic     string            `json:"topic"`
	Key       string            `json:"key,omitempty"`
	Value     string            `json:"value"`
	Offset    int64             `json:"offset"`
	Partition int32             `json:"partition"`
}

// NewPrintConsumer writes every consumed payload to w, stdout when w is nil.
func NewPrintConsumer(w io.Writer, format PrintFormat) (Consumer, error) {
	if w == nil {
		w = os.Stdout
	}
	if len(format) == 0 {
		format = PrintFormatText
	}
	format = PrintFormat(strings.ToLower(string(format)))
	if format != PrintFormatText && format != PrintFormatJSON {
		return nil, NewErrWithArgs("print format should be text or json, format: %s", format)
	}
	return &printConsumer{writer: w, format: format}, nil
}

func (c *printConsumer) Consume(_ context.Context, message *ConsumerMessage) error {
	line, err := c.line(message)
	if err != nil {
		return err
	}
	c.mutex.Lock()
	defer c.mutex.Unlock()
	_, err = c.writer.Write(line)
	return err
}

func (c *printConsumer) line(message *ConsumerMessage) ([]byte, error) {
	if c.format == PrintFormatText {
		return []byte(fmt.Sprintf("%s%s\n", consumedMessagePrefix, message.Value)), nil
	}
	printed := printedMessage{
		Timestamp: message.Timestamp,
		GroupID:   message.GroupID,
		Topic:     message.Topic,
		Key:       string(message.Key),
		Value:     string(message.Value),
		Offset:    message.Offset,
		Partition: message.Partition,
	}
	if len(message.Headers) > 0 {
		printed.Headers = make(map[string]string, len(message.Headers))
		for _, header := range message.Headers {
			printed.Headers[string(header.Key)] = string(header.Value)
		}
	}
	bytes, err := json.Marshal(printed)
	if err != nil {
		return nil, err
	}
	return append(bytes, '\n'), nil
}
