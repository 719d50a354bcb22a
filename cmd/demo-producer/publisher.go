package main

import (
	"bufio"
	"context"
	"io"

	consumerservice "github.com/aykanferhat/kafka-consumer-service"
)

const sourceHeaderKey = "source"

func newSourceHeaderInterceptor(source string) consumerservice.ProducerInterceptor {
	return consumerservice.ProducerInterceptorFunc(func(_ context.Context, message *consumerservice.ProducerMessage) {
		message.Headers = append(message.Headers, consumerservice.Header{Key: []byte(sourceHeaderKey), Value: []byte(source)})
	})
}

// publishLines sends every non empty line of r as one message and returns how many were sent.
func publishLines(ctx context.Context, producer consumerservice.Producer, configName, key string, r io.Reader, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = 1
	}
	published := 0
	batch := make([]*consumerservice.Message, 0, batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := producer.ProduceSyncBulk(ctx, batch, batchSize); err != nil {
			return err
		}
		published += len(batch)
		batch = make([]*consumerservice.Message, 0, batchSize)
		return nil
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		batch = append(batch, &consumerservice.Message{ConfigName: configName, Key: key, Value: []byte(line)})
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return published, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return published, err
	}
	return published, flush()
}
