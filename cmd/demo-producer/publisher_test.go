package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	consumerservice "github.com/aykanferhat/kafka-consumer-service"
	"github.com/stretchr/testify/assert"
)

type recordingProducer struct {
	consumerservice.Producer
	batches [][]*consumerservice.Message
	err     error
}

func (p *recordingProducer) ProduceSyncBulk(_ context.Context, messages []*consumerservice.Message, _ int) error {
	if p.err != nil {
		return p.err
	}
	p.batches = append(p.batches, messages)
	return nil
}

func TestPublishLines_ShouldSendNonEmptyLinesInBatches(t *testing.T) {
	// Given
	producer := &recordingProducer{}
	input := strings.NewReader("first\n\nsecond\nthird\n")

	// When
	published, err := publishLines(context.Background(), producer, "demo", "key", input, 2)

	// Then
	assert.Nil(t, err)
	assert.Equal(t, 3, published)
	assert.Len(t, producer.batches, 2)
	assert.Equal(t, "first", string(producer.batches[0][0].Value))
	assert.Equal(t, "second", string(producer.batches[0][1].Value))
	assert.Equal(t, "third", string(producer.batches[1][0].Value))
	assert.Equal(t, "demo", producer.batches[1][0].ConfigName)
	assert.Equal(t, "key", producer.batches[1][0].Key)
}

func TestPublishLines_ShouldReturnProducerError(t *testing.T) {
	// Given
	producer := &recordingProducer{err: errors.New("broker down")}

	// When
	published, err := publishLines(context.Background(), producer, "demo", "", strings.NewReader("first\n"), 0)

	// Then
	assert.Equal(t, 0, published)
	assert.Equal(t, "broker down", err.Error())
}

func TestSourceHeaderInterceptor_ShouldAddHeader(t *testing.T) {
	// Given
	message := &consumerservice.ProducerMessage{Topic: "demo-topic"}

	// When
	newSourceHeaderInterceptor("demo-producer").OnProduce(context.Background(), message)

	// Then
	assert.Len(t, message.Headers, 1)
	assert.Equal(t, "source", string(message.Headers[0].Key))
	assert.Equal(t, "demo-producer", string(message.Headers[0].Value))
}
