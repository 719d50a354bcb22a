package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lines(values ...string) []*ProducerMessage {
	messages := make([]*ProducerMessage, 0, len(values))
	for _, value := range values {
		messages = append(messages, &ProducerMessage{Body: []byte(value), ByteBody: true, Topic: "demo-topic"})
	}
	return messages
}

func TestSliceMessages(t *testing.T) {
	tests := []struct {
		name     string
		messages []*ProducerMessage
		size     int
		expected []int
	}{
		{name: "evenly split", messages: lines("a", "b", "c", "d"), size: 2, expected: []int{2, 2}},
		{name: "remainder in last chunk", messages: lines("a", "b", "c", "d", "e"), size: 2, expected: []int{2, 2, 1}},
		{name: "size greater than input", messages: lines("a", "b"), size: 5, expected: []int{2}},
		{name: "empty input", messages: lines(), size: 3, expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := SliceMessages(tt.messages, tt.size)

			sizes := make([]int, 0, len(chunks))
			for _, chunk := range chunks {
				sizes = append(sizes, len(chunk))
			}
			assert.Equal(t, tt.expected, sizes)
		})
	}
}

func TestSliceMessages_ShouldKeepOrder(t *testing.T) {
	chunks := SliceMessages(lines("a", "b", "c"), 2)

	assert.Equal(t, []byte("a"), chunks[0][0].Body)
	assert.Equal(t, []byte("b"), chunks[0][1].Body)
	assert.Equal(t, []byte("c"), chunks[1][0].Body)
}

func TestSliceMessages_ShouldReturnNilForNonPositiveSize(t *testing.T) {
	assert.Nil(t, SliceMessages(lines("a"), 0))
	assert.Nil(t, SliceMessages(lines("a"), -1))
}

func TestConsumerMessage_Header(t *testing.T) {
	msg := &ConsumerMessage{Headers: []Header{{Key: []byte("X-Source"), Value: []byte("demo-producer")}}}

	value, ok := msg.Header("X-Source")
	assert.True(t, ok)
	assert.Equal(t, "demo-producer", string(value))

	_, ok = msg.Header("X-Missing")
	assert.False(t, ok)
}
