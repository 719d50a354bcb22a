package csmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcurrentSwissMap_StoreLoadDelete(t *testing.T) {
	// Given
	m := Create[string, int64]()

	// When
	m.Store("demo-topic_0", 10)
	m.Store("demo-topic_1", 20)
	m.Delete("demo-topic_1")

	// Then
	value, ok := m.Load("demo-topic_0")
	assert.True(t, ok)
	assert.Equal(t, int64(10), value)

	_, ok = m.Load("demo-topic_1")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Count())
}

func TestConcurrentSwissMap_RangeStops(t *testing.T) {
	// Given
	m := Create[int, string]()
	for i := 0; i < 5; i++ {
		m.Store(i, "lane")
	}

	// When
	visited := 0
	m.Range(func(_ int, _ string) bool {
		visited++
		return visited == 2
	})

	// Then
	assert.Equal(t, 2, visited)
}
