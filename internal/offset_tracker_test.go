package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type committedOffsets struct {
	offsets []int64
}

func (c *committedOffsets) commit(_ string, _ int32, offset int64) {
	c.offsets = append(c.offsets, offset)
}

func Test_OffsetTracker_ShouldCommitInOrderWhenDoneInOrder(t *testing.T) {
	// Given
	committed := &committedOffsets{}
	tracker := newOffsetTracker("demo-topic", 0, committed.commit)
	tracker.Track(10)
	tracker.Track(11)

	// When
	tracker.Done(10)
	tracker.Done(11)

	// Then
	assert.Equal(t, []int64{10, 11}, committed.offsets)
	assert.Equal(t, int64(11), tracker.LastCommittedOffset())
	assert.Equal(t, 0, tracker.PendingCount())
}

func Test_OffsetTracker_ShouldNotCommitPastUnprocessedOffset(t *testing.T) {
	// Given
	committed := &committedOffsets{}
	tracker := newOffsetTracker("demo-topic", 0, committed.commit)
	for _, offset := range []int64{5, 6, 7, 8} {
		tracker.Track(offset)
	}

	// When
	tracker.Done(7)
	tracker.Done(6)

	// Then
	assert.Empty(t, committed.offsets)
	assert.Equal(t, noCommittedOffset, tracker.LastCommittedOffset())
	assert.Equal(t, 4, tracker.PendingCount())

	// When
	tracker.Done(5)

	// Then
	assert.Equal(t, []int64{7}, committed.offsets)
	assert.Equal(t, int64(7), tracker.LastCommittedOffset())
	assert.Equal(t, 1, tracker.PendingCount())
}

func Test_OffsetTracker_ShouldHandleOffsetGaps(t *testing.T) {
	// Given
	committed := &committedOffsets{}
	tracker := newOffsetTracker("demo-topic", 3, committed.commit)
	tracker.Track(100)
	tracker.Track(104)

	// When
	tracker.Done(104)
	tracker.Done(100)

	// Then
	assert.Equal(t, []int64{104}, committed.offsets)
}
