package internal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StatusReporter_ThrowErrWhenCronIsInvalid(t *testing.T) {
	// When
	reporter, err := NewStatusReporter("every minute", nil)

	// Then
	assert.Nil(t, reporter)
	assert.NotNil(t, err)
}

func Test_StatusReporter_ShouldUseDefaultCron(t *testing.T) {
	// When
	reporter, err := NewStatusReporter("", nil)

	// Then
	assert.Nil(t, err)
	reporter.Start()
	reporter.Stop()
}

func Test_StatusReporter_ShouldReportPartitionStatuses(t *testing.T) {
	// Given
	l := newTestListener(ConsumerFunc(func(context.Context, *ConsumerMessage) error { return nil }), 1, nil, nil, nil)
	l.Handle()(context.Background(), topic, 0, feed(newTestKafkaMessage("a", "value", 4)), (&commitRecorder{}).commit)
	idle := newTestListener(ConsumerFunc(func(context.Context, *ConsumerMessage) error { return nil }), 1, nil, nil, nil)

	reporter, err := NewStatusReporter("@every 1h", []Listener{l, idle})
	assert.Nil(t, err)

	// When
	lines := reporter.lines()
	reporter.Report()

	// Then
	assert.Equal(t, []string{
		"listener: demo, group: demo-group, topic: demo-topic, partition: 0, status: STOPPED_LISTENING, lastConsumedOffset: 4, lastCommittedOffset: 4",
		"listener: demo, group: demo-group, no assigned partition",
	}, lines)
}
