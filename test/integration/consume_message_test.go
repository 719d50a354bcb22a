package integration

import (
	"context"
	"testing"
	"time"

	consumerservice "github.com/aykanferhat/kafka-consumer-service"
	"gotest.tools/v3/assert"
)

func Test_PrintConsumer_ShouldPrintConsumedMessages(t *testing.T) {
	// Given
	ctx := context.Background()
	cluster := startTestCluster(ctx, t)
	cluster.createTopic(t, topic, 1)

	output := &safeBuffer{}
	printConsumer, err := consumerservice.NewPrintConsumer(output, consumerservice.PrintFormatText)
	assert.NilError(t, err)

	listeners := cluster.startListeners(ctx, t, func(clusterConfigMap consumerservice.ClusterConfigMap) *consumerservice.ListenerBuilder {
		return consumerservice.NewListenerBuilder(clusterConfigMap, demoListenerConfig(1), []*consumerservice.ListenerRegistration{
			{ConfigName: topicConfigName, Consumer: printConsumer},
		})
	})
	producer := cluster.newProducer(t)

	// When
	assert.NilError(t, producer.ProduceSyncBulk(ctx, messages("key", "hello", "kafka", "consumer"), 10))

	// Then
	eventually(t, 30*time.Second, func() bool { return len(output.Lines()) == 3 })
	assert.DeepEqual(t, []string{
		"Consumed message: hello",
		"Consumed message: kafka",
		"Consumed message: consumer",
	}, output.Lines())

	listener := listeners[groupID]
	eventually(t, 10*time.Second, func() bool { return listener.LastCommittedOffset(topic, 0) == 2 })
}
