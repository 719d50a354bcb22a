package integration

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	consumerservice "github.com/aykanferhat/kafka-consumer-service"
	"github.com/aykanferhat/kafka-consumer-service/pkg/log"
	"github.com/testcontainers/testcontainers-go"
	containerKafka "github.com/testcontainers/testcontainers-go/modules/kafka"
	"gotest.tools/v3/assert"
)

const (
	clusterName       = "default"
	topicConfigName   = "demo"
	topic             = "demo-topic"
	groupID           = "demo-group"
	listenerStartWait = 1 * time.Minute
	listenerStopWait  = 30 * time.Second
)

type testCluster struct {
	container        *containerKafka.KafkaContainer
	clusterConfigMap consumerservice.ClusterConfigMap
}

func startTestCluster(ctx context.Context, t *testing.T) *testCluster {
	kafkaContainer, err := containerKafka.RunContainer(ctx,
		containerKafka.WithClusterID("test-cluster"),
		testcontainers.WithImage("confluentinc/confluent-local:7.5.0"),
	)
	assert.NilError(t, err)
	t.Cleanup(func() {
		if err := kafkaContainer.Terminate(context.Background()); err != nil {
			t.Logf("terminate kafka container err: %s", err.Error())
		}
	})
	brokers, err := kafkaContainer.Brokers(ctx)
	assert.NilError(t, err)
	log.SetDefault(log.NewConsoleLog(log.INFO))
	return &testCluster{
		container: kafkaContainer,
		clusterConfigMap: consumerservice.ClusterConfigMap{
			clusterName: {
				Brokers:  strings.Join(brokers, ","),
				Version:  "3.5.0",
				ClientID: "integration-client",
			},
		},
	}
}

func (c *testCluster) createTopic(t *testing.T, topicName string, partitions int32) {
	clusterConfig, err := c.clusterConfigMap.GetConfigWithDefault(clusterName)
	assert.NilError(t, err)
	assert.NilError(t, consumerservice.NewAdmin(clusterConfig).CreateTopic(topicName, partitions))
	time.Sleep(2 * time.Second) // After creating a topic, wait for synchronization.
}

func (c *testCluster) newProducer(t *testing.T, interceptors ...consumerservice.ProducerInterceptor) consumerservice.Producer {
	producerTopicConfigMap := consumerservice.ProducerTopicConfigMap{
		topicConfigName: {Name: topic, Cluster: clusterName},
	}
	producer, err := consumerservice.NewProducerBuilder(c.clusterConfigMap, producerTopicConfigMap).
		Interceptors(interceptors).
		Initialize()
	assert.NilError(t, err)
	t.Cleanup(func() { _ = producer.Close() })
	return producer
}

func (c *testCluster) startListeners(ctx context.Context, t *testing.T, builder func(consumerservice.ClusterConfigMap) *consumerservice.ListenerBuilder) map[string]consumerservice.Listener {
	listeners, err := builder(c.clusterConfigMap).Initialize(ctx)
	assert.NilError(t, err)
	t.Cleanup(func() {
		if err := consumerservice.Shutdown(listeners, listenerStopWait); err != nil {
			t.Logf("shutdown listeners err: %s", err.Error())
		}
	})
	assert.NilError(t, consumerservice.WaitStarted(ctx, listeners, listenerStartWait))
	return listeners
}

func demoListenerConfig(concurrency int) consumerservice.ListenerConfigMap {
	return consumerservice.ListenerConfigMap{
		topicConfigName: {
			GroupID:           groupID,
			Topics:            []string{topic},
			Cluster:           clusterName,
			Concurrency:       concurrency,
			OffsetInitial:     "oldest",
			MaxProcessingTime: 2 * time.Second,
			CommitInterval:    100 * time.Millisecond,
		},
	}
}

func eventually(t *testing.T, timeout time.Duration, condition func() bool) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
	t.Fatalf("condition not met in %s", timeout)
}

type safeBuffer struct {
	mutex  sync.Mutex
	buffer bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buffer.Write(p)
}

func (b *safeBuffer) Lines() []string {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	content := strings.TrimSuffix(b.buffer.String(), "\n")
	if len(content) == 0 {
		return nil
	}
	return strings.Split(content, "\n")
}

func messages(key string, values ...string) []*consumerservice.Message {
	result := make([]*consumerservice.Message, 0, len(values))
	for _, value := range values {
		result = append(result, &consumerservice.Message{ConfigName: topicConfigName, Key: key, Value: []byte(value)})
	}
	return result
}
