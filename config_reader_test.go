package consumerservice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShouldReadClusterConfig(t *testing.T) {
	// Given
	configPath := "test/testdata/test_cluster_config.yaml"
	profile := "stage"

	// When
	clusterConfigMap, err := ReadKafkaClusterConfigWithProfile(configPath, profile)

	// Then
	assert.Nil(t, err)

	defaultClusterConfig, err := clusterConfigMap.GetConfigWithDefault("default")
	assert.Nil(t, err)
	assert.Equal(t, "test-client-id", defaultClusterConfig.ClientID)
	assert.Equal(t, []string{"default-broker1", "default-broker2"}, defaultClusterConfig.GetBrokers())
	assert.Equal(t, "2.2.0", defaultClusterConfig.Version)
	assert.Nil(t, defaultClusterConfig.Auth)
	assert.Equal(t, "WaitForAll", string(defaultClusterConfig.ProducerConfig.RequiredAcks))
	assert.Equal(t, "snappy", string(defaultClusterConfig.ProducerConfig.Compression))
	assert.Equal(t, 5*time.Second, defaultClusterConfig.ProducerConfig.Timeout)
	assert.Equal(t, "2mb", defaultClusterConfig.ProducerConfig.MaxMessageBytes)

	securedClusterConfig, err := clusterConfigMap.GetConfigWithDefault("secured")
	assert.Nil(t, err)
	assert.NotEmpty(t, securedClusterConfig.ClientID)
	assert.Equal(t, "SCRAM-SHA-512", string(securedClusterConfig.Auth.Mechanism))
	assert.Equal(t, "username", securedClusterConfig.Auth.Username)
	assert.Equal(t, "password", securedClusterConfig.Auth.Password)
	assert.Len(t, securedClusterConfig.Auth.Certificates, 2)
	assert.Equal(t, "WaitForLocal", string(securedClusterConfig.ProducerConfig.RequiredAcks))
	assert.Equal(t, 10*time.Second, securedClusterConfig.ProducerConfig.Timeout)
}

func TestShouldThrowErrWhenProfileNotFound(t *testing.T) {
	// When
	clusterConfigMap, err := ReadKafkaClusterConfigWithProfile("test/testdata/test_cluster_config.yaml", "prod")

	// Then
	assert.Nil(t, clusterConfigMap)
	assert.NotNil(t, err)
}

func TestShouldThrowErrWhenFileNotFound(t *testing.T) {
	// When
	listenerConfigMap, err := ReadListenerConfig("test/testdata/not_found.yaml")

	// Then
	assert.Nil(t, listenerConfigMap)
	assert.NotNil(t, err)
}

func TestShouldReadListenerConfig(t *testing.T) {
	// Given
	configPath := "test/testdata/test_listener_config.yaml"

	// When
	listenerConfigMap, err := ReadListenerConfig(configPath)

	// Then
	assert.Nil(t, err)
	assert.Len(t, listenerConfigMap, 3)

	demo, err := listenerConfigMap.GetConfigWithDefault("demo")
	assert.Nil(t, err)
	assert.Equal(t, "demo-group", demo.GroupID)
	assert.Equal(t, []string{"demo-topic"}, demo.Topics)
	assert.Equal(t, "default", demo.Cluster)
	assert.Equal(t, 1, demo.Concurrency)
	assert.Equal(t, time.Second, demo.MaxProcessingTime)

	audit, err := listenerConfigMap.GetConfigWithDefault("audit")
	assert.Nil(t, err)
	assert.Equal(t, "audit-group", audit.GroupID)
	assert.Equal(t, []string{"audit-topic", "audit-topic-v2"}, audit.Topics)
	assert.Equal(t, "audit-tracer", audit.Tracer)
	assert.Equal(t, 8, audit.Concurrency)
	assert.Equal(t, 20, audit.LaneBufferSize)
	assert.Equal(t, 3*time.Second, audit.MaxProcessingTime)
	assert.Equal(t, "oldest", string(audit.OffsetInitial))
	assert.Equal(t, "2mb", audit.FetchMaxBytes)
	assert.Equal(t, 20*time.Second, audit.SessionTimeout)
	assert.Equal(t, 40*time.Second, audit.RebalanceTimeout)
	assert.Equal(t, 5*time.Second, audit.HeartbeatInterval)
	assert.Equal(t, 2*time.Second, audit.CommitInterval)

	legacy, err := listenerConfigMap.GetConfigWithDefault("legacy")
	assert.Nil(t, err)
	assert.True(t, legacy.Disabled)
}

func TestShouldReadProducerTopicConfig(t *testing.T) {
	// When
	producerTopicConfigMap, err := ReadKafkaProducerTopicConfig("test/testdata/test_producer_topic_config.yaml")

	// Then
	assert.Nil(t, err)
	producerTopic, err := producerTopicConfigMap.GetConfig("demo")
	assert.Nil(t, err)
	assert.Equal(t, "demo-topic", producerTopic.Name)
	assert.Equal(t, "default", producerTopic.Cluster)
}
