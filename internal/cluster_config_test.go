package internal

import (
	"strings"
	"testing"
	"time"

	"github.com/aykanferhat/kafka-consumer-service/common"
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka"
	"github.com/stretchr/testify/assert"
)

func Test_ClusterConfig_ShouldReturnBrokers(t *testing.T) {
	// Given
	clusterConfig := &ClusterConfig{
		Brokers:  "broker1, broker2,,broker3 ",
		Version:  "2.2.0",
		ClientID: "client-id",
	}

	// When
	brokers := clusterConfig.GetBrokers()

	// Then
	assert.Equal(t, []string{"broker1", "broker2", "broker3"}, brokers)
}

func Test_ClusterConfigMap_ThrowErrWhenConfigNotFound(t *testing.T) {
	// Given
	clusterConfigMap := ClusterConfigMap{
		"default": {Brokers: "broker1", Version: "2.2.0"},
	}

	// When
	clusterConfig, err := clusterConfigMap.GetConfigWithDefault("notFoundCluster")

	// Then
	assert.Nil(t, clusterConfig)
	assert.Equal(t, "cluster config not found: notFoundCluster", err.Error())
}

func Test_ClusterConfigMap_ThrowErrWhenBrokersIsEmpty(t *testing.T) {
	// Given
	clusterConfigMap := ClusterConfigMap{
		"default": {Brokers: " , ", Version: "2.2.0"},
	}

	// When
	clusterConfig, err := clusterConfigMap.GetConfigWithDefault("default")

	// Then
	assert.Nil(t, clusterConfig)
	assert.Equal(t, "cluster config 'brokers' is required, cluster: default", err.Error())
}

func Test_ClusterConfigMap_ThrowErrWhenVersionIsEmpty(t *testing.T) {
	// Given
	clusterConfigMap := ClusterConfigMap{
		"default": {Brokers: "broker1"},
	}

	// When
	clusterConfig, err := clusterConfigMap.GetConfigWithDefault("default")

	// Then
	assert.Nil(t, clusterConfig)
	assert.Equal(t, "cluster config 'version' is required, cluster: default", err.Error())
}

func Test_ClusterConfigMap_ThrowErrWhenAuthUsernameIsEmpty(t *testing.T) {
	// Given
	clusterConfigMap := ClusterConfigMap{
		"default": {Brokers: "broker1", Version: "2.2.0", Auth: &Auth{Password: "secret"}},
	}

	// When
	clusterConfig, err := clusterConfigMap.GetConfigWithDefault("default")

	// Then
	assert.Nil(t, clusterConfig)
	assert.Equal(t, "cluster config 'auth.username' is required when auth is set, cluster: default", err.Error())
}

func Test_ClusterConfigMap_ShouldSetDefaults(t *testing.T) {
	// Given
	clusterConfigMap := ClusterConfigMap{
		"default": {Brokers: "broker1", Version: "2.2.0"},
	}

	// When
	clusterConfig, err := clusterConfigMap.GetConfigWithDefault("DEFAULT")

	// Then
	assert.Nil(t, err)
	assert.Equal(t, "DEFAULT", clusterConfig.ClusterName)
	assert.True(t, strings.HasPrefix(clusterConfig.ClientID, "kafka-consumer-service-"))
	assert.Equal(t, kafka.WaitForLocal, clusterConfig.ProducerConfig.RequiredAcks)
	assert.Equal(t, kafka.CompressionNone, clusterConfig.ProducerConfig.Compression)
	assert.Equal(t, common.MB, clusterConfig.ProducerConfig.MaxMessageBytes)
	assert.Equal(t, 10*time.Second, clusterConfig.ProducerConfig.Timeout)
}

func Test_ClusterConfigMap_ShouldKeepGivenClientID(t *testing.T) {
	// Given
	clusterConfigMap := ClusterConfigMap{
		"default": {Brokers: "broker1", Version: "2.2.0", ClientID: "demo-client"},
	}

	// When
	first, _ := clusterConfigMap.GetConfigWithDefault("default")
	second, _ := clusterConfigMap.GetConfigWithDefault("default")

	// Then
	assert.Equal(t, "demo-client", first.ClientID)
	assert.Equal(t, first.ClientID, second.ClientID)
}

func Test_ClusterConfigMap_ShouldSetAuth(t *testing.T) {
	// Given
	clusterConfigMap := ClusterConfigMap{
		"default": {Brokers: "broker1", Version: "2.2.0"},
	}

	// When
	err := clusterConfigMap.SetAuth("Default", "PLAIN", "user", "pass", []string{"/certs/ca.pem"})

	// Then
	assert.Nil(t, err)
	auth := clusterConfigMap["default"].Auth
	assert.Equal(t, SASLMechanism("PLAIN"), auth.Mechanism)
	assert.Equal(t, "user", auth.Username)
	assert.Equal(t, "pass", auth.Password)
	assert.Equal(t, []string{"/certs/ca.pem"}, auth.Certificates)
	assert.NotNil(t, clusterConfigMap.SetAuth("unknown", "PLAIN", "user", "pass", nil))
}

func Test_ClusterConfig_ShouldMapToKafkaClusterConfig(t *testing.T) {
	// Given
	clusterConfig := &ClusterConfig{
		Brokers:  "broker1,broker2",
		Version:  "3.6.0",
		ClientID: "client-id",
		Auth:     &Auth{Mechanism: "SCRAM-SHA-256", Username: "user", Password: "pass"},
		ProducerConfig: &ProducerConfig{
			RequiredAcks:    kafka.WaitForLocal,
			Compression:     kafka.CompressionNone,
			Timeout:         time.Second,
			MaxMessageBytes: common.KB,
		},
	}

	// When
	mapped := mapToClusterConfig(clusterConfig)

	// Then
	assert.Equal(t, []string{"broker1", "broker2"}, mapped.Brokers)
	assert.Equal(t, "3.6.0", mapped.Version)
	assert.Equal(t, "client-id", mapped.ClientID)
	assert.Equal(t, "user", mapped.Auth.Username)
	assert.Equal(t, SASLMechanism("SCRAM-SHA-256"), mapped.Auth.Mechanism)
	assert.Equal(t, common.KB, mapped.ProducerConfig.MaxMessageBytes)
	assert.Equal(t, time.Second, mapped.ProducerConfig.Timeout)
}
