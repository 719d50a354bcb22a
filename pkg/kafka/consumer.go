package kafka

import (
	"context"
	"time"

	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka/config"
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka/sarama"
)

//go:generate mockgen -source=consumer.go -destination=mock_consumer_group.go -package=kafka

type ConsumerGroup interface {
	Subscribe(ctx context.Context) error
	Unsubscribe() error
}

func NewConsumerGroup(
	clusterConfig *ClusterConfig,
	consumerGroupConfig *ConsumerGroupConfig,
	partitionHandler PartitionHandler,
	assignmentHandler AssignmentHandler,
) (ConsumerGroup, error) {
	return sarama.NewConsumerGroup(clusterConfig, consumerGroupConfig, partitionHandler, assignmentHandler)
}

func NewAuthConfig(mechanism config.SASLMechanism, username, password string, certificates []string) *config.Auth {
	return &config.Auth{
		Mechanism:    mechanism,
		Username:     username,
		Password:     password,
		Certificates: certificates,
	}
}

func NewProducerConfig(requiredAcks config.RequiredAcks, compression config.Compression, timeout time.Duration, maxMessageBytes string) *config.ProducerConfig {
	return &config.ProducerConfig{
		RequiredAcks:    requiredAcks,
		Compression:     compression,
		Timeout:         timeout,
		MaxMessageBytes: maxMessageBytes,
	}
}
