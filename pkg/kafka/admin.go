package kafka

import (
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka/config"
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka/sarama"
)

type Admin interface {
	CreateTopic(topicName string, partition int32) error
}

func NewAdmin(clusterConfig *config.ClusterConfig) Admin {
	return sarama.NewAdmin(clusterConfig)
}
