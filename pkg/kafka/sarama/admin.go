package sarama

import (
	"errors"

	"github.com/IBM/sarama"
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka/config"
)

type Admin struct {
	clusterConfig *config.ClusterConfig
}

func NewAdmin(clusterConfig *config.ClusterConfig) *Admin {
	return &Admin{
		clusterConfig: clusterConfig,
	}
}

// CreateTopic creates the topic with replication factor 1. An existing topic is not an error.
func (a *Admin) CreateTopic(topicName string, partition int32) error {
	saramaConfig, err := NewSaramaConfig(a.clusterConfig, nil)
	if err != nil {
		return err
	}
	clusterAdmin, err := sarama.NewClusterAdmin(a.clusterConfig.Brokers, saramaConfig)
	if err != nil {
		return err
	}
	defer clusterAdmin.Close()

	err = clusterAdmin.CreateTopic(topicName, &sarama.TopicDetail{NumPartitions: partition, ReplicationFactor: 1}, false)
	var topicError *sarama.TopicError
	if errors.As(err, &topicError) && topicError.Err == sarama.ErrTopicAlreadyExists {
		return nil
	}
	return err
}
