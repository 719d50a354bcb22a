package kafka

import "github.com/aykanferhat/kafka-consumer-service/pkg/kafka/config"

type (
	ClusterConfig       = config.ClusterConfig
	ConsumerGroupConfig = config.ConsumerGroupConfig
)
