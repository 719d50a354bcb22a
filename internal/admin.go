package internal

import "github.com/aykanferhat/kafka-consumer-service/pkg/kafka"

type Admin = kafka.Admin

func NewAdmin(config *ClusterConfig) Admin {
	clusterConfig := mapToClusterConfig(config)
	return kafka.NewAdmin(clusterConfig)
}
