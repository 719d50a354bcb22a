package kafka

import "github.com/aykanferhat/kafka-consumer-service/pkg/kafka/handler"

type (
	PartitionHandler  = handler.PartitionHandler
	AssignmentHandler = handler.AssignmentHandler
	CommitMessageFunc = handler.CommitMessageFunc
)
