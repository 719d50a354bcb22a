package handler

import (
	"context"

	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka/message"
)

// PartitionHandler owns one claimed partition until messages is closed. It must
// return only after every message it received has been committed or abandoned.
type PartitionHandler = func(ctx context.Context, topic string, partition int32, messages <-chan *message.ConsumerMessage, commitFunc CommitMessageFunc)

type (
	// AssignmentHandler receives every claim of a session on setup and again on cleanup.
	// Claims may be empty when the group has more members than partitions.
	AssignmentHandler = func(claims map[string][]int32, assigned bool)
	CommitMessageFunc func(topic string, partition int32, offset int64)
)
