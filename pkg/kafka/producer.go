package kafka

import (
	"context"

	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka/config"
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka/message"
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka/sarama"
)

//go:generate mockgen -source=producer.go -destination=mock_producer.go -package=kafka

type Producer interface {
	ProduceAsync(ctx context.Context, message *message.ProducerMessage) error
	ProduceSync(ctx context.Context, message *message.ProducerMessage) error
	ProduceSyncBulk(ctx context.Context, messages []*message.ProducerMessage, size int) error
	Close() error
}

func NewProducer(clusterConfig *config.ClusterConfig) (Producer, error) {
	return sarama.NewProducer(clusterConfig)
}

var (
	WaitForLocal    = config.WaitForLocal
	CompressionNone = config.CompressionNone
)
