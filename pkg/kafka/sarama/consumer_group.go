package sarama

import (
	"context"
	"errors"
	"sync"

	"github.com/IBM/sarama"
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka/config"
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka/handler"
	"github.com/aykanferhat/kafka-consumer-service/pkg/log"
)

var ErrClosedConsumerGroup = sarama.ErrClosedConsumerGroup

type ConsumerGroup struct {
	saramaConfig        *sarama.Config
	clusterConfig       *config.ClusterConfig
	consumerGroupConfig *config.ConsumerGroupConfig
	partitionHandler    handler.PartitionHandler
	assignmentHandler   handler.AssignmentHandler
	client              sarama.Client
	consumerGroup       sarama.ConsumerGroup
	cancel              context.CancelFunc
	waitGroup           sync.WaitGroup
	closeOnce           sync.Once
}

func NewConsumerGroup(
	clusterConfig *config.ClusterConfig,
	consumerGroupConfig *config.ConsumerGroupConfig,
	partitionHandler handler.PartitionHandler,
	assignmentHandler handler.AssignmentHandler,
) (*ConsumerGroup, error) {
	saramaConfig, err := NewSaramaConfig(clusterConfig, consumerGroupConfig)
	if err != nil {
		return nil, err
	}
	return &ConsumerGroup{
		saramaConfig:        saramaConfig,
		clusterConfig:       clusterConfig,
		consumerGroupConfig: consumerGroupConfig,
		partitionHandler:    partitionHandler,
		assignmentHandler:   assignmentHandler,
	}, nil
}

const subscribeErr = "consumer group: %s, err: %s"

// Subscribe joins the group and keeps consuming, rejoining after every rebalance,
// until ctx is done or Unsubscribe is called.
func (c *ConsumerGroup) Subscribe(ctx context.Context) error {
	client, err := sarama.NewClient(c.clusterConfig.Brokers, c.saramaConfig)
	if err != nil {
		return err
	}
	consumerGroup, err := sarama.NewConsumerGroupFromClient(c.consumerGroupConfig.GroupID, client)
	if err != nil {
		_ = client.Close()
		return err
	}
	c.client = client
	c.consumerGroup = consumerGroup

	ctx, c.cancel = context.WithCancel(ctx)
	groupHandler := NewConsumerGroupHandler(c.partitionHandler, c.assignmentHandler)
	c.waitGroup.Add(2)
	go func() {
		defer c.waitGroup.Done()
		for {
			if err := consumerGroup.Consume(ctx, c.consumerGroupConfig.Topics, groupHandler); err != nil {
				if errors.Is(err, ErrClosedConsumerGroup) {
					return
				}
				log.Errorf(subscribeErr, c.consumerGroupConfig.GroupID, err.Error())
			}
			if ctx.Err() != nil {
				log.Infof("consumer group: %s stopped consuming, reason: %s", c.consumerGroupConfig.GroupID, ctx.Err().Error())
				return
			}
		}
	}()
	go func() {
		defer c.waitGroup.Done()
		for err := range consumerGroup.Errors() {
			log.Errorf(subscribeErr, c.consumerGroupConfig.GroupID, err.Error())
		}
	}()
	return nil
}

func (c *ConsumerGroup) Unsubscribe() error {
	var err error
	c.closeOnce.Do(func() {
		if c.cancel != nil {
			c.cancel()
		}
		if c.consumerGroup != nil {
			err = errors.Join(err, ignoreClosed(c.consumerGroup.Close()))
		}
		c.waitGroup.Wait()
		if c.client != nil {
			err = errors.Join(err, ignoreClosed(c.client.Close()))
		}
	})
	return err
}

func ignoreClosed(err error) error {
	if errors.Is(err, sarama.ErrClosedClient) || errors.Is(err, sarama.ErrClosedConsumerGroup) {
		return nil
	}
	return err
}
