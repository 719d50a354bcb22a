package internal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka"
)

type Producer interface {
	GetProducerTopic(configName string) (*ProducerTopic, error)
	ProduceAsync(ctx context.Context, message *Message) error
	ProduceSync(ctx context.Context, message *Message) error
	ProduceSyncBulk(ctx context.Context, messages []*Message, size int) error
	Close() error
}

type producer struct {
	producerMap            map[string]kafka.Producer
	producerTopicConfigMap ProducerTopicConfigMap
	producerInterceptors   []ProducerInterceptor
}

var kafkaNewProducer = kafka.NewProducer

// NewProducer opens one kafka producer per cluster referenced by a producer topic.
func NewProducer(
	clusterConfigMap ClusterConfigMap,
	producerTopicConfigMap ProducerTopicConfigMap,
	producerInterceptors []ProducerInterceptor,
) (Producer, error) {
	p := &producer{
		producerMap:            make(map[string]kafka.Producer),
		producerTopicConfigMap: producerTopicConfigMap,
		producerInterceptors:   producerInterceptors,
	}
	for name := range producerTopicConfigMap {
		producerTopic, err := producerTopicConfigMap.GetConfig(name)
		if err != nil {
			return nil, errors.Join(err, p.Close())
		}
		cluster := strings.ToLower(producerTopic.Cluster)
		if _, exists := p.producerMap[cluster]; exists {
			continue
		}
		clusterConfig, err := clusterConfigMap.GetConfigWithDefault(cluster)
		if err != nil {
			return nil, errors.Join(err, p.Close())
		}
		kafkaProducer, err := kafkaNewProducer(mapToClusterConfig(clusterConfig))
		if err != nil {
			return nil, errors.Join(err, p.Close())
		}
		p.producerMap[cluster] = kafkaProducer
	}
	return p, nil
}

func (p *producer) GetProducerTopic(configName string) (*ProducerTopic, error) {
	return p.producerTopicConfigMap.GetConfig(configName)
}

func (p *producer) ProduceAsync(ctx context.Context, message *Message) error {
	kafkaProducer, produceMessage, err := p.prepare(ctx, message)
	if err != nil {
		return err
	}
	if err := kafkaProducer.ProduceAsync(ctx, produceMessage); err != nil {
		return errors.Join(err, fmt.Errorf("produce async err, topic: %s", produceMessage.Topic))
	}
	return nil
}

func (p *producer) ProduceSync(ctx context.Context, message *Message) error {
	kafkaProducer, produceMessage, err := p.prepare(ctx, message)
	if err != nil {
		return err
	}
	if err := kafkaProducer.ProduceSync(ctx, produceMessage); err != nil {
		return errors.Join(err, fmt.Errorf("produce sync err, topic: %s", produceMessage.Topic))
	}
	return nil
}

func (p *producer) ProduceSyncBulk(ctx context.Context, messages []*Message, size int) error {
	producers := make(map[kafka.Producer][]*ProducerMessage)
	order := make([]kafka.Producer, 0)
	for _, message := range messages {
		kafkaProducer, produceMessage, err := p.prepare(ctx, message)
		if err != nil {
			return err
		}
		if _, exists := producers[kafkaProducer]; !exists {
			order = append(order, kafkaProducer)
		}
		producers[kafkaProducer] = append(producers[kafkaProducer], produceMessage)
	}
	for _, kafkaProducer := range order {
		if err := kafkaProducer.ProduceSyncBulk(ctx, producers[kafkaProducer], size); err != nil {
			return err
		}
	}
	return nil
}

func (p *producer) Close() error {
	var err error
	for cluster, kafkaProducer := range p.producerMap {
		if closeErr := kafkaProducer.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close producer err, cluster: %s, err: %w", cluster, closeErr))
		}
	}
	return err
}

func (p *producer) prepare(ctx context.Context, message *Message) (kafka.Producer, *ProducerMessage, error) {
	producerTopic, err := p.GetProducerTopic(message.ConfigName)
	if err != nil {
		return nil, nil, err
	}
	kafkaProducer, exists := p.producerMap[strings.ToLower(producerTopic.Cluster)]
	if !exists {
		return nil, nil, NewErrWithArgs("kafka producer not found. cluster name: %s", producerTopic.Cluster)
	}
	produceMessage := &ProducerMessage{
		Topic:    producerTopic.Name,
		Key:      message.Key,
		Body:     message.Value,
		Headers:  message.Headers,
		ByteBody: true,
	}
	for _, interceptor := range p.producerInterceptors {
		interceptor.OnProduce(ctx, produceMessage)
	}
	return kafkaProducer, produceMessage, nil
}
