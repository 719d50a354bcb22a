package sarama

import (
	"context"
	"errors"
	"sync"

	"github.com/IBM/sarama"
	"github.com/aykanferhat/kafka-consumer-service/pkg/json"
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka/config"
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka/message"
	"github.com/aykanferhat/kafka-consumer-service/pkg/log"
)

type Producer struct {
	syncProducer  sarama.SyncProducer
	asyncProducer sarama.AsyncProducer
	client        sarama.Client
	waitGroup     sync.WaitGroup
}

func NewProducer(clusterConfig *config.ClusterConfig) (*Producer, error) {
	saramaConfig, err := NewSaramaConfig(clusterConfig, nil)
	if err != nil {
		return nil, err
	}
	client, err := sarama.NewClient(clusterConfig.Brokers, saramaConfig)
	if err != nil {
		return nil, err
	}
	syncProducer, err := sarama.NewSyncProducerFromClient(client)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	asyncProducer, err := sarama.NewAsyncProducerFromClient(client)
	if err != nil {
		_ = syncProducer.Close()
		_ = client.Close()
		return nil, err
	}
	p := newProducer(syncProducer, asyncProducer)
	p.client = client
	return p, nil
}

func newProducer(syncProducer sarama.SyncProducer, asyncProducer sarama.AsyncProducer) *Producer {
	p := &Producer{
		syncProducer:  syncProducer,
		asyncProducer: asyncProducer,
	}
	if asyncProducer != nil {
		p.drainAsyncResults()
	}
	return p
}

// drainAsyncResults keeps the async producer from blocking, Return.Successes and
// Return.Errors are both enabled.
func (p *Producer) drainAsyncResults() {
	p.waitGroup.Add(2)
	go func() {
		defer p.waitGroup.Done()
		for range p.asyncProducer.Successes() {
		}
	}()
	go func() {
		defer p.waitGroup.Done()
		for err := range p.asyncProducer.Errors() {
			log.Errorf("async produce err: %s, topic: %s", err.Err.Error(), err.Msg.Topic)
		}
	}()
}

func (p *Producer) ProduceAsync(ctx context.Context, message *message.ProducerMessage) error {
	saramaMessage, err := mapToProducerMessage(message)
	if err != nil {
		return err
	}
	select {
	case p.asyncProducer.Input() <- saramaMessage:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Producer) ProduceSync(_ context.Context, message *message.ProducerMessage) error {
	saramaMessage, err := mapToProducerMessage(message)
	if err != nil {
		return err
	}
	_, _, err = p.syncProducer.SendMessage(saramaMessage)
	return err
}

func (p *Producer) ProduceSyncBulk(ctx context.Context, messages []*message.ProducerMessage, size int) error {
	for _, chunk := range message.SliceMessages(messages, size) {
		if err := ctx.Err(); err != nil {
			return err
		}
		saramaMessages := make([]*sarama.ProducerMessage, 0, len(chunk))
		for _, producerMessage := range chunk {
			saramaMessage, err := mapToProducerMessage(producerMessage)
			if err != nil {
				return err
			}
			saramaMessages = append(saramaMessages, saramaMessage)
		}
		if err := p.syncProducer.SendMessages(saramaMessages); err != nil {
			return err
		}
	}
	return nil
}

func (p *Producer) Close() error {
	var err error
	if p.asyncProducer != nil {
		err = errors.Join(err, p.asyncProducer.Close())
		p.waitGroup.Wait()
	}
	if p.syncProducer != nil {
		err = errors.Join(err, p.syncProducer.Close())
	}
	if p.client != nil {
		err = errors.Join(err, ignoreClosed(p.client.Close()))
	}
	return err
}

func mapToProducerMessage(message *message.ProducerMessage) (*sarama.ProducerMessage, error) {
	body, err := encodeBody(message)
	if err != nil {
		return nil, err
	}
	headers := make([]sarama.RecordHeader, 0, len(message.Headers))
	for _, header := range message.Headers {
		headers = append(headers, sarama.RecordHeader{
			Key:   header.Key,
			Value: header.Value,
		})
	}
	producerMessage := &sarama.ProducerMessage{
		Value:   sarama.ByteEncoder(body),
		Topic:   message.Topic,
		Headers: headers,
	}
	if len(message.Key) != 0 {
		producerMessage.Key = sarama.StringEncoder(message.Key)
	}
	return producerMessage, nil
}

func encodeBody(message *message.ProducerMessage) ([]byte, error) {
	if !message.ByteBody {
		return json.Marshal(message.Body)
	}
	switch body := message.Body.(type) {
	case []byte:
		return body, nil
	case string:
		return []byte(body), nil
	default:
		return nil, errors.New("byte body must be []byte or string")
	}
}
