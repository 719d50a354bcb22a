package internal

import (
	"strings"
	"time"

	"github.com/aykanferhat/kafka-consumer-service/common"
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka"
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka/config"
)

type ListenerConfig struct {
	GroupID           string        `json:"groupId"`
	Cluster           string        `json:"cluster"`
	Tracer            string        `json:"tracer"`
	OffsetInitial     OffsetInitial `json:"offsetInitial"`
	FetchMaxBytes     string        `json:"fetchMaxBytes"`
	Topics            []string      `json:"topics"`
	Concurrency       int           `json:"concurrency"`
	LaneBufferSize    int           `json:"laneBufferSize"`
	MaxProcessingTime time.Duration `json:"maxProcessingTime"`
	SessionTimeout    time.Duration `json:"sessionTimeout"`
	RebalanceTimeout  time.Duration `json:"rebalanceTimeout"`
	HeartbeatInterval time.Duration `json:"heartbeatInterval"`
	CommitInterval    time.Duration `json:"commitInterval"`
	Disabled          bool          `json:"disabled"`
}

const (
	OffsetNewest = config.OffsetNewest
	OffsetOldest = config.OffsetOldest
)

// IsConcurrent reports whether partitions fan out to key hashed lanes.
func (c *ListenerConfig) IsConcurrent() bool {
	return c.Concurrency > 1
}

type ListenerConfigMap map[string]*ListenerConfig

func (c ListenerConfigMap) GetConfigWithDefault(name string) (*ListenerConfig, error) {
	lc, exists := c[strings.ToLower(name)]
	if !exists {
		return nil, NewErrWithArgs("listener config not found: %s", name)
	}
	if len(lc.GroupID) == 0 {
		return nil, NewErrWithArgs("listener config 'groupId' is required, config name: %s", name)
	}
	if len(lc.Cluster) == 0 {
		return nil, NewErrWithArgs("listener config 'cluster' is required, config name: %s", name)
	}
	if len(lc.Topics) == 0 {
		return nil, NewErrWithArgs("listener config 'topics' is required, config name: %s", name)
	}
	for _, topic := range lc.Topics {
		if len(strings.TrimSpace(topic)) == 0 {
			return nil, NewErrWithArgs("listener config 'topics' contains an empty topic, config name: %s", name)
		}
	}
	if lc.Concurrency < 0 {
		return nil, NewErrWithArgs("listener config 'concurrency' must not be negative, config name: %s", name)
	}
	if lc.LaneBufferSize < 0 {
		return nil, NewErrWithArgs("listener config 'laneBufferSize' must not be negative, config name: %s", name)
	}
	if lc.MaxProcessingTime < 0 {
		return nil, NewErrWithArgs("listener config 'maxProcessingTime' must not be negative, config name: %s", name)
	}
	setListenerConfigDefaults(lc)
	if lc.OffsetInitial != OffsetNewest && lc.OffsetInitial != OffsetOldest {
		return nil, NewErrWithArgs("listener config 'offsetInitial' should be newest or oldest, config name: %s", name)
	}
	if lc.HeartbeatInterval >= lc.SessionTimeout {
		return nil, NewErrWithArgs("listener config 'heartbeatInterval' must be lower than 'sessionTimeout', config name: %s", name)
	}
	return lc, nil
}

func setListenerConfigDefaults(lc *ListenerConfig) {
	if lc.Concurrency == 0 {
		lc.Concurrency = 1
	}
	if lc.IsConcurrent() && lc.LaneBufferSize == 0 {
		lc.LaneBufferSize = 75
	}
	if len(lc.FetchMaxBytes) == 0 {
		lc.FetchMaxBytes = common.MB
	}
	if lc.MaxProcessingTime == 0 {
		lc.MaxProcessingTime = 1 * time.Second
	}
	if len(lc.Tracer) == 0 {
		lc.Tracer = lc.GroupID
	}
	if len(lc.OffsetInitial) == 0 {
		lc.OffsetInitial = OffsetNewest
	}
	lc.OffsetInitial = OffsetInitial(strings.ToLower(string(lc.OffsetInitial)))
	if lc.SessionTimeout == 0 {
		lc.SessionTimeout = 10 * time.Second
	}
	if lc.RebalanceTimeout == 0 {
		lc.RebalanceTimeout = 60 * time.Second
	}
	if lc.HeartbeatInterval == 0 {
		lc.HeartbeatInterval = 3 * time.Second
	}
	if lc.CommitInterval == 0 {
		lc.CommitInterval = 1 * time.Second
	}
}

func mapToConsumerGroupConfig(listenerConfig *ListenerConfig) *kafka.ConsumerGroupConfig {
	return &kafka.ConsumerGroupConfig{
		GroupID:           listenerConfig.GroupID,
		Topics:            listenerConfig.Topics,
		OffsetInitial:     listenerConfig.OffsetInitial,
		FetchMaxBytes:     listenerConfig.FetchMaxBytes,
		MaxProcessingTime: listenerConfig.MaxProcessingTime,
		SessionTimeout:    listenerConfig.SessionTimeout,
		RebalanceTimeout:  listenerConfig.RebalanceTimeout,
		HeartbeatInterval: listenerConfig.HeartbeatInterval,
		CommitInterval:    listenerConfig.CommitInterval,
	}
}
