package consumerservice

import (
	"github.com/aykanferhat/kafka-consumer-service/common"
	"github.com/aykanferhat/kafka-consumer-service/internal"
	"github.com/aykanferhat/kafka-consumer-service/pkg/viper"
)

type (
	ClusterConfig          = internal.ClusterConfig
	ProducerConfig         = internal.ProducerConfig
	Auth                   = internal.Auth
	ClusterConfigMap       = internal.ClusterConfigMap
	ListenerConfig         = internal.ListenerConfig
	ListenerConfigMap      = internal.ListenerConfigMap
	ProducerTopic          = internal.ProducerTopic
	ProducerTopicConfigMap = internal.ProducerTopicConfigMap
	ContextKey             = common.ContextKey
)

func ReadKafkaClusterConfigWithProfile(kafkaConfigPath string, profile string) (ClusterConfigMap, error) {
	var conf map[string]*ClusterConfig
	if err := viper.ReadFileWithProfile(profile, &conf, kafkaConfigPath); err != nil {
		return nil, err
	}
	return conf, nil
}

func ReadKafkaClusterConfig(kafkaConfigPath string) (ClusterConfigMap, error) {
	var conf map[string]*ClusterConfig
	if err := viper.ReadFile(&conf, kafkaConfigPath); err != nil {
		return nil, err
	}
	return conf, nil
}

func ReadListenerConfig(listenerConfigPath string) (ListenerConfigMap, error) {
	var conf map[string]*ListenerConfig
	if err := viper.ReadFile(&conf, listenerConfigPath); err != nil {
		return nil, err
	}
	return conf, nil
}

func ReadKafkaProducerTopicConfig(kafkaProducerConfigPath string) (ProducerTopicConfigMap, error) {
	var conf map[string]*ProducerTopic
	if err := viper.ReadFile(&conf, kafkaProducerConfigPath); err != nil {
		return nil, err
	}
	return conf, nil
}
