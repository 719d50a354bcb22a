package internal

import (
	"strings"
	"time"

	"github.com/aykanferhat/kafka-consumer-service/common"
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka"
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka/config"
	"github.com/aykanferhat/kafka-consumer-service/pkg/uuid"
)

const defaultClientIDPrefix = "kafka-consumer-service"

type ClusterConfig struct {
	ClusterName    string          `json:"-"`
	ProducerConfig *ProducerConfig `json:"producerConfig"`
	Auth           *Auth           `json:"auth"`
	ClientID       string          `json:"clientId"`
	Brokers        string          `json:"brokers"`
	Version        string          `json:"version"`
}

func (config *ClusterConfig) GetBrokers() []string {
	brokers := make([]string, 0)
	for _, broker := range strings.Split(strings.ReplaceAll(config.Brokers, " ", ""), ",") {
		if len(broker) != 0 {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}

type Auth struct {
	Mechanism    SASLMechanism `json:"mechanism"`
	Username     string        `json:"username"`
	Password     string        `json:"password"`
	Certificates []string      `json:"certificates"`
}

type (
	RequiredAcks  = config.RequiredAcks
	OffsetInitial = config.OffsetInitial
	Compression   = config.Compression
	SASLMechanism = config.SASLMechanism
)

type ProducerConfig struct {
	RequiredAcks    RequiredAcks  `json:"requiredAcks"`
	MaxMessageBytes string        `json:"maxMessageBytes"`
	Compression     Compression   `json:"compression"`
	Timeout         time.Duration `json:"timeout"`
}

type ClusterConfigMap map[string]*ClusterConfig

func (c ClusterConfigMap) GetConfigWithDefault(name string) (*ClusterConfig, error) {
	cc, exists := c[strings.ToLower(name)]
	if !exists {
		return nil, NewErrWithArgs("cluster config not found: %s", name)
	}
	cc.ClusterName = name
	if err := validateClusterConfig(cc); err != nil {
		return nil, err
	}
	return cc, nil
}

func validateClusterConfig(clusterConfig *ClusterConfig) error {
	if len(clusterConfig.GetBrokers()) == 0 {
		return NewErrWithArgs("cluster config 'brokers' is required, cluster: %s", clusterConfig.ClusterName)
	}
	if len(clusterConfig.Version) == 0 {
		return NewErrWithArgs("cluster config 'version' is required, cluster: %s", clusterConfig.ClusterName)
	}
	if len(clusterConfig.ClientID) == 0 {
		clusterConfig.ClientID = defaultClientIDPrefix + "-" + uuid.GenerateUUID()
	}
	if clusterConfig.Auth != nil && len(clusterConfig.Auth.Username) == 0 {
		return NewErrWithArgs("cluster config 'auth.username' is required when auth is set, cluster: %s", clusterConfig.ClusterName)
	}
	setProducerConfigDefaults(clusterConfig)
	return nil
}

func setProducerConfigDefaults(config *ClusterConfig) {
	if config.ProducerConfig == nil {
		config.ProducerConfig = &ProducerConfig{}
	}
	producerConfig := config.ProducerConfig
	if len(producerConfig.RequiredAcks) == 0 {
		producerConfig.RequiredAcks = kafka.WaitForLocal
	}
	if producerConfig.Timeout == 0 {
		producerConfig.Timeout = 10 * time.Second
	}
	if len(producerConfig.MaxMessageBytes) == 0 {
		producerConfig.MaxMessageBytes = common.MB
	}
	if len(producerConfig.Compression) == 0 {
		producerConfig.Compression = kafka.CompressionNone
	}
}

// SetAuth overrides credentials loaded from file, typically with values read from secrets.
func (c ClusterConfigMap) SetAuth(cluster string, mechanism SASLMechanism, username, password string, certificatePaths []string) error {
	cc, exists := c[strings.ToLower(cluster)]
	if !exists {
		return NewErrWithArgs("cluster config not found: %s", cluster)
	}
	cc.Auth = &Auth{
		Mechanism:    mechanism,
		Username:     username,
		Password:     password,
		Certificates: certificatePaths,
	}
	return nil
}

func mapToClusterConfig(clusterConfig *ClusterConfig) *kafka.ClusterConfig {
	c := &kafka.ClusterConfig{
		Brokers:  clusterConfig.GetBrokers(),
		Version:  clusterConfig.Version,
		ClientID: clusterConfig.ClientID,
	}
	if clusterConfig.ProducerConfig != nil {
		c.ProducerConfig = kafka.NewProducerConfig(
			clusterConfig.ProducerConfig.RequiredAcks,
			clusterConfig.ProducerConfig.Compression,
			clusterConfig.ProducerConfig.Timeout,
			clusterConfig.ProducerConfig.MaxMessageBytes,
		)
	}
	if clusterConfig.Auth != nil {
		c.Auth = kafka.NewAuthConfig(
			clusterConfig.Auth.Mechanism,
			clusterConfig.Auth.Username,
			clusterConfig.Auth.Password,
			clusterConfig.Auth.Certificates,
		)
	}
	return c
}
