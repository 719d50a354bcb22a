package sarama

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/IBM/sarama"
	"github.com/aykanferhat/kafka-consumer-service/common"
	"github.com/aykanferhat/kafka-consumer-service/pkg/kafka/config"
	"github.com/aykanferhat/kafka-consumer-service/pkg/log"
)

func NewSaramaConfig(clusterConfig *config.ClusterConfig, consumerGroupConfig *config.ConsumerGroupConfig) (*sarama.Config, error) {
	if len(clusterConfig.ClientID) == 0 {
		return nil, errors.New("clientId is empty in kafka config")
	}
	if log.IsDebug() {
		sarama.Logger = log.Default()
	}
	saramaConfig := sarama.NewConfig()

	if err := setMetadataConfig(saramaConfig, clusterConfig.ClientID, clusterConfig.Version); err != nil {
		return nil, err
	}
	if clusterConfig.Auth != nil {
		if err := addAuthToConfig(saramaConfig, clusterConfig.Auth); err != nil {
			return nil, err
		}
	}
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	if clusterConfig.ProducerConfig != nil {
		if err := setProducerConfig(saramaConfig, clusterConfig.ProducerConfig); err != nil {
			return nil, err
		}
	}
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategySticky()}
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	if consumerGroupConfig == nil {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
		saramaConfig.Consumer.Offsets.AutoCommit.Interval = 1 * time.Second
		return saramaConfig, nil
	}
	offsetInitial, err := getSaramaOffsetInitial(consumerGroupConfig.OffsetInitial)
	if err != nil {
		return nil, err
	}
	saramaConfig.Consumer.Offsets.Initial = offsetInitial
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = consumerGroupConfig.CommitInterval
	saramaConfig.Consumer.Group.Session.Timeout = consumerGroupConfig.SessionTimeout
	saramaConfig.Consumer.Group.Heartbeat.Interval = consumerGroupConfig.HeartbeatInterval
	saramaConfig.Consumer.Group.Rebalance.Timeout = consumerGroupConfig.RebalanceTimeout
	saramaConfig.Consumer.MaxProcessingTime = consumerGroupConfig.MaxProcessingTime
	if fetch := common.ResolveUnionIntOrStringValue(consumerGroupConfig.FetchMaxBytes); fetch > 0 {
		saramaConfig.Consumer.Fetch.Default = int32(fetch)
	}
	return saramaConfig, nil
}

func setProducerConfig(saramaConfig *sarama.Config, producerConfig *config.ProducerConfig) error {
	requiredAcks, err := getSaramaRequiredAcks(producerConfig.RequiredAcks)
	if err != nil {
		return err
	}
	compression, err := getSaramaCodec(producerConfig.Compression)
	if err != nil {
		return err
	}
	saramaConfig.Producer.Retry.Max = 2
	saramaConfig.Producer.Retry.Backoff = 1500 * time.Millisecond
	saramaConfig.Producer.RequiredAcks = requiredAcks
	saramaConfig.Producer.Compression = compression
	saramaConfig.Producer.Timeout = producerConfig.Timeout
	if maxBytes := common.ResolveUnionIntOrStringValue(producerConfig.MaxMessageBytes); maxBytes > 0 {
		saramaConfig.Producer.MaxMessageBytes = maxBytes
	}
	return nil
}

func setMetadataConfig(saramaConfig *sarama.Config, clientID string, version string) error {
	v, err := sarama.ParseKafkaVersion(version)
	if err != nil {
		return err
	}
	saramaConfig.ChannelBufferSize = 256
	saramaConfig.ApiVersionsRequest = true
	saramaConfig.Version = v
	saramaConfig.ClientID = clientID

	saramaConfig.Metadata.Retry.Max = 1
	saramaConfig.Metadata.Retry.Backoff = 10 * time.Second
	saramaConfig.Metadata.Full = false

	saramaConfig.Net.ReadTimeout = 3 * time.Minute
	saramaConfig.Net.DialTimeout = 3 * time.Minute
	saramaConfig.Net.WriteTimeout = 3 * time.Minute
	return nil
}

func addAuthToConfig(saramaConfig *sarama.Config, auth *config.Auth) error {
	saramaConfig.Net.SASL.Enable = true
	saramaConfig.Net.SASL.User = auth.Username
	saramaConfig.Net.SASL.Password = auth.Password
	saramaConfig.Net.SASL.Handshake = true
	switch auth.Mechanism {
	case config.SASLPlain:
		saramaConfig.Net.SASL.Mechanism = sarama.SASLTypePlaintext
	case config.SASLScramSHA256:
		saramaConfig.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
		saramaConfig.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient { return &xDGSCRAMClient{HashGeneratorFcn: sHA256} }
	case config.SASLScramSHA512, "":
		saramaConfig.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA512
		saramaConfig.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient { return &xDGSCRAMClient{HashGeneratorFcn: sHA512} }
	default:
		return fmt.Errorf("sasl mechanism not supported: %s, it should be PLAIN, SCRAM-SHA-256 or SCRAM-SHA-512", auth.Mechanism)
	}
	if len(auth.Certificates) == 0 {
		return nil
	}
	tlsConfiguration, err := createTLSConfiguration(auth.Certificates)
	if err != nil {
		return err
	}
	saramaConfig.Net.TLS.Enable = true
	saramaConfig.Net.TLS.Config = tlsConfiguration
	return nil
}

func createTLSConfiguration(certificates []string) (*tls.Config, error) {
	caCertPool := x509.NewCertPool()
	for _, certificate := range certificates {
		caCert, err := os.ReadFile(certificate)
		if err != nil {
			return nil, err
		}
		if !caCertPool.AppendCertsFromPEM(caCert) {
			return nil, fmt.Errorf("no pem certificate found in %s", certificate)
		}
	}
	return &tls.Config{RootCAs: caCertPool, MinVersion: tls.VersionTLS12}, nil
}

func getSaramaRequiredAcks(acks config.RequiredAcks) (sarama.RequiredAcks, error) {
	switch acks {
	case config.NoResponse:
		return sarama.NoResponse, nil
	case config.WaitForLocal:
		return sarama.WaitForLocal, nil
	case config.WaitForAll:
		return sarama.WaitForAll, nil
	default:
		return 0, errors.New("RequiredAcks value not match, it should be NoResponse, WaitForLocal or WaitForAll")
	}
}

func getSaramaOffsetInitial(offsetInitial config.OffsetInitial) (int64, error) {
	switch offsetInitial {
	case config.OffsetNewest:
		return sarama.OffsetNewest, nil
	case config.OffsetOldest:
		return sarama.OffsetOldest, nil
	default:
		return 0, errors.New("OffsetInitial value not match, it should be newest or oldest")
	}
}

func getSaramaCodec(compression config.Compression) (sarama.CompressionCodec, error) {
	switch compression {
	case config.CompressionNone:
		return sarama.CompressionNone, nil
	case config.CompressionGZIP:
		return sarama.CompressionGZIP, nil
	case config.CompressionSnappy:
		return sarama.CompressionSnappy, nil
	case config.CompressionLZ4:
		return sarama.CompressionLZ4, nil
	case config.CompressionZSTD:
		return sarama.CompressionZSTD, nil
	default:
		return 0, errors.New("compression type not found, it should be none, gzip, snappy, lz4 or zstd")
	}
}
