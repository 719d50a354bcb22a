package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	consumerservice "github.com/aykanferhat/kafka-consumer-service"
)

type options struct {
	clusterConfigPath  string
	producerConfigPath string
	profile            string
	topicConfig        string
	key                string
	logLevel           string
	batchSize          int
	partitions         int
	createTopic        bool
}

func main() {
	opts := options{}
	flag.StringVar(&opts.clusterConfigPath, "cluster-config", "resources/kafka-cluster-config.yaml", "kafka cluster config file")
	flag.StringVar(&opts.producerConfigPath, "producer-config", "resources/producer-topic-config.yaml", "producer topic config file")
	flag.StringVar(&opts.profile, "profile", "", "cluster config profile")
	flag.StringVar(&opts.topicConfig, "topic", "demo", "producer topic config name")
	flag.StringVar(&opts.key, "key", "", "message key, empty spreads messages over partitions")
	flag.StringVar(&opts.logLevel, "log-level", consumerservice.INFO, "log level")
	flag.IntVar(&opts.batchSize, "batch-size", 100, "messages per sync bulk request")
	flag.IntVar(&opts.partitions, "partitions", 1, "partition count used with -create-topic")
	flag.BoolVar(&opts.createTopic, "create-topic", false, "create the topic before publishing")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, in io.Reader) error {
	logger := consumerservice.NewTintLog(os.Stderr, opts.logLevel, false)
	clusterConfigMap, err := readClusterConfig(opts)
	if err != nil {
		return err
	}
	producerTopicConfigMap, err := consumerservice.ReadKafkaProducerTopicConfig(opts.producerConfigPath)
	if err != nil {
		return err
	}
	if opts.createTopic {
		if err := createTopic(clusterConfigMap, producerTopicConfigMap, opts); err != nil {
			return err
		}
	}
	producer, err := consumerservice.NewProducerBuilder(clusterConfigMap, producerTopicConfigMap).
		Log(logger).
		Interceptor(newSourceHeaderInterceptor("demo-producer")).
		Initialize()
	if err != nil {
		return err
	}
	published, err := publishLines(ctx, producer, opts.topicConfig, opts.key, in, opts.batchSize)
	logger.Infof("published %d messages", published)
	return errors.Join(err, producer.Close())
}

func readClusterConfig(opts options) (consumerservice.ClusterConfigMap, error) {
	if len(strings.TrimSpace(opts.profile)) == 0 {
		return consumerservice.ReadKafkaClusterConfig(opts.clusterConfigPath)
	}
	return consumerservice.ReadKafkaClusterConfigWithProfile(opts.clusterConfigPath, opts.profile)
}

func createTopic(clusterConfigMap consumerservice.ClusterConfigMap, producerTopicConfigMap consumerservice.ProducerTopicConfigMap, opts options) error {
	producerTopic, err := producerTopicConfigMap.GetConfig(opts.topicConfig)
	if err != nil {
		return err
	}
	clusterConfig, err := clusterConfigMap.GetConfigWithDefault(producerTopic.Cluster)
	if err != nil {
		return err
	}
	return consumerservice.NewAdmin(clusterConfig).CreateTopic(producerTopic.Name, int32(opts.partitions))
}
