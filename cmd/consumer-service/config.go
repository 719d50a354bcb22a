package main

import (
	"strings"
	"time"

	consumerservice "github.com/aykanferhat/kafka-consumer-service"
	"github.com/aykanferhat/kafka-consumer-service/pkg/viper"
)

const (
	logFormatConsole = "console"
	logFormatTint    = "tint"
)

type ServiceConfig struct {
	LogLevel           string        `json:"logLevel"`
	LogFormat          string        `json:"logFormat"`
	PrintFormat        string        `json:"printFormat"`
	StatusReportCron   string        `json:"statusReportCron"`
	Listener           string        `json:"listener"`
	Profile            string        `json:"profile"`
	ClusterConfigPath  string        `json:"clusterConfigPath"`
	ListenerConfigPath string        `json:"listenerConfigPath"`
	StartTimeout       time.Duration `json:"startTimeout"`
	StopTimeout        time.Duration `json:"stopTimeout"`
	NoColor            bool          `json:"noColor"`
}

var serviceConfigKeys = []string{
	"logLevel", "logFormat", "printFormat", "statusReportCron", "listener", "profile",
	"clusterConfigPath", "listenerConfigPath", "startTimeout", "stopTimeout", "noColor",
}

// readServiceConfig reads path, when present, and applies CONSUMER_SERVICE_* overrides.
func readServiceConfig(path string) (*ServiceConfig, error) {
	conf := &ServiceConfig{}
	if err := viper.ReadFileWithEnv(conf, path, serviceConfigKeys...); err != nil {
		return nil, err
	}
	setServiceConfigDefaults(conf)
	return conf, nil
}

func setServiceConfigDefaults(conf *ServiceConfig) {
	if len(conf.LogLevel) == 0 {
		conf.LogLevel = consumerservice.INFO
	}
	conf.LogLevel = strings.ToUpper(conf.LogLevel)
	if len(conf.LogFormat) == 0 {
		conf.LogFormat = logFormatConsole
	}
	if len(conf.PrintFormat) == 0 {
		conf.PrintFormat = string(consumerservice.PrintFormatText)
	}
	if len(conf.Listener) == 0 {
		conf.Listener = "demo"
	}
	if len(conf.ClusterConfigPath) == 0 {
		conf.ClusterConfigPath = "resources/kafka-cluster-config.yaml"
	}
	if len(conf.ListenerConfigPath) == 0 {
		conf.ListenerConfigPath = "resources/listener-config.yaml"
	}
	if conf.StartTimeout == 0 {
		conf.StartTimeout = 30 * time.Second
	}
	if conf.StopTimeout == 0 {
		conf.StopTimeout = 30 * time.Second
	}
}

func readClusterConfig(conf *ServiceConfig) (consumerservice.ClusterConfigMap, error) {
	if len(conf.Profile) == 0 {
		return consumerservice.ReadKafkaClusterConfig(conf.ClusterConfigPath)
	}
	return consumerservice.ReadKafkaClusterConfigWithProfile(conf.ClusterConfigPath, conf.Profile)
}
