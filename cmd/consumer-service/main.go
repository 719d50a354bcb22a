package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	consumerservice "github.com/aykanferhat/kafka-consumer-service"
)

func main() {
	configPath := flag.String("config", "resources/service-config.yaml", "service config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, out io.Writer) error {
	serviceConfig, err := readServiceConfig(configPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(serviceConfig)
	if err != nil {
		return err
	}
	clusterConfigMap, err := readClusterConfig(serviceConfig)
	if err != nil {
		return err
	}
	listenerConfigMap, err := consumerservice.ReadListenerConfig(serviceConfig.ListenerConfigPath)
	if err != nil {
		return err
	}
	printConsumer, err := consumerservice.NewPrintConsumer(out, consumerservice.PrintFormat(serviceConfig.PrintFormat))
	if err != nil {
		return err
	}

	registrations := []*consumerservice.ListenerRegistration{
		{ConfigName: serviceConfig.Listener, Consumer: printConsumer},
	}
	listeners, err := consumerservice.NewListenerBuilder(clusterConfigMap, listenerConfigMap, registrations).
		Log(logger).
		LastStepFunc(func(_ context.Context, message *consumerservice.ConsumerMessage, err error) {
			logger.Errorf("message skipped, topic: %s, partition: %d, offset: %d, err: %s", message.Topic, message.Partition, message.Offset, err.Error())
		}).
		Initialize(ctx)
	if err != nil {
		return err
	}
	if len(listeners) == 0 {
		return fmt.Errorf("listener %s is disabled, nothing to consume", serviceConfig.Listener)
	}

	reporter, err := consumerservice.NewStatusReporter(serviceConfig.StatusReportCron, listeners)
	if err != nil {
		_ = consumerservice.Shutdown(listeners, serviceConfig.StopTimeout)
		return err
	}
	reporter.Start()
	defer reporter.Stop()

	go func() {
		if err := consumerservice.WaitStarted(ctx, listeners, serviceConfig.StartTimeout); err != nil {
			logger.Errorf("listeners did not start in %s, err: %s", serviceConfig.StartTimeout, err.Error())
			return
		}
		logger.Infof("listener %s started", serviceConfig.Listener)
	}()

	err = consumerservice.Run(ctx, listeners, serviceConfig.StopTimeout)
	reporter.Report()
	return err
}

func newLogger(conf *ServiceConfig) (consumerservice.Logger, error) {
	switch conf.LogFormat {
	case logFormatConsole:
		return consumerservice.NewConsoleLog(conf.LogLevel), nil
	case logFormatTint:
		return consumerservice.NewTintLog(os.Stderr, conf.LogLevel, conf.NoColor), nil
	default:
		return nil, fmt.Errorf("log format should be %s or %s, format: %s", logFormatConsole, logFormatTint, conf.LogFormat)
	}
}
