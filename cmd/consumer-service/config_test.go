package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeServiceConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "service-config.yaml")
	assert.Nil(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadServiceConfig_ShouldSetDefaultsWhenFileMissing(t *testing.T) {
	// When
	conf, err := readServiceConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	// Then
	assert.Nil(t, err)
	assert.Equal(t, "INFO", conf.LogLevel)
	assert.Equal(t, logFormatConsole, conf.LogFormat)
	assert.Equal(t, "text", conf.PrintFormat)
	assert.Equal(t, "demo", conf.Listener)
	assert.Equal(t, "resources/kafka-cluster-config.yaml", conf.ClusterConfigPath)
	assert.Equal(t, "resources/listener-config.yaml", conf.ListenerConfigPath)
	assert.Equal(t, 30*time.Second, conf.StartTimeout)
	assert.Equal(t, 30*time.Second, conf.StopTimeout)
}

func TestReadServiceConfig_ShouldReadFile(t *testing.T) {
	// Given
	path := writeServiceConfig(t, `
logLevel: debug
logFormat: tint
printFormat: json
statusReportCron: "@every 30s"
listener: audit
profile: stage
stopTimeout: 5s
noColor: true
`)

	// When
	conf, err := readServiceConfig(path)

	// Then
	assert.Nil(t, err)
	assert.Equal(t, "DEBUG", conf.LogLevel)
	assert.Equal(t, logFormatTint, conf.LogFormat)
	assert.Equal(t, "json", conf.PrintFormat)
	assert.Equal(t, "@every 30s", conf.StatusReportCron)
	assert.Equal(t, "audit", conf.Listener)
	assert.Equal(t, "stage", conf.Profile)
	assert.Equal(t, 5*time.Second, conf.StopTimeout)
	assert.True(t, conf.NoColor)
}

func TestReadServiceConfig_ShouldOverrideWithEnv(t *testing.T) {
	// Given
	path := writeServiceConfig(t, "listener: demo\nprintFormat: text\n")
	t.Setenv("CONSUMER_SERVICE_LISTENER", "audit")
	t.Setenv("CONSUMER_SERVICE_PRINTFORMAT", "json")

	// When
	conf, err := readServiceConfig(path)

	// Then
	assert.Nil(t, err)
	assert.Equal(t, "audit", conf.Listener)
	assert.Equal(t, "json", conf.PrintFormat)
}

func TestNewLogger_ShouldRejectUnknownFormat(t *testing.T) {
	// Given
	conf := &ServiceConfig{LogFormat: "xml", LogLevel: "INFO"}

	// When
	logger, err := newLogger(conf)

	// Then
	assert.Nil(t, logger)
	assert.Equal(t, "log format should be console or tint, format: xml", err.Error())
}

func TestNewLogger_ShouldCreateTintLogger(t *testing.T) {
	// Given
	conf := &ServiceConfig{LogFormat: logFormatTint, LogLevel: "DEBUG", NoColor: true}

	// When
	logger, err := newLogger(conf)

	// Then
	assert.Nil(t, err)
	assert.Equal(t, "DEBUG", logger.Lvl())
}
