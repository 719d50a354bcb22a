package internal

import "github.com/aykanferhat/kafka-consumer-service/pkg/log"

type Logger = log.Logger

func GetLog() Logger {
	return log.Default()
}

// SetLog replaces the process wide logger. Sarama picks it up for clients created afterwards.
func SetLog(l Logger) {
	log.SetDefault(l)
}
