package consumerservice

import (
	"io"

	"github.com/aykanferhat/kafka-consumer-service/internal"
	"github.com/aykanferhat/kafka-consumer-service/pkg/log"
)

type Logger = internal.Logger

const (
	DEBUG = log.DEBUG
	INFO  = log.INFO
	ERROR = log.ERROR
)

func NewConsoleLog(level string) Logger {
	return log.NewConsoleLog(level)
}

// NewTintLog writes colored slog lines to w.
func NewTintLog(w io.Writer, level string, noColor bool) Logger {
	return log.NewTintLog(w, level, noColor)
}
