package log

import (
	"strings"
	"sync/atomic"
)

const (
	DEBUG string = "DEBUG"
	INFO  string = "INFO"
	ERROR string = "ERROR"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Lvl() string
	// Print for sarama logger
	Print(v ...interface{})
	// Printf for sarama logger
	Printf(format string, v ...interface{})
	// Println for sarama logger
	Println(v ...interface{})
}

type holder struct {
	logger Logger
}

var current atomic.Pointer[holder]

func init() {
	SetDefault(NewConsoleLog(ERROR))
}

func Default() Logger {
	return current.Load().logger
}

// SetDefault swaps the process wide logger. A nil logger is ignored. Sarama clients keep
// the logger that was current when they were created.
func SetDefault(l Logger) {
	if l == nil {
		return
	}
	current.Store(&holder{logger: l})
}

func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}

func IsDebug() bool {
	return strings.EqualFold(Default().Lvl(), DEBUG)
}

func enabled(current, wanted string) bool {
	return levelIndex(wanted) >= levelIndex(current)
}

func levelIndex(level string) int {
	switch strings.ToUpper(level) {
	case DEBUG:
		return 0
	case INFO:
		return 1
	default:
		return 2
	}
}
