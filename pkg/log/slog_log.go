package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// SlogLog routes service and sarama logs through a slog.Logger. Sarama output is
// tagged with component=sarama and always written at debug level.
type SlogLog struct {
	logger *slog.Logger
	level  string
}

func NewSlogLog(logger *slog.Logger, level string) *SlogLog {
	return &SlogLog{logger: logger, level: strings.ToUpper(level)}
}

// NewTintLog builds a SlogLog writing colored, human readable lines to w.
func NewTintLog(w io.Writer, level string, noColor bool) *SlogLog {
	handler := tint.NewHandler(w, &tint.Options{
		Level:      toSlogLevel(level),
		TimeFormat: time.DateTime,
		NoColor:    noColor,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if err, ok := a.Value.Any().(error); ok {
				aErr := tint.Err(err)
				aErr.Key = a.Key
				return aErr
			}
			return a
		},
	})
	return NewSlogLog(slog.New(handler), level)
}

func (s *SlogLog) Infof(format string, args ...interface{}) {
	s.logger.Info(fmt.Sprintf(format, args...))
}

func (s *SlogLog) Debugf(format string, args ...interface{}) {
	s.logger.Debug(fmt.Sprintf(format, args...))
}

func (s *SlogLog) Errorf(format string, args ...interface{}) {
	s.logger.Error(fmt.Sprintf(format, args...))
}

func (s *SlogLog) Lvl() string {
	return s.level
}

func (s *SlogLog) Print(v ...interface{}) {
	s.sarama(fmt.Sprint(v...))
}

func (s *SlogLog) Printf(format string, v ...interface{}) {
	s.sarama(fmt.Sprintf(format, v...))
}

func (s *SlogLog) Println(v ...interface{}) {
	s.sarama(fmt.Sprintln(v...))
}

func (s *SlogLog) sarama(msg string) {
	s.logger.Log(context.Background(), slog.LevelDebug, strings.TrimSpace(msg), "component", "sarama")
}

func toSlogLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case DEBUG:
		return slog.LevelDebug
	case INFO:
		return slog.LevelInfo
	default:
		return slog.LevelError
	}
}
