package consumerservice

import (
	"io"

	"github.com/aykanferhat/kafka-consumer-service/internal"
)

type (
	PrintFormat    = internal.PrintFormat
	StatusReporter = internal.StatusReporter
)

const (
	PrintFormatText = internal.PrintFormatText
	PrintFormatJSON = internal.PrintFormatJSON
)

// NewPrintConsumer returns a consumer writing "Consumed message: <payload>" lines to w.
func NewPrintConsumer(w io.Writer, format PrintFormat) (Consumer, error) {
	return internal.NewPrintConsumer(w, format)
}

func NewStatusReporter(spec string, listeners map[string]Listener) (*StatusReporter, error) {
	list := make([]Listener, 0, len(listeners))
	for _, listener := range listeners {
		list = append(list, listener)
	}
	return internal.NewStatusReporter(spec, list)
}
