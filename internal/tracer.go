package internal

import (
	"context"

	"github.com/aykanferhat/kafka-consumer-service/common"
)

type EndFunc = common.EndFunc

type Tracer interface {
	Start(ctx context.Context, tracerName string) (context.Context, EndFunc)
}

func trace(ctx context.Context, tracers []Tracer, message *ConsumerMessage) (context.Context, EndFunc) {
	ctx = common.AddToContext(ctx, common.GroupID, message.GroupID)
	ctx = common.AddToContext(ctx, common.Topic, message.Topic)
	ctx = common.AddToContext(ctx, common.Partition, message.Partition)
	ctx = common.AddToContext(ctx, common.Offset, message.Offset)
	ctx = common.AddToContext(ctx, common.MessageConsumedTimestamp, message.Timestamp)
	endFunctions := make([]EndFunc, 0, len(tracers))
	for _, tr := range tracers {
		var endFunc EndFunc
		ctx, endFunc = tr.Start(ctx, message.Tracer)
		endFunctions = append(endFunctions, endFunc)
	}
	return ctx, func() {
		for i := len(endFunctions) - 1; i >= 0; i-- {
			endFunctions[i]()
		}
	}
}
