package common

import "context"

type ContextKey string

func (c ContextKey) String() string {
	return string(c)
}

const (
	GroupID                  ContextKey = "Z-GroupID"
	Topic                    ContextKey = "Z-Topic"
	Partition                ContextKey = "Z-Partition"
	Offset                   ContextKey = "Z-Offset"
	MessageConsumedTimestamp ContextKey = "Z-Timestamp"
)

func AddToContext(ctx context.Context, key ContextKey, value any) context.Context {
	if ctx.Value(key) == nil {
		return context.WithValue(ctx, key, value)
	}
	return ctx
}

func GetFromContext[T any](ctx context.Context, key ContextKey) T {
	var result T
	value, ok := ctx.Value(key).(T)
	if !ok {
		return result
	}
	return value
}
