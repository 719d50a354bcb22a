package consumerservice

import (
	"github.com/aykanferhat/kafka-consumer-service/common"
	"github.com/aykanferhat/kafka-consumer-service/internal"
)

type (
	EndFunc = common.EndFunc
	Tracer  = internal.Tracer
)
