package consumerservice

import (
	"github.com/aykanferhat/kafka-consumer-service/internal"
)

type (
	Producer                = internal.Producer
	Message                 = internal.Message
	ProducerMessage         = internal.ProducerMessage
	Header                  = internal.Header
	ProducerInterceptor     = internal.ProducerInterceptor
	ProducerInterceptorFunc = internal.ProducerInterceptorFunc
	Admin                   = internal.Admin
)

type ProducerBuilder struct {
	clusterConfigMap ClusterConfigMap
	topicConfigMap   ProducerTopicConfigMap
	interceptors     []ProducerInterceptor
}

func NewProducerBuilder(clusterConfigMap ClusterConfigMap, topicConfigMap ProducerTopicConfigMap) *ProducerBuilder {
	return &ProducerBuilder{
		clusterConfigMap: clusterConfigMap,
		interceptors:     make([]ProducerInterceptor, 0),
		topicConfigMap:   topicConfigMap,
	}
}

func (p *ProducerBuilder) Log(l Logger) *ProducerBuilder {
	internal.SetLog(l)
	return p
}

func (p *ProducerBuilder) Interceptors(producerInterceptors []ProducerInterceptor) *ProducerBuilder {
	p.interceptors = append(p.interceptors, producerInterceptors...)
	return p
}

func (p *ProducerBuilder) Interceptor(producerInterceptor ProducerInterceptor) *ProducerBuilder {
	p.interceptors = append(p.interceptors, producerInterceptor)
	return p
}

func (p *ProducerBuilder) Initialize() (Producer, error) {
	return internal.NewProducer(p.clusterConfigMap, p.topicConfigMap, p.interceptors)
}

func NewAdmin(clusterConfig *ClusterConfig) Admin {
	return internal.NewAdmin(clusterConfig)
}
