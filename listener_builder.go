package consumerservice

import (
	"context"
	"errors"

	"github.com/aykanferhat/kafka-consumer-service/internal"
	"github.com/aykanferhat/kafka-consumer-service/pkg/log"
)

type (
	Consumer                 = internal.Consumer
	ConsumerFunc             = internal.ConsumerFunc
	ConsumerMessage          = internal.ConsumerMessage
	ConsumerInterceptor      = internal.ConsumerInterceptor
	ConsumerErrorInterceptor = internal.ConsumerErrorInterceptor
	ListenerRegistration     = internal.ListenerRegistration
	Listener                 = internal.Listener
	ListenerStatus           = internal.ListenerStatus
	Status                   = internal.Status
)

type ListenerBuilder struct {
	clusterConfigMap          ClusterConfigMap
	listenerConfigMap         ListenerConfigMap
	lastStepFunc              func(context.Context, *ConsumerMessage, error)
	registrations             []*ListenerRegistration
	consumerInterceptors      []ConsumerInterceptor
	consumerErrorInterceptors []ConsumerErrorInterceptor
	tracers                   []Tracer
}

func NewListenerBuilder(
	clusterConfigMap ClusterConfigMap,
	listenerConfigMap ListenerConfigMap,
	registrations []*ListenerRegistration,
) *ListenerBuilder {
	return &ListenerBuilder{
		clusterConfigMap:          clusterConfigMap,
		listenerConfigMap:         listenerConfigMap,
		registrations:             registrations,
		consumerInterceptors:      []ConsumerInterceptor{},
		consumerErrorInterceptors: []ConsumerErrorInterceptor{},
		tracers:                   []Tracer{},
		lastStepFunc: func(context.Context, *ConsumerMessage, error) {
			// default empty
		},
	}
}

func (b *ListenerBuilder) Interceptors(consumerInterceptors []ConsumerInterceptor) *ListenerBuilder {
	b.consumerInterceptors = append(b.consumerInterceptors, consumerInterceptors...)
	return b
}

func (b *ListenerBuilder) Interceptor(consumerInterceptor ConsumerInterceptor) *ListenerBuilder {
	b.consumerInterceptors = append(b.consumerInterceptors, consumerInterceptor)
	return b
}

func (b *ListenerBuilder) ErrorInterceptor(consumerErrorInterceptor ConsumerErrorInterceptor) *ListenerBuilder {
	b.consumerErrorInterceptors = append(b.consumerErrorInterceptors, consumerErrorInterceptor)
	return b
}

func (b *ListenerBuilder) Tracers(tracers []Tracer) *ListenerBuilder {
	b.tracers = append(b.tracers, tracers...)
	return b
}

func (b *ListenerBuilder) Tracer(tracer Tracer) *ListenerBuilder {
	b.tracers = append(b.tracers, tracer)
	return b
}

func (b *ListenerBuilder) LastStepFunc(lastStepFunc func(context.Context, *ConsumerMessage, error)) *ListenerBuilder {
	b.lastStepFunc = lastStepFunc
	return b
}

func (b *ListenerBuilder) Log(l Logger) *ListenerBuilder {
	internal.SetLog(l)
	return b
}

// Build resolves every registration against its configs without connecting to kafka.
// Disabled listeners are skipped. The result is keyed by group id.
func (b *ListenerBuilder) Build() (map[string]Listener, error) {
	listeners := make(map[string]Listener)
	for _, registration := range b.registrations {
		if registration.Consumer == nil {
			return nil, internal.NewErrWithArgs("listener registration has no consumer, config name: %s", registration.ConfigName)
		}
		listenerConfig, err := b.listenerConfigMap.GetConfigWithDefault(registration.ConfigName)
		if err != nil {
			return nil, err
		}
		if listenerConfig.Disabled {
			log.Infof("listener: %s is disabled, group: %s", registration.ConfigName, listenerConfig.GroupID)
			continue
		}
		clusterConfig, err := b.clusterConfigMap.GetConfigWithDefault(listenerConfig.Cluster)
		if err != nil {
			return nil, err
		}
		if _, exists := listeners[listenerConfig.GroupID]; exists {
			return nil, internal.NewErrWithArgs("group id is used by more than one listener, group: %s", listenerConfig.GroupID)
		}
		listeners[listenerConfig.GroupID] = internal.NewListener(internal.ListenerInitializeContext{
			ClusterConfig:             clusterConfig,
			ListenerConfig:            listenerConfig,
			Registration:              registration,
			LastStep:                  b.lastStepFunc,
			ConsumerInterceptors:      b.consumerInterceptors,
			ConsumerErrorInterceptors: b.consumerErrorInterceptors,
			Tracers:                   b.tracers,
		})
	}
	return listeners, nil
}

// Initialize builds and subscribes every listener. When one fails the already
// subscribed listeners are unsubscribed.
func (b *ListenerBuilder) Initialize(ctx context.Context) (map[string]Listener, error) {
	listeners, err := b.Build()
	if err != nil {
		return nil, err
	}
	subscribed := make([]Listener, 0, len(listeners))
	for _, listener := range listeners {
		if err := listener.Subscribe(ctx); err != nil {
			for _, s := range subscribed {
				s.Unsubscribe()
			}
			return nil, errors.Join(internal.NewErrWithArgs("listener subscribe err, group: %s", listener.GetGroupID()), err)
		}
		subscribed = append(subscribed, listener)
	}
	return listeners, nil
}
