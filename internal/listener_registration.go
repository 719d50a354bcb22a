package internal

// ListenerRegistration binds a Consumer to a named listener config.
type ListenerRegistration struct {
	Consumer                  Consumer
	ConfigName                string
	ConsumerInterceptors      []ConsumerInterceptor
	ConsumerErrorInterceptors []ConsumerErrorInterceptor
}
