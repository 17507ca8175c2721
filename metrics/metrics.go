// Package metrics counts toast outcomes with Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vcrobe/nojs-toast/toast"
)

// Config configures the toast counters.
type Config struct {
	// Namespace is the metrics namespace (default: "nojs").
	Namespace string

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the toast counters.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// Observer is a toast.Observer backed by two counter vectors:
// toasts shown by level, and fallbacks by level and reason.
type Observer struct {
	shown     *prometheus.CounterVec
	fallbacks *prometheus.CounterVec
}

var _ toast.Observer = (*Observer)(nil)

// New registers the toast counters and returns an observer over them.
func New(opts ...Option) *Observer {
	cfg := Config{Namespace: "nojs", Registry: prometheus.DefaultRegisterer}
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)
	return &Observer{
		shown: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: "toast",
			Name:      "shown_total",
			Help:      "Toasts displayed through the widget library.",
		}, []string{"level"}),
		fallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: "toast",
			Name:      "fallback_total",
			Help:      "Toasts presented through the fallback presenter.",
		}, []string{"level", "reason"}),
	}
}

// Shown implements toast.Observer.
func (o *Observer) Shown(level toast.Level) {
	o.shown.WithLabelValues(string(level)).Inc()
}

// Fallback implements toast.Observer.
func (o *Observer) Fallback(level toast.Level, reason toast.Reason) {
	o.fallbacks.WithLabelValues(string(level), string(reason)).Inc()
}
