// Package metrics holds the prometheus collectors of the drivers.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "kvcore"

// Status labels of executed commands.
const (
	StatusOK          = "ok"
	StatusServerError = "server_error"
	StatusFailed      = "failed"
)

// Collectors groups the driver metrics. A nil *Collectors is valid and
// records nothing.
type Collectors struct {
	commands *prometheus.CounterVec
	duration *prometheus.HistogramVec
	pages    *prometheus.CounterVec
	conns    *prometheus.GaugeVec
}

// New creates the collectors and registers them on reg. Collectors already
// registered by another driver are reused.
func New(reg prometheus.Registerer) (*Collectors, error) {
	c := &Collectors{
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "driver",
				Name:      "commands_total",
				Help:      "Total number of executed backend commands",
			},
			[]string{"backend", "command", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "driver",
				Name:      "command_duration_seconds",
				Help:      "Backend command round trip duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"backend", "command"},
		),
		pages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "driver",
				Name:      "pages_total",
				Help:      "Total number of listed key pages by outcome",
			},
			[]string{"backend", "outcome"},
		),
		conns: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "driver",
				Name:      "connected",
				Help:      "Number of connected drivers",
			},
			[]string{"backend"},
		),
	}

	var err error

	c.commands, err = register(reg, c.commands)
	if err != nil {
		return nil, err
	}

	c.duration, err = register(reg, c.duration)
	if err != nil {
		return nil, err
	}

	c.pages, err = register(reg, c.pages)
	if err != nil {
		return nil, err
	}

	c.conns, err = register(reg, c.conns)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, collector C) (C, error) {
	err := reg.Register(collector)
	if err == nil {
		return collector, nil
	}

	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	return collector, fmt.Errorf("failed to register collector: %w", err)
}

// ObserveCommand records one executed command.
func (c *Collectors) ObserveCommand(backend, command, status string, elapsed time.Duration) {
	if c == nil {
		return
	}

	c.commands.WithLabelValues(backend, command, status).Inc()
	c.duration.WithLabelValues(backend, command).Observe(elapsed.Seconds())
}

// ObservePage records one listed page. Outcome is "complete", "partial",
// "interrupted" or "failed".
func (c *Collectors) ObservePage(backend, outcome string) {
	if c == nil {
		return
	}

	c.pages.WithLabelValues(backend, outcome).Inc()
}

// Connected adjusts the connected drivers gauge by delta.
func (c *Collectors) Connected(backend string, delta float64) {
	if c == nil {
		return
	}

	c.conns.WithLabelValues(backend).Add(delta)
}
