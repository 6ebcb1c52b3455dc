package femtotables

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordAppend is called after each row append.
	// tag is the description tag of the target table, err is nil if the
	// row was accepted.
	RecordAppend(tag string, err error)

	// RecordValidate is called after each dataset validation pass.
	RecordValidate(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAppend(string, error)          {}
func (NoopMetricsCollector) RecordValidate(time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AppendCount        atomic.Int64
	AppendErrors       atomic.Int64
	ValidateCount      atomic.Int64
	ValidateErrors     atomic.Int64
	ValidateTotalNanos atomic.Int64
}

// RecordAppend implements MetricsCollector.
func (c *BasicMetricsCollector) RecordAppend(_ string, err error) {
	c.AppendCount.Add(1)
	if err != nil {
		c.AppendErrors.Add(1)
	}
}

// RecordValidate implements MetricsCollector.
func (c *BasicMetricsCollector) RecordValidate(d time.Duration, err error) {
	c.ValidateCount.Add(1)
	c.ValidateTotalNanos.Add(d.Nanoseconds())
	if err != nil {
		c.ValidateErrors.Add(1)
	}
}
