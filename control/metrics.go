// control/metrics.go
// Author: momentics
//
// Reservation/submission counters for the event buffer. The buffer
// itself keeps drops silent; this registry is the layer that counts
// them for whoever wants visibility.

package control

import (
	"sync/atomic"
	"time"
)

// Metrics aggregates event-buffer counters. All methods are safe for
// concurrent use from any execution unit.
type Metrics struct {
	reserved      atomic.Int64
	reserveFailed atomic.Int64
	submitted     atomic.Int64
	rejected      atomic.Int64
	started       time.Time
}

// NewMetrics creates an empty registry.
func NewMetrics() *Metrics {
	return &Metrics{started: time.Now()}
}

// CountReserve records one successful reservation.
func (m *Metrics) CountReserve() { m.reserved.Add(1) }

// CountReserveFailed records one failed reservation (capacity or size).
func (m *Metrics) CountReserveFailed() { m.reserveFailed.Add(1) }

// CountSubmit records one accepted submission.
func (m *Metrics) CountSubmit() { m.submitted.Add(1) }

// CountRejected records one delivery rejection (slot mode only).
func (m *Metrics) CountRejected() { m.rejected.Add(1) }

// Snapshot returns the current counter values.
func (m *Metrics) Snapshot() map[string]int64 {
	return map[string]int64{
		"reserved":       m.reserved.Load(),
		"reserve_failed": m.reserveFailed.Load(),
		"submitted":      m.submitted.Load(),
		"rejected":       m.rejected.Load(),
		"uptime_ns":      time.Since(m.started).Nanoseconds(),
	}
}
